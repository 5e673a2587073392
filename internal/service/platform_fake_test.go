package service

import (
	"context"
	"fmt"

	"github.com/spec-kit/support-thread-bot/internal/platform"
)

// fakeClient is an in-memory platform.Client. Created threads become visible
// to ActiveThreads and Channel immediately, the way the live platform behaves.
type fakeClient struct {
	channels map[string]*platform.Channel
	members  map[string][]string
	messages map[string][]platform.Message

	sent          map[string][]string
	closeControls []string
	prompts       []string
	deleted       map[string][]string
	ops           []string

	nextThreadID int
	failOn       map[string]error
	deleteFails  map[string]error
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		channels:    make(map[string]*platform.Channel),
		members:     make(map[string][]string),
		messages:    make(map[string][]platform.Message),
		sent:        make(map[string][]string),
		deleted:     make(map[string][]string),
		failOn:      make(map[string]error),
		deleteFails: make(map[string]error),
	}
}

func (f *fakeClient) addTextChannel(id, guildID string) *platform.Channel {
	ch := &platform.Channel{ID: id, GuildID: guildID, Text: true}
	f.channels[id] = ch
	return ch
}

func (f *fakeClient) addThread(id, parentID string, memberIDs ...string) *platform.Channel {
	parent := f.channels[parentID]
	th := &platform.Channel{ID: id, GuildID: parent.GuildID, ParentID: parentID, Thread: true}
	f.channels[id] = th
	f.members[id] = append(f.members[id], memberIDs...)
	return th
}

func (f *fakeClient) record(op string) error {
	f.ops = append(f.ops, op)
	return f.failOn[op]
}

func (f *fakeClient) Channel(_ context.Context, channelID string) (*platform.Channel, error) {
	if err := f.record("channel"); err != nil {
		return nil, err
	}
	ch, ok := f.channels[channelID]
	if !ok {
		return nil, platform.ErrNotFound
	}
	copied := *ch
	return &copied, nil
}

func (f *fakeClient) ActiveThreads(_ context.Context, parent *platform.Channel) ([]platform.Channel, error) {
	if err := f.record("active_threads"); err != nil {
		return nil, err
	}
	var out []platform.Channel
	for _, ch := range f.channels {
		if ch.Thread && ch.ParentID == parent.ID && !ch.Archived {
			out = append(out, *ch)
		}
	}
	return out, nil
}

func (f *fakeClient) ThreadMembers(_ context.Context, threadID string) ([]string, error) {
	if err := f.record("thread_members"); err != nil {
		return nil, err
	}
	return f.members[threadID], nil
}

func (f *fakeClient) CreateThread(_ context.Context, channelID string, create platform.ThreadCreate) (*platform.Channel, error) {
	if err := f.record("create_thread"); err != nil {
		return nil, err
	}
	f.nextThreadID++
	id := fmt.Sprintf("thread-%d", f.nextThreadID)
	parent := f.channels[channelID]
	th := &platform.Channel{
		ID:       id,
		GuildID:  parent.GuildID,
		ParentID: channelID,
		Name:     create.Name,
		Thread:   true,
	}
	f.channels[id] = th
	return th, nil
}

func (f *fakeClient) AddThreadMember(_ context.Context, threadID, userID string) error {
	if err := f.record("add_member"); err != nil {
		return err
	}
	f.members[threadID] = append(f.members[threadID], userID)
	return nil
}

func (f *fakeClient) SendMessage(_ context.Context, channelID, content string) error {
	if err := f.record("send_message"); err != nil {
		return err
	}
	f.sent[channelID] = append(f.sent[channelID], content)
	return nil
}

func (f *fakeClient) SendCloseControl(_ context.Context, threadID string) error {
	if err := f.record("send_close_control"); err != nil {
		return err
	}
	f.closeControls = append(f.closeControls, threadID)
	return nil
}

func (f *fakeClient) SendPrompt(_ context.Context, channelID string) error {
	if err := f.record("send_prompt"); err != nil {
		return err
	}
	f.prompts = append(f.prompts, channelID)
	return nil
}

func (f *fakeClient) RecentMessages(_ context.Context, channelID string, limit int) ([]platform.Message, error) {
	if err := f.record("recent_messages"); err != nil {
		return nil, err
	}
	msgs := f.messages[channelID]
	if len(msgs) > limit {
		msgs = msgs[:limit]
	}
	out := make([]platform.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (f *fakeClient) DeleteMessage(_ context.Context, channelID, messageID string) error {
	if err := f.record("delete_message"); err != nil {
		return err
	}
	if err := f.deleteFails[messageID]; err != nil {
		return err
	}
	kept := make([]platform.Message, 0, len(f.messages[channelID]))
	for _, msg := range f.messages[channelID] {
		if msg.ID != messageID {
			kept = append(kept, msg)
		}
	}
	f.messages[channelID] = kept
	f.deleted[channelID] = append(f.deleted[channelID], messageID)
	return nil
}

func (f *fakeClient) LockThread(_ context.Context, threadID, _ string) error {
	if err := f.record("lock_thread"); err != nil {
		return err
	}
	f.channels[threadID].Locked = true
	return nil
}

func (f *fakeClient) ArchiveThread(_ context.Context, threadID, _ string) error {
	if err := f.record("archive_thread"); err != nil {
		return err
	}
	f.channels[threadID].Archived = true
	return nil
}

func (f *fakeClient) opCount(op string) int {
	n := 0
	for _, o := range f.ops {
		if o == op {
			n++
		}
	}
	return n
}
