package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryTicketLocker(t *testing.T) {
	locker := NewMemoryTicketLocker()
	ctx := context.Background()

	ok, err := locker.Acquire(ctx, "chan-1", "user-a")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = locker.Acquire(ctx, "chan-1", "user-a")
	require.NoError(t, err)
	require.False(t, ok, "second acquire for the same pair must fail")

	// Other users and other channels are independent.
	ok, err = locker.Acquire(ctx, "chan-1", "user-b")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = locker.Acquire(ctx, "chan-2", "user-a")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, locker.Release(ctx, "chan-1", "user-a"))
	ok, err = locker.Acquire(ctx, "chan-1", "user-a")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMemoryTicketLockerReleaseUnheld(t *testing.T) {
	locker := NewMemoryTicketLocker()
	require.NoError(t, locker.Release(context.Background(), "chan-1", "user-a"))
}
