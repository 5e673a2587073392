package domain

import "fmt"

// CategoryValue is the selection value carried by a category menu choice.
type CategoryValue string

const (
	CategoryPurchase  CategoryValue = "purchase"
	CategoryDoubt     CategoryValue = "doubt"
	CategoryTechnical CategoryValue = "technical"
)

// Category describes one entry of the support category menu and the thread
// naming and confirmation copy attached to it.
type Category struct {
	Value        CategoryValue
	Label        string
	Description  string
	Emoji        string
	threadPrefix string
	Confirmation string
}

// ThreadName derives the ticket thread display name for a requester.
func (c Category) ThreadName(displayName string) string {
	return fmt.Sprintf("%s - %s", c.threadPrefix, displayName)
}

var categories = []Category{
	{
		Value:        CategoryPurchase,
		Label:        "Purchase order",
		Description:  "Make your budget",
		Emoji:        "🛍️",
		threadPrefix: "🛍️ Purchase",
		Confirmation: "🛍️ Thread created for **Purchase order**!",
	},
	{
		Value:        CategoryDoubt,
		Label:        "Doubts",
		Description:  "Take your doubts",
		Emoji:        "❓",
		threadPrefix: "❓ Doubt",
		Confirmation: "❓ Thread created for **Doubt**!",
	},
	{
		Value:        CategoryTechnical,
		Label:        "Technical Support",
		Description:  "Technical assistance",
		Emoji:        "💻",
		threadPrefix: "💻 Support",
		Confirmation: "💻 Thread created for **Technical Support**!",
	},
}

// Categories returns the fixed category set in menu order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByValue resolves a selection value. Unknown values report ok=false;
// callers must reject them rather than defaulting.
func CategoryByValue(value string) (Category, bool) {
	for _, c := range categories {
		if c.Value == CategoryValue(value) {
			return c, true
		}
	}
	return Category{}, false
}
