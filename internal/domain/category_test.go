package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryByValue(t *testing.T) {
	tests := []struct {
		value        string
		threadPrefix string
		confirmation string
	}{
		{"purchase", "🛍️ Purchase", "Purchase order"},
		{"doubt", "❓ Doubt", "Doubt"},
		{"technical", "💻 Support", "Technical Support"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cat, ok := CategoryByValue(tt.value)
			require.True(t, ok)
			require.Contains(t, cat.ThreadName("alice"), tt.threadPrefix)
			require.Contains(t, cat.ThreadName("alice"), "alice")
			require.Contains(t, cat.Confirmation, tt.confirmation)
		})
	}
}

func TestCategoryByValueUnknown(t *testing.T) {
	_, ok := CategoryByValue("billing")
	require.False(t, ok)

	_, ok = CategoryByValue("")
	require.False(t, ok)
}

func TestCategoriesIsCopy(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 3)
	cats[0].Label = "mutated"

	fresh := Categories()
	require.Equal(t, "Purchase order", fresh[0].Label)
}
