package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	t.Run("short strings pass through", func(t *testing.T) {
		assert.Equal(t, "hello", Truncate("hello", 10))
		assert.Equal(t, "hello", Truncate("hello", 5))
	})

	t.Run("long strings are exactly limit chars with ellipsis", func(t *testing.T) {
		s := strings.Repeat("x", 100)
		got := Truncate(s, 20)
		require.Len(t, []rune(got), 20)
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("never exceeds limit", func(t *testing.T) {
		for limit := 1; limit <= 10; limit++ {
			got := Truncate("abcdefghijklmnop", limit)
			assert.LessOrEqual(t, len([]rune(got)), limit, "limit %d", limit)
		}
	})

	t.Run("multi byte runes counted as characters", func(t *testing.T) {
		s := strings.Repeat("é", 50)
		got := Truncate(s, 10)
		assert.Len(t, []rune(got), 10)
	})

	t.Run("zero or negative limit", func(t *testing.T) {
		assert.Equal(t, "", Truncate("abc", 0))
		assert.Equal(t, "", Truncate("abc", -1))
	})
}

func TestPage(t *testing.T) {
	t.Run("AddField truncates name and value", func(t *testing.T) {
		var p Page
		p.AddField(strings.Repeat("n", 1000), strings.Repeat("v", 1000), false)

		require.Len(t, p.Fields, 1)
		assert.Len(t, []rune(p.Fields[0].Name), MaxFieldNameLen)
		assert.Len(t, []rune(p.Fields[0].Value), MaxFieldValueLen)
	})

	t.Run("AddField drops fields beyond platform cap", func(t *testing.T) {
		var p Page
		for i := 0; i < MaxFieldsPerPage+5; i++ {
			p.AddField("k", "v", false)
		}
		assert.Len(t, p.Fields, MaxFieldsPerPage)
	})

	t.Run("AddField substitutes empty name and value", func(t *testing.T) {
		var p Page
		p.AddField("", "", false)
		require.Len(t, p.Fields, 1)
		assert.NotEmpty(t, p.Fields[0].Name)
		assert.NotEmpty(t, p.Fields[0].Value)
	})

	t.Run("NewPage truncates title and description", func(t *testing.T) {
		p := NewPage(strings.Repeat("t", 1000), strings.Repeat("d", 10000))
		assert.Len(t, []rune(p.Title), MaxTitleLen)
		assert.Len(t, []rune(p.Description), MaxDescriptionLen)
	})

	t.Run("NoDataPage carries the marker", func(t *testing.T) {
		p := NoDataPage("Countries")
		assert.Equal(t, "Countries", p.Title)
		assert.Contains(t, p.Description, NoDataMarker)
	})
}
