package plaintext_test

import (
	"testing"

	"laundry/internal/pkg/plaintext"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain text untouched", "Your request has been received.", "Your request has been received."},
		{"tags removed", "<p>Hello <b>Ada</b></p>", "Hello Ada"},
		{"block elements keep words apart", "<h1>Welcome</h1><p>Thanks for joining</p>", "Welcome Thanks for joining"},
		{"entities decoded", "Wash &amp; fold", "Wash & fold"},
		{"line breaks collapse", "line one<br>line two\n\n  line three", "line one line two line three"},
		{"stray angle brackets dropped", "5 < 6 and 7 > 2", "5 6 and 7 2"},
		{"escaped markup is not revived", "&lt;script&gt;alert(1)&lt;/script&gt;", "scriptalert(1)/script"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := plaintext.Strip(tc.input)

			assert.Equal(t, tc.expected, result)
			assert.False(t, plaintext.ContainsMarkup(result))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Run("short strings are returned as is", func(t *testing.T) {
		assert.Equal(t, "abc", plaintext.Truncate("abc", 10))
	})

	t.Run("long strings are cut with an ellipsis", func(t *testing.T) {
		assert.Equal(t, "abcde...", plaintext.Truncate("abcdefghij", 5))
	})

	t.Run("cuts on rune boundaries", func(t *testing.T) {
		assert.Equal(t, "héll...", plaintext.Truncate("héllo wörld", 4))
	})

	t.Run("non-positive limit disables truncation", func(t *testing.T) {
		assert.Equal(t, "abc", plaintext.Truncate("abc", 0))
	})
}
