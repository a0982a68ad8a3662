package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/armoredgo/armored/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  hello  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "hello",
		},
		{
			name:  "applies transforms in sequence",
			input: "  MARIA@Example.COM ",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.NormalizeEmail,
				sanitizer.MaskEmail,
			},
			expected: "m****@example.com",
		},
		{
			name:       "returns input without transforms",
			input:      " as is ",
			transforms: nil,
			expected:   " as is ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.StripHTML, sanitizer.Limit(12))
	assert.Equal(t, "Olá mundo, t", clean("<b>Olá</b>   mundo, tudo bem?"))
	assert.Equal(t, "", clean(""))

	double := sanitizer.Compose(func(n int) int { return n * 2 }, func(n int) int { return n + 1 })
	assert.Equal(t, 7, double(3))
}
