package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/armoredgo/armored/pkg/sanitizer"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Olá & tchau", sanitizer.StripHTML("<p>Olá &amp; <b>tchau</b></p>"))
}

func TestRemoveControlSequences(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "red\ttext\n", sanitizer.RemoveControlSequences("\x1b[31mred\x1b[0m\ttext\x07\n"))
	assert.Equal(t, "ab", sanitizer.RemoveNullBytes("a\x00b"))
}

func TestCleanText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello World", sanitizer.CleanText("<p>Hello\x00\t\n<i>World</i></p>\n\n", 0))
	assert.Equal(t, "Nome", sanitizer.CleanText("  <b>Nome</b>\x1b[0m  completo", 4))
}
