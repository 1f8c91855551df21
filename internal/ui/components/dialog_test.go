package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDialogIncludesTitleMessageAndHints(t *testing.T) {
	out := ConfirmDialog("Reset", "Drop all 100 items?")
	clean := SanitizeText(out)

	assert.Contains(t, clean, "Reset")
	assert.Contains(t, clean, "Drop all 100 items?")
	assert.Contains(t, clean, "y: confirm | n: cancel")
}

func TestInputDialogIncludesTitleInputAndHints(t *testing.T) {
	out := InputDialog("Jump to index", "42")
	clean := SanitizeText(out)

	assert.Contains(t, clean, "Jump to index")
	assert.Contains(t, clean, "> 42")
	assert.Contains(t, clean, "enter: submit | esc: cancel")
}

func TestInputDialogStripsControlInput(t *testing.T) {
	clean := SanitizeText(InputDialog("Jump", "4\x1b[31m2"))
	assert.Contains(t, clean, "> 42")
}
