package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmPreviewDialogIncludesTitleAndHints(t *testing.T) {
	out := ConfirmPreviewDialog("Quit without saving?", nil, nil, 80)
	clean := SanitizeText(out)

	assert.Contains(t, clean, "Quit without saving?")
	assert.Contains(t, clean, "y: confirm | n: cancel")
}

func TestConfirmPreviewDialogRendersSummaryRows(t *testing.T) {
	out := ConfirmPreviewDialog("Apply preset?", []TableRow{
		{Label: "Preset", Value: "colors"},
		{Label: "Options", Value: "Red, Green, Blue"},
	}, nil, 80)
	clean := SanitizeText(out)

	assert.Contains(t, clean, "Summary")
	assert.Contains(t, clean, "Preset")
	assert.Contains(t, clean, "colors")
	assert.Contains(t, clean, "Red, Green, Blue")
}

func TestConfirmPreviewDialogRendersDiffRows(t *testing.T) {
	out := ConfirmPreviewDialog("Quit without saving?", nil, []DiffRow{
		{Label: "Tags", From: "red", To: "red,blue"},
	}, 80)
	clean := SanitizeText(out)

	assert.Contains(t, clean, "Changes")
	assert.Contains(t, clean, "Tags")
	assert.Contains(t, clean, "- red")
	assert.Contains(t, clean, "+ red,blue")
}

func TestConfirmPreviewDialogEmptyFromShowsPlaceholder(t *testing.T) {
	out := ConfirmPreviewDialog("Quit without saving?", nil, []DiffRow{
		{Label: "Draft", From: "", To: "re"},
	}, 80)
	clean := SanitizeText(out)

	assert.Contains(t, clean, "- -")
	assert.Contains(t, clean, "+ re")
}
