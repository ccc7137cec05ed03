package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestTagFieldViewShowsPillsAndCursor(t *testing.T) {
	field := NewTagField(nil)
	field.SetValue("a,b")
	field.Focus()

	view := field.View()
	assert.Contains(t, view, "[a]")
	assert.Contains(t, view, "[b]")
	assert.Contains(t, view, "█")
}

func TestTagFieldViewPlaceholderWhenEmpty(t *testing.T) {
	field := NewTagField(nil)
	assert.Contains(t, field.View(), "-")
}

func TestTagFieldViewHidesCursorWhileMenuRowHighlighted(t *testing.T) {
	field := NewTagField([]string{"red", "blue"})
	field.Focus()
	field, _, _ = pressKey(field, tea.KeyDown)

	assert.NotContains(t, field.View(), "█")
}

func TestTagFieldViewShowsDraftMutedWhenBlurred(t *testing.T) {
	field := NewTagField([]string{"red"})
	field.Focus()
	field = typeRunes(t, field, "re")
	field.Blur()

	view := field.View()
	assert.Contains(t, view, "re")
	assert.NotContains(t, view, "█")
}

func TestMenuViewListsCandidatesWithCreateFirst(t *testing.T) {
	field := NewTagField([]string{"red", "blue"})
	field.Focus()
	field = typeRunes(t, field, "re")

	menu := field.MenuView()
	lines := strings.Split(menu, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], `Create "re"`)
	assert.Contains(t, lines[0], "›")
	assert.Contains(t, lines[1], "red")
}

func TestMenuViewMarksHighlightedRow(t *testing.T) {
	field := NewTagField([]string{"red", "blue"})
	field.Focus()
	field = typeRunes(t, field, "re")
	field, _, _ = pressKey(field, tea.KeyDown)

	lines := strings.Split(field.MenuView(), "\n")
	assert.NotContains(t, lines[0], "›")
	assert.Contains(t, lines[1], "› red")
}

func TestMenuViewShowsNoMatchesWhenPoolExhausted(t *testing.T) {
	field := NewTagField([]string{"urgent"})
	field.SetValue("urgent")
	field.Focus()

	assert.Contains(t, field.MenuView(), "No matches.")
}

func TestMenuViewEmptyWhenClosed(t *testing.T) {
	field := NewTagField([]string{"red"})
	assert.Equal(t, "", field.MenuView())

	field.Focus()
	field, _, _ = pressKey(field, tea.KeyEsc)
	assert.Equal(t, "", field.MenuView())
}

func TestReadOnlyViewHasNoCursor(t *testing.T) {
	field := NewTagField(nil)
	field.SetValue("a")
	field.ReadOnly = true
	field.Focus()

	view := field.View()
	assert.Contains(t, view, "[a]")
	assert.NotContains(t, view, "█")
	assert.Equal(t, "", field.MenuView())
}

func TestMenuViewCapsVisibleRows(t *testing.T) {
	field := NewTagField([]string{"one", "two", "three", "four", "five", "six", "seven", "eight"})
	field.Focus()

	lines := strings.Split(field.MenuView(), "\n")
	assert.Len(t, lines, menuPageSize)
}
