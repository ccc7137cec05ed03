package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gravitrone/tagfield/internal/slug"
	"github.com/gravitrone/tagfield/internal/suggest"
	"github.com/gravitrone/tagfield/internal/ui/components"
)

const menuPageSize = 6

// tagCreatedMsg is emitted when a commit goes through the creation entry
// rather than an existing option.
type tagCreatedMsg struct {
	tag string
}

// TagField is a text input that builds an ordered, de-duplicated tag
// collection presented to its host as a single comma-separated value. Typing
// filters the option pool into a suggestion menu; a query matching nothing
// exactly gets a creation entry at the top. Every mutation re-serializes the
// collection and pushes it through OnChange.
type TagField struct {
	tags    []string
	draft   string
	options []string

	menu      *components.List
	menuOpen  bool
	highlight int // -1 means the cursor is in the text field

	focused bool

	// Label names the serialized value for the host form.
	Label string
	// ReadOnly suppresses all mutation and keeps the menu closed.
	ReadOnly bool
	// OnChange receives the re-serialized value after every mutation. Nil is
	// fine; mutations then apply locally without notification.
	OnChange func(string)
}

// NewTagField creates an empty field over the given option pool.
func NewTagField(options []string) TagField {
	f := TagField{
		options:   options,
		menu:      components.NewList(menuPageSize),
		highlight: -1,
	}
	f.refreshMenu()
	return f
}

// SetValue replaces the collection from a flat comma-separated value. Any
// string decodes; junk pieces drop out.
func (f *TagField) SetValue(value string) {
	f.tags = slug.Decode(value)
	f.refreshMenu()
}

// Value returns the collection as the flat comma-separated value.
func (f TagField) Value() string {
	return slug.Encode(f.tags)
}

// SetOptions replaces the option pool.
func (f *TagField) SetOptions(options []string) {
	f.options = options
	f.refreshMenu()
}

// Tags returns a copy of the committed collection.
func (f TagField) Tags() []string {
	return append([]string(nil), f.tags...)
}

// Focus puts the cursor in the text field and opens the menu.
func (f *TagField) Focus() {
	f.focused = true
	if f.ReadOnly {
		return
	}
	f.menuOpen = true
	f.refreshMenu()
}

// Blur closes the menu without committing or clearing the draft.
func (f *TagField) Blur() {
	f.focused = false
	f.menuOpen = false
	f.highlight = -1
}

// Focused reports whether the field owns the cursor.
func (f TagField) Focused() bool {
	return f.focused
}

// HandleKey advances the state machine for one key press. The returned bool
// reports whether the key was consumed; an unconsumed key belongs to the
// host, which is how Enter falls through to form submission when the
// candidate list is empty.
func (f TagField) HandleKey(msg tea.KeyMsg) (TagField, tea.Cmd, bool) {
	if f.ReadOnly || !f.focused {
		return f, nil, false
	}

	switch {
	case isBack(msg):
		f.draft = ""
		f.menuOpen = false
		f.focused = false
		f.refreshMenu()
		return f, nil, true

	case isEnter(msg):
		// The guard is the candidate list, not menu visibility: backspacing a
		// tag away closes the menu but leaves candidates behind it, and Enter
		// still commits there.
		if len(f.menu.Items) > 0 {
			idx := f.highlight
			if idx < 0 {
				idx = 0
			}
			cmd := f.commit(f.menu.Items[idx])
			return f, cmd, true
		}
		f.draft = ""
		f.refreshMenu()
		return f, nil, false

	case isKey(msg, ","):
		f.addTag(f.draft)
		return f, nil, true

	case isDown(msg):
		f.moveHighlight(1)
		return f, nil, true

	case isUp(msg):
		f.moveHighlight(-1)
		return f, nil, true

	case isKey(msg, "backspace"):
		if f.draft != "" {
			f.draft = f.draft[:len(f.draft)-1]
			f.refreshMenu()
			return f, nil, true
		}
		if len(f.tags) > 0 {
			f.removeTag(f.tags[len(f.tags)-1])
			f.menuOpen = false
		}
		return f, nil, true

	default:
		ch := msg.String()
		if len(ch) == 1 {
			f.draft += ch
			f.menuOpen = true
			f.refreshMenu()
			return f, nil, true
		}
	}
	return f, nil, false
}

// commit adds the candidate under the cursor, unwrapping the creation entry
// when that is what was chosen.
func (f *TagField) commit(candidate string) tea.Cmd {
	created := suggest.IsCreate(candidate)
	before := len(f.tags)
	f.addTag(suggest.CreateValue(candidate))
	if created && len(f.tags) > before {
		tag := f.tags[len(f.tags)-1]
		return func() tea.Msg { return tagCreatedMsg{tag: tag} }
	}
	return nil
}

// addTag pushes one raw value through normalize and dedup into the
// collection. Empty and duplicate values are rejected silently. On an
// accepted add the sink fires first, then transient state resets, then the
// cursor returns to the text field, in that order.
func (f *TagField) addTag(raw string) {
	tag := slug.Normalize(raw)
	ok := tag != ""
	if ok {
		for _, t := range f.tags {
			if t == tag {
				ok = false
				break
			}
		}
	}
	if ok {
		f.tags = append(f.tags, tag)
		f.notify()
	}
	f.draft = ""
	f.refreshMenu()
	f.focused = true
}

// removeTag filters one tag out by exact normalized equality. The sink fires
// with the re-serialized value even when nothing matched.
func (f *TagField) removeTag(tag string) {
	want := slug.Normalize(tag)
	out := make([]string, 0, len(f.tags))
	for _, t := range f.tags {
		if t != want {
			out = append(out, t)
		}
	}
	f.tags = out
	f.notify()
	f.refreshMenu()
	f.focused = true
}

func (f *TagField) notify() {
	if f.OnChange != nil {
		f.OnChange(slug.Encode(f.tags))
	}
}

// refreshMenu recomputes the candidate list. The highlight clears whenever
// the list's inputs change so it can never dangle past the new length.
func (f *TagField) refreshMenu() {
	f.menu.SetItems(suggest.Candidates(f.draft, f.options, f.tags))
	f.highlight = -1
}

// moveHighlight walks the menu cursor. Row 0 reads as pre-highlighted while
// the cursor sits in the text field, so the first step down lands on row 1;
// stepping up from row 0 hands the cursor back to the text field.
func (f *TagField) moveHighlight(delta int) {
	n := len(f.menu.Items)
	if !f.menuOpen || n == 0 {
		return
	}
	if delta > 0 {
		switch {
		case f.highlight < 0:
			f.highlight = 1
			if f.highlight > n-1 {
				f.highlight = n - 1
			}
		case f.highlight >= n-1:
			f.highlight = 0
		default:
			f.highlight++
		}
		f.menu.MoveTo(f.highlight)
		return
	}
	if f.highlight <= 0 {
		f.highlight = -1
		f.menu.MoveTo(0)
		return
	}
	f.highlight--
	f.menu.MoveTo(f.highlight)
}

// View renders the field line: committed pills, then the draft and cursor.
func (f TagField) View() string {
	var b strings.Builder
	pill := AccentStyle
	if f.ReadOnly {
		pill = MutedStyle
	}
	for i, t := range f.tags {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(pill.Render("[" + t + "]"))
	}
	if f.ReadOnly {
		if b.Len() == 0 {
			return MutedStyle.Render("-")
		}
		return b.String()
	}
	if f.focused {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(components.SanitizeOneLine(f.draft))
		if f.highlight < 0 {
			b.WriteString(AccentStyle.Render("█"))
		}
		return b.String()
	}
	if f.draft != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(MutedStyle.Render(f.draft))
	} else if b.Len() == 0 {
		return MutedStyle.Render("-")
	}
	return b.String()
}

// MenuView renders the open suggestion menu, one candidate per line. Empty
// string when the menu is closed.
func (f TagField) MenuView() string {
	if !f.menuOpen || !f.focused {
		return ""
	}
	items := f.menu.Visible()
	if len(items) == 0 {
		return MutedStyle.Render("No matches.")
	}
	var b strings.Builder
	for i, item := range items {
		abs := f.menu.RelToAbs(i)
		line := components.SanitizeOneLine(item)
		switch {
		case abs == f.highlight, f.highlight < 0 && abs == 0:
			b.WriteString(SelectedStyle.Render("› " + line))
		case suggest.IsCreate(item):
			b.WriteString(AccentStyle.Render("  " + line))
		default:
			b.WriteString(NormalStyle.Render("  " + line))
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
