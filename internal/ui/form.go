package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/tagfield/internal/ui/components"
)

// Field focus slots, top to bottom.
const (
	fieldTitle     = 0
	fieldTags      = 1
	formFieldCount = 2
)

const (
	formViewEdit = iota
	formViewSaved
)

// formSavedMsg reports a completed submit with the serialized record.
type formSavedMsg struct {
	title string
	name  string
	value string
}

// FormModel is a small record editor hosting the tag field in an ordinary
// form: a free-text title, the tag collection, and a submit path that runs
// on Enter only when the tag field lets the key through.
type FormModel struct {
	title textinput.Model
	tags  TagField

	// values mirrors each serialized field by name, maintained by the
	// field sinks. Submit reads from here, not from the widgets.
	values map[string]string

	name       string
	focus      int
	view       int
	savedTitle string
	savedValue string

	width  int
	height int
}

// NewFormModel builds the editor for one record. The option pool feeds the
// tag menu, value seeds the collection, and name keys the serialized value
// the sink maintains.
func NewFormModel(name, value string, options []string, readOnly bool) FormModel {
	ti := textinput.New()
	ti.Placeholder = "Untitled"
	ti.Prompt = ""
	ti.CharLimit = 120
	ti.Width = 40

	tf := NewTagField(options)
	tf.Label = name
	tf.ReadOnly = readOnly
	tf.SetValue(value)

	values := map[string]string{name: tf.Value()}
	tf.OnChange = func(v string) { values[name] = v }

	m := FormModel{
		title:      ti,
		tags:       tf,
		values:     values,
		name:       name,
		focus:      fieldTitle,
		savedValue: tf.Value(),
	}
	m.title.Focus()
	return m
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyMsg(key)
	}
	var cmd tea.Cmd
	m.title, cmd = m.title.Update(msg)
	return m, cmd
}

func (m FormModel) handleKeyMsg(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	if m.view == formViewSaved {
		if isKey(msg, "e") {
			m.view = formViewEdit
			m.setFocus(fieldTitle)
		}
		return m, nil
	}

	// The tag field gets first refusal on every key while it owns the
	// cursor. An unconsumed key falls through to the form.
	if m.focus == fieldTags {
		var cmd tea.Cmd
		var handled bool
		m.tags, cmd, handled = m.tags.HandleKey(msg)
		if handled {
			return m, cmd
		}
	}

	switch {
	case isKey(msg, "tab"):
		m.setFocus((m.focus + 1) % formFieldCount)
		return m, nil
	case isKey(msg, "shift+tab"):
		m.setFocus((m.focus - 1 + formFieldCount) % formFieldCount)
		return m, nil
	case isDown(msg):
		m.setFocus((m.focus + 1) % formFieldCount)
		return m, nil
	case isUp(msg):
		m.setFocus((m.focus - 1 + formFieldCount) % formFieldCount)
		return m, nil
	case isEnter(msg), isKey(msg, "ctrl+s"):
		return m.submit()
	}

	if m.focus == fieldTitle {
		var cmd tea.Cmd
		m.title, cmd = m.title.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *FormModel) setFocus(focus int) {
	m.focus = focus
	if focus == fieldTitle {
		m.title.Focus()
	} else {
		m.title.Blur()
	}
	if focus == fieldTags {
		m.tags.Focus()
	} else {
		m.tags.Blur()
	}
}

func (m FormModel) submit() (FormModel, tea.Cmd) {
	// A draft still in the tag field commits like a trailing comma, so a
	// save never drops typed text.
	if m.tags.draft != "" {
		m.tags.addTag(m.tags.draft)
	}
	m.view = formViewSaved
	m.savedTitle = m.title.Value()
	m.savedValue = m.values[m.name]
	saved := formSavedMsg{title: m.savedTitle, name: m.name, value: m.savedValue}
	return m, func() tea.Msg { return saved }
}

// pendingChanges lists edits not yet submitted as from/to rows, including an
// uncommitted draft in the tag field.
func (m FormModel) pendingChanges() []components.DiffRow {
	if m.view == formViewSaved {
		return nil
	}
	var rows []components.DiffRow
	if m.title.Value() != m.savedTitle {
		rows = append(rows, components.DiffRow{Label: "Title", From: m.savedTitle, To: m.title.Value()})
	}
	if m.values[m.name] != m.savedValue {
		rows = append(rows, components.DiffRow{Label: labelFor(m.name), From: m.savedValue, To: m.values[m.name]})
	}
	if m.tags.draft != "" {
		rows = append(rows, components.DiffRow{Label: "Draft", From: "", To: m.tags.draft})
	}
	return rows
}

func (m FormModel) hasUnsaved() bool {
	return len(m.pendingChanges()) > 0
}

// capturesText reports whether a plain letter key currently belongs to a
// field rather than to app-level shortcuts.
func (m FormModel) capturesText() bool {
	if m.view != formViewEdit {
		return false
	}
	return m.title.Focused() || m.tags.Focused()
}

// capturesEscape reports whether Escape currently belongs to the tag field,
// which uses it to close the menu and drop the cursor.
func (m FormModel) capturesEscape() bool {
	return m.view == formViewEdit && m.focus == fieldTags && m.tags.Focused()
}

// releaseFocus drops the keyboard out of whichever field holds it. The focus
// slot is untouched, so tab and arrows re-enter where the cursor left.
func (m *FormModel) releaseFocus() {
	m.title.Blur()
	m.tags.Blur()
}

func (m FormModel) View() string {
	if m.view == formViewSaved {
		return m.renderSaved()
	}
	return m.renderEdit()
}

func (m FormModel) renderEdit() string {
	var b strings.Builder

	b.WriteString(m.renderFieldLabel("Title", fieldTitle))
	b.WriteString(" ")
	b.WriteString(m.title.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderFieldLabel(labelFor(m.name), fieldTags))
	b.WriteString(" ")
	b.WriteString(m.tags.View())
	if menu := m.tags.MenuView(); menu != "" {
		b.WriteString("\n")
		b.WriteString(components.Indent(menu, 4))
	}

	return components.TitledBox("New Record", b.String(), m.width)
}

func (m FormModel) renderSaved() string {
	pills := m.tags
	pills.ReadOnly = true

	rows := []components.TableRow{
		{Label: "Title", Value: m.savedTitle},
		{Label: labelFor(m.name), Value: m.savedValue},
	}

	var b strings.Builder
	b.WriteString(components.Table("Saved", rows, m.width))
	b.WriteString("\n\n  ")
	b.WriteString(pills.View())
	b.WriteString("\n\n  ")
	b.WriteString(MutedStyle.Render("e: edit again"))
	return b.String()
}

func (m FormModel) renderFieldLabel(label string, field int) string {
	if m.focus == field {
		return SelectedStyle.Render("> " + label + ":")
	}
	return NormalStyle.Render("  " + label + ":")
}

func labelFor(name string) string {
	if name == "" {
		return "Tags"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
