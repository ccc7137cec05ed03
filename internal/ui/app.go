package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/tagfield/internal/config"
	"github.com/gravitrone/tagfield/internal/ui/components"
)

// --- Messages ---

type errMsg struct{ err error }
type clearToastMsg struct{}

type appToast struct {
	level string
	text  string
}

// --- App Model ---

// App is the root TUI model: the record form, the preset picker, and the
// overlay/feedback chrome around them.
type App struct {
	form   FormModel
	config *config.Config

	width  int
	height int

	helpOpen    bool
	quitConfirm bool

	pickerOpen  bool
	picker      *components.List
	presetNames []string

	err   string
	toast *appToast
}

// NewApp wraps a form in the application chrome. cfg may be nil; the preset
// picker then stays unavailable.
func NewApp(form FormModel, cfg *config.Config) App {
	var names []string
	if cfg != nil {
		names = cfg.PresetNames()
	}
	return App{
		form:        form,
		config:      cfg,
		presetNames: names,
	}
}

func (a App) Init() tea.Cmd {
	return a.form.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.form.width = msg.Width
		a.form.height = msg.Height
		return a, nil

	case errMsg:
		a.err = msg.err.Error()
		return a, nil
	case clearToastMsg:
		a.toast = nil
		return a, nil
	case tagCreatedMsg:
		return a, a.setToast("success", fmt.Sprintf("Created tag %q.", msg.tag))
	case formSavedMsg:
		return a, a.setToast("success", fmt.Sprintf("Saved %s=%q.", msg.name, msg.value))

	case tea.KeyMsg:
		if a.quitConfirm {
			switch {
			case isKey(msg, "y"):
				return a, tea.Quit
			case isKey(msg, "n"), isBack(msg):
				a.quitConfirm = false
			}
			return a, nil
		}
		if a.helpOpen {
			if isBack(msg) || isKey(msg, "?") {
				a.helpOpen = false
			}
			return a, nil
		}
		if a.pickerOpen {
			return a.handlePickerKeys(msg)
		}
		if a.err != "" {
			a.err = ""
		}

		if isKey(msg, "ctrl+c") {
			return a.confirmQuit()
		}
		if isKey(msg, "ctrl+p") && len(a.presetNames) > 0 {
			a.openPicker()
			return a, nil
		}

		// Escape belongs to the tag field while it owns the cursor; anywhere
		// else it releases the keyboard so the letter shortcuts come back.
		if isBack(msg) && !a.form.capturesEscape() {
			a.form.releaseFocus()
			return a, nil
		}

		// Letter shortcuts only while no field owns the keyboard, so the
		// tag field can hold tags containing q or question marks.
		if !a.form.capturesText() {
			if isKey(msg, "?") {
				a.helpOpen = true
				return a, nil
			}
			if isQuit(msg) {
				return a.confirmQuit()
			}
		}
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return a, cmd
}

func (a App) confirmQuit() (tea.Model, tea.Cmd) {
	if a.form.hasUnsaved() {
		a.quitConfirm = true
		return a, nil
	}
	return a, tea.Quit
}

func (a *App) openPicker() {
	a.pickerOpen = true
	a.picker = components.NewList(8)
	a.picker.SetItems(a.presetNames)
}

func (a App) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isBack(msg):
		a.pickerOpen = false
	case isDown(msg):
		a.picker.Down()
	case isUp(msg):
		a.picker.Up()
	case isEnter(msg):
		idx := a.picker.Selected()
		a.pickerOpen = false
		if idx < len(a.presetNames) {
			name := a.presetNames[idx]
			if opts, ok := a.config.Preset(name); ok {
				a.form.tags.SetOptions(opts)
				return a, a.setToast("info", fmt.Sprintf("Preset %s applied (%d options).", name, len(opts)))
			}
		}
	}
	return a, nil
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(), a.width)

	var content string
	switch {
	case a.quitConfirm:
		content = a.renderQuitConfirm()
	case a.helpOpen:
		content = a.renderHelp()
	case a.pickerOpen:
		content = a.renderPicker()
	default:
		content = a.form.View()
	}
	content = centerBlockUniform(content, a.width)

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.err != "" {
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox("Error", a.err, a.width), a.width)
	} else if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(a.renderToast(), a.width)
	}

	return fmt.Sprintf("%s\n%s\n\n%s%s", banner, content, hints, feedback)
}

func (a App) renderQuitConfirm() string {
	return components.Indent(components.ConfirmPreviewDialog("Quit without saving?", nil, a.form.pendingChanges(), a.width), 1)
}

func (a App) renderHelp() string {
	hints := []struct{ key, desc string }{
		{"type", "Filter the suggestion menu"},
		{"enter", "Add the highlighted tag"},
		{",", "Commit the typed text as a tag"},
		{"up/down", "Move the menu highlight"},
		{"backspace", "Delete text, then the last tag"},
		{"esc", "Close the menu and drop the cursor"},
		{"tab", "Next field"},
		{"ctrl+s", "Save the record"},
		{"ctrl+p", "Apply an option preset"},
		{"ctrl+c", "Quit"},
	}
	lines := make([]string, 0, len(hints)+2)
	lines = append(lines, MutedStyle.Render("esc to close"))
	lines = append(lines, "")
	for _, h := range hints {
		lines = append(lines, "  "+components.InfoRow(h.key, h.desc))
	}
	body := strings.Join(lines, "\n")
	return components.Indent(components.TitledBox("Help", body, a.width), 1)
}

func (a App) renderPicker() string {
	items := a.picker.Visible()
	if len(items) == 0 {
		return components.TitledBox("Presets", MutedStyle.Render("No presets configured."), a.width)
	}

	gridWidth := components.BoxContentWidth(a.width)
	if gridWidth <= 0 {
		gridWidth = 56
	}
	columns := []components.TableColumn{
		{Header: "Preset", Width: 14},
		{Header: "Default", Width: 7, Align: lipgloss.Center},
		{Header: "Options", Width: 20},
	}

	active := -1
	rows := make([][]string, 0, len(items))
	for i, name := range items {
		if a.picker.IsSelected(a.picker.RelToAbs(i)) {
			active = i
		}
		var opts []string
		mark := ""
		if a.config != nil {
			opts, _ = a.config.Preset(name)
			if a.config.DefaultPreset == name {
				mark = "[x]"
			}
		}
		rows = append(rows, []string{name, mark, strings.Join(opts, ", ")})
	}

	grid := components.TableGrid(columns, rows, gridWidth, active)
	return components.TitledBox("Presets", grid, a.width)
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	title := "Info"
	style := BlueStyle
	switch a.toast.level {
	case "success":
		title = "Success"
		style = SuccessStyle
	case "warning":
		title = "Warning"
		style = WarningStyle
	case "error":
		title = "Error"
		style = ErrorStyle
	}
	return components.TitledBox(title, style.Render(a.toast.text), a.width)
}

func (a App) statusHints() []string {
	if a.quitConfirm {
		return []string{
			components.Hint("y", "Confirm"),
			components.Hint("n", "Cancel"),
		}
	}
	if a.helpOpen {
		return []string{
			components.Hint("esc", "Back"),
		}
	}
	if a.pickerOpen {
		return []string{
			components.Hint("↑/↓", "Move"),
			components.Hint("enter", "Apply"),
			components.Hint("esc", "Close"),
		}
	}
	if a.form.view == formViewSaved {
		return []string{
			components.Hint("e", "Edit"),
			components.Hint("q", "Quit"),
		}
	}
	hints := []string{
		components.Hint("tab", "Next field"),
		components.Hint("enter", "Add / Save"),
		components.Hint("ctrl+s", "Save"),
	}
	if len(a.presetNames) > 0 {
		hints = append(hints, components.Hint("ctrl+p", "Presets"))
	}
	hints = append(hints, components.Hint("ctrl+c", "Quit"))
	return hints
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		w := lipgloss.Width(line)
		if w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	padded := make([]string, 0, len(lines))
	for _, line := range lines {
		padded = append(padded, prefix+line)
	}
	return strings.Join(padded, "\n")
}
