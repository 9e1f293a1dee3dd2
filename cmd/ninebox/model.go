package main

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/ninebox"
	"github.com/gogpu/ninebox/export"
	"github.com/gogpu/ninebox/font"
	"github.com/gogpu/ninebox/grid"
	"github.com/gogpu/ninebox/prefs"
)

// Input fields, in focus order. Lock fields follow fieldGlyph, one per
// surrounding position.
const (
	fieldSearch = iota
	fieldGlyph
	fieldFirstLock
)

const cellWidth = 9

var (
	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Height(1).
			Padding(1, 0).
			Align(lipgloss.Center).
			Border(lipgloss.NormalBorder())
	centerStyle  = cellStyle.Copy().BorderForeground(lipgloss.Color("12")).Bold(true)
	lockedStyle  = cellStyle.Copy().BorderForeground(lipgloss.Color("10"))
	invalidStyle = cellStyle.Copy().BorderForeground(lipgloss.Color("9"))
	labelStyle   = lipgloss.NewStyle().Width(10).Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

type model struct {
	c     *ninebox.Controller
	ws    *font.Workspace
	store *prefs.FileStore
	cfg   *Config
	label export.Labeler

	inputs []textinput.Model
	focus  int
	status string
	width  int
	height int
}

func newModel(c *ninebox.Controller, ws *font.Workspace, store *prefs.FileStore, cfg *Config) *model {
	m := &model{
		c:     c,
		ws:    ws,
		store: store,
		cfg:   cfg,
		label: export.ServiceLabeler(ws),
	}

	m.inputs = make([]textinput.Model, fieldFirstLock+len(grid.Surrounding))
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 30
		switch {
		case i == fieldSearch:
			ti.Placeholder = "characters or glyph names"
			ti.SetValue(c.SearchText())
		case i == fieldGlyph:
			ti.Placeholder = "glyph being edited"
		default:
			ti.Placeholder = "lock"
			ti.SetValue(c.LockInput(lockPosition(i)))
		}
		m.inputs[i] = ti
	}
	m.inputs[fieldSearch].Focus()

	m.apply(c.Handle(ninebox.FontContextChangedEvent{}))
	m.apply(c.Handle(ninebox.ShowEvent{}))
	return m
}

func lockPosition(field int) grid.Position {
	return grid.Surrounding[field-fieldFirstLock]
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.save()
			return m, tea.Quit
		case "tab", "down":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		case "ctrl+n":
			m.ws.Next()
			m.inputs[fieldGlyph].SetValue("")
			m.apply(m.c.Handle(ninebox.FontContextChangedEvent{}))
			return m, nil
		case "ctrl+w":
			m.ws.CloseActive()
			m.inputs[fieldGlyph].SetValue("")
			m.apply(m.c.Handle(ninebox.FontClosedEvent{}))
			if m.ws.Active() != nil {
				m.apply(m.c.Handle(ninebox.FontContextChangedEvent{}))
			}
			return m, nil
		case "ctrl+l":
			m.apply(m.c.Handle(ninebox.LockModeToggledEvent{}))
			return m, nil
		case "ctrl+r":
			m.apply(m.c.Handle(ninebox.RandomizeEvent{}))
			return m, nil
		case "ctrl+x":
			m.apply(m.c.Handle(ninebox.ClearLocksEvent{}))
			m.syncLockFields()
			return m, nil
		case "ctrl+t":
			if m.focus >= fieldFirstLock {
				m.apply(m.c.Handle(ninebox.LockPositionToggledEvent{Position: lockPosition(m.focus)}))
				m.syncLockFields()
			}
			return m, nil
		case "ctrl+e":
			m.exportPNG()
			return m, nil
		case "ctrl+y":
			m.copyArrangement()
			return m, nil
		}
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if after := m.inputs[m.focus].Value(); after != before {
		m.fieldChanged(m.focus, after)
	}
	return m, cmd
}

func (m *model) setFocus(i int) tea.Cmd {
	n := len(m.inputs)
	i = ((i % n) + n) % n
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

func (m *model) fieldChanged(field int, value string) {
	switch {
	case field == fieldSearch:
		m.apply(m.c.Handle(ninebox.SearchTextChangedEvent{Text: value}))
	case field == fieldGlyph:
		if id, ok := m.c.Parser().First(value); ok {
			m.ws.Select(id)
		} else {
			m.ws.ClearSelection()
		}
		m.apply(m.c.Handle(ninebox.SelectionChangedEvent{}))
	default:
		m.apply(m.c.Handle(ninebox.LockInputChangedEvent{Position: lockPosition(field), Text: value}))
	}
}

func (m *model) syncLockFields() {
	for i := fieldFirstLock; i < len(m.inputs); i++ {
		m.inputs[i].SetValue(m.c.LockInput(lockPosition(i)))
	}
}

// apply carries out the effects of an event. Recompose and repaint need
// nothing here: View pulls the arrangement on every frame.
func (m *model) apply(eff ninebox.Effects) {
	if eff.Has(ninebox.EffectPersist) && m.store != nil {
		if err := m.c.Save(m.store); err != nil {
			m.status = errorStyle.Render(err.Error())
		}
	}
}

func (m *model) save() {
	if m.store == nil {
		return
	}
	if err := m.c.Save(m.store); err != nil {
		ninebox.Logger().Warn("saving on exit failed", "err", err)
	}
}

func (m *model) exportPNG() {
	path, err := m.cfg.exportPath(fmt.Sprintf("ninebox-%s.png", time.Now().Format("20060102-150405")))
	if err != nil {
		m.status = errorStyle.Render(err.Error())
		return
	}
	opts := export.DefaultOptions()
	opts.CellSize = m.cfg.ExportSize
	opts.Highlight = m.c.InvalidLocks()
	if d := m.ws.Active(); d != nil {
		opts.FontData = d.Data()
	}
	if err := export.SavePNG(path, m.c.DisplayArrangement(), m.label, opts); err != nil {
		m.status = errorStyle.Render(err.Error())
		return
	}
	m.status = "exported " + path
}

func (m *model) copyArrangement() {
	arr := m.c.DisplayArrangement()
	var rows []string
	for r := range 3 {
		var row strings.Builder
		for col := range 3 {
			row.WriteString(m.label(arr[r*3+col]))
		}
		rows = append(rows, row.String())
	}
	if err := clipboard.WriteAll(strings.Join(rows, "\n")); err != nil {
		m.status = errorStyle.Render("clipboard: " + err.Error())
		return
	}
	m.status = "copied to clipboard"
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(m.gridView())
	b.WriteString("\n")
	b.WriteString(m.fontLine())
	b.WriteString("\n\n")
	b.WriteString(m.fieldsView())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(helpStyle.Render("tab move · ^l lock mode · ^t pin · ^r shuffle · ^x clear locks · ^n next font · ^e png · ^y copy · esc quit"))
	return b.String()
}

func (m *model) gridView() string {
	arr := m.c.DisplayArrangement()
	invalid := make(map[grid.Position]bool)
	for _, p := range m.c.InvalidLocks() {
		invalid[p] = true
	}

	rows := make([]string, 0, 3)
	for r := range 3 {
		cells := make([]string, 0, 3)
		for col := range 3 {
			p := grid.Position(r*3 + col)
			style := cellStyle
			switch {
			case p == grid.Center:
				style = centerStyle
			case invalid[p]:
				style = invalidStyle
			case m.c.LockMode() && strings.TrimSpace(m.c.LockInput(p)) != "":
				style = lockedStyle
			}
			cells = append(cells, style.Render(cellText(m.label(arr[p]))))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// cellText fits s into a cell, counting wide characters as two columns.
func cellText(s string) string {
	if runewidth.StringWidth(s) > cellWidth {
		return runewidth.Truncate(s, cellWidth, "…")
	}
	return s
}

func (m *model) fontLine() string {
	ctx, ok := m.ws.CurrentContext()
	if !ok {
		return statusStyle.Render("no font open")
	}
	parts := []string{fmt.Sprintf("%s %s", ctx.Font.Family(), ctx.Master.Name)}
	if m.c.LockMode() {
		parts = append(parts, "lock mode")
	}
	if sel, ok := m.ws.SelectedGlyph(); ok {
		desc := string(sel)
		if r, size := utf8.DecodeRuneInString(m.label(sel)); size > 0 && r != utf8.RuneError {
			desc = fmt.Sprintf("%s U+%04X %s", desc, r, runenames.Name(r))
		}
		parts = append(parts, desc, fmt.Sprintf("advance %.0f", m.c.Widths()[grid.Center]))
	}
	return statusStyle.Render(strings.Join(parts, " · "))
}

func (m *model) fieldsView() string {
	var b strings.Builder
	for i, in := range m.inputs {
		var name string
		switch {
		case i == fieldSearch:
			name = "search"
		case i == fieldGlyph:
			name = "glyph"
		default:
			p := lockPosition(i)
			name = fmt.Sprintf("lock %d,%d", p.Row(), p.Col())
		}
		line := labelStyle.Render(name) + in.View()
		if i >= fieldFirstLock {
			if v := m.c.Validation(lockPosition(i)); !v.Valid {
				line += errorStyle.Render("  not in font: " + strings.Join(v.Invalid, " "))
			}
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
