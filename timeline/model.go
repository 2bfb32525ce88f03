package timeline

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tempus/chrono"
)

// EntryCreatedMsg reports that a dragged-out provisional entry was
// committed.
type EntryCreatedMsg struct{ Entry Entry }

// EntryDeletedMsg reports an entry removal.
type EntryDeletedMsg struct{ Entry Entry }

// EntrySelectedMsg reports an entry selection.
type EntrySelectedMsg struct{ Entry Entry }

// Styles holds the lipgloss styling for the timeline.
type Styles struct {
	Entry    lipgloss.Style
	Selected lipgloss.Style
	Draft    lipgloss.Style
	Ruler    lipgloss.Style
}

// DefaultStyles returns the stock timeline look.
func DefaultStyles() Styles {
	return Styles{
		Entry: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("39")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("213")),
		Draft: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("241")),
		Ruler: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
	}
}

// Model is a horizontal timeline over a fixed axis length. Entries
// can be selected, moved, resized and deleted; a left-button drag on
// empty space grows a provisional entry that becomes real on release.
type Model struct {
	length   int
	unitsPer int
	entries  []Entry
	selected string
	draft    *Entry
	nextID   int
	styles   Styles
	tiled    bool
}

// New creates a timeline spanning length axis units, rendered at
// unitsPerCell units per terminal cell.
func New(length, unitsPerCell int) *Model {
	if unitsPerCell < 1 {
		unitsPerCell = 1
	}
	return &Model{
		length:   length,
		unitsPer: unitsPerCell,
		styles:   DefaultStyles(),
		tiled:    true,
	}
}

// Length returns the axis length in units.
func (m *Model) Length() int { return m.length }

// SetTiled toggles between tiled lanes and single-lane stacking.
func (m *Model) SetTiled(tiled bool) { m.tiled = tiled }

// Entries returns the committed entries.
func (m *Model) Entries() []Entry { return m.entries }

// Selected returns the selected entry, if any.
func (m *Model) Selected() (Entry, bool) {
	for _, e := range m.entries {
		if e.ID == m.selected {
			return e, true
		}
	}
	return Entry{}, false
}

// Add inserts a committed entry directly, bypassing the drag flow.
func (m *Model) Add(start, end int) Entry {
	if start > end {
		start, end = end, start
	}
	e := Entry{ID: m.newID(), Start: start, End: end}
	m.entries = append(m.entries, e)
	return e
}

func (m *Model) newID() string {
	m.nextID++
	return fmt.Sprintf("entry-%d", m.nextID)
}

func (m *Model) Init() tea.Cmd { return nil }

// Update handles entry manipulation keys and the drag lifecycle.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	sel, ok := m.Selected()
	switch msg.String() {
	case "tab":
		m.selectNext()
	case "esc", "escape":
		if m.draft != nil {
			m.CancelDraft()
		} else {
			m.selected = ""
		}
	case "delete", "backspace":
		if ok {
			m.remove(sel.ID)
			return m, func() tea.Msg { return EntryDeletedMsg{Entry: sel} }
		}
	case "enter":
		if ok {
			return m, func() tea.Msg { return EntrySelectedMsg{Entry: sel} }
		}
	case "left":
		if ok {
			m.replace(Move(sel, -m.unitsPer, m.length))
		}
	case "right":
		if ok {
			m.replace(Move(sel, m.unitsPer, m.length))
		}
	case "shift+left":
		if ok {
			m.replace(Resize(sel, -m.unitsPer, m.length, false))
		}
	case "shift+right":
		if ok {
			m.replace(Resize(sel, m.unitsPer, m.length, false))
		}
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (*Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	at := msg.X * m.unitsPer
	switch msg.Action {
	case tea.MouseActionPress:
		if e, ok := m.entryAt(at); ok {
			m.selected = e.ID
			return m, func() tea.Msg { return EntrySelectedMsg{Entry: e} }
		}
		m.BeginDraft(at)
	case tea.MouseActionMotion:
		m.StretchDraft(at)
	case tea.MouseActionRelease:
		return m, m.CommitDraft()
	}
	return m, nil
}

// BeginDraft starts a provisional entry at the given axis offset.
func (m *Model) BeginDraft(at int) {
	if at < 0 || at >= m.length {
		return
	}
	m.draft = &Entry{Start: at, End: at + m.unitsPer}
	if m.draft.End > m.length {
		m.draft.End = m.length
	}
}

// StretchDraft extends the provisional entry's trailing edge toward
// the offset. Stretching behind the anchor is ignored.
func (m *Model) StretchDraft(to int) {
	if m.draft == nil || to <= m.draft.Start {
		return
	}
	if to > m.length {
		to = m.length
	}
	m.draft.End = to
}

// CommitDraft promotes the provisional entry and announces it.
func (m *Model) CommitDraft() tea.Cmd {
	if m.draft == nil {
		return nil
	}
	e := Entry{ID: m.newID(), Start: m.draft.Start, End: m.draft.End}
	m.entries = append(m.entries, e)
	m.selected = e.ID
	m.draft = nil
	return func() tea.Msg { return EntryCreatedMsg{Entry: e} }
}

// CancelDraft discards the provisional entry.
func (m *Model) CancelDraft() { m.draft = nil }

// Draft returns the in-flight provisional entry, if any.
func (m *Model) Draft() (Entry, bool) {
	if m.draft == nil {
		return Entry{}, false
	}
	return *m.draft, true
}

func (m *Model) entryAt(at int) (Entry, bool) {
	for _, e := range m.entries {
		if at >= e.Start && at < e.End {
			return e, true
		}
	}
	return Entry{}, false
}

func (m *Model) replace(e Entry) {
	for i := range m.entries {
		if m.entries[i].ID == e.ID {
			m.entries[i] = e
			return
		}
	}
}

func (m *Model) remove(id string) {
	for i := range m.entries {
		if m.entries[i].ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			if m.selected == id {
				m.selected = ""
			}
			return
		}
	}
}

func (m *Model) selectNext() {
	if len(m.entries) == 0 {
		return
	}
	for i, e := range m.entries {
		if e.ID == m.selected {
			m.selected = m.entries[(i+1)%len(m.entries)].ID
			return
		}
	}
	m.selected = m.entries[0].ID
}

// View renders the ruler, one row per lane, and the draft row when a
// drag is in flight.
func (m *Model) View() string {
	cells := m.length / m.unitsPer
	var b strings.Builder
	b.WriteString(m.styles.Ruler.Render(Ruler(m.length, m.unitsPer, 3600)))
	b.WriteString("\n")

	placements := AssignLanes(m.entries, m.tiled)
	lanes := LaneCount(placements)
	if lanes == 0 {
		lanes = 1
	}
	for lane := 0; lane < lanes; lane++ {
		b.WriteString(m.renderLane(placements, lane, cells))
		b.WriteString("\n")
	}
	if m.draft != nil {
		b.WriteString(m.renderDraft(cells))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderLane(placements []Placement, lane, cells int) string {
	row := make([]string, cells)
	for i := range row {
		row[i] = " "
	}
	for _, p := range placements {
		if p.Lane != lane {
			continue
		}
		style := m.styles.Entry
		if p.Entry.ID == m.selected {
			style = m.styles.Selected
		}
		from := p.Entry.Start / m.unitsPer
		to := p.Entry.End / m.unitsPer
		for x := from; x < to && x < cells; x++ {
			row[x] = style.Render("▄")
		}
	}
	return strings.Join(row, "")
}

func (m *Model) renderDraft(cells int) string {
	row := make([]string, cells)
	for i := range row {
		row[i] = " "
	}
	from := m.draft.Start / m.unitsPer
	to := m.draft.End / m.unitsPer
	for x := from; x < to && x < cells; x++ {
		row[x] = m.styles.Draft.Render("▄")
	}
	return strings.Join(row, "")
}

// Ruler builds a tick row with a time label every markEvery units,
// e.g. "00:00" marks each hour on a seconds axis.
func Ruler(length, unitsPerCell, markEvery int) string {
	cells := length / unitsPerCell
	row := make([]byte, 0, cells)
	var b strings.Builder
	for cell := 0; cell < cells; {
		units := cell * unitsPerCell
		if units%markEvery == 0 {
			label := chrono.FormatSeconds(units, false)
			if cell+len(label) <= cells {
				b.Write(row)
				row = row[:0]
				b.WriteString(label)
				cell += len(label)
				continue
			}
		}
		row = append(row, '.')
		cell++
	}
	b.Write(row)
	return b.String()
}
