package agenda

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/dayflow/internal/keys"
	"github.com/nhle/dayflow/internal/model"
	"github.com/nhle/dayflow/internal/planner"
	"github.com/nhle/dayflow/internal/theme"
)

// Model is the read-only day agenda view. It renders the placed slots
// for one date, filling unoccupied stretches of the work window with
// free rows. The parent owns plan loading and pushes results in via
// SetPlan.
type Model struct {
	date     time.Time
	result   planner.Result
	settings model.Settings
	loaded   bool

	viewport viewport.Model
	keys     *keys.KeyMap
	width    int
	height   int
}

// New creates a new agenda view model.
func New(keys *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, height)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		keys:     keys,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the agenda view.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetPlan replaces the displayed plan.
func (m *Model) SetPlan(date time.Time, res planner.Result, settings model.Settings) {
	m.date = date
	m.result = res
	m.settings = settings
	m.loaded = true
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

// Date returns the currently viewed date.
func (m Model) Date() time.Time {
	return m.date
}

// Update handles scrolling; everything else is routed by the parent.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the agenda.
func (m Model) View() string {
	if !m.loaded {
		return theme.HelpStyle.Render("Planning...")
	}
	return m.viewport.View()
}

// SetSize updates the agenda view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	if m.loaded {
		m.viewport.SetContent(m.renderContent())
	}
}

// renderContent builds the full agenda string for the viewport.
func (m Model) renderContent() string {
	var b strings.Builder

	if notice := m.hobbyNotice(); notice != "" {
		b.WriteString(theme.NoticeStyle.Render(notice))
		b.WriteString("\n\n")
	}

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(theme.HelpStyle.Render("Nothing planned for this day."))
		return b.String()
	}
	for _, r := range rows {
		b.WriteString(r)
		b.WriteString("\n")
	}
	return b.String()
}

// rows renders one line per slot, inserting free rows for unoccupied
// stretches of the work window.
func (m Model) rows() []string {
	var out []string
	cursor := m.settings.WorkStartHour * 60

	for i := range m.result.Slots {
		s := &m.result.Slots[i]
		start, ok := planner.ParseClock(s.Start)
		if !ok {
			continue
		}
		if start > cursor {
			out = append(out, m.freeRow(cursor, start))
		}
		out = append(out, m.slotRow(s))
		if end, ok := planner.ParseClock(s.End); ok && end > cursor {
			cursor = end
		}
	}

	workEnd := m.settings.WorkEndHour * 60
	if cursor < workEnd {
		out = append(out, m.freeRow(cursor, workEnd))
	}
	return out
}

func (m Model) slotRow(s *planner.ScheduleSlot) string {
	timeCol := theme.TimeStyle.Render(fmt.Sprintf("%s-%s", s.Start, s.End))

	label := s.Reason
	var badge string
	if s.Candidate != nil {
		label = s.Candidate.Title
		if s.Candidate.Goal != nil {
			badge = theme.PriorityStyle(s.Candidate.Goal.Priority).
				Render(" [" + s.Candidate.Goal.Priority + "]")
		}
	}

	var marker string
	switch s.Kind {
	case planner.SlotOngoing:
		marker = " (ongoing)"
	case planner.SlotOverlap:
		marker = " (overlaps)"
	case planner.SlotPassed:
		marker = " (passed)"
	}

	styled := theme.SlotStyle(s.Kind).Render(label + marker)
	return fmt.Sprintf("%s  %s%s", timeCol, styled, badge)
}

func (m Model) freeRow(start, end int) string {
	timeCol := theme.TimeStyle.Render(fmt.Sprintf("%s-%s", minutesClock(start), minutesClock(end)))
	label := theme.SlotStyle(planner.SlotFree).Render(fmt.Sprintf("free (%d min)", end-start))
	return fmt.Sprintf("%s  %s", timeCol, label)
}

// hobbyNotice returns a one-line notice for non-selected hobby days.
func (m Model) hobbyNotice() string {
	switch m.result.Hobby {
	case planner.HobbyRest:
		return "Hobby rest day: weekly quota reached."
	default:
		return ""
	}
}

func minutesClock(min int) string {
	return fmt.Sprintf("%02d:%02d", (min/60)%24, min%60)
}
