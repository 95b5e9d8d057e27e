package weekview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/dayflow/internal/keys"
	"github.com/nhle/dayflow/internal/planner"
	"github.com/nhle/dayflow/internal/theme"
)

// Model is the read-only week overview: one summary row per simulated
// day of the 7-day roll-forward.
type Model struct {
	plans  []planner.DayPlan
	loaded bool

	keys   *keys.KeyMap
	width  int
	height int
}

// New creates a new week overview model.
func New(keys *keys.KeyMap, width, height int) Model {
	return Model{keys: keys, width: width, height: height}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetPlans replaces the displayed week.
func (m *Model) SetPlans(plans []planner.DayPlan) {
	m.plans = plans
	m.loaded = true
}

// Update handles messages for the week view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the 7-day overview.
func (m Model) View() string {
	if !m.loaded {
		return theme.HelpStyle.Render("Planning week...")
	}

	var b strings.Builder
	for _, p := range m.plans {
		b.WriteString(m.dayRow(p))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render("Simulated roll-forward; nothing is persisted."))
	return b.String()
}

// SetSize updates the week view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) dayRow(p planner.DayPlan) string {
	tasks, minutes := summarize(p.Slots)

	day := theme.TimeStyle.Render(p.Date.Format("Mon Jan 02"))
	summary := fmt.Sprintf("%2d tasks, %3d min", tasks, minutes)

	var hobby string
	if p.Hobby == planner.HobbySelected {
		hobby = theme.NoticeStyle.Render("  hobby")
	}

	return fmt.Sprintf("%s  %s%s", day, summary, hobby)
}

// summarize counts task slots and their total minutes.
func summarize(slots []planner.ScheduleSlot) (tasks, minutes int) {
	for i := range slots {
		if slots[i].Kind != planner.SlotTask {
			continue
		}
		tasks++
		start, ok1 := planner.ParseClock(slots[i].Start)
		end, ok2 := planner.ParseClock(slots[i].End)
		if ok1 && ok2 && end > start {
			minutes += end - start
		}
	}
	return tasks, minutes
}
