package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/dayflow/internal/keys"
	"github.com/nhle/dayflow/internal/model"
	"github.com/nhle/dayflow/internal/planner"
	"github.com/nhle/dayflow/internal/store"
	"github.com/nhle/dayflow/internal/ui"
	"github.com/nhle/dayflow/internal/ui/agenda"
	helpview "github.com/nhle/dayflow/internal/ui/help"
	"github.com/nhle/dayflow/internal/ui/weekview"
)

// planLoadedMsg carries one day's planning result to the UI.
type planLoadedMsg struct {
	date time.Time
	res  planner.Result
	err  error
}

// weekLoadedMsg carries the 7-day roll-forward to the UI.
type weekLoadedMsg struct {
	plans []planner.DayPlan
	err   error
}

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewAgenda ViewState = iota
	ViewWeek
	ViewHelp
)

// Model is the root Bubble Tea model: it routes keys between views,
// owns the layout, and drives plan loading through the store.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	store        store.Store
	settings     model.Settings
	keys         *keys.KeyMap

	agendaView agenda.Model
	weekView   weekview.Model
	helpView   helpview.Model

	ready      bool
	errMessage string
}

// New creates the root application model.
func New(s store.Store, cfg *model.AppConfig) Model {
	km := keys.DefaultKeyMap()

	return Model{
		currentView: ViewAgenda,
		store:       s,
		settings:    cfg.Settings(),
		keys:        km,
		agendaView:  agenda.New(km, 80, 24),
		weekView:    weekview.New(km, 80, 24),
		helpView:    helpview.New(km, 80, 24),
	}
}

// Init loads the plan for the current work-shifted day.
func (m Model) Init() tea.Cmd {
	return m.loadDayPlan(m.workToday())
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
		m.agendaView.SetSize(w, h)
		m.weekView.SetSize(w, h)
		m.helpView.SetSize(w, h)
		return m, nil

	case planLoadedMsg:
		if msg.err != nil {
			m.errMessage = msg.err.Error()
			return m, nil
		}
		m.errMessage = ""
		m.agendaView.SetPlan(msg.date, msg.res, m.settings)
		return m, nil

	case weekLoadedMsg:
		if msg.err != nil {
			m.errMessage = msg.err.Error()
			m.currentView = ViewAgenda
			return m, nil
		}
		m.errMessage = ""
		m.weekView.SetPlans(msg.plans)
		return m, nil

	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c", key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}
			m.previousView = m.currentView
			m.currentView = ViewHelp
			return m, nil

		case key.Matches(msg, m.keys.Back):
			if m.currentView != ViewAgenda {
				m.currentView = ViewAgenda
			}
			return m, nil

		case key.Matches(msg, m.keys.Week):
			if m.currentView == ViewWeek {
				m.currentView = ViewAgenda
				return m, nil
			}
			m.previousView = m.currentView
			m.currentView = ViewWeek
			return m, m.loadWeekPlan()

		case key.Matches(msg, m.keys.PrevDay):
			if m.currentView == ViewAgenda {
				return m, m.loadDayPlan(m.agendaView.Date().AddDate(0, 0, -1))
			}

		case key.Matches(msg, m.keys.NextDay):
			if m.currentView == ViewAgenda {
				return m, m.loadDayPlan(m.agendaView.Date().AddDate(0, 0, 1))
			}

		case key.Matches(msg, m.keys.Today):
			if m.currentView == ViewAgenda {
				return m, m.loadDayPlan(m.workToday())
			}

		case key.Matches(msg, m.keys.Refresh):
			switch m.currentView {
			case ViewAgenda:
				return m, m.loadDayPlan(m.agendaView.Date())
			case ViewWeek:
				return m, m.loadWeekPlan()
			}
		}
	}

	return m.updateActiveView(msg)
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewAgenda:
		m.agendaView, cmd = m.agendaView.Update(msg)
	case ViewWeek:
		m.weekView, cmd = m.weekView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Dayflow", m.headerContext())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewAgenda:
		return m.agendaView.View()
	case ViewWeek:
		return m.weekView.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return ""
	}
}

// headerContext returns the right side of the header bar.
func (m Model) headerContext() string {
	switch m.currentView {
	case ViewWeek:
		return "week overview"
	default:
		d := m.agendaView.Date()
		if d.IsZero() {
			return ""
		}
		return d.Format("Mon, Jan 02 2006")
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.errMessage != "" {
		return fmt.Sprintf("error: %s | r retry | q quit", m.errMessage)
	}

	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewWeek:
		return "w/esc back | r replan | q quit"
	default:
		return "q quit | ? help | h/l prev/next day | t today | w week | r replan"
	}
}

// loadDayPlan returns a command that plans one date through the store.
func (m Model) loadDayPlan(date time.Time) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		res, err := BuildDayPlan(context.Background(), s, date, time.Now(), nil)
		return planLoadedMsg{date: date, res: res, err: err}
	}
}

// loadWeekPlan returns a command that runs the 7-day roll-forward.
func (m Model) loadWeekPlan() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		plans, err := BuildWeekPlan(context.Background(), s, time.Now())
		return weekLoadedMsg{plans: plans, err: err}
	}
}

// workToday returns midnight of the current work-shifted day.
func (m Model) workToday() time.Time {
	now := time.Now()
	if now.Hour() < m.settings.WorkStartHour {
		now = now.AddDate(0, 0, -1)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
