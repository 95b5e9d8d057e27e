package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/dayflow/internal/app"
	"github.com/nhle/dayflow/internal/model"
	"github.com/nhle/dayflow/internal/planner"
	"github.com/nhle/dayflow/internal/store"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		runTUI()
		return
	}

	switch os.Args[1] {
	case "plan":
		runPlan(os.Args[2:])
	case "week":
		runWeek(os.Args[2:])
	case "version":
		fmt.Printf("dayflow %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// setup loads configuration, opens the database, and syncs the
// configured schedule into the store so planning always sees it.
func setup() (*store.SQLiteStore, *model.AppConfig) {
	configPath := os.Getenv("DAYFLOW_CONFIG")
	if configPath == "" {
		configPath = model.DefaultConfigPath()
	}

	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	dbPath := cfg.DatabasePath
	if dbPath == "" {
		dbPath = filepath.Join(filepath.Dir(configPath), "dayflow.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create data directory: %v\n", err)
		os.Exit(1)
	}

	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}

	if err := s.SaveSettings(context.Background(), cfg.Settings()); err != nil {
		fmt.Fprintf(os.Stderr, "save settings: %v\n", err)
		os.Exit(1)
	}

	return s, cfg
}

func runTUI() {
	s, cfg := setup()
	defer s.Close()

	p := tea.NewProgram(app.New(s, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "dayflow: %v\n", err)
		os.Exit(1)
	}
}

func runPlan(args []string) {
	var dateArg, startArg string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--date":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--date requires a value")
				os.Exit(1)
			}
			i++
			dateArg = args[i]
		case "--start":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--start requires a value")
				os.Exit(1)
			}
			i++
			startArg = args[i]
		default:
			fmt.Fprintf(os.Stderr, "unknown flag: %s\nusage: dayflow plan [--date YYYY-MM-DD] [--start HH:MM]\n", args[i])
			os.Exit(1)
		}
	}

	now := time.Now()
	date := workToday(now)
	if dateArg != "" {
		d, err := time.ParseInLocation("2006-01-02", dateArg, time.Local)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --date value: %s\n", dateArg)
			os.Exit(1)
		}
		date = d
	}

	var startOverride *int
	if startArg != "" {
		min, ok := planner.ParseClock(startArg)
		if !ok {
			fmt.Fprintf(os.Stderr, "invalid --start value: %s\n", startArg)
			os.Exit(1)
		}
		startOverride = &min
	}

	s, _ := setup()
	defer s.Close()

	res, err := app.BuildDayPlan(context.Background(), s, date, now, startOverride)
	if err != nil {
		fmt.Fprintf(os.Stderr, "plan: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Plan for %s\n\n", date.Format("Mon, Jan 02 2006"))
	printSlots(res.Slots)
	if res.Hobby == planner.HobbyRest {
		fmt.Println("\nHobby rest day: weekly quota reached.")
	}
}

func runWeek(args []string) {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "unknown flag: %s\nusage: dayflow week\n", args[0])
		os.Exit(1)
	}

	s, _ := setup()
	defer s.Close()

	plans, err := app.BuildWeekPlan(context.Background(), s, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "week: %v\n", err)
		os.Exit(1)
	}

	for i, p := range plans {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s\n", p.Date.Format("Mon, Jan 02 2006"))
		printSlots(p.Slots)
	}
}

func printSlots(slots []planner.ScheduleSlot) {
	if len(slots) == 0 {
		fmt.Println("  (nothing planned)")
		return
	}
	for i := range slots {
		s := &slots[i]
		label := s.Reason
		if s.Candidate != nil {
			label = s.Candidate.Title
		}
		fmt.Printf("  %s-%s  %-8s %s\n", s.Start, s.End, s.Kind, label)
	}
}

// workToday returns midnight of the current work-shifted day: before
// 06:00 the date still counts as yesterday. The exact work window is
// applied later from settings; the CLI only needs a default anchor.
func workToday(now time.Time) time.Time {
	if now.Hour() < model.DefaultSettings().WorkStartHour {
		now = now.AddDate(0, 0, -1)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `dayflow %s — heuristic day planner

Usage: dayflow [command] [options]

Running with no command opens the interactive agenda.

Commands:
  plan [--date YYYY-MM-DD] [--start HH:MM]   Print the plan for a date
  week                                       Print the 7-day roll-forward
  version                                    Show version
  help                                       Show this help

`, version)
}
