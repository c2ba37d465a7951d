package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/plenoapp/pleno/internal/cli"
	"github.com/plenoapp/pleno/internal/cli/alertscmd"
	"github.com/plenoapp/pleno/internal/cli/backups"
	"github.com/plenoapp/pleno/internal/cli/chat"
	"github.com/plenoapp/pleno/internal/cli/goals"
	"github.com/plenoapp/pleno/internal/cli/history"
	"github.com/plenoapp/pleno/internal/cli/hours"
	"github.com/plenoapp/pleno/internal/cli/journal"
	"github.com/plenoapp/pleno/internal/cli/message"
	"github.com/plenoapp/pleno/internal/cli/profile"
	"github.com/plenoapp/pleno/internal/cli/progress"
	"github.com/plenoapp/pleno/internal/cli/routine"
	"github.com/plenoapp/pleno/internal/cli/schedule"
	"github.com/plenoapp/pleno/internal/cli/system"
	"github.com/plenoapp/pleno/internal/constants"
	"github.com/plenoapp/pleno/internal/errors"
	"github.com/plenoapp/pleno/internal/logger"
	"github.com/plenoapp/pleno/internal/storage"
	"github.com/plenoapp/pleno/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Data file path. A .json extension selects the JSON backend, anything else SQLite." env:"PLENO_CONFIG" default:"~/.config/pleno/pleno.db"`
	Debug   bool   `help:"Enable debug logging." env:"PLENO_DEBUG"`

	Init   system.InitCmd   `cmd:"" help:"Initialize pleno storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Journal struct {
		Add    journal.JournalAddCmd    `cmd:"" help:"Register an emotional check-in."`
		List   journal.JournalListCmd   `cmd:"" help:"List journal entries." default:"1"`
		Delete journal.JournalDeleteCmd `cmd:"" help:"Delete a journal entry."`
		Stats  journal.JournalStatsCmd  `cmd:"" help:"Show well-being statistics."`
	} `cmd:"" help:"Manage the emotional journal."`
	Schedule struct {
		Add    schedule.ScheduleAddCmd    `cmd:"" help:"Schedule an activity."`
		List   schedule.ScheduleListCmd   `cmd:"" help:"List scheduled activities." default:"1"`
		Done   schedule.ScheduleDoneCmd   `cmd:"" help:"Toggle completion of an activity."`
		Delete schedule.ScheduleDeleteCmd `cmd:"" help:"Delete an activity."`
	} `cmd:"" help:"Manage the daily schedule."`
	Routine struct {
		Add    routine.RoutineAddCmd    `cmd:"" help:"Add a recurring habit."`
		List   routine.RoutineListCmd   `cmd:"" help:"List habits." default:"1"`
		Toggle routine.RoutineToggleCmd `cmd:"" help:"Toggle a habit's completion."`
		Delete routine.RoutineDeleteCmd `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage daily habits."`
	Goal struct {
		Add    goals.GoalAddCmd    `cmd:"" help:"Add a goal."`
		List   goals.GoalListCmd   `cmd:"" help:"List goals." default:"1"`
		Done   goals.GoalDoneCmd   `cmd:"" help:"Toggle completion of a goal."`
		Delete goals.GoalDeleteCmd `cmd:"" help:"Delete a goal."`
	} `cmd:"" help:"Manage personal goals."`
	Chat struct {
		Start chat.ChatStartCmd `cmd:"" help:"Start a conversation with the assistant."`
		Say   chat.ChatSayCmd   `cmd:"" help:"Send a message to the assistant."`
		Log   chat.ChatLogCmd   `cmd:"" help:"Show the conversation transcript." default:"1"`
		Reset chat.ChatResetCmd `cmd:"" help:"Clear the conversation."`
	} `cmd:"" help:"Talk to the well-being assistant."`
	Alerts struct {
		List  alertscmd.AlertListCmd  `cmd:"" help:"Show active reminders." default:"1"`
		Watch alertscmd.AlertWatchCmd `cmd:"" help:"Continuously watch for reminders."`
	} `cmd:"" help:"Schedule and goal reminders."`
	Hours struct {
		Show hours.HoursShowCmd `cmd:"" help:"Show the daily hours breakdown." default:"1"`
		Set  hours.HoursSetCmd  `cmd:"" help:"Update the daily hours breakdown."`
	} `cmd:"" help:"Track how the day's hours are spent."`
	Message struct {
		Show    message.MessageShowCmd    `cmd:"" help:"Show the message of the day." default:"1"`
		Publish message.MessagePublishCmd `cmd:"" help:"Publish a custom message of the day."`
	} `cmd:"" help:"Daily motivational message."`
	Progress struct {
		List progress.ProgressListCmd `cmd:"" help:"Show the monthly progress series." default:"1"`
		Set  progress.ProgressSetCmd  `cmd:"" help:"Record a month's well-being score."`
	} `cmd:"" help:"Monthly well-being progress."`
	History history.HistoryListCmd `cmd:"" help:"Show the activity history."`
	Profile struct {
		Show profile.ProfileShowCmd `cmd:"" help:"Show the user profile." default:"1"`
		Set  profile.ProfileSetCmd  `cmd:"" help:"Update the user profile."`
		Pin  struct {
			Set   profile.ProfilePinSetCmd   `cmd:"" help:"Set the profile lock PIN."`
			Clear profile.ProfilePinClearCmd `cmd:"" help:"Remove the profile lock PIN."`
		} `cmd:"" help:"Manage the profile lock PIN."`
	} `cmd:"" help:"Manage the user profile."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data backups."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Send a notification (used internally)."`
}

func main() {
	// Optional: local overrides like PLENO_CONFIG or PLENO_DEBUG.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Mental well-being companion: journal, schedule, habits, goals"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := utils.ExpandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		errors.Fatal(fmt.Errorf("failed to initialize logging: %w", err))
	}

	var store storage.Provider
	if strings.EqualFold(filepath.Ext(configPath), ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}

	appCtx := &cli.Context{Store: store}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	errors.Fatal(ctx.Run(appCtx))
}
