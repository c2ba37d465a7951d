package system

import (
	"fmt"
	"time"

	"github.com/plenoapp/pleno/internal/backup"
	"github.com/plenoapp/pleno/internal/cli"
	"github.com/plenoapp/pleno/internal/keyring"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: store reachable
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
	}

	// Check 2: data integrity (only if store is reachable)
	if storeReachable {
		if err := checkDataIntegrity(ctx); err != nil {
			fmt.Printf("❌ Data integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Data integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Data integrity: SKIPPED (storage not reachable)\n")
	}

	// Check 3: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 4: OS keyring (warning only, profile PIN is optional)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   keyring unavailable, profile PIN lock cannot be used\n")
	}

	// Check 5: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	_, err := ctx.Store.GetJournalEntries()
	return err
}

// checkDataIntegrity validates that every stored record still satisfies its
// own constraints.
func checkDataIntegrity(ctx *cli.Context) error {
	entries, err := ctx.Store.GetJournalEntries()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("journal entry %s: %w", e.ID, err)
		}
	}

	items, err := ctx.Store.GetScheduleItems()
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("schedule item %s: %w", item.ID, err)
		}
	}

	routines, err := ctx.Store.GetRoutineItems()
	if err != nil {
		return err
	}
	for _, r := range routines {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("routine item %s: %w", r.ID, err)
		}
	}

	goals, err := ctx.Store.GetGoals()
	if err != nil {
		return err
	}
	for _, g := range goals {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("goal %s: %w", g.ID, err)
		}
	}

	hours, err := ctx.Store.GetDailyHours()
	if err != nil {
		return err
	}
	if err := hours.Validate(); err != nil {
		return fmt.Errorf("daily hours: %w", err)
	}

	profile, err := ctx.Store.GetProfile()
	if err != nil {
		return err
	}
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("profile: %w", err)
	}

	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, run 'pleno backup create'")
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock appears to be wrong: %s", now)
	}
	if _, offset := now.Zone(); offset < -14*3600 || offset > 14*3600 {
		return fmt.Errorf("timezone offset out of range: %d seconds", offset)
	}
	return nil
}
