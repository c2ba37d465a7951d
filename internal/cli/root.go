package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/plenoapp/pleno/internal/backup"
	"github.com/plenoapp/pleno/internal/logger"
	"github.com/plenoapp/pleno/internal/storage"
)

// Context is the shared state handed to every command's Run method.
type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	DangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Checkbox renders a completion marker.
func Checkbox(done bool) string {
	if done {
		return SuccessStyle.Render("[x]")
	}
	return "[ ]"
}

// FormatMillis renders an epoch-milliseconds timestamp for display.
func FormatMillis(millis int64) string {
	return time.UnixMilli(millis).Format("02/01/2006 15:04")
}

// FormatHours renders an hour count, trimming the decimal when whole.
func FormatHours(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%dh", int(h))
	}
	return fmt.Sprintf("%.1fh", h)
}
