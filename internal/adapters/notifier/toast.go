// Package notifier implements the Notifier port as a terminal toast.
package notifier

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/scaledash/internal/core/ports"
	"go.trai.ch/scaledash/internal/ui/output"
	"go.trai.ch/scaledash/internal/ui/style"
)

// Toast prints each notification as a bordered box and records it in the log.
type Toast struct {
	mu     sync.Mutex
	out    io.Writer
	box    lipgloss.Style
	logger ports.Logger
}

// New creates a Toast writing to os.Stderr. logger may be nil.
func New(logger ports.Logger) *Toast {
	return NewWithWriter(os.Stderr, logger)
}

// NewWithWriter creates a Toast writing to w.
func NewWithWriter(w io.Writer, logger ports.Logger) *Toast {
	box := output.Renderer(w).NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.Yellow).
		Foreground(style.Yellow).
		Padding(0, 1)

	return &Toast{out: w, box: box, logger: logger}
}

// Notify shows message. It never fails; write errors are dropped.
func (t *Toast) Notify(message string) {
	t.mu.Lock()
	_, _ = io.WriteString(t.out, t.box.Render(style.Warning+" "+message)+"\n")
	t.mu.Unlock()

	if t.logger != nil {
		t.logger.Info("notification shown: " + message)
	}
}
