package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessDetector decides whether UI components should skip animation.
type HeadlessDetector struct {
	forced *bool
}

// NewHeadlessDetector creates a detector driven by the TTY state of
// os.Stdin.
func NewHeadlessDetector() *HeadlessDetector {
	return &HeadlessDetector{}
}

// IsHeadless returns true when animated output should be suppressed.
// ForceHeadless overrides TTY detection.
func (h *HeadlessDetector) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// ForceHeadless overrides TTY detection for tests and the
// --non-interactive flag.
func (h *HeadlessDetector) ForceHeadless(force bool) {
	h.forced = &force
}
