package services

import (
	"fmt"

	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/models"
)

// ToggleMode selects how ToggleStatus walks the status values
type ToggleMode string

const (
	// ToggleBinary flips Open and Closed; Pending closes.
	ToggleBinary ToggleMode = "binary"
	// ToggleCycle walks Open -> Pending -> Closed -> Open.
	ToggleCycle ToggleMode = "cycle"
)

// ParseToggleMode validates a configured mode
func ParseToggleMode(s string) (ToggleMode, error) {
	switch m := ToggleMode(s); m {
	case ToggleBinary, ToggleCycle:
		return m, nil
	}
	return "", fmt.Errorf("unknown toggle mode %q", s)
}

// StatusLifecycle computes status transitions
type StatusLifecycle struct {
	mode ToggleMode
}

func NewStatusLifecycle(mode ToggleMode) *StatusLifecycle {
	return &StatusLifecycle{mode: mode}
}

// Mode returns the configured mode
func (l *StatusLifecycle) Mode() ToggleMode { return l.mode }

// Toggle returns the status that follows s. Unrecognised values reopen.
func (l *StatusLifecycle) Toggle(s models.CaseStatus) models.CaseStatus {
	if l.mode == ToggleCycle {
		switch s {
		case models.StatusOpen:
			return models.StatusPending
		case models.StatusPending:
			return models.StatusClosed
		default:
			return models.StatusOpen
		}
	}

	switch s {
	case models.StatusOpen, models.StatusPending:
		return models.StatusClosed
	default:
		return models.StatusOpen
	}
}
