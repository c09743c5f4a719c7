package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/tmallory/chronicler/pkg/state"
)

// Storage persists per-session presentation state between turns.
type Storage interface {
	// Ping checks connectivity to the backing store.
	Ping(ctx context.Context) error

	// Close releases the connection to the backing store.
	Close() error

	// SavePresentationState stores presentation state for a session.
	SavePresentationState(ctx context.Context, id uuid.UUID, ps *state.PresentationState) error

	// GetPresentationState retrieves presentation state for a session.
	// Returns (nil, nil) when no state exists for the session.
	GetPresentationState(ctx context.Context, id uuid.UUID) (*state.PresentationState, error)

	// DeletePresentationState removes presentation state for a session.
	DeletePresentationState(ctx context.Context, id uuid.UUID) error
}
