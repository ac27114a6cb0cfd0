package commands

import (
	"errors"
	"time"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/guard"
)

var ErrSweepStaleRidersCommandIsNotConstructed = errors.New(
	"SweepStaleRidersCommand must be created via NewSweepStaleRidersCommand constructor",
)

// SweepStaleRidersCommand flags riders whose last location report is older
// than the given age as unavailable, keeping the assignment picklist honest.
type SweepStaleRidersCommand struct {
	staleAfter time.Duration

	guard guard.ConstructorGuard
}

// NewSweepStaleRidersCommand creates a validated sweep command.
func NewSweepStaleRidersCommand(staleAfter time.Duration) (SweepStaleRidersCommand, error) {
	if staleAfter <= 0 {
		return SweepStaleRidersCommand{}, errs.NewValueIsInvalidError("staleAfter")
	}

	return SweepStaleRidersCommand{
		staleAfter: staleAfter,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// StaleAfter returns the report age beyond which a rider counts as offline.
func (c *SweepStaleRidersCommand) StaleAfter() time.Duration { return c.staleAfter }

// Validate ensures the command was created through the constructor.
func (c *SweepStaleRidersCommand) Validate() error {
	return c.guard.Validate(ErrSweepStaleRidersCommandIsNotConstructed)
}
