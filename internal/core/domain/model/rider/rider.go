package rider

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/guard"
)

// Domain errors for rider operations.
var (
	// ErrNameIsRequired is returned when attempting to create a rider without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a rider without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider")
)

// LocationSample is one reported rider position. It is ephemeral display
// state used by tracking views and the liveness sweep; it is never part of
// any order's state.
type LocationSample struct {
	Point      kernel.GeoPoint
	ReportedAt time.Time
}

// Rider represents a delivery agent.
//
// A rider's availability flag is the server-side guard for assignment: the
// assignment handler re-validates it inside the transaction, regardless of
// what a client claims. Riders toggle their own availability; the liveness
// sweep clears it when location reports go stale.
type Rider struct {
	id           kernel.UUID
	name         string
	phone        string
	available    bool
	lastLocation *LocationSample

	guard guard.ConstructorGuard
}

// NewRider creates a rider who starts unavailable until they go online.
//
// Parameters:
//   - id: unique rider identifier
//   - name: human-readable name (non-empty)
//   - phone: contact number in any accepted national or E.164 form; the
//     notification boundary normalizes it before sending
func NewRider(id kernel.UUID, name string, phone string) (*Rider, error) {
	r := &Rider{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider reconstructs a rider aggregate from persistence, including the
// availability flag and the last reported location if one exists.
func RestoreRider(
	id kernel.UUID,
	name string,
	phone string,
	available bool,
	lastLocation *LocationSample,
) (*Rider, error) {
	r, err := NewRider(id, name, phone)
	if err != nil {
		return nil, err
	}

	r.available = available
	if lastLocation != nil {
		if err := lastLocation.Point.Validate(); err != nil {
			return nil, err
		}
		sample := *lastLocation
		r.lastLocation = &sample
	}

	return r, nil
}

// Validate ensures the Rider was created through a constructor.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// IsEqual compares two riders by identifier.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// Phone returns the rider's contact number as stored.
func (r *Rider) Phone() string {
	return r.phone
}

// IsAvailable reports whether the rider can currently be assigned orders.
func (r *Rider) IsAvailable() bool {
	return r.available
}

// LastLocation returns the most recent reported position, or nil if the
// rider has never reported one.
func (r *Rider) LastLocation() *LocationSample {
	return r.lastLocation
}

// GoOnline marks the rider available for assignment.
func (r *Rider) GoOnline() {
	r.available = true
}

// GoOffline marks the rider unavailable. Called by the rider themselves or
// by the liveness sweep when reports go stale.
func (r *Rider) GoOffline() {
	r.available = false
}

// ReportLocation records a position sample. The sample only updates display
// state and feeds the liveness sweep; it never mutates order state.
func (r *Rider) ReportLocation(point kernel.GeoPoint, reportedAt time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}

	r.lastLocation = &LocationSample{
		Point:      point,
		ReportedAt: reportedAt,
	}
	return nil
}

// IsStale reports whether the rider's last location report is older than
// maxAge as of now. Riders with no report at all are considered stale.
func (r *Rider) IsStale(now time.Time, maxAge time.Duration) bool {
	if r.lastLocation == nil {
		return true
	}
	return now.Sub(r.lastLocation.ReportedAt) > maxAge
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Rider) setPhone(phone string) error {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return ErrPhoneIsRequired
	}
	for _, c := range trimmed {
		if c != '+' && (c < '0' || c > '9') {
			return errs.NewValueIsInvalidErrorWithCause("phone",
				fmt.Errorf("%q contains non-digit characters", phone))
		}
	}
	r.phone = trimmed
	return nil
}
