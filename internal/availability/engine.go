// Package availability computes tape-chart windows, conflict decisions and
// per-day occupancy for a space inventory. Everything except FetchWindow is
// a pure function of its inputs: the engine holds no state between calls
// and never mutates a booking or block.
package availability

import (
	"fmt"
	"time"

	"github.com/wildoats/tapechart-backend/internal/block"
	"github.com/wildoats/tapechart-backend/internal/booking"
)

// Kind names the collection a conflict was found in.
type Kind string

const (
	KindReservation Kind = "reservation"
	KindBlock       Kind = "block"
)

// Conflict is the outcome of a conflict check. When Conflict is false the
// other fields are zero.
type Conflict struct {
	Conflict bool
	Kind     Kind
	Detail   string
}

// Engine evaluates interval conflicts over caller-supplied snapshots.
type Engine struct {
	// Blocking reports whether a booking in the given status still holds
	// its slot. Fetch queries already exclude cancelled bookings; this
	// predicate decides the rest, notably whether a no-show keeps blocking
	// until manually released.
	Blocking func(booking.Status) bool
}

// DefaultBlocking treats every non-cancelled status as holding the slot.
func DefaultBlocking(s booking.Status) bool {
	return s != booking.StatusCancelled
}

// ReleaseNoShow additionally frees slots held by no-show bookings.
func ReleaseNoShow(s booking.Status) bool {
	return s != booking.StatusCancelled && s != booking.StatusNoShow
}

// NewEngine returns an engine with the default blocking policy.
func NewEngine() *Engine {
	return &Engine{Blocking: DefaultBlocking}
}

// overlaps is the strict half-open interval test: [aStart, aEnd) and
// [bStart, bEnd) overlap iff aStart < bEnd && bStart < aEnd. Intervals
// that merely touch do not overlap, so back-to-back bookings are legal.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// CheckConflict decides whether the interval [start, end) on spaceID
// collides with any supplied booking occurrence or block. First match in
// input order wins; a single conflict is enough to reject, so no attempt
// is made to find the nearest or most relevant one. excludeBookingID skips
// one booking, so a move or resize can be validated against everything
// except itself.
func (e *Engine) CheckConflict(bookings []booking.Occurrence, blocks []*block.Block, spaceID string, start, end time.Time, excludeBookingID string) Conflict {
	for _, occ := range bookings {
		if occ.SpaceID != spaceID {
			continue
		}
		if excludeBookingID != "" && occ.BookingID == excludeBookingID {
			continue
		}
		if e.Blocking != nil && !e.Blocking(occ.Status) {
			continue
		}
		if overlaps(start, end, occ.Start, occ.End) {
			return Conflict{
				Conflict: true,
				Kind:     KindReservation,
				Detail:   fmt.Sprintf("conflicts with booking %s (%s)", occ.Code, occ.OccupantName),
			}
		}
	}

	for _, b := range blocks {
		if b.SpaceID != spaceID {
			continue
		}
		if overlaps(start, end, b.StartDate, b.EndDate) {
			reason := b.Reason
			if reason == "" {
				reason = string(b.Category)
			}
			return Conflict{
				Conflict: true,
				Kind:     KindBlock,
				Detail:   fmt.Sprintf("space is blocked: %s", reason),
			}
		}
	}

	return Conflict{}
}

// Check implements the booking package's ConflictChecker contract.
func (e *Engine) Check(bookings []booking.Occurrence, blocks []*block.Block, spaceID string, start, end time.Time, excludeBookingID string) (bool, string) {
	c := e.CheckConflict(bookings, blocks, spaceID, start, end, excludeBookingID)
	return c.Conflict, c.Detail
}
