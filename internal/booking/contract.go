package booking

import (
	"time"

	"github.com/wildoats/tapechart-backend/internal/block"
)

// ConflictChecker decides whether a proposed occupancy of a space collides
// with existing bookings or administrative blocks. It is a pure decision:
// the candidates are supplied by the caller, freshly fetched for the
// interval under validation. Implemented by the availability engine.
//
// The check and the subsequent insert are not wrapped in one transaction;
// the race between concurrent writers is owned by the database constraint
// layer, not by this contract.
type ConflictChecker interface {
	Check(bookings []Occurrence, blocks []*block.Block, spaceID string, start, end time.Time, excludeBookingID string) (conflict bool, detail string)
}
