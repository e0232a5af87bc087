package availability

import (
	"github.com/wildoats/tapechart-backend/internal/block"
	"github.com/wildoats/tapechart-backend/internal/booking"
)

// defaultColor is the neutral token for unknown statuses and categories.
const defaultColor = "#9e9e9e"

// StatusColor maps a booking lifecycle status to its tape-chart color token.
func StatusColor(s booking.Status) string {
	switch s {
	case booking.StatusTentative:
		return "#ffb300"
	case booking.StatusConfirmed:
		return "#1e88e5"
	case booking.StatusCheckedIn:
		return "#43a047"
	case booking.StatusCheckedOut:
		return "#757575"
	case booking.StatusCancelled:
		return "#e53935"
	case booking.StatusNoShow:
		return "#fb8c00"
	default:
		return defaultColor
	}
}

// CategoryColor maps a block category to its tape-chart color token.
func CategoryColor(c block.Category) string {
	switch c {
	case block.CategoryMaintenance:
		return "#8d6e63"
	case block.CategoryCleaning:
		return "#00acc1"
	case block.CategoryOutOfOrder:
		return "#546e7a"
	case block.CategoryReserved:
		return "#8e24aa"
	case block.CategoryOther:
		return "#bdbdbd"
	default:
		return defaultColor
	}
}
