package utils

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time at
// midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return t, nil
}

// BillableDays returns the number of days billed for a rental from start to
// end. Partial days round up, so two and a half days bill as three. End must
// be strictly after start.
func BillableDays(start, end time.Time) (int64, error) {
	if !end.After(start) {
		return 0, fmt.Errorf("end date must be after start date")
	}
	hours := end.Sub(start).Hours()
	return int64(math.Ceil(hours / 24)), nil
}

// BookingTotalPaise computes the frozen total for a booking: billable days
// times the equipment's daily price at creation time.
func BookingTotalPaise(start, end time.Time, pricePerDayPaise int64) (int64, error) {
	days, err := BillableDays(start, end)
	if err != nil {
		return 0, err
	}
	return days * pricePerDayPaise, nil
}
