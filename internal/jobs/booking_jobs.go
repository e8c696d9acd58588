package jobs

import (
	"context"
	"time"

	"raitha-mithra-backend/internal/logger"
	"raitha-mithra-backend/internal/utils"
)

// SendUpcomingBookingReminders emails renters whose approved booking starts
// tomorrow. Read-only: the booking rows are not modified.
func (jr *JobRunner) SendUpcomingBookingReminders() {
	jr.runWithRecovery("SendUpcomingBookingReminders", func() {
		ctx := context.Background()
		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(utils.DateLayout)

		query := `
			SELECT u.email, e.name, b.start_date
			FROM bookings b
			JOIN users u ON u.id = b.renter_id
			JOIN equipment e ON e.id = b.equipment_id
			WHERE b.status = 'approved'
			  AND b.start_date = $1
		`

		rows, err := jr.db.QueryContext(ctx, query, tomorrow)
		if err != nil {
			logger.Error("Failed to query upcoming bookings", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var renterEmail, equipmentName string
			var startDate time.Time
			if err := rows.Scan(&renterEmail, &equipmentName, &startDate); err != nil {
				logger.Error("Failed to scan upcoming booking", "error", err)
				continue
			}
			if err := jr.services.Email.SendBookingReminder(ctx, renterEmail, equipmentName, startDate.Format(utils.DateLayout)); err != nil {
				logger.Error("Failed to send booking reminder",
					"renter_email", renterEmail,
					"equipment", equipmentName,
					"error", err)
				continue
			}
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating upcoming bookings", "error", err)
			return
		}

		logger.Info("Sent upcoming booking reminders", "count", count)
	})
}

// SendReturnReminders emails owners of approved bookings whose end date has
// passed so they can mark the booking completed once the equipment is back.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format(utils.DateLayout)

		query := `
			SELECT u.email, e.name, b.end_date
			FROM bookings b
			JOIN users u ON u.id = b.owner_id
			JOIN equipment e ON e.id = b.equipment_id
			WHERE b.status = 'approved'
			  AND b.end_date < $1
		`

		rows, err := jr.db.QueryContext(ctx, query, today)
		if err != nil {
			logger.Error("Failed to query overdue bookings", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var ownerEmail, equipmentName string
			var endDate time.Time
			if err := rows.Scan(&ownerEmail, &equipmentName, &endDate); err != nil {
				logger.Error("Failed to scan overdue booking", "error", err)
				continue
			}
			if err := jr.services.Email.SendReturnReminder(ctx, ownerEmail, equipmentName, endDate.Format(utils.DateLayout)); err != nil {
				logger.Error("Failed to send return reminder",
					"owner_email", ownerEmail,
					"equipment", equipmentName,
					"error", err)
				continue
			}
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue bookings", "error", err)
			return
		}

		logger.Info("Sent return reminders", "count", count)
	})
}
