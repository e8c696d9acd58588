package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func formatPaise(paise int64) string {
	return fmt.Sprintf("₹%d.%02d", paise/100, paise%100)
}

func (s *emailService) SendBookingRequested(ctx context.Context, ownerEmail, renterName, equipmentName string) error {
	subject := fmt.Sprintf("New booking request: %s", equipmentName)
	body := fmt.Sprintf("%s requested to rent your %s.\n\nOpen your dashboard to approve or reject the request.", renterName, equipmentName)
	return s.send(ownerEmail, subject, body)
}

func (s *emailService) SendBookingApproved(ctx context.Context, renterEmail, equipmentName, ownerName string) error {
	subject := fmt.Sprintf("Booking approved: %s", equipmentName)
	body := fmt.Sprintf("Your booking request for %s was approved by %s.", equipmentName, ownerName)
	return s.send(renterEmail, subject, body)
}

func (s *emailService) SendBookingRejected(ctx context.Context, renterEmail, equipmentName, ownerName string) error {
	subject := fmt.Sprintf("Booking rejected: %s", equipmentName)
	body := fmt.Sprintf("Your booking request for %s was rejected by %s.", equipmentName, ownerName)
	return s.send(renterEmail, subject, body)
}

func (s *emailService) SendBookingCancelled(ctx context.Context, ownerEmail, renterName, equipmentName string) error {
	subject := fmt.Sprintf("Booking cancelled: %s", equipmentName)
	body := fmt.Sprintf("%s cancelled their booking request for %s. The equipment is available again.", renterName, equipmentName)
	return s.send(ownerEmail, subject, body)
}

func (s *emailService) SendBookingCompleted(ctx context.Context, email, equipmentName string, amountPaise int64) error {
	subject := fmt.Sprintf("Booking completed: %s", equipmentName)
	body := fmt.Sprintf("The booking for %s is complete. Total amount: %s.", equipmentName, formatPaise(amountPaise))
	return s.send(email, subject, body)
}

func (s *emailService) SendBookingReminder(ctx context.Context, renterEmail, equipmentName, startDate string) error {
	subject := fmt.Sprintf("Upcoming booking: %s", equipmentName)
	body := fmt.Sprintf("Reminder: your booking for %s starts on %s.", equipmentName, startDate)
	return s.send(renterEmail, subject, body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, ownerEmail, equipmentName, endDate string) error {
	subject := fmt.Sprintf("Booking past end date: %s", equipmentName)
	body := fmt.Sprintf("The booking for %s ended on %s. Mark it completed once the equipment is returned.", equipmentName, endDate)
	return s.send(ownerEmail, subject, body)
}
