package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"raitha-mithra-backend/internal/domain"
	"raitha-mithra-backend/internal/logger"
	"raitha-mithra-backend/internal/repository"
	"raitha-mithra-backend/internal/utils"
)

type bookingService struct {
	bookingRepo   repository.BookingRepository
	equipmentRepo repository.EquipmentRepository
	userRepo      repository.UserRepository
	emailSvc      EmailService
	now           func() time.Time
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	equipmentRepo repository.EquipmentRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		emailSvc:      emailSvc,
		now:           time.Now,
	}
}

func (s *bookingService) Create(ctx context.Context, actor domain.Identity, in CreateBookingInput) (*domain.Booking, error) {
	if !actor.IsFarmer() {
		return nil, domain.Forbidden("only farmers can book equipment")
	}

	equipmentID, err := uuid.Parse(in.EquipmentID)
	if err != nil {
		return nil, domain.Validation("valid equipment id is required")
	}
	start, err := utils.ParseDate(in.StartDate)
	if err != nil {
		return nil, domain.Validation("valid start date is required")
	}
	end, err := utils.ParseDate(in.EndDate)
	if err != nil {
		return nil, domain.Validation("valid end date is required")
	}

	equipment, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	if equipment.AvailabilityStatus != domain.AvailabilityAvailable {
		return nil, domain.Conflict("equipment is not available for rent")
	}
	if !start.After(s.now()) {
		return nil, domain.Validation("start date must be in the future")
	}
	if !end.After(start) {
		return nil, domain.Validation("end date must be after start date")
	}

	conflict, err := s.bookingRepo.HasConflict(ctx, equipmentID, start, end)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, domain.Conflict("equipment is already booked for these dates")
	}

	// Price is frozen here: later equipment price edits do not touch
	// existing bookings.
	total, err := utils.BookingTotalPaise(start, end, equipment.PricePerDayPaise)
	if err != nil {
		return nil, domain.Validation("%s", err.Error())
	}

	booking := &domain.Booking{
		EquipmentID:      equipmentID,
		RenterID:         actor.UserID,
		OwnerID:          equipment.OwnerID,
		StartDate:        start,
		EndDate:          end,
		Status:           domain.BookingStatusPending,
		TotalAmountPaise: total,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.notify(ctx, booking, equipment.Name, domain.BookingStatusPending)

	return s.bookingRepo.GetByID(ctx, booking.ID)
}

func (s *bookingService) List(ctx context.Context, actor domain.Identity) ([]domain.Booking, error) {
	if actor.IsOwner() {
		return s.bookingRepo.ListByOwner(ctx, actor.UserID)
	}
	return s.bookingRepo.ListByRenter(ctx, actor.UserID)
}

func (s *bookingService) Get(ctx context.Context, actor domain.Identity, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.IsParty(actor.UserID) {
		return nil, domain.Forbidden("not authorized to view this booking")
	}
	return booking, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, actor domain.Identity, id uuid.UUID, target domain.BookingStatus) (*domain.Booking, error) {
	if !actor.IsOwner() {
		return nil, domain.Forbidden("only owners can update booking status")
	}
	switch target {
	case domain.BookingStatusApproved, domain.BookingStatusRejected, domain.BookingStatusCompleted:
	default:
		return nil, domain.Validation("valid status is required")
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.OwnerID != actor.UserID {
		return nil, domain.Forbidden("not authorized to update this booking")
	}
	if !domain.CanTransition(booking.Status, target) {
		return nil, domain.Conflict("cannot transition booking from %s to %s", booking.Status, target)
	}

	booking.Status = target
	if err := s.bookingRepo.UpdateStatus(ctx, booking, domain.AvailabilityAfter(target)); err != nil {
		return nil, err
	}

	equipmentName := ""
	if booking.Equipment != nil {
		equipmentName = booking.Equipment.Name
	}
	s.notify(ctx, booking, equipmentName, target)

	return s.bookingRepo.GetByID(ctx, booking.ID)
}

func (s *bookingService) Cancel(ctx context.Context, actor domain.Identity, id uuid.UUID) error {
	if !actor.IsFarmer() {
		return domain.Forbidden("only renters can cancel bookings")
	}
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.RenterID != actor.UserID {
		return domain.Forbidden("not authorized to cancel this booking")
	}
	if booking.Status != domain.BookingStatusPending {
		return domain.Conflict("only pending bookings can be cancelled")
	}

	if err := s.bookingRepo.Delete(ctx, booking.ID, booking.EquipmentID); err != nil {
		return err
	}

	equipmentName := ""
	if booking.Equipment != nil {
		equipmentName = booking.Equipment.Name
	}
	s.notify(ctx, booking, equipmentName, domain.BookingStatusCancelled)
	return nil
}

// notify sends the lifecycle email for the status the booking just entered.
// Best effort: failures are logged and swallowed.
func (s *bookingService) notify(ctx context.Context, booking *domain.Booking, equipmentName string, status domain.BookingStatus) {
	if s.emailSvc == nil {
		return
	}
	renter, err := s.userRepo.GetByID(ctx, booking.RenterID)
	if err != nil {
		logger.Warn("Skipping booking notification", "booking_id", booking.ID, "error", err)
		return
	}
	owner, err := s.userRepo.GetByID(ctx, booking.OwnerID)
	if err != nil {
		logger.Warn("Skipping booking notification", "booking_id", booking.ID, "error", err)
		return
	}

	switch status {
	case domain.BookingStatusPending:
		err = s.emailSvc.SendBookingRequested(ctx, owner.Email, renter.Name, equipmentName)
	case domain.BookingStatusApproved:
		err = s.emailSvc.SendBookingApproved(ctx, renter.Email, equipmentName, owner.Name)
	case domain.BookingStatusRejected:
		err = s.emailSvc.SendBookingRejected(ctx, renter.Email, equipmentName, owner.Name)
	case domain.BookingStatusCancelled:
		err = s.emailSvc.SendBookingCancelled(ctx, owner.Email, renter.Name, equipmentName)
	case domain.BookingStatusCompleted:
		if err = s.emailSvc.SendBookingCompleted(ctx, renter.Email, equipmentName, booking.TotalAmountPaise); err == nil {
			err = s.emailSvc.SendBookingCompleted(ctx, owner.Email, equipmentName, booking.TotalAmountPaise)
		}
	}
	if err != nil {
		logger.Warn("Failed to send booking notification", "booking_id", booking.ID, "status", status, "error", err)
	}
}
