package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"raitha-mithra-backend/internal/domain"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}

func (m *MockEquipmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepo) GetBySlug(ctx context.Context, slug string) (*domain.Equipment, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}

func (m *MockEquipmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEquipmentRepo) List(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Equipment, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]domain.Booking, error) {
	args := m.Called(ctx, renterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) HasConflict(ctx context.Context, equipmentID uuid.UUID, start, end time.Time) (bool, error) {
	args := m.Called(ctx, equipmentID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepo) CountActiveByEquipment(ctx context.Context, equipmentID uuid.UUID) (int64, error) {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, b *domain.Booking, equipmentStatus domain.AvailabilityStatus) error {
	args := m.Called(ctx, b, equipmentStatus)
	return args.Error(0)
}

func (m *MockBookingRepo) Delete(ctx context.Context, bookingID, equipmentID uuid.UUID) error {
	args := m.Called(ctx, bookingID, equipmentID)
	return args.Error(0)
}

type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *MockReviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepo) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepo) ListByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]domain.Review, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepo) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]domain.Review, error) {
	args := m.Called(ctx, renterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepo) Update(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *MockReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingRequested(ctx context.Context, ownerEmail, renterName, equipmentName string) error {
	args := m.Called(ctx, ownerEmail, renterName, equipmentName)
	return args.Error(0)
}

func (m *MockEmailService) SendBookingApproved(ctx context.Context, renterEmail, equipmentName, ownerName string) error {
	args := m.Called(ctx, renterEmail, equipmentName, ownerName)
	return args.Error(0)
}

func (m *MockEmailService) SendBookingRejected(ctx context.Context, renterEmail, equipmentName, ownerName string) error {
	args := m.Called(ctx, renterEmail, equipmentName, ownerName)
	return args.Error(0)
}

func (m *MockEmailService) SendBookingCancelled(ctx context.Context, ownerEmail, renterName, equipmentName string) error {
	args := m.Called(ctx, ownerEmail, renterName, equipmentName)
	return args.Error(0)
}

func (m *MockEmailService) SendBookingCompleted(ctx context.Context, email, equipmentName string, amountPaise int64) error {
	args := m.Called(ctx, email, equipmentName, amountPaise)
	return args.Error(0)
}

func (m *MockEmailService) SendBookingReminder(ctx context.Context, renterEmail, equipmentName, startDate string) error {
	args := m.Called(ctx, renterEmail, equipmentName, startDate)
	return args.Error(0)
}

func (m *MockEmailService) SendReturnReminder(ctx context.Context, ownerEmail, equipmentName, endDate string) error {
	args := m.Called(ctx, ownerEmail, equipmentName, endDate)
	return args.Error(0)
}
