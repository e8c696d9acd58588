package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"raitha-mithra-backend/internal/domain"
	"raitha-mithra-backend/internal/repository"
	"raitha-mithra-backend/internal/utils"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	bookingRepo   repository.BookingRepository
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository, bookingRepo repository.BookingRepository) EquipmentService {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
		bookingRepo:   bookingRepo,
	}
}

func validateEquipmentFields(name, eqType, description, location string, price int64) []string {
	var problems []string
	if len(strings.TrimSpace(name)) < 2 {
		problems = append(problems, "name must be at least 2 characters long")
	}
	if strings.TrimSpace(eqType) == "" {
		problems = append(problems, "type is required")
	}
	if len(strings.TrimSpace(description)) < 10 {
		problems = append(problems, "description must be at least 10 characters long")
	}
	if price < 0 {
		problems = append(problems, "price must be a non-negative number")
	}
	if strings.TrimSpace(location) == "" {
		problems = append(problems, "location is required")
	}
	return problems
}

func (s *equipmentService) Create(ctx context.Context, actor domain.Identity, in CreateEquipmentInput) (*domain.Equipment, error) {
	if !actor.IsOwner() {
		return nil, domain.Forbidden("only owners can add equipment")
	}
	if problems := validateEquipmentFields(in.Name, in.Type, in.Description, in.Location, in.PricePerDayPaise); len(problems) > 0 {
		return nil, domain.Validation("%s", strings.Join(problems, "; "))
	}

	eq := &domain.Equipment{
		Slug:               utils.NewSlug(in.Name),
		OwnerID:            actor.UserID,
		Name:               strings.TrimSpace(in.Name),
		Type:               strings.TrimSpace(in.Type),
		Description:        strings.TrimSpace(in.Description),
		PricePerDayPaise:   in.PricePerDayPaise,
		Location:           strings.TrimSpace(in.Location),
		AvailabilityStatus: domain.AvailabilityAvailable,
		ImageURL:           in.ImageURL,
	}
	if err := s.equipmentRepo.Create(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) List(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	if filter.AvailabilityStatus != "" && !filter.AvailabilityStatus.Valid() {
		return nil, domain.Validation("invalid availability status %q", filter.AvailabilityStatus)
	}
	return s.equipmentRepo.List(ctx, filter)
}

func (s *equipmentService) ListMine(ctx context.Context, actor domain.Identity) ([]domain.Equipment, error) {
	if !actor.IsOwner() {
		return nil, domain.Forbidden("only owners have equipment listings")
	}
	return s.equipmentRepo.ListByOwner(ctx, actor.UserID)
}

func (s *equipmentService) Get(ctx context.Context, idOrSlug string) (*domain.Equipment, error) {
	if idOrSlug == "" {
		return nil, domain.Validation("equipment id or slug is required")
	}
	if id, err := uuid.Parse(idOrSlug); err == nil {
		return s.equipmentRepo.GetByID(ctx, id)
	}
	return s.equipmentRepo.GetBySlug(ctx, idOrSlug)
}

func (s *equipmentService) Update(ctx context.Context, actor domain.Identity, id uuid.UUID, patch UpdateEquipmentInput) (*domain.Equipment, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if eq.OwnerID != actor.UserID {
		return nil, domain.Forbidden("not authorized to update this equipment")
	}

	if patch.Name != nil {
		if len(strings.TrimSpace(*patch.Name)) < 2 {
			return nil, domain.Validation("name must be at least 2 characters long")
		}
		name := strings.TrimSpace(*patch.Name)
		if name != eq.Name {
			// Slug is regenerated only when the name changes.
			eq.Slug = utils.NewSlug(name)
		}
		eq.Name = name
	}
	if patch.Type != nil {
		if strings.TrimSpace(*patch.Type) == "" {
			return nil, domain.Validation("type is required")
		}
		eq.Type = strings.TrimSpace(*patch.Type)
	}
	if patch.Description != nil {
		if len(strings.TrimSpace(*patch.Description)) < 10 {
			return nil, domain.Validation("description must be at least 10 characters long")
		}
		eq.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.PricePerDayPaise != nil {
		if *patch.PricePerDayPaise < 0 {
			return nil, domain.Validation("price must be a non-negative number")
		}
		eq.PricePerDayPaise = *patch.PricePerDayPaise
	}
	if patch.Location != nil {
		if strings.TrimSpace(*patch.Location) == "" {
			return nil, domain.Validation("location is required")
		}
		eq.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.ImageURL != nil {
		eq.ImageURL = *patch.ImageURL
	}
	if patch.AvailabilityStatus != nil {
		status := domain.AvailabilityStatus(*patch.AvailabilityStatus)
		if !status.Valid() {
			return nil, domain.Validation("invalid availability status %q", *patch.AvailabilityStatus)
		}
		// Maintenance toggling is the owner's only direct control over
		// availability; booking transitions own the rest.
		eq.AvailabilityStatus = status
	}

	if err := s.equipmentRepo.Update(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) Delete(ctx context.Context, actor domain.Identity, id uuid.UUID) error {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if eq.OwnerID != actor.UserID {
		return domain.Forbidden("not authorized to delete this equipment")
	}
	active, err := s.bookingRepo.CountActiveByEquipment(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return domain.Conflict("equipment has active bookings and cannot be deleted")
	}
	return s.equipmentRepo.Delete(ctx, id)
}
