package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"raitha-mithra-backend/internal/domain"
	"raitha-mithra-backend/internal/repository"
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	bookingRepo repository.BookingRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, bookingRepo repository.BookingRepository) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
	}
}

func validateRating(rating int32) error {
	if rating < domain.ReviewRatingMin || rating > domain.ReviewRatingMax {
		return domain.Validation("rating must be between %d and %d", domain.ReviewRatingMin, domain.ReviewRatingMax)
	}
	return nil
}

func validateComment(comment string) error {
	n := len(strings.TrimSpace(comment))
	if n < domain.ReviewCommentMinLen || n > domain.ReviewCommentMaxLen {
		return domain.Validation("comment must be between %d and %d characters", domain.ReviewCommentMinLen, domain.ReviewCommentMaxLen)
	}
	return nil
}

func (s *reviewService) Create(ctx context.Context, actor domain.Identity, in CreateReviewInput) (*domain.Review, error) {
	if !actor.IsFarmer() {
		return nil, domain.Forbidden("only renters can post reviews")
	}
	bookingID, err := uuid.Parse(in.BookingID)
	if err != nil {
		return nil, domain.Validation("valid booking id is required")
	}
	if err := validateRating(in.Rating); err != nil {
		return nil, err
	}
	if err := validateComment(in.Comment); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.RenterID != actor.UserID {
		return nil, domain.Forbidden("not authorized to review this booking")
	}
	if booking.Status != domain.BookingStatusCompleted {
		return nil, domain.Conflict("reviews can only be posted for completed bookings")
	}
	exists, err := s.reviewRepo.ExistsForBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Conflict("review already exists for this booking")
	}

	review := &domain.Review{
		BookingID:   bookingID,
		RenterID:    actor.UserID,
		EquipmentID: booking.EquipmentID,
		Rating:      in.Rating,
		Comment:     strings.TrimSpace(in.Comment),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByID(ctx, review.ID)
}

func (s *reviewService) ListForEquipment(ctx context.Context, equipmentID uuid.UUID) ([]domain.Review, error) {
	return s.reviewRepo.ListByEquipment(ctx, equipmentID)
}

func (s *reviewService) ListMine(ctx context.Context, actor domain.Identity) ([]domain.Review, error) {
	return s.reviewRepo.ListByRenter(ctx, actor.UserID)
}

func (s *reviewService) Get(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	return s.reviewRepo.GetByID(ctx, id)
}

func (s *reviewService) Update(ctx context.Context, actor domain.Identity, id uuid.UUID, patch UpdateReviewInput) (*domain.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.RenterID != actor.UserID {
		return nil, domain.Forbidden("not authorized to update this review")
	}

	if patch.Rating != nil {
		if err := validateRating(*patch.Rating); err != nil {
			return nil, err
		}
		review.Rating = *patch.Rating
	}
	if patch.Comment != nil {
		if err := validateComment(*patch.Comment); err != nil {
			return nil, err
		}
		review.Comment = strings.TrimSpace(*patch.Comment)
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, actor domain.Identity, id uuid.UUID) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review.RenterID != actor.UserID {
		return domain.Forbidden("not authorized to delete this review")
	}
	return s.reviewRepo.Delete(ctx, id)
}
