package services

import (
	"context"
	"errors"

	"bookreview/internal/models"
	"bookreview/internal/repository"
)

type ReviewStore interface {
	GetByID(ctx context.Context, id string) (*models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id string) error
	ListByBook(ctx context.Context, bookID string) ([]*models.Review, error)
}

type ReviewInput struct {
	Rating     int
	ReviewText string
}

func (in ReviewInput) validate() error {
	if in.Rating < models.MinRating || in.Rating > models.MaxRating {
		return ErrInvalidRating
	}
	return nil
}

type ReviewService struct {
	reviews ReviewStore
	books   BookStore
}

func NewReviewService(reviews ReviewStore, books BookStore) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		books:   books,
	}
}

// CanModify is the ownership rule: the author or any admin.
func (s *ReviewService) CanModify(review *models.Review, who *Identity) bool {
	if who == nil {
		return false
	}
	return review.IsAuthoredBy(who.ID) || who.IsAdmin()
}

// authorize loads the review and applies CanModify. A missing review is
// reported before any ownership decision is made.
func (s *ReviewService) authorize(ctx context.Context, reviewID string, who *Identity, denied *Error) (*models.Review, error) {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, Internal(err)
	}

	if !s.CanModify(review, who) {
		return nil, denied
	}
	return review, nil
}

func (s *ReviewService) Create(ctx context.Context, who *Identity, bookID string, in ReviewInput) (*models.Review, error) {
	if who == nil {
		return nil, ErrInvalidToken
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, Internal(err)
	}

	review := &models.Review{
		BookID:     bookID,
		AuthorID:   who.ID,
		Rating:     in.Rating,
		ReviewText: in.ReviewText,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, Internal(err)
	}
	return review, nil
}

func (s *ReviewService) ListByBook(ctx context.Context, bookID string) ([]*models.Review, error) {
	reviews, err := s.reviews.ListByBook(ctx, bookID)
	if err != nil {
		return nil, Internal(err)
	}
	if reviews == nil {
		reviews = []*models.Review{}
	}
	return reviews, nil
}

func (s *ReviewService) Update(ctx context.Context, who *Identity, reviewID string, in ReviewInput) (*models.Review, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	review, err := s.authorize(ctx, reviewID, who, ErrReviewUpdateDenied)
	if err != nil {
		return nil, err
	}

	review.Rating = in.Rating
	review.ReviewText = in.ReviewText
	if err := s.reviews.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, Internal(err)
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, who *Identity, reviewID string) (*models.Review, error) {
	review, err := s.authorize(ctx, reviewID, who, ErrReviewDeleteDenied)
	if err != nil {
		return nil, err
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, Internal(err)
	}
	return review, nil
}
