package feedback

import (
	"context"
	"errors"

	"github.com/ghoomlo/cab-booking/internal/domain"
	"github.com/ghoomlo/cab-booking/internal/repository"
)

type FeedbackUseCase interface {
	SubmitReview(ctx context.Context, input ReviewInput) (*domain.Review, error)
	DriverRating(ctx context.Context, driverID string) (float64, error)
	SubmitSupportRequest(ctx context.Context, userID, requestType, description string) (*domain.SupportRequest, error)
	ListFAQ(ctx context.Context) ([]domain.FAQ, error)
	AddFAQ(ctx context.Context, question, answer string) (*domain.FAQ, error)
}

type FeedbackService struct {
	repo repository.FeedbackRepository
}

type ReviewInput struct {
	UserID     string
	BookingID  string
	DriverID   string
	Rating     int
	ReviewText string
}

func NewFeedbackService(repo repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

func (s *FeedbackService) SubmitReview(ctx context.Context, input ReviewInput) (*domain.Review, error) {
	if input.UserID == "" || input.BookingID == "" {
		return nil, errors.New("userId and bookingId are required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}

	review := &domain.Review{
		UserID:     input.UserID,
		BookingID:  input.BookingID,
		DriverID:   input.DriverID,
		Rating:     input.Rating,
		ReviewText: input.ReviewText,
	}
	if err := s.repo.InsertReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *FeedbackService) DriverRating(ctx context.Context, driverID string) (float64, error) {
	if driverID == "" {
		return 0, errors.New("driverId is required")
	}
	return s.repo.AverageDriverRating(ctx, driverID)
}

func (s *FeedbackService) SubmitSupportRequest(ctx context.Context, userID, requestType, description string) (*domain.SupportRequest, error) {
	if userID == "" || requestType == "" || description == "" {
		return nil, errors.New("userId, requestType and description are required")
	}

	req := &domain.SupportRequest{
		UserID:      userID,
		RequestType: requestType,
		Description: description,
	}
	if err := s.repo.InsertSupportRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *FeedbackService) ListFAQ(ctx context.Context) ([]domain.FAQ, error) {
	return s.repo.ListFAQ(ctx)
}

func (s *FeedbackService) AddFAQ(ctx context.Context, question, answer string) (*domain.FAQ, error) {
	if question == "" || answer == "" {
		return nil, errors.New("question and answer are required")
	}

	faq := &domain.FAQ{Question: question, Answer: answer}
	if err := s.repo.InsertFAQ(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

var _ FeedbackUseCase = (*FeedbackService)(nil)
