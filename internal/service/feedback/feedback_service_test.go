package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ghoomlo/cab-booking/internal/domain"
)

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) InsertReview(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockFeedbackRepository) AverageDriverRating(ctx context.Context, driverID string) (float64, error) {
	args := m.Called(ctx, driverID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockFeedbackRepository) InsertSupportRequest(ctx context.Context, req *domain.SupportRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockFeedbackRepository) ListFAQ(ctx context.Context) ([]domain.FAQ, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FAQ), args.Error(1)
}

func (m *MockFeedbackRepository) InsertFAQ(ctx context.Context, faq *domain.FAQ) error {
	args := m.Called(ctx, faq)
	return args.Error(0)
}

func TestSubmitReview(t *testing.T) {
	repo := &MockFeedbackRepository{}
	service := NewFeedbackService(repo)

	ctx := context.Background()
	repo.On("InsertReview", ctx, mock.Anything).Return(nil).Once()

	review, err := service.SubmitReview(ctx, ReviewInput{
		UserID:     "u1",
		BookingID:  "b1",
		DriverID:   "d1",
		Rating:     4,
		ReviewText: "Smooth ride",
	})

	assert.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
	repo.AssertExpectations(t)
}

func TestSubmitReviewRatingBounds(t *testing.T) {
	service := NewFeedbackService(&MockFeedbackRepository{})
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6} {
		_, err := service.SubmitReview(ctx, ReviewInput{UserID: "u1", BookingID: "b1", Rating: rating})
		assert.Error(t, err)
	}
}

func TestSubmitReviewRequiresUserAndBooking(t *testing.T) {
	service := NewFeedbackService(&MockFeedbackRepository{})

	_, err := service.SubmitReview(context.Background(), ReviewInput{Rating: 3})
	assert.Error(t, err)
}

func TestDriverRating(t *testing.T) {
	repo := &MockFeedbackRepository{}
	service := NewFeedbackService(repo)

	ctx := context.Background()
	repo.On("AverageDriverRating", ctx, "d1").Return(4.25, nil).Once()

	rating, err := service.DriverRating(ctx, "d1")

	assert.NoError(t, err)
	assert.Equal(t, 4.25, rating)
}

func TestDriverRatingRequiresID(t *testing.T) {
	service := NewFeedbackService(&MockFeedbackRepository{})

	_, err := service.DriverRating(context.Background(), "")
	assert.Error(t, err)
}

func TestSubmitSupportRequest(t *testing.T) {
	repo := &MockFeedbackRepository{}
	service := NewFeedbackService(repo)

	ctx := context.Background()
	repo.On("InsertSupportRequest", ctx, mock.Anything).Return(nil).Once()

	req, err := service.SubmitSupportRequest(ctx, "u1", "refund", "Charged twice for one trip")

	assert.NoError(t, err)
	assert.Equal(t, "refund", req.RequestType)
	repo.AssertExpectations(t)
}

func TestSubmitSupportRequestValidation(t *testing.T) {
	service := NewFeedbackService(&MockFeedbackRepository{})

	_, err := service.SubmitSupportRequest(context.Background(), "u1", "", "missing type")
	assert.Error(t, err)
}

func TestAddFAQ(t *testing.T) {
	repo := &MockFeedbackRepository{}
	service := NewFeedbackService(repo)

	ctx := context.Background()
	repo.On("InsertFAQ", ctx, mock.Anything).Return(nil).Once()

	faq, err := service.AddFAQ(ctx, "Can I cancel a booking?", "Yes, up to 2 hours before pickup.")

	assert.NoError(t, err)
	assert.Equal(t, "Can I cancel a booking?", faq.Question)
}

func TestAddFAQValidation(t *testing.T) {
	service := NewFeedbackService(&MockFeedbackRepository{})

	_, err := service.AddFAQ(context.Background(), "Question without answer?", "")
	assert.Error(t, err)
}
