package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ghoomlo/cab-booking/internal/domain"
)

type FeedbackRepository interface {
	InsertReview(ctx context.Context, review *domain.Review) error
	AverageDriverRating(ctx context.Context, driverID string) (float64, error)
	InsertSupportRequest(ctx context.Context, req *domain.SupportRequest) error
	ListFAQ(ctx context.Context) ([]domain.FAQ, error)
	InsertFAQ(ctx context.Context, faq *domain.FAQ) error
}

type MongoFeedbackRepository struct {
	reviews *mongo.Collection
	support *mongo.Collection
	faqs    *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) FeedbackRepository {
	return &MongoFeedbackRepository{
		reviews: db.Collection("reviews"),
		support: db.Collection("support-requests"),
		faqs:    db.Collection("faqs"),
	}
}

func (r *MongoFeedbackRepository) InsertReview(ctx context.Context, review *domain.Review) error {
	review.CreatedAt = time.Now().UTC()
	res, err := r.reviews.InsertOne(ctx, review)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}
	return nil
}

// AverageDriverRating returns 0 when the driver has no reviews.
func (r *MongoFeedbackRepository) AverageDriverRating(ctx context.Context, driverID string) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"driverId": driverID}}},
		{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"averageRating": bson.M{"$avg": "$rating"},
		}}},
	}

	cursor, err := r.reviews.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		AverageRating float64 `bson:"averageRating"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].AverageRating, nil
}

func (r *MongoFeedbackRepository) InsertSupportRequest(ctx context.Context, req *domain.SupportRequest) error {
	req.CreatedAt = time.Now().UTC()
	res, err := r.support.InsertOne(ctx, req)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		req.ID = oid
	}
	return nil
}

func (r *MongoFeedbackRepository) ListFAQ(ctx context.Context) ([]domain.FAQ, error) {
	cursor, err := r.faqs.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var faqs []domain.FAQ
	if err := cursor.All(ctx, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *MongoFeedbackRepository) InsertFAQ(ctx context.Context, faq *domain.FAQ) error {
	res, err := r.faqs.InsertOne(ctx, faq)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		faq.ID = oid
	}
	return nil
}

var _ FeedbackRepository = (*MongoFeedbackRepository)(nil)
