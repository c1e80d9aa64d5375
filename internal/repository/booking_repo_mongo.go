package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ghoomlo/cab-booking/internal/domain"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *domain.BookingRequest) error
	List(ctx context.Context) ([]domain.BookingRequest, error)
}

type MongoBookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &MongoBookingRepository{col: db.Collection("booking-requests")}
}

// Insert writes the full booking payload. There is no idempotency key:
// duplicate submissions create duplicate records.
func (r *MongoBookingRepository) Insert(ctx context.Context, booking *domain.BookingRequest) error {
	booking.CreatedAt = time.Now().UTC()
	res, err := r.col.InsertOne(ctx, booking)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}
	return nil
}

func (r *MongoBookingRepository) List(ctx context.Context) ([]domain.BookingRequest, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []domain.BookingRequest
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

var _ BookingRepository = (*MongoBookingRepository)(nil)
