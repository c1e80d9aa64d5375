package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ghoomlo/cab-booking/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	Update(ctx context.Context, id string, details domain.VehicleDetails) (*domain.Vehicle, error)
	UpdatePrices(ctx context.Context, id string, rate, minKilometers float64) (*domain.Vehicle, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Vehicle, error)
}

type MongoVehicleRepository struct {
	col *mongo.Collection
}

func NewVehicleRepository(db *mongo.Database) VehicleRepository {
	return &MongoVehicleRepository{col: db.Collection("vehicles")}
}

func (r *MongoVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	now := time.Now().UTC()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now
	if vehicle.Images == nil {
		vehicle.Images = []string{}
	}

	res, err := r.col.InsertOne(ctx, vehicle)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateRegistration
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		vehicle.ID = oid
	}
	return nil
}

func (r *MongoVehicleRepository) Update(ctx context.Context, id string, details domain.VehicleDetails) (*domain.Vehicle, error) {
	set := bson.M{
		"name":               details.Name,
		"type":               details.Type,
		"registrationNumber": details.RegistrationNumber,
		"rate":               details.Rate,
		"images":             details.Images,
		"seatCount":          details.SeatCount,
		"minKilometers":      details.MinKilometers,
		"updatedAt":          time.Now().UTC(),
	}
	return r.findOneAndSet(ctx, id, set)
}

// UpdatePrices patches rate and minKilometers only; every other field on the
// record is left untouched.
func (r *MongoVehicleRepository) UpdatePrices(ctx context.Context, id string, rate, minKilometers float64) (*domain.Vehicle, error) {
	set := bson.M{
		"rate":          rate,
		"minKilometers": minKilometers,
		"updatedAt":     time.Now().UTC(),
	}
	return r.findOneAndSet(ctx, id, set)
}

func (r *MongoVehicleRepository) findOneAndSet(ctx context.Context, id string, set bson.M) (*domain.Vehicle, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	after := options.After
	var vehicle domain.Vehicle
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&vehicle)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateRegistration
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *MongoVehicleRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoVehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vehicles []domain.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

var _ VehicleRepository = (*MongoVehicleRepository)(nil)
