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

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhone(ctx context.Context, phoneNumber string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, details domain.OnboardingDetails) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	AddResetToken(ctx context.Context, email, token string) error
	ResetPassword(ctx context.Context, email, token, passwordHash, salt string) error
}

type MongoUserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &MongoUserRepository{col: db.Collection("users")}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.ResetTokens == nil {
		user.ResetTokens = []string{}
	}

	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) GetByPhone(ctx context.Context, phoneNumber string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"phoneNumber": phoneNumber})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user domain.User
	if err := r.col.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) UpdateProfile(ctx context.Context, id string, details domain.OnboardingDetails) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if details.FullName != "" {
		set["fullName"] = details.FullName
	}
	if details.Address != "" {
		set["address"] = details.Address
	}
	if details.ProfileImage != "" {
		set["profileImage"] = details.ProfileImage
	}

	after := options.After
	var user domain.User
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, id string) error {
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

func (r *MongoUserRepository) AddResetToken(ctx context.Context, email, token string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$addToSet": bson.M{"resetTokens": token}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ResetPassword swaps the stored hash+salt and removes the consumed token in
// one document update. The filter requires token membership, so consuming is
// atomic: a token can authorize at most one password change, and a reused or
// unknown token fails identically.
func (r *MongoUserRepository) ResetPassword(ctx context.Context, email, token, passwordHash, salt string) error {
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"email": email, "resetTokens": token},
		bson.M{
			"$pull": bson.M{"resetTokens": token},
			"$set": bson.M{
				"passwordHash": passwordHash,
				"salt":         salt,
				"updatedAt":    time.Now().UTC(),
			},
		},
	).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrInvalidResetToken
		}
		return err
	}
	return nil
}

var _ UserRepository = (*MongoUserRepository)(nil)
