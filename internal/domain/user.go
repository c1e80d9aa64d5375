package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PhoneNumber  string             `bson:"phoneNumber" json:"phoneNumber"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Salt         string             `bson:"salt" json:"-"`
	ResetTokens  []string           `bson:"resetTokens" json:"-"`
	FullName     string             `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	ProfileImage string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OnboardingDetails carries the optional profile fields a user fills in
// after registration.
type OnboardingDetails struct {
	FullName     string
	Address      string
	ProfileImage string
}
