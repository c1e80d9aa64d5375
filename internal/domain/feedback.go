package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"userId" json:"userId"`
	BookingID  string             `bson:"bookingId" json:"bookingId"`
	DriverID   string             `bson:"driverId,omitempty" json:"driverId,omitempty"`
	Rating     int                `bson:"rating" json:"rating"`
	ReviewText string             `bson:"reviewText,omitempty" json:"reviewText,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

type SupportRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	RequestType string             `bson:"requestType" json:"requestType"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type FAQ struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Question string             `bson:"question" json:"question"`
	Answer   string             `bson:"answer" json:"answer"`
}
