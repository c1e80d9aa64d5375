package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Vehicle struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Type               string             `bson:"type" json:"type"`
	RegistrationNumber string             `bson:"registrationNumber" json:"registrationNumber"`
	Rate               float64            `bson:"rate" json:"rate"`
	Images             []string           `bson:"images" json:"images"`
	SeatCount          int                `bson:"seatCount" json:"seatCount"`
	MinKilometers      float64            `bson:"minKilometers" json:"minKilometers"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// VehicleDetails is the mutable part of a vehicle record, used for creates
// and full updates.
type VehicleDetails struct {
	Name               string
	Type               string
	RegistrationNumber string
	Rate               float64
	Images             []string
	SeatCount          int
	MinKilometers      float64
}
