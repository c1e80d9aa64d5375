package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingRequest is a single ride request. Records are immutable once
// created; there is no update or cancel path.
type BookingRequest struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SourceName         string             `bson:"sourceName" json:"sourceName"`
	SourceLatLong      string             `bson:"sourceLatLong" json:"sourceLatLong"`
	DestinationName    string             `bson:"destinationName" json:"destinationName"`
	DestinationLatLong string             `bson:"destinationLatLong" json:"destinationLatLong"`
	CustomerID         string             `bson:"customerId" json:"customerId"`
	VisitorID          string             `bson:"visitorId" json:"visitorId"`
	CustomerName       string             `bson:"customerName" json:"customerName"`
	RequestedTime      time.Time          `bson:"requestedTime" json:"requestedTime"`
	PhoneNumber        string             `bson:"phoneNumber" json:"phoneNumber"`
	VisitTime          time.Time          `bson:"visitTime" json:"visitTime"`
	VehicleName        string             `bson:"vehicleName" json:"vehicleName"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}
