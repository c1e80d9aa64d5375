package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// testDatabase returns a handle without dialing; the driver connects lazily.
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	assert.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("ghoomlo_test")
}

func TestNewUserRepository(t *testing.T) {
	repo := NewUserRepository(testDatabase(t))
	assert.NotNil(t, repo)
}

func TestNewBookingRepository(t *testing.T) {
	repo := NewBookingRepository(testDatabase(t))
	assert.NotNil(t, repo)
}

func TestNewVehicleRepository(t *testing.T) {
	repo := NewVehicleRepository(testDatabase(t))
	assert.NotNil(t, repo)
}

func TestNewFeedbackRepository(t *testing.T) {
	repo := NewFeedbackRepository(testDatabase(t))
	assert.NotNil(t, repo)
}
