package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ghoomlo/cab-booking/config"
	"github.com/ghoomlo/cab-booking/internal/bootstrap"
	"github.com/ghoomlo/cab-booking/internal/cache"
	"github.com/ghoomlo/cab-booking/internal/geo"
	"github.com/ghoomlo/cab-booking/internal/kafka"
	"github.com/ghoomlo/cab-booking/internal/logger"
	"github.com/ghoomlo/cab-booking/internal/otp"
	"github.com/ghoomlo/cab-booking/internal/repository"
	"github.com/ghoomlo/cab-booking/internal/service/auth"
	"github.com/ghoomlo/cab-booking/internal/service/booking"
	"github.com/ghoomlo/cab-booking/internal/service/feedback"
	"github.com/ghoomlo/cab-booking/internal/service/fleet"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Setup(cfg.Log.File)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := repository.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("connect mongo: %v", err)
	}
	defer client.Disconnect(context.Background())

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	otpStore := cache.NewOTPStore(cfg.Redis, time.Duration(cfg.Auth.OTPTTLSeconds)*time.Second)
	defer otpStore.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	var verifier otp.Verifier
	switch cfg.Auth.OTPStrategy {
	case auth.StrategyProvider:
		verifier = otp.NewProviderVerifier(cfg.Auth.Provider)
	default:
		verifier = otp.NewLocalVerifier(otpStore, producer, cfg.Kafka.NotificationsTopic)
	}

	geocoder := geo.NewClient(cfg.Geo.BaseURL, cfg.Geo.APIKey, cfg.Geo.Region)

	services := bootstrap.Services{
		Auth: auth.NewAuthService(
			userRepo,
			verifier,
			producer,
			cfg.Kafka.NotificationsTopic,
			cfg.Auth.OTPStrategy,
			[]byte(cfg.Auth.JWTSecret),
			time.Duration(cfg.Auth.JWTTTLHours)*time.Hour,
		),
		Booking: booking.NewBookingService(
			bookingRepo,
			geocoder,
			producer,
			cfg.Kafka.NotificationsTopic,
			cfg.Booking.FollowupPhone,
		),
		Fleet:    fleet.NewFleetService(vehicleRepo),
		Feedback: feedback.NewFeedbackService(feedbackRepo),
	}

	if err := bootstrap.Run(ctx, cfg, services); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
