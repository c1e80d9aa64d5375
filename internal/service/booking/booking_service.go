package booking

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ghoomlo/cab-booking/internal/domain"
	"github.com/ghoomlo/cab-booking/internal/geo"
	"github.com/ghoomlo/cab-booking/internal/kafka"
	"github.com/ghoomlo/cab-booking/internal/repository"
)

const suggestionLimit = 5

type BookingUseCase interface {
	RequestBooking(ctx context.Context, input CreateBookingInput) (*domain.BookingRequest, string, error)
	ListBookings(ctx context.Context) ([]domain.BookingRequest, error)
	FindPlaces(ctx context.Context, searchTerm string, lat, long *float64) (*domain.PlacesResult, error)
	FindDistance(ctx context.Context, source, destination string) (*domain.RouteDetails, error)
}

// Geocoder is the maps-provider boundary used by place search.
type Geocoder interface {
	Autosuggest(ctx context.Context, query string, maxResults int, lat, long *float64) ([]geo.Suggestion, error)
	Geocode(ctx context.Context, address string) (*domain.Coordinates, error)
	Route(ctx context.Context, origin, destination string) (*geo.RouteSummary, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	geocoder           Geocoder
	producer           Producer
	notificationsTopic string
	followupPhone      string
}

type CreateBookingInput struct {
	SourceName         string    `json:"sourceName"`
	SourceLatLong      string    `json:"sourceLatLong"`
	DestinationName    string    `json:"destinationName"`
	DestinationLatLong string    `json:"destinationLatLong"`
	CustomerID         string    `json:"customerId"`
	VisitorID          string    `json:"visitorId"`
	CustomerName       string    `json:"customerName"`
	RequestedTime      time.Time `json:"requestedTime"`
	PhoneNumber        string    `json:"phoneNumber"`
	VisitTime          time.Time `json:"visitTime"`
	VehicleName        string    `json:"vehicleName"`
}

func NewBookingService(
	bookings repository.BookingRepository,
	geocoder Geocoder,
	producer Producer,
	notificationsTopic string,
	followupPhone string,
) *BookingService {
	return &BookingService{
		bookings:           bookings,
		geocoder:           geocoder,
		producer:           producer,
		notificationsTopic: notificationsTopic,
		followupPhone:      followupPhone,
	}
}

// RequestBooking stores the booking and returns it together with the
// follow-up deep link. The link itself is never persisted.
func (s *BookingService) RequestBooking(ctx context.Context, input CreateBookingInput) (*domain.BookingRequest, string, error) {
	booking := &domain.BookingRequest{
		SourceName:         input.SourceName,
		SourceLatLong:      input.SourceLatLong,
		DestinationName:    input.DestinationName,
		DestinationLatLong: input.DestinationLatLong,
		CustomerID:         input.CustomerID,
		VisitorID:          input.VisitorID,
		CustomerName:       input.CustomerName,
		RequestedTime:      input.RequestedTime,
		PhoneNumber:        input.PhoneNumber,
		VisitTime:          input.VisitTime,
		VehicleName:        input.VehicleName,
	}
	if err := s.bookings.Insert(ctx, booking); err != nil {
		return nil, "", err
	}

	followup := s.followupLink(booking)

	if s.producer != nil && s.notificationsTopic != "" {
		event := kafka.NotificationEvent{
			Kind:    "booking_created",
			Channel: "whatsapp",
			To:      booking.PhoneNumber,
			Body:    followup,
			SentAt:  time.Now().UTC(),
		}
		if err := s.producer.Publish(ctx, s.notificationsTopic, uuid.NewString(), event); err != nil {
			logrus.WithError(err).Warn("failed to publish booking_created event")
		}
	}

	return booking, followup, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.BookingRequest, error) {
	return s.bookings.List(ctx)
}

// followupLink builds a WhatsApp deep link prefilled with the booking
// details. The requested time is rendered in Indian local time.
func (s *BookingService) followupLink(b *domain.BookingRequest) string {
	requested := b.RequestedTime
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		requested = requested.In(loc)
	}
	indianTime := requested.Format("2 January 2006, 3:04 PM")

	text := strings.Join([]string{
		"Hi,",
		"I want to book a cab, here are the details:",
		"*Vehicle Type:* " + b.VehicleName,
		"*Pickup:* " + b.SourceName,
		"*Drop:* " + b.DestinationName,
		"*Date:* " + indianTime,
	}, "\n")

	return fmt.Sprintf("https://api.whatsapp.com/send?phone=%s&text=%s",
		url.QueryEscape(s.followupPhone), url.QueryEscape(text))
}

// FindPlaces resolves autosuggest hits to coordinates and deduplicates the
// results. A suggestion is kept only when both its coordinate pair and its
// formatted address are first-seen; output preserves provider order.
// Suggestions that cannot be resolved are skipped, not errors.
func (s *BookingService) FindPlaces(ctx context.Context, searchTerm string, lat, long *float64) (*domain.PlacesResult, error) {
	if strings.TrimSpace(searchTerm) == "" {
		return nil, errors.New("searchTerm is required")
	}

	suggestions, err := s.geocoder.Autosuggest(ctx, searchTerm, suggestionLimit, lat, long)
	if err != nil {
		return nil, fmt.Errorf("autosuggest failed: %w", err)
	}

	seenCoords := make(map[string]struct{})
	seenAddresses := make(map[string]struct{})
	result := &domain.PlacesResult{Places: []domain.Place{}}

	for _, suggestion := range suggestions {
		address := suggestion.FormattedAddress
		if strings.TrimSpace(address) == "" {
			logrus.WithField("searchTerm", searchTerm).Debug("skipping suggestion with blank address")
			continue
		}

		coords, err := s.geocoder.Geocode(ctx, address)
		if err != nil {
			logrus.WithError(err).WithField("address", address).Warn("skipping suggestion: geocode failed")
			continue
		}
		if coords == nil {
			logrus.WithField("address", address).Warn("skipping suggestion: no coordinates")
			continue
		}

		coordKey := strconv.FormatFloat(coords.Latitude, 'f', -1, 64) + "," +
			strconv.FormatFloat(coords.Longitude, 'f', -1, 64)
		if _, dup := seenCoords[coordKey]; dup {
			continue
		}
		if _, dup := seenAddresses[address]; dup {
			continue
		}
		seenCoords[coordKey] = struct{}{}
		seenAddresses[address] = struct{}{}

		result.Places = append(result.Places, domain.Place{Address: address, Coordinates: *coords})
	}

	return result, nil
}

// FindDistance returns the travel distance and turn-by-turn instructions
// between two named places.
func (s *BookingService) FindDistance(ctx context.Context, source, destination string) (*domain.RouteDetails, error) {
	if source == "" || destination == "" {
		return nil, errors.New("source and destination are required")
	}

	summary, err := s.geocoder.Route(ctx, source, destination)
	if err != nil {
		return nil, fmt.Errorf("route lookup failed: %w", err)
	}
	return &domain.RouteDetails{
		DistanceKm:   summary.DistanceKm,
		Instructions: summary.Instructions,
	}, nil
}

var _ BookingUseCase = (*BookingService)(nil)
