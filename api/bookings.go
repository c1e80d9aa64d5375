package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ghoomlo/cab-booking/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/request", h.create)
	router.GET("/", h.list)
	router.GET("/places", h.findPlaces)
	router.GET("/distance", h.findDistance)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req booking.CreateBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	created, followup, err := h.service.RequestBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to create booking", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"bookingDetails":  created,
			"followupMessage": followup,
		},
	})
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to fetch bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) findPlaces(c *gin.Context) {
	searchTerm := c.Query("searchTerm")
	if searchTerm == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "searchTerm is required"})
		return
	}

	lat, err := parseOptionalFloat(c.Query("lat"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid lat", "error": err.Error()})
		return
	}
	long, err := parseOptionalFloat(c.Query("long"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid long", "error": err.Error()})
		return
	}

	places, err := h.service.FindPlaces(c.Request.Context(), searchTerm, lat, long)
	if err != nil {
		respondError(c, "Failed to fetch places", err)
		return
	}
	c.JSON(http.StatusOK, places)
}

func (h *BookingHandler) findDistance(c *gin.Context) {
	source := c.Query("source")
	destination := c.Query("destination")
	if source == "" || destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "source and destination are required"})
		return
	}

	route, err := h.service.FindDistance(c.Request.Context(), source, destination)
	if err != nil {
		respondError(c, "Failed to fetch distance", err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func parseOptionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
