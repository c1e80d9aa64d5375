package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghoomlo/cab-booking/internal/domain"
	"github.com/ghoomlo/cab-booking/internal/service/fleet"
)

type FleetHandler struct {
	service fleet.FleetUseCase
}

func NewFleetHandler(service fleet.FleetUseCase) *FleetHandler {
	return &FleetHandler{service: service}
}

func (h *FleetHandler) Register(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	router.GET("/", h.list)
	router.POST("/", requireAuth, h.create)
	router.PUT("/:id", requireAuth, h.update)
	router.PATCH("/:id/prices", requireAuth, h.updatePrices)
	router.DELETE("/:id", requireAuth, h.remove)
}

type vehicleRequest struct {
	Name               string   `json:"name" binding:"required"`
	Type               string   `json:"type" binding:"required"`
	RegistrationNumber string   `json:"registrationNumber" binding:"required"`
	Rate               float64  `json:"rate" binding:"required"`
	Images             []string `json:"images"`
	SeatCount          int      `json:"seatCount" binding:"required"`
	MinKilometers      float64  `json:"minKilometers"`
}

func (r vehicleRequest) details() domain.VehicleDetails {
	return domain.VehicleDetails{
		Name:               r.Name,
		Type:               r.Type,
		RegistrationNumber: r.RegistrationNumber,
		Rate:               r.Rate,
		Images:             r.Images,
		SeatCount:          r.SeatCount,
		MinKilometers:      r.MinKilometers,
	}
}

func (h *FleetHandler) create(c *gin.Context) {
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	vehicle, err := h.service.AddVehicle(c.Request.Context(), req.details())
	if err != nil {
		respondError(c, "Failed to add vehicle", err)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

func (h *FleetHandler) update(c *gin.Context) {
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	vehicle, err := h.service.UpdateVehicle(c.Request.Context(), c.Param("id"), req.details())
	if err != nil {
		respondError(c, "Failed to update vehicle", err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

type updatePricesRequest struct {
	Rate          float64 `json:"rate" binding:"required"`
	MinKilometers float64 `json:"minKilometers"`
}

func (h *FleetHandler) updatePrices(c *gin.Context) {
	var req updatePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	vehicle, err := h.service.UpdateVehiclePrices(c.Request.Context(), c.Param("id"), req.Rate, req.MinKilometers)
	if err != nil {
		respondError(c, "Failed to update vehicle prices", err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *FleetHandler) remove(c *gin.Context) {
	if err := h.service.RemoveVehicle(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "Failed to remove vehicle", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle removed successfully"})
}

func (h *FleetHandler) list(c *gin.Context) {
	vehicles, err := h.service.ListVehicles(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to fetch vehicles", err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}
