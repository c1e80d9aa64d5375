package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghoomlo/cab-booking/internal/service/feedback"
)

type FeedbackHandler struct {
	service feedback.FeedbackUseCase
}

func NewFeedbackHandler(service feedback.FeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

func (h *FeedbackHandler) Register(router *gin.RouterGroup) {
	router.POST("/review", h.submitReview)
	router.GET("/driver/:id/rating", h.driverRating)
	router.POST("/support", h.submitSupport)
	router.GET("/faq", h.listFAQ)
	router.POST("/faq", h.addFAQ)
}

type reviewRequest struct {
	UserID     string `json:"userId" binding:"required"`
	BookingID  string `json:"bookingId" binding:"required"`
	DriverID   string `json:"driverId"`
	Rating     int    `json:"rating" binding:"required"`
	ReviewText string `json:"reviewText"`
}

func (h *FeedbackHandler) submitReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	review, err := h.service.SubmitReview(c.Request.Context(), feedback.ReviewInput{
		UserID:     req.UserID,
		BookingID:  req.BookingID,
		DriverID:   req.DriverID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		respondError(c, "Failed to submit review", err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *FeedbackHandler) driverRating(c *gin.Context) {
	rating, err := h.service.DriverRating(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to fetch driver rating", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"driverId": c.Param("id"), "averageRating": rating})
}

type supportRequest struct {
	UserID      string `json:"userId" binding:"required"`
	RequestType string `json:"requestType" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h *FeedbackHandler) submitSupport(c *gin.Context) {
	var req supportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	created, err := h.service.SubmitSupportRequest(c.Request.Context(), req.UserID, req.RequestType, req.Description)
	if err != nil {
		respondError(c, "Failed to submit support request", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *FeedbackHandler) listFAQ(c *gin.Context) {
	faqs, err := h.service.ListFAQ(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to fetch FAQ", err)
		return
	}
	c.JSON(http.StatusOK, faqs)
}

type faqRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

func (h *FeedbackHandler) addFAQ(c *gin.Context) {
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	faq, err := h.service.AddFAQ(c.Request.Context(), req.Question, req.Answer)
	if err != nil {
		respondError(c, "Failed to add FAQ", err)
		return
	}
	c.JSON(http.StatusCreated, faq)
}
