package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghoomlo/cab-booking/internal/domain"
	"github.com/ghoomlo/cab-booking/internal/service/auth"
)

type AuthHandler struct {
	service auth.AuthUseCase
}

func NewAuthHandler(service auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	router.POST("/register", h.register)
	router.PUT("/onboard", h.onboard)
	router.DELETE("/remove-user", h.removeUser)
	router.POST("/send-otp", h.sendOTP)
	router.POST("/verify-otp", h.verifyOTP)
	router.POST("/forgot-password", h.forgotPassword)
	router.POST("/reset-password", h.resetPassword)
	router.GET("/profile", requireAuth, h.profile)
}

type registerRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

func (h *AuthHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	user, err := h.service.Register(c.Request.Context(), auth.RegisterInput{
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondError(c, "Failed to register user", err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

type onboardRequest struct {
	UserID       string `json:"userId" binding:"required"`
	FullName     string `json:"fullName"`
	Address      string `json:"address"`
	ProfileImage string `json:"profileImage"`
}

func (h *AuthHandler) onboard(c *gin.Context) {
	var req onboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	user, err := h.service.Onboard(c.Request.Context(), req.UserID, domain.OnboardingDetails{
		FullName:     req.FullName,
		Address:      req.Address,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		respondError(c, "Failed to onboard user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) removeUser(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	if err := h.service.Remove(c.Request.Context(), req.UserID); err != nil {
		respondError(c, "Failed to remove user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User removed successfully"})
}

type sendOTPRequest struct {
	UserID      string `json:"userId"`
	PhoneNumber string `json:"phoneNumber"`
	ContactType string `json:"contactType"`
}

func (h *AuthHandler) sendOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	err := h.service.SendOTP(c.Request.Context(), auth.SendOTPInput{
		UserID:      req.UserID,
		PhoneNumber: req.PhoneNumber,
		ContactType: req.ContactType,
	})
	if err != nil {
		respondError(c, "Failed to send OTP", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

type verifyOTPRequest struct {
	UserID      string `json:"userId"`
	PhoneNumber string `json:"phoneNumber"`
	OTP         string `json:"otp"`
	OTPCode     string `json:"otpCode"`
}

func (h *AuthHandler) verifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	code := req.OTP
	if code == "" {
		code = req.OTPCode
	}

	token, err := h.service.VerifyOTP(c.Request.Context(), auth.VerifyOTPInput{
		UserID:      req.UserID,
		PhoneNumber: req.PhoneNumber,
		Code:        code,
	})
	if err != nil {
		respondError(c, "Invalid OTP", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP verified successfully", "token": token})
}

func (h *AuthHandler) forgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, "Failed to issue reset token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset token sent"})
}

type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	ResetToken  string `json:"resetToken" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

func (h *AuthHandler) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req.Email, req.ResetToken, req.NewPassword); err != nil {
		respondError(c, "Failed to reset password", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
}

func (h *AuthHandler) profile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token."})
		return
	}

	user, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "Failed to fetch user profile", err)
		return
	}
	c.JSON(http.StatusOK, user)
}
