package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghoomlo/cab-booking/internal/domain"
)

// respondError maps service errors to the `{message, error}` body the
// clients expect. Auth failures are 401, lookups 404, uniqueness conflicts
// 409, everything else 500.
func respondError(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidOTP), errors.Is(err, domain.ErrInvalidResetToken):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateEmail), errors.Is(err, domain.ErrDuplicateRegistration):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"message": message, "error": err.Error()})
}
