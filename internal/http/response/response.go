package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/discussions-backend/internal/platform/apierr"
	"github.com/yungbote/discussions-backend/internal/platform/logger"
)

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// RespondError writes the small error body used by 403/404 and friends.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// RespondFieldErrors writes a validation failure body enumerating what is
// wrong with each field.
func RespondFieldErrors(c *gin.Context, fields map[string][]string) {
	c.JSON(http.StatusBadRequest, fields)
}

// RespondFromError maps a service error to its HTTP shape. Anything that is
// not an *apierr.Error is an internal failure.
func RespondFromError(c *gin.Context, log *logger.Logger, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		if apiErr.Fields != nil {
			RespondFieldErrors(c, apiErr.Fields)
			return
		}
		RespondError(c, apiErr.Status, apiErr.Error())
		return
	}
	if log != nil {
		log.Error("Unhandled service error", "error", err, "path", c.FullPath())
	}
	RespondError(c, http.StatusInternalServerError, "internal server error")
}
