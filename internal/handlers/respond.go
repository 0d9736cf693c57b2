package handler

import (
	"errors"
	"net/http"

	"company-billing-backend/internal/apierror"
	"company-billing-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError is the single translation point from store-layer failures to
// HTTP. Anything that is not a typed apierror is treated as infrastructure.
func respondError(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case apierror.KindNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": apiErr.Message})
			return
		case apierror.KindConflict:
			c.JSON(http.StatusConflict, gin.H{"error": apiErr.Message})
			return
		}
	}

	log.Error().
		Err(err).
		Str("request_id", middleware.GetRequestID(c)).
		Str("path", c.FullPath()).
		Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
