package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/packing-service/internal/circuitbreaker"
	"github.com/guttosm/packing-service/internal/domain/dto"
	"github.com/guttosm/packing-service/internal/i18n"
	"github.com/guttosm/packing-service/internal/logger"
)

// ErrorHandler logs errors attached with c.Error and, when the handler wrote
// nothing, answers with a status derived from the last one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := GetRequestID(c)
		log := logger.Logger()
		for _, ginErr := range c.Errors {
			log.Error().
				Str("request_id", requestID).
				Err(ginErr.Err).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status_code", c.Writer.Status()).
				Msg("Request error")
		}

		if c.Writer.Written() {
			return
		}

		status, key := statusForError(c.Errors.Last().Err)
		message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
		c.AbortWithStatusJSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).WithRequestID(requestID))
	}
}

func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}
