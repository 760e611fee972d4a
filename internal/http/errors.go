package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/packing-service/internal/circuitbreaker"
	"github.com/guttosm/packing-service/internal/domain/dto"
	"github.com/guttosm/packing-service/internal/domain/model"
	"github.com/guttosm/packing-service/internal/i18n"
)

// allocationMessageKeys maps allocation failures to messages that take the bag name.
var allocationMessageKeys = map[error]string{
	model.ErrCapacityExceeded: i18n.ErrKeyBagFull,
	model.ErrDuplicateInBag:   i18n.ErrKeyDuplicateInBag,
	model.ErrAlreadyPacked:    i18n.ErrKeyAlreadyPacked,
}

// respondError maps a service error onto the HTTP error envelope.
func respondError(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)

	var allocErr *model.AllocationError
	var validationErr *dto.ValidationError
	switch {
	case errors.As(err, &allocErr):
		builder.ErrorWithMessage(http.StatusConflict, allocationMessage(c, allocErr), err)
	case errors.As(err, &validationErr):
		message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidRequest, i18n.GetLocale(c))
		builder.ErrorWithDetails(http.StatusBadRequest, message,
			map[string]string{validationErr.Field: validationErr.Message}, err)
	case errors.Is(err, model.ErrValidation):
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, model.ErrNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

func allocationMessage(c *gin.Context, err *model.AllocationError) string {
	for sentinel, key := range allocationMessageKeys {
		if errors.Is(err.Err, sentinel) {
			return i18n.GetTranslator().Translatef(key, i18n.GetLocale(c), err.BagName)
		}
	}
	return err.Error()
}

func respondNotFound(c *gin.Context, messageKey string) {
	NewResponseBuilder(c).Error(http.StatusNotFound, messageKey, nil)
}

func respondBadBody(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)
	message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidRequestBody, i18n.GetLocale(c))
	builder.ErrorWithDetails(http.StatusBadRequest, message, map[string]string{"body": err.Error()}, nil)
}
