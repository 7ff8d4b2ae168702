package controllers

import (
	"errors"

	"github.com/hray3182/ordering-app/pkg/resp"
	"github.com/hray3182/ordering-app/services"

	"github.com/gin-gonic/gin"
)

// fail maps service errors onto the response envelope.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidOrderInput):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrOrderCreationFailed):
		resp.Unavailable(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
