package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"estatehub/internal/model"
	"estatehub/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the HTTP taxonomy. Store errors are
// logged and returned as opaque 500s; context deadlines become 504 so
// clients know to retry.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("invalid request", err.Error()))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, model.NewErrorResponse("Forbidden access", err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, model.NewErrorResponse("not found", err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, model.NewErrorResponse("conflict", err.Error()))
	case errors.Is(err, context.DeadlineExceeded):
		log.Printf("[http] %s %s timed out: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusGatewayTimeout, model.NewErrorResponse("request timed out, retry", ""))
	default:
		log.Printf("[http] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("internal server error", ""))
	}
}
