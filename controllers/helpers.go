package controllers

import (
	"errors"
	"net/http"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/service"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) (uint, error) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, errors.New("user_id tidak ada di context")
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.New("user_id tidak valid")
	}
	return id, nil
}

// serviceStatus memetakan error aturan bisnis dari service ke status HTTP.
func serviceStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrEmptyOpname),
		errors.Is(err, service.ErrInvalidDecision):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrInvalidReversal),
		errors.Is(err, service.ErrDuplicateLot),
		errors.Is(err, service.ErrLotHasStock),
		errors.Is(err, service.ErrSessionClosed),
		errors.Is(err, service.ErrAlreadyValidated):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
