package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dentalpro-backend/repository"
	"dentalpro-backend/services"
	"dentalpro-backend/utils"
)

var core *services.Core

// Init wires the controllers to the service core. Called once at startup.
func Init(c *services.Core) {
	core = c
}

// handleServiceError translates core sentinels into HTTP statuses.
func handleServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrMissingCredential),
		errors.Is(err, services.ErrSchemaVersionMismatch),
		errors.Is(err, services.ErrDecryptionFailed),
		errors.Is(err, utils.ErrInvalidAmount),
		errors.Is(err, utils.ErrUnsupportedCurrency),
		errors.Is(err, utils.ErrForbiddenField):
		status = http.StatusBadRequest
	}
	utils.RespondWithError(c, status, err.Error())
}
