// controllers/helpers.go
package controllers

import (
	"errors"
	"net/http"

	"bizops-backend/services"
	"bizops-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondReferenceError maps reference resolution failures onto client
// errors: malformed ids are 400, missing targets 404, anything else 500.
func respondReferenceError(c *gin.Context, err error, field, entity string) {
	switch {
	case errors.Is(err, services.ErrInvalidReference):
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+field)
	case errors.Is(err, services.ErrReferenceMissing):
		utils.RespondWithError(c, http.StatusNotFound, entity+" not found")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}
