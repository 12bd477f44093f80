package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Al1mk/Meister-Barbershop/internal/httperr"
)

// statusForCode maps business rejection codes onto HTTP statuses.
// Overlaps are conflicts the caller may resolve; lookups are 404s;
// everything else is caller input.
func statusForCode(code string) int {
	switch code {
	case "time_conflict", "time_off_overlap", "appointment_conflicts":
		return http.StatusConflict
	case "barber_not_found", "appointment_not_found", "time_off_not_found":
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func writeBusinessError(c *gin.Context, err error) bool {
	code, ok := httperr.IsAnyBusiness(err)
	if !ok {
		return false
	}
	httperr.Write(c, statusForCode(code), code, code)
	return true
}
