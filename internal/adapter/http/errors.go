package http

import (
	"errors"
	"net/http"

	"flat-allocation/internal/domain/errs"

	"github.com/labstack/echo/v4"
)

var statusByKind = []struct {
	kind   error
	status int
}{
	{errs.ErrNotFound, http.StatusNotFound},
	{errs.ErrInvalidInput, http.StatusBadRequest},
	{errs.ErrUnauthorized, http.StatusForbidden},
	{errs.ErrNotEligible, http.StatusUnprocessableEntity},
	{errs.ErrRoleConflict, http.StatusUnprocessableEntity},
	{errs.ErrAlreadyApplied, http.StatusConflict},
	{errs.ErrNoCapacity, http.StatusConflict},
	{errs.ErrInvalidTransition, http.StatusConflict},
	{errs.ErrAlreadyIssued, http.StatusConflict},
	{errs.ErrAlreadyPaid, http.StatusConflict},
	{errs.ErrAlreadyBooked, http.StatusConflict},
	{errs.ErrAlreadyRequested, http.StatusConflict},
	{errs.ErrAlreadyAssigned, http.StatusConflict},
	{errs.ErrProjectInUse, http.StatusConflict},
	{errs.ErrManagerBusy, http.StatusConflict},
	{errs.ErrStorage, http.StatusServiceUnavailable},
}

// StatusFor maps an engine error to its HTTP status.
func StatusFor(err error) int {
	for _, m := range statusByKind {
		if errors.Is(err, m.kind) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes err as an ErrorResponse. Storage and unknown errors
// are not echoed to the client.
func respondError(c echo.Context, err error) error {
	code := StatusFor(err)
	msg := err.Error()
	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
		msg = http.StatusText(code)
	}
	return c.JSON(code, ErrorResponse{Error: msg, Kind: errs.Kind(err)})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
}
