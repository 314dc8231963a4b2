package http

import (
	"net/http"
	"strings"

	"flat-allocation/internal/domain/person"

	"github.com/labstack/echo/v4"
)

// HeaderActor carries the caller's NRIC. Authentication happens upstream;
// the engine decides what the actor may do.
const HeaderActor = "X-Actor-Nric"

const actorKey = "actor_nric"

// RequireActor rejects requests without a well-formed actor header.
func RequireActor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nric := strings.ToUpper(strings.TrimSpace(c.Request().Header.Get(HeaderActor)))
			if nric == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing " + HeaderActor})
			}
			if !person.ValidNRIC(nric) {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid " + HeaderActor})
			}
			c.Set(actorKey, nric)
			return next(c)
		}
	}
}

func actorOf(c echo.Context) string {
	s, _ := c.Get(actorKey).(string)
	return s
}
