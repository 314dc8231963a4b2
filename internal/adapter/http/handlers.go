package http

import (
	"net/http"
	"time"

	"flat-allocation/internal/usecase/allocation"

	"github.com/labstack/echo/v4"
)

type Handler struct{ eng *allocation.Engine }

func NewHandler(eng *allocation.Engine) *Handler { return &Handler{eng: eng} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}
