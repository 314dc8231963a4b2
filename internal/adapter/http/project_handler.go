package http

import (
	"net/http"
	"time"

	"flat-allocation/internal/usecase/allocation"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

type projectReq struct {
	Neighborhood   string  `json:"neighborhood"     validate:"required"`
	OpenDate       string  `json:"open_date"        validate:"required,datetime=2006-01-02"`
	CloseDate      string  `json:"close_date"       validate:"required,datetime=2006-01-02"`
	Visible        bool    `json:"visible"`
	TwoRoomUnits   int     `json:"two_room_units"   validate:"gte=0"`
	ThreeRoomUnits int     `json:"three_room_units" validate:"gte=0"`
	TwoRoomPrice   float64 `json:"two_room_price"   validate:"gte=0,dec2"`
	ThreeRoomPrice float64 `json:"three_room_price" validate:"gte=0,dec2"`
	OfficerSlots   int     `json:"officer_slots"    validate:"gte=0,lte=10"`
}

type createProjectReq struct {
	Name string `json:"name" validate:"required"`
	projectReq
}

type visibilityReq struct {
	Visible *bool `json:"visible" validate:"required"`
}

// input converts the request; dates were validated already.
func (r projectReq) input(name string) allocation.ProjectInput {
	open, _ := time.Parse(dateLayout, r.OpenDate)
	closeAt, _ := time.Parse(dateLayout, r.CloseDate)
	return allocation.ProjectInput{
		Name:           name,
		Neighborhood:   r.Neighborhood,
		OpenDate:       open,
		CloseDate:      closeAt,
		Visible:        r.Visible,
		TwoRoomUnits:   r.TwoRoomUnits,
		ThreeRoomUnits: r.ThreeRoomUnits,
		TwoRoomPrice:   r.TwoRoomPrice,
		ThreeRoomPrice: r.ThreeRoomPrice,
		OfficerSlots:   r.OfficerSlots,
	}
}

func (h *Handler) ListProjects(c echo.Context) error {
	out, err := h.eng.ListProjects(c.Request().Context(), actorOf(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateProject(c echo.Context) error {
	var req createProjectReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.eng.CreateProject(c.Request().Context(), actorOf(c), req.input(req.Name))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *Handler) UpdateProject(c echo.Context) error {
	var req projectReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	name := c.Param("name")
	dto, err := h.eng.UpdateProject(c.Request().Context(), actorOf(c), name, req.input(name))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *Handler) SetVisibility(c echo.Context) error {
	var req visibilityReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.eng.SetVisibility(c.Request().Context(), actorOf(c), c.Param("name"), *req.Visible)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *Handler) DeleteProject(c echo.Context) error {
	if err := h.eng.DeleteProject(c.Request().Context(), actorOf(c), c.Param("name")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
