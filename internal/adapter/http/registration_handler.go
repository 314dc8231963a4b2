package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type registerOfficerReq struct {
	ProjectName string `json:"project_name" validate:"required"`
}

func (h *Handler) RegisterOfficer(c echo.Context) error {
	var req registerOfficerReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.eng.RegisterOfficer(c.Request().Context(), actorOf(c), req.ProjectName)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *Handler) ProjectRegistrations(c echo.Context) error {
	out, err := h.eng.ListRegistrations(c.Request().Context(), actorOf(c), c.Param("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) DecideRegistration(c echo.Context) error {
	var req decisionReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.eng.DecideRegistration(c.Request().Context(), actorOf(c), c.Param("id"), *req.Approve)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *Handler) RevokeOfficer(c echo.Context) error {
	dto, err := h.eng.RevokeOfficer(c.Request().Context(), actorOf(c), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
