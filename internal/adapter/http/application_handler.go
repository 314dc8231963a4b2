package http

import (
	"net/http"

	"flat-allocation/internal/domain/flat"
	"flat-allocation/internal/usecase/allocation"

	"github.com/labstack/echo/v4"
)

type applyReq struct {
	ProjectName string `json:"project_name" validate:"required"`
	FlatType    string `json:"flat_type"    validate:"required,flattype"`
}

// decisionReq takes a pointer so a missing field is not read as a rejection.
type decisionReq struct {
	Approve *bool `json:"approve" validate:"required"`
}

func (h *Handler) Apply(c echo.Context) error {
	var req applyReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	ft, _ := flat.Parse(req.FlatType)
	dto, err := h.eng.Apply(c.Request().Context(), actorOf(c), allocation.ApplyInput{ProjectName: req.ProjectName, FlatType: ft})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *Handler) MyApplications(c echo.Context) error {
	out, err := h.eng.ListMyApplications(c.Request().Context(), actorOf(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ProjectApplications(c echo.Context) error {
	out, err := h.eng.ListProjectApplications(c.Request().Context(), actorOf(c), c.Param("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetApplication(c echo.Context) error {
	dto, err := h.eng.GetApplication(c.Request().Context(), actorOf(c), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *Handler) DecideApplication(c echo.Context) error {
	var req decisionReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.eng.DecideApplication(c.Request().Context(), actorOf(c), c.Param("id"), *req.Approve)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *Handler) RequestWithdrawal(c echo.Context) error {
	dto, err := h.eng.RequestWithdrawal(c.Request().Context(), actorOf(c), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *Handler) DecideWithdrawal(c echo.Context) error {
	var req decisionReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.eng.DecideWithdrawal(c.Request().Context(), actorOf(c), c.Param("id"), *req.Approve)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *Handler) Book(c echo.Context) error {
	dto, err := h.eng.Book(c.Request().Context(), actorOf(c), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
