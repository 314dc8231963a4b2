package http

import (
	"net/http"
	"strings"

	"flat-allocation/internal/domain/person"
	"flat-allocation/internal/usecase/allocation"

	"github.com/labstack/echo/v4"
)

type registerPersonReq struct {
	NRIC          string `json:"nric"           validate:"required,nric"`
	Name          string `json:"name"           validate:"required"`
	Age           int    `json:"age"            validate:"required,gte=1,lte=130"`
	MaritalStatus string `json:"marital_status" validate:"required,oneof=Single Married"`
	Role          string `json:"role"           validate:"required,oneof=applicant officer manager"`
}

func (h *Handler) RegisterPerson(c echo.Context) error {
	var req registerPersonReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.eng.RegisterPerson(c.Request().Context(), allocation.RegisterPersonInput{
		NRIC:          strings.ToUpper(req.NRIC),
		Name:          req.Name,
		Age:           req.Age,
		MaritalStatus: person.MaritalStatus(req.MaritalStatus),
		Role:          person.Role(req.Role),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
