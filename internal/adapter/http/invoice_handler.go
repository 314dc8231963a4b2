package http

import (
	"net/http"

	"flat-allocation/internal/domain/invoice"

	"github.com/labstack/echo/v4"
)

type payReq struct {
	Method string `json:"method" validate:"required,oneof=PAYNOW BANK_TRANSFER CREDIT_CARD"`
}

func (h *Handler) PayInvoice(c echo.Context) error {
	var req payReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.eng.PayInvoice(c.Request().Context(), actorOf(c), c.Param("id"), invoice.PaymentMethod(req.Method))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *Handler) IssueReceipt(c echo.Context) error {
	rc, err := h.eng.IssueReceipt(c.Request().Context(), actorOf(c), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, rc)
}

func (h *Handler) GetReceipt(c echo.Context) error {
	rc, err := h.eng.GetReceipt(c.Request().Context(), actorOf(c), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rc)
}

func (h *Handler) MyInvoices(c echo.Context) error {
	out, err := h.eng.ListMyInvoices(c.Request().Context(), actorOf(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
