package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the API. write runs on every mutating route after
// the actor check (idempotency in production).
func RegisterRoutes(e *echo.Echo, h *Handler, write ...echo.MiddlewareFunc) {
	read := []echo.MiddlewareFunc{RequireActor()}
	mut := append([]echo.MiddlewareFunc{RequireActor()}, write...)

	e.GET("/health", h.Health)
	e.POST("/people", h.RegisterPerson, write...)

	e.GET("/projects", h.ListProjects, read...)
	e.POST("/projects", h.CreateProject, mut...)
	e.PUT("/projects/:name", h.UpdateProject, mut...)
	e.PATCH("/projects/:name/visibility", h.SetVisibility, mut...)
	e.DELETE("/projects/:name", h.DeleteProject, mut...)
	e.GET("/projects/:name/applications", h.ProjectApplications, read...)
	e.GET("/projects/:name/registrations", h.ProjectRegistrations, read...)

	e.POST("/applications", h.Apply, mut...)
	e.GET("/applications/me", h.MyApplications, read...)
	e.GET("/applications/:id", h.GetApplication, read...)
	e.POST("/applications/:id/decision", h.DecideApplication, mut...)
	e.POST("/applications/:id/withdrawal", h.RequestWithdrawal, mut...)
	e.POST("/applications/:id/withdrawal/decision", h.DecideWithdrawal, mut...)
	e.POST("/applications/:id/booking", h.Book, mut...)

	e.POST("/registrations", h.RegisterOfficer, mut...)
	e.POST("/registrations/:id/decision", h.DecideRegistration, mut...)
	e.POST("/registrations/:id/revoke", h.RevokeOfficer, mut...)

	e.GET("/invoices/me", h.MyInvoices, read...)
	e.POST("/invoices/:id/payment", h.PayInvoice, mut...)
	e.POST("/invoices/:id/receipt", h.IssueReceipt, mut...)
	e.GET("/invoices/:id/receipt", h.GetReceipt, read...)
}
