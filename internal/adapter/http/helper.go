package http

import "github.com/labstack/echo/v4"

// bindValid binds the body into req and validates it, writing the error
// response itself. ok is false when the handler should return.
func bindValid(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, invalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return false, validationFailed(c, err)
	}
	return true, nil
}
