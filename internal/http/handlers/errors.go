package handlers

import (
	"errors"
	"net/http"

	"cafehub/internal/services"
	"cafehub/internal/upstream"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// respondError maps the error taxonomy onto HTTP responses: validation
// failures are 400s, expired sessions get a login redirect with no error
// text, and upstream network/format failures become an inline "could not
// load" message. Format errors are logged distinctly for diagnosis, on the
// request-scoped logger so the line carries the request id.
func respondError(c echo.Context, err error, loadTarget string) error {
	logger := zerolog.Ctx(c.Request().Context())

	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": validationErr.Reason})
	}

	if errors.Is(err, upstream.ErrNotAuthenticated) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"redirect": "/login"})
	}

	var formatErr *upstream.FormatError
	if errors.As(err, &formatErr) {
		logger.Error().Err(err).Str("endpoint", formatErr.Endpoint).Msg("Shop API payload format error")
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "could not load " + loadTarget})
	}

	logger.Error().Err(err).Msg("Shop API request failed")
	return c.JSON(http.StatusBadGateway, map[string]string{"error": "could not load " + loadTarget})
}
