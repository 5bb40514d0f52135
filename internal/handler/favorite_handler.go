package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"contentshare/internal/errors"
	"contentshare/internal/service"
)

// FavoriteHandler handles the favorite endpoints.
type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// Favorite godoc
// @Summary Mark content as favorite (idempotent)
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content ID"
// @Success 200 {object} map[string]string "already favorited"
// @Success 201 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /content/{id}/favorite [post]
func (h *FavoriteHandler) Favorite(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	created, err := h.favoriteService.Favorite(c.Request().Context(), user, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if !created {
		return c.JSON(http.StatusOK, map[string]string{"status": "content already marked as favorite"})
	}
	return c.JSON(http.StatusCreated, map[string]string{"status": "content marked as favorite"})
}

// Unfavorite godoc
// @Summary Remove content from favorites (idempotent)
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /content/{id}/favorite [delete]
func (h *FavoriteHandler) Unfavorite(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	removed, err := h.favoriteService.Unfavorite(c.Request().Context(), user, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if !removed {
		return c.JSON(http.StatusOK, map[string]string{"status": "content not in favorites"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "favorite removed"})
}

// List godoc
// @Summary List the caller's favorited contents
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ContentSummary
// @Failure 401 {object} errors.ErrorResponse
// @Router /content/favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	contents, err := h.favoriteService.List(c.Request().Context(), user)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, contents)
}
