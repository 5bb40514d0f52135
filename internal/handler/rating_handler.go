package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"contentshare/internal/errors"
	"contentshare/internal/service"
)

// RatingHandler handles the rating endpoints.
type RatingHandler struct {
	ratingService service.RatingService
}

// NewRatingHandler creates a new rating handler.
func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RateRequest represents a rating upsert request.
type RateRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review"`
}

// Rate godoc
// @Summary Rate content 1-5 (upsert: re-rating overwrites)
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content ID"
// @Param request body RateRequest true "Rating payload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /content/{id}/rate [post]
func (h *RatingHandler) Rate(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req RateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "MALFORMED_INPUT",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: errors.ErrInvalidRating.Error(),
			Code:  "INVALID_RATING",
		})
	}

	if err := h.ratingService.Rate(c.Request().Context(), user, id, req.Rating, req.Review); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, map[string]string{"status": "rating saved"})
}

// Remove godoc
// @Summary Remove the caller's rating (idempotent)
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /content/{id}/rate [delete]
func (h *RatingHandler) Remove(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	removed, err := h.ratingService.Remove(c.Request().Context(), user, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if !removed {
		return c.JSON(http.StatusOK, map[string]string{"status": "content not rated"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "rating removed"})
}
