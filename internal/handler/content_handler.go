package handler

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"contentshare/internal/errors"
	"contentshare/internal/service"
)

const defaultListLimit = 10

// ContentHandler handles content CRUD endpoints.
type ContentHandler struct {
	contentService service.ContentService
}

// NewContentHandler creates a new content handler.
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// ContentRequest is the JSON carried in the multipart "content" form field.
type ContentRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// bindContentForm parses the multipart body: the "content" JSON field and
// any files under "media". Title is only required on create.
func bindContentForm(c echo.Context, requireTitle bool) (service.ContentInput, []*multipart.FileHeader, error) {
	raw := c.FormValue("content")
	if raw == "" {
		return service.ContentInput{}, nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "no content JSON provided",
			Code:  "MALFORMED_INPUT",
		})
	}

	var req ContentRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return service.ContentInput{}, nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid content JSON",
			Code:  "MALFORMED_INPUT",
		})
	}
	if requireTitle {
		if err := c.Validate(&req); err != nil {
			return service.ContentInput{}, nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "MALFORMED_INPUT",
			})
		}
	}

	var media []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		media = form.File["media"]
	}

	return service.ContentInput{Title: req.Title, Description: req.Description}, media, nil
}

// Create godoc
// @Summary Create content with optional media attachments
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param content formData string true "Content JSON: {title, description}"
// @Param media formData file false "Media attachment"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /content [post]
func (h *ContentHandler) Create(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	input, media, err := bindContentForm(c, true)
	if err != nil {
		return err
	}

	content, err := h.contentService.Create(c.Request().Context(), user, input, media)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "content created",
		"content": content,
	})
}

// Get godoc
// @Summary Get content by id
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content ID"
// @Success 200 {object} model.Content
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /content/{id} [get]
func (h *ContentHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	content, err := h.contentService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, content)
}

// List godoc
// @Summary List content filtered by title or description substring
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param title query string false "Title substring (case-insensitive)"
// @Param description query string false "Description substring (case-insensitive)"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset"
// @Success 200 {array} model.ContentSummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /content/ [get]
func (h *ContentHandler) List(c echo.Context) error {
	limit := defaultListLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v > 0 {
		offset = v
	}

	results, err := h.contentService.List(c.Request().Context(),
		c.QueryParam("title"), c.QueryParam("description"), limit, offset)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, results)
}

// Update godoc
// @Summary Update content (owner only)
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content ID"
// @Param content formData string true "Content JSON: {title, description}"
// @Param media formData file false "Replacement media attachment"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /content/{id} [post]
func (h *ContentHandler) Update(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	input, media, err := bindContentForm(c, false)
	if err != nil {
		return err
	}

	content, err := h.contentService.Update(c.Request().Context(), user, id, input, media)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "content updated",
		"content": content,
	})
}

// Delete godoc
// @Summary Delete content (owner only)
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /content/{id} [delete]
func (h *ContentHandler) Delete(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.contentService.Delete(c.Request().Context(), user, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "content deleted"})
}
