package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"assomap/internal/errors"
	"assomap/internal/service"
)

// ImageHandler handles the image catalog and upload endpoints.
type ImageHandler struct {
	svc service.ImageService
}

// NewImageHandler creates a handler layer.
func NewImageHandler(svc service.ImageService) *ImageHandler {
	return &ImageHandler{svc: svc}
}

// ListImages godoc
// @Summary List all images
// @Tags images
// @Produce json
// @Success 200 {array} model.Image
// @Router /images [get]
func (h *ImageHandler) ListImages(c echo.Context) error {
	images, err := h.svc.ListImages(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, images)
}

// Upload godoc
// @Summary Upload a project image
// @Description Multipart upload. The file goes in the "image" field, with
// @Description projet_id and optional isMain form values alongside.
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file (5MB max)"
// @Param projet_id formData int true "Project ID"
// @Param isMain formData bool false "Mark as the project's main image"
// @Success 201 {object} model.Image
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /images [post]
func (h *ImageHandler) Upload(c echo.Context) error {
	projectID, err := strconv.Atoi(c.FormValue("projet_id"))
	if err != nil || projectID <= 0 {
		httpErr := errors.MapErrorToHTTP(errors.ErrInvalidID)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	isMain, _ := strconv.ParseBool(c.FormValue("isMain"))

	file, err := c.FormFile("image")
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrNoFile)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	image, err := h.svc.Upload(c.Request().Context(), uint(projectID), isMain, file)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, image)
}
