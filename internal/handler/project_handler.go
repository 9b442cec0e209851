package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"assomap/internal/errors"
	"assomap/internal/explore"
	"assomap/internal/service"
)

// ProjectHandler handles project directory endpoints.
type ProjectHandler struct {
	svc     service.ProjectService
	explore service.ExploreService
	images  service.ImageService
}

// NewProjectHandler creates a handler layer.
func NewProjectHandler(svc service.ProjectService, exploreSvc service.ExploreService, images service.ImageService) *ProjectHandler {
	return &ProjectHandler{svc: svc, explore: exploreSvc, images: images}
}

// CreateProject godoc
// @Summary Create a project
// @Tags projets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ProjectInput true "Project fields"
// @Success 201 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Router /projets [post]
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var input service.ProjectInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Message: "corps de requête invalide", Code: "INVALID_BODY"})
	}

	project, err := h.svc.CreateProject(c.Request().Context(), input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, project)
}

// ListProjects godoc
// @Summary List all projects with their images
// @Tags projets
// @Produce json
// @Success 200 {array} model.Project
// @Router /projets [get]
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	projects, err := h.svc.ListProjects(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, projects)
}

// Explore godoc
// @Summary Filter and shape projects for the map screen
// @Description Returns map markers (text and category filtered) and the
// @Description viewport-bounded list items. The four region parameters are
// @Description optional as a group; without them every marker is listed.
// @Tags projets
// @Produce json
// @Param q query string false "Free-text query over name and description"
// @Param categorie query string false "Category, or Tous for all"
// @Param lat query number false "Viewport center latitude"
// @Param lng query number false "Viewport center longitude"
// @Param latDelta query number false "Viewport latitude extent"
// @Param lngDelta query number false "Viewport longitude extent"
// @Success 200 {object} service.ExploreResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /projets/explore [get]
func (h *ProjectHandler) Explore(c echo.Context) error {
	region, err := regionFromQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Message: "paramètres de région invalides", Code: "INVALID_REGION"})
	}

	result, err := h.explore.Explore(c.Request().Context(), c.QueryParam("q"), c.QueryParam("categorie"), region)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// regionFromQuery parses the viewport parameters. All four must be present
// to form a region; none of them means "no viewport yet".
func regionFromQuery(c echo.Context) (*explore.Region, error) {
	raw := [4]string{
		c.QueryParam("lat"),
		c.QueryParam("lng"),
		c.QueryParam("latDelta"),
		c.QueryParam("lngDelta"),
	}
	if raw[0] == "" && raw[1] == "" && raw[2] == "" && raw[3] == "" {
		return nil, nil
	}

	var values [4]float64
	for i, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return &explore.Region{
		Latitude:       values[0],
		Longitude:      values[1],
		LatitudeDelta:  values[2],
		LongitudeDelta: values[3],
	}, nil
}

// GetProject godoc
// @Summary Get a project by id with its images
// @Tags projets
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projets/{id} [get]
func (h *ProjectHandler) GetProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	project, err := h.svc.GetProject(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, project)
}

// ListProjectImages godoc
// @Summary List the images of a project
// @Tags projets
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} model.Image
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projets/{id}/images [get]
func (h *ProjectHandler) ListProjectImages(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	images, err := h.svc.ListProjectImages(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, images)
}

// UpdateProject godoc
// @Summary Replace a project
// @Tags projets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body service.ProjectInput true "Project fields"
// @Success 200 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projets/{id} [put]
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var input service.ProjectInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Message: "corps de requête invalide", Code: "INVALID_BODY"})
	}

	project, err := h.svc.UpdateProject(c.Request().Context(), id, input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags projets
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projets/{id} [delete]
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.svc.DeleteProject(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteProjectImages godoc
// @Summary Delete every image of a project
// @Tags projets
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Router /projets/{id}/images [delete]
func (h *ProjectHandler) DeleteProjectImages(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.images.DeleteProjectImages(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
