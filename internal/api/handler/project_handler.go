package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vibefolio/vibefolio-api/internal/api/metrics"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

// ViewQueue accepts views for asynchronous counting.
type ViewQueue interface {
	Enqueue(view ports.ViewInput) bool
}

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
	views   ViewQueue
}

func NewProjectHandler(service ports.ProjectService, views ViewQueue) *ProjectHandler {
	return &ProjectHandler{service: service, views: views}
}

// List handles GET /v1/projects.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        category  query     string  false  "Category (all and korea mean every category)"
// @Param        user_id   query     string  false  "Owner id"
// @Param        search    query     string  false  "Case-insensitive title/content search"
// @Param        limit     query     int     false  "Page size (max 100)"
// @Success      200       {object}  listProjectsResponse
// @Failure      400       {object}  errorResponse
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	var q listProjectsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	items, err := h.service.ListProjects(c.Request().Context(), ports.ListProjectsInput{
		Category: q.Category,
		UserID:   q.UserID,
		Search:   q.Search,
		Limit:    q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listProjectsResponse{Items: items, Count: len(items)})
}

// Create handles POST /v1/projects.
//
// @Summary      Publish a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	var req createProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.CreateProject(c.Request().Context(), ports.CreateProjectInput{
		UserID:        id.ID,
		Title:         req.Title,
		Category:      req.Category,
		ContentText:   req.ContentText,
		ThumbnailURL:  req.ThumbnailURL,
		RenderingType: req.RenderingType,
		CustomData:    req.CustomData,
	})
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.WithLabelValues(p.Category).Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/v1/projects/"+p.ID)
	return c.JSON(http.StatusCreated, p)
}

// Get handles GET /v1/projects/:id and records a view.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  errorResponse
// @Router       /v1/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	p, err := h.service.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	h.enqueueView(c, p.ID)
	return c.JSON(http.StatusOK, p)
}

// RecordView handles POST /v1/projects/:id/view.
//
// @Summary      Record a project view
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      202  {object}  viewResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/projects/{id}/view [post]
func (h *ProjectHandler) RecordView(c echo.Context) error {
	p, err := h.service.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	queued := h.enqueueView(c, p.ID)
	return c.JSON(http.StatusAccepted, viewResponse{Views: p.Views, Queued: queued})
}

// Update handles PATCH /v1/projects/:id.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to change"
// @Success      200   {object}  domain.Project
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/projects/{id} [patch]
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	var req updateProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.UpdateProject(c.Request().Context(), ports.UpdateProjectInput{
		ID:            c.Param("id"),
		UserID:        id.ID,
		Title:         req.Title,
		Category:      req.Category,
		ContentText:   req.ContentText,
		ThumbnailURL:  req.ThumbnailURL,
		RenderingType: req.RenderingType,
		CustomData:    req.CustomData,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /v1/projects/:id.
//
// @Summary      Delete a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteProject(c.Request().Context(), c.Param("id"), id.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProjectHandler) enqueueView(c echo.Context, projectID string) bool {
	if h.views == nil {
		return false
	}
	return h.views.Enqueue(ports.ViewInput{
		ProjectID: projectID,
		Viewer:    viewerKey(c),
		ViewedAt:  time.Now().UTC(),
	})
}
