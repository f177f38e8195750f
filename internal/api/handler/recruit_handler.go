package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

type RecruitHandler struct {
	service ports.RecruitService
}

func NewRecruitHandler(service ports.RecruitService) *RecruitHandler {
	return &RecruitHandler{service: service}
}

// List handles GET /v1/recruit-items.
//
// @Summary      List active jobs, contests and events
// @Tags         recruit
// @Produce      json
// @Param        type  query     string  false  "job, contest or event"
// @Success      200   {object}  recruitListResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/recruit-items [get]
func (h *RecruitHandler) List(c echo.Context) error {
	var q listRecruitQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	items, err := h.service.ListRecruitItems(c.Request().Context(), q.Type)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recruitListResponse{Items: items})
}

// Create handles POST /v1/recruit-items (admin).
//
// @Summary      Create a recruit item
// @Tags         recruit
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recruitRequest  true  "Item"
// @Success      201   {object}  domain.RecruitItem
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/recruit-items [post]
func (h *RecruitHandler) Create(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	var req recruitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.service.CreateRecruitItem(c.Request().Context(), id.ID, req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update handles PUT /v1/recruit-items/:id (admin).
//
// @Summary      Update a recruit item
// @Tags         recruit
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Item id"
// @Param        body  body      recruitRequest  true  "Fields to change"
// @Success      200   {object}  domain.RecruitItem
// @Failure      404   {object}  errorResponse
// @Router       /v1/recruit-items/{id} [put]
func (h *RecruitHandler) Update(c echo.Context) error {
	var req recruitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.service.UpdateRecruitItem(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /v1/recruit-items/:id (admin). The item is
// deactivated, not removed.
//
// @Summary      Deactivate a recruit item
// @Tags         recruit
// @Security     BearerAuth
// @Param        id  path  string  true  "Item id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/recruit-items/{id} [delete]
func (h *RecruitHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteRecruitItem(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r recruitRequest) input() ports.RecruitInput {
	return ports.RecruitInput{
		Title:          r.Title,
		Description:    r.Description,
		Type:           r.Type,
		Date:           r.Date,
		Location:       r.Location,
		Prize:          r.Prize,
		Salary:         r.Salary,
		Company:        r.Company,
		EmploymentType: r.EmploymentType,
		Link:           r.Link,
		Thumbnail:      r.Thumbnail,
		IsActive:       r.IsActive,
	}
}
