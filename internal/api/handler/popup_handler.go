package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

type PopupHandler struct {
	service ports.PopupService
}

func NewPopupHandler(service ports.PopupService) *PopupHandler {
	return &PopupHandler{service: service}
}

// Active handles GET /v1/popups/active.
//
// @Summary      Popup to show now
// @Tags         popups
// @Produce      json
// @Success      200  {object}  domain.Popup
// @Success      204  "No popup scheduled"
// @Router       /v1/popups/active [get]
func (h *PopupHandler) Active(c echo.Context) error {
	p, err := h.service.ActivePopup(c.Request().Context())
	if errors.Is(err, domain.ErrPopupNotFound) {
		return c.NoContent(http.StatusNoContent)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// List handles GET /v1/popups (admin).
//
// @Summary      List all popups
// @Tags         popups
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Popup
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/popups [get]
func (h *PopupHandler) List(c echo.Context) error {
	popups, err := h.service.ListPopups(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, popups)
}

// Create handles POST /v1/popups (admin).
//
// @Summary      Create a popup
// @Tags         popups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      popupRequest  true  "Popup"
// @Success      201   {object}  domain.Popup
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/popups [post]
func (h *PopupHandler) Create(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	var req popupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.service.CreatePopup(c.Request().Context(), id.ID, req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// Update handles PATCH /v1/popups/:id (admin).
//
// @Summary      Update a popup
// @Tags         popups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Popup id"
// @Param        body  body      popupRequest  true  "Fields to change"
// @Success      200   {object}  domain.Popup
// @Failure      404   {object}  errorResponse
// @Router       /v1/popups/{id} [patch]
func (h *PopupHandler) Update(c echo.Context) error {
	var req popupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.service.UpdatePopup(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Toggle handles POST /v1/popups/:id/toggle (admin).
//
// @Summary      Flip a popup between active and inactive
// @Tags         popups
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Popup id"
// @Success      200  {object}  domain.Popup
// @Failure      404  {object}  errorResponse
// @Router       /v1/popups/{id}/toggle [post]
func (h *PopupHandler) Toggle(c echo.Context) error {
	p, err := h.service.TogglePopup(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /v1/popups/:id (admin).
//
// @Summary      Delete a popup
// @Tags         popups
// @Security     BearerAuth
// @Param        id  path  string  true  "Popup id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/popups/{id} [delete]
func (h *PopupHandler) Delete(c echo.Context) error {
	if err := h.service.DeletePopup(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r popupRequest) input() ports.PopupInput {
	return ports.PopupInput{
		Title:        r.Title,
		Content:      r.Content,
		ImageURL:     r.ImageURL,
		LinkURL:      r.LinkURL,
		LinkText:     r.LinkText,
		IsActive:     r.IsActive,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		DisplayOrder: r.DisplayOrder,
	}
}
