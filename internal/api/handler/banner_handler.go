package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

type BannerHandler struct {
	service ports.BannerService
}

func NewBannerHandler(service ports.BannerService) *BannerHandler {
	return &BannerHandler{service: service}
}

// List handles GET /v1/banners.
//
// @Summary      List banners
// @Tags         banners
// @Produce      json
// @Param        page_type    query     string  false  "discover or connect"
// @Param        active_only  query     bool    false  "Only active banners"
// @Success      200          {array}   domain.Banner
// @Failure      400          {object}  errorResponse
// @Router       /v1/banners [get]
func (h *BannerHandler) List(c echo.Context) error {
	var q listBannersQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	banners, err := h.service.ListBanners(c.Request().Context(), ports.ListBannersFilter{
		PageType:   q.PageType,
		ActiveOnly: q.ActiveOnly,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, banners)
}

// Create handles POST /v1/banners (admin).
//
// @Summary      Create a banner
// @Tags         banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bannerRequest  true  "Banner"
// @Success      201   {object}  domain.Banner
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/banners [post]
func (h *BannerHandler) Create(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	var req bannerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	b, err := h.service.CreateBanner(c.Request().Context(), id.ID, req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, b)
}

// Update handles PATCH /v1/banners/:id (admin).
//
// @Summary      Update a banner
// @Tags         banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Banner id"
// @Param        body  body      bannerRequest  true  "Fields to change"
// @Success      200   {object}  domain.Banner
// @Failure      404   {object}  errorResponse
// @Router       /v1/banners/{id} [patch]
func (h *BannerHandler) Update(c echo.Context) error {
	var req bannerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	b, err := h.service.UpdateBanner(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

// Delete handles DELETE /v1/banners/:id (admin).
//
// @Summary      Delete a banner
// @Tags         banners
// @Security     BearerAuth
// @Param        id  path  string  true  "Banner id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/banners/{id} [delete]
func (h *BannerHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteBanner(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r bannerRequest) input() ports.BannerInput {
	return ports.BannerInput{
		Title:        r.Title,
		ImageURL:     r.ImageURL,
		LinkURL:      r.LinkURL,
		PageType:     r.PageType,
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.IsActive,
	}
}
