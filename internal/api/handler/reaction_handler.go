package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

// ReactionHandler serves likes and bookmarks. Both share the same routes
// shape, so handlers are built per kind.
type ReactionHandler struct {
	service ports.ReactionService
}

func NewReactionHandler(service ports.ReactionService) *ReactionHandler {
	return &ReactionHandler{service: service}
}

// Toggle returns the handler for POST /v1/projects/:id/{like,bookmark}.
//
// @Summary      Toggle a like or bookmark
// @Tags         reactions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  toggleResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/projects/{id}/like [post]
// @Router       /v1/projects/{id}/bookmark [post]
func (h *ReactionHandler) Toggle(kind domain.ReactionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := currentIdentity(c)
		if err != nil {
			return err
		}
		res, err := h.service.Toggle(c.Request().Context(), kind, c.Param("id"), id.ID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, toggleResponse{Active: res.Active, Count: res.Count})
	}
}

// Mine returns the handler for GET /v1/me/{likes,bookmarks}.
//
// @Summary      Projects I liked or bookmarked
// @Tags         reactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  projectIDsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/me/likes [get]
// @Router       /v1/me/bookmarks [get]
func (h *ReactionHandler) Mine(kind domain.ReactionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := currentIdentity(c)
		if err != nil {
			return err
		}
		ids, err := h.service.ListMine(c.Request().Context(), kind, id.ID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, projectIDsResponse{ProjectIDs: ids})
	}
}
