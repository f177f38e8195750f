package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// List handles GET /v1/projects/:id/comments.
//
// @Summary      List comments as threads
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {array}   domain.Comment
// @Router       /v1/projects/{id}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	threads, err := h.service.ListComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, threads)
}

// Create handles POST /v1/projects/:id/comments.
//
// @Summary      Comment on a project
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      createCommentRequest  true  "Comment"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/projects/{id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	var req createCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cm, err := h.service.CreateComment(c.Request().Context(), ports.CreateCommentInput{
		ProjectID:       c.Param("id"),
		UserID:          id.ID,
		Content:         req.Content,
		ParentID:        req.ParentID,
		MentionedUserID: req.MentionedUserID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cm)
}

// Delete handles DELETE /v1/comments/:id.
//
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id  path  string  true  "Comment id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteComment(c.Request().Context(), c.Param("id"), id.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
