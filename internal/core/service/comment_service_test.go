package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

type stubCommentRepo struct {
	byID  map[string]*domain.Comment
	order []string
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{byID: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) error {
	c.ID = fmt.Sprintf("c%d", len(r.byID)+1)
	clone := *c
	r.byID[c.ID] = &clone
	r.order = append(r.order, c.ID)
	return nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	c, ok := r.byID[id]
	if !ok || c.IsDeleted {
		return nil, domain.ErrCommentNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) ListByProject(_ context.Context, projectID string) ([]*domain.Comment, error) {
	out := []*domain.Comment{}
	for _, id := range r.order {
		c := r.byID[id]
		if c.ProjectID == projectID && !c.IsDeleted {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCommentRepo) SoftDelete(_ context.Context, id string) error {
	c, ok := r.byID[id]
	if !ok {
		return domain.ErrCommentNotFound
	}
	c.IsDeleted = true
	return nil
}

func (r *stubCommentRepo) Count(context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func newCommentSvc() (*CommentService, *stubCommentRepo) {
	comments := newStubCommentRepo()
	projects := newStubProjectRepo()
	seedProject(projects, "p1", "u1", "c", "t")
	seedProject(projects, "p2", "u1", "c", "t")
	users := newStubUserRepo()
	users.users["u2"] = &domain.User{ID: "u2", Nickname: "trinity"}
	return NewCommentService(comments, projects, users, zerolog.Nop()), comments
}

func TestCommentService_CreateAndThread(t *testing.T) {
	svc, _ := newCommentSvc()
	ctx := context.Background()

	root, err := svc.CreateComment(ctx, ports.CreateCommentInput{ProjectID: "p1", UserID: "u2", Content: "nice"})
	if err != nil {
		t.Fatalf("create root: %v", err)
	}
	if root.Author == nil || root.Author.Nickname != "trinity" {
		t.Fatalf("expected author block, got %+v", root.Author)
	}

	reply, err := svc.CreateComment(ctx, ports.CreateCommentInput{ProjectID: "p1", UserID: "u2", Content: "thanks", ParentID: root.ID})
	if err != nil {
		t.Fatalf("create reply: %v", err)
	}
	// A reply to a reply joins the root thread.
	nested, err := svc.CreateComment(ctx, ports.CreateCommentInput{ProjectID: "p1", UserID: "u2", Content: "again", ParentID: reply.ID})
	if err != nil {
		t.Fatalf("create nested reply: %v", err)
	}
	if nested.ParentID != root.ID {
		t.Fatalf("expected nested reply to attach to root, got parent %q", nested.ParentID)
	}

	threads, err := svc.ListComments(ctx, "p1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(threads) != 1 || len(threads[0].Replies) != 2 {
		t.Fatalf("unexpected threads: %+v", threads)
	}
}

func TestCommentService_CreateValidation(t *testing.T) {
	svc, _ := newCommentSvc()
	ctx := context.Background()

	if _, err := svc.CreateComment(ctx, ports.CreateCommentInput{ProjectID: "p1", UserID: "u2", Content: "  "}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty content, got %v", err)
	}
	long := strings.Repeat("x", maxCommentLength+1)
	if _, err := svc.CreateComment(ctx, ports.CreateCommentInput{ProjectID: "p1", UserID: "u2", Content: long}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for long content, got %v", err)
	}
	if _, err := svc.CreateComment(ctx, ports.CreateCommentInput{ProjectID: "nope", UserID: "u2", Content: "hi"}); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}

	other, _ := svc.CreateComment(ctx, ports.CreateCommentInput{ProjectID: "p2", UserID: "u2", Content: "hi"})
	if _, err := svc.CreateComment(ctx, ports.CreateCommentInput{ProjectID: "p1", UserID: "u2", Content: "hi", ParentID: other.ID}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for cross-project parent, got %v", err)
	}
}

func TestCommentService_DeleteOwnerOnly(t *testing.T) {
	svc, repo := newCommentSvc()
	ctx := context.Background()
	c, _ := svc.CreateComment(ctx, ports.CreateCommentInput{ProjectID: "p1", UserID: "u2", Content: "hi"})

	if err := svc.DeleteComment(ctx, c.ID, "u1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.DeleteComment(ctx, c.ID, "u2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.byID[c.ID].IsDeleted {
		t.Fatalf("expected soft delete")
	}
	if err := svc.DeleteComment(ctx, c.ID, "u2"); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound on second delete, got %v", err)
	}
}
