package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

type stubReactionRepo struct {
	set map[domain.Reaction]bool // CreatedAt zeroed
}

func newStubReactionRepo() *stubReactionRepo {
	return &stubReactionRepo{set: make(map[domain.Reaction]bool)}
}

func (r *stubReactionRepo) Toggle(_ context.Context, re domain.Reaction) (bool, error) {
	key := domain.Reaction{Kind: re.Kind, UserID: re.UserID, ProjectID: re.ProjectID}
	if r.set[key] {
		delete(r.set, key)
		return false, nil
	}
	r.set[key] = true
	return true, nil
}

func (r *stubReactionRepo) Count(_ context.Context, kind domain.ReactionKind, projectID string) (int64, error) {
	var n int64
	for k := range r.set {
		if k.Kind == kind && k.ProjectID == projectID {
			n++
		}
	}
	return n, nil
}

func (r *stubReactionRepo) ProjectIDs(_ context.Context, kind domain.ReactionKind, userID string) ([]string, error) {
	var ids []string
	for k := range r.set {
		if k.Kind == kind && k.UserID == userID {
			ids = append(ids, k.ProjectID)
		}
	}
	return ids, nil
}

func TestReactionService_ToggleLike(t *testing.T) {
	projects := newStubProjectRepo()
	seedProject(projects, "p1", "u1", "c", "t")
	svc := NewReactionService(newStubReactionRepo(), projects, zerolog.Nop())
	ctx := context.Background()

	res, err := svc.Toggle(ctx, domain.ReactionLike, "p1", "u2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Active || res.Count != 1 || projects.byID["p1"].Likes != 1 {
		t.Fatalf("unexpected state after like: %+v likes=%d", res, projects.byID["p1"].Likes)
	}

	res, _ = svc.Toggle(ctx, domain.ReactionLike, "p1", "u2")
	if res.Active || res.Count != 0 || projects.byID["p1"].Likes != 0 {
		t.Fatalf("unexpected state after unlike: %+v", res)
	}
}

func TestReactionService_BookmarksAndListing(t *testing.T) {
	projects := newStubProjectRepo()
	seedProject(projects, "p1", "u1", "c", "t")
	svc := NewReactionService(newStubReactionRepo(), projects, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, domain.ReactionBookmark, "p1", "u2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ids, err := svc.ListMine(ctx, domain.ReactionBookmark, "u2")
	if err != nil || len(ids) != 1 || ids[0] != "p1" {
		t.Fatalf("unexpected bookmarks: %v %v", ids, err)
	}
	if projects.byID["p1"].Likes != 0 {
		t.Fatalf("bookmarks must not touch the like counter")
	}

	ids, _ = svc.ListMine(ctx, domain.ReactionLike, "u2")
	if ids == nil || len(ids) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", ids)
	}
}

func TestReactionService_Errors(t *testing.T) {
	svc := NewReactionService(newStubReactionRepo(), newStubProjectRepo(), zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, "love", "p1", "u2"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Toggle(ctx, domain.ReactionLike, "missing", "u2"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
