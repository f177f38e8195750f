package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu      sync.Mutex
	users   map[string]*domain.User // by id
	finds   int
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = fmt.Sprintf("u%d", len(r.users)+1)
	}
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finds++
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context, limit, offset int) ([]*domain.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := []*domain.User{}
	for i, id := range ids {
		if i < offset || len(out) >= limit {
			continue
		}
		out = append(out, cloneUser(r.users[id]))
	}
	return out, int64(len(ids)), nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id, role string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	return cloneUser(u), nil
}

func (r *stubUserRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

// ---------------------------------------------------------------------------
// In-memory project repository
// ---------------------------------------------------------------------------

type stubProjectRepo struct {
	byID      map[string]*domain.Project
	order     []string
	createErr error
	lastList  ports.ListProjectsFilter
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{byID: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) error {
	if r.createErr != nil {
		return r.createErr
	}
	if p.ID == "" {
		p.ID = fmt.Sprintf("p%d", len(r.byID)+1)
	}
	clone := *p
	r.byID[p.ID] = &clone
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.byID[id]
	if !ok || p.IsDeleted {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

// List applies the same filters the real Mongo repo would use.
func (r *stubProjectRepo) List(_ context.Context, f ports.ListProjectsFilter) ([]*domain.Project, error) {
	r.lastList = f
	out := []*domain.Project{}
	for i := len(r.order) - 1; i >= 0; i-- {
		p := r.byID[r.order[i]]
		if p.IsDeleted {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.UserID != "" && p.UserID != f.UserID {
			continue
		}
		if f.Search != "" {
			q := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(p.Title), q) && !strings.Contains(strings.ToLower(p.ContentText), q) {
				continue
			}
		}
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) SoftDelete(_ context.Context, id string) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrProjectNotFound
	}
	p.IsDeleted = true
	return nil
}

func (r *stubProjectRepo) SetLikes(_ context.Context, id string, likes int64) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrProjectNotFound
	}
	p.Likes = likes
	return nil
}

func (r *stubProjectRepo) Count(context.Context) (int64, error) {
	var n int64
	for _, p := range r.byID {
		if !p.IsDeleted {
			n++
		}
	}
	return n, nil
}

func seedProject(repo *stubProjectRepo, id, owner, category, title string) *domain.Project {
	p := &domain.Project{ID: id, UserID: owner, Category: category, Title: title}
	_ = repo.Create(context.Background(), p)
	return p
}

// ---------------------------------------------------------------------------
// Session activity
// ---------------------------------------------------------------------------

type stubActivity struct {
	mu       sync.Mutex
	live     map[string]bool
	startErr error
	touchErr error
}

func newStubActivity() *stubActivity {
	return &stubActivity{live: make(map[string]bool)}
}

func (a *stubActivity) Start(_ context.Context, sid string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.startErr != nil {
		return a.startErr
	}
	a.live[sid] = true
	return nil
}

func (a *stubActivity) Touch(_ context.Context, sid string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.touchErr != nil {
		return false, a.touchErr
	}
	return a.live[sid], nil
}

func (a *stubActivity) End(_ context.Context, sid string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.live, sid)
	return nil
}
