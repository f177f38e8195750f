package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vibefolio/vibefolio-api/internal/api/middleware"
	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
	"github.com/vibefolio/vibefolio-api/internal/infrastructure/oidc"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newJSONContext builds a context with an optional JSON body and, when
// user is non-nil, a resolved session for that user.
func newJSONContext(e *echo.Echo, method, target, body string, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	state := domain.AuthState{}
	if user != nil {
		state.Identity = &domain.Identity{ID: user.ID, Email: user.Email, SessionID: "sid-" + user.ID}
		state.Profile = user.Profile()
	}
	middleware.SetAuthState(c, state)
	return c, rec
}

var (
	alice = &domain.User{ID: "u1", Email: "alice@vibefolio.dev", Nickname: "alice", Role: domain.RoleUser}
	root  = &domain.User{ID: "u0", Email: "root@vibefolio.dev", Nickname: "root", Role: domain.RoleAdmin}
)

// --- auth ---

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	identityFn func(ctx context.Context, email, nickname string) (*ports.LoginResult, error)
	loggedOut  []string
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) LoginWithIdentity(ctx context.Context, email, nickname string) (*ports.LoginResult, error) {
	return s.identityFn(ctx, email, nickname)
}

func (s *stubAuthService) Logout(_ context.Context, sessionID string) error {
	s.loggedOut = append(s.loggedOut, sessionID)
	return nil
}

type stubIDP struct {
	identity *oidc.Identity
	err      error
	gotNonce string
}

func (s *stubIDP) Begin() (string, string, string, error) {
	return "https://issuer.example/authorize?state=st", "st", "nn", nil
}

func (s *stubIDP) Exchange(_ context.Context, _ string, nonce string) (*oidc.Identity, error) {
	s.gotNonce = nonce
	return s.identity, s.err
}

// --- projects ---

type stubProjectService struct {
	projects map[string]*domain.Project
	lastList ports.ListProjectsInput
	created  ports.CreateProjectInput
	updated  ports.UpdateProjectInput
}

func (s *stubProjectService) CreateProject(_ context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	s.created = in
	return &domain.Project{ID: "p-new", UserID: in.UserID, Title: in.Title, Category: in.Category}, nil
}

func (s *stubProjectService) GetProject(_ context.Context, id string) (*domain.Project, error) {
	p, ok := s.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return p, nil
}

func (s *stubProjectService) ListProjects(_ context.Context, in ports.ListProjectsInput) ([]*domain.Project, error) {
	s.lastList = in
	out := make([]*domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProjectService) UpdateProject(_ context.Context, in ports.UpdateProjectInput) (*domain.Project, error) {
	s.updated = in
	p, ok := s.projects[in.ID]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	if !p.OwnedBy(in.UserID) {
		return nil, domain.ErrForbidden
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	return p, nil
}

func (s *stubProjectService) DeleteProject(_ context.Context, id, userID string) error {
	p, ok := s.projects[id]
	if !ok {
		return domain.ErrProjectNotFound
	}
	if !p.OwnedBy(userID) {
		return domain.ErrForbidden
	}
	delete(s.projects, id)
	return nil
}

type stubViewQueue struct {
	views []ports.ViewInput
	full  bool
}

func (q *stubViewQueue) Enqueue(v ports.ViewInput) bool {
	if q.full {
		return false
	}
	q.views = append(q.views, v)
	return true
}

// --- admin ---

type stubAdminService struct {
	page, limit int
	roleFor     string
	role        string
}

func (s *stubAdminService) Stats(context.Context) (*ports.DashboardStats, error) {
	return &ports.DashboardStats{Users: 3, Projects: 7, Comments: 11}, nil
}

func (s *stubAdminService) ListUsers(_ context.Context, page, limit int) (*ports.ListUsersResult, error) {
	s.page, s.limit = page, limit
	return &ports.ListUsersResult{Items: []*domain.User{alice, root}, Total: 2, Page: 1, Limit: 20}, nil
}

func (s *stubAdminService) ChangeRole(_ context.Context, userID, role string) (*domain.User, error) {
	s.roleFor, s.role = userID, role
	u := *alice
	u.Role = role
	return &u, nil
}

// httpCode extracts the status of an error returned by a handler.
func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}
