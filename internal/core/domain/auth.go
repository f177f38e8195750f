package domain

// Identity is the authenticated principal. It is present once authentication
// succeeds and is never mutated by readers.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	SessionID string `json:"-"`
}

// Profile carries the extended attributes of an identity. It is fetched
// separately and may still be nil while the identity is already known.
type Profile struct {
	Role            string `json:"role"`
	Nickname        string `json:"nickname"`
	ProfileImageURL string `json:"profile_image_url"`
}

// AuthState is the snapshot published by the session provider.
// Loading stays true until the first resolution attempt has finished.
type AuthState struct {
	Identity *Identity
	Profile  *Profile
	Loading  bool
}

// Authenticated reports whether the snapshot carries a resolved identity.
func (s AuthState) Authenticated() bool {
	return !s.Loading && s.Identity != nil
}

type roleKind uint8

const (
	roleKindUser roleKind = iota
	roleKindAdmin
)

// Role is either Admin or User(name). Build it with AdminRole, UserRole or
// ResolveRole; the zero value is the plain "user" role.
type Role struct {
	kind roleKind
	name string
}

// AdminRole returns the administrator role.
func AdminRole() Role { return Role{kind: roleKindAdmin, name: RoleAdmin} }

// UserRole returns a non-administrative role. An empty name means "user".
func UserRole(name string) Role {
	if name == "" || name == RoleAdmin {
		name = RoleUser
	}
	return Role{kind: roleKindUser, name: name}
}

// IsAdmin reports whether r is the administrator role.
func (r Role) IsAdmin() bool { return r.kind == roleKindAdmin }

// Name returns the display name of the role.
func (r Role) Name() string {
	if r.name == "" {
		return RoleUser
	}
	return r.name
}

func (r Role) String() string { return r.Name() }

// ResolveRole maps a (possibly missing) profile to a Role. A missing profile
// or an empty role string resolves to User("user").
func ResolveRole(p *Profile) Role {
	if p == nil {
		return UserRole("")
	}
	if p.Role == RoleAdmin {
		return AdminRole()
	}
	return UserRole(p.Role)
}

// AdminState is the admin projection of an AuthState.
type AdminState struct {
	IsAdmin   bool    `json:"isAdmin"`
	IsLoading bool    `json:"isLoading"`
	UserID    *string `json:"userId"`
	UserRole  *string `json:"userRole"`
}

// DeriveAdminState projects s into an AdminState. It is pure: no I/O, no
// state kept between calls. IsAdmin is the authoritative signal; UserRole is
// only a display value.
func DeriveAdminState(s AuthState) AdminState {
	out := AdminState{IsLoading: s.Loading}
	if s.Identity == nil {
		return out
	}

	role := ResolveRole(s.Profile)
	id := s.Identity.ID
	name := role.Name()

	out.IsAdmin = role.IsAdmin()
	out.UserID = &id
	out.UserRole = &name
	return out
}
