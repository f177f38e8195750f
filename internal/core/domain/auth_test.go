package domain

import "testing"

func strPtr(s string) *string { return &s }

func eqPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func TestDeriveAdminState(t *testing.T) {
	tests := []struct {
		name  string
		state AuthState
		want  AdminState
	}{
		{
			name:  "loading without identity",
			state: AuthState{Loading: true},
			want:  AdminState{IsLoading: true},
		},
		{
			name:  "resolved anonymous",
			state: AuthState{},
			want:  AdminState{},
		},
		{
			name: "admin profile",
			state: AuthState{
				Identity: &Identity{ID: "u1", Email: "a@b.com"},
				Profile:  &Profile{Role: RoleAdmin},
			},
			want: AdminState{IsAdmin: true, UserID: strPtr("u1"), UserRole: strPtr("admin")},
		},
		{
			name: "user profile",
			state: AuthState{
				Identity: &Identity{ID: "u2"},
				Profile:  &Profile{Role: RoleUser},
			},
			want: AdminState{UserID: strPtr("u2"), UserRole: strPtr("user")},
		},
		{
			name:  "identity without profile is not admin",
			state: AuthState{Identity: &Identity{ID: "u3"}},
			want:  AdminState{UserID: strPtr("u3"), UserRole: strPtr("user")},
		},
		{
			name: "empty role falls back to user",
			state: AuthState{
				Identity: &Identity{ID: "u4"},
				Profile:  &Profile{},
			},
			want: AdminState{UserID: strPtr("u4"), UserRole: strPtr("user")},
		},
		{
			name: "custom role is kept for display",
			state: AuthState{
				Identity: &Identity{ID: "u5"},
				Profile:  &Profile{Role: "moderator"},
			},
			want: AdminState{UserID: strPtr("u5"), UserRole: strPtr("moderator")},
		},
		{
			name: "role match is exact",
			state: AuthState{
				Identity: &Identity{ID: "u6"},
				Profile:  &Profile{Role: "Admin"},
			},
			want: AdminState{UserID: strPtr("u6"), UserRole: strPtr("Admin")},
		},
		{
			name: "admin while still loading",
			state: AuthState{
				Identity: &Identity{ID: "u7"},
				Profile:  &Profile{Role: RoleAdmin},
				Loading:  true,
			},
			want: AdminState{IsAdmin: true, IsLoading: true, UserID: strPtr("u7"), UserRole: strPtr("admin")},
		},
		{
			name:  "profile without identity is ignored",
			state: AuthState{Profile: &Profile{Role: RoleAdmin}},
			want:  AdminState{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveAdminState(tt.state)
			if got.IsAdmin != tt.want.IsAdmin || got.IsLoading != tt.want.IsLoading {
				t.Fatalf("flags: got admin=%v loading=%v, want admin=%v loading=%v",
					got.IsAdmin, got.IsLoading, tt.want.IsAdmin, tt.want.IsLoading)
			}
			if !eqPtr(got.UserID, tt.want.UserID) {
				t.Fatalf("userID: got %v, want %v", got.UserID, tt.want.UserID)
			}
			if !eqPtr(got.UserRole, tt.want.UserRole) {
				t.Fatalf("userRole: got %v, want %v", got.UserRole, tt.want.UserRole)
			}
		})
	}
}

func TestDeriveAdminState_IsPure(t *testing.T) {
	admin := AuthState{Identity: &Identity{ID: "u1"}, Profile: &Profile{Role: RoleAdmin}}
	user := AuthState{Identity: &Identity{ID: "u2"}, Profile: &Profile{Role: RoleUser}}

	for i := 0; i < 3; i++ {
		if !DeriveAdminState(admin).IsAdmin {
			t.Fatalf("iteration %d: expected admin", i)
		}
		if DeriveAdminState(user).IsAdmin {
			t.Fatalf("iteration %d: expected non-admin", i)
		}
	}
}

func TestDeriveAdminState_DoesNotAliasInput(t *testing.T) {
	id := &Identity{ID: "u1"}
	got := DeriveAdminState(AuthState{Identity: id, Profile: &Profile{Role: RoleUser}})
	id.ID = "changed"
	if *got.UserID != "u1" {
		t.Fatalf("derived state changed with input: %s", *got.UserID)
	}
}

func TestResolveRole(t *testing.T) {
	if !ResolveRole(&Profile{Role: RoleAdmin}).IsAdmin() {
		t.Fatalf("expected admin role")
	}
	if r := ResolveRole(nil); r.IsAdmin() || r.Name() != RoleUser {
		t.Fatalf("nil profile: got %v", r)
	}
	if r := UserRole(RoleAdmin); r.IsAdmin() {
		t.Fatalf("UserRole must never produce an admin")
	}
	var zero Role
	if zero.IsAdmin() || zero.Name() != RoleUser {
		t.Fatalf("zero role: got %v", zero)
	}
}

func TestAuthState_Authenticated(t *testing.T) {
	if (AuthState{Identity: &Identity{ID: "u"}, Loading: true}).Authenticated() {
		t.Fatalf("loading state must not count as authenticated")
	}
	if !(AuthState{Identity: &Identity{ID: "u"}}).Authenticated() {
		t.Fatalf("expected authenticated")
	}
}
