package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUser_IsAdmin(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected bool
	}{
		{
			name:     "admin role",
			role:     RoleAdmin,
			expected: true,
		},
		{
			name:     "user role",
			role:     RoleUser,
			expected: false,
		},
		{
			name:     "empty role",
			role:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := User{Role: tt.role}
			if got := user.IsAdmin(); got != tt.expected {
				t.Errorf("IsAdmin() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRole_Valid(t *testing.T) {
	tests := []struct {
		role     Role
		expected bool
	}{
		{RoleAdmin, true},
		{RoleUser, true},
		{"", false},
		{"Admin", false},
		{"superuser", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := tt.role.Valid(); got != tt.expected {
				t.Errorf("Role(%q).Valid() = %v, expected %v", tt.role, got, tt.expected)
			}
		})
	}
}

func TestUser_BeforeCreateAssignsID(t *testing.T) {
	u := &User{}
	if err := u.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate() error = %v", err)
	}
	if len(u.ID) != 36 {
		t.Errorf("ID = %q, want a UUID", u.ID)
	}

	fixed := &User{ID: "keep-me"}
	_ = fixed.BeforeCreate(nil)
	if fixed.ID != "keep-me" {
		t.Errorf("BeforeCreate overwrote an existing ID: %q", fixed.ID)
	}
}

func TestUser_JSONHidesPasswordHash(t *testing.T) {
	u := User{ID: "1", Email: "a@x.com", PasswordHash: "$2a$10$secret", Role: RoleUser}
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if strings.Contains(string(data), "secret") {
		t.Errorf("password hash leaked into JSON: %s", data)
	}

	pub := u.Public()
	if pub.ID != u.ID || pub.Email != u.Email || pub.Role != u.Role {
		t.Errorf("Public() = %+v", pub)
	}
}
