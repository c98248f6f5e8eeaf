// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role defines what a portal user is allowed to do.
type Role string

const (
	// RoleAdmin manages users, approves and returns bookings, exports reports.
	RoleAdmin Role = "admin"

	// RoleTeacher books classrooms and equipment for themselves.
	RoleTeacher Role = "teacher"
)

var roleLabels = map[Role]string{
	RoleAdmin:   "Administrator",
	RoleTeacher: "Teacher",
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Label returns the display label of the role.
func (r Role) Label() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return string(r)
}

// User represents a portal account as returned by the remote API.
//
// Password is only ever populated on the way to the server (login, addUser).
// It must be cleared before a user value is cached or persisted locally.
type User struct {
	// ID is the backend-assigned identifier.
	ID int64 `json:"id"`

	// Name is the display name. Bookings reference teachers by this value.
	Name string `json:"name"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Role is either admin or teacher.
	Role Role `json:"role"`

	// Password is the login secret. Never retained after authentication.
	Password string `json:"password,omitempty"`
}

// IsAdmin reports whether the user has the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// WithoutSecret returns a copy of u with the password cleared.
func (u User) WithoutSecret() User {
	u.Password = ""
	return u
}

// NewUser is the addUser payload.
type NewUser struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Password string `json:"password"`
}

// UserUpdate is the updateUser payload. Only name and role are editable.
type UserUpdate struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
