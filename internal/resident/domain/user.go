package domain

import "time"

type User struct {
	ID       int64
	Name     string
	Address  string
	Phone    string
	Email    string
	JoinDate time.Time // Date only; zero when unknown
	RoleID   *int64    // Foreign key to roles table (nullable)

	// Vehicles is only populated by single-user reads (Get, Login, invitation lookup).
	Vehicles []Vehicle
}

// UserUpdate carries the fields supplied by the caller; nil fields are left untouched.
type UserUpdate struct {
	Name     *string
	Address  *string
	Phone    *string
	Email    *string
	JoinDate *time.Time
	RoleID   OptionalRef
}

// Apply overwrites every supplied field on u.
func (p UserUpdate) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.JoinDate != nil {
		u.JoinDate = *p.JoinDate
	}
	if p.RoleID.Set {
		u.RoleID = p.RoleID.Value
	}
}
