package domain

import "time"

// Invitation is a one-time visitor pass. ID is the opaque code handed to the
// visitor; Redeemed only ever moves from false to true.
type Invitation struct {
	ID        string
	UserID    *int64
	VisitorID *int64
	InvitedAt time.Time
	Redeemed  bool

	// User is resolved on lookup so the redeeming party can see who invited them.
	User *User
}
