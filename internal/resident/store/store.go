package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
)

var (
	ErrNotFound = errors.New("store: not found")

	// ErrReference is returned when a write names a foreign key whose target
	// row does not exist.
	ErrReference = errors.New("store: referenced row does not exist")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Entity access goes through the sub-repositories so a Tx can
// hand out the same repositories bound to the transaction.
type Store interface {
	Roles() Roles
	Users() Users
	Visitors() Visitors
	Vehicles() Vehicles
	Invitations() Invitations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Rollback is
	// deferred so panics and early returns release the connection too.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Roles interface {
	// CreateRole inserts a role and returns it with the assigned id.
	CreateRole(ctx context.Context, r domain.Role) (domain.Role, error)

	GetRoleByID(ctx context.Context, id int64) (domain.Role, error)

	// ListRoles returns a page of roles in insertion order.
	ListRoles(ctx context.Context, page domain.Page) ([]domain.Role, error)

	// UpdateRole replaces every column of the stored role.
	UpdateRole(ctx context.Context, r domain.Role) error

	DeleteRole(ctx context.Context, id int64) error
}

type Users interface {
	// CreateUser inserts a user and returns it with the assigned id.
	// Fails with ErrReference when RoleID names a missing role.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// GetUserByID returns the user row only; Vehicles are left nil.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail returns the lowest-id user with an exactly matching email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	ListUsers(ctx context.Context, page domain.Page) ([]domain.User, error)

	UpdateUser(ctx context.Context, u domain.User) error

	// DeleteUser removes the row; dependents keep their rows with the
	// reference set to NULL (per schema).
	DeleteUser(ctx context.Context, id int64) error
}

type Visitors interface {
	CreateVisitor(ctx context.Context, v domain.Visitor) (domain.Visitor, error)
	GetVisitorByID(ctx context.Context, id int64) (domain.Visitor, error)
	ListVisitors(ctx context.Context, page domain.Page) ([]domain.Visitor, error)
	UpdateVisitor(ctx context.Context, v domain.Visitor) error
	DeleteVisitor(ctx context.Context, id int64) error
}

type Vehicles interface {
	CreateVehicle(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)
	GetVehicleByID(ctx context.Context, id int64) (domain.Vehicle, error)
	ListVehicles(ctx context.Context, page domain.Page) ([]domain.Vehicle, error)

	// ListVehiclesByUser returns every vehicle owned by the user, in insertion order.
	ListVehiclesByUser(ctx context.Context, userID int64) ([]domain.Vehicle, error)

	UpdateVehicle(ctx context.Context, v domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id int64) error
}

type Invitations interface {
	// CreateInvitation writes a new invitation; the code (ID) is supplied by the caller.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	GetInvitationByID(ctx context.Context, code string) (domain.Invitation, error)

	// MarkInvitationRedeemed flips canjeada to true only if it is still false.
	// It reports whether this call performed the transition, so concurrent
	// callers racing on the same code see exactly one true. The winner also
	// gets the updated row; otherwise the invitation is zero.
	MarkInvitationRedeemed(ctx context.Context, code string) (domain.Invitation, bool, error)
}
