package http

import (
	"time"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
	"github.com/aussiebroadwan/iresident/pkg/residentsdk"
)

func toRole(r domain.Role) residentsdk.Role {
	return residentsdk.Role{ID: r.ID, Name: r.Name}
}

// toUser leaves Vehicles nil (and so omitted) unless the domain user carries them.
func toUser(u domain.User) residentsdk.User {
	out := residentsdk.User{
		ID:       u.ID,
		Name:     u.Name,
		Address:  u.Address,
		Phone:    u.Phone,
		Email:    u.Email,
		JoinDate: residentsdk.Date{Time: u.JoinDate},
		RoleID:   u.RoleID,
	}
	if u.Vehicles != nil {
		out.Vehicles = mapSlice(u.Vehicles, toVehicle)
	}
	return out
}

func toVisitor(v domain.Visitor) residentsdk.Visitor {
	return residentsdk.Visitor{
		ID:        v.ID,
		Name:      v.Name,
		VisitDate: residentsdk.Date{Time: v.VisitDate},
		UserID:    v.UserID,
	}
}

func toVehicle(v domain.Vehicle) residentsdk.Vehicle {
	return residentsdk.Vehicle{
		ID:     v.ID,
		Plate:  v.Plate,
		Make:   v.Make,
		Model:  v.Model,
		Color:  v.Color,
		UserID: v.UserID,
	}
}

func toInvitation(inv domain.Invitation) residentsdk.Invitation {
	out := residentsdk.Invitation{
		Code:      inv.ID,
		UserID:    inv.UserID,
		VisitorID: inv.VisitorID,
		InvitedAt: residentsdk.Timestamp{Time: inv.InvitedAt},
		Redeemed:  inv.Redeemed,
	}
	if inv.User != nil {
		u := toUser(*inv.User)
		out.User = &u
	}
	return out
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func datePtr(d *residentsdk.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func optionalRef(n residentsdk.NullableID) domain.OptionalRef {
	return domain.OptionalRef{Set: n.Set, Value: n.Value}
}
