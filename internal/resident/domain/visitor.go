package domain

import "time"

type Visitor struct {
	ID        int64
	Name      string
	VisitDate time.Time // Date only; zero when unknown
	UserID    *int64    // Resident receiving the visit (nullable)
}

type VisitorUpdate struct {
	Name      *string
	VisitDate *time.Time
	UserID    OptionalRef
}

func (p VisitorUpdate) Apply(v *Visitor) {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.VisitDate != nil {
		v.VisitDate = *p.VisitDate
	}
	if p.UserID.Set {
		v.UserID = p.UserID.Value
	}
}
