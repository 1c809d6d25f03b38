package domain

type Role struct {
	ID   int64
	Name string
}

type RoleUpdate struct {
	Name *string
}

func (p RoleUpdate) Apply(r *Role) {
	if p.Name != nil {
		r.Name = *p.Name
	}
}
