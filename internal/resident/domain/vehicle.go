package domain

type Vehicle struct {
	ID     int64
	Plate  string
	Make   string
	Model  string
	Color  string
	UserID *int64 // Owning resident (nullable)
}

type VehicleUpdate struct {
	Plate  *string
	Make   *string
	Model  *string
	Color  *string
	UserID OptionalRef
}

func (p VehicleUpdate) Apply(v *Vehicle) {
	if p.Plate != nil {
		v.Plate = *p.Plate
	}
	if p.Make != nil {
		v.Make = *p.Make
	}
	if p.Model != nil {
		v.Model = *p.Model
	}
	if p.Color != nil {
		v.Color = *p.Color
	}
	if p.UserID.Set {
		v.UserID = p.UserID.Value
	}
}
