package domain

const (
	DefaultOffset = 0
	DefaultLimit  = 100
)

// Page selects a window of rows in insertion order.
type Page struct {
	Offset int
	Limit  int
}

// DefaultPage is used when the caller does not ask for a specific window.
func DefaultPage() Page {
	return Page{Offset: DefaultOffset, Limit: DefaultLimit}
}

// Valid reports whether both bounds are non-negative.
func (p Page) Valid() bool {
	return p.Offset >= 0 && p.Limit >= 0
}

// OptionalRef distinguishes an omitted foreign key (Set=false) from an
// explicit null (Set=true, Value=nil) in update requests.
type OptionalRef struct {
	Set   bool
	Value *int64
}
