package residentsdk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ID returns a pointer to id, for optional reference fields.
func ID(id int64) *int64 { return &id }

// String returns a pointer to s, for partial update requests.
func String(s string) *string { return &s }

// ============================================================================
// Scalar wire types
// ============================================================================

// Date is a calendar date encoded as "YYYY-MM-DD". The zero value encodes
// as null.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

// UnmarshalJSON accepts null, "YYYY-MM-DD" or a full RFC 3339 timestamp
// (the time of day is dropped).
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	y, m, dd := t.Date()
	d.Time = time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
	return nil
}

// Timestamp is an instant encoded as RFC 3339. Inputs without a zone
// ("2006-01-02T15:04:05") are read as UTC.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(time.RFC3339Nano) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", time.DateOnly} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q, want RFC 3339", s)
}

// NullableID is an optional foreign key in update requests. An absent key
// leaves the stored value alone, null clears it, a number replaces it.
type NullableID struct {
	Set   bool
	Value *int64
}

// SetID builds a NullableID that replaces the reference with id.
func SetID(id int64) NullableID { return NullableID{Set: true, Value: &id} }

// ClearID builds a NullableID that clears the reference.
func ClearID() NullableID { return NullableID{Set: true} }

// IsZero lets `omitzero` drop unset values when encoding.
func (n NullableID) IsZero() bool { return !n.Set }

func (n NullableID) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(*n.Value, 10)), nil
}

func (n *NullableID) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(b, []byte("null")) {
		n.Value = nil
		return nil
	}
	var id int64
	if err := json.Unmarshal(b, &id); err != nil {
		return fmt.Errorf("id must be an integer or null: %w", err)
	}
	n.Value = &id
	return nil
}

// ============================================================================
// Resources
// ============================================================================

type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

type User struct {
	ID       int64     `json:"id"`
	Name     string    `json:"nombre"`
	Address  string    `json:"direccion"`
	Phone    string    `json:"telefono"`
	Email    string    `json:"email"`
	JoinDate Date      `json:"fecha_ingreso"`
	RoleID   *int64    `json:"rol_id"`
	Vehicles []Vehicle `json:"vehiculos,omitzero"`
}

type Visitor struct {
	ID        int64  `json:"id"`
	Name      string `json:"nombre"`
	VisitDate Date   `json:"fecha_visita"`
	UserID    *int64 `json:"usuario_id"`
}

type Vehicle struct {
	ID     int64  `json:"id"`
	Plate  string `json:"placa"`
	Make   string `json:"marca"`
	Model  string `json:"modelo"`
	Color  string `json:"color"`
	UserID *int64 `json:"usuario_id"`
}

type Invitation struct {
	Code      string    `json:"id"`
	UserID    *int64    `json:"usuario_id"`
	VisitorID *int64    `json:"visitante_id"`
	InvitedAt Timestamp `json:"fecha_invitacion"`
	Redeemed  bool      `json:"canjeada"`
	User      *User     `json:"usuario,omitempty"`
}

// ============================================================================
// Requests
// ============================================================================

// RoleRequest creates or updates a role. Nil fields are left untouched on update.
type RoleRequest struct {
	Name *string `json:"nombre,omitempty"`
}

// UserRequest creates or updates a user. Nil fields are left untouched on
// update and take their zero value on create.
type UserRequest struct {
	Name     *string    `json:"nombre,omitempty"`
	Address  *string    `json:"direccion,omitempty"`
	Phone    *string    `json:"telefono,omitempty"`
	Email    *string    `json:"email,omitempty"`
	JoinDate *Date      `json:"fecha_ingreso,omitempty"`
	RoleID   NullableID `json:"rol_id,omitzero"`
}

type VisitorRequest struct {
	Name      *string    `json:"nombre,omitempty"`
	VisitDate *Date      `json:"fecha_visita,omitempty"`
	UserID    NullableID `json:"usuario_id,omitzero"`
}

type VehicleRequest struct {
	Plate  *string    `json:"placa,omitempty"`
	Make   *string    `json:"marca,omitempty"`
	Model  *string    `json:"modelo,omitempty"`
	Color  *string    `json:"color,omitempty"`
	UserID NullableID `json:"usuario_id,omitzero"`
}

type LoginRequest struct {
	Email string `json:"email"`
}

type IssueInvitationRequest struct {
	UserID    *int64     `json:"usuario_id"`
	VisitorID *int64     `json:"visitante_id"`
	InvitedAt *Timestamp `json:"fecha_invitacion,omitempty"`
}

type IssueInvitationResponse struct {
	Code string `json:"code"`
}

type RedeemInvitationRequest struct {
	Code string `json:"code"`
}

// ListOptions selects a window of a collection. Nil fields use the server
// defaults (offset 0, limit 100).
type ListOptions struct {
	Offset *int
	Limit  *int
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
