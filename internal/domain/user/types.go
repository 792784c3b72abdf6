package user

import (
	"session-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole      = errs.Kind("invalid role", errs.ErrInvalidArgument)
	ErrInvalidPrincipal = errs.Kind("principal has no user id", errs.ErrInvalidArgument)
)

type Role string

const (
	RoleClient       Role = "client"
	RolePractitioner Role = "practitioner"
	RoleAdmin        Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RolePractitioner, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Principal is the authenticated caller extracted from a verified token.
type Principal struct {
	userID uuid.UUID
	role   Role
}

func NewPrincipal(userID uuid.UUID, role Role) (Principal, error) {
	if userID == uuid.Nil {
		return Principal{}, ErrInvalidPrincipal
	}
	if !role.IsValid() {
		return Principal{}, ErrInvalidRole
	}
	return Principal{userID: userID, role: role}, nil
}

func (p Principal) UserID() uuid.UUID { return p.userID }
func (p Principal) Role() Role        { return p.role }
func (p Principal) IsAdmin() bool     { return p.role == RoleAdmin }

// CanActFor reports whether the caller may read or mutate data owned by ownerID.
func (p Principal) CanActFor(ownerID uuid.UUID) bool {
	return p.IsAdmin() || p.userID == ownerID
}
