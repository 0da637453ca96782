package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles assigned by the family/membership service. This backend only reads
// them from the caller's token — membership management lives elsewhere.
const (
	RoleViewer = "viewer"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// Session is the explicit per-request rendition of the identity and
// family/permission collaborators. It is constructed by the transport layer
// from the caller's token and passed to every operation — never held as
// ambient state, so switching families is just a new session.
type Session struct {
	UserID   uuid.UUID
	FamilyID uuid.UUID
	Role     string
}

// CanEdit reports whether the caller may mutate family data.
func (s Session) CanEdit() bool { return s.Role == RoleEditor || s.Role == RoleAdmin }

// IsAdmin reports whether the caller has administrative rights.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// Shared precondition errors. Every mutating operation validates these
// before touching the store, so a failure leaves no partial state.
var (
	ErrNoFamily         = errors.New("no active family")
	ErrNoEditPermission = errors.New("insufficient permissions to edit")
	ErrNoActiveList     = errors.New("no active shopping list")
)

const timeFmt = "2006-01-02T15:04:05Z"

// requireFamily validates that the session is bound to a family.
func requireFamily(sess Session) error {
	if sess.FamilyID == uuid.Nil {
		return ErrNoFamily
	}
	return nil
}

// requireEditor validates family binding and edit permission.
func requireEditor(sess Session) error {
	if err := requireFamily(sess); err != nil {
		return err
	}
	if !sess.CanEdit() {
		return ErrNoEditPermission
	}
	return nil
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}
