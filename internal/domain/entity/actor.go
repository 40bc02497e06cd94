// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Actor is the already-authenticated identity performing an operation.
// It arrives from the transport layer; the domain performs no credential checks.
type Actor struct {
	ID    uuid.UUID
	Roles Roles
}

// IsAdmin reports whether the actor carries the platform administrator role.
func (a Actor) IsAdmin() bool {
	return a.Roles.Contains(RoleAdmin)
}

// IsOwnerOf reports whether the actor is the owner identified by ownerID.
func (a Actor) IsOwnerOf(ownerID uuid.UUID) bool {
	return a.ID == ownerID
}
