package kernel

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Role is the capacity in which a party acts on an order.
type Role int

const (
	RoleUnknown Role = iota
	RoleClient
	RoleBusiness
	RoleDriver
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleClient:   "client",
	RoleBusiness: "business",
	RoleDriver:   "driver",
	RoleAdmin:    "admin",
}

// ParseRole maps the wire name of a role ("client", "business", ...) to a Role.
func ParseRole(s string) (Role, error) {
	for r, name := range roleNames {
		if name == s {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// String returns the wire name of the role.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Validate reports an error for unknown roles.
func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ErrActorIsNotConstructed is returned when validating a zero-value Actor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("actor must be created via NewActor")

// Actor is the caller of an operation as asserted by the identity provider. For
// RoleBusiness the ID is the business ID; for the other roles it is the user's
// own ID. Ownership against an order is checked by the order itself.
type Actor struct {
	role  Role
	id    UUID
	guard guard.ConstructorGuard
}

// NewActor builds the identity behind a request.
//
// Parameters:
//   - role: who the caller acts as
//   - id: the client, business, driver or admin identifier; must not be the zero UUID
//
// Returns:
//   - Actor: the validated actor
//   - error: the joined validation errors if role or id is invalid
//
// Example:
//
//	actor, err := kernel.NewActor(kernel.RoleDriver, driverID)
func NewActor(role Role, id UUID) (Actor, error) {
	if err := errors.Join(role.Validate(), id.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{role: role, id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate checks that the Actor was built by NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// Role returns who the actor acts as.
func (a Actor) Role() Role {
	return a.role
}

// ID returns the identifier of the client, business, driver or admin behind the actor.
func (a Actor) ID() UUID {
	return a.id
}

// String formats the actor as role:id for logs.
func (a Actor) String() string {
	return a.role.String() + ":" + a.id.String()
}
