package commands

import (
	"strings"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

// Actor identifies who is executing a command. The identity string comes from
// the external authentication layer; administrators may manage any order,
// everyone else only their own.
type Actor struct {
	identity string
	isAdmin  bool

	guard guard.ConstructorGuard
}

// NewActor creates an actor with a non-empty identity.
func NewActor(identity string, isAdmin bool) (Actor, error) {
	if identity == "" {
		return Actor{}, errs.NewValueIsRequiredError("identity")
	}

	return Actor{
		identity: identity,
		isAdmin:  isAdmin,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was created through a constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(errs.NewValueIsRequiredError("actor"))
}

// Identity returns the acting user's identity string.
func (a Actor) Identity() string {
	return a.identity
}

// IsAdmin reports whether the actor has administrative rights.
func (a Actor) IsAdmin() bool {
	return a.isAdmin
}

// CanManage reports whether the actor may change an order owned by the
// recipient with the given email. Administrators always can; other actors
// only when their identity matches the email, case-insensitively.
func (a Actor) CanManage(recipientEmail string) bool {
	return a.isAdmin || strings.EqualFold(a.identity, recipientEmail)
}
