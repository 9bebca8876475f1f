package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrMoveCouriersCommandIsNotConstructed = errors.New(
	"MoveCouriersCommand must be created via NewMoveCouriersCommand constructor",
)

// MoveCouriersCommand advances every busy courier one tick toward its order's
// destination. It is issued periodically by the movement job.
type MoveCouriersCommand struct {
	guard guard.ConstructorGuard
}

// NewMoveCouriersCommand creates a command to advance courier movement.
// This is a parameterless command used by the simulation tick.
func NewMoveCouriersCommand() (MoveCouriersCommand, error) {
	return MoveCouriersCommand{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c MoveCouriersCommand) Validate() error {
	return c.guard.Validate(ErrMoveCouriersCommandIsNotConstructed)
}
