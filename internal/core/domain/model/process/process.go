package process

import (
	"errors"
	"strings"
	"unicode/utf8"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/pkg/errs"
)

const (
	// MaxNameLength mirrors the column width of process names.
	MaxNameLength = 100
)

var ErrProcessIsNotConstructed = errors.New("Process must be created via NewProcess constructor")

// Process is a single step of the production sequence.
type Process struct {
	id       kernel.UUID
	name     string
	position int

	isConstructed bool
}

// NewProcess creates a process at the given position. Position 0 is allowed;
// equal positions are legal but make the sequence fall back to identifier order.
//
// Parameters:
//   - id: identifier of the process
//   - name: display name, trimmed, 1..MaxNameLength runes
//   - position: the "order" value, never negative
//
// Returns:
//   - *Process: the new process
//   - error: the joined field errors
//
// Example:
//
//	cut, err := process.NewProcess(kernel.NewUUID(), "Cut", 1)
//	if err != nil {
//	    return err
//	}
func NewProcess(id kernel.UUID, name string, position int) (*Process, error) {
	p := &Process{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPosition(position),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProcess rebuilds a process loaded from storage.
func RestoreProcess(id kernel.UUID, name string, position int) (*Process, error) {
	return NewProcess(id, name, position)
}

func (p *Process) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProcessIsNotConstructed
	}
	return nil
}

func (p *Process) ID() kernel.UUID {
	return p.id
}

func (p *Process) Name() string {
	return p.name
}

// Position is the "order" column of the registry.
func (p *Process) Position() int {
	return p.position
}

func (p *Process) IsEqual(other *Process) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// Rename changes the display name of the process.
func (p *Process) Rename(name string) error {
	return p.setName(name)
}

// Reorder moves the process to a new position in the registry.
func (p *Process) Reorder(position int) error {
	return p.setPosition(position)
}

func (p *Process) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Process) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	p.name = name
	return nil
}

func (p *Process) setPosition(position int) error {
	if position < 0 {
		return errs.NewValueIsOutOfRangeError("order", position, 0, "unbounded")
	}
	p.position = position
	return nil
}
