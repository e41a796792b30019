package commands

import (
	"errors"
	"fmt"
	"strings"

	"progress/internal/pkg/guard"
)

var ErrSeedProcessesCommandIsNotConstructed = errors.New(
	"SeedProcessesCommand must be created via NewSeedProcessesCommand constructor",
)

// ProcessSeed is one registry entry of a seed file.
type ProcessSeed struct {
	Name     string
	Position int
}

// SeedProcessesCommand makes the registry contain the given processes.
type SeedProcessesCommand struct {
	seeds []ProcessSeed

	guard guard.ConstructorGuard
}

// NewSeedProcessesCommand rejects empty or repeated names and negative positions.
func NewSeedProcessesCommand(seeds []ProcessSeed) (SeedProcessesCommand, error) {
	seen := make(map[string]struct{}, len(seeds))
	cleaned := make([]ProcessSeed, 0, len(seeds))
	var problems []error

	for i, s := range seeds {
		name := strings.TrimSpace(s.Name)
		switch {
		case name == "":
			problems = append(problems, fmt.Errorf("seed %d: %w", i+1, ErrProcessNameIsRequired))
			continue
		case s.Position < 0:
			problems = append(problems, fmt.Errorf("seed %d: %w", i+1, ErrProcessPositionInvalid))
			continue
		}
		if _, dup := seen[name]; dup {
			problems = append(problems, fmt.Errorf("seed %d: process %q is listed twice", i+1, name))
			continue
		}
		seen[name] = struct{}{}
		cleaned = append(cleaned, ProcessSeed{Name: name, Position: s.Position})
	}

	if err := errors.Join(problems...); err != nil {
		return SeedProcessesCommand{}, err
	}

	return SeedProcessesCommand{seeds: cleaned, guard: guard.NewConstructorGuard()}, nil
}

func (c SeedProcessesCommand) Validate() error {
	return c.guard.Validate(ErrSeedProcessesCommandIsNotConstructed)
}

func (c SeedProcessesCommand) Seeds() []ProcessSeed {
	return append([]ProcessSeed(nil), c.seeds...)
}
