package fileimport

import (
	"errors"
	"fmt"
	"io"

	"progress/internal/core/application/usecases/commands"

	"gopkg.in/yaml.v3"
)

// ErrEmptySeed is returned for a seed file listing no processes.
var ErrEmptySeed = errors.New("seed file lists no processes")

type seedFile struct {
	Processes []seedEntry `yaml:"processes"`
}

type seedEntry struct {
	Name  string `yaml:"name"`
	Order *int   `yaml:"order"`
}

// ReadProcessSeeds decodes a registry seed:
//
//	processes:
//	  - name: Cut
//	    order: 10
//	  - name: Weld
//
// An entry without an order is placed at its 1-based index in the list.
// Unknown keys are rejected.
func ReadProcessSeeds(r io.Reader) ([]commands.ProcessSeed, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file seedFile
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySeed
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	if len(file.Processes) == 0 {
		return nil, ErrEmptySeed
	}

	seeds := make([]commands.ProcessSeed, 0, len(file.Processes))
	for i, entry := range file.Processes {
		position := i + 1
		if entry.Order != nil {
			position = *entry.Order
		}
		seeds = append(seeds, commands.ProcessSeed{Name: entry.Name, Position: position})
	}

	return seeds, nil
}
