package process

import (
	"slices"
	"strings"

	"progress/internal/core/domain/model/kernel"
)

// Sequence is the registry sorted by position. It is immutable once built.
//
// Example:
//
//	seq := process.NewSequence([]*process.Process{paint, cut, weld})
//	first, _ := seq.First()          // cut
//	prev, _ := seq.Predecessor(weld.ID()) // cut
//	idx, ok := seq.IndexOf(paint.ID())    // 2, true
type Sequence struct {
	processes []*Process
}

// NewSequence sorts a copy of processes by position, then by identifier.
// Nil entries are dropped.
func NewSequence(processes []*Process) Sequence {
	sorted := make([]*Process, 0, len(processes))
	for _, p := range processes {
		if p != nil {
			sorted = append(sorted, p)
		}
	}

	slices.SortStableFunc(sorted, func(a, b *Process) int {
		if a.position != b.position {
			return a.position - b.position
		}
		return strings.Compare(a.id.String(), b.id.String())
	})

	return Sequence{processes: sorted}
}

func (s Sequence) Len() int {
	return len(s.processes)
}

func (s Sequence) IsEmpty() bool {
	return len(s.processes) == 0
}

// At returns the process at a zero based index.
func (s Sequence) At(i int) (*Process, bool) {
	if i < 0 || i >= len(s.processes) {
		return nil, false
	}
	return s.processes[i], true
}

// IndexOf returns the zero based position of the process with the given id.
// ok is false for ids that are not part of the registry (deleted processes).
func (s Sequence) IndexOf(id kernel.UUID) (int, bool) {
	for i, p := range s.processes {
		if p.id.IsEqual(id) {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether id is a registered process.
func (s Sequence) Contains(id kernel.UUID) bool {
	_, ok := s.IndexOf(id)
	return ok
}

func (s Sequence) First() (*Process, bool) {
	return s.At(0)
}

// Predecessor returns the process immediately before id. ok is false when id is
// the first process or is not registered.
//
// Parameters:
//   - id: the process about to be started
//
// Returns:
//   - *Process: the process that has to be completed first
//   - bool: false when no predecessor gate applies
//
// Example:
//
//	if pred, ok := seq.Predecessor(weld.ID()); ok {
//	    fmt.Println(pred.Name()) // Cut
//	}
func (s Sequence) Predecessor(id kernel.UUID) (*Process, bool) {
	idx, found := s.IndexOf(id)
	if !found {
		return nil, false
	}
	return s.At(idx - 1)
}

// Next returns the process immediately after id.
func (s Sequence) Next(id kernel.UUID) (*Process, bool) {
	idx, found := s.IndexOf(id)
	if !found {
		return nil, false
	}
	return s.At(idx + 1)
}

// Processes returns a copy of the ordered processes.
func (s Sequence) Processes() []*Process {
	return slices.Clone(s.processes)
}

// Find returns the registered process with the given id.
func (s Sequence) Find(id kernel.UUID) (*Process, bool) {
	idx, ok := s.IndexOf(id)
	if !ok {
		return nil, false
	}
	return s.processes[idx], true
}
