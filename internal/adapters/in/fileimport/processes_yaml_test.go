package fileimport_test

import (
	"strings"
	"testing"

	"progress/internal/adapters/in/fileimport"
	"progress/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadProcessSeeds(t *testing.T) {
	input := `
processes:
  - name: Cut
    order: 10
  - name: Weld
  - name: Paint
    order: 30
`
	seeds, err := fileimport.ReadProcessSeeds(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []commands.ProcessSeed{
		{Name: "Cut", Position: 10},
		{Name: "Weld", Position: 2},
		{Name: "Paint", Position: 30},
	}, seeds)
}

func TestReadProcessSeeds_Errors(t *testing.T) {
	_, err := fileimport.ReadProcessSeeds(strings.NewReader(""))
	require.ErrorIs(t, err, fileimport.ErrEmptySeed)

	_, err = fileimport.ReadProcessSeeds(strings.NewReader("processes: []\n"))
	require.ErrorIs(t, err, fileimport.ErrEmptySeed)

	_, err = fileimport.ReadProcessSeeds(strings.NewReader("processes:\n  - name: Cut\n    rank: 1\n"))
	require.Error(t, err)

	_, err = fileimport.ReadProcessSeeds(strings.NewReader("processes:\n  - name: Cut\n    order: first\n"))
	require.Error(t, err)
}
