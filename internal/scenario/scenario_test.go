package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/fitsim/memutils"
	"gopkg.in/yaml.v3"
)

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(`
blocks: [100, 500, 200, 300, 600]
processes:
  - 212
  - 417
  - 112
  - 426
strategy: bestFit
`))
	require.NoError(t, err)
	require.Equal(t, &Scenario{
		Blocks:    []int{100, 500, 200, 300, 600},
		Processes: []int{212, 417, 112, 426},
		Strategy:  "bestFit",
	}, s)
}

func TestDecodeEmpty(t *testing.T) {
	s, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, s.Blocks)
	require.Empty(t, s.Processes)
}

func TestDecodeInvalid(t *testing.T) {
	testCases := map[string]struct {
		document string
		err      error
	}{
		"negative block":   {"blocks: [100, -1]\nprocesses: [1]", memutils.ErrInvalidInput},
		"negative process": {"blocks: [100]\nprocesses: [-4]", memutils.ErrInvalidInput},
		"non-numeric":      {"blocks: [100, big]\nprocesses: [1]", memutils.ErrInvalidInput},
		"unknown field":    {"blocks: [1]\npartitions: [1]", memutils.ErrInvalidInput},
		"unknown strategy": {"blocks: [1]\nprocesses: [1]\nstrategy: buddy", memutils.ErrUnknownStrategy},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(testCase.document))
			require.Error(t, err)
			require.True(t, errors.Is(err, testCase.err), "%+v", err)
		})
	}
}

func TestDecodeKeepsYamlError(t *testing.T) {
	_, err := Decode(strings.NewReader("blocks: [100, big]\nprocesses: [1]"))
	require.True(t, errors.Is(err, memutils.ErrInvalidInput))

	var typeErr *yaml.TypeError
	require.ErrorAs(t, err, &typeErr)
	require.ErrorContains(t, err, "invalid scenario")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("blocks: [5, 10, 5]\nprocesses: [4, 8, 3]\nstrategy: nextFit\n"), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []int{5, 10, 5}, s.Blocks)
	require.Equal(t, "nextFit", s.Strategy)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
