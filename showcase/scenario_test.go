package showcase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScenarios(t *testing.T) {
	t.Parallel()

	scenarios := DefaultScenarios()
	require.NotEmpty(t, scenarios)

	byName := map[string]Scenario{}
	for _, sc := range scenarios {
		byName[sc.Name] = sc
	}

	sample, ok := byName["sort-sample"]
	require.True(t, ok)
	assert.Equal(t, KindSort, sample.Kind)
	assert.Equal(t, []int{2, 1, 9, 6, 22, -1}, sample.Input)
	assert.Equal(t, []int{-1, 1, 2, 6, 9, 22}, sample.Sorted)

	absent, ok := byName["search-absent"]
	require.True(t, ok)
	require.NotNil(t, absent.Target)
	require.NotNil(t, absent.Found)
	assert.Equal(t, 5, *absent.Target)
	assert.False(t, *absent.Found)
}

func TestParseScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr error
		check   func(t *testing.T, scenarios []Scenario)
	}{
		{
			name: "unnamed scenarios get positional names",
			yaml: `
scenarios:
  - kind: sort
    input: [3, 1]
  - kind: search
    input: [1, 3]
    target: 3
`,
			check: func(t *testing.T, scenarios []Scenario) {
				t.Helper()

				require.Len(t, scenarios, 2)
				assert.Equal(t, "scenario-1", scenarios[0].Name)
				assert.Equal(t, "scenario-2", scenarios[1].Name)
				assert.Nil(t, scenarios[0].Sorted)
				assert.Nil(t, scenarios[1].Found)
			},
		},
		{
			name: "empty document",
			yaml: ``,
			check: func(t *testing.T, scenarios []Scenario) {
				t.Helper()

				assert.Empty(t, scenarios)
			},
		},
		{
			name:    "unknown kind",
			yaml:    "scenarios:\n  - name: x\n    kind: shuffle\n    input: [1]\n",
			wantErr: ErrUnknownKind,
		},
		{
			name:    "search without target",
			yaml:    "scenarios:\n  - name: x\n    kind: search\n    input: [1]\n",
			wantErr: ErrMissingTarget,
		},
		{
			name:    "unsorted search input",
			yaml:    "scenarios:\n  - name: x\n    kind: search\n    input: [3, 1]\n    target: 1\n",
			wantErr: ErrUnsortedSearchInput,
		},
		{
			name:    "target on a sort",
			yaml:    "scenarios:\n  - name: x\n    kind: sort\n    input: [3, 1]\n    target: 1\n",
			wantErr: ErrUnexpectedField,
		},
		{
			name:    "sorted on a search",
			yaml:    "scenarios:\n  - name: x\n    kind: search\n    input: [1]\n    target: 1\n    sorted: [1]\n",
			wantErr: ErrUnexpectedField,
		},
		{
			name:    "duplicate names",
			yaml:    "scenarios:\n  - name: x\n    kind: sort\n    input: [1]\n  - name: x\n    kind: sort\n    input: [2]\n",
			wantErr: ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			scenarios, err := ParseScenarios([]byte(tt.yaml))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			tt.check(t, scenarios)
		})
	}
}

func TestParseScenariosBadYAML(t *testing.T) {
	t.Parallel()

	_, err := ParseScenarios([]byte("scenarios: [this is: not valid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding scenarios")
}

func TestLoadScenarios(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios:\n  - name: one\n    kind: sort\n    input: [2, 1]\n"), 0o600))

	scenarios, err := LoadScenarios(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)
	assert.Equal(t, "one", scenarios[0].Name)

	_, err = LoadScenarios(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCustomScenario(t *testing.T) {
	t.Parallel()

	input := []int{9, 2, 5}

	sc := CustomScenario(KindSearch, input, 5)
	require.NoError(t, sc.Validate())
	assert.Equal(t, []int{2, 5, 9}, sc.Input)
	assert.Equal(t, []int{9, 2, 5}, input)
	require.NotNil(t, sc.Target)
	assert.Equal(t, 5, *sc.Target)

	sc = CustomScenario(KindSort, input, 5)
	require.NoError(t, sc.Validate())
	assert.Equal(t, []int{9, 2, 5}, sc.Input)
	assert.Nil(t, sc.Target)
}
