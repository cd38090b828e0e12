package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"othello/experiments/metrics"
	"othello/searcher"

	"github.com/stretchr/testify/require"
)

const setupYAML = `
name: smoke
num_games: 2
agents:
  - id: 7
    policy: greedy
    budget: 10s
  - id: 9
    policy: random
matchups:
  - [7, 9]
  - [9, 7]
`

func writeSetup(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "setup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSetup(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		setup, err := LoadSetup(writeSetup(t, setupYAML))
		require.NoError(t, err)

		require.Equal(t, "smoke", setup.Name)
		require.Equal(t, 2, setup.NumGames)
		require.Equal(t, []metrics.AgentConfig{
			{ID: 7, Policy: searcher.GreedyName, Budget: 10 * time.Second},
			{ID: 9, Policy: searcher.RandomName},
		}, setup.Agents)
		require.Equal(t, [][]int{{7, 9}, {9, 7}}, setup.Matchups)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSetup(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("unknown policy", func(t *testing.T) {
		_, err := LoadSetup(writeSetup(t, "name: x\nnum_games: 1\nagents:\n  - id: 1\n    policy: minimax\n"))
		require.ErrorContains(t, err, "agent 1")
	})

	t.Run("unknown agent in matchup", func(t *testing.T) {
		_, err := LoadSetup(writeSetup(t, "name: x\nnum_games: 1\nagents:\n  - id: 1\nmatchups:\n  - [1, 2]\n"))
		require.ErrorContains(t, err, "unknown agent 2")
	})

	t.Run("matchup needs two agents", func(t *testing.T) {
		_, err := LoadSetup(writeSetup(t, "name: x\nnum_games: 1\nagents:\n  - id: 1\nmatchups:\n  - [1]\n"))
		require.Error(t, err)
	})
}

func TestDefaultSetupIsValid(t *testing.T) {
	require.NoError(t, DefaultSetup().validate())
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestRun(t *testing.T) {
	setup, err := LoadSetup(writeSetup(t, setupYAML))
	require.NoError(t, err)

	dir, err := Run(setup, t.TempDir())
	require.NoError(t, err)

	agents := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Equal(t, []string{"7", "greedy", "10s"}, agents[1])

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 1+4, "Header plus two games per matchup")
	require.Equal(t, []string{"1", "7", "9"}, games[1][:3])
	require.Equal(t, []string{"3", "9", "7"}, games[3][:3])
	for _, row := range games[1:] {
		require.Contains(t, []string{"black", "white", "draw"}, row[3])
		require.Equal(t, "false", row[6], "Local policies always play legally")
	}

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Greater(t, len(moves), 4*2)
	require.Equal(t, []string{"1", "1", "black", "(2,3)", "1"}, moves[1][:5], "Greedy opens the first game as black")
}

func TestRunRejectsInvalidSetup(t *testing.T) {
	_, err := Run(Setup{Name: "empty"}, t.TempDir())
	require.Error(t, err)
}
