package experiments

import (
	"os"

	"othello/agent"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Setup describes an experiment: the agents taking part and which pairs of
// them play each other.
type Setup struct {
	Name     string                `yaml:"name"`
	NumGames int                   `yaml:"num_games"` // Per matchup
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups [][]int               `yaml:"matchups"` // Pairs of agent IDs, black first
}

// DefaultSetup pits every policy against the greedy baseline, both ways round.
func DefaultSetup() Setup {
	return Setup{
		Name:     "policies",
		NumGames: meta.NumGames,
		Agents: []metrics.AgentConfig{
			{ID: 0, Policy: searcher.GreedyName},
			{ID: 1, Policy: searcher.LookaheadName},
			{ID: 2, Policy: searcher.RandomName},
			{ID: 3, Policy: searcher.MostFlipsName},
			{ID: 4, Policy: searcher.TierFlipsName},
		},
		Matchups: [][]int{
			{0, 1}, {1, 0},
			{0, 2}, {2, 0},
			{0, 3}, {3, 0},
			{0, 4}, {4, 0},
		},
	}
}

// LoadSetup reads a YAML setup file.
func LoadSetup(path string) (Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Setup{}, errors.Wrap(err, "failed to read setup")
	}
	var setup Setup
	err = yaml.Unmarshal(data, &setup)
	if err != nil {
		return Setup{}, errors.Wrapf(err, "failed to parse setup %s", path)
	}
	return setup, setup.validate()
}

func (s Setup) validate() error {
	if s.Name == "" {
		return errors.New("setup needs a name")
	}
	if s.NumGames <= 0 {
		return errors.Errorf("setup %s needs a positive num_games", s.Name)
	}
	ids := make(map[int]bool, len(s.Agents))
	for _, config := range s.Agents {
		if _, err := searcher.PolicyByName(config.Policy); err != nil {
			return errors.Wrapf(err, "agent %d", config.ID)
		}
		ids[config.ID] = true
	}
	for i, matchup := range s.Matchups {
		if len(matchup) != 2 {
			return errors.Errorf("matchup %d must name two agents", i+1)
		}
		for _, id := range matchup {
			if !ids[id] {
				return errors.Errorf("matchup %d names unknown agent %d", i+1, id)
			}
		}
	}
	return nil
}

// Run plays every matchup of the setup and writes the records under outDir.
// It returns the directory the records were written to.
func Run(setup Setup, outDir string) (string, error) {
	err := setup.validate()
	if err != nil {
		return "", err
	}
	configs := make(map[int]metrics.AgentConfig, len(setup.Agents))
	for _, config := range setup.Agents {
		configs[config.ID] = config
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", setup.Name)

	for mi, matchup := range setup.Matchups {
		black := configs[matchup[0]]
		white := configs[matchup[1]]

		log.Info().Msgf("starting matchup %d of %d between black=%+v and white=%+v...", mi+1, len(setup.Matchups), black, white)

		for i := 0; i < setup.NumGames; i++ {
			count++
			gameMetric, moveMetrics, err := runGame(black, white, count)
			if err != nil {
				return "", errors.Wrapf(err, "matchup %d game %d", mi+1, i+1)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(setup.Matchups), i+1, gameMetric.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", setup.Name)

	writer, err := metrics.NewWriter(outDir, setup.Name)
	if err != nil {
		return "", errors.Wrap(err, "failed to create experiment writer")
	}
	err = writer.WriteAgentConfigs(setup.Agents)
	if err != nil {
		return "", errors.Wrap(err, "failed to store agent configs")
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", errors.Wrap(err, "failed to write game records")
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", errors.Wrap(err, "failed to write move records")
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame plays a single game between two configured agents.
func runGame(black, white metrics.AgentConfig, gameID int) (metrics.GameMetric, []metrics.MoveMetric, error) {
	blackAgent, err := createAgent(game.Black, black, gameID)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	whiteAgent, err := createAgent(game.White, white, gameID)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	options := []engine.Option{engine.WithMetrics(metrics.NewCollector())}
	// Budgets are per engine, so the stricter of the two applies to both
	budget := black.Budget
	if white.Budget > 0 && (budget == 0 || white.Budget < budget) {
		budget = white.Budget
	}
	if budget > 0 {
		options = append(options, engine.WithTimeBudget(budget))
	}

	e := engine.NewLocalEngine(
		engine.AgentAdapter{InternalAgent: blackAgent},
		engine.AgentAdapter{InternalAgent: whiteAgent},
		options...,
	)
	result, err := e.Run()
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	gameMetric, moveMetrics := e.Metrics(result)
	return gameMetric, moveMetrics, nil
}

func createAgent(side game.Side, config metrics.AgentConfig, gameID int) (*agent.Agent, error) {
	var policy searcher.Policy
	if config.Policy == searcher.RandomName {
		// A fresh seed per game and side keeps random games distinct but reproducible
		policy = searcher.NewRandom(uint64(2*gameID + int(side)))
	} else {
		var err error
		policy, err = searcher.PolicyByName(config.Policy)
		if err != nil {
			return nil, err
		}
	}
	return agent.New(side, agent.WithPolicy(policy)), nil
}
