package main

import (
	"flag"
	"os"
	"time"

	"othello/agent"
	"othello/client"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/meta"
	"othello/searcher"
	"othello/server"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "One of experiment, play or serve")
	setupPath := flag.String("setup", "", "YAML experiment setup, the built-in setup if empty")
	outDir := flag.String("out", meta.OutDir, "Directory for experiment records")
	black := flag.String("black", searcher.DefaultPolicy, "Policy of the black player")
	white := flag.String("white", searcher.LookaheadName, "Policy of the white player")
	budget := flag.Duration("budget", meta.TimeBudget, "Total thinking time per player and game, 0 for unlimited")
	addr := flag.String("addr", meta.Addr, "Listen address of the agent server")
	remote := flag.String("remote", "", "URL of an agent server to play through, local agents if empty")
	debug := flag.Bool("debug", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch *mode {
	case "experiment":
		err = runExperiment(*setupPath, *outDir)
	case "play":
		err = play(*black, *white, *budget, *remote)
	case "serve":
		err = server.Start(*addr)
	default:
		err = errors.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func runExperiment(setupPath, outDir string) error {
	setup := experiments.DefaultSetup()
	if setupPath != "" {
		var err error
		setup, err = experiments.LoadSetup(setupPath)
		if err != nil {
			return err
		}
	}
	_, err := experiments.Run(setup, outDir)
	return err
}

func play(blackPolicy, whitePolicy string, budget time.Duration, remote string) error {
	blackPlayer, err := newPlayer(game.Black, blackPolicy, remote)
	if err != nil {
		return err
	}
	whitePlayer, err := newPlayer(game.White, whitePolicy, remote)
	if err != nil {
		return err
	}
	for _, p := range []engine.Player{blackPlayer, whitePlayer} {
		if rp, ok := p.(*client.RemotePlayer); ok {
			defer rp.Close()
		}
	}

	e := engine.NewLocalEngine(blackPlayer, whitePlayer, engine.WithTimeBudget(budget))
	result, err := e.Run()
	if err != nil {
		return err
	}

	log.Info().Msgf("final position:\n%s", result.Board)
	event := log.Info().
		Str("winner", result.WinnerName()).
		Int("black", result.Black).
		Int("white", result.White).
		Int("turns", result.Turns)
	if result.Forfeit {
		event = event.Str("forfeit", result.Reason)
	}
	event.Msg("game over")
	return nil
}

func newPlayer(side game.Side, policyName, remote string) (engine.Player, error) {
	if remote != "" {
		return client.NewRemotePlayer(remote, side, policyName)
	}
	policy, err := searcher.PolicyByName(policyName)
	if err != nil {
		return nil, err
	}
	return engine.AgentAdapter{InternalAgent: agent.New(side, agent.WithPolicy(policy))}, nil
}
