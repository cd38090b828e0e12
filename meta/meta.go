// meta/meta.go
package meta

import "time"

// MaxTurns bounds a game; 60 placements plus passes always fit.
const MaxTurns = 200

// NumGames defines the number of games per experiment matchup.
const NumGames = 10

// TimeBudget defines the default total thinking time per player and game.
const TimeBudget = 30 * time.Second

// Addr defines the default listen address of the agent server.
const Addr = ":8080"

// SessionTimeout defines how long the agent server keeps an idle game.
const SessionTimeout = 10 * time.Minute

// OutDir defines where experiment records are written.
const OutDir = "experiments"
