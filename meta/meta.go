// meta/meta.go
package meta

// MaxDepth defines the deepest iterative deepening search for the engine's move.
const MaxDepth = 10

// Games defines the number of self-play games per experiment matchup.
const Games = 10

// Workers defines the number of self-play games played concurrently.
const Workers = 4

// RandomOpenings defines the number of random moves opening each self-play game.
const RandomOpenings = 2

// MaxRandomOpenings keeps random openings short of any possible win.
const MaxRandomOpenings = 4
