package game

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/warsim/internal/deck"
)

// DefaultTurnLimit is the number of draw steps after which a game is
// declared non-terminating.
const DefaultTurnLimit = 50000

var (
	ErrInvalidPlayerCount = errors.New("invalid player count")
	ErrInvalidTurnLimit   = errors.New("invalid turn limit")
	ErrNilRand            = errors.New("random source is required")
)

var discardLogger = log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})

// Game is a single game of War. It is not safe for concurrent use; run
// separate games on separate goroutines instead.
type Game struct {
	players   []*Player
	turns     int
	turnLimit int
	rounds    int

	state  State
	reason AbandonReason
	winner int

	wars        int
	maxWarDepth int

	observer Observer
	logger   *log.Logger
}

// resolution is how a compete chain ended.
type resolution struct {
	winner *Player // nil when the chain was aborted
	pot    int
	depth  int
}

// New shuffles a standard deck with rng and deals it round-robin to players
// seats numbered from 1. Every player must receive at least one card.
func New(rng *rand.Rand, players int, opts ...GameOption) (*Game, error) {
	cfg := gameConfig{turnLimit: DefaultTurnLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	var d *deck.Deck
	if cfg.cards != nil {
		d = deck.FromCards(cfg.cards)
	} else {
		if rng == nil {
			return nil, ErrNilRand
		}
		d = deck.New(rng)
	}

	if players < 2 || players > d.Len() {
		return nil, fmt.Errorf("%w: %d players for %d cards", ErrInvalidPlayerCount, players, d.Len())
	}

	return fromHands(d.Deal(players), cfg)
}

func fromHands(hands [][]deck.Card, cfg gameConfig) (*Game, error) {
	if cfg.turnLimit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTurnLimit, cfg.turnLimit)
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger
	}

	g := &Game{
		players:   make([]*Player, len(hands)),
		turnLimit: cfg.turnLimit,
		observer:  cfg.observer,
		logger:    cfg.logger,
	}
	for i, hand := range hands {
		g.players[i] = NewPlayer(i+1, hand)
	}
	return g, nil
}

// Play runs rounds until the game is won or abandoned.
func (g *Game) Play() Outcome {
	for g.state == InProgress {
		g.PlayRound()
	}
	return g.Outcome()
}

// PlayRound plays one top-level round and removes players left without
// cards. It is a no-op once the game is over.
func (g *Game) PlayRound() State {
	if g.state != InProgress {
		return g.state
	}
	g.rounds++

	res := g.compete(g.players, nil, 0)
	if g.state == InProgress {
		g.removeLosers()
	}

	if g.observer != nil {
		rr := RoundResult{
			Round:    g.rounds,
			Turns:    g.turns,
			Pot:      res.pot,
			WarDepth: res.depth,
			Totals:   g.totals(),
		}
		if res.winner != nil {
			rr.Winner = res.winner.id
		}
		g.observer.RoundComplete(rr)
	}
	return g.state
}

// compete draws a card from every player in group and hands the pot to the
// single highest card. Ties escalate into a war among the tied players.
func (g *Game) compete(group []*Player, pot Pot, depth int) resolution {
	if g.state != InProgress {
		return resolution{}
	}

	fighters, ok := g.drawStep(group)
	if !ok {
		return resolution{}
	}
	pot = pot.with(fighters)

	best := highest(fighters)
	switch len(best) {
	case 0:
		g.abandon(Exhausted)
		return resolution{}
	case 1:
		best[0].Capture(pot...)
		return resolution{winner: best[0], pot: len(pot), depth: depth}
	default:
		return g.war(best, pot, depth+1)
	}
}

// war makes every tied player put two more cards into the pot, then lets
// the same group compete again.
func (g *Game) war(group []*Player, pot Pot, depth int) resolution {
	g.wars++
	if depth > g.maxWarDepth {
		g.maxWarDepth = depth
	}
	g.logger.Debug("War", "turn", g.turns, "players", len(group), "depth", depth, "pot", len(pot))

	for i := 0; i < 2; i++ {
		fighters, ok := g.drawStep(group)
		if !ok {
			return resolution{}
		}
		pot = pot.with(fighters)
	}
	return g.compete(group, pot, depth)
}

// drawStep counts one turn and collects a card from each player in group
// that still has one. It returns false, drawing nothing, once the turn
// counter passes the limit.
func (g *Game) drawStep(group []*Player) ([]fighter, bool) {
	g.turns++
	if g.turns > g.turnLimit {
		g.abandon(TurnLimit)
		return nil, false
	}

	fighters := make([]fighter, 0, len(group))
	for _, p := range group {
		if c, ok := p.Attack(); ok {
			fighters = append(fighters, fighter{player: p, card: c})
		}
	}
	return fighters, true
}

func (g *Game) removeLosers() {
	remaining := make([]*Player, 0, len(g.players))
	for _, p := range g.players {
		if p.Eliminated() {
			g.logger.Debug("Player eliminated", "player", p.id, "turn", g.turns)
			if g.observer != nil {
				g.observer.PlayerEliminated(p.id, g.turns)
			}
			continue
		}
		remaining = append(remaining, p)
	}
	g.players = remaining

	switch len(g.players) {
	case 0:
		g.abandon(Exhausted)
	case 1:
		g.state = Won
		g.winner = g.players[0].id
		g.logger.Debug("Game won", "player", g.winner, "turns", g.turns, "rounds", g.rounds)
	}
}

func (g *Game) abandon(reason AbandonReason) {
	g.state = Abandoned
	g.reason = reason
	g.logger.Debug("Game abandoned", "reason", reason, "turns", g.turns, "rounds", g.rounds)
}

func (g *Game) totals() []PlayerTotal {
	totals := make([]PlayerTotal, len(g.players))
	for i, p := range g.players {
		totals[i] = PlayerTotal{ID: p.id, Cards: p.Total()}
	}
	return totals
}

// Outcome returns the game's result so far. State is InProgress until Play
// or PlayRound finishes the game.
func (g *Game) Outcome() Outcome {
	return Outcome{
		State:       g.state,
		Reason:      g.reason,
		Winner:      g.winner,
		Turns:       g.turns,
		Rounds:      g.rounds,
		Wars:        g.wars,
		MaxWarDepth: g.maxWarDepth,
	}
}

// State returns the current lifecycle state.
func (g *Game) State() State { return g.state }

// Turns returns the number of draw steps taken so far.
func (g *Game) Turns() int { return g.turns }

// Rounds returns the number of rounds started so far.
func (g *Game) Rounds() int { return g.rounds }

// TurnLimit returns the configured turn limit.
func (g *Game) TurnLimit() int { return g.turnLimit }

// Players returns the players still in the game, in seat order.
func (g *Game) Players() []*Player {
	return append([]*Player(nil), g.players...)
}

// TotalCards sums the cards held by the players still in the game.
func (g *Game) TotalCards() int {
	total := 0
	for _, p := range g.players {
		total += p.Total()
	}
	return total
}
