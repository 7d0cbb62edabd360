// Package session holds the shared game state the screens act on:
// the board, the property states, the card stacks and the players.
package session

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"go.uber.org/zap"

	"github.com/schoolopoly/client/internal/config"
	"github.com/schoolopoly/client/internal/game/board"
	"github.com/schoolopoly/client/internal/logger"
)

// Phase tracks which part of the game is active.
type Phase int

const (
	PhaseLogin Phase = iota
	PhaseInGame
	PhaseFinished
)

// Session is the full mutable game state. All exported methods are
// safe for concurrent use.
type Session struct {
	mu         sync.Mutex
	board      *board.Board
	cards      []board.ActionCard
	chance     *board.CardStack
	community  *board.CardStack
	properties []*board.Property
	characters []board.Character
	players    []*board.Player
	current    int
	phase      Phase
}

// New loads the board, the card deck and the character list from the
// configured data files, creating the defaults on first run.
func New(cfg config.DataConfig) (*Session, error) {
	b, err := board.Load(cfg.BoardFile)
	if err != nil {
		return nil, fmt.Errorf("loading board: %w", err)
	}
	cards, err := board.LoadCards(cfg.CardsFile)
	if err != nil {
		return nil, fmt.Errorf("loading cards: %w", err)
	}
	chars, err := board.LoadCharacters(cfg.CharactersFile)
	if err != nil {
		return nil, fmt.Errorf("loading characters: %w", err)
	}

	var props []*board.Property
	for _, frame := range b.PropertyFrames() {
		props = append(props, board.NewProperty(*frame))
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	chance, community := board.SplitStacks(len(cards), rng)

	logger.Info("session loaded",
		zap.Int("properties", len(props)),
		zap.Int("cards", len(cards)),
		zap.Int("characters", len(chars)),
	)

	return &Session{
		board:      b,
		cards:      cards,
		chance:     chance,
		community:  community,
		properties: props,
		characters: chars,
	}, nil
}

// Board returns the tile ring.
func (s *Session) Board() *board.Board {
	return s.board
}

// Characters returns the selectable characters.
func (s *Session) Characters() []board.Character {
	return s.characters
}

// Property returns the state of the property with the given id.
func (s *Session) Property(id int) (*board.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.properties {
		if p.Frame.ID == id {
			return p, true
		}
	}
	return nil, false
}

// AddPlayer joins a new player on the start tile and returns it.
func (s *Session) AddPlayer(name string, characterID int) *board.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := board.NewPlayer(len(s.players), name, characterID, s.board.Start)
	s.players = append(s.players, p)
	return p
}

// Players returns a snapshot of the player list.
func (s *Session) Players() []*board.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*board.Player(nil), s.players...)
}

// CurrentPlayer returns the player whose turn it is, or nil before
// anyone joined.
func (s *Session) CurrentPlayer() *board.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.players) == 0 {
		return nil
	}
	return s.players[s.current]
}

// NextPlayer advances the turn to the next player.
func (s *Session) NextPlayer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.players) != 0 {
		s.current = (s.current + 1) % len(s.players)
	}
}

// Draw pulls a random card from the stack the tile kind selects.
func (s *Session) Draw(kind board.CardKind) board.ActionCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	var idx int
	if kind == board.CardChance {
		idx = s.chance.Draw()
	} else {
		idx = s.community.Draw()
	}
	return s.cards[idx]
}

// Phase returns the current game phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// SetPhase moves the game into a new phase.
func (s *Session) SetPhase(p Phase) {
	s.mu.Lock()
	s.phase = p
	s.mu.Unlock()
}
