package session

import (
	"path/filepath"
	"testing"

	"github.com/schoolopoly/client/internal/config"
	"github.com/schoolopoly/client/internal/game/board"
	"github.com/schoolopoly/client/internal/logger"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	if logger.Log == nil {
		if err := logger.InitWithFileConfig("error", logger.FileConfig{}, false); err != nil {
			t.Fatalf("logger init: %v", err)
		}
	}

	dir := t.TempDir()
	s, err := New(config.DataConfig{
		BoardFile:      filepath.Join(dir, "board.json"),
		CardsFile:      filepath.Join(dir, "cards.json"),
		CharactersFile: filepath.Join(dir, "characters.json"),
	})
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	return s
}

func TestSessionLoadsDefaults(t *testing.T) {
	s := newTestSession(t)

	if s.Board() == nil {
		t.Fatal("session should carry a board")
	}
	if _, ok := s.Property(0); !ok {
		t.Error("property 0 should exist")
	}
	if _, ok := s.Property(board.Properties); ok {
		t.Error("property ids past the board must not exist")
	}
	if len(s.Characters()) != 0 {
		t.Error("default character list should be empty")
	}
}

func TestSessionTurnOrder(t *testing.T) {
	s := newTestSession(t)

	if s.CurrentPlayer() != nil {
		t.Fatal("no current player before anyone joined")
	}
	s.NextPlayer() // no players yet, must not panic

	a := s.AddPlayer("alice", 0)
	b := s.AddPlayer("bob", 1)
	if a.ID == b.ID {
		t.Fatal("players should get distinct ids")
	}
	if a.Position != s.Board().Start {
		t.Errorf("players join on the start tile, got %d", a.Position)
	}

	if s.CurrentPlayer().ID != a.ID {
		t.Error("first joined player starts")
	}
	s.NextPlayer()
	if s.CurrentPlayer().ID != b.ID {
		t.Error("turn should pass to the second player")
	}
	s.NextPlayer()
	if s.CurrentPlayer().ID != a.ID {
		t.Error("turn order wraps around")
	}
}

func TestSessionDraw(t *testing.T) {
	s := newTestSession(t)

	for i := 0; i < 20; i++ {
		card := s.Draw(board.CardChance)
		if card.Action.Kind == "" {
			t.Fatal("drawn card should have an action")
		}
		card = s.Draw(board.CardCommunity)
		if card.Action.Kind == "" {
			t.Fatal("drawn card should have an action")
		}
	}
}

func TestSessionPhase(t *testing.T) {
	s := newTestSession(t)

	if s.Phase() != PhaseLogin {
		t.Errorf("fresh session starts in login, got %d", s.Phase())
	}
	s.SetPhase(PhaseInGame)
	if s.Phase() != PhaseInGame {
		t.Error("phase should advance")
	}
}
