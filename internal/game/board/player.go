package board

import (
	"encoding/json"
	"fmt"
	"os"
)

// InitialCurrency is every player's starting balance.
const InitialCurrency = 400

// Player is one participant's mutable state. Properties holds the ids
// of the properties they own; Wait counts the rounds they still sit
// out; JailFreeThrows counts failed escape attempts in jail.
type Player struct {
	Name           string
	Currency       int
	ID             int
	CharacterID    int
	Properties     []int
	Position       int
	JailFreeCards  int
	JailFreeThrows int
	Wait           int
}

// NewPlayer creates a player on the start tile with the initial
// balance.
func NewPlayer(id int, name string, characterID, start int) *Player {
	return &Player{
		Name:        name,
		Currency:    InitialCurrency,
		ID:          id,
		CharacterID: characterID,
		Position:    start,
	}
}

// Character is a selectable playing piece: a display name plus the
// portrait image shown on the login screen.
type Character struct {
	Name     string `json:"name"`
	ID       int    `json:"id"`
	Portrait string `json:"portrait"`
}

// LoadCharacters reads the character list from path, creating an empty
// file when it does not exist.
func LoadCharacters(path string) ([]Character, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := writeJSON(path, []Character{}); err != nil {
			return nil, fmt.Errorf("writing default characters: %w", err)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading characters: %w", err)
	}

	var chars []Character
	if err := json.Unmarshal(data, &chars); err != nil {
		return nil, fmt.Errorf("parsing characters %s: %w", path, err)
	}
	return chars, nil
}
