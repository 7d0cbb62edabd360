package board

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
)

// ActionKind discriminates what a drawn card does.
type ActionKind string

const (
	// Currency exchanged between the player and the bank.
	ActionDirectCurrency ActionKind = "direct_currency"
	// Currency exchanged between the player and every other player.
	ActionDistributeCurrency ActionKind = "distribute_currency"
	ActionMoveRelative       ActionKind = "move_relative"
	ActionMoveAbsolute       ActionKind = "move_absolute"
	ActionWait               ActionKind = "wait"
	ActionGoToJail           ActionKind = "go_to_jail"
	ActionJailFree           ActionKind = "jail_free"
)

// Action is a card effect. Amount is signed for the currency and
// relative move kinds; Tile and Rounds serve the absolute move and
// wait kinds.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Amount int        `json:"amount,omitempty"`
	Tile   int        `json:"tile,omitempty"`
	Rounds int        `json:"rounds,omitempty"`
}

// ActionCard pairs the display text with the effect.
type ActionCard struct {
	Text   string `json:"text"`
	Action Action `json:"action"`
}

// LoadCards reads the action cards from path, creating the file with
// the default deck when it does not exist.
func LoadCards(path string) ([]ActionCard, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cards := DefaultCards()
		if err := writeJSON(path, cards); err != nil {
			return nil, fmt.Errorf("writing default cards: %w", err)
		}
		return cards, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cards: %w", err)
	}

	var cards []ActionCard
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("parsing cards %s: %w", path, err)
	}
	return cards, nil
}

// DefaultCards is the built-in deck.
func DefaultCards() []ActionCard {
	return []ActionCard{
		{Text: "Go to jail", Action: Action{Kind: ActionGoToJail}},
		{Text: "Pay 2$", Action: Action{Kind: ActionDirectCurrency, Amount: -2}},
		{Text: "Get 2$", Action: Action{Kind: ActionDirectCurrency, Amount: 2}},
		{Text: "Pay everybody 2", Action: Action{Kind: ActionDistributeCurrency, Amount: -2}},
		{Text: "Everybody pays you 2", Action: Action{Kind: ActionDistributeCurrency, Amount: 2}},
		{Text: "Wait 1 round", Action: Action{Kind: ActionWait, Rounds: 1}},
		{Text: "Go 2 tiles back", Action: Action{Kind: ActionMoveRelative, Amount: -2}},
		{Text: "Go 2 tiles forward", Action: Action{Kind: ActionMoveRelative, Amount: 2}},
		{Text: "Go to the first tile", Action: Action{Kind: ActionMoveAbsolute, Tile: 0}},
		{Text: "Jail free card", Action: Action{Kind: ActionJailFree}},
	}
}

// CardStack is a set of card indices a draw tile pulls from. Draws do
// not consume cards; the stack is sampled with replacement.
type CardStack struct {
	cards []int
	rng   *rand.Rand
}

// NewCardStack creates a stack over the given card indices.
func NewCardStack(cards []int, rng *rand.Rand) *CardStack {
	return &CardStack{cards: cards, rng: rng}
}

// Draw picks a random card index from the stack.
func (s *CardStack) Draw() int {
	return s.cards[s.rng.IntN(len(s.cards))]
}

// Len returns the number of cards in the stack.
func (s *CardStack) Len() int {
	return len(s.cards)
}

// SplitStacks deals a deck of n cards into the chance and community
// stacks. The first stack is half the deck sampled randomly (repeats
// allowed); the second gets every index the first missed.
func SplitStacks(n int, rng *rand.Rand) (*CardStack, *CardStack) {
	first := make([]int, 0, n/2)
	for i := 0; i < n/2; i++ {
		first = append(first, rng.IntN(n))
	}

	taken := make(map[int]bool, len(first))
	for _, idx := range first {
		taken[idx] = true
	}
	var second []int
	for i := 0; i < n; i++ {
		if !taken[i] {
			second = append(second, i)
		}
	}
	return NewCardStack(first, rng), NewCardStack(second, rng)
}
