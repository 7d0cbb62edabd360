// Package board holds the static board data: tiles, properties, action
// cards and characters. All of it is persisted as JSON; missing files
// are created from the built-in defaults on first run.
package board

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Tiles is the number of tiles on the board.
const Tiles = 40

// TileKind discriminates the tile variants.
type TileKind string

const (
	TileParking  TileKind = "parking"
	TileStart    TileKind = "start"
	TileJail     TileKind = "jail"
	TileGoToJail TileKind = "go_to_jail"
	TileProperty TileKind = "property"
	TilePay      TileKind = "pay"
	TileDrawCard TileKind = "draw_card"
)

// CardKind selects which stack a draw tile pulls from.
type CardKind string

const (
	CardChance    CardKind = "chance"
	CardCommunity CardKind = "community"
)

// Tile is one board tile. Which fields are meaningful depends on Kind:
// Name for the plain tiles, Amount for pay tiles, Card for draw tiles
// and Property for property tiles.
type Tile struct {
	Kind     TileKind       `json:"kind"`
	Name     string         `json:"name,omitempty"`
	Amount   int            `json:"amount,omitempty"`
	Card     CardKind       `json:"card,omitempty"`
	Property *PropertyFrame `json:"property,omitempty"`
}

// Board is the full tile ring plus the positions of the two tiles the
// rules refer to directly.
type Board struct {
	Tiles [Tiles]Tile
	Jail  int
	Start int
}

// New builds a board from a tile list, validating the length and that
// exactly one jail and one start tile exist.
func New(tiles []Tile) (*Board, error) {
	if len(tiles) != Tiles {
		return nil, fmt.Errorf("board must have %d tiles, got %d", Tiles, len(tiles))
	}

	b := &Board{Jail: -1, Start: -1}
	copy(b.Tiles[:], tiles)

	for i, tile := range b.Tiles {
		switch tile.Kind {
		case TileJail:
			if b.Jail != -1 {
				return nil, fmt.Errorf("duplicate jail tile at %d and %d", b.Jail, i)
			}
			b.Jail = i
		case TileStart:
			if b.Start != -1 {
				return nil, fmt.Errorf("duplicate start tile at %d and %d", b.Start, i)
			}
			b.Start = i
		}
	}
	if b.Jail == -1 {
		return nil, fmt.Errorf("board has no jail tile")
	}
	if b.Start == -1 {
		return nil, fmt.Errorf("board has no start tile")
	}
	return b, nil
}

// PropertyFrames returns the property frames in tile order.
func (b *Board) PropertyFrames() []*PropertyFrame {
	var frames []*PropertyFrame
	for i := range b.Tiles {
		if b.Tiles[i].Kind == TileProperty && b.Tiles[i].Property != nil {
			frames = append(frames, b.Tiles[i].Property)
		}
	}
	return frames
}

// Load reads the board from path. When the file does not exist the
// default board is written there and returned.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		def := DefaultTiles()
		if err := writeJSON(path, def); err != nil {
			return nil, fmt.Errorf("writing default board: %w", err)
		}
		return New(def)
	}
	if err != nil {
		return nil, fmt.Errorf("reading board: %w", err)
	}

	var tiles []Tile
	if err := json.Unmarshal(data, &tiles); err != nil {
		return nil, fmt.Errorf("parsing board %s: %w", path, err)
	}
	return New(tiles)
}

func writeJSON(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// DefaultTiles is the built-in 40 tile layout: 22 normal properties in
// color groups, 4 stations, 2 specials, the corner tiles, two pay tiles
// and six draw tiles.
func DefaultTiles() []Tile {
	normal := func(id int, name string, associates ...int) Tile {
		return Tile{Kind: TileProperty, Property: &PropertyFrame{
			ID:         id,
			Name:       name,
			Rents:      make([]int, 1+MaxHouses),
			Kind:       PropertyNormal,
			Associates: associates,
		}}
	}
	station := func(id int, name string) Tile {
		return Tile{Kind: TileProperty, Property: &PropertyFrame{
			ID:    id,
			Name:  name,
			Rents: []int{0},
			Kind:  PropertyStation,
		}}
	}
	special := func(id int, name string) Tile {
		return Tile{Kind: TileProperty, Property: &PropertyFrame{
			ID:    id,
			Name:  name,
			Rents: []int{0},
			Kind:  PropertySpecial,
		}}
	}
	draw := func(kind CardKind) Tile {
		return Tile{Kind: TileDrawCard, Card: kind}
	}

	return []Tile{
		{Kind: TileStart, Name: "Start"},
		normal(0, "DarkBlue1", 1),
		draw(CardCommunity),
		normal(1, "DarkBlue2", 0),
		{Kind: TilePay, Name: "Pay1"},
		station(2, "Station1"),
		normal(3, "LightBlue1", 4, 5),
		draw(CardChance),
		normal(4, "LightBlue2", 3, 5),
		normal(5, "LightBlue3", 3, 4),
		{Kind: TileJail, Name: "Jail"},
		normal(6, "Violet1", 8, 9),
		special(7, "Special1"),
		normal(8, "Violet2", 6, 9),
		normal(9, "Violet3", 6, 8),
		station(10, "Station2"),
		normal(11, "Brown1", 12, 13),
		draw(CardCommunity),
		normal(12, "Brown2", 11, 13),
		normal(13, "Brown3", 11, 12),
		{Kind: TileParking, Name: "Parking"},
		normal(14, "Red1", 15, 16),
		draw(CardChance),
		normal(15, "Red2", 14, 16),
		normal(16, "Red3", 14, 15),
		station(17, "Station3"),
		normal(18, "Yellow1", 19, 21),
		normal(19, "Yellow2", 18, 21),
		special(20, "Special2"),
		normal(21, "Yellow3", 18, 19),
		{Kind: TileGoToJail, Name: "Go to jail"},
		normal(22, "Green1", 23, 24),
		normal(23, "Green2", 22, 24),
		draw(CardCommunity),
		normal(24, "Green3", 22, 23),
		station(25, "Station4"),
		draw(CardChance),
		normal(26, "OtherBlue1", 27),
		{Kind: TilePay, Name: "Pay2"},
		normal(27, "OtherBlue2", 26),
	}
}
