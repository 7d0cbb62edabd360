package board

// Properties is the number of property tiles on the default board:
// 22 normal, 4 stations, 2 special.
const Properties = 28

// MaxHouses is the build limit per normal property.
const MaxHouses = 5

// PropertyKind discriminates how a property charges rent.
type PropertyKind string

const (
	PropertyNormal  PropertyKind = "normal"
	PropertyStation PropertyKind = "station"
	PropertySpecial PropertyKind = "special"
)

// PropertyFrame is the immutable definition of a property. Rents is
// indexed by house count for normal properties; stations and specials
// carry a single base rent. Associates lists the ids of the other
// properties in the same color group.
type PropertyFrame struct {
	ID         int          `json:"id"`
	Name       string       `json:"name"`
	BuyPrice   int          `json:"buy_price"`
	Rents      []int        `json:"rents"`
	Kind       PropertyKind `json:"kind"`
	Associates []int        `json:"associates,omitempty"`
}

// Property is a frame plus its in-game state. Owner is a player id,
// or -1 while the bank still holds it.
type Property struct {
	Frame  PropertyFrame
	Houses int
	Owner  int
}

// NewProperty wraps a frame in its initial unowned state.
func NewProperty(frame PropertyFrame) *Property {
	return &Property{Frame: frame, Owner: -1}
}

// Rent is what a visitor owes. Normal properties and stations charge
// by house count; specials multiply their base rent by the number of
// moves the dice showed.
func (p *Property) Rent(moves int) int {
	switch p.Frame.Kind {
	case PropertySpecial:
		return p.Frame.Rents[0] * moves
	default:
		if p.Houses < len(p.Frame.Rents) {
			return p.Frame.Rents[p.Houses]
		}
		return p.Frame.Rents[len(p.Frame.Rents)-1]
	}
}
