package types

// State is the root record shared by every UI view.
// Weapon is nil when no weapon is displayed.
type State struct {
	Stats      []Stat      `json:"stats"`
	Characters []Character `json:"characters"`
	Parts      []Part      `json:"parts"`
	Weapon     *Weapon     `json:"weapon"`
}

// NewState returns the initial State: empty sequences and no weapon.
// The sequences are non-nil so they encode as [] rather than null.
func NewState() State {
	return State{
		Stats:      []Stat{},
		Characters: []Character{},
		Parts:      []Part{},
	}
}

// Character returns the character with the given name.
func (s State) Character(name string) (Character, bool) {
	for _, c := range s.Characters {
		if c.Name == name {
			return c, true
		}
	}
	return Character{}, false
}
