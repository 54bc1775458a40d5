package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// WeaponType is the class of a weapon. Its string form is the display name
// used on the wire and in the curve table.
type WeaponType string

// Weapon classes.
const (
	WeaponAssault    WeaponType = "assault rifle"
	WeaponGrenade    WeaponType = "grenade launcher"
	WeaponPistol     WeaponType = "pistol"
	WeaponRocket     WeaponType = "rocket launcher"
	WeaponShotgun    WeaponType = "shotgun"
	WeaponSniper     WeaponType = "sniper rifle"
	WeaponSubmachine WeaponType = "submachine gun"
)

// WeaponTypes lists every weapon class in id order.
var WeaponTypes = []WeaponType{
	WeaponAssault,
	WeaponGrenade,
	WeaponPistol,
	WeaponRocket,
	WeaponShotgun,
	WeaponSniper,
	WeaponSubmachine,
}

// ParseWeaponType returns the WeaponType for s.
// Returns ErrInvalidWeaponType if s is not a known class.
func ParseWeaponType(s string) (WeaponType, error) {
	for _, t := range WeaponTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidWeaponType, s)
}

// WeaponID is the packed 8-byte weapon id. It travels as its 16 hex digit
// form so JSON consumers that read numbers as float64 keep every byte.
type WeaponID uint64

func (id WeaponID) String() string { return fmt.Sprintf("%016x", uint64(id)) }

// MarshalJSON encodes id as a hex string.
func (id WeaponID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON decodes the hex string form written by MarshalJSON.
func (id *WeaponID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidWeaponID, data)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidWeaponID, s)
	}
	*id = WeaponID(v)
	return nil
}

// Weapon is a weapon assembled from four parts, ready for display.
type Weapon struct {
	Level    int        `json:"level"`
	ID       WeaponID   `json:"id"`
	Name     string     `json:"name"`
	Rarity   Rarity     `json:"rarity"`
	Type     WeaponType `json:"type"`
	Company  Company    `json:"company"`
	Barrel   Part       `json:"barrel"`
	Body     Part       `json:"body"`
	Magazine Part       `json:"magazine"`
	Stock    Part       `json:"stock"`
	Range    string     `json:"range"`
	Damage   string     `json:"damage"`
	Details  []string   `json:"details"`
}
