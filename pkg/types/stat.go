package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// StatType names the kind of value a stat holds.
type StatType string

// Stat types understood by the catalog.
const (
	StatNumber  StatType = "number"
	StatBoolean StatType = "boolean"
)

// ParseStatType returns the StatType for s.
// Returns ErrInvalidStatType if s is not a known stat type.
func ParseStatType(s string) (StatType, error) {
	switch t := StatType(s); t {
	case StatNumber, StatBoolean:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatType, s)
	}
}

// Stat is a named attribute definition usable by every character.
type Stat struct {
	Name string   `json:"name"`
	Type StatType `json:"type"`
}

// CharacterStat is a Stat bound to a concrete value for one character.
type CharacterStat struct {
	Name  string    `json:"name"`
	Type  StatType  `json:"type"`
	Value StatValue `json:"value"`
}

// Character is a named set of stat values, in template order.
type Character struct {
	Name  string          `json:"name"`
	Stats []CharacterStat `json:"stats"`
}

// Stat returns the character's stat with the given name.
func (c Character) Stat(name string) (CharacterStat, bool) {
	for _, s := range c.Stats {
		if s.Name == name {
			return s, true
		}
	}
	return CharacterStat{}, false
}

// ValueKind tags the variant held by a StatValue.
type ValueKind int

// StatValue variants. The zero StatValue is KindNone and encodes as null.
const (
	KindNone ValueKind = iota
	KindBool
	KindNumber
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "none"
	}
}

// StatValue holds a boolean, a number or a string.
type StatValue struct {
	kind ValueKind
	b    bool
	n    float64
	s    string
}

// Bool returns a boolean StatValue.
func Bool(v bool) StatValue { return StatValue{kind: KindBool, b: v} }

// Number returns a numeric StatValue.
func Number(v float64) StatValue { return StatValue{kind: KindNumber, n: v} }

// String returns a string StatValue.
func String(v string) StatValue { return StatValue{kind: KindString, s: v} }

// Kind reports which variant v holds.
func (v StatValue) Kind() ValueKind { return v.kind }

// AsBool returns the boolean held by v.
func (v StatValue) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the number held by v.
func (v StatValue) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

// AsString returns the string held by v.
func (v StatValue) AsString() (string, bool) { return v.s, v.kind == KindString }

// String formats v for display.
func (v StatValue) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindString:
		return v.s
	default:
		return ""
	}
}

// MarshalJSON encodes v as a bare JSON boolean, number or string.
func (v StatValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		return json.Marshal(v.b)
	case KindNumber:
		return json.Marshal(v.n)
	case KindString:
		return json.Marshal(v.s)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON boolean, number, string or null.
func (v *StatValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidStatValue
	}

	switch data[0] {
	case 'n':
		*v = StatValue{}
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStatValue, err)
		}
		*v = Bool(b)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStatValue, err)
		}
		*v = String(s)
		return nil
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStatValue, err)
		}
		*v = Number(n)
		return nil
	}
}
