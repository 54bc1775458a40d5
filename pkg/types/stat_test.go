package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatType(t *testing.T) {
	got, err := ParseStatType("boolean")
	require.NoError(t, err)
	assert.Equal(t, StatBoolean, got)

	_, err = ParseStatType("text")
	assert.ErrorIs(t, err, ErrInvalidStatType)
}

func TestStatValueJSON(t *testing.T) {
	tests := []struct {
		name  string
		value StatValue
		want  string
	}{
		{name: "boolean encodes bare", value: Bool(true), want: `true`},
		{name: "number encodes bare", value: Number(3), want: `3`},
		{name: "fraction keeps precision", value: Number(-1.5), want: `-1.5`},
		{name: "string encodes quoted", value: String("d20"), want: `"d20"`},
		{name: "zero value encodes null", value: StatValue{}, want: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestStatValueUnmarshal(t *testing.T) {
	var stat CharacterStat
	require.NoError(t, json.Unmarshal([]byte(`{"name":"alive","type":"boolean","value":false}`), &stat))
	b, ok := stat.Value.AsBool()
	assert.True(t, ok)
	assert.False(t, b)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"hp","type":"number","value":12}`), &stat))
	n, ok := stat.Value.AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 12.0, n)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"class","type":"text","value":"rogue"}`), &stat))
	s, ok := stat.Value.AsString()
	assert.True(t, ok)
	assert.Equal(t, "rogue", s)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"unset","type":"number","value":null}`), &stat))
	assert.Equal(t, KindNone, stat.Value.Kind())

	err := json.Unmarshal([]byte(`{"name":"bad","value":[1]}`), &stat)
	assert.ErrorIs(t, err, ErrInvalidStatValue)
}

func TestStatValueString(t *testing.T) {
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "7", Number(7).String())
	assert.Equal(t, "rogue", String("rogue").String())
	assert.Equal(t, "", StatValue{}.String())
}

func TestCharacterStat(t *testing.T) {
	c := Character{
		Name: "ash",
		Stats: []CharacterStat{
			{Name: "hp", Type: StatNumber, Value: Number(4)},
			{Name: "alive", Type: StatBoolean, Value: Bool(true)},
		},
	}

	got, ok := c.Stat("alive")
	require.True(t, ok)
	assert.Equal(t, Bool(true), got.Value)

	_, ok = c.Stat("mana")
	assert.False(t, ok)
}
