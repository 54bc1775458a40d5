package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePartValues(t *testing.T) {
	pt, err := ParsePartType("magazine")
	require.NoError(t, err)
	assert.Equal(t, PartMagazine, pt)

	r, err := ParseRarity("legendary")
	require.NoError(t, err)
	assert.Equal(t, RarityLegendary, r)

	c, err := ParseCompany("west_field")
	require.NoError(t, err)
	assert.Equal(t, CompanyWestField, c)

	_, err = ParsePartType("scope")
	assert.ErrorIs(t, err, ErrInvalidPartType)
	_, err = ParseRarity("mythic")
	assert.ErrorIs(t, err, ErrInvalidRarity)
	_, err = ParseCompany("acme")
	assert.ErrorIs(t, err, ErrInvalidCompany)
}

func TestMaxRarity(t *testing.T) {
	tests := []struct {
		name string
		in   []Rarity
		want Rarity
	}{
		{name: "single rarity", in: []Rarity{RarityRare}, want: RarityRare},
		{name: "highest wins", in: []Rarity{RarityCommon, RarityEpic, RarityUncommon}, want: RarityEpic},
		{name: "ties keep value", in: []Rarity{RarityUnique, RarityUnique}, want: RarityUnique},
		{name: "order does not matter", in: []Rarity{RarityLegendary, RarityCommon}, want: RarityLegendary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxRarity(tt.in[0], tt.in[1:]...))
		})
	}
}

func TestCompanyDisplayName(t *testing.T) {
	assert.Equal(t, "Dikarum & Sons", CompanyDikarum.DisplayName())
	assert.Equal(t, "acme", Company("acme").DisplayName())
}

func TestParseWeaponTypeAndCurve(t *testing.T) {
	wt, err := ParseWeaponType("sniper rifle")
	require.NoError(t, err)
	assert.Equal(t, WeaponSniper, wt)

	_, err = ParseWeaponType("sniper")
	assert.ErrorIs(t, err, ErrInvalidWeaponType)

	k, err := ParseCurveKind("cubic")
	require.NoError(t, err)
	assert.Equal(t, CurveCubic, k)

	_, err = ParseCurveKind("spline")
	assert.ErrorIs(t, err, ErrInvalidCurve)
}
