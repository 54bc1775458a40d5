package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lumen/pkg/types"
)

func TestNewStoreStartsEmpty(t *testing.T) {
	s := New()
	assert.Equal(t, types.NewState(), s.Get())
}

func TestSetRoundTrip(t *testing.T) {
	s := New()
	v := types.State{
		Stats:      []types.Stat{{Name: "hp", Type: types.StatNumber}},
		Characters: []types.Character{{Name: "ash", Stats: []types.CharacterStat{}}},
		Parts:      []types.Part{{Name: "core", Type: types.PartBarrel, Rarity: types.RarityCommon}},
	}

	s.Set(v)

	assert.Equal(t, v, s.Get())
}

func TestSetWeaponKeepsCatalog(t *testing.T) {
	s := New()
	stats := []types.Stat{{Name: "hp", Type: types.StatNumber}}
	s.SetCatalog(stats, []types.Character{}, []types.Part{})

	var got []types.State
	unsub := s.Subscribe(func(v types.State) { got = append(got, v) })
	defer unsub()

	w := &types.Weapon{Name: "core tyche", Type: types.WeaponPistol}
	s.SetWeapon(w)
	s.ClearWeapon()

	require.Len(t, got, 3)
	assert.Same(t, w, got[1].Weapon)
	assert.Equal(t, stats, got[1].Stats)
	assert.Nil(t, got[2].Weapon)
	assert.Equal(t, stats, got[2].Stats)
}

func TestSetCatalogKeepsWeapon(t *testing.T) {
	s := New()
	w := &types.Weapon{Name: "core tyche"}
	s.SetWeapon(w)

	calls := 0
	unsub := s.Subscribe(func(types.State) { calls++ })
	defer unsub()

	parts := []types.Part{{Name: "tyche", Type: types.PartBody}}
	s.SetCatalog([]types.Stat{}, []types.Character{}, parts)

	assert.Equal(t, 2, calls)
	assert.Same(t, w, s.Get().Weapon)
	assert.Equal(t, parts, s.Get().Parts)
}

func TestReplaceCatalogClearsWeapon(t *testing.T) {
	s := New()
	s.SetWeapon(&types.Weapon{Name: "core tyche"})

	var got []types.State
	unsub := s.Subscribe(func(v types.State) { got = append(got, v) })
	defer unsub()

	parts := []types.Part{{Name: "tyche", Type: types.PartBody}}
	s.ReplaceCatalog([]types.Stat{}, []types.Character{}, parts)

	require.Len(t, got, 2, "one write for catalog and weapon")
	assert.Nil(t, got[1].Weapon)
	assert.Equal(t, parts, got[1].Parts)
}
