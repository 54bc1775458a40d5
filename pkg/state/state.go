// Package state holds the single shared State cell that UI views render
// from and the data layer writes into.
package state

import (
	"github.com/mesh-intelligence/lumen/pkg/store"
	"github.com/mesh-intelligence/lumen/pkg/types"
)

// Store is the observable cell holding the application State.
//
// The helpers below each make one write and return the State that write
// stored, which later writes may already have replaced.
type Store struct {
	*store.Writable[types.State]
}

// New returns a Store holding types.NewState().
func New() *Store {
	return &Store{Writable: store.New(types.NewState())}
}

func (s *Store) apply(fn func(*types.State)) types.State {
	var written types.State
	s.Update(func(st types.State) types.State {
		fn(&st)
		written = st
		return st
	})
	return written
}

// SetWeapon displays w, leaving the catalog untouched.
func (s *Store) SetWeapon(w *types.Weapon) types.State {
	return s.apply(func(st *types.State) { st.Weapon = w })
}

// ClearWeapon removes the displayed weapon.
func (s *Store) ClearWeapon() types.State {
	return s.SetWeapon(nil)
}

// SetCatalog replaces stats, characters and parts in one write, leaving the
// displayed weapon untouched.
func (s *Store) SetCatalog(stats []types.Stat, characters []types.Character, parts []types.Part) types.State {
	return s.apply(func(st *types.State) {
		st.Stats = stats
		st.Characters = characters
		st.Parts = parts
	})
}

// ReplaceCatalog replaces stats, characters and parts and clears the
// displayed weapon in one write.
func (s *Store) ReplaceCatalog(stats []types.Stat, characters []types.Character, parts []types.Part) types.State {
	return s.apply(func(st *types.State) {
		st.Stats = stats
		st.Characters = characters
		st.Parts = parts
		st.Weapon = nil
	})
}
