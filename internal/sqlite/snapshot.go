package sqlite

import "github.com/mesh-intelligence/lumen/pkg/types"

// Snapshot reads the whole catalog into a State carrying weapon.
func (b *Backend) Snapshot(weapon *types.Weapon) (types.State, error) {
	stats, err := b.Stats()
	if err != nil {
		return types.State{}, err
	}
	characters, err := b.Characters()
	if err != nil {
		return types.State{}, err
	}
	parts, err := b.Parts()
	if err != nil {
		return types.State{}, err
	}

	return types.State{
		Stats:      stats,
		Characters: characters,
		Parts:      parts,
		Weapon:     weapon,
	}, nil
}
