// Package forge assembles weapons from the part catalog, either at random
// for a level or from a previously issued weapon id.
package forge

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mesh-intelligence/lumen/pkg/types"
)

// LevelMax is the highest weapon level. Damage curves are sampled at
// level/LevelMax.
const LevelMax = 32

// maxPartIndex is the largest catalog position an id byte can address.
const maxPartIndex = math.MaxUint8

// Rand is the randomness Generate draws from. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// classBuckets weights the classes Generate can roll; rocket launchers are
// only reachable through Build.
var classBuckets = [10]types.WeaponType{
	types.WeaponPistol, types.WeaponPistol,
	types.WeaponSubmachine, types.WeaponSubmachine,
	types.WeaponShotgun, types.WeaponShotgun,
	types.WeaponAssault, types.WeaponAssault,
	types.WeaponGrenade,
	types.WeaponSniper,
}

var ranges = map[types.WeaponType]string{
	types.WeaponAssault:    "mid-far",
	types.WeaponGrenade:    "mid",
	types.WeaponPistol:     "close-near",
	types.WeaponRocket:     "mid-far",
	types.WeaponShotgun:    "mid",
	types.WeaponSniper:     "far",
	types.WeaponSubmachine: "close-mid",
}

// Weapon is an assembled weapon before formatting for display.
type Weapon struct {
	Level    uint8
	ID       ID
	Class    types.WeaponType
	Rarity   types.Rarity
	Company  types.Company
	Barrel   types.Part
	Body     types.Part
	Magazine types.Part
	Stock    types.Part

	// multiplier is the damage curve sampled at the weapon's level.
	multiplier float64
}

// Generate rolls a weapon of the given level from parts and curves.
func Generate(parts []types.Part, curves []types.WeaponCurve, level uint8, rng Rand) (*Weapon, error) {
	if level > LevelMax {
		return nil, fmt.Errorf("%w: %d exceeds %d", types.ErrInvalidLevel, level, LevelMax)
	}

	class := classBuckets[rng.IntN(len(classBuckets))]
	curve, err := curveFor(curves, class)
	if err != nil {
		return nil, err
	}

	var idx [4]uint8
	slots := [4]types.PartType{types.PartBarrel, types.PartBody, types.PartMagazine, types.PartStock}
	for i, slot := range slots {
		n, err := pickPart(parts, rng, level, slot)
		if err != nil {
			return nil, err
		}
		idx[i] = n
	}
	barrel, body, magazine, stock := idx[0], idx[1], idx[2], idx[3]

	id := NewID(level, classIndex(class), body, barrel, magazine, stock)
	return assemble(parts, curve, id, class), nil
}

// Build reassembles the weapon identified by id.
func Build(parts []types.Part, curves []types.WeaponCurve, id ID) (*Weapon, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: parity mismatch in %s", types.ErrInvalidWeaponID, id)
	}
	if id.Level() > LevelMax {
		return nil, fmt.Errorf("%w: %d exceeds %d", types.ErrInvalidLevel, id.Level(), LevelMax)
	}
	if int(id.Class()) >= len(types.WeaponTypes) {
		return nil, fmt.Errorf("%w: class %d in %s", types.ErrInvalidWeaponID, id.Class(), id)
	}
	for _, i := range []uint8{id.Body(), id.Barrel(), id.Magazine(), id.Stock()} {
		if int(i) >= len(parts) {
			return nil, fmt.Errorf("%w: index %d of %d", types.ErrMissingPart, i, len(parts))
		}
	}

	class := types.WeaponTypes[id.Class()]
	curve, err := curveFor(curves, class)
	if err != nil {
		return nil, err
	}
	return assemble(parts, curve, id, class), nil
}

func assemble(parts []types.Part, curve Curve, id ID, class types.WeaponType) *Weapon {
	w := &Weapon{
		Level:    id.Level(),
		ID:       id,
		Class:    class,
		Barrel:   parts[id.Barrel()],
		Body:     parts[id.Body()],
		Magazine: parts[id.Magazine()],
		Stock:    parts[id.Stock()],
	}
	w.Rarity = types.MaxRarity(w.Body.Rarity, w.Barrel.Rarity, w.Magazine.Rarity, w.Stock.Rarity)
	w.Company = w.Body.Company
	w.multiplier = curve.Evaluate(Rescale(float64(w.Level), 0, LevelMax, 0, 1))
	return w
}

// pickPart returns the catalog index of a random part for slot that is
// allowed at level.
func pickPart(parts []types.Part, rng Rand, level uint8, slot types.PartType) (uint8, error) {
	var candidates []uint8
	for i, p := range parts {
		if i > maxPartIndex {
			break
		}
		if p.Type == slot && allowedAt(p.Rarity, level) {
			candidates = append(candidates, uint8(i))
		}
	}
	if len(candidates) == 0 {
		return 0, fmt.Errorf("%w: no %s for level %d", types.ErrMissingPart, slot, level)
	}
	return candidates[rng.IntN(len(candidates))], nil
}

// allowedAt reports whether parts of rarity r can roll at level.
func allowedAt(r types.Rarity, level uint8) bool {
	switch {
	case level >= 20:
		return true
	case level >= 12:
		return r.Rank() <= types.RarityEpic.Rank()
	case level >= 8:
		return r.Rank() <= types.RarityRare.Rank()
	default:
		return r.Rank() <= types.RarityUncommon.Rank()
	}
}

func classIndex(class types.WeaponType) uint8 {
	for i, t := range types.WeaponTypes {
		if t == class {
			return uint8(i)
		}
	}
	return 0
}

// Name returns the display name: barrel name followed by body name.
func (w *Weapon) Name() string {
	return w.Barrel.Name + " " + w.Body.Name
}

// Damage returns the damage value shown to players.
func (w *Weapon) Damage() string {
	const base = 1.0
	return strconv.FormatFloat(base+math.Round(base*w.multiplier), 'f', -1, 64)
}

// Range returns the engagement range of the weapon's class.
func (w *Weapon) Range() string {
	return ranges[w.Class]
}

// Details returns the non-empty part details in body, barrel, magazine,
// stock order.
func (w *Weapon) Details() []string {
	details := []string{}
	for _, p := range []types.Part{w.Body, w.Barrel, w.Magazine, w.Stock} {
		if p.Details != "" {
			details = append(details, p.Details)
		}
	}
	return details
}

// Display formats w for the shared state.
func (w *Weapon) Display() *types.Weapon {
	return &types.Weapon{
		Level:    int(w.Level),
		ID:       types.WeaponID(w.ID.Uint64()),
		Name:     w.Name(),
		Rarity:   w.Rarity,
		Type:     w.Class,
		Company:  w.Company,
		Barrel:   w.Barrel,
		Body:     w.Body,
		Magazine: w.Magazine,
		Stock:    w.Stock,
		Range:    w.Range(),
		Damage:   w.Damage(),
		Details:  w.Details(),
	}
}
