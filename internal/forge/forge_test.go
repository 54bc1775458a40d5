package forge

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lumen/pkg/types"
)

// seqRand returns its values in order, each reduced modulo n.
type seqRand struct {
	values []int
	next   int
}

func (r *seqRand) IntN(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func testParts() []types.Part {
	return []types.Part{
		{Name: "lightweight", Type: types.PartBarrel, Rarity: types.RarityCommon, Company: types.CompanyArksys},
		{Name: "ansible", Details: "lore: again", Type: types.PartBarrel, Rarity: types.RarityRare, Company: types.CompanyArksys},
		{Name: "ni-cad", Type: types.PartBody, Rarity: types.RarityCommon, Company: types.CompanyArksys},
		{Name: "heir", Details: "lore: mine", Type: types.PartBody, Rarity: types.RarityUncommon, Company: types.CompanyDikarum},
		{Name: "<unnamed>", Type: types.PartMagazine, Rarity: types.RarityCommon, Company: types.CompanyArksys},
		{Name: "<unnamed>", Type: types.PartStock, Rarity: types.RarityCommon, Company: types.CompanyDikarum},
		{Name: "relic", Type: types.PartStock, Rarity: types.RarityLegendary, Company: types.CompanyTheia},
	}
}

func testCurves() []types.WeaponCurve {
	curves := make([]types.WeaponCurve, 0, len(types.WeaponTypes))
	for _, wt := range types.WeaponTypes {
		curves = append(curves, types.WeaponCurve{Type: wt, Kind: types.CurveCubic, A: 0.25, B: 1, C: 0.25, D: 1})
	}
	return curves
}

func TestCurves(t *testing.T) {
	tests := []struct {
		name  string
		curve Curve
		t     float64
		want  float64
	}{
		{name: "linear start", curve: Linear{A: 2, B: 6}, t: 0, want: 2},
		{name: "linear midpoint", curve: Linear{A: 2, B: 6}, t: 0.5, want: 4},
		{name: "quadratic end", curve: Quadratic{A: 0, B: 5, C: 1}, t: 1, want: 1},
		{name: "quadratic midpoint", curve: Quadratic{A: 0, B: 1, C: 0}, t: 0.5, want: 0.5},
		{name: "cubic start", curve: Cubic{A: 0.25, B: 1, C: 0.25, D: 1}, t: 0, want: 0.25},
		{name: "cubic end", curve: Cubic{A: 0.25, B: 1, C: 0.25, D: 1}, t: 1, want: 1},
		{name: "cubic midpoint", curve: Cubic{A: 0, B: 1, C: 1, D: 0}, t: 0.5, want: 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.curve.Evaluate(tt.t), 1e-9)
		})
	}
}

func TestNewCurve(t *testing.T) {
	c, err := NewCurve(types.WeaponCurve{Type: types.WeaponPistol, Kind: types.CurveLinear, A: 1, B: 3})
	require.NoError(t, err)
	assert.Equal(t, Linear{A: 1, B: 3}, c)

	_, err = NewCurve(types.WeaponCurve{Type: types.WeaponPistol, Kind: "spline"})
	assert.ErrorIs(t, err, types.ErrInvalidCurve)
}

func TestRescale(t *testing.T) {
	assert.InDelta(t, 0.5, Rescale(16, 0, LevelMax, 0, 1), 1e-9)
	assert.InDelta(t, 1.0, Rescale(LevelMax, 0, LevelMax, 0, 1), 1e-9)
	assert.InDelta(t, 15.0, Rescale(0.5, 0, 1, 10, 20), 1e-9)
}

func TestID(t *testing.T) {
	id := NewID(5, 2, 3, 0, 4, 6)

	assert.True(t, id.Valid())
	assert.Equal(t, uint8(5^2^3^0^4^6), id[7])
	assert.Equal(t, "05020300040600", id.String()[:14])
	assert.Len(t, id.String(), 16)

	parsed, err := ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
	assert.Equal(t, id, IDFromUint64(id.Uint64()))

	assert.Equal(t, uint8(5), parsed.Level())
	assert.Equal(t, uint8(2), parsed.Class())
	assert.Equal(t, uint8(3), parsed.Body())
	assert.Equal(t, uint8(0), parsed.Barrel())
	assert.Equal(t, uint8(4), parsed.Magazine())
	assert.Equal(t, uint8(6), parsed.Stock())

	tampered := id
	tampered[2]++
	assert.False(t, tampered.Valid())

	_, err = ParseID("not-hex")
	assert.ErrorIs(t, err, types.ErrInvalidWeaponID)
}

func TestGenerate(t *testing.T) {
	// class bucket 0 (pistol), then first candidate for every slot.
	rng := &seqRand{values: []int{0}}

	w, err := Generate(testParts(), testCurves(), 4, rng)
	require.NoError(t, err)

	assert.Equal(t, types.WeaponPistol, w.Class)
	assert.Equal(t, "lightweight", w.Barrel.Name)
	assert.Equal(t, "ni-cad", w.Body.Name)
	assert.Equal(t, types.PartMagazine, w.Magazine.Type)
	assert.Equal(t, types.PartStock, w.Stock.Type)
	assert.Equal(t, types.RarityCommon, w.Rarity)
	assert.Equal(t, types.CompanyArksys, w.Company)
	assert.True(t, w.ID.Valid())
	assert.Equal(t, uint8(4), w.ID.Level())
}

func TestGenerateRespectsRarityByLevel(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	parts := testParts()

	for i := 0; i < 200; i++ {
		w, err := Generate(parts, testCurves(), 7, rng)
		require.NoError(t, err)
		assert.NotEqual(t, "ansible", w.Barrel.Name, "rare barrel rolled below level 8")
		assert.NotEqual(t, "relic", w.Stock.Name, "legendary stock rolled below level 20")
		assert.NotEqual(t, types.WeaponRocket, w.Class)
	}

	sawRelic := false
	for i := 0; i < 200 && !sawRelic; i++ {
		w, err := Generate(parts, testCurves(), 20, rng)
		require.NoError(t, err)
		sawRelic = w.Stock.Name == "relic"
	}
	assert.True(t, sawRelic, "legendary stock never rolled at level 20")
}

func TestGenerateErrors(t *testing.T) {
	rng := &seqRand{values: []int{0}}

	_, err := Generate(testParts(), testCurves(), LevelMax+1, rng)
	assert.ErrorIs(t, err, types.ErrInvalidLevel)

	_, err = Generate(testParts(), nil, 1, rng)
	assert.ErrorIs(t, err, types.ErrMissingCurve)

	noStock := testParts()[:5]
	_, err = Generate(noStock, testCurves(), 1, rng)
	assert.ErrorIs(t, err, types.ErrMissingPart)
}

func TestBuildRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	parts := testParts()

	for i := 0; i < 50; i++ {
		level := uint8(rng.IntN(LevelMax + 1))
		generated, err := Generate(parts, testCurves(), level, rng)
		require.NoError(t, err)

		id, err := ParseID(generated.ID.String())
		require.NoError(t, err)

		built, err := Build(parts, testCurves(), id)
		require.NoError(t, err)
		assert.Equal(t, generated.Display(), built.Display())
	}
}

func TestBuildErrors(t *testing.T) {
	parts := testParts()

	bad := NewID(1, 0, 2, 0, 4, 5)
	bad[7]++
	_, err := Build(parts, testCurves(), bad)
	assert.ErrorIs(t, err, types.ErrInvalidWeaponID)

	_, err = Build(parts, testCurves(), NewID(1, 0, 2, 0, 4, 99))
	assert.ErrorIs(t, err, types.ErrMissingPart)

	_, err = Build(parts, testCurves(), NewID(1, 9, 2, 0, 4, 5))
	assert.ErrorIs(t, err, types.ErrInvalidWeaponID)

	_, err = Build(parts, testCurves(), NewID(LevelMax+1, 0, 2, 0, 4, 5))
	assert.ErrorIs(t, err, types.ErrInvalidLevel)
}

func TestDisplay(t *testing.T) {
	parts := testParts()
	// rocket launcher: barrel ansible, body heir, magazine, legendary stock.
	id := NewID(LevelMax, 3, 3, 1, 4, 6)

	w, err := Build(parts, testCurves(), id)
	require.NoError(t, err)
	d := w.Display()

	assert.Equal(t, int(LevelMax), d.Level)
	assert.Equal(t, types.WeaponID(id.Uint64()), d.ID)
	assert.Equal(t, "ansible heir", d.Name)
	assert.Equal(t, types.WeaponRocket, d.Type)
	assert.Equal(t, types.RarityLegendary, d.Rarity)
	assert.Equal(t, types.CompanyDikarum, d.Company)
	assert.Equal(t, "mid-far", d.Range)
	// cubic curve ends at 1, so damage is 1 + round(1).
	assert.Equal(t, "2", d.Damage)
	assert.Equal(t, []string{"lore: mine", "lore: again"}, d.Details)
}

func TestDisplayDetailsEmpty(t *testing.T) {
	w, err := Build(testParts(), testCurves(), NewID(0, 2, 2, 0, 4, 5))
	require.NoError(t, err)

	d := w.Display()
	assert.NotNil(t, d.Details)
	assert.Empty(t, d.Details)
	assert.Equal(t, "close-near", d.Range)
	// the cubic curve starts at 0.25, which rounds to 0.
	assert.Equal(t, "1", d.Damage)
}
