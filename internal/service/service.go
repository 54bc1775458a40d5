// Package service is the data layer behind the shared State: it runs
// catalog mutations against the backend and publishes the result into the
// state store, where every subscriber picks it up.
package service

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/lumen/internal/forge"
	"github.com/mesh-intelligence/lumen/internal/logger"
	"github.com/mesh-intelligence/lumen/pkg/state"
	"github.com/mesh-intelligence/lumen/pkg/types"
)

// Backend is the catalog storage the service drives. *sqlite.Backend
// implements it.
type Backend interface {
	AddCharacter(name string) error
	RemoveCharacter(name string) error
	IncrementStat(character, stat string) error
	DecrementStat(character, stat string) error
	ToggleStat(character, stat string) error
	AddStat(name string, typ types.StatType) error
	RemoveStat(name string) error
	AddPart(p types.Part) error
	RemovePart(name string) error
	SeedCatalog() (bool, error)
	Parts() ([]types.Part, error)
	Curves() ([]types.WeaponCurve, error)
	Snapshot(weapon *types.Weapon) (types.State, error)
}

// globalRand draws from the math/rand/v2 top-level generator.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Service serializes writes to the backend and keeps the store in step
// with it. Store subscribers are notified while the write lock is held, so
// they must not call back into the Service synchronously.
type Service struct {
	mu      sync.Mutex
	backend Backend
	store   *state.Store
	rng     forge.Rand
	log     logrus.FieldLogger
}

// Option configures a Service.
type Option func(*Service)

// WithRand sets the randomness used by GenerateWeapon.
func WithRand(rng forge.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Service) { s.log = log }
}

// New returns a Service writing to backend and publishing into store.
func New(backend Backend, store *state.Store, opts ...Option) *Service {
	s := &Service{
		backend: backend,
		store:   store,
		rng:     globalRand{},
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the store the service publishes into.
func (s *Service) Store() *state.Store {
	return s.store
}

// State returns the current published State.
func (s *Service) State() types.State {
	return s.store.Get()
}

// Refresh reloads the catalog from the backend and publishes it.
func (s *Service) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.publishCatalog(false)
	return err
}

// publishCatalog must be called with s.mu held. dropWeapon clears the
// displayed weapon in the same write.
func (s *Service) publishCatalog(dropWeapon bool) (types.State, error) {
	snap, err := s.backend.Snapshot(nil)
	if err != nil {
		return types.State{}, fmt.Errorf("loading catalog: %w", err)
	}
	if dropWeapon {
		return s.store.ReplaceCatalog(snap.Stats, snap.Characters, snap.Parts), nil
	}
	return s.store.SetCatalog(snap.Stats, snap.Characters, snap.Parts), nil
}

// mutate runs fn and, if it succeeds, publishes the reloaded catalog and
// returns the State it published. A failed op publishes nothing.
func (s *Service) mutate(op string, dropWeapon bool, fn func() error) (types.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(); err != nil {
		s.log.WithError(err).WithField("op", op).Debug("mutation rejected")
		return types.State{}, err
	}
	st, err := s.publishCatalog(dropWeapon)
	if err != nil {
		return types.State{}, err
	}
	s.log.WithField("op", op).Debug("catalog published")
	return st, nil
}

// AddCharacter creates a character with every template stat at zero.
func (s *Service) AddCharacter(name string) (types.State, error) {
	return s.mutate("character.add", false, func() error { return s.backend.AddCharacter(name) })
}

// RemoveCharacter deletes a character.
func (s *Service) RemoveCharacter(name string) (types.State, error) {
	return s.mutate("character.remove", false, func() error { return s.backend.RemoveCharacter(name) })
}

// IncrementStat adds one to a character's stat.
func (s *Service) IncrementStat(character, stat string) (types.State, error) {
	return s.mutate("stat.increment", false, func() error { return s.backend.IncrementStat(character, stat) })
}

// DecrementStat subtracts one from a character's stat.
func (s *Service) DecrementStat(character, stat string) (types.State, error) {
	return s.mutate("stat.decrement", false, func() error { return s.backend.DecrementStat(character, stat) })
}

// ToggleStat flips a character's stat between 0 and 1.
func (s *Service) ToggleStat(character, stat string) (types.State, error) {
	return s.mutate("stat.toggle", false, func() error { return s.backend.ToggleStat(character, stat) })
}

// AddStat adds a stat to the template.
func (s *Service) AddStat(name string, typ types.StatType) (types.State, error) {
	return s.mutate("stat.add", false, func() error { return s.backend.AddStat(name, typ) })
}

// RemoveStat removes a stat from the template and every character.
func (s *Service) RemoveStat(name string) (types.State, error) {
	return s.mutate("stat.remove", false, func() error { return s.backend.RemoveStat(name) })
}

// AddPart appends a part to the catalog. Appending leaves existing weapon
// ids pointing at the same parts, so the displayed weapon stays.
func (s *Service) AddPart(p types.Part) (types.State, error) {
	return s.mutate("part.add", false, func() error { return s.backend.AddPart(p) })
}

// RemovePart deletes every part with the given name. Later parts shift down,
// so the displayed weapon's id no longer describes it and it is cleared.
func (s *Service) RemovePart(name string) (types.State, error) {
	return s.mutate("part.remove", true, func() error { return s.backend.RemovePart(name) })
}

// SeedCatalog loads the built-in parts and curves into empty tables and
// reports whether anything was inserted.
func (s *Service) SeedCatalog() (types.State, bool, error) {
	var seeded bool
	st, err := s.mutate("part.seed", false, func() error {
		var err error
		seeded, err = s.backend.SeedCatalog()
		return err
	})
	return st, seeded, err
}

// GenerateWeapon rolls a weapon for level and displays it.
// Returns ErrInvalidLevel if level is outside 0..forge.LevelMax.
func (s *Service) GenerateWeapon(level int) (types.State, error) {
	if level < 0 || level > forge.LevelMax {
		return types.State{}, fmt.Errorf("%w: %d not in 0..%d", types.ErrInvalidLevel, level, forge.LevelMax)
	}
	return s.forgeWeapon("weapon.generate", func(parts []types.Part, curves []types.WeaponCurve) (*forge.Weapon, error) {
		return forge.Generate(parts, curves, uint8(level), s.rng)
	})
}

// BuildWeapon rebuilds the weapon with the given hex id and displays it.
func (s *Service) BuildWeapon(id string) (types.State, error) {
	parsed, err := forge.ParseID(id)
	if err != nil {
		return types.State{}, err
	}
	return s.forgeWeapon("weapon.build", func(parts []types.Part, curves []types.WeaponCurve) (*forge.Weapon, error) {
		return forge.Build(parts, curves, parsed)
	})
}

func (s *Service) forgeWeapon(op string, fn func([]types.Part, []types.WeaponCurve) (*forge.Weapon, error)) (types.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parts, err := s.backend.Parts()
	if err != nil {
		return types.State{}, fmt.Errorf("loading parts: %w", err)
	}
	curves, err := s.backend.Curves()
	if err != nil {
		return types.State{}, fmt.Errorf("loading curves: %w", err)
	}

	w, err := fn(parts, curves)
	if err != nil {
		return types.State{}, err
	}

	st := s.store.SetWeapon(w.Display())
	s.log.WithFields(logrus.Fields{"op": op, "weapon_id": w.ID.String()}).Debug("weapon published")
	return st, nil
}

// ClearWeapon removes the displayed weapon and returns the State it
// published.
func (s *Service) ClearWeapon() types.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ClearWeapon()
}
