package types

import "errors"

// Catalog errors.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")
	ErrInvalidName   = errors.New("invalid name")
)

// Value parsing errors.
var (
	ErrInvalidStatType   = errors.New("invalid stat type")
	ErrInvalidPartType   = errors.New("invalid part type")
	ErrInvalidRarity     = errors.New("invalid rarity")
	ErrInvalidCompany    = errors.New("invalid company")
	ErrInvalidWeaponType = errors.New("invalid weapon type")
	ErrInvalidCurve      = errors.New("invalid curve")
	ErrInvalidStatValue  = errors.New("invalid stat value")
)

// Weapon errors.
var (
	ErrInvalidLevel    = errors.New("invalid weapon level")
	ErrInvalidWeaponID = errors.New("invalid weapon id")
	ErrMissingPart     = errors.New("missing weapon part")
	ErrMissingCurve    = errors.New("missing weapon curve")
)

// Backend lifecycle errors.
var (
	ErrBackendDetached = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
)
