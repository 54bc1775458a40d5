package types

import "fmt"

// PartType names the weapon slot a part fits.
type PartType string

// Weapon slots.
const (
	PartBody     PartType = "body"
	PartBarrel   PartType = "barrel"
	PartMagazine PartType = "magazine"
	PartStock    PartType = "stock"
)

// ParsePartType returns the PartType for s.
// Returns ErrInvalidPartType if s is not a known slot.
func ParsePartType(s string) (PartType, error) {
	switch t := PartType(s); t {
	case PartBody, PartBarrel, PartMagazine, PartStock:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPartType, s)
	}
}

// Rarity grades parts and weapons. Rarities are ordered from Common to
// Unique.
type Rarity string

// Rarities, lowest first.
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityUnique    Rarity = "unique"
)

var rarityRank = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
	RarityUnique:    5,
}

// ParseRarity returns the Rarity for s.
// Returns ErrInvalidRarity if s is not a known rarity.
func ParseRarity(s string) (Rarity, error) {
	r := Rarity(s)
	if _, ok := rarityRank[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidRarity, s)
	}
	return r, nil
}

// Rank returns the position of r in the rarity order, or -1 if r is unknown.
func (r Rarity) Rank() int {
	rank, ok := rarityRank[r]
	if !ok {
		return -1
	}
	return rank
}

// MaxRarity returns the highest of the given rarities.
func MaxRarity(first Rarity, rest ...Rarity) Rarity {
	top := first
	for _, r := range rest {
		if r.Rank() > top.Rank() {
			top = r
		}
	}
	return top
}

// Company is the manufacturer of a part.
type Company string

// Manufacturers.
const (
	CompanyArksys     Company = "arksys"
	CompanyDikarum    Company = "dikarum"
	CompanyPecora     Company = "pecora"
	CompanySisterhood Company = "sisterhood"
	CompanyTheia      Company = "theia"
	CompanyWestField  Company = "west_field"
)

var companyNames = map[Company]string{
	CompanyArksys:     "Arksys Inc",
	CompanyDikarum:    "Dikarum & Sons",
	CompanyPecora:     "Pecora Group",
	CompanySisterhood: "Sisterhood of Blight",
	CompanyTheia:      "Theia Manufacturing",
	CompanyWestField:  "West Field Mining Munitions",
}

// ParseCompany returns the Company for s.
// Returns ErrInvalidCompany if s is not a known manufacturer.
func ParseCompany(s string) (Company, error) {
	c := Company(s)
	if _, ok := companyNames[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCompany, s)
	}
	return c, nil
}

// DisplayName returns the full trading name of c.
func (c Company) DisplayName() string {
	if name, ok := companyNames[c]; ok {
		return name
	}
	return string(c)
}

// Part describes a weapon component.
type Part struct {
	Name    string   `json:"name"`
	Details string   `json:"details"`
	Type    PartType `json:"type"`
	Rarity  Rarity   `json:"rarity"`
	Company Company  `json:"company,omitempty"`
}
