package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/lumen/pkg/types"
)

// builtInCurves gives every weapon class the same cubic damage curve.
var builtInCurves = func() []types.WeaponCurve {
	curves := make([]types.WeaponCurve, 0, len(types.WeaponTypes))
	for _, wt := range types.WeaponTypes {
		curves = append(curves, types.WeaponCurve{Type: wt, Kind: types.CurveCubic, A: 0.25, B: 1, C: 0.25, D: 1})
	}
	return curves
}()

// builtInParts is the starter catalog: eight parts per manufacturer.
var builtInParts = []types.Part{
	{Name: "lightweight", Type: types.PartBarrel, Rarity: types.RarityCommon, Company: types.CompanyArksys},
	{Name: "hybrid", Type: types.PartBarrel, Rarity: types.RarityUncommon, Company: types.CompanyArksys},
	{Name: "ansible", Details: "lore: wanna see me do it again?", Type: types.PartBarrel, Rarity: types.RarityRare, Company: types.CompanyArksys},
	{Name: "ni-cad", Type: types.PartBody, Rarity: types.RarityCommon, Company: types.CompanyArksys},
	{Name: "semiconductor", Type: types.PartBody, Rarity: types.RarityUncommon, Company: types.CompanyArksys},
	{Name: "innovation", Details: "lore: science bitch!", Type: types.PartBody, Rarity: types.RarityRare, Company: types.CompanyArksys},
	{Name: "<unnamed>", Type: types.PartMagazine, Rarity: types.RarityCommon, Company: types.CompanyArksys},
	{Name: "<unnamed>", Type: types.PartStock, Rarity: types.RarityCommon, Company: types.CompanyArksys},

	{Name: "martial", Type: types.PartBarrel, Rarity: types.RarityCommon, Company: types.CompanyDikarum},
	{Name: "noble", Type: types.PartBarrel, Rarity: types.RarityUncommon, Company: types.CompanyDikarum},
	{Name: "bedazzled", Type: types.PartBarrel, Rarity: types.RarityRare, Company: types.CompanyDikarum},
	{Name: "heir", Details: "lore: ...and soon it will be mine", Type: types.PartBody, Rarity: types.RarityCommon, Company: types.CompanyDikarum},
	{Name: "aristocrat", Type: types.PartBody, Rarity: types.RarityUncommon, Company: types.CompanyDikarum},
	{Name: "pony", Details: "lore: i want one!", Type: types.PartBody, Rarity: types.RarityRare, Company: types.CompanyDikarum},
	{Name: "<unnamed>", Type: types.PartMagazine, Rarity: types.RarityCommon, Company: types.CompanyDikarum},
	{Name: "<unnamed>", Type: types.PartStock, Rarity: types.RarityCommon, Company: types.CompanyDikarum},

	{Name: "ocular", Type: types.PartBarrel, Rarity: types.RarityCommon, Company: types.CompanyPecora},
	{Name: "synthesized", Details: "lore: just like the real thing!", Type: types.PartBarrel, Rarity: types.RarityUncommon, Company: types.CompanyPecora},
	{Name: "ionized", Type: types.PartBarrel, Rarity: types.RarityRare, Company: types.CompanyPecora},
	{Name: "flicker", Type: types.PartBody, Rarity: types.RarityCommon, Company: types.CompanyPecora},
	{Name: "railgun", Details: "lore: if it fits, it ships", Type: types.PartBody, Rarity: types.RarityUncommon, Company: types.CompanyPecora},
	{Name: "inator", Type: types.PartBody, Rarity: types.RarityRare, Company: types.CompanyPecora},
	{Name: "<unnamed>", Type: types.PartMagazine, Rarity: types.RarityCommon, Company: types.CompanyPecora},
	{Name: "<unnamed>", Type: types.PartStock, Rarity: types.RarityCommon, Company: types.CompanyPecora},

	{Name: "adamant", Type: types.PartBarrel, Rarity: types.RarityCommon, Company: types.CompanySisterhood},
	{Name: "sender", Details: "lore: hit like a sack of wet mice", Type: types.PartBarrel, Rarity: types.RarityUncommon, Company: types.CompanySisterhood},
	{Name: "blazing", Type: types.PartBarrel, Rarity: types.RarityRare, Company: types.CompanySisterhood},
	{Name: "lament", Details: "lore: hear you calling like a siren singing", Type: types.PartBody, Rarity: types.RarityCommon, Company: types.CompanySisterhood},
	{Name: "crutch", Type: types.PartBody, Rarity: types.RarityUncommon, Company: types.CompanySisterhood},
	{Name: "devote", Details: "lore: godspeed, black emperor", Type: types.PartBody, Rarity: types.RarityRare, Company: types.CompanySisterhood},
	{Name: "<unnamed>", Type: types.PartMagazine, Rarity: types.RarityCommon, Company: types.CompanySisterhood},
	{Name: "<unnamed>", Type: types.PartStock, Rarity: types.RarityCommon, Company: types.CompanySisterhood},

	{Name: "core", Type: types.PartBarrel, Rarity: types.RarityCommon, Company: types.CompanyTheia},
	{Name: "devoid", Details: "lore: dont be afraid of the end of the world", Type: types.PartBarrel, Rarity: types.RarityUncommon, Company: types.CompanyTheia},
	{Name: "lagrange", Type: types.PartBarrel, Rarity: types.RarityRare, Company: types.CompanyTheia},
	{Name: "tyche", Type: types.PartBody, Rarity: types.RarityCommon, Company: types.CompanyTheia},
	{Name: "cloud", Details: "lore: thats a big damn cloud", Type: types.PartBody, Rarity: types.RarityUncommon, Company: types.CompanyTheia},
	{Name: "three-body", Type: types.PartBody, Rarity: types.RarityRare, Company: types.CompanyTheia},
	{Name: "<unnamed>", Type: types.PartMagazine, Rarity: types.RarityCommon, Company: types.CompanyTheia},
	{Name: "<unnamed>", Type: types.PartStock, Rarity: types.RarityCommon, Company: types.CompanyTheia},

	{Name: "dusted", Type: types.PartBarrel, Rarity: types.RarityCommon, Company: types.CompanyWestField},
	{Name: "catastrophic", Details: "lore: predestined to decay", Type: types.PartBarrel, Rarity: types.RarityUncommon, Company: types.CompanyWestField},
	{Name: "hushing", Type: types.PartBarrel, Rarity: types.RarityRare, Company: types.CompanyWestField},
	{Name: "reef", Type: types.PartBody, Rarity: types.RarityCommon, Company: types.CompanyWestField},
	{Name: "placer", Details: "lore: in one, out the other", Type: types.PartBody, Rarity: types.RarityUncommon, Company: types.CompanyWestField},
	{Name: "high-wall", Type: types.PartBody, Rarity: types.RarityRare, Company: types.CompanyWestField},
	{Name: "<unnamed>", Type: types.PartMagazine, Rarity: types.RarityCommon, Company: types.CompanyWestField},
	{Name: "<unnamed>", Type: types.PartStock, Rarity: types.RarityCommon, Company: types.CompanyWestField},
}

// SeedCatalog inserts the built-in damage curves and parts. Each table is
// seeded only while it is empty, so repeated calls leave the catalog as is.
// It reports whether anything was inserted.
func (b *Backend) SeedCatalog() (bool, error) {
	seeded := false

	err := b.write(func(tx *sql.Tx) error {
		var curves, parts int
		if err := tx.QueryRow("SELECT COUNT(*) FROM weapon_curves").Scan(&curves); err != nil {
			return fmt.Errorf("counting curves: %w", err)
		}
		if err := tx.QueryRow("SELECT COUNT(*) FROM weapon_parts").Scan(&parts); err != nil {
			return fmt.Errorf("counting parts: %w", err)
		}

		if curves == 0 {
			for _, c := range builtInCurves {
				_, err := tx.Exec(
					"INSERT INTO weapon_curves (name, type, a, b, c, d) VALUES (?, ?, ?, ?, ?, ?)",
					string(c.Type), string(c.Kind), c.A, c.B, c.C, c.D,
				)
				if err != nil {
					return fmt.Errorf("seeding curve %s: %w", c.Type, err)
				}
			}
			seeded = true
		}

		if parts == 0 {
			for _, p := range builtInParts {
				if err := insertPart(tx, p); err != nil {
					return err
				}
			}
			seeded = true
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}
