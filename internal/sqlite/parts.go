package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/lumen/pkg/types"
)

// AddPart appends a part to the catalog after checking its slot, rarity
// and company.
func (b *Backend) AddPart(p types.Part) error {
	if p.Name == "" {
		return types.ErrInvalidName
	}
	if _, err := types.ParsePartType(string(p.Type)); err != nil {
		return err
	}
	if _, err := types.ParseRarity(string(p.Rarity)); err != nil {
		return err
	}
	if _, err := types.ParseCompany(string(p.Company)); err != nil {
		return err
	}

	return b.write(func(tx *sql.Tx) error {
		return insertPart(tx, p)
	})
}

func insertPart(tx *sql.Tx, p types.Part) error {
	_, err := tx.Exec(
		"INSERT INTO weapon_parts (name, details, type, rarity, company) VALUES (?, ?, ?, ?, ?)",
		p.Name, p.Details, string(p.Type), string(p.Rarity), string(p.Company),
	)
	if err != nil {
		return fmt.Errorf("inserting part %s: %w", p.Name, err)
	}
	return nil
}

// RemovePart deletes every part with the given name.
// Returns ErrNotFound if none matched.
func (b *Backend) RemovePart(name string) error {
	return b.write(func(tx *sql.Tx) error {
		res, err := tx.Exec("DELETE FROM weapon_parts WHERE name = ?", name)
		if err != nil {
			return fmt.Errorf("deleting part %s: %w", name, err)
		}
		return affected(res, "part "+name)
	})
}

// Parts returns the part catalog in insertion order. A part's position in
// the result is the index weapon ids use.
func (b *Backend) Parts() ([]types.Part, error) {
	parts := []types.Part{}

	err := b.read(func(db *sql.DB) error {
		rows, err := db.Query("SELECT name, details, type, rarity, company FROM weapon_parts ORDER BY rowid")
		if err != nil {
			return fmt.Errorf("querying parts: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var p types.Part
			var typ, rarity, company string
			if err := rows.Scan(&p.Name, &p.Details, &typ, &rarity, &company); err != nil {
				return fmt.Errorf("scanning part: %w", err)
			}
			p.Type = types.PartType(typ)
			p.Rarity = types.Rarity(rarity)
			p.Company = types.Company(company)
			parts = append(parts, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return parts, nil
}

// Curves returns the weapon damage curves.
func (b *Backend) Curves() ([]types.WeaponCurve, error) {
	curves := []types.WeaponCurve{}

	err := b.read(func(db *sql.DB) error {
		rows, err := db.Query("SELECT name, type, a, b, c, d FROM weapon_curves ORDER BY rowid")
		if err != nil {
			return fmt.Errorf("querying curves: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var c types.WeaponCurve
			var name, kind string
			if err := rows.Scan(&name, &kind, &c.A, &c.B, &c.C, &c.D); err != nil {
				return fmt.Errorf("scanning curve: %w", err)
			}
			if c.Type, err = types.ParseWeaponType(name); err != nil {
				return err
			}
			if c.Kind, err = types.ParseCurveKind(kind); err != nil {
				return err
			}
			curves = append(curves, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return curves, nil
}
