package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/lumen/pkg/types"
)

// AddStat adds a stat to the template and gives every character a zero
// value for it.
func (b *Backend) AddStat(name string, typ types.StatType) error {
	if name == "" {
		return types.ErrInvalidName
	}
	if _, err := types.ParseStatType(string(typ)); err != nil {
		return err
	}

	return b.write(func(tx *sql.Tx) error {
		found, err := exists(tx, "SELECT 1 FROM template WHERE key = ?", name)
		if err != nil {
			return fmt.Errorf("checking stat %s: %w", name, err)
		}
		if found {
			return fmt.Errorf("%w: stat %s", types.ErrAlreadyExists, name)
		}

		if _, err := tx.Exec("INSERT INTO template (key, type) VALUES (?, ?)", name, string(typ)); err != nil {
			return fmt.Errorf("inserting stat %s: %w", name, err)
		}
		_, err = tx.Exec(
			"INSERT INTO stats (character, key, value) SELECT name, ?, 0 FROM characters ORDER BY rowid",
			name,
		)
		if err != nil {
			return fmt.Errorf("initializing %s for characters: %w", name, err)
		}
		return nil
	})
}

// RemoveStat deletes a stat from the template and from every character.
// Returns ErrNotFound if the template has no such stat.
func (b *Backend) RemoveStat(name string) error {
	return b.write(func(tx *sql.Tx) error {
		res, err := tx.Exec("DELETE FROM template WHERE key = ?", name)
		if err != nil {
			return fmt.Errorf("deleting stat %s: %w", name, err)
		}
		if err := affected(res, "stat "+name); err != nil {
			return err
		}
		if _, err := tx.Exec("DELETE FROM stats WHERE key = ?", name); err != nil {
			return fmt.Errorf("deleting values of %s: %w", name, err)
		}
		return nil
	})
}

// Stats returns the stat template in creation order.
func (b *Backend) Stats() ([]types.Stat, error) {
	stats := []types.Stat{}

	err := b.read(func(db *sql.DB) error {
		rows, err := db.Query("SELECT key, type FROM template ORDER BY rowid")
		if err != nil {
			return fmt.Errorf("querying template: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var s types.Stat
			var typ string
			if err := rows.Scan(&s.Name, &typ); err != nil {
				return fmt.Errorf("scanning template: %w", err)
			}
			s.Type = types.StatType(typ)
			stats = append(stats, s)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
