package sqlite

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/lumen/pkg/types"
)

// AddCharacter creates a character with every template stat set to zero.
// Returns ErrInvalidName for an empty name and ErrAlreadyExists if a
// character with that name exists.
func (b *Backend) AddCharacter(name string) error {
	if name == "" {
		return types.ErrInvalidName
	}

	return b.write(func(tx *sql.Tx) error {
		found, err := exists(tx, "SELECT 1 FROM characters WHERE name = ?", name)
		if err != nil {
			return fmt.Errorf("checking character %s: %w", name, err)
		}
		if found {
			return fmt.Errorf("%w: character %s", types.ErrAlreadyExists, name)
		}

		if _, err := tx.Exec("INSERT INTO characters (name) VALUES (?)", name); err != nil {
			return fmt.Errorf("inserting character %s: %w", name, err)
		}
		_, err = tx.Exec(
			"INSERT INTO stats (character, key, value) SELECT ?, key, 0 FROM template ORDER BY rowid",
			name,
		)
		if err != nil {
			return fmt.Errorf("initializing stats for %s: %w", name, err)
		}
		return nil
	})
}

// RemoveCharacter deletes a character and its stat values.
// Returns ErrNotFound if no character has that name.
func (b *Backend) RemoveCharacter(name string) error {
	return b.write(func(tx *sql.Tx) error {
		res, err := tx.Exec("DELETE FROM characters WHERE name = ?", name)
		if err != nil {
			return fmt.Errorf("deleting character %s: %w", name, err)
		}
		if err := affected(res, "character "+name); err != nil {
			return err
		}
		if _, err := tx.Exec("DELETE FROM stats WHERE character = ?", name); err != nil {
			return fmt.Errorf("deleting stats of %s: %w", name, err)
		}
		return nil
	})
}

// IncrementStat adds one to a character's stat.
func (b *Backend) IncrementStat(character, stat string) error {
	return b.updateStat(character, stat, "value + 1")
}

// DecrementStat subtracts one from a character's stat.
func (b *Backend) DecrementStat(character, stat string) error {
	return b.updateStat(character, stat, "value - 1")
}

// ToggleStat flips a character's stat between 0 and 1. Any non-zero value
// toggles to 0.
func (b *Backend) ToggleStat(character, stat string) error {
	return b.updateStat(character, stat, "CASE value WHEN 0 THEN 1 ELSE 0 END")
}

// updateStat applies expr to one stat value.
// Returns ErrNotFound if the character has no such stat.
func (b *Backend) updateStat(character, stat, expr string) error {
	return b.write(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			"UPDATE stats SET value = "+expr+" WHERE character = ? AND key = ?",
			character, stat,
		)
		if err != nil {
			return fmt.Errorf("updating %s of %s: %w", stat, character, err)
		}
		return affected(res, "stat "+stat+" of "+character)
	})
}

// Characters returns every character with its stat values, in creation
// order. Stat values are typed by the template: boolean stats become
// booleans, number stats numbers, and anything else a decimal string.
func (b *Backend) Characters() ([]types.Character, error) {
	characters := []types.Character{}

	err := b.read(func(db *sql.DB) error {
		rows, err := db.Query("SELECT name FROM characters ORDER BY rowid")
		if err != nil {
			return fmt.Errorf("querying characters: %w", err)
		}
		index := make(map[string]int)
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				rows.Close()
				return fmt.Errorf("scanning character: %w", err)
			}
			index[name] = len(characters)
			characters = append(characters, types.Character{Name: name, Stats: []types.CharacterStat{}})
		}
		if err := rows.Close(); err != nil {
			return err
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterating characters: %w", err)
		}

		// Stats are read after the character cursor is closed; the pool
		// holds a single connection.
		rows, err = db.Query(`SELECT s.character, s.key, COALESCE(t.type, ''), s.value
FROM stats s LEFT JOIN template t ON t.key = s.key
ORDER BY s.rowid`)
		if err != nil {
			return fmt.Errorf("querying stats: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var character, key, typ string
			var value int64
			if err := rows.Scan(&character, &key, &typ, &value); err != nil {
				return fmt.Errorf("scanning stat: %w", err)
			}
			i, ok := index[character]
			if !ok {
				continue
			}
			characters[i].Stats = append(characters[i].Stats, types.CharacterStat{
				Name:  key,
				Type:  types.StatType(typ),
				Value: statValue(types.StatType(typ), value),
			})
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return characters, nil
}

func statValue(t types.StatType, v int64) types.StatValue {
	switch t {
	case types.StatBoolean:
		return types.Bool(v != 0)
	case types.StatNumber:
		return types.Number(float64(v))
	default:
		return types.String(strconv.FormatInt(v, 10))
	}
}
