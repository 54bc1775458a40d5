package sqlite

// Schema DDL. Tables keep insertion order through rowid; part positions in
// that order are the indexes weapon ids refer to.
const (
	createCharacters = `CREATE TABLE IF NOT EXISTS characters (
    name TEXT NOT NULL
);`

	createTemplate = `CREATE TABLE IF NOT EXISTS template (
    key TEXT NOT NULL,
    type TEXT NOT NULL
);`

	createStats = `CREATE TABLE IF NOT EXISTS stats (
    character TEXT NOT NULL,
    key TEXT NOT NULL,
    value INTEGER NOT NULL
);`

	createWeaponCurves = `CREATE TABLE IF NOT EXISTS weapon_curves (
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    a REAL NOT NULL,
    b REAL NOT NULL,
    c REAL NOT NULL,
    d REAL NOT NULL
);`

	createWeaponParts = `CREATE TABLE IF NOT EXISTS weapon_parts (
    name TEXT NOT NULL,
    details TEXT NOT NULL,
    type TEXT NOT NULL,
    rarity TEXT NOT NULL,
    company TEXT NOT NULL
);`
)

// Index DDL for the lookups every mutation performs.
const (
	idxStatsCharacterKey = `CREATE INDEX IF NOT EXISTS idx_stats_character_key ON stats(character, key);`
	idxTemplateKey       = `CREATE INDEX IF NOT EXISTS idx_template_key ON template(key);`
	idxCharactersName    = `CREATE INDEX IF NOT EXISTS idx_characters_name ON characters(name);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createCharacters,
	createTemplate,
	createStats,
	createWeaponCurves,
	createWeaponParts,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxStatsCharacterKey,
	idxTemplateKey,
	idxCharactersName,
}
