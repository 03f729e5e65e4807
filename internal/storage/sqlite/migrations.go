package sqlite

import "database/sql"

// schema sets up the friends table.
// seq preserves insertion order; id is the friend's public identifier.
// Balances are stored as decimal text to keep amounts exact.
const schema = `
CREATE TABLE IF NOT EXISTS friends (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id INTEGER NOT NULL UNIQUE,
    name TEXT NOT NULL,
    image TEXT NOT NULL,
    balance TEXT NOT NULL DEFAULT '0'
);

CREATE INDEX IF NOT EXISTS idx_friends_id ON friends(id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
