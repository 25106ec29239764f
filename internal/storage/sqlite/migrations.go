package sqlite

import "database/sql"

// Collection tables. Each holds JSON documents addressed by id; scans go
// through JSON1 json_extract, so no per-field columns are needed.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    body TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    body TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS bills (
    id TEXT PRIMARY KEY,
    body TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS splits (
    id TEXT PRIMARY KEY,
    body TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS payments (
    id TEXT PRIMARY KEY,
    body TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS vendors (
    id TEXT PRIMARY KEY,
    body TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_users_email ON users(json_extract(body, '$.email'));
CREATE INDEX IF NOT EXISTS idx_bills_session_id ON bills(json_extract(body, '$.session_id'));
CREATE INDEX IF NOT EXISTS idx_splits_bill_id ON splits(json_extract(body, '$.bill_id'));
CREATE INDEX IF NOT EXISTS idx_payments_session_id ON payments(json_extract(body, '$.session_id'));
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
