package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Monetary columns are stored as TEXT to preserve exact decimal values.
// Participant and share rows reference expenses by expense_name, not by id:
// the name is the natural key the API speaks.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS expenses (
    id TEXT PRIMARY KEY,
    expense_date TEXT NOT NULL,
    group_name TEXT NOT NULL,
    expense_name TEXT NOT NULL UNIQUE,
    total_amount TEXT NOT NULL,
    split_type TEXT NOT NULL,
    created_by TEXT NOT NULL REFERENCES users(name)
);

CREATE TABLE IF NOT EXISTS expense_user (
    expense_name TEXT NOT NULL,
    user_name TEXT NOT NULL,
    PRIMARY KEY (expense_name, user_name)
);

CREATE TABLE IF NOT EXISTS expense_share (
    expense_name TEXT NOT NULL,
    user_name TEXT NOT NULL,
    percentage TEXT NOT NULL,
    amount TEXT NOT NULL,
    PRIMARY KEY (expense_name, user_name)
);

CREATE INDEX IF NOT EXISTS idx_expense_user_user_name ON expense_user(user_name);
CREATE INDEX IF NOT EXISTS idx_expenses_created_by ON expenses(created_by);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
