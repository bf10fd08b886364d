package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema. Safe to call once on a fresh database.
func (db *DB) RunMigrations() error {
	migration := `
-- Projects table
CREATE TABLE projects (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    logo_url TEXT,
    created_at TIMESTAMP NOT NULL
);

-- Collaborator directory (assignee suggestions)
CREATE TABLE collaborators (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL DEFAULT '',
    avatar_url TEXT
);

-- Sprints table
CREATE TABLE sprints (
    id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    name TEXT NOT NULL,
    start_date TIMESTAMP NOT NULL,
    end_date TIMESTAMP NOT NULL,
    is_active INTEGER NOT NULL DEFAULT 1,
    FOREIGN KEY (project_id) REFERENCES projects(id)
);
CREATE INDEX idx_project_sprints ON sprints(project_id);

-- Issues table. sprint_id and parent_issue_id are deliberately not
-- foreign keys: a reference to a deleted sprint or parent must survive
-- and is neutralized at read time, not rejected at write time.
CREATE TABLE issues (
    id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    sprint_id TEXT,
    program_component TEXT NOT NULL DEFAULT '',
    sub_components TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL,
    long_description TEXT NOT NULL DEFAULT '',
    type TEXT NOT NULL,
    category TEXT NOT NULL,
    status TEXT NOT NULL CHECK(status IN ('Open', 'Blocked', 'In Progress', 'Testing', 'Finished', 'Archived')),
    priority TEXT NOT NULL,
    responsible_users TEXT NOT NULL DEFAULT '',
    parent_issue_id TEXT,
    created_at TIMESTAMP NOT NULL,
    FOREIGN KEY (project_id) REFERENCES projects(id)
);
CREATE INDEX idx_project_issues ON issues(project_id);
CREATE INDEX idx_sprint_issues ON issues(sprint_id);
CREATE INDEX idx_parent_issues ON issues(parent_issue_id);
CREATE INDEX idx_issue_status ON issues(status);

-- Audit log. Append-only; no foreign key so entries outlive their issue.
CREATE TABLE issue_logs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    issue_id TEXT NOT NULL,
    actor TEXT NOT NULL DEFAULT 'System',
    action TEXT NOT NULL,
    field TEXT NOT NULL DEFAULT '',
    old_value TEXT NOT NULL DEFAULT '',
    new_value TEXT NOT NULL DEFAULT '',
    details TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX idx_issue_logs ON issue_logs(issue_id);

-- Full-text search (SQLite FTS5)
CREATE VIRTUAL TABLE issues_fts USING fts5(
    description,
    long_description,
    responsible_users,
    content='issues',
    content_rowid='rowid'
);

-- Triggers to keep FTS index synchronized
CREATE TRIGGER issues_ai AFTER INSERT ON issues BEGIN
    INSERT INTO issues_fts(rowid, description, long_description, responsible_users)
    VALUES (new.rowid, new.description, new.long_description, new.responsible_users);
END;

CREATE TRIGGER issues_ad AFTER DELETE ON issues BEGIN
    DELETE FROM issues_fts WHERE rowid = old.rowid;
END;

CREATE TRIGGER issues_au AFTER UPDATE ON issues BEGIN
    INSERT INTO issues_fts(issues_fts, rowid, description, long_description, responsible_users)
    VALUES('delete', old.rowid, old.description, old.long_description, old.responsible_users);
    INSERT INTO issues_fts(rowid, description, long_description, responsible_users)
    VALUES (new.rowid, new.description, new.long_description, new.responsible_users);
END;
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
