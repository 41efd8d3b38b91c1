package server

// migrate runs database migrations
func (s *Server) migrate() error {
	migrations := []string{
		migrationUsers,
		migrationSessions,
		migrationEntries,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}

const migrationUsers = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    username VARCHAR(255) UNIQUE NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);
`

const migrationSessions = `
CREATE TABLE IF NOT EXISTS sessions (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL REFERENCES users(id),
    token VARCHAR(64) UNIQUE NOT NULL,
    expires_at TIMESTAMP NOT NULL,
    created_at TIMESTAMP DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_sessions_token ON sessions(token);
`

const migrationEntries = `
CREATE TABLE IF NOT EXISTS passport_entries (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL REFERENCES users(id),
    position INTEGER NOT NULL,
    country TEXT NOT NULL DEFAULT '',
    airport_name TEXT NOT NULL DEFAULT '',
    arrival_departure TEXT NOT NULL DEFAULT '',
    entry_date TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    is_manual BOOLEAN NOT NULL DEFAULT FALSE,
    confidence DOUBLE PRECISION,
    lat DOUBLE PRECISION NOT NULL DEFAULT 0,
    lng DOUBLE PRECISION NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_entries_user ON passport_entries(user_id);
CREATE INDEX IF NOT EXISTS idx_entries_user_position ON passport_entries(user_id, position);
`
