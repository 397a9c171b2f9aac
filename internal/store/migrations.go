package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Settings table - small key-value pairs, including the high score
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Scores table - one row per finished game
		`CREATE TABLE IF NOT EXISTS scores (
			id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			snake_length INTEGER NOT NULL DEFAULT 0,
			wrap_mode INTEGER NOT NULL DEFAULT 1,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			played_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_scores_played_at ON scores(played_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
