package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Presets table - stores named simulation parameter sets
		`CREATE TABLE IF NOT EXISTS presets (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			max_count INTEGER NOT NULL,
			initial_count INTEGER NOT NULL,
			base_size REAL NOT NULL,
			create_rate REAL NOT NULL,
			destroy_rate REAL NOT NULL,
			attract_force REAL NOT NULL,
			repel_force REAL NOT NULL,
			spin_force REAL NOT NULL,
			friction REAL NOT NULL,
			max_speed REAL NOT NULL,
			color_scheme TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Schemes table - stores custom color palettes as JSON
		`CREATE TABLE IF NOT EXISTS schemes (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			colors TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - stores application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
