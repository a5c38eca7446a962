package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Preset represents a named set of simulation parameters stored in the
// database.
type Preset struct {
	ID           string
	Name         string
	MaxCount     int
	InitialCount int
	BaseSize     float64
	CreateRate   float64
	DestroyRate  float64
	AttractForce float64
	RepelForce   float64
	SpinForce    float64
	Friction     float64
	MaxSpeed     float64
	ColorScheme  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PresetRepository provides CRUD operations for presets.
type PresetRepository struct {
	db *sql.DB
}

// Presets returns the preset repository for this store.
func (s *Store) Presets() *PresetRepository {
	return &PresetRepository{db: s.db}
}

const presetColumns = `id, name, max_count, initial_count, base_size, create_rate,
	destroy_rate, attract_force, repel_force, spin_force, friction, max_speed,
	color_scheme, created_at, updated_at`

func scanPreset(row interface{ Scan(dest ...any) error }) (*Preset, error) {
	p := &Preset{}
	err := row.Scan(
		&p.ID, &p.Name, &p.MaxCount, &p.InitialCount, &p.BaseSize, &p.CreateRate,
		&p.DestroyRate, &p.AttractForce, &p.RepelForce, &p.SpinForce, &p.Friction,
		&p.MaxSpeed, &p.ColorScheme, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create inserts a new preset into the database.
func (r *PresetRepository) Create(p *Preset) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.db.Exec(
		`INSERT INTO presets (`+presetColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.MaxCount, p.InitialCount, p.BaseSize, p.CreateRate,
		p.DestroyRate, p.AttractForce, p.RepelForce, p.SpinForce, p.Friction,
		p.MaxSpeed, p.ColorScheme, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a preset by its ID.
func (r *PresetRepository) GetByID(id string) (*Preset, error) {
	row := r.db.QueryRow(`SELECT `+presetColumns+` FROM presets WHERE id = ?`, id)
	return scanPreset(row)
}

// GetByName retrieves a preset by its name.
func (r *PresetRepository) GetByName(name string) (*Preset, error) {
	row := r.db.QueryRow(`SELECT `+presetColumns+` FROM presets WHERE name = ?`, name)
	return scanPreset(row)
}

// List retrieves all presets from the database.
func (r *PresetRepository) List() ([]*Preset, error) {
	rows, err := r.db.Query(`SELECT ` + presetColumns + ` FROM presets ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []*Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return presets, nil
}

// Update updates an existing preset in the database.
func (r *PresetRepository) Update(p *Preset) error {
	p.UpdatedAt = time.Now()

	result, err := r.db.Exec(
		`UPDATE presets SET name = ?, max_count = ?, initial_count = ?, base_size = ?,
		 create_rate = ?, destroy_rate = ?, attract_force = ?, repel_force = ?,
		 spin_force = ?, friction = ?, max_speed = ?, color_scheme = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, p.MaxCount, p.InitialCount, p.BaseSize, p.CreateRate, p.DestroyRate,
		p.AttractForce, p.RepelForce, p.SpinForce, p.Friction, p.MaxSpeed,
		p.ColorScheme, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a preset from the database by its ID.
func (r *PresetRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM presets WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
