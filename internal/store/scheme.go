package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Color is a single palette entry with channels in [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Scheme represents a custom color palette stored in the database.
type Scheme struct {
	ID        string
	Name      string
	Colors    []Color
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SchemeRepository provides CRUD operations for color schemes.
type SchemeRepository struct {
	db *sql.DB
}

// Schemes returns the scheme repository for this store.
func (s *Store) Schemes() *SchemeRepository {
	return &SchemeRepository{db: s.db}
}

// Create inserts a new color scheme into the database.
func (r *SchemeRepository) Create(sc *Scheme) error {
	if len(sc.Colors) == 0 {
		return fmt.Errorf("scheme %q has no colors", sc.Name)
	}

	colors, err := json.Marshal(sc.Colors)
	if err != nil {
		return fmt.Errorf("failed to encode colors: %w", err)
	}

	now := time.Now()
	sc.CreatedAt = now
	sc.UpdatedAt = now

	_, err = r.db.Exec(
		`INSERT INTO schemes (id, name, colors, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		sc.ID, sc.Name, string(colors), sc.CreatedAt, sc.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a color scheme by its ID.
func (r *SchemeRepository) GetByID(id string) (*Scheme, error) {
	return r.get(`SELECT id, name, colors, created_at, updated_at FROM schemes WHERE id = ?`, id)
}

// GetByName retrieves a color scheme by its name.
func (r *SchemeRepository) GetByName(name string) (*Scheme, error) {
	return r.get(`SELECT id, name, colors, created_at, updated_at FROM schemes WHERE name = ?`, name)
}

func (r *SchemeRepository) get(query string, arg any) (*Scheme, error) {
	sc := &Scheme{}
	var colors string

	err := r.db.QueryRow(query, arg).Scan(&sc.ID, &sc.Name, &colors, &sc.CreatedAt, &sc.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal([]byte(colors), &sc.Colors); err != nil {
		return nil, fmt.Errorf("failed to decode colors for %s: %w", sc.ID, err)
	}

	return sc, nil
}

// List retrieves all color schemes from the database.
func (r *SchemeRepository) List() ([]*Scheme, error) {
	rows, err := r.db.Query(
		`SELECT id, name, colors, created_at, updated_at FROM schemes ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schemes []*Scheme
	for rows.Next() {
		sc := &Scheme{}
		var colors string

		if err := rows.Scan(&sc.ID, &sc.Name, &colors, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(colors), &sc.Colors); err != nil {
			return nil, fmt.Errorf("failed to decode colors for %s: %w", sc.ID, err)
		}

		schemes = append(schemes, sc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schemes, nil
}

// Update updates an existing color scheme in the database.
func (r *SchemeRepository) Update(sc *Scheme) error {
	if len(sc.Colors) == 0 {
		return fmt.Errorf("scheme %q has no colors", sc.Name)
	}

	colors, err := json.Marshal(sc.Colors)
	if err != nil {
		return fmt.Errorf("failed to encode colors: %w", err)
	}

	sc.UpdatedAt = time.Now()

	result, err := r.db.Exec(
		`UPDATE schemes SET name = ?, colors = ?, updated_at = ? WHERE id = ?`,
		sc.Name, string(colors), sc.UpdatedAt, sc.ID,
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

// Delete removes a color scheme from the database by its ID.
func (r *SchemeRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM schemes WHERE id = ?`, id)
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
