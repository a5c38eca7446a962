package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func testScheme(name string) *Scheme {
	return &Scheme{
		ID:   uuid.NewString(),
		Name: name,
		Colors: []Color{
			{R: 1.0, G: 0.2, B: 0.1},
			{R: 0.9, G: 0.5, B: 0.0},
			{R: 0.8, G: 0.8, B: 0.2},
		},
	}
}

func TestSchemeRepository_CreateAndGet(t *testing.T) {
	s := testStore(t)
	repo := s.Schemes()

	sc := testScheme("ember")
	if err := repo.Create(sc); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(sc.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "ember" {
		t.Errorf("GetByID() name = %q, want %q", got.Name, "ember")
	}
	if len(got.Colors) != 3 {
		t.Fatalf("GetByID() returned %d colors, want 3", len(got.Colors))
	}
	if got.Colors[0] != (Color{R: 1.0, G: 0.2, B: 0.1}) {
		t.Errorf("GetByID() first color = %+v", got.Colors[0])
	}

	byName, err := repo.GetByName("ember")
	if err != nil {
		t.Fatalf("GetByName() error = %v", err)
	}
	if byName.ID != sc.ID {
		t.Errorf("GetByName() ID = %s, want %s", byName.ID, sc.ID)
	}
}

func TestSchemeRepository_EmptyColorsRejected(t *testing.T) {
	s := testStore(t)
	repo := s.Schemes()

	if err := repo.Create(&Scheme{ID: uuid.NewString(), Name: "empty"}); err == nil {
		t.Error("Create() with no colors should fail")
	}
}

func TestSchemeRepository_List(t *testing.T) {
	s := testStore(t)
	repo := s.Schemes()

	for _, name := range []string{"ember", "tide"} {
		if err := repo.Create(testScheme(name)); err != nil {
			t.Fatalf("Create(%s) error = %v", name, err)
		}
	}

	schemes, err := repo.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(schemes) != 2 {
		t.Errorf("List() returned %d schemes, want 2", len(schemes))
	}
	for _, sc := range schemes {
		if len(sc.Colors) == 0 {
			t.Errorf("List() scheme %s has no colors", sc.Name)
		}
	}
}

func TestSchemeRepository_Update(t *testing.T) {
	s := testStore(t)
	repo := s.Schemes()

	sc := testScheme("ember")
	if err := repo.Create(sc); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	sc.Colors = []Color{{R: 0, G: 0, B: 1}}
	if err := repo.Update(sc); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, _ := repo.GetByID(sc.ID)
	if len(got.Colors) != 1 || got.Colors[0].B != 1 {
		t.Errorf("Update() not persisted: %+v", got.Colors)
	}

	if err := repo.Update(testScheme("ghost")); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() on missing scheme err = %v, want ErrNotFound", err)
	}
}

func TestSchemeRepository_Delete(t *testing.T) {
	s := testStore(t)
	repo := s.Schemes()

	sc := testScheme("ember")
	if err := repo.Create(sc); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(sc.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByID(sc.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete err = %v, want ErrNotFound", err)
	}
}
