package catalog

import (
	"testing"

	"github.com/saladbowl/saladbowl-backend/internal/types"
)

func TestMemoryStoreCRUD(t *testing.T) {
	store := NewMemoryStore(testModules(), []types.Journey{
		{ID: "j1", Title: "Pilot", OrderedModuleIDs: []string{"m1", "m2"}},
	})

	if got := len(store.Modules()); got != 5 {
		t.Fatalf("Modules() len = %d, want 5", got)
	}

	m, ok := store.Get("m2")
	if !ok || m.Title != "Focus Reset" {
		t.Fatalf("Get(m2) = %+v, %v", m, ok)
	}
	if _, ok := store.Get("nope"); ok {
		t.Fatal("Get(nope) should miss")
	}

	store.Insert(types.Module{ID: "m9", Title: "New"})
	if _, ok := store.Get("m9"); !ok {
		t.Fatal("inserted module not found")
	}

	if !store.Update("m9", func(m *types.Module) { m.Title = "Renamed" }) {
		t.Fatal("Update(m9) reported miss")
	}
	if m, _ := store.Get("m9"); m.Title != "Renamed" {
		t.Fatalf("update not applied: %+v", m)
	}
	if store.Update("nope", func(m *types.Module) {}) {
		t.Fatal("Update(nope) should miss")
	}

	if !store.Delete("m9") {
		t.Fatal("Delete(m9) reported miss")
	}
	if _, ok := store.Get("m9"); ok {
		t.Fatal("deleted module still present")
	}
	if store.Delete("m9") {
		t.Fatal("second Delete(m9) should miss")
	}

	journeys := store.Journeys()
	if len(journeys) != 1 || journeys[0].ID != "j1" {
		t.Fatalf("Journeys() = %+v", journeys)
	}
}

func TestMemoryStoreSnapshotsAreCopies(t *testing.T) {
	store := NewMemoryStore(testModules(), nil)
	snap := store.Modules()
	snap[0].Title = "clobbered"
	if m, _ := store.Get(snap[0].ID); m.Title == "clobbered" {
		t.Fatal("Modules() snapshot aliases store memory")
	}
}

func TestMemoryProgressLogAppend(t *testing.T) {
	log := NewMemoryProgressLog()

	rec := log.Append(types.Progress{ModuleID: "m1", GroupName: "Room 4", Completed: true, TimeWatchedMinutes: 30})
	if rec.ID == "" {
		t.Fatal("Append did not assign an id")
	}
	if rec.CreatedAt.IsZero() {
		t.Fatal("Append did not stamp CreatedAt")
	}

	records := log.List()
	if len(records) != 1 || records[0].ModuleID != "m1" || records[0].TimeWatchedMinutes != 30 {
		t.Fatalf("List() = %+v", records)
	}
}

func TestSeedCatalogIsInternallyConsistent(t *testing.T) {
	modules := SeedModules()
	if len(modules) == 0 {
		t.Fatal("seed catalog is empty")
	}

	seen := map[string]bool{}
	for _, m := range modules {
		if seen[m.ID] {
			t.Fatalf("duplicate seed module id %q", m.ID)
		}
		seen[m.ID] = true
		if !m.AgeLevel.Valid() || !m.ContentType.Valid() || !m.EnergyLevel.Valid() {
			t.Fatalf("seed module %q carries an invalid enum", m.ID)
		}
		if m.DurationMinutes <= 0 {
			t.Fatalf("seed module %q has non-positive duration", m.ID)
		}
	}
	for _, j := range SeedJourneys() {
		for _, id := range j.OrderedModuleIDs {
			if !seen[id] {
				t.Fatalf("journey %q references unknown module %q", j.ID, id)
			}
		}
	}
}
