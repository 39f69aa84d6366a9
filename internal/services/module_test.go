package services

import (
	"errors"
	"testing"

	"github.com/saladbowl/saladbowl-backend/internal/catalog"
	"github.com/saladbowl/saladbowl-backend/internal/logger"
	"github.com/saladbowl/saladbowl-backend/internal/types"
)

func strPtr(s string) *string                        { return &s }
func intPtr(n int) *int                              { return &n }
func boolPtr(b bool) *bool                           { return &b }
func agePtr(a types.AgeLevel) *types.AgeLevel        { return &a }
func typePtr(c types.ContentType) *types.ContentType { return &c }

func moduleFixtureStore() catalog.Store {
	return catalog.NewMemoryStore([]types.Module{
		{ID: "m1", Title: "Box Breathing", DurationMinutes: 5, AgeLevel: types.AgeMiddle, ContentType: types.TypeQuickSkill, EnergyLevel: types.EnergyCalm, IsPublished: true},
	}, nil)
}

func TestCreateDraft(t *testing.T) {
	store := moduleFixtureStore()
	svc := NewModuleService(logger.Nop(), store)

	draft := svc.CreateDraft()
	if draft.ID == "" || draft.Title != "New Module" {
		t.Fatalf("draft = %+v", draft)
	}
	if draft.IsPublished {
		t.Fatal("draft must start unpublished")
	}
	if _, ok := store.Get(draft.ID); !ok {
		t.Fatal("draft not inserted into store")
	}
	if !draft.AgeLevel.Valid() || !draft.ContentType.Valid() || !draft.EnergyLevel.Valid() {
		t.Fatalf("draft defaults carry invalid enums: %+v", draft)
	}
}

func TestUpdateAppliesOnlySetFields(t *testing.T) {
	svc := NewModuleService(logger.Nop(), moduleFixtureStore())

	updated, err := svc.Update("m1", ModulePatch{
		Title:       strPtr("Square Breathing"),
		IsPublished: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Square Breathing" {
		t.Fatalf("title = %q", updated.Title)
	}
	if updated.IsPublished {
		t.Fatal("publish flag not applied")
	}
	if updated.DurationMinutes != 5 || updated.AgeLevel != types.AgeMiddle {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateValidation(t *testing.T) {
	svc := NewModuleService(logger.Nop(), moduleFixtureStore())

	cases := []struct {
		name  string
		patch ModulePatch
	}{
		{name: "bad_age", patch: ModulePatch{AgeLevel: agePtr("toddler")}},
		{name: "bad_type", patch: ModulePatch{ContentType: typePtr("webinar")}},
		{name: "zero_duration", patch: ModulePatch{DurationMinutes: intPtr(0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Update("m1", tc.patch)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
		})
	}
}

func TestUpdateAndDeleteUnknownModule(t *testing.T) {
	svc := NewModuleService(logger.Nop(), moduleFixtureStore())

	if _, err := svc.Update("ghost", ModulePatch{Title: strPtr("x")}); !errors.Is(err, ErrModuleNotFound) {
		t.Fatalf("Update error = %v", err)
	}
	if err := svc.Delete("ghost"); !errors.Is(err, ErrModuleNotFound) {
		t.Fatalf("Delete error = %v", err)
	}
}

func TestProgressComplete(t *testing.T) {
	store := moduleFixtureStore()
	svc := NewProgressService(logger.Nop(), store, catalog.NewMemoryProgressLog())

	record, err := svc.Complete("m1", "")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if record.GroupName != "Classroom" {
		t.Fatalf("group = %q, want default Classroom", record.GroupName)
	}
	if !record.Completed || record.TimeWatchedMinutes != 5 {
		t.Fatalf("record = %+v", record)
	}

	if _, err := svc.Complete("ghost", "Room 4"); !errors.Is(err, ErrModuleNotFound) {
		t.Fatalf("unknown module error = %v", err)
	}

	if got := len(svc.List()); got != 1 {
		t.Fatalf("List len = %d, want 1", got)
	}
}
