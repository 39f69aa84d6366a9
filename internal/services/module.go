package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/saladbowl/saladbowl-backend/internal/catalog"
	"github.com/saladbowl/saladbowl-backend/internal/logger"
	"github.com/saladbowl/saladbowl-backend/internal/types"
)

// ErrModuleNotFound is returned when an id resolves to no catalog module.
var ErrModuleNotFound = errors.New("module not found")

// ModulePatch carries the editable module fields; nil means leave unchanged.
type ModulePatch struct {
	Title            *string            `json:"title"`
	Description      *string            `json:"description"`
	VideoURL         *string            `json:"videoUrl"`
	DurationMinutes  *int               `json:"durationMinutes"`
	AgeLevel         *types.AgeLevel    `json:"ageLevel"`
	ContentType      *types.ContentType `json:"contentType"`
	CaselTags        *[]string          `json:"caselTags"`
	EnergyLevel      *types.EnergyLevel `json:"energyLevel"`
	LearningGoals    *[]string          `json:"learningGoals"`
	ReflectionPrompt *string            `json:"reflectionPrompt"`
	IsPublished      *bool              `json:"isPublished"`
	IsPremium        *bool              `json:"isPremium"`
}

// ModuleService is the admin surface over the catalog: create drafts, edit,
// toggle flags, delete. Modules have no versioning; deletion is removal.
type ModuleService interface {
	CreateDraft() types.Module
	Update(id string, patch ModulePatch) (types.Module, error)
	Delete(id string) error
}

type moduleService struct {
	log   *logger.Logger
	store catalog.Store
}

func NewModuleService(log *logger.Logger, store catalog.Store) ModuleService {
	return &moduleService{
		log:   log.With("service", "ModuleService"),
		store: store,
	}
}

// CreateDraft inserts an unpublished placeholder for the admin to edit.
func (ms *moduleService) CreateDraft() types.Module {
	m := types.Module{
		ID:              "m" + uuid.NewString(),
		Title:           "New Module",
		Description:     "Edit this description.",
		DurationMinutes: 30,
		AgeLevel:        types.AgeMiddle,
		ContentType:     types.TypeQuickSkill,
		CaselTags:       []string{},
		EnergyLevel:     types.EnergyCalm,
		LearningGoals:   []string{},
	}
	ms.store.Insert(m)
	return m
}

func (patch ModulePatch) validate() error {
	if patch.AgeLevel != nil && !patch.AgeLevel.Valid() {
		return &ValidationError{Msg: fmt.Sprintf("invalid ageLevel %q", *patch.AgeLevel)}
	}
	if patch.ContentType != nil && !patch.ContentType.Valid() {
		return &ValidationError{Msg: fmt.Sprintf("invalid contentType %q", *patch.ContentType)}
	}
	if patch.EnergyLevel != nil && !patch.EnergyLevel.Valid() {
		return &ValidationError{Msg: fmt.Sprintf("invalid energyLevel %q", *patch.EnergyLevel)}
	}
	if patch.DurationMinutes != nil && *patch.DurationMinutes <= 0 {
		return &ValidationError{Msg: "durationMinutes must be positive"}
	}
	return nil
}

func (ms *moduleService) Update(id string, patch ModulePatch) (types.Module, error) {
	if err := patch.validate(); err != nil {
		return types.Module{}, err
	}
	ok := ms.store.Update(id, func(m *types.Module) {
		if patch.Title != nil {
			m.Title = *patch.Title
		}
		if patch.Description != nil {
			m.Description = *patch.Description
		}
		if patch.VideoURL != nil {
			m.VideoURL = *patch.VideoURL
		}
		if patch.DurationMinutes != nil {
			m.DurationMinutes = *patch.DurationMinutes
		}
		if patch.AgeLevel != nil {
			m.AgeLevel = *patch.AgeLevel
		}
		if patch.ContentType != nil {
			m.ContentType = *patch.ContentType
		}
		if patch.CaselTags != nil {
			m.CaselTags = *patch.CaselTags
		}
		if patch.EnergyLevel != nil {
			m.EnergyLevel = *patch.EnergyLevel
		}
		if patch.LearningGoals != nil {
			m.LearningGoals = *patch.LearningGoals
		}
		if patch.ReflectionPrompt != nil {
			m.ReflectionPrompt = *patch.ReflectionPrompt
		}
		if patch.IsPublished != nil {
			m.IsPublished = *patch.IsPublished
		}
		if patch.IsPremium != nil {
			m.IsPremium = *patch.IsPremium
		}
	})
	if !ok {
		return types.Module{}, fmt.Errorf("%w: %q", ErrModuleNotFound, id)
	}
	m, _ := ms.store.Get(id)
	return m, nil
}

func (ms *moduleService) Delete(id string) error {
	if !ms.store.Delete(id) {
		return fmt.Errorf("%w: %q", ErrModuleNotFound, id)
	}
	return nil
}
