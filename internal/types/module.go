package types

// AgeLevel is the target age band for a module.
type AgeLevel string

const (
	AgeElementary AgeLevel = "elementary"
	AgeMiddle     AgeLevel = "middle"
	AgeHigh       AgeLevel = "high"
)

func (a AgeLevel) Valid() bool {
	switch a {
	case AgeElementary, AgeMiddle, AgeHigh:
		return true
	}
	return false
}

// ContentType classifies a module within the catalog.
type ContentType string

const (
	TypeQuickSkill     ContentType = "quick_skill"
	TypeSkillJourney   ContentType = "skill_journey"
	TypeCulturalMoment ContentType = "cultural_moment"
)

func (t ContentType) Valid() bool {
	switch t {
	case TypeQuickSkill, TypeSkillJourney, TypeCulturalMoment:
		return true
	}
	return false
}

// ContentTypes lists every content type in display order. GroupByType and the
// library payload iterate this instead of ranging over a map.
func ContentTypes() []ContentType {
	return []ContentType{TypeQuickSkill, TypeSkillJourney, TypeCulturalMoment}
}

type EnergyLevel string

const (
	EnergyCalm    EnergyLevel = "calm"
	EnergyFocused EnergyLevel = "focused"
	EnergyActive  EnergyLevel = "active"
)

func (e EnergyLevel) Valid() bool {
	switch e {
	case EnergyCalm, EnergyFocused, EnergyActive:
		return true
	}
	return false
}

// DurationBucket partitions modules by runtime: short is at most 15 minutes,
// long is everything above.
type DurationBucket string

const (
	DurationAll   DurationBucket = "all"
	DurationShort DurationBucket = "short"
	DurationLong  DurationBucket = "long"
)

const shortDurationCutoffMinutes = 15

func (d DurationBucket) Matches(durationMinutes int) bool {
	switch d {
	case DurationShort:
		return durationMinutes <= shortDurationCutoffMinutes
	case DurationLong:
		return durationMinutes > shortDurationCutoffMinutes
	default:
		return true
	}
}

// Module is one unit of wellness content in the catalog. Modules live in the
// in-process catalog, not the database; Published and Premium are independent
// flags (a draft can be premium).
type Module struct {
	ID               string      `json:"id" yaml:"id"`
	Title            string      `json:"title" yaml:"title"`
	Description      string      `json:"description" yaml:"description"`
	VideoURL         string      `json:"videoUrl" yaml:"videoUrl"`
	DurationMinutes  int         `json:"durationMinutes" yaml:"durationMinutes"`
	AgeLevel         AgeLevel    `json:"ageLevel" yaml:"ageLevel"`
	ContentType      ContentType `json:"contentType" yaml:"contentType"`
	CaselTags        []string    `json:"caselTags" yaml:"caselTags"`
	EnergyLevel      EnergyLevel `json:"energyLevel" yaml:"energyLevel"`
	LearningGoals    []string    `json:"learningGoals" yaml:"learningGoals"`
	ReflectionPrompt string      `json:"reflectionPrompt" yaml:"reflectionPrompt"`
	IsPublished      bool        `json:"isPublished" yaml:"isPublished"`
	IsPremium        bool        `json:"isPremium" yaml:"isPremium"`
}

// ModuleProjection is the compact shape of a module embedded in the
// recommendation prompt.
type ModuleProjection struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	CaselTags       []string    `json:"caselTags"`
	EnergyLevel     EnergyLevel `json:"energyLevel"`
	DurationMinutes int         `json:"durationMinutes"`
	ContentType     ContentType `json:"contentType"`
	Description     string      `json:"description"`
}

func (m *Module) Projection() ModuleProjection {
	return ModuleProjection{
		ID:              m.ID,
		Title:           m.Title,
		CaselTags:       m.CaselTags,
		EnergyLevel:     m.EnergyLevel,
		DurationMinutes: m.DurationMinutes,
		ContentType:     m.ContentType,
		Description:     m.Description,
	}
}

// Journey is an ordered sequence of modules presented as one program.
type Journey struct {
	ID               string   `json:"id" yaml:"id"`
	Title            string   `json:"title" yaml:"title"`
	Description      string   `json:"description" yaml:"description"`
	OrderedModuleIDs []string `json:"orderedModuleIds" yaml:"orderedModuleIds"`
}
