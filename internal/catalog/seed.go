package catalog

import "github.com/saladbowl/saladbowl-backend/internal/types"

// SeedModules is the launch catalog: the Winter Wellbeing Pilot journey plus
// quick skills and cultural moments.
func SeedModules() []types.Module {
	return []types.Module{
		{
			ID:               "m1",
			Title:            "Winter Yoga: Stillness & Breath",
			Description:      "A 30-minute guided yoga session focused on stillness and breath awareness. Perfect for calming winter energy and centering before a school day.",
			VideoURL:         "https://www.youtube.com/embed/v7AYKMP6rOE",
			DurationMinutes:  30,
			AgeLevel:         types.AgeMiddle,
			ContentType:      types.TypeSkillJourney,
			CaselTags:        []string{"Self-Management", "Self-Awareness"},
			EnergyLevel:      types.EnergyCalm,
			LearningGoals:    []string{"Develop breath awareness", "Practice body stillness", "Build self-regulation skills"},
			ReflectionPrompt: "What did you notice about your breathing during this practice?",
			IsPublished:      true,
		},
		{
			ID:               "m2",
			Title:            "Winter Yoga: Grounding Flow",
			Description:      "A grounding yoga flow to reconnect with the present moment and release tension held in the body during winter months.",
			VideoURL:         "https://www.youtube.com/embed/4pKly2JojMw",
			DurationMinutes:  30,
			AgeLevel:         types.AgeMiddle,
			ContentType:      types.TypeSkillJourney,
			CaselTags:        []string{"Self-Management", "Self-Awareness"},
			EnergyLevel:      types.EnergyCalm,
			LearningGoals:    []string{"Practice grounding postures", "Release physical tension", "Strengthen body awareness"},
			ReflectionPrompt: "Where did you feel the most tension leaving your body?",
			IsPublished:      true,
		},
		{
			ID:               "m3",
			Title:            "Winter Yoga: Restorative Rest",
			Description:      "A restorative session emphasizing rest and recovery, using supportive poses to cultivate inner quiet and emotional regulation.",
			VideoURL:         "https://www.youtube.com/embed/BiWDsfZ3zbo",
			DurationMinutes:  30,
			AgeLevel:         types.AgeHigh,
			ContentType:      types.TypeSkillJourney,
			CaselTags:        []string{"Self-Management", "Self-Awareness"},
			EnergyLevel:      types.EnergyCalm,
			LearningGoals:    []string{"Explore restorative postures", "Cultivate stillness", "Practice emotional awareness"},
			ReflectionPrompt: "How did resting in stillness feel? What emotions came up?",
			IsPublished:      true,
		},
		{
			ID:               "m4",
			Title:            "Winter Yoga: Mindful Movement",
			Description:      "The final session of the Winter Wellbeing Pilot - a mindful movement flow to integrate learning and close with intention.",
			VideoURL:         "https://www.youtube.com/embed/9kOo_0SHqNw",
			DurationMinutes:  30,
			AgeLevel:         types.AgeElementary,
			ContentType:      types.TypeSkillJourney,
			CaselTags:        []string{"Self-Management", "Self-Awareness"},
			EnergyLevel:      types.EnergyCalm,
			LearningGoals:    []string{"Connect movement with breath", "Practice mindful transitions", "Integrate self-awareness tools"},
			ReflectionPrompt: "What is one thing you will carry from this practice into your week?",
			IsPublished:      true,
		},
		{
			ID:               "m5",
			Title:            "5-Minute Focus Reset",
			Description:      "A quick skill to restore focus and calm between classes. Uses breath and grounding to transition your nervous system.",
			VideoURL:         "https://www.youtube.com/embed/inpok4MKVLM",
			DurationMinutes:  5,
			AgeLevel:         types.AgeMiddle,
			ContentType:      types.TypeQuickSkill,
			CaselTags:        []string{"Self-Management"},
			EnergyLevel:      types.EnergyFocused,
			LearningGoals:    []string{"Reset focus quickly", "Practice brief breath exercises", "Use body awareness for transitions"},
			ReflectionPrompt: "How focused do you feel now compared to before?",
			IsPublished:      true,
		},
		{
			ID:               "m6",
			Title:            "Shaking It Out: Energy Release",
			Description:      "A quick, energizing movement break to shake off excess energy and return to productive focus.",
			VideoURL:         "https://www.youtube.com/embed/a31QLHPW8Q0",
			DurationMinutes:  8,
			AgeLevel:         types.AgeElementary,
			ContentType:      types.TypeQuickSkill,
			CaselTags:        []string{"Self-Management", "Social Awareness"},
			EnergyLevel:      types.EnergyActive,
			LearningGoals:    []string{"Release excess energy mindfully", "Practice body regulation", "Build community through movement"},
			ReflectionPrompt: "How does your body feel after shaking it out?",
			IsPublished:      true,
		},
		{
			ID:               "m7",
			Title:            "The Talking Circle: Indigenous Listening",
			Description:      "Explore the tradition of talking circles as a cultural practice of deep listening and respectful dialogue.",
			VideoURL:         "https://www.youtube.com/embed/placeholder",
			DurationMinutes:  20,
			AgeLevel:         types.AgeHigh,
			ContentType:      types.TypeCulturalMoment,
			CaselTags:        []string{"Social Awareness", "Relationship Skills"},
			EnergyLevel:      types.EnergyCalm,
			LearningGoals:    []string{"Learn about talking circle traditions", "Practice deep listening", "Honor Indigenous communication practices"},
			ReflectionPrompt: "What would change in your school if you used talking circles regularly?",
			IsPublished:      true,
			IsPremium:        true,
		},
		{
			ID:               "m8",
			Title:            "Ubuntu: I Am Because We Are",
			Description:      "A cultural exploration of the Ubuntu philosophy from Southern Africa and its applications in building community in schools.",
			VideoURL:         "https://www.youtube.com/embed/placeholder",
			DurationMinutes:  15,
			AgeLevel:         types.AgeMiddle,
			ContentType:      types.TypeCulturalMoment,
			CaselTags:        []string{"Social Awareness", "Relationship Skills", "Responsible Decision-Making"},
			EnergyLevel:      types.EnergyFocused,
			LearningGoals:    []string{"Understand Ubuntu philosophy", "Apply communal thinking to daily life", "Reflect on interdependence"},
			ReflectionPrompt: "How does Ubuntu change the way you think about your actions?",
			IsPublished:      true,
			IsPremium:        true,
		},
	}
}

func SeedJourneys() []types.Journey {
	return []types.Journey{
		{
			ID:               "j1",
			Title:            "Winter Wellbeing Pilot",
			Description:      "A 4-session yoga journey to cultivate calm, self-awareness, and grounded presence through the winter months.",
			OrderedModuleIDs: []string{"m1", "m2", "m3", "m4"},
		},
	}
}
