package ai_test

import (
	"strings"
	"testing"

	"nextstep/internal/ai"
	"nextstep/internal/model"
)

func TestBuildRecommendationPrompt(t *testing.T) {
	pref := model.Preference{
		AcademicInterests:       []string{"Computer Science"},
		PreferredCountries:      []string{"United States"},
		BudgetRange:             model.BudgetRange{Min: 0, Max: 50000},
		StudyLevel:              model.StudyLevelUndergraduate,
		PreferredUniversitySize: model.UniversitySizeAny,
	}

	prompt := ai.BuildRecommendationPrompt(pref)

	for _, want := range []string{"Computer Science", "United States", "50000", "undergraduate"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// The output contract's field names are load-bearing for the parser.
	for _, field := range []string{`"universities"`, `"summary"`, `"name"`, `"location"`, `"ranking"`, `"fitScore"`, `"reasons"`, `"tuitionRange"`, `"programs"`, `"website"`, `"imageUrl"`} {
		if !strings.Contains(prompt, field) {
			t.Errorf("prompt output contract missing field %s", field)
		}
	}

	if !strings.Contains(prompt, "5-10") {
		t.Errorf("prompt must request 5-10 entries")
	}
	if !strings.Contains(prompt, "Do not recommend the same university twice") {
		t.Errorf("prompt must forbid duplicate universities")
	}
	if !strings.Contains(prompt, "Test Scores: Not provided") {
		t.Errorf("absent test scores must render as Not provided")
	}
}

func TestBuildRecommendationPrompt_OptionalFields(t *testing.T) {
	sat := 1480
	ielts := 7.5
	pref := model.Preference{
		AcademicInterests:       []string{"Physics"},
		PreferredCountries:      []string{"Germany"},
		BudgetRange:             model.BudgetRange{Min: 5000, Max: 20000},
		StudyLevel:              model.StudyLevelGraduate,
		TestScores:              model.TestScores{SAT: &sat, IELTS: &ielts},
		PreferredUniversitySize: model.UniversitySizeMedium,
		AdditionalRequirements:  "Strong research labs and co-op options",
		PreferencesDescription:  "Prefers English-taught programs",
	}

	prompt := ai.BuildRecommendationPrompt(pref)

	if !strings.Contains(prompt, "SAT: 1480") {
		t.Errorf("SAT score missing")
	}
	if !strings.Contains(prompt, "IELTS: 7.5") {
		t.Errorf("IELTS score missing")
	}
	if !strings.Contains(prompt, pref.AdditionalRequirements) {
		t.Errorf("additional requirements missing")
	}
	if !strings.Contains(prompt, pref.PreferencesDescription) {
		t.Errorf("rolling preferences description missing")
	}
}

func TestBuildChatPrompt_FullContext(t *testing.T) {
	ranking := 12
	pref := &model.Preference{
		AcademicInterests:  []string{"Biology"},
		PreferredCountries: []string{"Canada"},
		BudgetRange:        model.BudgetRange{Min: 10000, Max: 40000},
		StudyLevel:         model.StudyLevelUndergraduate,
	}
	rec := &model.Recommendation{
		Universities: []model.University{{
			Name:         "UBC",
			Location:     model.Location{Country: "Canada", City: "Vancouver"},
			Ranking:      &ranking,
			FitScore:     88,
			Reasons:      "Top biology research.",
			Programs:     []string{"Biology", "Biochemistry"},
			TuitionRange: model.TuitionRange{Min: 30000, Max: 42000},
		}},
		AIResponse: strings.Repeat("long summary ", 100),
	}
	history := []model.ChatMessage{
		{Role: model.ChatRoleUser, Content: "Which coast is better for me?"},
		{Role: model.ChatRoleAssistant, Content: "The west coast fits your budget better."},
	}

	prompt := ai.BuildChatPrompt("Tell me more about UBC", pref, rec, history)

	for _, want := range []string{
		"UBC", "Vancouver", "88%", "Biology, Biochemistry",
		"Which coast is better for me?",
		"The west coast fits your budget better.",
		"Student: ", "Counselor: ",
		`"Tell me more about UBC"`,
		`{"update": true, "preferencesDescription":`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("chat prompt missing %q", want)
		}
	}

	// Prior summary is digested, not replayed in full.
	if strings.Contains(prompt, rec.AIResponse) {
		t.Errorf("full prior summary must be truncated")
	}
}

func TestBuildChatPrompt_NoContext(t *testing.T) {
	prompt := ai.BuildChatPrompt("What is a good SAT score?", nil, nil, nil)

	if !strings.Contains(prompt, "What is a good SAT score?") {
		t.Errorf("prompt missing the user message")
	}
	if strings.Contains(prompt, "Student's Preferences:") {
		t.Errorf("preference block must be omitted without preferences")
	}
	if strings.Contains(prompt, "Previously Recommended Universities:") {
		t.Errorf("recommendation digest must be omitted without recommendations")
	}
	if !strings.Contains(prompt, "politely decline") {
		t.Errorf("prompt must scope the assistant to university guidance")
	}
}

func TestBuildUniversityDetailsPrompt(t *testing.T) {
	prompt := ai.BuildUniversityDetailsPrompt("ETH Zurich")

	if !strings.Contains(prompt, "ETH Zurich") {
		t.Errorf("prompt missing the university name")
	}
	if !strings.Contains(prompt, "markdown") {
		t.Errorf("prompt must demand markdown output")
	}
}

func TestFormatTestScores(t *testing.T) {
	if got := ai.FormatTestScores(model.TestScores{}); got != "Not provided" {
		t.Errorf("empty scores: got %q", got)
	}

	sat, toefl, gre := 1500, 110, 330
	ielts := 8.0
	got := ai.FormatTestScores(model.TestScores{SAT: &sat, TOEFL: &toefl, IELTS: &ielts, GRE: &gre})
	want := "SAT: 1500, TOEFL: 110, IELTS: 8, GRE: 330"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
