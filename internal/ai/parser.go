package ai

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"nextstep/internal/model"
)

const (
	// StockImageURL is the placeholder campus photo used when the model
	// omits an image or the field is empty.
	StockImageURL = "https://images.unsplash.com/photo-1562774053-701939374585?w=400&h=300&fit=crop&crop=center"

	defaultFitScore = 70
	defaultReasons  = "Good fit for your preferences"
	unknownName     = "Unknown University"
	unknownPlace    = "Unknown"
)

// RecommendationResult is the structured outcome of parsing a raw model
// reply. Universities is always non-nil and Summary is always non-empty for
// non-empty input, so callers never need to nil-check.
type RecommendationResult struct {
	Universities []model.University
	Summary      string
}

// PreferenceUpdate is a preference-change directive the model embedded in a
// chat reply.
type PreferenceUpdate struct {
	PreferencesDescription string
}

// rawUniversity mirrors the JSON contract of the recommendation prompt.
// Pointer fields distinguish absent from zero for defaulting.
type rawUniversity struct {
	Name     string `json:"name"`
	Location struct {
		Country string `json:"country"`
		City    string `json:"city"`
	} `json:"location"`
	Ranking      *int                `json:"ranking"`
	FitScore     *float64            `json:"fitScore"`
	Reasons      string              `json:"reasons"`
	TuitionRange *model.TuitionRange `json:"tuitionRange"`
	Programs     []string            `json:"programs"`
	Website      string              `json:"website"`
	ImageURL     string              `json:"imageUrl"`
}

type rawPayload struct {
	Universities *[]rawUniversity `json:"universities"`
	Summary      string           `json:"summary"`
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// ParseRecommendations extracts a structured result from the model's raw
// text. It never fails: when no usable JSON is found the full raw text
// becomes the summary and the university list is empty.
func ParseRecommendations(raw string) RecommendationResult {
	fallback := RecommendationResult{
		Universities: []model.University{},
		Summary:      raw,
	}

	candidate, ok := extractJSONObject(raw)
	if !ok {
		return fallback
	}

	var payload rawPayload
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return fallback
	}
	if payload.Universities == nil {
		return fallback
	}

	universities := make([]model.University, 0, len(*payload.Universities))
	for _, u := range *payload.Universities {
		universities = append(universities, normalizeUniversity(u))
	}

	summary := payload.Summary
	if summary == "" {
		summary = raw
	}

	return RecommendationResult{
		Universities: universities,
		Summary:      summary,
	}
}

// normalizeUniversity applies the field-level defaulting and clamping rules.
func normalizeUniversity(u rawUniversity) model.University {
	uni := model.University{
		Name: u.Name,
		Location: model.Location{
			Country: u.Location.Country,
			City:    u.Location.City,
		},
		Ranking:  u.Ranking,
		FitScore: defaultFitScore,
		Reasons:  u.Reasons,
		Programs: u.Programs,
		Website:  u.Website,
		ImageURL: u.ImageURL,
	}

	if uni.Name == "" {
		uni.Name = unknownName
	}
	if uni.Location.Country == "" {
		uni.Location.Country = unknownPlace
	}
	if uni.Location.City == "" {
		uni.Location.City = unknownPlace
	}
	if u.FitScore != nil {
		uni.FitScore = clamp(int(math.Round(*u.FitScore)), 0, 100)
	}
	if uni.Reasons == "" {
		uni.Reasons = defaultReasons
	}
	if u.TuitionRange != nil {
		uni.TuitionRange = *u.TuitionRange
	}
	if uni.Programs == nil {
		uni.Programs = []string{}
	}
	if uni.ImageURL == "" {
		uni.ImageURL = StockImageURL
	}

	return uni
}

// ParseChatUpdateDirective splits a chat reply into its human-visible text
// and an optional trailing preference-update directive. Absence of a
// directive is the common case and is not an error.
func ParseChatUpdateDirective(raw string) (string, *PreferenceUpdate) {
	type directive struct {
		Update                 bool   `json:"update"`
		PreferencesDescription string `json:"preferencesDescription"`
	}

	trimmed := strings.TrimRight(raw, " \t\r\n")
	if !strings.HasSuffix(trimmed, "}") {
		return raw, nil
	}

	// Walk opening braces from the end; the first suffix that parses as a
	// directive object wins.
	for i := strings.LastIndexByte(trimmed, '{'); i >= 0; i = strings.LastIndexByte(trimmed[:i], '{') {
		var d directive
		if err := json.Unmarshal([]byte(trimmed[i:]), &d); err != nil {
			continue
		}
		if !d.Update || d.PreferencesDescription == "" {
			return raw, nil
		}
		return strings.TrimSpace(trimmed[:i]), &PreferenceUpdate{
			PreferencesDescription: d.PreferencesDescription,
		}
	}

	return raw, nil
}

// extractJSONObject finds the JSON object candidate in free text: the whole
// (fence-stripped) string if it parses, otherwise the first complete
// top-level object found by a balanced-brace scan.
func extractJSONObject(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	if m := codeFenceRe.FindStringSubmatch(text); len(m) > 1 {
		text = m[1]
	}

	if json.Valid([]byte(text)) && strings.HasPrefix(text, "{") {
		return text, true
	}

	return firstBalancedObject(text)
}

// firstBalancedObject scans for the first complete top-level {...} block,
// tracking nesting depth and string state rather than greedily matching the
// first '{' to the last '}'.
func firstBalancedObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
