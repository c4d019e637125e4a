// Package ai holds the pure prompt-building and response-parsing logic that
// sits between the domain usecases and the Gemini gateway. Nothing in this
// package performs I/O.
package ai

import (
	"fmt"
	"strconv"
	"strings"

	"nextstep/internal/model"
)

// maxSummaryDigestLen bounds how much of a prior recommendation summary is
// replayed into a chat prompt.
const maxSummaryDigestLen = 500

// BuildRecommendationPrompt renders a counselor-persona instruction plus the
// full preference record, followed by the strict JSON output contract the
// parser expects. The field names in the contract are load-bearing: the
// parser and the stored University shape depend on them exactly.
func BuildRecommendationPrompt(pref model.Preference) string {
	var sb strings.Builder

	sb.WriteString("You are a university counselor. Based on the following student preferences, provide university recommendations.\n\n")

	sb.WriteString("Student Preferences:\n")
	fmt.Fprintf(&sb, "- Academic Interests: %s\n", strings.Join(pref.AcademicInterests, ", "))
	fmt.Fprintf(&sb, "- Preferred Countries: %s\n", strings.Join(pref.PreferredCountries, ", "))
	fmt.Fprintf(&sb, "- Budget Range: $%s - $%s\n", formatAmount(pref.BudgetRange.Min), formatAmount(pref.BudgetRange.Max))
	fmt.Fprintf(&sb, "- Study Level: %s\n", pref.StudyLevel)
	fmt.Fprintf(&sb, "- Test Scores: %s\n", FormatTestScores(pref.TestScores))
	fmt.Fprintf(&sb, "- University Size Preference: %s\n", pref.PreferredUniversitySize)
	if pref.AdditionalRequirements != "" {
		fmt.Fprintf(&sb, "- Additional Requirements: %s\n", pref.AdditionalRequirements)
	}
	if pref.PreferencesDescription != "" {
		fmt.Fprintf(&sb, "- Notes from previous conversations: %s\n", pref.PreferencesDescription)
	}

	sb.WriteString(`
Please provide:
1. A list of 5-10 suitable universities
2. A comprehensive explanation of your recommendations

For each university, include:
- Name
- Country and city
- Why it's a good fit (2-3 sentences)
- Approximate ranking (if known)
- Fit score (0-100)
- Estimated tuition range
- University image URL (use a real university image URL or a generic university/campus image)

Do not recommend the same university twice.

IMPORTANT: For imageUrl, provide a direct link to a university campus image. You can use:
- Real university website image URLs
- Unsplash university/campus images (e.g., https://images.unsplash.com/photo-1562774053-701939374585)
- Wikipedia university images
- Generic academic building images
Make sure the URL is a direct image link that ends with .jpg, .png, or similar. Do not use placeholder URLs.

Respond with ONLY a JSON object with this structure and nothing else:
{
  "universities": [
    {
      "name": "University Name",
      "location": {
        "country": "Country",
        "city": "City"
      },
      "ranking": 50,
      "fitScore": 85,
      "reasons": "Detailed explanation of why this university fits the student's profile...",
      "tuitionRange": {
        "min": 25000,
        "max": 35000
      },
      "programs": ["Program 1", "Program 2"],
      "website": "https://university.edu",
      "imageUrl": "https://example.com/university-image.jpg"
    }
  ],
  "summary": "Comprehensive explanation of the recommendations and advice for the student..."
}

Ensure the JSON is valid and properly formatted.`)

	return sb.String()
}

// BuildChatPrompt renders a scoped-assistant persona, the prior transcript,
// the preference record, and a digest of the current recommendation set,
// followed by the user's message and the conditional update directive.
func BuildChatPrompt(message string, pref *model.Preference, rec *model.Recommendation, history []model.ChatMessage) string {
	var sb strings.Builder

	sb.WriteString(`You are an experienced university counselor and educational advisor. You help students find the right universities and answer their questions about higher education.

Context: You are helping a student with their university search and academic planning. Only answer questions related to universities, study programs, admissions, and academic planning. If the student asks about anything else, politely decline and steer the conversation back to their university search.`)

	if len(history) > 0 {
		sb.WriteString("\n\nConversation so far:")
		for _, msg := range history {
			label := "Student"
			if msg.Role == model.ChatRoleAssistant {
				label = "Counselor"
			}
			fmt.Fprintf(&sb, "\n%s: %s", label, msg.Content)
		}
	}

	if pref != nil {
		sb.WriteString("\n\nStudent's Preferences:")
		fmt.Fprintf(&sb, "\n- Academic Interests: %s", orNotSpecified(strings.Join(pref.AcademicInterests, ", ")))
		fmt.Fprintf(&sb, "\n- Preferred Countries: %s", orNotSpecified(strings.Join(pref.PreferredCountries, ", ")))
		fmt.Fprintf(&sb, "\n- Budget Range: $%s - $%s", formatAmount(pref.BudgetRange.Min), formatAmount(pref.BudgetRange.Max))
		fmt.Fprintf(&sb, "\n- Study Level: %s", pref.StudyLevel)
		fmt.Fprintf(&sb, "\n- Test Scores: %s", FormatTestScores(pref.TestScores))
		if pref.PreferencesDescription != "" {
			fmt.Fprintf(&sb, "\n- Notes from previous conversations: %s", pref.PreferencesDescription)
		}
	}

	if rec != nil && len(rec.Universities) > 0 {
		sb.WriteString("\n\nPreviously Recommended Universities:")
		for i, uni := range rec.Universities {
			fmt.Fprintf(&sb, "\n%d. %s (%s, %s)", i+1, uni.Name, uni.Location.City, uni.Location.Country)
			fmt.Fprintf(&sb, "\n   - Fit Score: %d%%", uni.FitScore)
			fmt.Fprintf(&sb, "\n   - Programs: %s", orDefault(strings.Join(uni.Programs, ", "), "Various programs"))
			fmt.Fprintf(&sb, "\n   - Tuition: $%s - $%s", formatAmount(uni.TuitionRange.Min), formatAmount(uni.TuitionRange.Max))
			fmt.Fprintf(&sb, "\n   - Why recommended: %s", uni.Reasons)
		}

		if rec.AIResponse != "" {
			fmt.Fprintf(&sb, "\n\nPrevious recommendation summary: %s", truncate(rec.AIResponse, maxSummaryDigestLen))
		}
	}

	fmt.Fprintf(&sb, "\n\nStudent's Question: %q\n", message)

	sb.WriteString(`
Please provide a helpful, informative response. If the question relates to the recommended universities above, reference them specifically. Keep your response conversational but professional. Be brief by default; go into detail only when the student explicitly asks for it.

If (and only if) the student's message implies a change to their preferences or constraints (budget, countries, interests, study level, and so on), append to the very end of your reply a JSON fragment of exactly this shape, summarizing all constraints known so far:
{"update": true, "preferencesDescription": "<summary of the student's current constraints>"}
If the message implies no such change, do not append this fragment at all.`)

	return sb.String()
}

// BuildUniversityDetailsPrompt asks for a markdown-only fact sheet for one
// university, used by the on-demand details endpoint.
func BuildUniversityDetailsPrompt(name string) string {
	return fmt.Sprintf(`Provide ONLY the following information about %s for prospective students, formatted in markdown (no introduction, no extra text, no conversational prefix):

* Tuition fees (latest available)
* Student reviews (summarized)
* Pros and cons
* Placement statistics
* Notable programs
* Campus life highlights
* Anything else relevant for decision-making

Respond with just the markdown data, no greeting, no explanation, no prefix. If data is unavailable, mention it in the relevant section.`, name)
}

// FormatTestScores renders the optional score fields for display in prompts.
func FormatTestScores(ts model.TestScores) string {
	var scores []string
	if ts.SAT != nil {
		scores = append(scores, fmt.Sprintf("SAT: %d", *ts.SAT))
	}
	if ts.TOEFL != nil {
		scores = append(scores, fmt.Sprintf("TOEFL: %d", *ts.TOEFL))
	}
	if ts.IELTS != nil {
		scores = append(scores, fmt.Sprintf("IELTS: %g", *ts.IELTS))
	}
	if ts.GRE != nil {
		scores = append(scores, fmt.Sprintf("GRE: %d", *ts.GRE))
	}
	if len(scores) == 0 {
		return "Not provided"
	}
	return strings.Join(scores, ", ")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orNotSpecified(s string) string {
	return orDefault(s, "Not specified")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
