package model

import (
	"fmt"
	"time"
)

// RecommendationStatus is the lifecycle state of a generation request.
// Legal transitions: generating → completed, generating → failed.
// Both completed and failed are terminal.
type RecommendationStatus string

const (
	StatusGenerating RecommendationStatus = "generating"
	StatusCompleted  RecommendationStatus = "completed"
	StatusFailed     RecommendationStatus = "failed"
)

// IsValid reports whether the value is a known status.
func (s RecommendationStatus) IsValid() bool {
	switch s {
	case StatusGenerating, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// CanTransition reports whether the transition s → to is legal.
func (s RecommendationStatus) CanTransition(to RecommendationStatus) bool {
	return s == StatusGenerating && (to == StatusCompleted || to == StatusFailed)
}

// Location is a university's country and city.
type Location struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

// TuitionRange is an estimated annual tuition window in USD.
type TuitionRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// University is an embedded value object inside a Recommendation. It is not
// independently addressable.
type University struct {
	Name         string       `json:"name"`
	Location     Location     `json:"location"`
	Ranking      *int         `json:"ranking"`
	FitScore     int          `json:"fitScore"`
	Reasons      string       `json:"reasons"`
	TuitionRange TuitionRange `json:"tuitionRange"`
	Programs     []string     `json:"programs"`
	Website      string       `json:"website"`
	ImageURL     string       `json:"imageUrl"`
}

// RecommendationMetadata records how a result set was produced.
type RecommendationMetadata struct {
	ProcessingTimeMs int64  `json:"processingTimeMs"`
	APICallsUsed     int    `json:"apiCallsUsed"`
	Version          string `json:"version"`
}

// Recommendation is one persisted generation result: a university list plus
// narrative summary. At most one set is retained per user.
type Recommendation struct {
	ID           string
	UserID       string
	PreferenceID string
	Universities []University
	AIResponse   string
	Status       RecommendationStatus
	Metadata     RecommendationMetadata
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RecommendationStats aggregates a user's generation history.
type RecommendationStats struct {
	Total               int
	Completed           int
	Failed              int
	Generating          int
	TotalUniversities   int
	AvgProcessingTimeMs float64
}

// MarkCompleted transitions the record to completed with the parsed results.
func (r *Recommendation) MarkCompleted(universities []University, summary string, meta RecommendationMetadata) error {
	if !r.Status.CanTransition(StatusCompleted) {
		return fmt.Errorf("illegal status transition %s -> %s", r.Status, StatusCompleted)
	}
	r.Status = StatusCompleted
	r.Universities = universities
	r.AIResponse = summary
	r.Metadata = meta
	return nil
}

// MarkFailed transitions the record to failed with a placeholder message.
func (r *Recommendation) MarkFailed(message string) error {
	if !r.Status.CanTransition(StatusFailed) {
		return fmt.Errorf("illegal status transition %s -> %s", r.Status, StatusFailed)
	}
	r.Status = StatusFailed
	r.AIResponse = message
	return nil
}
