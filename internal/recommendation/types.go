package recommendation

import "nextstep/internal/model"

// --- UseCase Inputs ---

type GenerateInput struct {
	PreferenceID string
}

type ListInput struct {
	Page  int
	Limit int
}

// --- UseCase Outputs ---

type GenerateOutput struct {
	Recommendation model.Recommendation
}

type Pagination struct {
	Current int
	Pages   int
	Total   int
	HasNext bool
	HasPrev bool
}

type ListOutput struct {
	Recommendations []model.Recommendation
	Pagination      Pagination
}

type DetailOutput struct {
	Recommendation model.Recommendation
}

// StatsOutput summarizes a user's generation history.
type StatsOutput struct {
	Total               int
	Completed           int
	Failed              int
	Generating          int
	TotalUniversities   int
	AvgProcessingTimeMs float64
}
