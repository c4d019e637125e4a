package http

import (
	"nextstep/internal/model"
	"nextstep/internal/recommendation"
	"nextstep/pkg/response"
)

// --- Request DTOs ---

type generateReq struct {
	PreferenceID string `json:"preferenceId" binding:"required"`
}

func (r generateReq) toInput() recommendation.GenerateInput {
	return recommendation.GenerateInput{PreferenceID: r.PreferenceID}
}

type listReq struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (r listReq) toInput() recommendation.ListInput {
	return recommendation.ListInput{Page: r.Page, Limit: r.Limit}
}

// --- Response DTOs ---

type locationResp struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

type tuitionRangeResp struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type universityResp struct {
	Name         string           `json:"name"`
	Location     locationResp     `json:"location"`
	Ranking      *int             `json:"ranking"`
	FitScore     int              `json:"fitScore"`
	Reasons      string           `json:"reasons"`
	TuitionRange tuitionRangeResp `json:"tuitionRange"`
	Programs     []string         `json:"programs"`
	Website      string           `json:"website"`
	ImageURL     string           `json:"imageUrl"`
}

type metadataResp struct {
	ProcessingTimeMs int64  `json:"processingTimeMs"`
	APICallsUsed     int    `json:"apiCallsUsed"`
	Version          string `json:"version"`
}

type recommendationResp struct {
	ID           string            `json:"id"`
	PreferenceID string            `json:"preferenceId"`
	Universities []universityResp  `json:"universities"`
	AIResponse   string            `json:"aiResponse"`
	Status       string            `json:"status"`
	Metadata     metadataResp      `json:"metadata"`
	CreatedAt    response.DateTime `json:"created_at"`
	UpdatedAt    response.DateTime `json:"updated_at"`
}

func newRecommendationResp(rec model.Recommendation) recommendationResp {
	universities := make([]universityResp, 0, len(rec.Universities))
	for _, u := range rec.Universities {
		universities = append(universities, universityResp{
			Name:         u.Name,
			Location:     locationResp{Country: u.Location.Country, City: u.Location.City},
			Ranking:      u.Ranking,
			FitScore:     u.FitScore,
			Reasons:      u.Reasons,
			TuitionRange: tuitionRangeResp{Min: u.TuitionRange.Min, Max: u.TuitionRange.Max},
			Programs:     u.Programs,
			Website:      u.Website,
			ImageURL:     u.ImageURL,
		})
	}
	return recommendationResp{
		ID:           rec.ID,
		PreferenceID: rec.PreferenceID,
		Universities: universities,
		AIResponse:   rec.AIResponse,
		Status:       string(rec.Status),
		Metadata: metadataResp{
			ProcessingTimeMs: rec.Metadata.ProcessingTimeMs,
			APICallsUsed:     rec.Metadata.APICallsUsed,
			Version:          rec.Metadata.Version,
		},
		CreatedAt: response.DateTime(rec.CreatedAt),
		UpdatedAt: response.DateTime(rec.UpdatedAt),
	}
}

type generateResp struct {
	Recommendations recommendationResp `json:"recommendations"`
}

func (h *handler) newGenerateResp(output recommendation.GenerateOutput) generateResp {
	return generateResp{Recommendations: newRecommendationResp(output.Recommendation)}
}

type paginationResp struct {
	Current int  `json:"current"`
	Pages   int  `json:"pages"`
	Total   int  `json:"total"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

type listResp struct {
	Recommendations []recommendationResp `json:"recommendations"`
	Pagination      paginationResp       `json:"pagination"`
}

func (h *handler) newListResp(output recommendation.ListOutput) listResp {
	recs := make([]recommendationResp, 0, len(output.Recommendations))
	for _, rec := range output.Recommendations {
		recs = append(recs, newRecommendationResp(rec))
	}
	return listResp{
		Recommendations: recs,
		Pagination: paginationResp{
			Current: output.Pagination.Current,
			Pages:   output.Pagination.Pages,
			Total:   output.Pagination.Total,
			HasNext: output.Pagination.HasNext,
			HasPrev: output.Pagination.HasPrev,
		},
	}
}

type detailResp struct {
	Recommendations recommendationResp `json:"recommendations"`
}

func (h *handler) newDetailResp(output recommendation.DetailOutput) detailResp {
	return detailResp{Recommendations: newRecommendationResp(output.Recommendation)}
}

type statsResp struct {
	Total               int     `json:"total"`
	Completed           int     `json:"completed"`
	Failed              int     `json:"failed"`
	Generating          int     `json:"generating"`
	TotalUniversities   int     `json:"totalUniversities"`
	AvgProcessingTimeMs float64 `json:"avgProcessingTimeMs"`
}

func (h *handler) newStatsResp(output recommendation.StatsOutput) statsResp {
	return statsResp{
		Total:               output.Total,
		Completed:           output.Completed,
		Failed:              output.Failed,
		Generating:          output.Generating,
		TotalUniversities:   output.TotalUniversities,
		AvgProcessingTimeMs: output.AvgProcessingTimeMs,
	}
}
