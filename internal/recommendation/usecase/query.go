package usecase

import (
	"context"

	"nextstep/internal/model"
	"nextstep/internal/recommendation"
	"nextstep/internal/recommendation/repository"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input recommendation.ListInput) (recommendation.ListOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	recs, total, err := uc.repo.ListRecommendations(ctx, repository.ListRecommendationsOptions{
		UserID: sc.UserID,
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.List: %v", err)
		return recommendation.ListOutput{}, err
	}

	pages := (total + limit - 1) / limit
	return recommendation.ListOutput{
		Recommendations: recs,
		Pagination: recommendation.Pagination{
			Current: page,
			Pages:   pages,
			Total:   total,
			HasNext: page < pages,
			HasPrev: page > 1,
		},
	}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (recommendation.DetailOutput, error) {
	rec, err := uc.repo.GetRecommendation(ctx, repository.GetRecommendationOptions{
		ID:     id,
		UserID: sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.Detail: %v", err)
		return recommendation.DetailOutput{}, err
	}
	if rec.ID == "" {
		return recommendation.DetailOutput{}, recommendation.ErrRecommendationNotFound
	}
	return recommendation.DetailOutput{Recommendation: rec}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	err := uc.repo.DeleteRecommendation(ctx, repository.DeleteRecommendationOptions{
		ID:     id,
		UserID: sc.UserID,
	})
	if err == repository.ErrRecommendationNotFound {
		return recommendation.ErrRecommendationNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.Delete: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (recommendation.StatsOutput, error) {
	stats, err := uc.repo.GetStats(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.Stats: %v", err)
		return recommendation.StatsOutput{}, err
	}
	return recommendation.StatsOutput{
		Total:               stats.Total,
		Completed:           stats.Completed,
		Failed:              stats.Failed,
		Generating:          stats.Generating,
		TotalUniversities:   stats.TotalUniversities,
		AvgProcessingTimeMs: stats.AvgProcessingTimeMs,
	}, nil
}
