package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"nextstep/internal/model"
	repo "nextstep/internal/recommendation/repository"
)

const recommendationColumns = `id, user_id, preference_id, universities,
	ai_response, status, metadata, created_at, updated_at`

// ReplaceForOwner swaps the user's recommendation set for a fresh "generating"
// row. The delete and insert share one transaction so a reader can never see
// two sets, or zero sets mid-replace.
func (r *implRepository) ReplaceForOwner(ctx context.Context, opt repo.ReplaceForOwnerOptions) (model.Recommendation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: begin: %v", r.dsn("ReplaceForOwner"), err)
		return model.Recommendation{}, repo.ErrFailedToCreate
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recommendations WHERE user_id = $1`, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: delete: %v", r.dsn("ReplaceForOwner"), err)
		return model.Recommendation{}, repo.ErrFailedToCreate
	}

	query := fmt.Sprintf(`
		INSERT INTO recommendations (
			id, user_id, preference_id, universities, ai_response, status, metadata,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s`, recommendationColumns)

	row := tx.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.PreferenceID,
		[]byte("[]"), "", string(model.StatusGenerating), []byte("{}"),
	)

	rec, err := scanRecommendation(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: insert: %v", r.dsn("ReplaceForOwner"), err)
		return model.Recommendation{}, repo.ErrFailedToCreate
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s: commit: %v", r.dsn("ReplaceForOwner"), err)
		return model.Recommendation{}, repo.ErrFailedToCreate
	}
	return rec, nil
}

// UpdateRecommendation persists the record's current state. Status transitions
// are enforced by the model before this is called.
func (r *implRepository) UpdateRecommendation(ctx context.Context, opt repo.UpdateRecommendationOptions) (model.Recommendation, error) {
	rec := opt.Recommendation

	universities, err := json.Marshal(rec.Universities)
	if err != nil {
		r.l.Errorf(ctx, "%s: marshal universities: %v", r.dsn("UpdateRecommendation"), err)
		return model.Recommendation{}, repo.ErrFailedToUpdate
	}
	metadata, err := json.Marshal(rec.Metadata)
	if err != nil {
		r.l.Errorf(ctx, "%s: marshal metadata: %v", r.dsn("UpdateRecommendation"), err)
		return model.Recommendation{}, repo.ErrFailedToUpdate
	}

	query := fmt.Sprintf(`
		UPDATE recommendations
		SET universities = $1, ai_response = $2, status = $3, metadata = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6
		RETURNING %s`, recommendationColumns)

	row := r.db.QueryRowContext(ctx, query,
		universities, rec.AIResponse, string(rec.Status), metadata,
		rec.ID, rec.UserID,
	)

	updated, err := scanRecommendation(row)
	if err == sql.ErrNoRows {
		return model.Recommendation{}, repo.ErrRecommendationNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRecommendation"), err)
		return model.Recommendation{}, repo.ErrFailedToUpdate
	}
	return updated, nil
}

// GetRecommendation retrieves a single record by the provided filters.
// Returns zero-value Recommendation (ID == "") when not found.
func (r *implRepository) GetRecommendation(ctx context.Context, opt repo.GetRecommendationOptions) (model.Recommendation, error) {
	var conds []string
	var args []any

	if opt.ID != "" {
		args = append(args, opt.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.UserID != "" {
		args = append(args, opt.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return model.Recommendation{}, repo.ErrFailedToGet
	}

	query := fmt.Sprintf("SELECT %s FROM recommendations WHERE %s LIMIT 1",
		recommendationColumns, strings.Join(conds, " AND "))

	rec, err := scanRecommendation(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Recommendation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRecommendation"), err)
		return model.Recommendation{}, repo.ErrFailedToGet
	}
	return rec, nil
}

// ListRecommendations returns the user's records newest first, plus the
// unpaginated total.
func (r *implRepository) ListRecommendations(ctx context.Context, opt repo.ListRecommendationsOptions) ([]model.Recommendation, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM recommendations WHERE user_id = $1`, opt.UserID,
	).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: count: %v", r.dsn("ListRecommendations"), err)
		return nil, 0, repo.ErrFailedToGet
	}

	query := fmt.Sprintf(`
		SELECT %s FROM recommendations
		WHERE user_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3`, recommendationColumns)

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, opt.Offset, opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecommendations"), err)
		return nil, 0, repo.ErrFailedToGet
	}
	defer rows.Close()

	var recs []model.Recommendation
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListRecommendations"), err)
			return nil, 0, repo.ErrFailedToGet
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListRecommendations"), err)
		return nil, 0, repo.ErrFailedToGet
	}
	return recs, total, nil
}

// DeleteRecommendation removes one record the user owns.
func (r *implRepository) DeleteRecommendation(ctx context.Context, opt repo.DeleteRecommendationOptions) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM recommendations WHERE id = $1 AND user_id = $2`,
		opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteRecommendation"), err)
		return repo.ErrFailedToDelete
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s: rows affected: %v", r.dsn("DeleteRecommendation"), err)
		return repo.ErrFailedToDelete
	}
	if affected == 0 {
		return repo.ErrRecommendationNotFound
	}
	return nil
}

// GetStats aggregates the user's history in one pass. University counts and
// average processing time only consider completed sets.
func (r *implRepository) GetStats(ctx context.Context, userID string) (model.RecommendationStats, error) {
	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'failed'),
			COUNT(*) FILTER (WHERE status = 'generating'),
			COALESCE(SUM(jsonb_array_length(universities)) FILTER (WHERE status = 'completed'), 0),
			COALESCE(AVG((metadata->>'processingTimeMs')::bigint) FILTER (WHERE status = 'completed'), 0)
		FROM recommendations
		WHERE user_id = $1`

	var stats model.RecommendationStats
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.Total, &stats.Completed, &stats.Failed, &stats.Generating,
		&stats.TotalUniversities, &stats.AvgProcessingTimeMs,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetStats"), err)
		return model.RecommendationStats{}, repo.ErrFailedToGet
	}
	return stats, nil
}

// FindLatestCompletedByOwner returns the newest completed set, zero value when
// the user has none.
func (r *implRepository) FindLatestCompletedByOwner(ctx context.Context, userID string) (model.Recommendation, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM recommendations
		WHERE user_id = $1 AND status = 'completed'
		ORDER BY created_at DESC
		LIMIT 1`, recommendationColumns)

	rec, err := scanRecommendation(r.db.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return model.Recommendation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindLatestCompletedByOwner"), err)
		return model.Recommendation{}, repo.ErrFailedToGet
	}
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecommendation(row rowScanner) (model.Recommendation, error) {
	var (
		rec          model.Recommendation
		status       string
		universities []byte
		metadata     []byte
	)

	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.PreferenceID, &universities,
		&rec.AIResponse, &status, &metadata,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return model.Recommendation{}, err
	}

	rec.Status = model.RecommendationStatus(status)
	if len(universities) > 0 {
		if err := json.Unmarshal(universities, &rec.Universities); err != nil {
			return model.Recommendation{}, fmt.Errorf("unmarshal universities: %w", err)
		}
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &rec.Metadata); err != nil {
			return model.Recommendation{}, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return rec, nil
}
