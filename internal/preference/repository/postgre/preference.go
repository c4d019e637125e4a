package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"nextstep/internal/model"
	repo "nextstep/internal/preference/repository"
)

const preferenceColumns = `id, user_id, academic_interests, preferred_countries,
	budget_min, budget_max, study_level, sat, toefl, ielts, gre,
	university_size, additional_requirements, preferences_description,
	created_at, updated_at`

// UpsertPreference inserts or replaces the owner's record in one statement.
// The unique index on user_id makes the replace atomic, no read-then-write.
func (r *implRepository) UpsertPreference(ctx context.Context, opt repo.UpsertPreferenceOptions) (model.Preference, error) {
	query := fmt.Sprintf(`
		INSERT INTO preferences (
			id, user_id, academic_interests, preferred_countries,
			budget_min, budget_max, study_level, sat, toefl, ielts, gre,
			university_size, additional_requirements, preferences_description,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			academic_interests = EXCLUDED.academic_interests,
			preferred_countries = EXCLUDED.preferred_countries,
			budget_min = EXCLUDED.budget_min,
			budget_max = EXCLUDED.budget_max,
			study_level = EXCLUDED.study_level,
			sat = EXCLUDED.sat,
			toefl = EXCLUDED.toefl,
			ielts = EXCLUDED.ielts,
			gre = EXCLUDED.gre,
			university_size = EXCLUDED.university_size,
			additional_requirements = EXCLUDED.additional_requirements,
			preferences_description = EXCLUDED.preferences_description,
			updated_at = NOW()
		RETURNING %s`, preferenceColumns)

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID,
		pq.Array(opt.AcademicInterests), pq.Array(opt.PreferredCountries),
		opt.BudgetRange.Min, opt.BudgetRange.Max, string(opt.StudyLevel),
		opt.TestScores.SAT, opt.TestScores.TOEFL, opt.TestScores.IELTS, opt.TestScores.GRE,
		string(opt.PreferredUniversitySize), opt.AdditionalRequirements, opt.PreferencesDescription,
	)

	pref, err := scanPreference(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertPreference"), err)
		return model.Preference{}, repo.ErrFailedToUpsert
	}
	return pref, nil
}

// GetPreference retrieves a single record by the provided filters.
// Returns zero-value Preference (ID == "") when not found.
func (r *implRepository) GetPreference(ctx context.Context, opt repo.GetPreferenceOptions) (model.Preference, error) {
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
		return model.Preference{}, repo.ErrFailedToGet
	}

	query := fmt.Sprintf("SELECT %s FROM preferences WHERE %s LIMIT 1",
		preferenceColumns, strings.Join(conds, " AND "))

	pref, err := scanPreference(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Preference{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetPreference"), err)
		return model.Preference{}, repo.ErrFailedToGet
	}
	return pref, nil
}

// UpdateDescription overwrites the rolling description of the owner's record.
func (r *implRepository) UpdateDescription(ctx context.Context, opt repo.UpdateDescriptionOptions) error {
	const query = `
		UPDATE preferences
		SET preferences_description = $1, updated_at = NOW()
		WHERE user_id = $2`

	if _, err := r.db.ExecContext(ctx, query, opt.Description, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateDescription"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreference(row rowScanner) (model.Preference, error) {
	var (
		pref       model.Preference
		studyLevel string
		uniSize    string
		sat, toefl sql.NullInt64
		gre        sql.NullInt64
		ielts      sql.NullFloat64
	)

	err := row.Scan(
		&pref.ID, &pref.UserID,
		pq.Array(&pref.AcademicInterests), pq.Array(&pref.PreferredCountries),
		&pref.BudgetRange.Min, &pref.BudgetRange.Max, &studyLevel,
		&sat, &toefl, &ielts, &gre,
		&uniSize, &pref.AdditionalRequirements, &pref.PreferencesDescription,
		&pref.CreatedAt, &pref.UpdatedAt,
	)
	if err != nil {
		return model.Preference{}, err
	}

	pref.StudyLevel = model.StudyLevel(studyLevel)
	pref.PreferredUniversitySize = model.UniversitySize(uniSize)
	if sat.Valid {
		v := int(sat.Int64)
		pref.TestScores.SAT = &v
	}
	if toefl.Valid {
		v := int(toefl.Int64)
		pref.TestScores.TOEFL = &v
	}
	if ielts.Valid {
		v := ielts.Float64
		pref.TestScores.IELTS = &v
	}
	if gre.Valid {
		v := int(gre.Int64)
		pref.TestScores.GRE = &v
	}

	return pref, nil
}
