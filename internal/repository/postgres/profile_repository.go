package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
	"github.com/gdugdh24/lifestyle-connect/internal/repository"
	"github.com/jmoiron/sqlx"
)

const profileColumns = `
	id, display_name, residency, tier, gender, age, city, country,
	church_name, marital_status, has_children, bio,
	is_hidden, is_onboarding_complete, created_at, updated_at
`

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			id, display_name, residency, tier, gender, age, city, country,
			church_name, marital_status, has_children, bio, is_onboarding_complete
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.ID, profile.DisplayName, profile.Residency, profile.Tier, profile.Gender, profile.Age,
		profile.City, profile.Country, profile.ChurchName, profile.MaritalStatus, profile.HasChildren,
		profile.Bio, profile.IsOnboardingComplete,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET display_name = $1, gender = $2, age = $3, city = $4, country = $5,
		    church_name = $6, marital_status = $7, has_children = $8, bio = $9,
		    is_onboarding_complete = $10, updated_at = CURRENT_TIMESTAMP
		WHERE id = $11
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.DisplayName, profile.Gender, profile.Age, profile.City, profile.Country,
		profile.ChurchName, profile.MaritalStatus, profile.HasChildren, profile.Bio,
		profile.IsOnboardingComplete,
		profile.ID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

// UpdateTier writes a new tier only when it belongs to the stored residency ladder.
func (r *profileRepository) UpdateTier(ctx context.Context, id int, tier domain.Tier) error {
	query := `
		UPDATE profiles
		SET tier = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND residency = $3
	`
	return r.execOne(ctx, query, tier.String(), id, tier.Residency())
}

func (r *profileRepository) SetHidden(ctx context.Context, id int, hidden bool) error {
	query := `UPDATE profiles SET is_hidden = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	return r.execOne(ctx, query, hidden, id)
}

func (r *profileRepository) ListCandidates(ctx context.Context, excludeID int, limit int) ([]*domain.Profile, error) {
	var profiles []*domain.Profile
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE id <> $1 AND is_hidden = false AND is_onboarding_complete = true
		ORDER BY created_at DESC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &profiles, query, excludeID, limit)
	return profiles, err
}

func (r *profileRepository) execOne(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
