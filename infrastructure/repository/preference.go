package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
)

const userPreferencesTable = "user_preferences"

type PreferenceRepository interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Preference, error)
	Save(ctx context.Context, pref *domain.Preference) error
}

type preferenceRepository struct {
	conn *postgres.Connection
}

func NewPreferenceRepository(conn *postgres.Connection) PreferenceRepository {
	return &preferenceRepository{
		conn: conn,
	}
}

func (r *preferenceRepository) GetByUserID(ctx context.Context, userID int) (*domain.Preference, error) {
	query, args, err := squirrel.
		Select("user_id", "remember_email", "saved_email", "updated_at").
		From(userPreferencesTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	pref := &domain.Preference{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&pref.UserID,
		&pref.RememberEmail,
		&pref.SavedEmail,
		&pref.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear preferência: %w", err)
	}

	return pref, nil
}

// Save grava a preferência por usuário; a chave é user_id, então o upsert é
// delegado ao banco
func (r *preferenceRepository) Save(ctx context.Context, pref *domain.Preference) error {
	query, args, err := squirrel.
		Insert(userPreferencesTable).
		Columns("user_id", "remember_email", "saved_email").
		Values(pref.UserID, pref.RememberEmail, pref.SavedEmail).
		Suffix(`
			ON CONFLICT (user_id) DO UPDATE SET
				remember_email = EXCLUDED.remember_email,
				saved_email = EXCLUDED.saved_email,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapPqError(err)
	}

	return nil
}
