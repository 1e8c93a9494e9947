package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
)

const dailyValuesTable = "daily_values"

type DailyValueRepository interface {
	ListByPeriod(ctx context.Context, month, year int) ([]*domain.DailyValue, error)
	GetByDayAndPeriod(ctx context.Context, day, month, year int) (*domain.DailyValue, error)
	Insert(ctx context.Context, value *domain.DailyValue) (*domain.DailyValue, error)
	UpdateValue(ctx context.Context, id int64, npsValue int) error
}

type dailyValueRepository struct {
	conn *postgres.Connection
}

func NewDailyValueRepository(conn *postgres.Connection) DailyValueRepository {
	return &dailyValueRepository{
		conn: conn,
	}
}

// ListByPeriod retorna as linhas esparsas do mês, em ordem crescente de dia.
// O preenchimento da grade densa é responsabilidade do caso de uso.
func (r *dailyValueRepository) ListByPeriod(ctx context.Context, month, year int) ([]*domain.DailyValue, error) {
	query, args, err := squirrel.
		Select("id", "day", "nps_value", "month", "year", "created_at", "updated_at").
		From(dailyValuesTable).
		Where(squirrel.Eq{"month": month, "year": year}).
		OrderBy("day ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	values := make([]*domain.DailyValue, 0)
	for rows.Next() {
		value := &domain.DailyValue{}
		if err := rows.Scan(
			&value.ID,
			&value.Day,
			&value.NpsValue,
			&value.Month,
			&value.Year,
			&value.CreatedAt,
			&value.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear daily value: %w", err)
		}
		values = append(values, value)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return values, nil
}

func (r *dailyValueRepository) GetByDayAndPeriod(ctx context.Context, day, month, year int) (*domain.DailyValue, error) {
	query, args, err := squirrel.
		Select("id", "day", "nps_value", "month", "year", "created_at", "updated_at").
		From(dailyValuesTable).
		Where(squirrel.Eq{"day": day, "month": month, "year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	value := &domain.DailyValue{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&value.ID,
		&value.Day,
		&value.NpsValue,
		&value.Month,
		&value.Year,
		&value.CreatedAt,
		&value.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear daily value: %w", err)
	}

	return value, nil
}

func (r *dailyValueRepository) Insert(ctx context.Context, value *domain.DailyValue) (*domain.DailyValue, error) {
	query, args, err := squirrel.
		Insert(dailyValuesTable).
		Columns("day", "nps_value", "month", "year").
		Values(value.Day, value.NpsValue, value.Month, value.Year).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&value.ID)
	if err != nil {
		return nil, wrapPqError(err)
	}

	return value, nil
}

func (r *dailyValueRepository) UpdateValue(ctx context.Context, id int64, npsValue int) error {
	query, args, err := squirrel.
		Update(dailyValuesTable).
		Set("nps_value", npsValue).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapPqError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
