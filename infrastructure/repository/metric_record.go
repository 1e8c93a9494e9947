package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
)

const metricRecordsTable = "metric_records"

type MetricRecordRepository interface {
	ListByPeriod(ctx context.Context, month, year int) ([]*domain.MetricRecord, error)
	GetByCardKeyAndPeriod(ctx context.Context, cardKey domain.CardKey, month, year int) (*domain.MetricRecord, error)
	Insert(ctx context.Context, record *domain.MetricRecord) (*domain.MetricRecord, error)
	UpdateValue(ctx context.Context, id int64, value string) error
}

type metricRecordRepository struct {
	conn *postgres.Connection
}

func NewMetricRecordRepository(conn *postgres.Connection) MetricRecordRepository {
	return &metricRecordRepository{
		conn: conn,
	}
}

func (r *metricRecordRepository) ListByPeriod(ctx context.Context, month, year int) ([]*domain.MetricRecord, error) {
	query, args, err := squirrel.
		Select("id", "card_key", "value", "month", "year", "created_at", "updated_at").
		From(metricRecordsTable).
		Where(squirrel.Eq{"month": month, "year": year}).
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

	records := make([]*domain.MetricRecord, 0)
	for rows.Next() {
		record := &domain.MetricRecord{}
		if err := rows.Scan(
			&record.ID,
			&record.CardKey,
			&record.Value,
			&record.Month,
			&record.Year,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear metric record: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *metricRecordRepository) GetByCardKeyAndPeriod(ctx context.Context, cardKey domain.CardKey, month, year int) (*domain.MetricRecord, error) {
	query, args, err := squirrel.
		Select("id", "card_key", "value", "month", "year", "created_at", "updated_at").
		From(metricRecordsTable).
		Where(squirrel.Eq{"card_key": cardKey, "month": month, "year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record := &domain.MetricRecord{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.CardKey,
		&record.Value,
		&record.Month,
		&record.Year,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear metric record: %w", err)
	}

	return record, nil
}

func (r *metricRecordRepository) Insert(ctx context.Context, record *domain.MetricRecord) (*domain.MetricRecord, error) {
	query, args, err := squirrel.
		Insert(metricRecordsTable).
		Columns("card_key", "value", "month", "year").
		Values(record.CardKey, record.Value, record.Month, record.Year).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&record.ID)
	if err != nil {
		return nil, wrapPqError(err)
	}

	return record, nil
}

func (r *metricRecordRepository) UpdateValue(ctx context.Context, id int64, value string) error {
	query, args, err := squirrel.
		Update(metricRecordsTable).
		Set("value", value).
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
