package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
)

const commentsTable = "comments"

type CommentRepository interface {
	List(ctx context.Context, filter domain.CommentFilter) ([]*domain.Comment, error)
	Insert(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	Update(ctx context.Context, id int64, update domain.CommentUpdate) error
	Delete(ctx context.Context, id int64) error
}

type commentRepository struct {
	conn *postgres.Connection
}

func NewCommentRepository(conn *postgres.Connection) CommentRepository {
	return &commentRepository{
		conn: conn,
	}
}

// List retorna os comentários da janela em ordem decrescente de data de
// avaliação. Os filtros são conjuntivos: categoria por igualdade exata e
// busca por substring case-insensitive no nome do cliente.
func (r *commentRepository) List(ctx context.Context, filter domain.CommentFilter) ([]*domain.Comment, error) {
	builder := squirrel.
		Select("id", "client_name", "comment", "evaluation_date", "nps_score",
			"category", "status", "month", "year", "created_at", "updated_at").
		From(commentsTable).
		Where(squirrel.Eq{"month": filter.Month, "year": filter.Year}).
		OrderBy("evaluation_date DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Category != "" {
		builder = builder.Where(squirrel.Eq{"category": filter.Category})
	}

	if filter.Search != "" {
		builder = builder.Where(squirrel.ILike{"client_name": "%" + filter.Search + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		comment := &domain.Comment{}
		if err := rows.Scan(
			&comment.ID,
			&comment.ClientName,
			&comment.Comment,
			&comment.EvaluationDate,
			&comment.NpsScore,
			&comment.Category,
			&comment.Status,
			&comment.Month,
			&comment.Year,
			&comment.CreatedAt,
			&comment.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear comentário: %w", err)
		}
		comments = append(comments, comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) Insert(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	query, args, err := squirrel.
		Insert(commentsTable).
		Columns("client_name", "comment", "evaluation_date", "nps_score",
			"category", "status", "month", "year").
		Values(
			comment.ClientName,
			comment.Comment,
			comment.EvaluationDate,
			comment.NpsScore,
			comment.Category,
			comment.Status,
			comment.Month,
			comment.Year,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&comment.ID)
	if err != nil {
		return nil, wrapPqError(err)
	}

	return comment, nil
}

// Update aplica um update parcial: somente campos não-nil entram no SET
func (r *commentRepository) Update(ctx context.Context, id int64, update domain.CommentUpdate) error {
	builder := squirrel.
		Update(commentsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.ClientName != nil {
		builder = builder.Set("client_name", *update.ClientName)
	}

	if update.Comment != nil {
		builder = builder.Set("comment", *update.Comment)
	}

	if update.EvaluationDate != nil {
		builder = builder.Set("evaluation_date", *update.EvaluationDate)
		builder = builder.Set("month", int(update.EvaluationDate.Month()))
		builder = builder.Set("year", update.EvaluationDate.Year())
	}

	if update.NpsScore != nil {
		builder = builder.Set("nps_score", *update.NpsScore)
	}

	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}

	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
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

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := squirrel.
		Delete(commentsTable).
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
