package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
)

const roleAssignmentsTable = "role_assignments"

type RoleAssignmentRepository interface {
	GetRolesByUserID(ctx context.Context, userID int) ([]domain.Role, error)
	HasRole(ctx context.Context, userID int, role domain.Role) (bool, error)
	AssignRole(ctx context.Context, userID int, role domain.Role) error
	RevokeRole(ctx context.Context, userID int, role domain.Role) error
}

type roleAssignmentRepository struct {
	conn *postgres.Connection
}

func NewRoleAssignmentRepository(conn *postgres.Connection) RoleAssignmentRepository {
	return &roleAssignmentRepository{
		conn: conn,
	}
}

func (r *roleAssignmentRepository) GetRolesByUserID(ctx context.Context, userID int) ([]domain.Role, error) {
	query, args, err := squirrel.
		Select("role").
		From(roleAssignmentsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("role ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar papéis: %w", err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("erro ao escanear papel: %w", err)
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return roles, nil
}

func (r *roleAssignmentRepository) HasRole(ctx context.Context, userID int, role domain.Role) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(1)").
		From(roleAssignmentsTable).
		Where(squirrel.Eq{"user_id": userID, "role": role}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("erro ao consultar papel: %w", err)
	}

	return count > 0, nil
}

func (r *roleAssignmentRepository) AssignRole(ctx context.Context, userID int, role domain.Role) error {
	query, args, err := squirrel.
		Insert(roleAssignmentsTable).
		Columns("user_id", "role").
		Values(userID, role).
		Suffix("ON CONFLICT (user_id, role) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atribuir papel: %w", err)
	}

	return nil
}

func (r *roleAssignmentRepository) RevokeRole(ctx context.Context, userID int, role domain.Role) error {
	query, args, err := squirrel.
		Delete(roleAssignmentsTable).
		Where(squirrel.Eq{"user_id": userID, "role": role}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao revogar papel: %w", err)
	}

	return nil
}
