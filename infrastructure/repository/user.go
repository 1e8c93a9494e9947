package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
)

const usersTable = "users"

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
	GetUserByConfirmationToken(ctx context.Context, token string) (*domain.User, error)
	GetUserByResetToken(ctx context.Context, token string) (*domain.User, error)
	ListUser(ctx context.Context) ([]*domain.User, error)
}

type userRepository struct {
	conn     *postgres.Connection
	roleRepo RoleAssignmentRepository
}

func NewUserRepository(conn *postgres.Connection, roleRepo RoleAssignmentRepository) UserRepository {
	return &userRepository{
		conn:     conn,
		roleRepo: roleRepo,
	}
}

const userColumns = "id, name, lastname, email, password_hash, active, confirmed, " +
	"confirmation_token, reset_token, reset_token_expires_at, created_at, updated_at"

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	query, args, err := squirrel.
		Insert(usersTable).
		Columns("name", "lastname", "email", "password_hash", "active", "confirmed", "confirmation_token").
		Values(user.Name, user.Lastname, user.Email, user.PasswordHash, user.Active, user.Confirmed, user.ConfirmationToken).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&user.ID)
	if err != nil {
		return nil, wrapPqError(err)
	}

	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	builder := squirrel.
		Update(usersTable).
		Set("active", user.Active).
		Set("confirmed", user.Confirmed).
		Set("confirmation_token", user.ConfirmationToken).
		Set("reset_token", user.ResetToken).
		Set("reset_token_expires_at", user.ResetTokenExpiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": user.ID})

	if user.Name != "" {
		builder = builder.Set("name", user.Name)
	}

	if user.Lastname != "" {
		builder = builder.Set("lastname", user.Lastname)
	}

	if user.Email != "" {
		builder = builder.Set("email", user.Email)
	}

	if user.PasswordHash != "" {
		builder = builder.Set("password_hash", user.PasswordHash)
	}

	if user.Deleted {
		builder = builder.Set("deleted", true)
		builder = builder.Set("deleted_at", user.DeletedAt)
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapPqError(err)
	}

	return nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUserBy(ctx, squirrel.Eq{"email": email})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	return r.getUserBy(ctx, squirrel.Eq{"deleted": false, "id": userID})
}

func (r *userRepository) GetUserByConfirmationToken(ctx context.Context, token string) (*domain.User, error) {
	return r.getUserBy(ctx, squirrel.Eq{"confirmation_token": token})
}

func (r *userRepository) GetUserByResetToken(ctx context.Context, token string) (*domain.User, error) {
	return r.getUserBy(ctx, squirrel.Eq{"reset_token": token})
}

func (r *userRepository) getUserBy(ctx context.Context, pred squirrel.Eq) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns).
		From(usersTable).
		Where(pred).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	user, err := r.scanUser(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	r.attachRoles(ctx, user)
	return user, nil
}

func (r *userRepository) ListUser(ctx context.Context) ([]*domain.User, error) {
	query, args, err := squirrel.
		Select("id", "name", "lastname", "email", "active", "confirmed", "created_at", "updated_at").
		From(usersTable).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Lastname,
			&user.Email,
			&user.Active,
			&user.Confirmed,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}

		r.attachRoles(ctx, &user)
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var resetExpires sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.Confirmed,
		&user.ConfirmationToken,
		&user.ResetToken,
		&resetExpires,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if resetExpires.Valid {
		expiresAt := resetExpires.Time
		user.ResetTokenExpiresAt = &expiresAt
	}

	return &user, nil
}

// attachRoles busca os papéis do usuário; falha aqui não derruba a consulta,
// o usuário apenas fica sem papéis carregados
func (r *userRepository) attachRoles(ctx context.Context, user *domain.User) {
	roles, err := r.roleRepo.GetRolesByUserID(ctx, user.ID)
	if err != nil {
		logrus.Warnf("Erro ao buscar papéis do usuário %d: %v", user.ID, err)
		return
	}
	user.Roles = roles
}
