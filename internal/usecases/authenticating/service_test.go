package authenticating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/nps-dashboard-api/internal/config"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			TokenTTLHours:      24,
			ResetTokenTTLHours: 2,
		},
		Access: config.Access{
			StaffPolicy: config.StaffPolicyRequireRole,
		},
		SecretKey: "segredo-de-teste",
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockRoleRepo := mocks.NewMockRoleAssignmentRepository(ctrl)
	service := NewService(mockUserRepo, mockRoleRepo, testConfig())
	ctx := context.Background()

	t.Run("Login válido emite JWT com os papéis nas claims", func(t *testing.T) {
		user := &domain.User{
			ID:           1,
			Name:         "Maria",
			Email:        "maria@empresa.com.br",
			PasswordHash: hashPassword(t, "Senha123"),
			Active:       true,
			Confirmed:    true,
			Roles:        []domain.Role{domain.RoleAdmin},
		}

		mockUserRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "maria@empresa.com.br").
			Return(user, nil)

		token, err := service.LoginUser(ctx, "  Maria@Empresa.com.br ", "Senha123")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.True(t, claims.HasRole(domain.RoleAdmin))
		assert.False(t, claims.HasRole(domain.RoleStaff))
	})

	t.Run("Conta sem papéis loga normalmente — o gate decide depois", func(t *testing.T) {
		user := &domain.User{
			ID:           2,
			Email:        "novo@empresa.com.br",
			PasswordHash: hashPassword(t, "Senha123"),
			Active:       true,
			Confirmed:    true,
		}

		mockUserRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "novo@empresa.com.br").
			Return(user, nil)

		token, err := service.LoginUser(ctx, "novo@empresa.com.br", "Senha123")
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Empty(t, claims.UserRoles)
	})

	t.Run("Senha incorreta devolve erro de credenciais", func(t *testing.T) {
		user := &domain.User{
			ID:           1,
			Email:        "maria@empresa.com.br",
			PasswordHash: hashPassword(t, "Senha123"),
			Active:       true,
			Confirmed:    true,
		}

		mockUserRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "maria@empresa.com.br").
			Return(user, nil)

		token, err := service.LoginUser(ctx, "maria@empresa.com.br", "errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
		assert.True(t, IsCredentialsError(err))
	})

	t.Run("E-mail não confirmado bloqueia mesmo com senha correta", func(t *testing.T) {
		user := &domain.User{
			ID:           3,
			Email:        "pendente@empresa.com.br",
			PasswordHash: hashPassword(t, "Senha123"),
			Active:       true,
			Confirmed:    false,
		}

		mockUserRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "pendente@empresa.com.br").
			Return(user, nil)

		token, err := service.LoginUser(ctx, "pendente@empresa.com.br", "Senha123")
		assert.ErrorIs(t, err, ErrEmailNotConfirmed)
		assert.Empty(t, token)

		var authErr *AuthError
		assert.ErrorAs(t, err, &authErr)
		assert.Equal(t, "AUTH_004", authErr.Code)
		assert.Equal(t, 3, authErr.UserID)
	})

	t.Run("Usuário inexistente devolve erro específico", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "ninguem@empresa.com.br").
			Return(nil, nil)

		token, err := service.LoginUser(ctx, "ninguem@empresa.com.br", "Senha123")
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Empty(t, token)
	})

	t.Run("Conta desativada bloqueia antes da senha", func(t *testing.T) {
		user := &domain.User{
			ID:           4,
			Email:        "inativa@empresa.com.br",
			PasswordHash: hashPassword(t, "Senha123"),
			Active:       false,
			Confirmed:    true,
		}

		mockUserRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "inativa@empresa.com.br").
			Return(user, nil)

		_, err := service.LoginUser(ctx, "inativa@empresa.com.br", "Senha123")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Campos vazios são rejeitados sem ida ao banco", func(t *testing.T) {
		_, err := service.LoginUser(ctx, "", "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockRoleRepo := mocks.NewMockRoleAssignmentRepository(ctrl)
	service := NewService(mockUserRepo, mockRoleRepo, testConfig())
	ctx := context.Background()

	t.Run("Registro cria conta não confirmada com token de confirmação", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "novo@empresa.com.br").
			Return(nil, nil)
		mockUserRepo.EXPECT().
			CreateUser(gomock.Any(), gomock.Cond(func(u *domain.User) bool {
				return !u.Confirmed && u.Active && u.ConfirmationToken != nil && len(*u.ConfirmationToken) == 32
			})).
			DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
				u.ID = 10
				return u, nil
			})

		user, err := service.Register(ctx, &domain.User{
			Name:         "Novo",
			Lastname:     "Usuário",
			Email:        "Novo@Empresa.com.br",
			PasswordHash: "Senha123",
		})
		assert.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Equal(t, "novo@empresa.com.br", user.Email)
		assert.NotEqual(t, "Senha123", user.PasswordHash)
	})

	t.Run("E-mail já cadastrado é rejeitado", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "maria@empresa.com.br").
			Return(&domain.User{ID: 1}, nil)

		user, err := service.Register(ctx, &domain.User{
			Name:         "Maria",
			Lastname:     "Silva",
			Email:        "maria@empresa.com.br",
			PasswordHash: "Senha123",
		})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assert.Nil(t, user)
	})

	t.Run("Senha fraca é rejeitada antes do banco", func(t *testing.T) {
		user, err := service.Register(ctx, &domain.User{
			Name:         "Fraco",
			Lastname:     "Senha",
			Email:        "fraco@empresa.com.br",
			PasswordHash: "abc",
		})
		assert.ErrorIs(t, err, ErrWeakPassword)
		assert.Nil(t, user)
	})
}

func TestService_ConfirmEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockRoleRepo := mocks.NewMockRoleAssignmentRepository(ctrl)
	service := NewService(mockUserRepo, mockRoleRepo, testConfig())
	ctx := context.Background()

	t.Run("Confirmação consome o token", func(t *testing.T) {
		token := "token-de-confirmacao"
		user := &domain.User{ID: 5, Confirmed: false, ConfirmationToken: &token}

		mockUserRepo.EXPECT().
			GetUserByConfirmationToken(gomock.Any(), token).
			Return(user, nil)
		mockUserRepo.EXPECT().
			UpdateUser(gomock.Any(), gomock.Cond(func(u *domain.User) bool {
				return u.Confirmed && u.ConfirmationToken == nil
			})).
			Return(nil)

		assert.NoError(t, service.ConfirmEmail(ctx, token))
	})

	t.Run("Token desconhecido é rejeitado", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByConfirmationToken(gomock.Any(), "inexistente").
			Return(nil, nil)

		err := service.ConfirmEmail(ctx, "inexistente")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_PasswordReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockRoleRepo := mocks.NewMockRoleAssignmentRepository(ctrl)
	service := NewService(mockUserRepo, mockRoleRepo, testConfig())
	ctx := context.Background()

	t.Run("Pedido de redefinição grava token com validade", func(t *testing.T) {
		user := &domain.User{ID: 1, Email: "maria@empresa.com.br", Active: true, Confirmed: true}

		mockUserRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "maria@empresa.com.br").
			Return(user, nil)
		mockUserRepo.EXPECT().
			UpdateUser(gomock.Any(), gomock.Cond(func(u *domain.User) bool {
				return u.ResetToken != nil && u.ResetTokenExpiresAt != nil && u.ResetTokenExpiresAt.After(time.Now())
			})).
			Return(nil)

		token, err := service.RequestPasswordReset(ctx, "maria@empresa.com.br")
		assert.NoError(t, err)
		assert.Len(t, token, 32)
	})

	t.Run("E-mail desconhecido não devolve erro nem token", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "ninguem@empresa.com.br").
			Return(nil, nil)

		token, err := service.RequestPasswordReset(ctx, "ninguem@empresa.com.br")
		assert.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("Redefinição com token expirado é rejeitada", func(t *testing.T) {
		token := "token-expirado"
		expired := time.Now().Add(-time.Hour)
		user := &domain.User{ID: 1, ResetToken: &token, ResetTokenExpiresAt: &expired}

		mockUserRepo.EXPECT().
			GetUserByResetToken(gomock.Any(), token).
			Return(user, nil)

		err := service.ResetPassword(ctx, token, "NovaSenha123")
		assert.ErrorIs(t, err, ErrInvalidResetToken)
	})

	t.Run("Redefinição válida troca a senha e apaga o token", func(t *testing.T) {
		token := "token-valido"
		expires := time.Now().Add(time.Hour)
		user := &domain.User{ID: 1, ResetToken: &token, ResetTokenExpiresAt: &expires}

		mockUserRepo.EXPECT().
			GetUserByResetToken(gomock.Any(), token).
			Return(user, nil)
		mockUserRepo.EXPECT().
			UpdateUser(gomock.Any(), gomock.Cond(func(u *domain.User) bool {
				return u.ResetToken == nil && u.ResetTokenExpiresAt == nil && u.PasswordHash != ""
			})).
			Return(nil)

		assert.NoError(t, service.ResetPassword(ctx, token, "NovaSenha123"))
	})
}

func TestService_ManageUserRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockRoleRepo := mocks.NewMockRoleAssignmentRepository(ctrl)
	service := NewService(mockUserRepo, mockRoleRepo, testConfig())
	ctx := context.Background()

	t.Run("Sincroniza papéis: revoga os que saíram e atribui os que entraram", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByID(gomock.Any(), 7).
			Return(&domain.User{ID: 7}, nil)
		mockRoleRepo.EXPECT().
			GetRolesByUserID(gomock.Any(), 7).
			Return([]domain.Role{domain.RoleStaff}, nil)
		mockRoleRepo.EXPECT().
			RevokeRole(gomock.Any(), 7, domain.RoleStaff).
			Return(nil)
		mockRoleRepo.EXPECT().
			AssignRole(gomock.Any(), 7, domain.RoleAdmin).
			Return(nil)

		assert.NoError(t, service.ManageUserRoles(ctx, 7, []domain.Role{domain.RoleAdmin}))
	})

	t.Run("Papel desconhecido é rejeitado antes do banco", func(t *testing.T) {
		err := service.ManageUserRoles(ctx, 7, []domain.Role{"superuser"})
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockRoleRepo := mocks.NewMockRoleAssignmentRepository(ctrl)
	service := NewService(mockUserRepo, mockRoleRepo, testConfig())

	t.Run("Token adulterado é rejeitado", func(t *testing.T) {
		claims, err := service.ValidateToken("cabecalho.corpo.assinatura")
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Token vazio é rejeitado", func(t *testing.T) {
		claims, err := service.ValidateToken("")
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})
}
