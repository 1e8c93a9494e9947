package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nps-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/nps-dashboard-api/internal/config"
	"github.com/vfg2006/nps-dashboard-api/internal/domain"
	errorcodes "github.com/vfg2006/nps-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/nps-dashboard-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	Register(ctx context.Context, user *domain.User) (*domain.User, error)
	ConfirmEmail(ctx context.Context, token string) error
	ResendConfirmation(ctx context.Context, email string) (string, error)
	LoginUser(ctx context.Context, email, password string) (string, error)
	Logout(claims *domain.Claims)
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	GetUserProfile(ctx context.Context, userID int) (*domain.User, error)
	ListUser(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.UpdateUserRequest) error
	ManageUserRoles(ctx context.Context, userID int, roles []domain.Role) error
	ValidateToken(tokenString string) (*domain.Claims, error)
	ValidatePasswordStrength(password string) error
}

type Service struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleAssignmentRepository
	cfg      *config.Config
}

func NewService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleAssignmentRepository,
	cfg *config.Config,
) Authenticator {
	return &Service{
		userRepo: userRepo,
		roleRepo: roleRepo,
		cfg:      cfg,
	}
}

// Register cria o usuário com e-mail não confirmado e sem papéis. A conta só
// entra no dashboard depois da confirmação do e-mail e da atribuição de um
// papel por um administrador.
func (s *Service) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.Email == "" || user.Name == "" || user.Lastname == "" || user.PasswordHash == "" {
		return nil, NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "Email, nome, sobrenome e senha são obrigatórios")
	}

	if err := s.ValidatePasswordStrength(user.PasswordHash); err != nil {
		return nil, NewAuthError(ErrWeakPassword, errorcodes.ErrInvalidFormat, err.Error())
	}

	user.Email = handleEmail(user.Email)

	userDatabase, err := s.userRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if userDatabase != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, errorcodes.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	confirmationToken, err := utils.GenerateToken()
	if err != nil {
		return nil, NewAuthError(err, errorcodes.ErrInternalServer, "Erro ao gerar token de confirmação")
	}

	user.PasswordHash = string(hashedPassword)
	user.Active = true
	user.Confirmed = false
	user.ConfirmationToken = &confirmationToken

	user, err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewAuthError(ErrUserAlreadyExists, errorcodes.ErrUserAlreadyExists, "Email já cadastrado")
		}
		return nil, NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	// O envio do e-mail fica com a camada de notificação; aqui registramos
	// para auditoria em ambiente de desenvolvimento
	logrus.Infof("Usuário %d registrado, aguardando confirmação de e-mail", user.ID)

	return user, nil
}

// ConfirmEmail consome o token de confirmação. O token é de uso único: a
// confirmação o apaga do registro.
func (s *Service) ConfirmEmail(ctx context.Context, token string) error {
	if token == "" {
		return NewAuthError(ErrInvalidToken, errorcodes.ErrInvalidToken, "Token de confirmação ausente")
	}

	user, err := s.userRepo.GetUserByConfirmationToken(ctx, token)
	if err != nil {
		return NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar token de confirmação")
	}
	if user == nil {
		return NewAuthError(ErrInvalidToken, errorcodes.ErrInvalidToken, "Token de confirmação inválido")
	}

	user.Confirmed = true
	user.ConfirmationToken = nil

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return NewUserAuthError(err, errorcodes.ErrDatabaseOperation, user.ID, "Erro ao confirmar e-mail")
	}

	return nil
}

// ResendConfirmation gera um novo token de confirmação para contas ainda não
// confirmadas e o devolve para a camada de notificação.
func (s *Service) ResendConfirmation(ctx context.Context, email string) (string, error) {
	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if user == nil {
		return "", NewAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, "Usuário não encontrado")
	}
	if user.Confirmed {
		return "", NewUserAuthError(ErrInvalidRequest, errorcodes.ErrInvalidRequest, user.ID, "E-mail já confirmado")
	}

	confirmationToken, err := utils.GenerateToken()
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrInternalServer, "Erro ao gerar token de confirmação")
	}

	user.ConfirmationToken = &confirmationToken
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", NewUserAuthError(err, errorcodes.ErrDatabaseOperation, user.ID, "Erro ao salvar token de confirmação")
	}

	return confirmationToken, nil
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	// Validação de entrada
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	// Verificar se o usuário existe
	if user == nil {
		return "", NewAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, "Usuário não encontrado")
	}

	// Verificar se o usuário está ativo
	if !user.Active || user.Deleted {
		return "", NewUserAuthError(ErrUserDisabled, errorcodes.ErrUserDisabled, user.ID, "Conta desativada")
	}

	// Verificar senha
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, errorcodes.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	// Confirmação de e-mail vem depois da senha: o aviso "confirme seu e-mail"
	// só aparece para quem provou ser o dono da conta
	if !user.Confirmed {
		return "", NewUserAuthError(ErrEmailNotConfirmed, errorcodes.ErrEmailNotConfirmed, user.ID, "Confirme seu e-mail antes de entrar")
	}

	// Gerar token JWT com os papéis embutidos; o gate de acesso decide com
	// eles sem nova ida ao banco. Uma conta sem papéis loga normalmente e
	// fica em "aguardando liberação".
	token, err := generateJWT(user, s.cfg.SecretKey, s.cfg.Auth.TokenTTLHours)
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

// Logout apenas registra o evento: o JWT é stateless e expira sozinho,
// descartá-lo é responsabilidade do cliente.
func (s *Service) Logout(claims *domain.Claims) {
	if claims == nil {
		return
	}
	logrus.Infof("Logout do usuário %d (%s)", claims.UserID, claims.UserEmail)
}

// RequestPasswordReset gera um token de redefinição com validade curta e o
// devolve para a camada de notificação. Para e-mails desconhecidos não
// devolve erro, evitando enumeração de contas.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if user == nil {
		logrus.Warnf("Pedido de redefinição para e-mail desconhecido: %s", email)
		return "", nil
	}

	resetToken, err := utils.GenerateToken()
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrInternalServer, "Erro ao gerar token de redefinição")
	}

	expiresAt := time.Now().Add(time.Duration(s.cfg.Auth.ResetTokenTTLHours) * time.Hour)
	user.ResetToken = &resetToken
	user.ResetTokenExpiresAt = &expiresAt

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", NewUserAuthError(err, errorcodes.ErrDatabaseOperation, user.ID, "Erro ao salvar token de redefinição")
	}

	return resetToken, nil
}

// ResetPassword consome o token de redefinição e grava a nova senha.
// O token expira pelo relógio e é de uso único.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return NewAuthError(ErrInvalidResetToken, errorcodes.ErrInvalidResetToken, "Token de redefinição ausente")
	}

	user, err := s.userRepo.GetUserByResetToken(ctx, token)
	if err != nil {
		return NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar token de redefinição")
	}
	if user == nil {
		return NewAuthError(ErrInvalidResetToken, errorcodes.ErrInvalidResetToken, "Token de redefinição inválido")
	}

	if user.ResetTokenExpiresAt == nil || time.Now().After(*user.ResetTokenExpiresAt) {
		return NewUserAuthError(ErrInvalidResetToken, errorcodes.ErrInvalidResetToken, user.ID, "Token de redefinição expirado")
	}

	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return NewUserAuthError(ErrWeakPassword, errorcodes.ErrInvalidFormat, user.ID, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	user.ResetToken = nil
	user.ResetTokenExpiresAt = nil

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return NewUserAuthError(err, errorcodes.ErrDatabaseOperation, user.ID, "Erro ao redefinir senha")
	}

	return nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, fmt.Sprintf("Usuário %d não encontrado", userID))
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ListUser(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.ListUser(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Service) UpdateUser(ctx context.Context, user *domain.UpdateUserRequest) error {
	if user.ID == 0 {
		return NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "ID é obrigatório")
	}

	userDatabase, err := s.userRepo.GetUserByID(ctx, user.ID)
	if userDatabase == nil || err != nil {
		if err == nil {
			return NewAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, fmt.Sprintf("Usuário %d não encontrado", user.ID))
		}
		return err
	}

	if user.Name != nil {
		userDatabase.Name = *user.Name
	}

	if user.Lastname != nil {
		userDatabase.Lastname = *user.Lastname
	}

	if user.Email != nil {
		userDatabase.Email = handleEmail(*user.Email)
	}

	if user.Active != nil {
		userDatabase.Active = *user.Active
	}

	if user.Deleted != nil {
		now := time.Now()
		userDatabase.Deleted = *user.Deleted
		userDatabase.DeletedAt = &now
	}

	err = s.userRepo.UpdateUser(ctx, userDatabase)
	if err != nil {
		return err
	}

	return nil
}

// ManageUserRoles sincroniza os papéis de um usuário com a lista informada:
// revoga os que saíram e atribui os que entraram.
func (s *Service) ManageUserRoles(ctx context.Context, userID int, roles []domain.Role) error {
	for _, role := range roles {
		if !domain.ValidRole(role) {
			return NewAuthError(ErrInvalidFormat, errorcodes.ErrInvalidFormat, fmt.Sprintf("Papel desconhecido: %s", role))
		}
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return NewAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, fmt.Sprintf("Usuário %d não encontrado", userID))
	}

	currentRoles, err := s.roleRepo.GetRolesByUserID(ctx, userID)
	if err != nil {
		return err
	}

	// Revogar papéis que não estão na nova lista
	for _, current := range currentRoles {
		found := false
		for _, role := range roles {
			if current == role {
				found = true
				break
			}
		}

		if !found {
			if err := s.roleRepo.RevokeRole(ctx, userID, current); err != nil {
				logrus.Warnf("Erro ao revogar papel %s do usuário %d: %v", current, userID, err)
				// Continuar mesmo com erro
			}
		}
	}

	// Atribuir papéis novos
	for _, role := range roles {
		found := false
		for _, current := range currentRoles {
			if current == role {
				found = true
				break
			}
		}

		if !found {
			if err := s.roleRepo.AssignRole(ctx, userID, role); err != nil {
				logrus.Warnf("Erro ao atribuir papel %s ao usuário %d: %v", role, userID, err)
				// Continuar mesmo com erro
			}
		}
	}

	return nil
}

func generateJWT(user *domain.User, secretKey string, ttlHours int) (string, error) {
	claims := domain.Claims{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		UserRoles: user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(ttlHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, errorcodes.ErrExpiredToken, "Token expirado")
		}
		return nil, NewAuthError(ErrInvalidToken, errorcodes.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, errorcodes.ErrInvalidToken, "Token inválido")
}

// ValidatePasswordStrength verifica se a senha atende aos requisitos de segurança
// Senha deve conter pelo menos 8 caracteres, incluindo maiúsculas, minúsculas e números
func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("a senha deve conter pelo menos 8 caracteres")
	}

	var (
		hasUpper  bool
		hasLower  bool
		hasNumber bool
	)

	const (
		lowerChars  = "abcdefghijklmnopqrstuvwxyz"
		upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars = "0123456789"
	)

	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		}
	}

	if !hasUpper {
		return errors.New("a senha deve conter pelo menos uma letra maiúscula")
	}
	if !hasLower {
		return errors.New("a senha deve conter pelo menos uma letra minúscula")
	}
	if !hasNumber {
		return errors.New("a senha deve conter pelo menos um número")
	}

	return nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
