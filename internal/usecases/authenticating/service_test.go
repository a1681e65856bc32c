package authenticating

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/publimais-api/infrastructure/repository/mocks"
	"github.com/vfg2006/publimais-api/internal/config"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{Auth: config.Auth{Secret: "segredo-de-teste", TokenDuration: time.Hour}}
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	tests := []struct {
		name     string
		user     *domain.User
		setup    func()
		wantCode string
	}{
		{
			name:     "Campos obrigatórios ausentes",
			user:     &domain.User{Email: "ana@publimais.app"},
			setup:    func() {},
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "Cadastro como admin não é permitido",
			user:     &domain.User{Name: "Ana", Email: "ana@publimais.app", PasswordHash: "Senha@123", RoleID: RoleAdmin},
			setup:    func() {},
			wantCode: apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:     "Senha fraca",
			user:     &domain.User{Name: "Ana", Email: "ana@publimais.app", PasswordHash: "123"},
			setup:    func() {},
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name: "Email já cadastrado",
			user: &domain.User{Name: "Ana", Email: " ANA@publimais.app ", PasswordHash: "Senha@123"},
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail("ana@publimais.app").Return(&domain.User{ID: 1}, nil)
			},
			wantCode: apiErrors.ErrUserAlreadyExists,
		},
		{
			name: "Erro de banco ao criar",
			user: &domain.User{Name: "Ana", Email: "ana@publimais.app", PasswordHash: "Senha@123"},
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail("ana@publimais.app").Return(nil, nil)
				mockUserRepo.EXPECT().CreateUser(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			user, err := service.CreateUser(tt.user)

			assert.Nil(t, user)
			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.wantCode, authErr.Code)
		})
	}

	t.Run("Cadastro com sucesso", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("ana@publimais.app").Return(nil, nil)
		mockUserRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
			assert.True(t, u.Active)
			assert.Equal(t, RoleInfluencer, u.RoleID)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Senha@123")))
			u.ID = 10
			return u, nil
		})

		user, err := service.CreateUser(&domain.User{Name: "Ana", Email: "ana@publimais.app", PasswordHash: "Senha@123"})

		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Empty(t, user.PasswordHash)
	})
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())
	passwordHash := hash(t, "Senha@123")

	t.Run("Usuário inexistente", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("x@publimais.app").Return(nil, nil)

		_, err := service.LoginUser("x@publimais.app", "Senha@123")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Usuário desativado", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("ana@publimais.app").Return(&domain.User{ID: 1, Active: false, PasswordHash: passwordHash}, nil)

		_, err := service.LoginUser("ana@publimais.app", "Senha@123")

		assert.ErrorIs(t, err, ErrUserDisabled)
		assert.True(t, IsCredentialsError(err))
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("ana@publimais.app").Return(&domain.User{ID: 1, Active: true, PasswordHash: passwordHash}, nil)

		_, err := service.LoginUser("ana@publimais.app", "errada")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Token válido com as claims do usuário", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("ana@publimais.app").
			Return(&domain.User{ID: 1, Name: "Ana", Email: "ana@publimais.app", Active: true, RoleID: RoleInfluencer, PasswordHash: passwordHash}, nil)

		token, err := service.LoginUser("ana@publimais.app", "Senha@123")
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, RoleInfluencer, claims.UserRoleID)
		assert.Equal(t, "ana@publimais.app", claims.UserEmail)
	})
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService(nil, testConfig())

	t.Run("Token expirado", func(t *testing.T) {
		token, err := generateJWT(&domain.User{ID: 1}, "segredo-de-teste", -time.Minute)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("Assinado com outro segredo", func(t *testing.T) {
		token, err := generateJWT(&domain.User{ID: 1}, "outro", time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())
	passwordHash := hash(t, "Senha@123")

	t.Run("Usuário não encontrado", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(5).Return(nil, sql.ErrNoRows)

		assert.ErrorIs(t, service.ChangePassword(5, "a", "b"), ErrUserNotFound)
	})

	t.Run("Senha atual incorreta", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, PasswordHash: passwordHash}, nil)

		assert.ErrorIs(t, service.ChangePassword(1, "errada", "Nova@1234"), ErrWrongPassword)
	})

	t.Run("Nova senha igual à atual", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, PasswordHash: passwordHash}, nil)

		assert.ErrorIs(t, service.ChangePassword(1, "Senha@123", "Senha@123"), ErrSamePassword)
	})

	t.Run("Nova senha fraca", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, PasswordHash: passwordHash}, nil)

		err := service.ChangePassword(1, "Senha@123", "fraca")

		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("Troca com sucesso", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, PasswordHash: passwordHash}, nil)
		mockUserRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(u *domain.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Nova@1234")))
			return nil
		})

		assert.NoError(t, service.ChangePassword(1, "Senha@123", "Nova@1234"))
	})
}

func TestService_GenerateStrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	t.Run("Apenas administradores", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(2).Return(&domain.User{ID: 2, RoleID: RoleAgency}, nil)

		_, err := service.GenerateStrongPassword(2, 3)

		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})

	t.Run("Gera senha que passa na validação", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: RoleAdmin}, nil)
		mockUserRepo.EXPECT().GetUserByID(3).Return(&domain.User{ID: 3, RoleID: RoleInfluencer}, nil)
		mockUserRepo.EXPECT().UpdateUser(gomock.Any()).Return(nil)

		password, err := service.GenerateStrongPassword(1, 3)

		require.NoError(t, err)
		assert.Len(t, password, 12)
		assert.NoError(t, service.ValidatePasswordStrength(password))
	})
}

func TestService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	bio := "Criadora de conteúdo de moda"
	mockUserRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, Name: "Ana", PasswordHash: "hash"}, nil)
	mockUserRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(u *domain.User) error {
		assert.Empty(t, u.PasswordHash)
		assert.Equal(t, &bio, u.Bio)
		return nil
	})

	user, err := service.UpdateProfile(1, &domain.UpdateProfileRequest{Bio: &bio})

	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
}
