package packaging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/publimais-api/infrastructure/repository/mocks"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestService_CreatePackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdPackageRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Cria pacote com itens limpos", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(pkg *domain.AdPackage) (*domain.AdPackage, error) {
			assert.Len(t, pkg.ID, 12)
			assert.Equal(t, 7, pkg.UserID)
			assert.True(t, pkg.IsActive)
			return pkg, nil
		})

		pkg, err := service.CreatePackage(7, &domain.CreateAdPackageRequest{
			Title:        "  Pacote Stories ",
			Price:        1500,
			DeliveryDays: 5,
			Includes:     []string{"3 stories", " ", "1 reels", ""},
		})

		require.NoError(t, err)
		assert.Equal(t, "Pacote Stories", pkg.Title)
		assert.Equal(t, []string{"3 stories", "1 reels"}, pkg.Includes)
	})

	tests := []struct {
		name    string
		request domain.CreateAdPackageRequest
		wantErr error
	}{
		{
			name:    "Título obrigatório",
			request: domain.CreateAdPackageRequest{Title: "   ", Price: 10, DeliveryDays: 1},
			wantErr: ErrTitleRequired,
		},
		{
			name:    "Preço negativo",
			request: domain.CreateAdPackageRequest{Title: "Reels", Price: -1, DeliveryDays: 1},
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "Prazo menor que um dia",
			request: domain.CreateAdPackageRequest{Title: "Reels", Price: 0, DeliveryDays: 0},
			wantErr: ErrInvalidDeliveryDays,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := tt.request
			pkg, err := service.CreatePackage(7, &request)

			assert.Nil(t, pkg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("Erro no banco", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any()).Return(nil, errors.New("conexão perdida"))

		_, err := service.CreatePackage(7, &domain.CreateAdPackageRequest{Title: "Reels", DeliveryDays: 2})

		var pkgErr *PackageError
		require.True(t, errors.As(err, &pkgErr))
		assert.Equal(t, apiErrors.ErrDatabaseOperation, pkgErr.Code)
	})
}

func TestService_UpdatePackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdPackageRepository(ctrl)
	service := NewService(mockRepo)

	existing := func() *domain.AdPackage {
		return &domain.AdPackage{ID: "pkg123456789", UserID: 7, Title: "Reels", Price: 800, DeliveryDays: 3, Includes: []string{"1 reels"}, IsActive: true}
	}

	t.Run("Altera apenas os campos informados", func(t *testing.T) {
		price := 950.0
		active := false
		mockRepo.EXPECT().GetByID(7, "pkg123456789").Return(existing(), nil)
		mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

		pkg, err := service.UpdatePackage(7, &domain.UpdateAdPackageRequest{ID: "pkg123456789", Price: &price, IsActive: &active})

		require.NoError(t, err)
		assert.Equal(t, "Reels", pkg.Title)
		assert.Equal(t, 950.0, pkg.Price)
		assert.False(t, pkg.IsActive)
	})

	t.Run("Pacote de outro usuário", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(8, "pkg123456789").Return(nil, nil)

		_, err := service.UpdatePackage(8, &domain.UpdateAdPackageRequest{ID: "pkg123456789"})

		assert.ErrorIs(t, err, ErrPackageNotFound)
	})

	t.Run("Validação após mesclar", func(t *testing.T) {
		days := 0
		mockRepo.EXPECT().GetByID(7, "pkg123456789").Return(existing(), nil)

		_, err := service.UpdatePackage(7, &domain.UpdateAdPackageRequest{ID: "pkg123456789", DeliveryDays: &days})

		assert.ErrorIs(t, err, ErrInvalidDeliveryDays)
	})

	t.Run("ID ausente", func(t *testing.T) {
		_, err := service.UpdatePackage(7, &domain.UpdateAdPackageRequest{})

		assert.ErrorIs(t, err, ErrPackageIDRequired)
	})
}

func TestService_DeletePackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdPackageRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Remove pacote", func(t *testing.T) {
		mockRepo.EXPECT().Delete(7, "pkg123456789").Return(true, nil)

		assert.NoError(t, service.DeletePackage(7, "pkg123456789"))
	})

	t.Run("Nada removido", func(t *testing.T) {
		mockRepo.EXPECT().Delete(7, "inexistente0").Return(false, nil)

		assert.ErrorIs(t, service.DeletePackage(7, "inexistente0"), ErrPackageNotFound)
	})
}

func TestService_ListPackages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdPackageRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().ListByUser(7, true).Return(nil, nil)

	packages, err := service.ListPackages(7, true)

	require.NoError(t, err)
	assert.NotNil(t, packages)
	assert.Empty(t, packages)
}
