package benchmarking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/publimais-api/infrastructure/repository/mocks"
	"github.com/vfg2006/publimais-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_SimilarProfiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBenchmarkRepository(ctrl)
	service := NewService(mockRepo)

	profiles := []domain.SimilarProfile{
		{Handle: "@moda.ana", ER: 3.1, Followers: 85_000, Platform: domain.PlatformInstagram, Country: "BR", Niches: []string{"moda"}},
		{Handle: "@fit.joao", ER: 4.2, Followers: 120_000, Platform: domain.PlatformInstagram, Country: "BR", Niches: []string{"fitness"}},
		{Handle: "@style.pt", ER: 5.0, Followers: 60_000, Platform: domain.PlatformInstagram, Country: "PT", Niches: []string{"moda"}},
	}

	t.Run("Filtra e ordena por ER", func(t *testing.T) {
		mockRepo.EXPECT().ListSimilarProfiles(domain.PlatformInstagram).Return(profiles, nil)

		result, err := service.SimilarProfiles(domain.BenchmarkFilter{Platform: domain.PlatformInstagram, FollowersBand: domain.FollowersBandUnder100k, Country: "any", Niche: "Moda"})

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "@style.pt", result[0].Handle)
		assert.Equal(t, "@moda.ana", result[1].Handle)
	})

	t.Run("Faixa inválida", func(t *testing.T) {
		_, err := service.SimilarProfiles(domain.BenchmarkFilter{FollowersBand: "10-20k"})

		assert.ErrorIs(t, err, ErrInvalidFollowersBand)
	})

	t.Run("Erro no banco", func(t *testing.T) {
		mockRepo.EXPECT().ListSimilarProfiles(domain.Platform("")).Return(nil, errors.New("timeout"))

		_, err := service.SimilarProfiles(domain.BenchmarkFilter{})

		assert.ErrorContains(t, err, "perfis de referência")
	})
}
