package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/internal/usecases/benchmarking"
	benchmarkMocks "github.com/vfg2006/publimais-api/internal/usecases/benchmarking/mocks"
	"github.com/vfg2006/publimais-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestBenchmark(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(m *benchmarkMocks.MockBenchmarker)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "Filtros completos",
			target: "/v1/benchmark?platform=Instagram&followers=100-300k&country=BR&niche=fitness",
			setup: func(m *benchmarkMocks.MockBenchmarker) {
				m.EXPECT().SimilarProfiles(domain.BenchmarkFilter{
					Platform:      domain.PlatformInstagram,
					FollowersBand: domain.FollowersBand100To300k,
					Country:       "BR",
					Niche:         "fitness",
				}).Return([]domain.SimilarProfile{{Handle: "@fitlife", ER: 8.4, Platform: domain.PlatformInstagram}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Plataforma any não filtra",
			target: "/v1/benchmark?platform=any",
			setup: func(m *benchmarkMocks.MockBenchmarker) {
				m.EXPECT().SimilarProfiles(domain.BenchmarkFilter{}).Return([]domain.SimilarProfile{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Plataforma desconhecida",
			target:     "/v1/benchmark?platform=orkut",
			setup:      func(m *benchmarkMocks.MockBenchmarker) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "Faixa de seguidores inválida",
			target: "/v1/benchmark?followers=2M",
			setup: func(m *benchmarkMocks.MockBenchmarker) {
				m.EXPECT().SimilarProfiles(gomock.Any()).
					Return(nil, fmt.Errorf("%w: %q", benchmarking.ErrInvalidFollowersBand, "2M"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := benchmarkMocks.NewMockBenchmarker(ctrl)
			tt.setup(mockService)

			rec := serve(Benchmarks(mockService), influencer(), http.MethodGet, tt.target, nil)

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
				return
			}

			var profiles []domain.SimilarProfile
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&profiles))
		})
	}
}
