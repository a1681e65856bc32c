package handler

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/internal/usecases/reporting"
	reportMocks "github.com/vfg2006/publimais-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/publimais-api/pkg/apiErrors"
	"github.com/vfg2006/publimais-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func sharedReport() *domain.SharedReport {
	niche := "Fitness"
	return &domain.SharedReport{
		ID:       "rep1",
		UserID:   influencerID,
		PublicID: "abc123",
		ReportData: &domain.ReportData{
			Profile: domain.ReportProfile{DisplayName: "Ana <Souza>", Niche: &niche},
			Summary: domain.ReportSummary{
				TotalFollowers:    22100,
				AvgEngagementRate: 12.15,
				TotalPosts:        6,
				Platforms:         []domain.Platform{domain.PlatformInstagram, domain.PlatformTikTok},
			},
			AdPackages: []*domain.AdPackage{
				{Title: "Pacote Stories", Price: 1500, DeliveryDays: 5, Includes: []string{"3 stories", "1 reels"}},
			},
			GeneratedAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
			ReportType:  domain.ReportTypePortfolio,
		},
		ViewsCount: 4,
		ExpiresAt:  time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC),
	}
}

func TestGenerateReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockReporter := reportMocks.NewMockReporter(ctrl)
	limiter := middleware.NewIPRateLimiter(100, 100)

	t.Run("Corpo vazio usa os padrões", func(t *testing.T) {
		mockReporter.EXPECT().Generate(influencerID, &domain.ReportRequest{}).
			Return(&domain.ReportResponse{Data: sharedReport().ReportData}, nil)

		rec := serve(Reports(mockReporter, limiter), influencer(), http.MethodPost, "/v1/reports", nil)

		requireStatus(t, rec, http.StatusOK)
	})

	t.Run("Formato inválido", func(t *testing.T) {
		mockReporter.EXPECT().Generate(influencerID, gomock.Any()).Return(nil, reporting.ErrUnsupportedFormat)

		rec := serve(Reports(mockReporter, limiter), influencer(), http.MethodPost, "/v1/reports", strings.NewReader(`{"format":"docx"}`))

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})
}

func TestShareReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockReporter := reportMocks.NewMockReporter(ctrl)
	limiter := middleware.NewIPRateLimiter(100, 100)

	mockReporter.EXPECT().Share(influencerID, gomock.Any()).
		DoAndReturn(func(_ int, req *domain.ReportRequest) (*domain.ShareReportResponse, error) {
			assert.Equal(t, 30, req.ExpirationDays)
			require.NotNil(t, req.IncludePackages)
			assert.False(t, *req.IncludePackages)
			return &domain.ShareReportResponse{PublicID: "abc123", PublicURL: "http://localhost:5173/public/reports/abc123"}, nil
		})

	rec := serve(Reports(mockReporter, limiter), influencer(), http.MethodPost, "/v1/reports/share",
		strings.NewReader(`{"expiration_days":30,"include_packages":false}`))

	requireStatus(t, rec, http.StatusCreated)
	var response domain.ShareReportResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "abc123", response.PublicID)
}

func TestPublicReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockReporter := reportMocks.NewMockReporter(ctrl)
	limiter := middleware.NewIPRateLimiter(100, 100)

	t.Run("Página HTML sem autenticação", func(t *testing.T) {
		mockReporter.EXPECT().PublicReport("abc123").Return(sharedReport(), nil)

		rec := serve(Reports(mockReporter, limiter), nil, http.MethodGet, "/public/reports/abc123", nil)

		requireStatus(t, rec, http.StatusOK)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

		page := rec.Body.String()
		assert.Contains(t, page, "Ana &lt;Souza&gt;")
		assert.Contains(t, page, "22.1K")
		assert.Contains(t, page, "12,15%")
		assert.Contains(t, page, "R$ 1500,00")
		assert.Contains(t, page, "3 stories, 1 reels")
		assert.Contains(t, page, "válido até 17/03/2025")
	})

	t.Run("JSON com format=json expõe só o portfólio", func(t *testing.T) {
		mockReporter.EXPECT().PublicReport("abc123").Return(sharedReport(), nil)

		rec := serve(Reports(mockReporter, limiter), nil, http.MethodGet, "/public/reports/abc123?format=json", nil)

		requireStatus(t, rec, http.StatusOK)
		body := rec.Body.String()
		assert.NotContains(t, body, `"user_id"`)
		assert.NotContains(t, body, `"rep1"`)
		assert.NotContains(t, body, `"views_count"`)

		var data domain.ReportData
		require.NoError(t, json.NewDecoder(strings.NewReader(body)).Decode(&data))
		assert.Equal(t, domain.ReportTypePortfolio, data.ReportType)
		assert.Equal(t, int64(22100), data.Summary.TotalFollowers)
	})

	t.Run("Relatório expirado", func(t *testing.T) {
		mockReporter.EXPECT().PublicReport("velho").Return(nil, reporting.ErrReportNotFound)

		rec := serve(Reports(mockReporter, limiter), nil, http.MethodGet, "/public/reports/velho", nil)

		requireStatus(t, rec, http.StatusNotFound)
		assert.Equal(t, apiErrors.ErrReportExpired, decodeAPIError(t, rec).Code)
	})

	t.Run("Erro inesperado", func(t *testing.T) {
		mockReporter.EXPECT().PublicReport("abc123").Return(nil, errors.New("timeout"))

		rec := serve(Reports(mockReporter, limiter), nil, http.MethodGet, "/public/reports/abc123", nil)

		requireStatus(t, rec, http.StatusInternalServerError)
	})
}

func TestPublicReport_RateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockReporter := reportMocks.NewMockReporter(ctrl)
	limiter := middleware.NewIPRateLimiter(0.001, 1)

	mockReporter.EXPECT().PublicReport("abc123").Return(sharedReport(), nil).Times(1)

	first := serve(Reports(mockReporter, limiter), nil, http.MethodGet, "/public/reports/abc123", nil)
	second := serve(Reports(mockReporter, limiter), nil, http.MethodGet, "/public/reports/abc123", nil)

	requireStatus(t, first, http.StatusOK)
	requireStatus(t, second, http.StatusTooManyRequests)
	assert.Equal(t, apiErrors.ErrTooManyRequests, decodeAPIError(t, second).Code)
}
