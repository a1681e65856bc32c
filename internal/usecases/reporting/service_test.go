package reporting

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/publimais-api/infrastructure/repository/mocks"
	"github.com/vfg2006/publimais-api/internal/analytics"
	"github.com/vfg2006/publimais-api/internal/config"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/internal/usecases/insighting"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	userRepo     *mocks.MockUserRepository
	postRepo     *mocks.MockPostRepository
	followerRepo *mocks.MockFollowerRepository
	campaignRepo *mocks.MockCampaignRepository
	packageRepo  *mocks.MockAdPackageRepository
	sharedRepo   *mocks.MockSharedReportRepository
	service      *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		userRepo:     mocks.NewMockUserRepository(ctrl),
		postRepo:     mocks.NewMockPostRepository(ctrl),
		followerRepo: mocks.NewMockFollowerRepository(ctrl),
		campaignRepo: mocks.NewMockCampaignRepository(ctrl),
		packageRepo:  mocks.NewMockAdPackageRepository(ctrl),
		sharedRepo:   mocks.NewMockSharedReportRepository(ctrl),
	}

	insighter := insighting.NewService(f.postRepo, f.followerRepo, f.campaignRepo)
	f.service = NewService(f.userRepo, f.packageRepo, f.sharedRepo, insighter, config.Report{
		PublicBaseURL:         "https://publimais.app",
		DefaultExpirationDays: 7,
		MaxExpirationDays:     30,
	}).(*Service)
	f.service.now = func() time.Time { return fixedNow }

	return f
}

func (f *fixture) expectUserData(userID int) {
	bio := "Moda e lifestyle"
	f.userRepo.EXPECT().GetUserByID(userID).Return(&domain.User{ID: userID, Name: "Ana", Lastname: "Souza", Bio: &bio}, nil)
	f.postRepo.EXPECT().ListByUser(userID).Return([]domain.Post{
		{ID: 1, Platform: domain.PlatformInstagram, Type: domain.PostTypeOrganic, Likes: 100, Comments: 10, Shares: 5, Views: 1000},
		{ID: 2, Platform: domain.PlatformTikTok, Type: domain.PostTypeCampaign, Likes: 100, Comments: 10, Shares: 5, Views: 1000},
	}, nil)
	f.followerRepo.EXPECT().ListByUser(userID).Return([]domain.FollowerPoint{
		{Month: "Jan", Followers: 12000},
		{Month: "Fev", Followers: 13800},
		{Month: "Mar", Followers: 15100},
	}, nil)
	f.campaignRepo.EXPECT().ListByUser(userID).Return([]domain.Campaign{
		{ID: "bf2024", Name: "Black Friday 2024", Budget: 1000, Clicks: 50, Posts: []int64{2}},
	}, nil)
}

func TestService_Generate(t *testing.T) {
	t.Run("Monta o portfólio com pacotes ativos", func(t *testing.T) {
		f := newFixture(t)
		f.expectUserData(1)
		f.packageRepo.EXPECT().ListByUser(1, true).Return([]*domain.AdPackage{{ID: "pkg1", Title: "Reels"}}, nil)

		response, err := f.service.Generate(1, &domain.ReportRequest{})

		require.NoError(t, err)
		assert.Empty(t, response.Message)
		data := response.Data
		assert.Equal(t, "Ana Souza", data.Profile.DisplayName)
		assert.Equal(t, int64(15100), data.Summary.TotalFollowers)
		assert.Equal(t, 12.15, data.Summary.AvgEngagementRate)
		assert.Equal(t, 2, data.Summary.TotalPosts)
		assert.Equal(t, 2, data.Summary.ConnectedAccounts)
		assert.Equal(t, []domain.Platform{domain.PlatformInstagram, domain.PlatformTikTok}, data.Summary.Platforms)
		require.NotNil(t, data.GrowthPeak)
		assert.Equal(t, "Fev", data.GrowthPeak.Month)
		require.Len(t, data.Campaigns, 1)
		assert.Equal(t, 20.0, data.Campaigns[0].KPIs.CPC)
		assert.Len(t, data.AdPackages, 1)
		assert.Equal(t, domain.ReportTypePortfolio, data.ReportType)
		assert.Equal(t, fixedNow, data.GeneratedAt)
	})

	t.Run("PDF devolve os dados com aviso", func(t *testing.T) {
		f := newFixture(t)
		f.expectUserData(1)
		without := false

		response, err := f.service.Generate(1, &domain.ReportRequest{Format: domain.ReportFormatPDF, IncludePackages: &without})

		require.NoError(t, err)
		assert.Equal(t, pdfNotImplementedMessage, response.Message)
		assert.NotNil(t, response.Data.AdPackages)
		assert.Empty(t, response.Data.AdPackages)
	})

	t.Run("Erro nos pacotes não impede o relatório", func(t *testing.T) {
		f := newFixture(t)
		f.expectUserData(1)
		f.packageRepo.EXPECT().ListByUser(1, true).Return(nil, errors.New("timeout"))

		response, err := f.service.Generate(1, &domain.ReportRequest{})

		require.NoError(t, err)
		assert.Empty(t, response.Data.AdPackages)
	})

	t.Run("Resumo usa o último ponto de seguidores e o ER ponderado por views", func(t *testing.T) {
		f := newFixture(t)
		posts := []domain.Post{
			{ID: 1, Platform: domain.PlatformInstagram, Type: domain.PostTypeOrganic, Likes: 90, Views: 100},
			{ID: 2, Platform: domain.PlatformInstagram, Type: domain.PostTypeOrganic, Likes: 100, Views: 10000},
		}
		f.userRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, Name: "Ana"}, nil)
		f.postRepo.EXPECT().ListByUser(1).Return(posts, nil)
		f.followerRepo.EXPECT().ListByUser(1).Return([]domain.FollowerPoint{
			{Month: "Jan", Followers: 40000},
			{Month: "Fev", Followers: 38000},
		}, nil)
		f.campaignRepo.EXPECT().ListByUser(1).Return(nil, nil)
		f.packageRepo.EXPECT().ListByUser(1, true).Return(nil, nil)

		response, err := f.service.Generate(1, &domain.ReportRequest{})

		require.NoError(t, err)
		summary := response.Data.Summary
		assert.Equal(t, int64(38000), summary.TotalFollowers)
		assert.Equal(t, analytics.OverallER(posts), summary.AvgEngagementRate)
		mean := (analytics.ERForPost(posts[0]) + analytics.ERForPost(posts[1])) / 2
		assert.NotEqual(t, mean, summary.AvgEngagementRate)
		assert.Equal(t, 1, summary.ConnectedAccounts)
	})

	t.Run("Formato desconhecido", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Generate(1, &domain.ReportRequest{Format: "docx"})

		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.userRepo.EXPECT().GetUserByID(9).Return(nil, sql.ErrNoRows)

		_, err := f.service.Generate(9, &domain.ReportRequest{})

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_Share(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		wantDays  int
	}{
		{name: "Usa o prazo padrão", requested: 0, wantDays: 7},
		{name: "Respeita o prazo pedido", requested: 15, wantDays: 15},
		{name: "Limita ao prazo máximo", requested: 365, wantDays: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectUserData(1)
			without := false

			var saved *domain.SharedReport
			f.sharedRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(report *domain.SharedReport) error {
				saved = report
				return nil
			})

			response, err := f.service.Share(1, &domain.ReportRequest{IncludePackages: &without, ExpirationDays: tt.requested})

			require.NoError(t, err)
			require.NotNil(t, saved)
			assert.Len(t, response.PublicID, 32)
			assert.Regexp(t, "^[0-9a-f]{32}$", response.PublicID)
			assert.Equal(t, saved.PublicID, response.PublicID)
			assert.Equal(t, "https://publimais.app/public/reports/"+response.PublicID, response.PublicURL)
			assert.Equal(t, fixedNow.AddDate(0, 0, tt.wantDays), response.ExpiresAt)
			assert.Equal(t, 1, saved.UserID)
			assert.NotNil(t, saved.ReportData)
		})
	}
}

func TestService_PublicReport(t *testing.T) {
	t.Run("Contabiliza o acesso", func(t *testing.T) {
		f := newFixture(t)
		f.sharedRepo.EXPECT().GetActiveByPublicID("abc", fixedNow).Return(&domain.SharedReport{ID: "r1", ViewsCount: 4}, nil)
		f.sharedRepo.EXPECT().IncrementViews("r1").Return(nil)

		report, err := f.service.PublicReport("abc")

		require.NoError(t, err)
		assert.Equal(t, 5, report.ViewsCount)
	})

	t.Run("Falha na contagem ainda exibe o relatório", func(t *testing.T) {
		f := newFixture(t)
		f.sharedRepo.EXPECT().GetActiveByPublicID("abc", fixedNow).Return(&domain.SharedReport{ID: "r1", ViewsCount: 4}, nil)
		f.sharedRepo.EXPECT().IncrementViews("r1").Return(errors.New("lock"))

		report, err := f.service.PublicReport("abc")

		require.NoError(t, err)
		assert.Equal(t, 4, report.ViewsCount)
	})

	t.Run("Expirado ou inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.sharedRepo.EXPECT().GetActiveByPublicID("velho", fixedNow).Return(nil, nil)

		_, err := f.service.PublicReport("velho")

		assert.ErrorIs(t, err, ErrReportNotFound)
	})
}

func TestService_CleanupExpired(t *testing.T) {
	f := newFixture(t)
	f.sharedRepo.EXPECT().DeleteExpired(fixedNow).Return(int64(3), nil)

	deleted, err := f.service.CleanupExpired()

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}
