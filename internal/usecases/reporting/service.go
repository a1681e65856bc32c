package reporting

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/publimais-api/infrastructure/repository"
	"github.com/vfg2006/publimais-api/internal/analytics"
	"github.com/vfg2006/publimais-api/internal/config"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/internal/usecases/insighting"
	"github.com/vfg2006/publimais-api/pkg/log"
	"github.com/vfg2006/publimais-api/pkg/metrics"
	"github.com/vfg2006/publimais-api/pkg/utils"
)

const pdfNotImplementedMessage = "Geração de PDF ainda não implementada. Use format: json para obter os dados."

var (
	ErrUnsupportedFormat = errors.New("formato de relatório não suportado")
	ErrUserNotFound      = errors.New("usuário não encontrado")
	ErrReportNotFound    = errors.New("relatório não encontrado ou expirado")
)

type Reporter interface {
	Generate(userID int, request *domain.ReportRequest) (*domain.ReportResponse, error)
	Share(userID int, request *domain.ReportRequest) (*domain.ShareReportResponse, error)
	PublicReport(publicID string) (*domain.SharedReport, error)
	CleanupExpired() (int64, error)
}

type Service struct {
	userRepo         repository.UserRepository
	packageRepo      repository.AdPackageRepository
	sharedReportRepo repository.SharedReportRepository
	insighter        insighting.Insighter
	cfg              config.Report
	now              func() time.Time
}

func NewService(
	userRepo repository.UserRepository,
	packageRepo repository.AdPackageRepository,
	sharedReportRepo repository.SharedReportRepository,
	insighter insighting.Insighter,
	cfg config.Report,
) Reporter {
	return &Service{
		userRepo:         userRepo,
		packageRepo:      packageRepo,
		sharedReportRepo: sharedReportRepo,
		insighter:        insighter,
		cfg:              cfg,
		now:              time.Now,
	}
}

// Generate monta o portfólio profissional; para pdf devolve os dados com o aviso de não implementado
func (s *Service) Generate(userID int, request *domain.ReportRequest) (*domain.ReportResponse, error) {
	format := request.Format
	if format == "" {
		format = domain.ReportFormatJSON
	}
	if format != domain.ReportFormatJSON && format != domain.ReportFormatPDF {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	data, err := s.buildReport(userID, includePackages(request))
	if err != nil {
		return nil, err
	}

	response := &domain.ReportResponse{Data: data}
	if format == domain.ReportFormatPDF {
		response.Message = pdfNotImplementedMessage
	}

	return response, nil
}

// Share grava o relatório sob um ID público aleatório com prazo de expiração
func (s *Service) Share(userID int, request *domain.ReportRequest) (*domain.ShareReportResponse, error) {
	data, err := s.buildReport(userID, includePackages(request))
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do relatório: %w", err)
	}
	publicID, err := utils.GeneratePublicID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID público: %w", err)
	}

	report := &domain.SharedReport{
		ID:         id,
		UserID:     userID,
		PublicID:   publicID,
		ReportData: data,
		ExpiresAt:  s.now().AddDate(0, 0, s.expirationDays(request.ExpirationDays)),
	}

	if err := s.sharedReportRepo.Create(report); err != nil {
		return nil, fmt.Errorf("erro ao compartilhar relatório: %w", err)
	}

	log.L.WithFields(log.Fields{
		"user_id":    userID,
		"public_id":  publicID,
		"expires_at": report.ExpiresAt,
	}).Info("Relatório compartilhado")

	return &domain.ShareReportResponse{
		Message:   "Relatório compartilhado com sucesso",
		PublicID:  publicID,
		PublicURL: fmt.Sprintf("%s/public/reports/%s", s.cfg.PublicBaseURL, publicID),
		ExpiresAt: report.ExpiresAt,
	}, nil
}

// PublicReport devolve o relatório ativo e contabiliza o acesso
func (s *Service) PublicReport(publicID string) (*domain.SharedReport, error) {
	report, err := s.sharedReportRepo.GetActiveByPublicID(publicID, s.now())
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar relatório público: %w", err)
	}
	if report == nil {
		return nil, ErrReportNotFound
	}

	// falha na contagem não impede a exibição
	if err := s.sharedReportRepo.IncrementViews(report.ID); err != nil {
		log.L.WithError(err).WithField("public_id", publicID).Warn("Erro ao incrementar visualizações")
	} else {
		report.ViewsCount++
	}
	metrics.SharedReportViews.Inc()

	log.L.WithFields(log.Fields{
		"public_id": publicID,
		"user_id":   report.UserID,
		"views":     report.ViewsCount,
	}).Info("Relatório público acessado")

	return report, nil
}

func (s *Service) CleanupExpired() (int64, error) {
	deleted, err := s.sharedReportRepo.DeleteExpired(s.now())
	if err != nil {
		return 0, fmt.Errorf("erro ao remover relatórios expirados: %w", err)
	}

	return deleted, nil
}

func (s *Service) buildReport(userID int, withPackages bool) (*domain.ReportData, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && user == nil) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar perfil: %w", err)
	}

	dashboard, err := s.insighter.GetDashboard(userID)
	if err != nil {
		return nil, err
	}

	posts := make([]domain.Post, 0, len(dashboard.Posts))
	for _, p := range dashboard.Posts {
		posts = append(posts, p.Post)
	}
	platforms := analytics.PlatformsOf(posts)

	var totalFollowers int64
	if n := len(dashboard.Growth.Series); n > 0 {
		totalFollowers = dashboard.Growth.Series[n-1].Followers
	}

	packages := []*domain.AdPackage{}
	if withPackages {
		// pacotes são opcionais no portfólio; erro aqui só é registrado
		active, err := s.packageRepo.ListByUser(userID, true)
		if err != nil {
			log.L.WithError(err).WithField("user_id", userID).Warn("Erro ao buscar pacotes para o relatório")
		} else if active != nil {
			packages = active
		}
	}

	return &domain.ReportData{
		Profile: domain.ReportProfile{
			DisplayName: user.DisplayName(),
			Bio:         user.Bio,
			Location:    user.Location,
			Niche:       user.Niche,
			Website:     user.Website,
			AvatarURL:   user.AvatarURL,
		},
		Summary: domain.ReportSummary{
			TotalFollowers:    totalFollowers,
			AvgEngagementRate: analytics.OverallER(posts),
			TotalPosts:        len(posts),
			ConnectedAccounts: len(platforms),
			Platforms:         platforms,
		},
		Engagement:  dashboard.Engagement,
		GrowthPeak:  dashboard.Growth.Top,
		Campaigns:   dashboard.Campaigns,
		AdPackages:  packages,
		GeneratedAt: s.now().UTC(),
		ReportType:  domain.ReportTypePortfolio,
	}, nil
}

func includePackages(request *domain.ReportRequest) bool {
	return request.IncludePackages == nil || *request.IncludePackages
}

func (s *Service) expirationDays(requested int) int {
	days := requested
	if days <= 0 {
		days = s.cfg.DefaultExpirationDays
	}
	if days <= 0 {
		days = 7
	}
	if s.cfg.MaxExpirationDays > 0 && days > s.cfg.MaxExpirationDays {
		days = s.cfg.MaxExpirationDays
	}
	return days
}
