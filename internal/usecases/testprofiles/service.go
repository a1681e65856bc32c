package testprofiles

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/vfg2006/publimais-api/infrastructure/repository"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/pkg/log"
	"github.com/vfg2006/publimais-api/pkg/utils"
)

const (
	ActionConnect              = "CONNECT_PROFILE"
	ActionConnectSuccess       = "CONNECT_PROFILE_SUCCESS"
	ActionConnectError         = "CONNECT_PROFILE_ERROR"
	ActionForceUpdateStart     = "FORCE_UPDATE_START"
	ActionForceUpdateSuccess   = "FORCE_UPDATE_SUCCESS"
	ActionForceUpdateError     = "FORCE_UPDATE_ERROR"
	ActionDisconnect           = "DISCONNECT_PROFILE"
	ActionGenerateReportStart  = "GENERATE_REPORT_START"
	ActionGenerateReportOK     = "GENERATE_REPORT_SUCCESS"
	ActionGenerateReportError  = "GENERATE_REPORT_ERROR"
	reportTypeTestValidation   = "test_validation"
	reportEndpoint             = "report-generator"
	minEngagementRate          = 0.01
	maxFollowerVariation       = 0.05
	maxEngagementRateVariation = 0.01
)

var (
	ErrUnsupportedPlatform = errors.New("plataforma não suportada")
	ErrProfileNotFound     = errors.New("perfil de teste não encontrado")
)

type TestReport struct {
	Profile     *domain.TestProfile `json:"profile"`
	Metrics     *domain.TestMetrics `json:"metrics"`
	GeneratedAt time.Time           `json:"generated_at"`
	ReportType  string              `json:"report_type"`
}

type TestProfileService interface {
	ConnectProfile(adminUserID int, platform domain.TestPlatform) (*domain.TestProfileWithMetrics, error)
	ForceUpdate(adminUserID int, profileID string) (*domain.TestProfileWithMetrics, error)
	ListProfiles(adminUserID int) ([]*domain.TestProfileWithMetrics, error)
	DisconnectProfile(adminUserID int, profileID string) error
	GenerateReport(adminUserID int, profileID string) (*TestReport, error)
	ListLogs(adminUserID int, limit uint64) ([]*domain.AdminLog, error)
}

type Service struct {
	repo   repository.TestProfileRepository
	now    func() time.Time
	random func() float64
}

func NewService(repo repository.TestProfileRepository) TestProfileService {
	return &Service{
		repo:   repo,
		now:    time.Now,
		random: rand.Float64,
	}
}

func providerEndpoint(platform domain.TestPlatform, path string) string {
	return fmt.Sprintf("https://api.%s.com/%s", platform, path)
}

// ConnectProfile cria o perfil fictício da plataforma e o primeiro snapshot de métricas
func (s *Service) ConnectProfile(adminUserID int, platform domain.TestPlatform) (*domain.TestProfileWithMetrics, error) {
	start := s.now()
	endpoint := providerEndpoint(platform, "oauth/authorize")
	s.writeLog(adminUserID, ActionConnect, string(platform), endpoint, map[string]any{"platform": platform, "action": "connect"}, nil, nil, start, false)

	result, err := s.connect(adminUserID, platform)
	if err != nil {
		s.writeLog(adminUserID, ActionConnectError, string(platform), endpoint, map[string]any{"platform": platform}, nil, err, start, true)
		return nil, err
	}

	s.writeLog(adminUserID, ActionConnectSuccess, string(platform), endpoint, map[string]any{"platform": platform}, result, nil, start, true)

	return result, nil
}

func (s *Service) connect(adminUserID int, platform domain.TestPlatform) (*domain.TestProfileWithMetrics, error) {
	seed, ok := seeds[platform]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, platform)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do perfil: %w", err)
	}

	profile := &domain.TestProfile{
		ID:                id,
		AdminUserID:       adminUserID,
		Platform:          platform,
		Username:          seed.Username,
		DisplayName:       seed.DisplayName,
		ProfilePictureURL: seed.ProfilePictureURL,
		Bio:               seed.Bio,
		FollowersCount:    seed.FollowersCount,
		FollowingCount:    seed.FollowingCount,
		PostsCount:        seed.PostsCount,
		EngagementRate:    seed.EngagementRate,
		LastSyncAt:        s.now(),
	}

	if err := s.repo.CreateProfile(profile); err != nil {
		return nil, fmt.Errorf("erro ao salvar perfil de teste: %w", err)
	}

	// crescimento semanal fictício entre 10 e 109 seguidores
	previous := profile.FollowersCount - int64(math.Floor(s.random()*100)) - 10
	caption := fmt.Sprintf("Post mais popular da última semana no %s! 🚀 Testando a integração da API.", platform)

	metrics, err := s.saveMetrics(profile, previous, caption)
	if err != nil {
		return nil, err
	}

	return &domain.TestProfileWithMetrics{Profile: profile, Metrics: metrics}, nil
}

// ForceUpdate simula uma nova coleta: seguidores variam até 5% e o ER até 0,01, nunca abaixo de 0,01
func (s *Service) ForceUpdate(adminUserID int, profileID string) (*domain.TestProfileWithMetrics, error) {
	start := s.now()
	request := map[string]any{"profileId": profileID}

	profile, err := s.ownedProfile(adminUserID, profileID)
	if err != nil {
		s.writeLog(adminUserID, ActionForceUpdateError, "", "", request, nil, err, start, true)
		return nil, err
	}

	endpoint := providerEndpoint(profile.Platform, "user/insights")
	s.writeLog(adminUserID, ActionForceUpdateStart, string(profile.Platform), endpoint, map[string]any{"profileId": profileID, "action": "force_update"}, nil, nil, start, false)

	previous := profile.FollowersCount
	growthFactor := 1 + (s.random()*2*maxFollowerVariation - maxFollowerVariation)
	profile.FollowersCount = int64(math.Floor(float64(previous) * growthFactor))
	profile.EngagementRate = math.Max(minEngagementRate, profile.EngagementRate+(s.random()*2*maxEngagementRateVariation-maxEngagementRateVariation))
	profile.LastSyncAt = s.now()

	if err := s.repo.UpdateProfileStats(profile); err != nil {
		err = fmt.Errorf("erro ao atualizar perfil de teste: %w", err)
		s.writeLog(adminUserID, ActionForceUpdateError, "", "", request, nil, err, start, true)
		return nil, err
	}

	caption := fmt.Sprintf("Post atualizado após force update! 🔄 Novos dados coletados em %s.", s.now().Format(utils.DateLayoutBR))
	metrics, err := s.saveMetrics(profile, previous, caption)
	if err != nil {
		s.writeLog(adminUserID, ActionForceUpdateError, "", "", request, nil, err, start, true)
		return nil, err
	}

	s.writeLog(adminUserID, ActionForceUpdateSuccess, string(profile.Platform), endpoint, request, map[string]any{"updated_metrics": metrics}, nil, start, true)

	return &domain.TestProfileWithMetrics{Profile: profile, Metrics: metrics}, nil
}

func (s *Service) ListProfiles(adminUserID int) ([]*domain.TestProfileWithMetrics, error) {
	profiles, err := s.repo.ListProfiles(adminUserID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar perfis de teste: %w", err)
	}

	result := make([]*domain.TestProfileWithMetrics, 0, len(profiles))
	for _, profile := range profiles {
		metrics, err := s.repo.GetLatestMetrics(profile.ID)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar métricas do perfil %s: %w", profile.ID, err)
		}
		result = append(result, &domain.TestProfileWithMetrics{Profile: profile, Metrics: metrics})
	}

	return result, nil
}

func (s *Service) DisconnectProfile(adminUserID int, profileID string) error {
	start := s.now()

	deleted, err := s.repo.DeleteProfile(adminUserID, profileID)
	if err == nil && !deleted {
		err = ErrProfileNotFound
	}

	s.writeLog(adminUserID, ActionDisconnect, "", "", map[string]any{"profileId": profileID}, nil, err, start, true)

	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		return fmt.Errorf("erro ao remover perfil de teste: %w", err)
	}
	return err
}

// GenerateReport devolve o perfil com o último snapshot para validação
func (s *Service) GenerateReport(adminUserID int, profileID string) (*TestReport, error) {
	start := s.now()
	request := map[string]any{"profileId": profileID}
	s.writeLog(adminUserID, ActionGenerateReportStart, "", reportEndpoint, map[string]any{"profileId": profileID, "action": "generate_report"}, nil, nil, start, false)

	report, err := s.generateReport(adminUserID, profileID)
	if err != nil {
		s.writeLog(adminUserID, ActionGenerateReportError, "", reportEndpoint, request, nil, err, start, true)
		return nil, err
	}

	s.writeLog(adminUserID, ActionGenerateReportOK, string(report.Profile.Platform), reportEndpoint, request,
		map[string]any{"report_generated": true, "profile_name": report.Profile.DisplayName}, nil, start, true)

	return report, nil
}

func (s *Service) generateReport(adminUserID int, profileID string) (*TestReport, error) {
	profile, err := s.ownedProfile(adminUserID, profileID)
	if err != nil {
		return nil, err
	}

	metrics, err := s.repo.GetLatestMetrics(profileID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas do perfil: %w", err)
	}

	return &TestReport{
		Profile:     profile,
		Metrics:     metrics,
		GeneratedAt: s.now().UTC(),
		ReportType:  reportTypeTestValidation,
	}, nil
}

func (s *Service) ListLogs(adminUserID int, limit uint64) ([]*domain.AdminLog, error) {
	if limit == 0 {
		limit = 50
	}
	limit = min(limit, 200)

	logs, err := s.repo.ListLogs(adminUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar logs: %w", err)
	}
	if logs == nil {
		logs = []*domain.AdminLog{}
	}

	return logs, nil
}

func (s *Service) ownedProfile(adminUserID int, profileID string) (*domain.TestProfile, error) {
	profile, err := s.repo.GetProfile(profileID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar perfil de teste: %w", err)
	}
	if profile == nil || profile.AdminUserID != adminUserID {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (s *Service) saveMetrics(profile *domain.TestProfile, previousFollowers int64, caption string) (*domain.TestMetrics, error) {
	metrics := deriveMetrics(profile, previousFollowers, caption)

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID das métricas: %w", err)
	}
	metrics.ID = id

	if err := s.repo.SaveMetrics(metrics); err != nil {
		return nil, fmt.Errorf("erro ao salvar métricas de teste: %w", err)
	}

	return metrics, nil
}

// writeLog grava em admin_logs; falhas aqui só vão para o log da aplicação
func (s *Service) writeLog(adminUserID int, action, platform, endpoint string, request, response any, callErr error, start time.Time, finished bool) {
	entry := &domain.AdminLog{
		AdminUserID:  adminUserID,
		Action:       action,
		Platform:     optional(platform),
		Endpoint:     optional(endpoint),
		RequestData:  request,
		ResponseData: response,
	}

	if finished {
		status := http.StatusOK
		if callErr != nil {
			status = http.StatusInternalServerError
			msg := callErr.Error()
			entry.ErrorMessage = &msg
		}
		duration := s.now().Sub(start).Milliseconds()
		entry.StatusCode = &status
		entry.DurationMs = &duration
	}

	id, err := utils.GenerateID()
	if err == nil {
		entry.ID = id
		err = s.repo.CreateLog(entry)
	}
	if err != nil {
		log.L.WithError(err).WithFields(log.Fields{"user_id": adminUserID, "action": action}).Error("Falha ao registrar chamada no admin_logs")
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
