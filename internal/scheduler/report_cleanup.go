package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publimais-api/internal/config"
	"github.com/vfg2006/publimais-api/pkg/metrics"
)

const reportCleanupJob = "report_cleanup"

// ExpiredReportCleaner remove os relatórios compartilhados vencidos
type ExpiredReportCleaner interface {
	CleanupExpired() (int64, error)
}

// ReportCleanupService agenda a limpeza dos relatórios públicos expirados
type ReportCleanupService struct {
	scheduler          *gocron.Scheduler
	config             config.ReportCleanup
	cleaner            ExpiredReportCleaner
	cleanupRunning     bool
	cleanupMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastDeleted        int64
}

func NewReportCleanupService(cleaner ExpiredReportCleaner, appConfig *config.Config) *ReportCleanupService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.ReportCleanup.CronSchedule,
		"enabled":       appConfig.ReportCleanup.Enabled,
	}).Info("Configuração da limpeza de relatórios carregada")

	return &ReportCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    appConfig.ReportCleanup,
		cleaner:   cleaner,
	}
}

// Start inicia o agendador
func (s *ReportCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de relatórios expirados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanupExpiredReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ReportCleanupService) cleanupExpiredReports() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de relatórios já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.lastRunStartedAt = time.Now()
	s.cleanupMutex.Unlock()

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	deleted, err := s.cleaner.CleanupExpired()
	metrics.IncJobRun(reportCleanupJob, err)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover relatórios expirados")
		return
	}

	s.cleanupMutex.Lock()
	s.lastDeleted = deleted
	s.lastRunCompletedAt = time.Now()
	s.cleanupMutex.Unlock()

	logrus.WithField("deleted", deleted).Info("Limpeza de relatórios expirados concluída")
}

// TriggerManualSync executa a limpeza fora do horário agendado
func (s *ReportCleanupService) TriggerManualSync() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de relatórios expirados")
	go s.cleanupExpiredReports()
}

// GetStatus retorna o status atual do agendador
func (s *ReportCleanupService) GetStatus() map[string]any {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	return map[string]any{
		"cleanup_enabled":       s.config.Enabled,
		"cleanup_cron":          s.config.CronSchedule,
		"cleanup_running":       s.cleanupRunning,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_deleted":          s.lastDeleted,
	}
}
