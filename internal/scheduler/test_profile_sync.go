package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publimais-api/internal/config"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/pkg/metrics"
)

const testProfileSyncJob = "test_profile_sync"

// ProfileUpdater é a parte do serviço de perfis de teste usada pela sincronização
type ProfileUpdater interface {
	ListProfiles(adminUserID int) ([]*domain.TestProfileWithMetrics, error)
	ForceUpdate(adminUserID int, profileID string) (*domain.TestProfileWithMetrics, error)
}

// TestProfileSyncService atualiza periodicamente todos os perfis de teste
type TestProfileSyncService struct {
	scheduler           *gocron.Scheduler
	config              config.TestProfileSync
	updater             ProfileUpdater
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncUpdated     int
	lastSyncFailed      int
}

func NewTestProfileSyncService(updater ProfileUpdater, appConfig *config.Config) *TestProfileSyncService {
	syncConfig := appConfig.TestProfileSync
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.Enabled,
	}).Info("Configuração da sincronização de perfis de teste carregada")

	return &TestProfileSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		updater:   updater,
	}
}

// Start inicia o agendador
func (s *TestProfileSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização de perfis de teste desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de perfis de teste")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllProfiles()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de perfis de teste: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de perfis de teste")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *TestProfileSyncService) syncAllProfiles() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de perfis de teste já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	// zero lista os perfis de todos os administradores
	profiles, err := s.updater.ListProfiles(0)
	if err != nil {
		metrics.IncJobRun(testProfileSyncJob, err)
		logrus.WithError(err).Error("Erro ao buscar perfis de teste para sincronização")
		return
	}

	if len(profiles) == 0 {
		metrics.IncJobRun(testProfileSyncJob, nil)
		logrus.Info("Nenhum perfil de teste encontrado para sincronização")
		return
	}

	updated, failed := s.processProfiles(profiles)
	metrics.IncJobRun(testProfileSyncJob, nil)

	s.syncMutex.Lock()
	s.lastSyncUpdated = updated
	s.lastSyncFailed = failed
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(s.lastSyncStartedAt).String(),
		"updated":  updated,
		"failed":   failed,
	}).Info("Sincronização de perfis de teste concluída")
}

// processProfiles atualiza os perfis com no máximo MaxConcurrentJobs em paralelo
func (s *TestProfileSyncService) processProfiles(profiles []*domain.TestProfileWithMetrics) (int, int) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		updated int
		failed  int
	)

	for _, item := range profiles {
		if item == nil || item.Profile == nil {
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(profile *domain.TestProfile) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			_, err := s.updater.ForceUpdate(profile.AdminUserID, profile.ID)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"profile_id": profile.ID,
					"platform":   profile.Platform,
					"error":      err.Error(),
				}).Error("Erro ao atualizar perfil de teste")

				mu.Lock()
				failed++
				mu.Unlock()
				return
			}

			mu.Lock()
			updated++
			mu.Unlock()

			// intervalo entre perfis para não sobrecarregar o banco
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(item.Profile)
	}

	wg.Wait()

	return updated, failed
}

// TriggerManualSync inicia manualmente a sincronização
func (s *TestProfileSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de perfis de teste já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de perfis de teste")
	go s.syncAllProfiles()
}

// GetStatus retorna o status atual do agendador
func (s *TestProfileSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_updated":      s.lastSyncUpdated,
		"last_sync_failed":       s.lastSyncFailed,
	}
}
