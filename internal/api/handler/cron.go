package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publimais-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeReportCleanup   = "report-cleanup"
	CronJobTypeTestProfileSync = "test-profile-sync"
	CronJobTypeAll             = "all"
)

// CronJob é implementado pelos agendadores de internal/scheduler
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ReportCleanupService   CronJob
	TestProfileSyncService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := pathParam(r, "type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeReportCleanup:
			if services.ReportCleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de relatórios não disponível", nil)
				return
			}
			services.ReportCleanupService.TriggerManualSync()

		case CronJobTypeTestProfileSync:
			if services.TestProfileSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de perfis de teste não disponível", nil)
				return
			}
			services.TestProfileSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.ReportCleanupService != nil {
				services.ReportCleanupService.TriggerManualSync()
			}
			if services.TestProfileSyncService != nil {
				services.TestProfileSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: report-cleanup, test-profile-sync, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.ReportCleanupService != nil {
			status[CronJobTypeReportCleanup] = services.ReportCleanupService.GetStatus()
		}
		if services.TestProfileSyncService != nil {
			status[CronJobTypeTestProfileSync] = services.TestProfileSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
