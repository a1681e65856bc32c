package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publimais-api/internal/usecases/insighting"
	"github.com/vfg2006/publimais-api/pkg/apiErrors"
)

// GetDashboard devolve engajamento, crescimento e campanhas do usuário logado
func GetDashboard(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDashboard")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		dashboard, err := service.GetDashboard(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o painel", nil)
			return
		}

		writeJSON(w, http.StatusOK, dashboard)
	}
}

func GetCampaign(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCampaign")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		campaignID := pathParam(r, "id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		detail, err := service.GetCampaignDetail(userClaims.UserID, campaignID)
		if err != nil {
			if errors.Is(err, insighting.ErrCampaignNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Campanha não encontrada", map[string]string{"campaign_id": campaignID})
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar campanha", nil)
			return
		}

		writeJSON(w, http.StatusOK, detail)
	}
}
