package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/internal/usecases/testprofiles"
	"github.com/vfg2006/publimais-api/pkg/apiErrors"
)

type ConnectTestProfileRequest struct {
	Platform domain.TestPlatform `json:"platform"`
}

func ConnectTestProfile(service testprofiles.TestProfileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ConnectTestProfile")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req ConnectTestProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		if req.Platform == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Plataforma é obrigatória", nil)
			return
		}

		profile, err := service.ConnectProfile(userClaims.UserID, req.Platform)
		if err != nil {
			handleTestProfileError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, profile)
	}
}

func ListTestProfiles(service testprofiles.TestProfileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		profiles, err := service.ListProfiles(userClaims.UserID)
		if err != nil {
			handleTestProfileError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profiles)
	}
}

func ForceUpdateTestProfile(service testprofiles.TestProfileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ForceUpdateTestProfile")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		profile, err := service.ForceUpdate(userClaims.UserID, pathParam(r, "id"))
		if err != nil {
			handleTestProfileError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

func DisconnectTestProfile(service testprofiles.TestProfileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DisconnectTestProfile")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := service.DisconnectProfile(userClaims.UserID, pathParam(r, "id")); err != nil {
			handleTestProfileError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func TestProfileReport(service testprofiles.TestProfileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TestProfileReport")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		report, err := service.GenerateReport(userClaims.UserID, pathParam(r, "id"))
		if err != nil {
			handleTestProfileError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// ListAdminLogs devolve as últimas chamadas do painel de testes (?limit=, padrão 50)
func ListAdminLogs(service testprofiles.TestProfileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var limit uint64
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		logs, err := service.ListLogs(userClaims.UserID, limit)
		if err != nil {
			handleTestProfileError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, logs)
	}
}

func handleTestProfileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, testprofiles.ErrUnsupportedPlatform):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, testprofiles.ErrProfileNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Perfil de teste não encontrado", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar perfil de teste", nil)
	}
}
