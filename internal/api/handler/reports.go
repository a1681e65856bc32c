package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/internal/usecases/reporting"
	"github.com/vfg2006/publimais-api/pkg/apiErrors"
)

func decodeReportRequest(w http.ResponseWriter, r *http.Request) (*domain.ReportRequest, bool) {
	req := &domain.ReportRequest{}
	if r.ContentLength == 0 {
		return req, true
	}

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
		return nil, false
	}
	return req, true
}

// GenerateReport monta o portfólio profissional do usuário logado
func GenerateReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateReport")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		req, ok := decodeReportRequest(w, r)
		if !ok {
			return
		}

		report, err := service.Generate(userClaims.UserID, req)
		if err != nil {
			handleReportError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// ShareReport publica o portfólio sob um link com prazo de expiração
func ShareReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ShareReport")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		req, ok := decodeReportRequest(w, r)
		if !ok {
			return
		}

		response, err := service.Share(userClaims.UserID, req)
		if err != nil {
			handleReportError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, response)
	}
}

// PublicReport exibe o relatório compartilhado sem autenticação. ?format=json devolve só o
// conteúdo do portfólio, sem os IDs internos nem o dono
func PublicReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		publicID := pathParam(r, "public_id")
		if publicID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID público não fornecido", nil)
			return
		}

		report, err := service.PublicReport(publicID)
		if err != nil {
			handleReportError(w, err)
			return
		}

		if r.URL.Query().Get("format") == "json" {
			writeJSON(w, http.StatusOK, report.ReportData)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := publicReportPage.Execute(w, report); err != nil {
			logrus.WithError(err).WithField("public_id", publicID).Error("Erro ao renderizar relatório público")
		}
	}
}

func handleReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reporting.ErrReportNotFound):
		apiErrors.WriteError(w, apiErrors.ErrReportExpired, "Relatório não encontrado ou expirado", nil)

	case errors.Is(err, reporting.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)

	case errors.Is(err, reporting.ErrUnsupportedFormat):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato inválido. Valores aceitos: json, pdf", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", nil)
	}
}
