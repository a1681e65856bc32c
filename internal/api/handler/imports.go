package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publimais-api/internal/usecases/importing"
	"github.com/vfg2006/publimais-api/pkg/apiErrors"
)

const maxImportSize = 5 << 20

// importSource aceita tanto multipart (campo "file") quanto o arquivo cru no corpo
func importSource(w http.ResponseWriter, r *http.Request) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		return file, nil
	}

	return r.Body, nil
}

func importRequest(w http.ResponseWriter, r *http.Request) (importing.Format, io.ReadCloser, bool) {
	format, err := importing.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato inválido. Valores aceitos: csv, json", nil)
		return "", nil, false
	}

	source, err := importSource(w, r)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo não encontrado na requisição", nil)
		return "", nil, false
	}

	return format, source, true
}

// ImportPosts grava (ou atualiza) os posts do arquivo enviado
func ImportPosts(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportPosts")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		format, source, ok := importRequest(w, r)
		if !ok {
			return
		}
		defer source.Close()

		result, err := service.ImportPosts(userClaims.UserID, format, source)
		if err != nil {
			handleImportError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// ImportFollowers substitui a série histórica de seguidores do usuário
func ImportFollowers(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportFollowers")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		format, source, ok := importRequest(w, r)
		if !ok {
			return
		}
		defer source.Close()

		result, err := service.ImportFollowers(r.Context(), userClaims.UserID, format, source)
		if err != nil {
			handleImportError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func ExportPosts(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportPosts")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := service.ExportPosts(userClaims.UserID, &buf); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao exportar posts", nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="posts.csv"`)
		if _, err := w.Write(buf.Bytes()); err != nil {
			logrus.WithError(err).Error("Erro ao enviar exportação")
		}
	}
}

func handleImportError(w http.ResponseWriter, err error) {
	var importErr *importing.ImportError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &importErr):
		details := map[string]any{"row": importErr.Row}
		if importErr.Field != "" {
			details["field"] = importErr.Field
		}
		apiErrors.WriteError(w, apiErrors.ErrImportRow, importErr.Error(), details)

	case errors.As(err, &maxBytesErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo excede o tamanho máximo permitido", nil)

	case errors.Is(err, importing.ErrUnsupportedFormat):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, importing.ErrMissingColumn):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, importing.ErrEmptyFile):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao importar arquivo", nil)
	}
}
