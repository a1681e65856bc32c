package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/internal/usecases/packaging"
	"github.com/vfg2006/publimais-api/pkg/apiErrors"
)

// ListPackages lista os pacotes do usuário; ?active=true filtra os ativos
func ListPackages(service packaging.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		onlyActive := r.URL.Query().Get("active") == "true"

		packages, err := service.ListPackages(userClaims.UserID, onlyActive)
		if err != nil {
			handlePackageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, packages)
	}
}

func CreatePackage(service packaging.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreatePackage")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.CreateAdPackageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		pkg, err := service.CreatePackage(userClaims.UserID, &req)
		if err != nil {
			handlePackageError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, pkg)
	}
}

func UpdatePackage(service packaging.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdatePackage")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.UpdateAdPackageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		req.ID = pathParam(r, "id")

		pkg, err := service.UpdatePackage(userClaims.UserID, &req)
		if err != nil {
			handlePackageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, pkg)
	}
}

func DeletePackage(service packaging.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeletePackage")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := service.DeletePackage(userClaims.UserID, pathParam(r, "id")); err != nil {
			handlePackageError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handlePackageError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var pkgErr *packaging.PackageError
	if errors.As(err, &pkgErr) {
		var details any
		if pkgErr.PackageID != "" {
			details = map[string]string{"package_id": pkgErr.PackageID}
		}
		apiErrors.WriteError(w, pkgErr.Code, pkgErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar pacote", nil)
}
