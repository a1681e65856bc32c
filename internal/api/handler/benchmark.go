package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/internal/usecases/benchmarking"
	"github.com/vfg2006/publimais-api/pkg/apiErrors"
)

// Benchmark compara o usuário com perfis de referência filtrados por plataforma, faixa, país e nicho
func Benchmark(service benchmarking.Benchmarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := domain.BenchmarkFilter{
			FollowersBand: domain.FollowersBand(query.Get("followers")),
			Country:       query.Get("country"),
			Niche:         query.Get("niche"),
		}

		if platform := query.Get("platform"); platform != "" && !strings.EqualFold(platform, "any") {
			parsed, err := domain.ParsePlatform(platform)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			filter.Platform = parsed
		}

		profiles, err := service.SimilarProfiles(filter)
		if err != nil {
			if errors.Is(err, benchmarking.ErrInvalidFollowersBand) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar perfis de referência", nil)
			return
		}

		writeJSON(w, http.StatusOK, profiles)
	}
}
