package benchmarking

import (
	"errors"
	"fmt"

	"github.com/vfg2006/publimais-api/infrastructure/repository"
	"github.com/vfg2006/publimais-api/internal/analytics"
	"github.com/vfg2006/publimais-api/internal/domain"
)

var ErrInvalidFollowersBand = errors.New("faixa de seguidores inválida")

type Benchmarker interface {
	SimilarProfiles(filter domain.BenchmarkFilter) ([]domain.SimilarProfile, error)
}

type Service struct {
	benchmarkRepo repository.BenchmarkRepository
}

func NewService(benchmarkRepo repository.BenchmarkRepository) Benchmarker {
	return &Service{
		benchmarkRepo: benchmarkRepo,
	}
}

// SimilarProfiles busca os perfis de referência da plataforma e aplica os filtros restantes em memória
func (s *Service) SimilarProfiles(filter domain.BenchmarkFilter) ([]domain.SimilarProfile, error) {
	if !analytics.ValidFollowersBand(filter.FollowersBand) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFollowersBand, filter.FollowersBand)
	}

	profiles, err := s.benchmarkRepo.ListSimilarProfiles(filter.Platform)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar perfis de referência: %w", err)
	}

	return analytics.FilterSimilarProfiles(profiles, filter), nil
}
