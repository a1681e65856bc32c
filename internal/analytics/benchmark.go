package analytics

import (
	"sort"
	"strings"

	"github.com/vfg2006/publimais-api/internal/domain"
)

func matchesBand(followers int64, band domain.FollowersBand) bool {
	switch band {
	case domain.FollowersBandUnder100k:
		return followers < 100_000
	case domain.FollowersBand100To300k:
		return followers >= 100_000 && followers <= 300_000
	case domain.FollowersBand300kTo1M:
		return followers > 300_000 && followers <= 1_000_000
	case domain.FollowersBandOver1M:
		return followers > 1_000_000
	default:
		return true
	}
}

func isAny(value string) bool {
	return value == "" || strings.EqualFold(value, "any")
}

func hasNiche(niches []string, niche string) bool {
	for _, n := range niches {
		if strings.EqualFold(n, niche) {
			return true
		}
	}
	return false
}

// FilterSimilarProfiles aplica os filtros do comparativo e ordena por ER decrescente
func FilterSimilarProfiles(profiles []domain.SimilarProfile, filter domain.BenchmarkFilter) []domain.SimilarProfile {
	result := make([]domain.SimilarProfile, 0, len(profiles))

	for _, profile := range profiles {
		if filter.Platform != "" && profile.Platform != filter.Platform {
			continue
		}
		if !matchesBand(profile.Followers, filter.FollowersBand) {
			continue
		}
		if !isAny(filter.Country) && !strings.EqualFold(profile.Country, filter.Country) {
			continue
		}
		if !isAny(filter.Niche) && !hasNiche(profile.Niches, filter.Niche) {
			continue
		}
		result = append(result, profile)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ER > result[j].ER
	})

	return result
}

// ValidFollowersBand informa se a faixa é conhecida
func ValidFollowersBand(band domain.FollowersBand) bool {
	switch band {
	case "", domain.FollowersBandAny, domain.FollowersBandUnder100k, domain.FollowersBand100To300k,
		domain.FollowersBand300kTo1M, domain.FollowersBandOver1M:
		return true
	}
	return false
}
