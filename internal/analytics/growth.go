package analytics

import "github.com/vfg2006/publimais-api/internal/domain"

// GrowthPeaks calcula a variação ponto a ponto e destaca o maior ganho de seguidores.
// O primeiro ponto usa ele mesmo como referência, então seu delta é zero.
func GrowthPeaks(points []domain.FollowerPoint) domain.GrowthPeaks {
	series := make([]domain.GrowthPoint, 0, len(points))

	for i, point := range points {
		prev := point.Followers
		if i > 0 {
			prev = points[i-1].Followers
		}

		delta := point.Followers - prev
		var pct float64
		if prev != 0 {
			pct = float64(delta) / float64(prev) * 100
		}

		series = append(series, domain.GrowthPoint{FollowerPoint: point, Delta: delta, Pct: pct})
	}

	var top *domain.GrowthPoint
	for i := range series {
		// maior estrito: em caso de empate fica o primeiro
		if top == nil || series[i].Delta > top.Delta {
			top = &series[i]
		}
	}
	if top != nil {
		peak := *top
		top = &peak
	}

	return domain.GrowthPeaks{Top: top, Series: series}
}
