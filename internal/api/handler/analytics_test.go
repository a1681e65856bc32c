package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/pkg/apiErrors"
)

func TestEngagementRate(t *testing.T) {
	t.Run("Calcula o ER ponderado do post", func(t *testing.T) {
		body := `{"id":1,"platform":"instagram","type":"organic","likes":1000,"comments":100,"shares":50,"views":10000}`

		rec := serve(Analytics(), influencer(), http.MethodPost, "/v1/analytics/engagement-rate", strings.NewReader(body))

		requireStatus(t, rec, http.StatusOK)
		var post domain.PostWithER
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&post))
		assert.Equal(t, 12.1, post.ER)
		assert.Equal(t, domain.PlatformInstagram, post.Platform)
	})

	t.Run("Plataforma desconhecida é rejeitada", func(t *testing.T) {
		body := `{"id":1,"platform":"orkut","likes":10,"views":100}`

		rec := serve(Analytics(), influencer(), http.MethodPost, "/v1/analytics/engagement-rate", strings.NewReader(body))

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})

	t.Run("Exige autenticação", func(t *testing.T) {
		rec := serve(Analytics(), nil, http.MethodPost, "/v1/analytics/engagement-rate", strings.NewReader(`{}`))

		requireStatus(t, rec, http.StatusUnauthorized)
	})
}

func TestEngagement(t *testing.T) {
	body := `{"posts":[
		{"id":1,"platform":"instagram","type":"organic","likes":1000,"comments":100,"shares":50,"views":10000},
		{"id":2,"platform":"instagram","type":"campaign","likes":500,"comments":20,"shares":10,"views":5000}
	]}`

	rec := serve(Analytics(), influencer(), http.MethodPost, "/v1/analytics/engagement", strings.NewReader(body))

	requireStatus(t, rec, http.StatusOK)
	var result domain.AggregatedEngagement
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, int64(1000), result.Organic.Likes)
	assert.Equal(t, 12.1, result.Organic.ER)
	assert.Equal(t, int64(5000), result.Campaign.Views)
}

func TestCampaignKPIs(t *testing.T) {
	body := `{"id":"c1","name":"Black Friday","budget":1000,"clicks":500,"impressions":100000,"conversions":50,"revenue":5000}`

	rec := serve(Analytics(), influencer(), http.MethodPost, "/v1/analytics/campaign-kpis", strings.NewReader(body))

	requireStatus(t, rec, http.StatusOK)
	var kpis domain.CampaignKPIs
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&kpis))
	assert.InDelta(t, 2.0, kpis.CPC, 0.0001)
	assert.InDelta(t, 10.0, kpis.CPM, 0.0001)
	assert.InDelta(t, 0.5, kpis.CTR, 0.0001)
	assert.InDelta(t, 10.0, kpis.CR, 0.0001)
	assert.InDelta(t, 5.0, kpis.ROAS, 0.0001)
}

func TestGrowthPeaks(t *testing.T) {
	t.Run("Destaca o maior ganho", func(t *testing.T) {
		body := `{"points":[{"month":"Jan","followers":100},{"month":"Fev","followers":150},{"month":"Mar","followers":140}]}`

		rec := serve(Analytics(), influencer(), http.MethodPost, "/v1/analytics/growth-peaks", strings.NewReader(body))

		requireStatus(t, rec, http.StatusOK)
		var result domain.GrowthPeaks
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
		require.NotNil(t, result.Top)
		assert.Equal(t, "Fev", result.Top.Month)
		assert.Equal(t, int64(50), result.Top.Delta)
		assert.Len(t, result.Series, 3)
	})

	t.Run("Série vazia não tem pico", func(t *testing.T) {
		rec := serve(Analytics(), influencer(), http.MethodPost, "/v1/analytics/growth-peaks", strings.NewReader(`{"points":[]}`))

		requireStatus(t, rec, http.StatusOK)
		var result domain.GrowthPeaks
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
		assert.Nil(t, result.Top)
		assert.Empty(t, result.Series)
	})
}
