package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publimais-api/internal/analytics"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/pkg/apiErrors"
)

type PostsRequest struct {
	Posts []domain.Post `json:"posts"`
}

type FollowerPointsRequest struct {
	Points []domain.FollowerPoint `json:"points"`
}

// EngagementRate calcula o ER de um único post enviado no corpo
func EngagementRate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var post domain.Post
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Post inválido", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, domain.PostWithER{
			Post: post,
			ER:   analytics.ERForPost(post),
		})
	}
}

// Engagement separa a média orgânica da média de campanha
func Engagement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PostsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Lista de posts inválida", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, analytics.AggregateEngagement(req.Posts))
	}
}

func CampaignKPIs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var campaign domain.Campaign
		if err := json.NewDecoder(r.Body).Decode(&campaign); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Campanha inválida", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, analytics.CalcCampaignKPIs(&campaign))
	}
}

func GrowthPeaks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FollowerPointsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Série de seguidores inválida", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, analytics.GrowthPeaks(req.Points))
	}
}
