package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/publimais-api/internal/api/handler/router"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/pkg/apiErrors"
	"github.com/vfg2006/publimais-api/pkg/log"
	"github.com/vfg2006/publimais-api/pkg/middleware"
)

func init() {
	log.SetupTestLogger()
}

const (
	influencerID = 7
	adminID      = 1
)

func influencer() *domain.Claims {
	return &domain.Claims{UserID: influencerID, UserRoleID: middleware.RoleInfluencer}
}

func admin() *domain.Claims {
	return &domain.Claims{UserID: adminID, UserRoleID: middleware.RoleAdmin}
}

// serve monta o router com as rotas informadas e injeta as claims como o AuthMiddleware faria
func serve(routes []router.Route, claims *domain.Claims, method, target string, body io.Reader) *httptest.ResponseRecorder {
	return serveRequest(routes, claims, httptest.NewRequest(method, target, body))
}

func serveRequest(routes []router.Route, claims *domain.Claims, req *http.Request) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
}
