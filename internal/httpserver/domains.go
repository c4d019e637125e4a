package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "nextstep/internal/chat/delivery/http"
	chatMemory "nextstep/internal/chat/repository/memory"
	chatUC "nextstep/internal/chat/usecase"
	"nextstep/internal/middleware"
	"nextstep/internal/preference"
	preferenceHTTP "nextstep/internal/preference/delivery/http"
	preferenceRepo "nextstep/internal/preference/repository/postgre"
	preferenceUC "nextstep/internal/preference/usecase"
	recommendationHTTP "nextstep/internal/recommendation/delivery/http"
	recRepoPkg "nextstep/internal/recommendation/repository"
	recommendationRepo "nextstep/internal/recommendation/repository/postgre"
	recommendationUC "nextstep/internal/recommendation/usecase"
	universityHTTP "nextstep/internal/university/delivery/http"
	universityUC "nextstep/internal/university/usecase"
)

// Each setup follows the same shape:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)

func (srv *HTTPServer) setupPreferenceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (preference.UseCase, error) {
	repo := preferenceRepo.New(srv.postgresDB, srv.l)
	uc := preferenceUC.New(repo, srv.l)
	h := preferenceHTTP.New(srv.l, uc)
	preferenceHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Preference domain registered")
	return uc, nil
}

func (srv *HTTPServer) setupRecommendationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (recRepoPkg.Repository, error) {
	repo := recommendationRepo.New(srv.postgresDB, srv.l)
	prefRepo := preferenceRepo.New(srv.postgresDB, srv.l)
	uc := recommendationUC.New(repo, prefRepo, srv.llm, srv.l)
	h := recommendationHTTP.New(srv.l, uc)
	recommendationHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Recommendation domain registered")
	return repo, nil
}

func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, prefUC preference.UseCase, recRepo recRepoPkg.Repository) error {
	sessions, err := chatMemory.New(srv.chatMaxSessions)
	if err != nil {
		return err
	}
	uc := chatUC.New(sessions, prefUC, recRepo, srv.llm, srv.l)
	h := chatHTTP.New(srv.l, uc, prefUC)
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}

func (srv *HTTPServer) setupUniversityDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc, err := universityUC.New(srv.llm, srv.detailsCacheSize, srv.l)
	if err != nil {
		return err
	}
	h := universityHTTP.New(srv.l, uc)
	universityHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "University domain registered")
	return nil
}
