package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler, resolver IdentityResolver) {
	auth := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(resolver, h)
	}

	mux.Handle("GET /v1/me", auth(handler.GetMe))
	mux.Handle("GET /v1/seasons", auth(handler.ListSeasons))
	mux.Handle("GET /v1/weeks", auth(handler.ListWeeks))
	mux.Handle("GET /v1/match-weeks/active", auth(handler.ListActiveMatchWeeks))
	mux.Handle("GET /v1/match-weeks/{matchWeekID}", auth(handler.GetMatchWeek))
	mux.Handle("GET /v1/match-weeks/{matchWeekID}/sheet", auth(handler.GetPredictionSheet))
	mux.Handle("GET /v1/match-weeks/{matchWeekID}/predictions", auth(handler.ListMyPredictions))
	mux.Handle("PUT /v1/fixtures/{fixtureID}/prediction", auth(handler.SubmitPrediction))
	mux.Handle("GET /v1/leaderboard", auth(handler.GetLeaderboard))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, resolver IdentityResolver) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(resolver, RequireAdmin(h))
	}

	mux.Handle("GET /v1/admin/teams", admin(handler.ListTeams))
	mux.Handle("POST /v1/admin/seasons", admin(handler.CreateSeason))
	mux.Handle("GET /v1/admin/match-weeks", admin(handler.ListMatchWeeks))
	mux.Handle("POST /v1/admin/match-weeks", admin(handler.CreateMatchWeek))
	mux.Handle("POST /v1/admin/match-weeks/{matchWeekID}/activate", admin(handler.ActivateMatchWeek))
	mux.Handle("POST /v1/admin/match-weeks/{matchWeekID}/score", admin(handler.ScoreMatchWeek))
	mux.Handle("PUT /v1/admin/fixtures/{fixtureID}/result", admin(handler.RecordFixtureResult))
	mux.Handle("POST /v1/admin/fixtures/import", admin(handler.ImportFixtures))
	mux.Handle("POST /v1/admin/scoring/rescore", admin(handler.RescoreAll))
}
