package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/riskibarqy/prediction-league/internal/usecase"
)

func (h *Handler) GetPredictionSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPredictionSheet")
	defer span.End()

	u, ok := currentUserFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no signed-in user", usecase.ErrUnauthorized))
		return
	}
	matchWeekID, err := pathID(r, "matchWeekID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	sheet, err := h.predictionService.Sheet(ctx, u.ID, matchWeekID)
	if err != nil {
		h.logger.WarnContext(ctx, "get prediction sheet failed",
			"user_id", u.ID,
			"match_week_id", matchWeekID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sheetToDTO(sheet))
}

func (h *Handler) ListMyPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyPredictions")
	defer span.End()

	u, ok := currentUserFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no signed-in user", usecase.ErrUnauthorized))
		return
	}
	matchWeekID, err := pathID(r, "matchWeekID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	byFixture, err := h.predictionService.ListForUser(ctx, u.ID, matchWeekID)
	if err != nil {
		h.logger.WarnContext(ctx, "list predictions failed",
			"user_id", u.ID,
			"match_week_id", matchWeekID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	out := make(map[string]predictionDTO, len(byFixture))
	for fixtureID, item := range byFixture {
		out[strconv.FormatInt(fixtureID, 10)] = predictionToDTO(item)
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) SubmitPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPrediction")
	defer span.End()

	u, ok := currentUserFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no signed-in user", usecase.ErrUnauthorized))
		return
	}
	fixtureID, err := pathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req submitPredictionRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.predictionService.Submit(ctx, usecase.SubmitPredictionInput{
		UserID:    u.ID,
		FixtureID: fixtureID,
		HomeScore: *req.HomeScore,
		AwayScore: *req.AwayScore,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit prediction failed",
			"user_id", u.ID,
			"fixture_id", fixtureID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionToDTO(saved))
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	items, err := h.leaderboardService.Get(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(items))
}

func (h *Handler) RecordFixtureResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordFixtureResult")
	defer span.End()

	fixtureID, err := pathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req recordResultRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	out, err := h.fixtureService.RecordResult(ctx, usecase.RecordResultInput{
		FixtureID: fixtureID,
		HomeScore: *req.HomeScore,
		AwayScore: *req.AwayScore,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record fixture result failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recordResultDTO{
		Fixture: fixtureToDTO(out.Fixture),
		Scoring: summaryToDTO(out.Scoring),
	})
}

func (h *Handler) ImportFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportFixtures")
	defer span.End()

	out, err := h.importService.FetchUpcoming(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "import fixtures failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	fixtures := make([]externalFixtureDTO, 0, len(out.Fixtures))
	for _, item := range out.Fixtures {
		fixtures = append(fixtures, externalFixtureDTO{
			HomeTeam:  item.HomeTeam,
			AwayTeam:  item.AwayTeam,
			KickoffAt: item.KickoffAt,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, importResultDTO{
		RunID:    out.RunID,
		Count:    out.Count,
		Fixtures: fixtures,
	})
}
