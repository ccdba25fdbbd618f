package httpapi

import (
	"net/http"

	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
	"github.com/riskibarqy/prediction-league/internal/usecase"
)

func (h *Handler) ListMatchWeeks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchWeeks")
	defer span.End()

	items, err := h.matchWeekService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list match weeks failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchWeeksToDTO(items))
}

func (h *Handler) ListActiveMatchWeeks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListActiveMatchWeeks")
	defer span.End()

	items, err := h.matchWeekService.ListActive(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list active match weeks failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchWeeksToDTO(items))
}

func (h *Handler) GetMatchWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchWeek")
	defer span.End()

	matchWeekID, err := pathID(r, "matchWeekID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.matchWeekService.Get(ctx, matchWeekID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match week failed", "match_week_id", matchWeekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchWeekDetailDTO{
		MatchWeek: matchWeekToDTO(detail.MatchWeek),
		Fixtures:  fixturesToDTO(detail.Fixtures),
	})
}

func (h *Handler) CreateMatchWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatchWeek")
	defer span.End()

	var req createMatchWeekRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	specs := make([]fixture.Spec, 0, len(req.Fixtures))
	for _, item := range req.Fixtures {
		specs = append(specs, fixture.Spec{
			HomeTeam:  item.HomeTeam,
			AwayTeam:  item.AwayTeam,
			KickoffAt: item.KickoffAt,
		})
	}

	detail, err := h.matchWeekService.Create(ctx, usecase.CreateMatchWeekInput{
		SeasonID:           req.SeasonID,
		WeekID:             req.WeekID,
		PredictionsOpenAt:  req.PredictionsOpenAt,
		PredictionsCloseAt: req.PredictionsCloseAt,
		Fixtures:           specs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match week failed",
			"season_id", req.SeasonID,
			"week_id", req.WeekID,
			"fixture_count", len(specs),
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchWeekDetailDTO{
		MatchWeek: matchWeekToDTO(detail.MatchWeek),
		Fixtures:  fixturesToDTO(detail.Fixtures),
	})
}

func (h *Handler) ActivateMatchWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ActivateMatchWeek")
	defer span.End()

	matchWeekID, err := pathID(r, "matchWeekID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchWeekService.Activate(ctx, matchWeekID); err != nil {
		h.logger.WarnContext(ctx, "activate match week failed", "match_week_id", matchWeekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"matchWeekId": matchWeekID,
		"isActive":    true,
	})
}

func (h *Handler) ScoreMatchWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScoreMatchWeek")
	defer span.End()

	matchWeekID, err := pathID(r, "matchWeekID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.scoringService.ScoreMatchWeek(ctx, matchWeekID)
	if err != nil {
		h.logger.WarnContext(ctx, "score match week failed", "match_week_id", matchWeekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(summary))
}

func (h *Handler) RescoreAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RescoreAll")
	defer span.End()

	out, err := h.scoringService.ScoreAll(ctx)
	if err != nil {
		// Partial failures still carry the summaries of the weeks that were scored.
		h.logger.WarnContext(ctx, "rescore all failed",
			"failed_count", out.FailedCount,
			"scored_count", len(out.Summaries),
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	summaries := make([]scoringSummaryDTO, 0, len(out.Summaries))
	for _, item := range out.Summaries {
		summaries = append(summaries, summaryToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, rescoreAllDTO{
		WorkerCount: out.WorkerCount,
		FailedCount: out.FailedCount,
		Summaries:   summaries,
	})
}
