package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/prediction-league/internal/platform/logging"
	"github.com/riskibarqy/prediction-league/internal/usecase"
)

type Services struct {
	Seasons     *usecase.SeasonService
	Weeks       *usecase.WeekService
	MatchWeeks  *usecase.MatchWeekService
	Fixtures    *usecase.FixtureService
	Predictions *usecase.PredictionService
	Scoring     *usecase.ScoringService
	Leaderboard *usecase.LeaderboardService
	Import      *usecase.ImportService
}

type Handler struct {
	seasonService      *usecase.SeasonService
	weekService        *usecase.WeekService
	matchWeekService   *usecase.MatchWeekService
	fixtureService     *usecase.FixtureService
	predictionService  *usecase.PredictionService
	scoringService     *usecase.ScoringService
	leaderboardService *usecase.LeaderboardService
	importService      *usecase.ImportService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		seasonService:      services.Seasons,
		weekService:        services.Weeks,
		matchWeekService:   services.MatchWeeks,
		fixtureService:     services.Fixtures,
		predictionService:  services.Predictions,
		scoringService:     services.Scoring,
		leaderboardService: services.Leaderboard,
		importService:      services.Import,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMe")
	defer span.End()

	u, ok := currentUserFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no signed-in user", usecase.ErrUnauthorized))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(u))
}

// decodeJSON reads a single JSON object, rejecting unknown fields, and runs
// struct validation on it.
func (h *Handler) decodeJSON(ctx context.Context, r *http.Request, target any) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, target)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}
