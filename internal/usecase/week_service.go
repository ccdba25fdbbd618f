package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/prediction-league/internal/domain/week"
)

type WeekService struct {
	weekRepo week.Repository
}

func NewWeekService(weekRepo week.Repository) *WeekService {
	return &WeekService{weekRepo: weekRepo}
}

func (s *WeekService) List(ctx context.Context) ([]week.Week, error) {
	items, err := s.weekRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list weeks: %w", err)
	}
	return items, nil
}
