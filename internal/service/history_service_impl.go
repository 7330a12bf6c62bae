package service

import (
	"context"

	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/alexanderramin/gradplan/internal/repository"
)

type historyService struct {
	events repository.PlanEventRepo
}

func NewHistoryService(events repository.PlanEventRepo) HistoryService {
	return &historyService{events: events}
}

func (s *historyService) Recent(ctx context.Context, limit int) ([]*domain.PlanEvent, error) {
	return s.events.ListRecent(ctx, limit)
}
