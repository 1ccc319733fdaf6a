package service

import (
	"context"
	"time"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/ports"
)

type AnalyticsService struct {
	taskStore ports.TaskStore
	now       func() time.Time
}

func NewAnalyticsService(taskStore ports.TaskStore) *AnalyticsService {
	return &AnalyticsService{taskStore: taskStore, now: time.Now}
}

func (s *AnalyticsService) Report(ctx context.Context) (domain.AnalyticsReport, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		return domain.AnalyticsReport{}, err
	}
	return domain.BuildAnalyticsReport(tasks, s.now()), nil
}

var _ ports.AnalyticsService = (*AnalyticsService)(nil)
