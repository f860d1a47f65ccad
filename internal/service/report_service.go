package service

import (
	"context"
	"fmt"
	"time"

	"chayen/internal/domain"
	"chayen/internal/port"
)

// ReportService aggregates daily sales figures for the dashboard and the
// spreadsheet export.
type ReportService interface {
	Daily(ctx context.Context, date string) (*domain.DailySummary, error)
}

type reportService struct {
	reportRepo port.ReportRepository
	loc        *time.Location
}

// NewReportService creates a new ReportService implementation.
func NewReportService(reportRepo port.ReportRepository, loc *time.Location) ReportService {
	return &reportService{reportRepo: reportRepo, loc: loc}
}

func (s *reportService) Daily(ctx context.Context, date string) (*domain.DailySummary, error) {
	from, to, day, err := dayRange(s.loc, date)
	if err != nil {
		return nil, err
	}
	summary, err := s.reportRepo.DailySummary(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.Daily: %w", err)
	}
	summary.Date = day
	return summary, nil
}
