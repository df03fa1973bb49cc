package services

import (
	"context"

	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/repositories"
)

const (
	recentActivityLimit = 10
	trendMeseci         = 6
)

type DashboardServiceInterface interface {
	GetStatistics(ctx context.Context) (*dto.DashboardStatisticsDTO, error)
	GetRecentActivity(ctx context.Context) ([]dto.ActivityItemDTO, error)
	GetChartsData(ctx context.Context) (*dto.DashboardChartsDTO, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	logger        *zap.Logger
}

func NewDashboardService(dashboardRepo repositories.DashboardRepositoryInterface, logger *zap.Logger) DashboardServiceInterface {
	return &DashboardService{dashboardRepo: dashboardRepo, logger: logger}
}

func (s *DashboardService) GetStatistics(ctx context.Context) (*dto.DashboardStatisticsDTO, error) {
	stats, err := s.dashboardRepo.GetStatistics(ctx)
	if err != nil {
		s.logger.Error("Dohvatanje statistike nije uspelo", zap.Error(err))
	}
	return stats, err
}

func (s *DashboardService) GetRecentActivity(ctx context.Context) ([]dto.ActivityItemDTO, error) {
	items, err := s.dashboardRepo.GetRecentActivity(ctx, recentActivityLimit)
	if err != nil {
		s.logger.Error("Dohvatanje skorašnjih aktivnosti nije uspelo", zap.Error(err))
	}
	return items, err
}

func (s *DashboardService) GetChartsData(ctx context.Context) (*dto.DashboardChartsDTO, error) {
	poOdseku, err := s.dashboardRepo.GetZaposleniPoOdseku(ctx)
	if err != nil {
		s.logger.Error("Dohvatanje raspodele po odsecima nije uspelo", zap.Error(err))
		return nil, err
	}
	trend, err := s.dashboardRepo.GetMesecniTrend(ctx, trendMeseci)
	if err != nil {
		s.logger.Error("Dohvatanje mesečnog trenda nije uspelo", zap.Error(err))
		return nil, err
	}
	raspodela, err := s.dashboardRepo.GetRaspodelaPlata(ctx)
	if err != nil {
		s.logger.Error("Dohvatanje raspodele plata nije uspelo", zap.Error(err))
		return nil, err
	}

	return &dto.DashboardChartsDTO{
		ZaposleniPoOdseku: poOdseku,
		MesecniTrend:      trend,
		RaspodelaPlata:    raspodela,
	}, nil
}
