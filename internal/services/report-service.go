package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/repositories"
)

type ReportServiceInterface interface {
	GetPlataReport(ctx context.Context, filter dto.PlataReportFilterDTO) ([]dto.PlataReportRowDTO, error)
	GetPlataReportXLSX(ctx context.Context, filter dto.PlataReportFilterDTO) (*bytes.Buffer, error)
}

type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{reportRepo: reportRepo, logger: logger}
}

func (s *ReportService) GetPlataReport(ctx context.Context, filter dto.PlataReportFilterDTO) ([]dto.PlataReportRowDTO, error) {
	report, err := s.reportRepo.GetPlataReport(ctx, filter)
	if err != nil {
		s.logger.Error("Dohvatanje izveštaja o platama nije uspelo", zap.Error(err))
	}
	return report, err
}

func (s *ReportService) GetPlataReportXLSX(ctx context.Context, filter dto.PlataReportFilterDTO) (*bytes.Buffer, error) {
	report, err := s.GetPlataReport(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("Zatvaranje XLSX fajla nije uspelo", zap.Error(err))
		}
	}()

	const sheet = "Plate"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		s.logger.Warn("Brisanje podrazumevanog lista nije uspelo", zap.Error(err))
	}

	headers := []string{"ID zaposlenog", "Ime", "Prezime", "Odsek", "Period", "Osnovna", "Bonusi", "Otkazi", "Neto"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
		_ = f.SetCellStyle(sheet, "A1", endCell, headerStyle)
	}

	for rowIdx, row := range report {
		odsek := ""
		if row.OdsekNaziv != nil {
			odsek = *row.OdsekNaziv
		}
		values := []interface{}{
			row.ZaposleniID, row.Ime, row.Prezime, odsek, row.Period,
			row.Osnovna, row.Bonusi, row.Otkazi, row.Neto,
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "I", 16); err != nil {
		s.logger.Warn("Podešavanje širine kolona nije uspelo", zap.Error(err))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("upis XLSX izveštaja nije uspeo: %w", err)
	}
	return buf, nil
}
