package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"github.com/SAP-F-2025/employability-assessment/internal/scoring"
	"github.com/xuri/excelize/v2"
)

const (
	resultsSheet = "测评结果"
	summarySheet = "统计"
	timeLayout   = "2006-01-02 15:04:05"
)

type exportService struct {
	admin  AdminService
	logger *slog.Logger
}

func NewExportService(admin AdminService, logger *slog.Logger) ExportService {
	return &exportService{admin: admin, logger: logger}
}

// ExportWorkbook renders every participant row and the summary stats as an xlsx workbook
func (s *exportService) ExportWorkbook(ctx context.Context) ([]byte, error) {
	participants, err := s.admin.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.admin.Stats(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []interface{}{"ID", "姓名", "年级", "手机号", "总分", "总分区间", "等级"}
	for _, module := range scoring.Modules {
		headers = append(headers, string(module))
	}
	headers = append(headers, "注册时间", "测评时间")

	if err := f.SetSheetRow(resultsSheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, p := range participants {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := participantRow(p)
		if err := f.SetSheetRow(resultsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	summary := [][]interface{}{
		{"参与人数", stats.TotalUsers},
		{"测评次数", stats.TotalAssessments},
		{"平均分", stats.AverageScore},
	}
	for _, module := range scoring.Modules {
		if avg, ok := stats.ModuleAverages[module]; ok {
			summary = append(summary, []interface{}{string(module) + " 平均分", avg})
		}
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write summary: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Exported workbook", "rows", len(participants))
	return buf.Bytes(), nil
}

func participantRow(p models.ParticipantSummary) []interface{} {
	row := []interface{}{p.ID, p.Username, p.Grade, p.Phone}

	if p.TotalScore != nil {
		total := float64(*p.TotalScore)
		row = append(row,
			*p.TotalScore,
			scoring.ScoreRange(total, scoring.TotalScoreScale),
			scoring.ScoreLevel(total, scoring.TotalScoreScale))
	} else {
		row = append(row, "", "", "")
	}

	for _, module := range scoring.Modules {
		if score, ok := p.ModuleScores[module]; ok {
			row = append(row, score)
		} else {
			row = append(row, "")
		}
	}

	row = append(row, p.UserTime.Format(timeLayout))
	if p.AssessmentTime != nil {
		row = append(row, p.AssessmentTime.Format(timeLayout))
	} else {
		row = append(row, "")
	}
	return row
}
