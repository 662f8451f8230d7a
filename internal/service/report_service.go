package service

import (
	"ai_interviewer_backend/internal/model"
	"ai_interviewer_backend/internal/repository"
	"ai_interviewer_backend/internal/util"
	"ai_interviewer_backend/pkg/logger"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReportService 已生成报告的读取与导出
type ReportService struct {
	reportRepo *repository.ReportRepository
	storage    *StorageService
}

func NewReportService(reportRepo *repository.ReportRepository, storage *StorageService) *ReportService {
	return &ReportService{reportRepo: reportRepo, storage: storage}
}

func (s *ReportService) GetReport(reportID string) (*model.InterviewReport, error) {
	report, err := s.reportRepo.FindByID(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrReportNotFound
		}
		return nil, err
	}
	return report, nil
}

// ExportReport 把报告 JSON 原样写入对象存储并返回可访问地址
func (s *ReportService) ExportReport(ctx context.Context, reportID string) (string, error) {
	report, err := s.GetReport(reportID)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("interview-reports/%s/%s.json", report.SessionID, report.ID)
	body := strings.NewReader(report.ReportJson)

	url, err := s.storage.Upload(ctx, filename, body, int64(len(report.ReportJson)), "application/json")
	if err != nil {
		return "", err
	}

	logger.Log.Info("Interview report exported",
		zap.String("reportId", report.ID), zap.String("url", url))

	return url, nil
}

// DecodeReport 把落库的报告 JSON 还原成结构体，历史数据解析失败如实报错
func (s *ReportService) DecodeReport(report *model.InterviewReport) (*model.ReportJson, error) {
	var decoded model.ReportJson
	if err := json.Unmarshal([]byte(report.ReportJson), &decoded); err != nil {
		return nil, err
	}
	return &decoded, nil
}
