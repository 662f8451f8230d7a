package repository

import (
	"ai_interviewer_backend/internal/model"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) Create(report *model.InterviewReport) error {
	return r.DB.Create(report).Error
}

func (r *ReportRepository) FindByID(id string) (*model.InterviewReport, error) {
	var rep model.InterviewReport
	err := r.DB.First(&rep, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

// ListBySession 按创建时间倒序，最新报告排最前
func (r *ReportRepository) ListBySession(sessionID string) ([]model.InterviewReport, error) {
	var reports []model.InterviewReport
	err := r.DB.Where("session_id = ?", sessionID).Order("created_at desc").Find(&reports).Error
	return reports, err
}
