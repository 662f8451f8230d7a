package repository

import (
	"ai_interviewer_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) CreateBatch(qs []model.Question) error {
	if len(qs) == 0 {
		return nil
	}
	return r.DB.Create(&qs).Error
}

func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, "id = ?", id).Error
	return &q, err
}

func (r *QuestionRepository) List(qType string, page, limit int) ([]model.Question, int64, error) {
	var qs []model.Question
	var total int64
	query := r.DB.Model(&model.Question{})
	if qType != "" {
		query = query.Where("type = ?", qType)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&qs).Error
	return qs, total, err
}

func (r *QuestionRepository) Delete(id string) error {
	return r.DB.Delete(&model.Question{}, "id = ?", id).Error
}
