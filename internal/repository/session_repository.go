package repository

import (
	"ai_interviewer_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// CreateWithQuestions 会话与题目快照在同一事务里落库
func (r *SessionRepository) CreateWithQuestions(session *model.InterviewSession, questions []model.SessionQuestion) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].SessionID = session.ID
		}
		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SessionRepository) FindByID(id string) (*model.InterviewSession, error) {
	var s model.InterviewSession
	err := r.DB.First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByIDWithQuestions 按 order_no 升序预载题目
func (r *SessionRepository) FindByIDWithQuestions(id string) (*model.InterviewSession, error) {
	var s model.InterviewSession
	err := r.DB.Preload("SessionQuestions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_no asc")
	}).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) Update(session *model.InterviewSession) error {
	return r.DB.Save(session).Error
}

func (r *SessionRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.SessionQuestion{}, "session_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.InterviewReport{}, "session_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.InterviewSession{}, "id = ?", id).Error
	})
}

func (r *SessionRepository) QuestionsBySession(sessionID string) ([]model.SessionQuestion, error) {
	var qs []model.SessionQuestion
	err := r.DB.Where("session_id = ?", sessionID).Order("order_no asc").Find(&qs).Error
	return qs, err
}

func (r *SessionRepository) FindQuestion(sessionID string, orderNo int) (*model.SessionQuestion, error) {
	var q model.SessionQuestion
	err := r.DB.Where("session_id = ? AND order_no = ?", sessionID, orderNo).First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// NextUnanswered 返回 order_no 最小的未作答题目，全部答完返回 nil
func (r *SessionRepository) NextUnanswered(sessionID string) (*model.SessionQuestion, error) {
	var q model.SessionQuestion
	err := r.DB.Where("session_id = ? AND (answer_text = '' OR answer_text IS NULL)", sessionID).
		Order("order_no asc").
		First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *SessionRepository) SaveQuestion(q *model.SessionQuestion) error {
	return r.DB.Save(q).Error
}

// UpdateOrderNos 批量换序，一个事务内完成，保证洗牌是原子的
func (r *SessionRepository) UpdateOrderNos(questions []model.SessionQuestion) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range questions {
			if err := tx.Model(&model.SessionQuestion{}).
				Where("id = ?", questions[i].ID).
				Update("order_no", questions[i].OrderNo).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
