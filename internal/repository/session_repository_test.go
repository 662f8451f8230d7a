package repository

import (
	"ai_interviewer_backend/internal/model"
	"ai_interviewer_backend/pkg/database"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedSession(t *testing.T, repo *SessionRepository, questionCount int) *model.InterviewSession {
	t.Helper()
	session := &model.InterviewSession{Status: model.SessionStatusCreated}
	questions := make([]model.SessionQuestion, questionCount)
	for i := range questions {
		questions[i] = model.SessionQuestion{
			OrderNo:      i + 1,
			QuestionText: "question",
			Type:         model.QuestionTypeTechnical,
			Difficulty:   3,
			ScoreJson:    "{}",
			ScoreStatus:  model.ScoreStatusPending,
		}
	}
	require.NoError(t, repo.CreateWithQuestions(session, questions))
	return session
}

func TestCreateWithQuestionsAssignsSessionID(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	session := seedSession(t, repo, 3)

	loaded, err := repo.FindByIDWithQuestions(session.ID)
	require.NoError(t, err)
	require.Len(t, loaded.SessionQuestions, 3)
	for i, q := range loaded.SessionQuestions {
		assert.Equal(t, session.ID, q.SessionID)
		assert.Equal(t, i+1, q.OrderNo)
	}
}

func TestNextUnansweredProgression(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	session := seedSession(t, repo, 2)

	next, err := repo.NextUnanswered(session.ID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, 1, next.OrderNo)

	next.AnswerText = "answered"
	require.NoError(t, repo.SaveQuestion(next))

	next, err = repo.NextUnanswered(session.ID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, 2, next.OrderNo)

	next.AnswerText = "answered"
	require.NoError(t, repo.SaveQuestion(next))

	next, err = repo.NextUnanswered(session.ID)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestUpdateOrderNosIsApplied(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	session := seedSession(t, repo, 3)

	questions, err := repo.QuestionsBySession(session.ID)
	require.NoError(t, err)

	questions[0].OrderNo, questions[2].OrderNo = questions[2].OrderNo, questions[0].OrderNo
	require.NoError(t, repo.UpdateOrderNos(questions))

	reloaded, err := repo.QuestionsBySession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, questions[0].ID, reloaded[2].ID)
	assert.Equal(t, questions[2].ID, reloaded[0].ID)
}

func TestDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	reportRepo := NewReportRepository(db)

	session := seedSession(t, repo, 2)
	require.NoError(t, reportRepo.Create(&model.InterviewReport{SessionID: session.ID, ReportJson: "{}"}))

	require.NoError(t, repo.Delete(session.ID))

	_, err := repo.FindByID(session.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var qCount, rCount int64
	db.Model(&model.SessionQuestion{}).Where("session_id = ?", session.ID).Count(&qCount)
	db.Model(&model.InterviewReport{}).Where("session_id = ?", session.ID).Count(&rCount)
	assert.Zero(t, qCount)
	assert.Zero(t, rCount)
}

func TestFindQuestionByOrderNo(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	session := seedSession(t, repo, 2)

	q, err := repo.FindQuestion(session.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, q.OrderNo)

	_, err = repo.FindQuestion(session.ID, 5)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
