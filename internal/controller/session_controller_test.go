package controller

import (
	"ai_interviewer_backend/internal/repository"
	"ai_interviewer_backend/internal/service"
	"ai_interviewer_backend/internal/util"
	"ai_interviewer_backend/pkg/database"
	"ai_interviewer_backend/pkg/logger"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	llm := service.NewMockClient()
	questionRepo := repository.NewQuestionRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	reportRepo := repository.NewReportRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	questionSvc := service.NewQuestionService(questionRepo, llm)
	sessionSvc := service.NewSessionService(sessionRepo, reportRepo, roleRepo, questionSvc, llm)

	questionCtl := NewQuestionController(questionSvc)
	sessionCtl := NewSessionController(sessionSvc)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/questions/generate", questionCtl.Generate)
	session := api.Group("/session")
	session.POST("/create", sessionCtl.Create)
	session.GET("/:id", sessionCtl.Get)
	session.POST("/:id/randomize", sessionCtl.Randomize)
	session.POST("/:id/start", sessionCtl.Start)
	session.POST("/:id/answer", sessionCtl.Answer)
	session.GET("/:id/next", sessionCtl.Next)
	session.POST("/:id/finish", sessionCtl.Finish)
	session.POST("/:id/report", sessionCtl.Report)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, util.Response) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestGenerateQuestionsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/questions/generate", gin.H{
		"role": "Backend Engineer", "total": 4, "techRatio": 50,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusOK, resp.Code)

	items, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, items, 4)
}

func TestGenerateQuestionsValidation(t *testing.T) {
	router := newTestRouter(t)

	// total 超出上限
	w, _ := doJSON(t, router, http.MethodPost, "/api/questions/generate", gin.H{
		"role": "Dev", "total": 99,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/session/create", gin.H{
		"questions": []gin.H{
			{"type": "technical", "difficulty": 3, "text": "Explain slices."},
			{"type": "background", "difficulty": 2, "text": "Describe your last team."},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp.Data.(map[string]any)
	sessionID := data["sessionId"].(string)
	require.NotEmpty(t, sessionID)

	w, _ = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/session/%s/start", sessionID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// 重复 start 违反前置条件
	w, resp = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/session/%s/start", sessionID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Message, "start")

	w, resp = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/session/%s/answer", sessionID), gin.H{
		"orderNo": 1, "answerText": "A slice is a view over an array.",
	})
	require.Equal(t, http.StatusOK, w.Code)
	answerData := resp.Data.(map[string]any)
	eval := answerData["evaluationJson"].(map[string]any)
	assert.EqualValues(t, 7, eval["score"])

	w, resp = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/session/%s/next", sessionID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	nextData := resp.Data.(map[string]any)
	assert.Equal(t, false, nextData["done"])

	w, _ = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/session/%s/answer", sessionID), gin.H{
		"orderNo": 2, "answerText": "A team of five engineers.",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/session/%s/next", sessionID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	nextData = resp.Data.(map[string]any)
	assert.Equal(t, true, nextData["done"])

	w, _ = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/session/%s/finish", sessionID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/session/%s/report", sessionID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	reportData := resp.Data.(map[string]any)
	assert.Equal(t, "Pass", reportData["Verdict"])
}

func TestReportBeforeFinishRejected(t *testing.T) {
	router := newTestRouter(t)

	_, resp := doJSON(t, router, http.MethodPost, "/api/session/create", gin.H{
		"questions": []gin.H{{"type": "technical", "difficulty": 3, "text": "q"}},
	})
	sessionID := resp.Data.(map[string]any)["sessionId"].(string)

	w, resp := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/session/%s/report", sessionID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Message, "Finished")
}

func TestSessionNotFoundMapsTo404(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/session/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/session/no-such-id/start", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/session/no-such-id/randomize", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRandomizeWithoutQuestionsMapsTo404(t *testing.T) {
	router := newTestRouter(t)

	_, resp := doJSON(t, router, http.MethodPost, "/api/session/create", gin.H{})
	sessionID := resp.Data.(map[string]any)["sessionId"].(string)

	w, resp := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/session/%s/randomize", sessionID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, resp.Message, "no interview questions")
}
