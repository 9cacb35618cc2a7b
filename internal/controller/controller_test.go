package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"study_buddy_backend/internal/config"
	"study_buddy_backend/internal/middleware"
	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/repository"
	"study_buddy_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// newTestRouter 内存状态 + 演示内容的完整路由，与生产注册的路径一致
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		State:    config.StateConfig{Backend: "memory"},
		Pomodoro: config.PomodoroConfig{WorkMinutes: 25, BreakMinutes: 5},
	}

	states := repository.NewMemoryStateRepository()
	gen := service.NewDemoGenerator()
	progression := service.NewProgressionService(states)

	study := NewStudyController(service.NewStudyService(gen, progression))
	quiz := NewQuizController(service.NewQuizService(gen, progression))
	planner := NewPlannerController(service.NewPlannerService(gen, progression))
	chat := NewChatController(service.NewChatService(gen))
	progress := NewProgressionController(progression)
	library := NewLibraryController(service.NewLibraryService(states, progression))
	pomodoro := NewPomodoroController(service.NewPomodoroService(cfg.Pomodoro, progression))
	motivation := NewMotivationController(service.NewMotivationService())
	health := NewHealthController("memory", true)

	router := gin.New()
	router.GET("/api/health", health.HealthCheck)

	api := router.Group("/api")
	api.Use(middleware.IdentityMiddleware(cfg))
	{
		api.POST("/study", study.GenerateNotes)
		api.POST("/quiz", quiz.Generate)
		api.POST("/quiz/score", quiz.Score)
		api.POST("/planner", planner.GenerateSchedule)
		api.POST("/chat", chat.Reply)
		api.GET("/progress", progress.GetProgress)
		api.POST("/progress/events", progress.RecordEvent)
		api.POST("/checkin", progress.Checkin)
		api.GET("/library", library.List)
		api.POST("/library", library.Save)
		api.DELETE("/library/:topic", library.Delete)
		api.GET("/pomodoro", pomodoro.State)
		api.POST("/pomodoro/start", pomodoro.Start)
		api.POST("/pomodoro/pause", pomodoro.Pause)
		api.POST("/pomodoro/reset", pomodoro.Reset)
		api.GET("/motivation", motivation.GetCurrentMotivation)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, deviceID string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if deviceID != "" {
		req.Header.Set("X-Device-ID", deviceID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope struct {
		Code    int                        `json:"code"`
		Message string                     `json:"message"`
		Data    map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response %s %s: %v (%s)", method, path, err, w.Body.String())
	}
	return w, envelope.Data
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	w, data := doJSON(t, router, http.MethodGet, "/api/health", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status got=%d want=200", w.Code)
	}
	if string(data["stateBackend"]) != `"memory"` {
		t.Fatalf("stateBackend got=%s", data["stateBackend"])
	}
	if string(data["demoMode"]) != "true" {
		t.Fatalf("demoMode got=%s", data["demoMode"])
	}
}

func TestStudyEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	w, data := doJSON(t, router, http.MethodPost, "/api/study", gin.H{"topic": "Photosynthesis", "mode": "deep"}, "dev-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status got=%d body=%s", w.Code, w.Body.String())
	}

	var notes model.StudyNotes
	if err := json.Unmarshal(data["notes"], &notes); err != nil {
		t.Fatalf("decode notes: %v", err)
	}
	if notes.Title != "Photosynthesis" {
		t.Fatalf("title got=%q", notes.Title)
	}

	// studying 事件进了该设备的 XP
	_, progress := doJSON(t, router, http.MethodGet, "/api/progress", nil, "dev-1")
	if string(progress["xp"]) != "25" {
		t.Fatalf("xp got=%s want=25", progress["xp"])
	}
}

func TestStudyEndpointEmptyTopic(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	w, _ := doJSON(t, router, http.MethodPost, "/api/study", gin.H{"topic": "  "}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status got=%d want=400", w.Code)
	}
}

func TestPlannerEndToEnd(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	examDate := time.Now().AddDate(0, 0, 10).Format(model.DateLayout)

	w, data := doJSON(t, router, http.MethodPost, "/api/planner", gin.H{
		"subjects": []string{"Math", "Physics"},
		"examDate": examDate,
	}, "dev-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status got=%d body=%s", w.Code, w.Body.String())
	}

	var schedule model.StudySchedule
	if err := json.Unmarshal(data["schedule"], &schedule); err != nil {
		t.Fatalf("decode schedule: %v", err)
	}
	if schedule.TotalDays != 10 {
		t.Fatalf("totalDays got=%d want=10", schedule.TotalDays)
	}
	if len(schedule.Phases) != 3 {
		t.Fatalf("phases got=%d want=3", len(schedule.Phases))
	}
}

func TestPlannerRejectsPastDate(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	w, _ := doJSON(t, router, http.MethodPost, "/api/planner", gin.H{
		"subjects": []string{"Math"},
		"examDate": "2020-01-01",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status got=%d want=400", w.Code)
	}
}

func TestChatEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	w, data := doJSON(t, router, http.MethodPost, "/api/chat", gin.H{
		"topic": "Physics",
		"messages": []gin.H{
			{"role": "assistant", "content": "Hi! What shall we study?"},
			{"role": "user", "content": "Explain momentum"},
		},
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status got=%d body=%s", w.Code, w.Body.String())
	}
	if len(data["reply"]) == 0 {
		t.Fatalf("reply missing: %s", w.Body.String())
	}
}

func TestChatEndpointNoMessages(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	w, _ := doJSON(t, router, http.MethodPost, "/api/chat", gin.H{"topic": "Physics", "messages": []gin.H{}}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status got=%d want=400", w.Code)
	}
}

func TestQuizScoreEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	w, data := doJSON(t, router, http.MethodPost, "/api/quiz/score", gin.H{
		"quiz": gin.H{
			"mcq":       []gin.H{{"question": "q", "options": []string{"A", "B"}, "answer": "A", "explanation": "e"}},
			"trueFalse": []gin.H{{"statement": "s", "answer": true, "explanation": "e"}},
		},
		"answers": gin.H{
			"mcq":       []string{"A"},
			"trueFalse": []bool{true},
		},
	}, "dev-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status got=%d body=%s", w.Code, w.Body.String())
	}
	if string(data["correct"]) != "2" {
		t.Fatalf("correct got=%s want=2", data["correct"])
	}
	if string(data["xpEarned"]) != "20" {
		t.Fatalf("xpEarned got=%s want=20", data["xpEarned"])
	}
}

func TestLibraryEndpoints(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	notes := gin.H{"title": "Osmosis", "beginner": "b", "intermediate": "i", "advanced": "a"}

	w, data := doJSON(t, router, http.MethodPost, "/api/library", gin.H{
		"topic": "Osmosis",
		"notes": notes,
		"mode":  "quick",
	}, "dev-1")
	if w.Code != http.StatusOK {
		t.Fatalf("save status got=%d body=%s", w.Code, w.Body.String())
	}

	var entries []model.LibraryEntry
	if err := json.Unmarshal(data["entries"], &entries); err != nil {
		t.Fatalf("decode entries: %v", err)
	}
	if len(entries) != 1 || entries[0].Topic != "Osmosis" {
		t.Fatalf("entries after save: %v", entries)
	}

	w, _ = doJSON(t, router, http.MethodDelete, "/api/library/Osmosis", nil, "dev-1")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status got=%d body=%s", w.Code, w.Body.String())
	}

	w, _ = doJSON(t, router, http.MethodDelete, "/api/library/Osmosis", nil, "dev-1")
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status got=%d want=404", w.Code)
	}
}

func TestProgressEventEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	w, data := doJSON(t, router, http.MethodPost, "/api/progress/events", gin.H{"kind": "export"}, "dev-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status got=%d body=%s", w.Code, w.Body.String())
	}
	if string(data["xp"]) != "5" {
		t.Fatalf("xp got=%s want=5", data["xp"])
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/progress/events", gin.H{"kind": "nonsense"}, "dev-1")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown kind status got=%d want=400", w.Code)
	}
}

func TestDeviceIsolation(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	doJSON(t, router, http.MethodPost, "/api/progress/events", gin.H{"kind": "studying"}, "dev-a")

	_, progress := doJSON(t, router, http.MethodGet, "/api/progress", nil, "dev-b")
	if string(progress["xp"]) != "0" {
		t.Fatalf("dev-b xp got=%s want=0", progress["xp"])
	}

	// 无设备头的请求落在 anonymous 键空间
	_, progress = doJSON(t, router, http.MethodGet, "/api/progress", nil, "")
	if string(progress["xp"]) != "0" {
		t.Fatalf("anonymous xp got=%s want=0", progress["xp"])
	}
}

func TestPomodoroEndpoints(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	_, data := doJSON(t, router, http.MethodGet, "/api/pomodoro", nil, "dev-1")
	if string(data["phase"]) != `"work"` || string(data["running"]) != "false" {
		t.Fatalf("initial state: phase=%s running=%s", data["phase"], data["running"])
	}
	if string(data["remainingSeconds"]) != "1500" {
		t.Fatalf("remaining got=%s want=1500", data["remainingSeconds"])
	}

	_, data = doJSON(t, router, http.MethodPost, "/api/pomodoro/start", nil, "dev-1")
	if string(data["running"]) != "true" {
		t.Fatalf("start: running got=%s", data["running"])
	}

	_, data = doJSON(t, router, http.MethodPost, "/api/pomodoro/reset", nil, "dev-1")
	if string(data["running"]) != "false" || string(data["remainingSeconds"]) != "1500" {
		t.Fatalf("reset state: running=%s remaining=%s", data["running"], data["remainingSeconds"])
	}
}

func TestMotivationEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	w, data := doJSON(t, router, http.MethodGet, "/api/motivation", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status got=%d", w.Code)
	}

	if len(data["text"]) <= 2 || len(data["author"]) <= 2 {
		t.Fatalf("motivation incomplete: %s", w.Body.String())
	}
}
