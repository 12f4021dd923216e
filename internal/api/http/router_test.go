package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/wellness-service/internal/api/http/handlers"
	"github.com/spec-kit/wellness-service/internal/classifier"
	"github.com/spec-kit/wellness-service/internal/config"
	"github.com/spec-kit/wellness-service/internal/domain"
	"github.com/spec-kit/wellness-service/internal/observability"
	"github.com/spec-kit/wellness-service/internal/persistence"
	"github.com/spec-kit/wellness-service/internal/riskstate"
	"github.com/spec-kit/wellness-service/internal/service"
)

type memUserRepo struct {
	users map[string]domain.User
	next  int
}

func (m *memUserRepo) Create(_ context.Context, user *domain.User) error {
	m.next++
	user.ID = "user-" + string(rune('0'+m.next))
	user.CreatedAt = time.Now()
	m.users[user.ID] = *user
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

type memAssessmentRepo struct {
	byUser map[string]domain.Assessment
}

func (m *memAssessmentRepo) GetLatestByUser(_ context.Context, userID string) (*domain.Assessment, error) {
	a, ok := m.byUser[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &a, nil
}

func (m *memAssessmentRepo) ReplaceAll(_ context.Context, assessments []domain.Assessment) error {
	m.byUser = make(map[string]domain.Assessment)
	for _, a := range assessments {
		m.byUser[a.UserID] = a
	}
	return nil
}

func (m *memAssessmentRepo) CountAll(context.Context) (int64, error) {
	return int64(len(m.byUser)), nil
}

type memMoodRepo struct{ entries []domain.MoodEntry }

func (m *memMoodRepo) Append(_ context.Context, entry *domain.MoodEntry) error {
	entry.ID = "mood"
	entry.RecordedAt = time.Now()
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memMoodRepo) ListRecent(_ context.Context, userID string, n int) ([]domain.MoodEntry, error) {
	var out []domain.MoodEntry
	for i := len(m.entries) - 1; i >= 0 && len(out) < n; i-- {
		if m.entries[i].UserID == userID {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}

type memAlertRepo struct{ alerts []domain.Alert }

func (m *memAlertRepo) Create(_ context.Context, alert *domain.Alert) error {
	alert.ID = "alert"
	alert.CreatedAt = time.Now()
	m.alerts = append(m.alerts, *alert)
	return nil
}

func (m *memAlertRepo) ListByUser(_ context.Context, userID string) ([]domain.Alert, error) {
	out := make([]domain.Alert, 0)
	for _, a := range m.alerts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fixedClassifier struct{ pred classifier.Prediction }

func (f fixedClassifier) Classify(context.Context, string) (classifier.Prediction, error) {
	return f.pred, nil
}

type testEnv struct {
	app         *fiber.App
	users       *memUserRepo
	assessments *memAssessmentRepo
}

func newTestApp(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop()
	metrics := observability.NewMetrics()

	users := &memUserRepo{users: make(map[string]domain.User)}
	assessments := &memAssessmentRepo{byUser: make(map[string]domain.Assessment)}
	moods := &memMoodRepo{}
	alerts := &memAlertRepo{}

	riskCfg := config.RiskConfig{ScoreScale: config.ScaleTenPoint, DedupMode: config.DedupOff}
	riskService := service.NewRiskService(riskCfg, service.RiskDependencies{
		UserRepo:       users,
		AssessmentRepo: assessments,
		AlertRepo:      alerts,
		StateStore:     riskstate.NewMemoryStore(),
	}, logger)
	chatService := service.NewChatService(service.ChatDependencies{
		UserRepo:   users,
		MoodRepo:   moods,
		Classifier: fixedClassifier{pred: classifier.Prediction{Label: "fear", Confidence: 0.75}},
		Metrics:    metrics,
	}, logger)

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 0)
	RegisterRoutes(app, RouteConfig{
		Health:   handlers.NewHealthHandler("wellness-service", "test", &persistence.Postgres{}, &persistence.Redis{}, nil),
		Users:    handlers.NewUsersHandler(service.NewUserService(users)),
		Chat:     handlers.NewChatHandler(chatService),
		Risk:     handlers.NewRiskHandler(riskService),
		Insights: handlers.NewInsightsHandler(service.NewInsightsService(users, moods)),
		Import:   handlers.NewImportHandler(service.NewImportService(assessments, nil, logger)),
	})

	return &testEnv{app: app, users: users, assessments: assessments}
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	payload, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, payload
}

func TestRootLiveness(t *testing.T) {
	env := newTestApp(t)
	status, body := doJSON(t, env.app, http.MethodGet, "/", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(string(body), "Running") {
		t.Errorf("body = %q", body)
	}
}

func TestRegisterAndAnalyzeFlow(t *testing.T) {
	env := newTestApp(t)

	status, body := doJSON(t, env.app, http.MethodPost, "/register",
		`{"fullName":"Dana Cole","email":"dana@example.com","age":31,"sleepHours":5}`)
	if status != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", status, body)
	}
	var reg struct {
		Message string `json:"message"`
		UserID  string `json:"user_id"`
	}
	if err := json.Unmarshal(body, &reg); err != nil {
		t.Fatalf("decoding register response: %v", err)
	}
	if reg.UserID == "" {
		t.Fatal("register returned empty user_id")
	}

	// No assessment yet: soft "No data".
	status, body = doJSON(t, env.app, http.MethodGet, "/analyze/"+reg.UserID, "")
	if status != http.StatusOK {
		t.Fatalf("analyze status = %d", status)
	}
	var analyze struct {
		Status string `json:"status"`
	}
	_ = json.Unmarshal(body, &analyze)
	if analyze.Status != "No data" {
		t.Errorf("status = %q, want No data", analyze.Status)
	}

	env.assessments.byUser[reg.UserID] = domain.Assessment{
		UserID: reg.UserID, StressScore: 9, BurnoutRisk: domain.BurnoutFlagHigh,
	}
	_, body = doJSON(t, env.app, http.MethodGet, "/analyze/"+reg.UserID, "")
	_ = json.Unmarshal(body, &analyze)
	if analyze.Status != "🚨 ALERT GENERATED" {
		t.Errorf("status = %q, want alert banner", analyze.Status)
	}

	_, body = doJSON(t, env.app, http.MethodGet, "/alerts/"+reg.UserID, "")
	var alerts []map[string]any
	if err := json.Unmarshal(body, &alerts); err != nil {
		t.Fatalf("decoding alerts: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(alerts))
	}
	if alerts[0]["reason"] != "High Stress, Low Sleep, Burnout Risk" {
		t.Errorf("reason = %v", alerts[0]["reason"])
	}
}

func TestAlertsEmptyForUnknownUser(t *testing.T) {
	env := newTestApp(t)
	status, body := doJSON(t, env.app, http.MethodGet, "/alerts/nobody", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if strings.TrimSpace(string(body)) != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestChatEndpoint(t *testing.T) {
	env := newTestApp(t)
	env.users.users["u1"] = domain.User{ID: "u1"}

	status, body := doJSON(t, env.app, http.MethodPost, "/chat",
		`{"userId":"u1","message":"this urgent deadline scares me"}`)
	if status != http.StatusOK {
		t.Fatalf("chat status = %d, body %s", status, body)
	}

	var resp struct {
		Message  string `json:"message"`
		Analysis struct {
			Emotion    string  `json:"emotion"`
			Confidence float64 `json:"confidence"`
			Stress     int     `json:"stress"`
			Pressure   string  `json:"pressure"`
		} `json:"analysis"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decoding chat response: %v", err)
	}
	if resp.Message != "Chat Saved" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Analysis.Emotion != "fear" || resp.Analysis.Stress != 80 {
		t.Errorf("analysis = %+v", resp.Analysis)
	}
	if resp.Analysis.Pressure != "Deadline Pressure" {
		t.Errorf("pressure = %q", resp.Analysis.Pressure)
	}
}

func TestChatRejectsMalformedBody(t *testing.T) {
	env := newTestApp(t)
	status, body := doJSON(t, env.app, http.MethodPost, "/chat", `{"userId":`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", status, body)
	}
	if !strings.Contains(string(body), "VALIDATION_FAILED") {
		t.Errorf("body = %q, want VALIDATION_FAILED code", body)
	}
}

func TestImportEndpoint(t *testing.T) {
	env := newTestApp(t)
	csvBody := "UserID,StressScore,BurnoutRisk\nu1,9,High\nu2,2,Low\n"

	req, _ := http.NewRequest(http.MethodPost, "/assessments/import", strings.NewReader(csvBody))
	req.Header.Set("Content-Type", "text/csv")
	resp, err := env.app.Test(req, -1)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var result struct {
		Rows int `json:"rows"`
	}
	payload, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(payload, &result); err != nil {
		t.Fatalf("decoding import response: %v", err)
	}
	if result.Rows != 2 {
		t.Errorf("rows = %d, want 2", result.Rows)
	}
	if len(env.assessments.byUser) != 2 {
		t.Errorf("stored assessments = %d", len(env.assessments.byUser))
	}
}
