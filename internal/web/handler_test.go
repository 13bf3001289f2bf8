package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/DriesFaems/interview-generator-students/internal/access"
	"github.com/DriesFaems/interview-generator-students/internal/api"
	"github.com/DriesFaems/interview-generator-students/internal/config"
	"github.com/DriesFaems/interview-generator-students/internal/crew"
	"github.com/DriesFaems/interview-generator-students/internal/interviewer"
	"github.com/DriesFaems/interview-generator-students/internal/metrics"
	"github.com/DriesFaems/interview-generator-students/internal/storage"
)

type stubLLM struct {
	calls int
	err   error
}

func (s *stubLLM) Complete(ctx context.Context, messages []api.Message) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.calls++
	return "stage output", nil
}

func setupTestRouter(t *testing.T) (*gin.Engine, *storage.MemoryStore, *stubLLM) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	store := storage.NewMemoryStore("a@whu.edu")
	llm := &stubLLM{}
	svc := interviewer.New(access.NewGate(store, 0), store, cfg, func(string) crew.LLM { return llm }, metrics.NewMetrics())

	llmCfg := config.LLMConfig{Model: config.DefaultModel, BaseURL: config.DefaultBaseURL, MaxTokens: 4000, Temperature: 0.7}
	return NewRouter(svc, llmCfg), store, llm
}

func postInterview(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/interview", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func submitForm(email, prior string) url.Values {
	return url.Values{
		"email":            {email},
		"api_key":          {"gsk_secret"},
		"painpoint":        {"slow onboarding"},
		"customer_profile": {"SaaS admin"},
		"prior_learnings":  {prior},
	}
}

func TestIndex_AccessStates(t *testing.T) {
	r, _, _ := setupTestRouter(t)

	cases := []struct {
		email    string
		denied   bool
		unlocked bool
	}{
		{"", false, false},
		{"eve@gmail.com", true, false},
		{"A@whu.edu", false, true},
	}

	for _, tc := range cases {
		req, _ := http.NewRequest("GET", "/?email="+url.QueryEscape(tc.email), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%q: expected status 200, got %d", tc.email, w.Code)
		}
		body := w.Body.String()
		if got := strings.Contains(body, access.DeniedMessage); got != tc.denied {
			t.Errorf("%q: denied message shown=%v", tc.email, got)
		}
		if got := strings.Contains(body, "Start Interview"); got != tc.unlocked {
			t.Errorf("%q: form unlocked=%v", tc.email, got)
		}
		if tc.unlocked && !strings.Contains(body, startHint) {
			t.Errorf("%q: expected start hint", tc.email)
		}
	}
}

func TestStartInterview_ThreeOutputs(t *testing.T) {
	r, store, llm := setupTestRouter(t)

	w := postInterview(r, submitForm("a@whu.edu", ""))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	body := w.Body.String()
	if n := strings.Count(body, `class="output"`); n != 3 {
		t.Errorf("Expected 3 output blocks, got %d", n)
	}
	if llm.calls != 3 {
		t.Errorf("Expected 3 model calls, got %d", llm.calls)
	}
	if strings.Contains(body, "gsk_secret") {
		t.Errorf("API key must not be echoed back")
	}

	usage := store.Usage()
	if len(usage) != 1 || usage[0].User != "a@whu.edu" || usage[0].Painpoint != "slow onboarding" {
		t.Errorf("Unexpected usage %+v", usage)
	}
}

func TestStartInterview_FourOutputs(t *testing.T) {
	r, store, _ := setupTestRouter(t)

	w := postInterview(r, submitForm("a@whu.edu", "admins skip the tutorial"))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if n := strings.Count(w.Body.String(), `class="output"`); n != 4 {
		t.Errorf("Expected 4 output blocks, got %d", n)
	}
	if len(store.Usage()) != 1 {
		t.Errorf("Expected 1 usage row, got %d", len(store.Usage()))
	}
}

func TestStartInterview_Denied(t *testing.T) {
	r, store, llm := setupTestRouter(t)

	w := postInterview(r, submitForm("eve@gmail.com", ""))
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), access.DeniedMessage) {
		t.Errorf("Expected denied message")
	}
	if len(store.Usage()) != 0 || llm.calls != 0 {
		t.Errorf("Denied submit must not log or run the pipeline")
	}

	w = postInterview(r, submitForm("", ""))
	if w.Code != http.StatusOK || strings.Contains(w.Body.String(), access.DeniedMessage) {
		t.Errorf("Empty email must render the plain form, got %d", w.Code)
	}
	if len(store.Usage()) != 0 || llm.calls != 0 {
		t.Errorf("Empty email must not log or run the pipeline")
	}
}

func TestStartInterview_MissingKey(t *testing.T) {
	r, store, _ := setupTestRouter(t)

	form := submitForm("a@whu.edu", "")
	form.Set("api_key", "")
	w := postInterview(r, form)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if len(store.Usage()) != 0 {
		t.Errorf("Missing key must not log")
	}
}

func TestStartInterview_Failure(t *testing.T) {
	r, _, llm := setupTestRouter(t)
	llm.err = errors.New("Groq API error: status 401")

	w := postInterview(r, submitForm("a@whu.edu", ""))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "status 401") {
		t.Errorf("Expected error text in page")
	}
}

func TestHealthAndMetrics(t *testing.T) {
	r, _, _ := setupTestRouter(t)
	postInterview(r, submitForm("a@whu.edu", ""))

	req, _ := http.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	req, _ = http.NewRequest("GET", "/metrics", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body struct {
		Metrics metrics.Snapshot       `json:"metrics"`
		Model   map[string]interface{} `json:"model"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid metrics json: %v", err)
	}
	if body.Metrics.InterviewsCompleted != 1 || body.Metrics.TasksCompleted != 3 {
		t.Errorf("Unexpected metrics %+v", body.Metrics)
	}
	if body.Model["model"] != config.DefaultModel || body.Model["provider"] != "Groq" {
		t.Errorf("Unexpected model info %v", body.Model)
	}
}
