package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mockview/mockview/internal/common"
	"github.com/mockview/mockview/internal/server/models"
	"github.com/mockview/mockview/internal/server/services"
)

type fakeResumeOperator struct {
	built      *models.Resume
	gotContent models.ResumeContent
	buildErr   error

	analyzed   *models.Resume
	analyzeErr error

	templates []services.Template

	exportURL   string
	exportErr   error
	gotTemplate string

	feedback    *models.Resume
	feedbackErr error
}

func (f *fakeResumeOperator) Build(ctx context.Context, userID string, content models.ResumeContent) (*models.Resume, error) {
	if f.buildErr != nil {
		return nil, f.buildErr
	}
	f.gotContent = content
	return f.built, nil
}

func (f *fakeResumeOperator) Analyze(ctx context.Context, userID, resumeText, jobRole string) (*models.Resume, error) {
	if f.analyzeErr != nil {
		return nil, f.analyzeErr
	}
	return f.analyzed, nil
}

func (f *fakeResumeOperator) Templates() []services.Template { return f.templates }

func (f *fakeResumeOperator) Export(ctx context.Context, userID, resumeID, template string) (string, error) {
	if f.exportErr != nil {
		return "", f.exportErr
	}
	f.gotTemplate = template
	return f.exportURL, nil
}

func (f *fakeResumeOperator) Feedback(ctx context.Context, userID, resumeID string) (*models.Resume, error) {
	if f.feedbackErr != nil {
		return nil, f.feedbackErr
	}
	return f.feedback, nil
}

func TestResumeHandleBuild(t *testing.T) {
	op := &fakeResumeOperator{built: &models.Resume{ID: "r-1"}}
	h := NewResumeHandler(op, testLogger())

	body := `{"personal_info":{"name":"Ada"},"skills":["Go"],"text":"should be dropped"}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/resume/build", strings.NewReader(body)), "u-1", "tok")
	rec := httptest.NewRecorder()
	h.HandleBuild(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Resume created successfully" {
		t.Fatalf("unexpected message %q", env.Message)
	}
	if data := dataField(t, env); data["resume_id"] != "r-1" {
		t.Fatalf("unexpected data: %v", data)
	}
	if op.gotContent.Text != "" {
		t.Fatal("raw text must be stripped from built content")
	}
	if op.gotContent.PersonalInfo["name"] != "Ada" {
		t.Fatalf("content lost: %+v", op.gotContent)
	}
}

func TestResumeHandleAnalyze(t *testing.T) {
	op := &fakeResumeOperator{analyzed: &models.Resume{
		ID: "r-1", Score: 81.0,
		Analysis:    &models.ResumeAnalysis{GrammarScore: 90},
		Suggestions: []string{"Quantify your achievements with numbers and metrics where possible."},
	}}
	h := NewResumeHandler(op, testLogger())

	body := `{"resume_text":"Experienced Go developer.","job_role":"Software Engineer"}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/resume/analyze", strings.NewReader(body)), "u-1", "tok")
	rec := httptest.NewRecorder()
	h.HandleAnalyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Resume analyzed successfully" {
		t.Fatalf("unexpected message %q", env.Message)
	}
	data := dataField(t, env)
	if data["overall_score"] != 81.0 {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestResumeHandleAnalyze_MissingText(t *testing.T) {
	h := NewResumeHandler(&fakeResumeOperator{}, testLogger())

	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/resume/analyze", strings.NewReader(`{"resume_text":"  "}`)), "u-1", "tok")
	rec := httptest.NewRecorder()
	h.HandleAnalyze(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "resume_text is required" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestResumeHandleTemplates(t *testing.T) {
	op := &fakeResumeOperator{templates: []services.Template{{ID: "modern"}, {ID: "classic"}}}
	h := NewResumeHandler(op, testLogger())

	req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/resume/templates", nil), "u-1", "tok")
	rec := httptest.NewRecorder()
	h.HandleTemplates(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := dataField(t, decodeEnvelope(t, rec))
	templates, ok := data["templates"].([]any)
	if !ok || len(templates) != 2 {
		t.Fatalf("unexpected templates: %v", data)
	}
}

func TestResumeHandleExport_DefaultTemplate(t *testing.T) {
	op := &fakeResumeOperator{exportURL: "http://storage.local/signed"}
	h := NewResumeHandler(op, testLogger())

	body := `{"resume_id":"r-1"}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/resume/export", strings.NewReader(body)), "u-1", "tok")
	rec := httptest.NewRecorder()
	h.HandleExport(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if op.gotTemplate != "modern" {
		t.Fatalf("expected default template, got %q", op.gotTemplate)
	}
	data := dataField(t, decodeEnvelope(t, rec))
	if data["download_url"] != "http://storage.local/signed" {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestResumeHandleExport_MissingID(t *testing.T) {
	h := NewResumeHandler(&fakeResumeOperator{}, testLogger())

	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/resume/export", strings.NewReader(`{}`)), "u-1", "tok")
	rec := httptest.NewRecorder()
	h.HandleExport(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "resume_id is required" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestResumeHandleExport_Forbidden(t *testing.T) {
	op := &fakeResumeOperator{exportErr: common.ErrForbidden}
	h := NewResumeHandler(op, testLogger())

	body := `{"resume_id":"r-1"}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/resume/export", strings.NewReader(body)), "u-1", "tok")
	rec := httptest.NewRecorder()
	h.HandleExport(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Unauthorized access to resume" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}
