package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/mockview/mockview/internal/logging"
	"github.com/mockview/mockview/internal/server/models"
	"github.com/mockview/mockview/internal/server/services"
)

// Resume text submissions may be much larger than other JSON bodies.
const maxResumeBodyBytes = 16 << 20

// ResumeOperator is the slice of the resume service the handlers need.
type ResumeOperator interface {
	Build(ctx context.Context, userID string, content models.ResumeContent) (*models.Resume, error)
	Analyze(ctx context.Context, userID, resumeText, jobRole string) (*models.Resume, error)
	Templates() []services.Template
	Export(ctx context.Context, userID, resumeID, template string) (string, error)
	Feedback(ctx context.Context, userID, resumeID string) (*models.Resume, error)
}

// ResumeHandler serves the resume build, analyze, and export endpoints.
type ResumeHandler struct {
	resumes ResumeOperator
	logger  logging.Logger
}

func NewResumeHandler(resumes ResumeOperator, logger logging.Logger) *ResumeHandler {
	return &ResumeHandler{resumes: resumes, logger: logger}
}

func (h *ResumeHandler) HandleBuild(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var content models.ResumeContent
	if !decodeBody(w, r, maxBodyBytes, &content) {
		return
	}
	content.Text = ""
	content.JobRole = ""

	resume, err := h.resumes.Build(r.Context(), userID, content)
	if err != nil {
		h.logger.Error(r.Context(), "build resume failed", "error", err)
		writeInternal(w, "Failed to build resume", err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Resume created successfully", map[string]any{
		"resume_id": resume.ID,
		"content":   resume.Content,
	})
}

type analyzeResumeRequest struct {
	ResumeText string `json:"resume_text"`
	JobRole    string `json:"job_role"`
}

func (h *ResumeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req analyzeResumeRequest
	if !decodeBody(w, r, maxResumeBodyBytes, &req) {
		return
	}

	text := strings.TrimSpace(req.ResumeText)
	if text == "" {
		writeFailure(w, http.StatusBadRequest, "resume_text is required")
		return
	}

	resume, err := h.resumes.Analyze(r.Context(), userID, text, req.JobRole)
	if err != nil {
		h.logger.Error(r.Context(), "analyze resume failed", "error", err)
		writeInternal(w, "Failed to analyze resume", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Resume analyzed successfully", map[string]any{
		"resume_id":     resume.ID,
		"overall_score": resume.Score,
		"analysis":      resume.Analysis,
		"suggestions":   resume.Suggestions,
	})
}

func (h *ResumeHandler) HandleTemplates(w http.ResponseWriter, r *http.Request) {
	writeData(w, map[string]any{
		"templates": h.resumes.Templates(),
	})
}

type exportResumeRequest struct {
	ResumeID string `json:"resume_id"`
	Template string `json:"template"`
}

func (h *ResumeHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req exportResumeRequest
	if !decodeBody(w, r, maxBodyBytes, &req) {
		return
	}

	if req.ResumeID == "" {
		writeFailure(w, http.StatusBadRequest, "resume_id is required")
		return
	}
	if req.Template == "" {
		req.Template = "modern"
	}

	downloadURL, err := h.resumes.Export(r.Context(), userID, req.ResumeID, req.Template)
	if err != nil {
		writeServiceError(w, err, "Resume not found", "Unauthorized access to resume", "Failed to export resume")
		return
	}

	writeSuccess(w, http.StatusOK, "Resume export ready", map[string]any{
		"resume_id":    req.ResumeID,
		"template":     req.Template,
		"download_url": downloadURL,
	})
}

func (h *ResumeHandler) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	resumeID := pathParam(r, "resumeID")

	resume, err := h.resumes.Feedback(r.Context(), userID, resumeID)
	if err != nil {
		writeServiceError(w, err, "Resume not found", "Unauthorized access to resume", "Failed to get resume feedback")
		return
	}

	writeData(w, map[string]any{
		"resume_id":   resume.ID,
		"score":       resume.Score,
		"analysis":    resume.Analysis,
		"suggestions": resume.Suggestions,
		"timestamp":   resume.CreatedAt,
	})
}
