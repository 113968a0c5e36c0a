package api

import (
	"context"
	"net/http"
	"net/url"
)

// BuildResume stores structured resume content and returns its id.
func (c *Client) BuildResume(ctx context.Context, content ResumeContent) (*BuildResumeResult, error) {
	var res BuildResumeResult
	if err := c.do(ctx, http.MethodPost, "/resume/build", content, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

type analyzeResumeRequest struct {
	ResumeText string `json:"resume_text"`
	JobRole    string `json:"job_role,omitempty"`
}

// AnalyzeResume submits raw resume text for scoring.
func (c *Client) AnalyzeResume(ctx context.Context, resumeText, jobRole string) (*AnalyzeResumeResult, error) {
	req := analyzeResumeRequest{ResumeText: resumeText, JobRole: jobRole}
	var res AnalyzeResumeResult
	if err := c.do(ctx, http.MethodPost, "/resume/analyze", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ResumeTemplates lists the available export layouts.
func (c *Client) ResumeTemplates(ctx context.Context) (*TemplatesResult, error) {
	var res TemplatesResult
	if err := c.do(ctx, http.MethodGet, "/resume/templates", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

type exportResumeRequest struct {
	ResumeID string `json:"resume_id"`
	Template string `json:"template,omitempty"`
}

// ExportResume renders a stored resume and returns a download link.
func (c *Client) ExportResume(ctx context.Context, resumeID, template string) (*ExportResumeResult, error) {
	req := exportResumeRequest{ResumeID: resumeID, Template: template}
	var res ExportResumeResult
	if err := c.do(ctx, http.MethodPost, "/resume/export", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ResumeFeedback fetches the stored analysis of a resume.
func (c *Client) ResumeFeedback(ctx context.Context, resumeID string) (*ResumeFeedbackResult, error) {
	var res ResumeFeedbackResult
	if err := c.do(ctx, http.MethodGet, "/resume/feedback/"+url.PathEscape(resumeID), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
