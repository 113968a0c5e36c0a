package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mockview/mockview/internal/common"
	"github.com/mockview/mockview/internal/server/cache"
	"github.com/mockview/mockview/internal/server/models"
	"github.com/mockview/mockview/internal/server/questions"
	"github.com/mockview/mockview/internal/server/repositories/repomanager"
	"github.com/mockview/mockview/internal/server/textio"
	"github.com/mockview/mockview/internal/textscore"
)

// Template describes one export layout offered to clients.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PreviewURL  string `json:"preview_url"`
}

var resumeTemplates = []Template{
	{ID: "modern", Name: "Modern Professional", Description: "Clean and modern design suitable for tech roles", PreviewURL: "/templates/modern.png"},
	{ID: "classic", Name: "Classic ATS", Description: "ATS-friendly format with traditional layout", PreviewURL: "/templates/classic.png"},
	{ID: "creative", Name: "Creative Designer", Description: "Eye-catching design for creative professionals", PreviewURL: "/templates/creative.png"},
}

// ResumeService builds, analyzes, and exports resumes.
type ResumeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cache       *cache.Cache
	bank        *questions.Bank
	exporter    *textio.Exporter
}

func NewResumeService(db *sql.DB, m repomanager.RepositoryManager, c *cache.Cache, bank *questions.Bank, exporter *textio.Exporter) *ResumeService {
	return &ResumeService{db: db, repomanager: m, cache: c, bank: bank, exporter: exporter}
}

// Build stores a resume assembled from structured form sections.
func (s *ResumeService) Build(ctx context.Context, userID string, content models.ResumeContent) (*models.Resume, error) {
	resume := &models.Resume{
		ID:          uuid.NewString(),
		UserID:      userID,
		Content:     content,
		Suggestions: []string{},
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repomanager.Resumes(s.db).Create(ctx, resume); err != nil {
		return nil, fmt.Errorf("error creating resume: %v", err)
	}
	return resume, nil
}

// Analyze scores raw resume text against a target role and stores the result.
func (s *ResumeService) Analyze(ctx context.Context, userID, resumeText, jobRole string) (*models.Resume, error) {
	if jobRole == "" {
		jobRole = common.DefaultJobRole
	}

	analysis := analyzeResumeText(resumeText, s.bank.Keywords(jobRole))

	resume := &models.Resume{
		ID:          uuid.NewString(),
		UserID:      userID,
		Content:     models.ResumeContent{Text: resumeText, JobRole: jobRole},
		Analysis:    analysis,
		Suggestions: resumeSuggestions(analysis, jobRole),
		CreatedAt:   time.Now().UTC(),
	}
	resume.Score = resume.ScoreFromAnalysis()

	if err := s.repomanager.Resumes(s.db).Create(ctx, resume); err != nil {
		return nil, fmt.Errorf("error creating resume: %v", err)
	}

	s.cache.Delete(ctx, dashboardStatsKey(userID))
	return resume, nil
}

// Templates lists the available export layouts.
func (s *ResumeService) Templates() []Template {
	return resumeTemplates
}

// Export renders the resume as a text artifact, uploads it to object
// storage, and returns a time-limited download URL. Without storage
// configured it returns a local placeholder path instead.
func (s *ResumeService) Export(ctx context.Context, userID, resumeID, template string) (string, error) {
	resume, err := s.repomanager.Resumes(s.db).GetByID(ctx, resumeID)
	if err != nil {
		return "", err
	}
	if resume.UserID != userID {
		return "", common.ErrForbidden
	}

	if !s.exporter.Configured() {
		return fmt.Sprintf("/downloads/resume_%s.pdf", resumeID), nil
	}

	key := textio.StorageKey(userID, resumeID, template)
	if err := s.exporter.Upload(ctx, key, textio.RenderResume(resume, template)); err != nil {
		return "", fmt.Errorf("error uploading resume artifact: %v", err)
	}
	return s.exporter.DownloadURL(ctx, key)
}

// Feedback returns the stored score, analysis, and suggestions for a resume.
func (s *ResumeService) Feedback(ctx context.Context, userID, resumeID string) (*models.Resume, error) {
	resume, err := s.repomanager.Resumes(s.db).GetByID(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if resume.UserID != userID {
		return nil, common.ErrForbidden
	}
	return resume, nil
}

func analyzeResumeText(text string, jobKeywords []string) *models.ResumeAnalysis {
	wordCount := textscore.CountWords(text)
	sentenceCount := textscore.CountSentences(text)
	keywords := textscore.ExtractKeywords(text, 15)
	grammarErrors := textscore.GrammarIssues(text)

	grammarScore := 100 - float64(len(grammarErrors)*5)
	if grammarScore < 0 {
		grammarScore = 0
	}

	var structureScore float64
	switch {
	case wordCount >= 200 && sentenceCount >= 10:
		structureScore = 90
	case wordCount >= 150:
		structureScore = 75
	case wordCount >= 100:
		structureScore = 60
	default:
		structureScore = 40
	}

	atsScore := 80.0
	if len(keywords) < 5 {
		atsScore -= 20
	}

	matched := 0
	for _, keyword := range keywords {
		for _, jobKeyword := range jobKeywords {
			if strings.Contains(strings.ToLower(jobKeyword), strings.ToLower(keyword)) {
				matched++
				break
			}
		}
	}
	denom := len(keywords)
	if denom < 1 {
		denom = 1
	}
	keywordScore := float64(matched) / float64(denom) * 100
	if keywordScore > 100 {
		keywordScore = 100
	}

	return &models.ResumeAnalysis{
		GrammarScore:    grammarScore,
		StructureScore:  structureScore,
		ATSScore:        atsScore,
		KeywordScore:    keywordScore,
		WordCount:       wordCount,
		SentenceCount:   sentenceCount,
		KeywordsFound:   keywords,
		MatchedKeywords: matched,
		GrammarErrors:   grammarErrors,
	}
}

func resumeSuggestions(a *models.ResumeAnalysis, jobRole string) []string {
	var suggestions []string

	if a.GrammarScore < 80 {
		suggestions = append(suggestions, "Review grammar and spelling. Consider using a grammar checker.")
	}
	if a.StructureScore < 70 {
		suggestions = append(suggestions, "Expand your resume with more details about your experience and achievements.")
	}
	if a.KeywordScore < 60 {
		suggestions = append(suggestions, fmt.Sprintf("Add more %s-specific keywords and technical skills.", jobRole))
	}
	if a.ATSScore < 75 {
		suggestions = append(suggestions, "Use standard section headings (Experience, Education, Skills) for better ATS compatibility.")
	}
	if a.WordCount < 200 {
		suggestions = append(suggestions, "Your resume is too brief. Add more details about your accomplishments.")
	}
	if a.MatchedKeywords < 5 {
		suggestions = append(suggestions, "Include more industry-relevant keywords to pass ATS screening.")
	}

	suggestions = append(suggestions,
		"Use action verbs to describe your achievements (e.g., 'Developed', 'Implemented', 'Led').",
		"Quantify your achievements with numbers and metrics where possible.",
	)
	return suggestions
}
