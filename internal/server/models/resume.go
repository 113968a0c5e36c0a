package models

import "time"

// Weights for combining resume analysis dimensions into the overall score.
const (
	resumeGrammarWt   = 0.25
	resumeStructureWt = 0.20
	resumeATSWt       = 0.25
	resumeKeywordWt   = 0.30
)

// ResumeContent holds either the structured sections captured by the
// builder or the raw text submitted for analysis.
type ResumeContent struct {
	PersonalInfo   map[string]string `json:"personal_info,omitempty"`
	Education      []ResumeSection   `json:"education,omitempty"`
	Experience     []ResumeSection   `json:"experience,omitempty"`
	Skills         []string          `json:"skills,omitempty"`
	Certifications []string          `json:"certifications,omitempty"`
	Projects       []ResumeSection   `json:"projects,omitempty"`

	// Analyzed resumes store the raw text and target role instead.
	Text    string `json:"text,omitempty"`
	JobRole string `json:"job_role,omitempty"`
}

// ResumeSection is one dated block of a built resume (a degree, a job, a
// project).
type ResumeSection struct {
	Title       string `json:"title"`
	Institution string `json:"institution,omitempty"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

// ResumeAnalysis is the scored breakdown produced by the analyzer.
type ResumeAnalysis struct {
	GrammarScore    float64  `json:"grammar_score"`
	StructureScore  float64  `json:"structure_score"`
	ATSScore        float64  `json:"ats_score"`
	KeywordScore    float64  `json:"keyword_score"`
	WordCount       int      `json:"word_count"`
	SentenceCount   int      `json:"sentence_count"`
	KeywordsFound   []string `json:"keywords_found"`
	MatchedKeywords int      `json:"matched_keywords"`
	GrammarErrors   []string `json:"grammar_errors"`
}

// Resume is one built or analyzed resume.
type Resume struct {
	ID          string          `json:"resume_id"`
	UserID      string          `json:"user_id"`
	Content     ResumeContent   `json:"content"`
	Analysis    *ResumeAnalysis `json:"analysis,omitempty"`
	Score       float64         `json:"score"`
	Suggestions []string        `json:"suggestions"`
	CreatedAt   time.Time       `json:"timestamp"`
}

// ScoreFromAnalysis blends the analysis components: 25% grammar, 20%
// structure, 25% ATS, 30% keywords, rounded to 2 decimals. Resumes without
// an analysis score 0.
func (r *Resume) ScoreFromAnalysis() float64 {
	if r.Analysis == nil {
		return 0
	}
	score := r.Analysis.GrammarScore*resumeGrammarWt +
		r.Analysis.StructureScore*resumeStructureWt +
		r.Analysis.ATSScore*resumeATSWt +
		r.Analysis.KeywordScore*resumeKeywordWt
	return float64(int(score*100+0.5)) / 100
}
