package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/mockview/mockview/internal/server/cache"
	"github.com/mockview/mockview/internal/server/config"
	"github.com/mockview/mockview/internal/server/models"
	"github.com/mockview/mockview/internal/server/repositories/interviews"
	"github.com/mockview/mockview/internal/server/repositories/repomanager"
)

const defaultHistoryLimit = 10
const defaultTrendDays = 30

// ActivityStats summarizes one activity type for the dashboard.
type ActivityStats struct {
	TotalCount   int     `json:"total_count"`
	AverageScore float64 `json:"average_score,omitempty"`
	LatestScore  float64 `json:"latest_score"`
}

// OverallStats aggregates across all activity types.
type OverallStats struct {
	TotalActivities    int     `json:"total_activities"`
	OverallPerformance float64 `json:"overall_performance"`
}

// Stats is the dashboard statistics payload.
type Stats struct {
	Interviews   ActivityStats `json:"interviews"`
	FluencyTests ActivityStats `json:"fluency_tests"`
	Resumes      ActivityStats `json:"resumes"`
	Overall      OverallStats  `json:"overall"`
}

// HistoryItem is one past activity, merged across types for the timeline.
type HistoryItem struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Score     float64        `json:"score"`
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Details   map[string]any `json:"details"`
}

// DateRange bounds a trends query.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Days  int       `json:"days"`
}

// Trends carries dated score series for the trend charts.
type Trends struct {
	DateRange  DateRange               `json:"date_range"`
	Interviews []interviews.ScorePoint `json:"interviews"`
	Fluency    []interviews.ScorePoint `json:"fluency"`
}

// DashboardService aggregates a user's activity into statistics, history,
// and performance trends. Statistics are cached briefly per user.
type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cache       *cache.Cache
	statsTTL    time.Duration
}

func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager, c *cache.Cache, cfg *config.Config) *DashboardService {
	return &DashboardService{db: db, repomanager: m, cache: c, statsTTL: cfg.StatsCacheTTL}
}

func dashboardStatsKey(userID string) string {
	return fmt.Sprintf("dashboard:stats:%s", userID)
}

// Stats returns counts, averages, and latest scores per activity type.
func (s *DashboardService) Stats(ctx context.Context, userID string) (*Stats, error) {
	key := dashboardStatsKey(userID)

	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		var stats Stats
		if json.Unmarshal(cached, &stats) == nil {
			return &stats, nil
		}
	}

	sessions, err := s.repomanager.Interviews(s.db).ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	tests, err := s.repomanager.FluencyTests(s.db).ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	resumes, err := s.repomanager.Resumes(s.db).ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	var interviewScores, fluencyScores, resumeScores []float64
	for _, session := range sessions {
		if session.OverallScore > 0 {
			interviewScores = append(interviewScores, session.OverallScore)
		}
	}
	for _, test := range tests {
		if test.FluencyScore > 0 {
			fluencyScores = append(fluencyScores, test.FluencyScore)
		}
	}
	for _, resume := range resumes {
		if resume.Score > 0 {
			resumeScores = append(resumeScores, resume.Score)
		}
	}

	stats := &Stats{
		Interviews: ActivityStats{
			TotalCount:   len(sessions),
			AverageScore: round2(mean(interviewScores)),
			LatestScore:  latest(interviewScores),
		},
		FluencyTests: ActivityStats{
			TotalCount:   len(tests),
			AverageScore: round2(mean(fluencyScores)),
			LatestScore:  latest(fluencyScores),
		},
		Resumes: ActivityStats{
			TotalCount:  len(resumes),
			LatestScore: latest(resumeScores),
		},
	}

	totalActivities := len(sessions) + len(tests) + len(resumes)
	stats.Overall.TotalActivities = totalActivities
	if totalActivities > 0 {
		stats.Overall.OverallPerformance = round2(
			(mean(interviewScores) + mean(fluencyScores) + latest(resumeScores)) / 3)
	}

	if payload, err := json.Marshal(stats); err == nil {
		s.cache.Set(ctx, key, payload, s.statsTTL)
	}
	return stats, nil
}

// History merges the user's recent activities newest first.
func (s *DashboardService) History(ctx context.Context, userID string, limit int) ([]HistoryItem, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	sessions, err := s.repomanager.Interviews(s.db).ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	tests, err := s.repomanager.FluencyTests(s.db).ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	resumes, err := s.repomanager.Resumes(s.db).ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	history := make([]HistoryItem, 0, len(sessions)+len(tests)+len(resumes))

	for _, session := range sessions {
		history = append(history, HistoryItem{
			ID:        session.ID,
			Type:      "interview",
			Title:     fmt.Sprintf("%s Interview - %s", session.JobRole, session.SkillLevel),
			Score:     session.OverallScore,
			Status:    session.Status,
			Timestamp: session.CreatedAt,
			Details: map[string]any{
				"job_role":        session.JobRole,
				"skill_level":     session.SkillLevel,
				"questions_count": len(session.Questions),
			},
		})
	}
	for _, test := range tests {
		history = append(history, HistoryItem{
			ID:        test.ID,
			Type:      "fluency",
			Title:     "English Fluency Test",
			Score:     test.FluencyScore,
			Status:    models.SessionCompleted,
			Timestamp: test.CreatedAt,
			Details: map[string]any{
				"wpm":               test.WPM,
				"filler_word_count": test.FillerWordCount,
			},
		})
	}
	for _, resume := range resumes {
		history = append(history, HistoryItem{
			ID:        resume.ID,
			Type:      "resume",
			Title:     "Resume Analysis",
			Score:     resume.Score,
			Status:    models.SessionCompleted,
			Timestamp: resume.CreatedAt,
			Details: map[string]any{
				"suggestions_count": len(resume.Suggestions),
			},
		})
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp.After(history[j].Timestamp)
	})
	if len(history) > limit {
		history = history[:limit]
	}
	return history, nil
}

// TrendsSince returns dated score series for the past N days.
func (s *DashboardService) TrendsSince(ctx context.Context, userID string, days int) (*Trends, error) {
	if days <= 0 {
		days = defaultTrendDays
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	interviewTrend, err := s.repomanager.Interviews(s.db).ScoresSince(ctx, userID, start)
	if err != nil {
		return nil, err
	}
	fluencyTrend, err := s.repomanager.FluencyTests(s.db).ScoresSince(ctx, userID, start)
	if err != nil {
		return nil, err
	}

	return &Trends{
		DateRange:  DateRange{Start: start, End: end, Days: days},
		Interviews: interviewTrend,
		Fluency:    fluencyTrend,
	}, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Lists come back newest first, so the latest score is the head.
func latest(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[0]
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }
