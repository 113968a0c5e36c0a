package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mockview/mockview/internal/client/api"
)

// ShowStats prints the dashboard score summary.
func (a *App) ShowStats(ctx context.Context) error {
	stats, err := a.client.DashboardStats(ctx)
	if err != nil {
		printlnFn("Failed to get statistics:", err)
		return err
	}

	printlnFn(fmt.Sprintf("Interviews:    %3d done, average %.1f, latest %.1f",
		stats.Interviews.TotalCount, stats.Interviews.AverageScore, stats.Interviews.LatestScore))
	printlnFn(fmt.Sprintf("Fluency tests: %3d done, average %.1f, latest %.1f",
		stats.FluencyTests.TotalCount, stats.FluencyTests.AverageScore, stats.FluencyTests.LatestScore))
	printlnFn(fmt.Sprintf("Resumes:       %3d done, average %.1f, latest %.1f",
		stats.Resumes.TotalCount, stats.Resumes.AverageScore, stats.Resumes.LatestScore))
	printlnFn(fmt.Sprintf("Overall: %d activities, performance %.1f",
		stats.Overall.TotalActivities, stats.Overall.OverallPerformance))
	return nil
}

// ShowHistory prints the merged recent-activity feed.
func (a *App) ShowHistory(ctx context.Context) error {
	limit, err := GetNumber(a.reader, "How many entries (empty for 10)", 0, os.Stdout)
	if err != nil {
		printlnFn(err)
		return err
	}

	res, err := a.client.DashboardHistory(ctx, limit)
	if err != nil {
		printlnFn("Failed to get history:", err)
		return err
	}

	for _, item := range res.History {
		printlnFn(fmt.Sprintf("%s  %-14s %-40.40s %6.1f  %s",
			item.Timestamp.Format("2006-01-02 15:04"), item.Type, item.Title, item.Score, item.Status))
	}
	printlnFn(fmt.Sprintf("%d entries.", res.Total))
	return nil
}

// ShowTrends prints dated score series for a recent window.
func (a *App) ShowTrends(ctx context.Context) error {
	days, err := GetNumber(a.reader, "How many days back (empty for 30)", 0, os.Stdout)
	if err != nil {
		printlnFn(err)
		return err
	}

	res, err := a.client.DashboardTrends(ctx, days)
	if err != nil {
		printlnFn("Failed to get trends:", err)
		return err
	}

	printlnFn(fmt.Sprintf("Scores from %s to %s:",
		res.DateRange.Start.Format("2006-01-02"), res.DateRange.End.Format("2006-01-02")))
	printlnFn("Interviews:")
	printScoreSeries(res.Trends.Interviews)
	printlnFn("Fluency:")
	printScoreSeries(res.Trends.Fluency)
	return nil
}

func printScoreSeries(points []api.ScorePoint) {
	if len(points) == 0 {
		printlnFn("  no activity")
		return
	}
	for _, p := range points {
		printlnFn(fmt.Sprintf("  %s  %.1f", p.Date.Format("2006-01-02"), p.Score))
	}
}
