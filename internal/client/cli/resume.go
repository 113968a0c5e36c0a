package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mockview/mockview/internal/client/api"
	"github.com/mockview/mockview/internal/filex"
)

// BuildResume collects structured resume content and stores it.
func (a *App) BuildResume(ctx context.Context) error {
	var content api.ResumeContent

	name, err := GetSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Contact email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Phone (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	content.PersonalInfo = map[string]string{"name": name, "email": email}
	if phone != "" {
		content.PersonalInfo["phone"] = phone
	}

	content.Experience, err = a.collectSections("work experience")
	if err != nil {
		return err
	}
	content.Education, err = a.collectSections("education")
	if err != nil {
		return err
	}

	skills, err := GetSimpleText(a.reader, "Skills, comma separated", os.Stdout)
	if err != nil {
		return err
	}
	for _, s := range strings.Split(skills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			content.Skills = append(content.Skills, s)
		}
	}

	res, err := a.client.BuildResume(ctx, content)
	if err != nil {
		printlnFn("Failed to build resume:", err)
		return err
	}

	a.lastResumeID = res.ResumeID
	printlnFn(fmt.Sprintf("Resume %s created.", res.ResumeID))
	return nil
}

func (a *App) collectSections(kind string) ([]api.ResumeSection, error) {
	var sections []api.ResumeSection
	for {
		title, err := GetSimpleText(a.reader, fmt.Sprintf("Add %s entry: title (empty to finish)", kind), os.Stdout)
		if err != nil {
			return nil, err
		}
		if title == "" {
			return sections, nil
		}
		institution, err := GetSimpleText(a.reader, "Company or institution", os.Stdout)
		if err != nil {
			return nil, err
		}
		period, err := GetSimpleText(a.reader, "Period, e.g. 2021-2024", os.Stdout)
		if err != nil {
			return nil, err
		}
		description, err := GetSimpleText(a.reader, "Description (empty to skip)", os.Stdout)
		if err != nil {
			return nil, err
		}
		sections = append(sections, api.ResumeSection{
			Title:       title,
			Institution: institution,
			Period:      period,
			Description: description,
		})
	}
}

// ResumeTemplates lists the export layouts.
func (a *App) ResumeTemplates(ctx context.Context) error {
	res, err := a.client.ResumeTemplates(ctx)
	if err != nil {
		printlnFn("Failed to list templates:", err)
		return err
	}

	for _, t := range res.Templates {
		printlnFn(fmt.Sprintf("%-10s %s: %s", t.ID, t.Name, t.Description))
	}
	return nil
}

// ExportResume renders a stored resume and prints the download link.
func (a *App) ExportResume(ctx context.Context) error {
	resumeID, err := a.resolveResumeID()
	if err != nil || resumeID == "" {
		return err
	}
	template, err := GetSimpleText(a.reader, "Template (empty for modern)", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.client.ExportResume(ctx, resumeID, template)
	if err != nil {
		printlnFn("Failed to export resume:", err)
		return err
	}

	printlnFn(fmt.Sprintf("Export ready (%s template): %s", res.Template, res.DownloadURL))
	return nil
}

// AnalyzeResume submits raw resume text for scoring. The text comes from a
// file when a path is given, otherwise it is pasted into the terminal.
func (a *App) AnalyzeResume(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Path to a resume text file (empty to paste)", os.Stdout)
	if err != nil {
		return err
	}

	var text string
	if path != "" {
		text, err = filex.ReadText(path)
		if err != nil {
			printlnFn("Failed to read file:", err)
			return err
		}
	} else {
		text, err = GetMultiline(a.reader, "Paste your resume text", os.Stdout)
		if err != nil {
			return err
		}
	}
	jobRole, err := GetSimpleText(a.reader, "Target job role (empty for your profile default)", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.client.AnalyzeResume(ctx, text, jobRole)
	if err != nil {
		printlnFn("Failed to analyze resume:", err)
		return err
	}

	a.lastResumeID = res.ResumeID
	printResumeAnalysis(res.OverallScore, res.Analysis, res.Suggestions)
	return nil
}

// ResumeFeedback fetches the stored analysis of a resume by id.
func (a *App) ResumeFeedback(ctx context.Context) error {
	resumeID, err := a.resolveResumeID()
	if err != nil || resumeID == "" {
		return err
	}

	res, err := a.client.ResumeFeedback(ctx, resumeID)
	if err != nil {
		printlnFn("Failed to get feedback:", err)
		return err
	}

	printResumeAnalysis(res.Score, res.Analysis, res.Suggestions)
	return nil
}

func (a *App) resolveResumeID() (string, error) {
	if a.lastResumeID != "" {
		return a.lastResumeID, nil
	}
	id, err := GetSimpleText(a.reader, "Resume id", os.Stdout)
	if err != nil {
		return "", err
	}
	if id == "" {
		printlnFn("No resume. Run build or analyze first.")
	}
	return id, nil
}

func printResumeAnalysis(score float64, analysis *api.ResumeAnalysis, suggestions []string) {
	printlnFn(fmt.Sprintf("Overall score: %.1f", score))
	if analysis != nil {
		printlnFn(fmt.Sprintf("Grammar %.1f, structure %.1f, ATS %.1f, keywords %.1f",
			analysis.GrammarScore, analysis.StructureScore, analysis.ATSScore, analysis.KeywordScore))
		if len(analysis.KeywordsFound) > 0 {
			printlnFn("Keywords found:", strings.Join(analysis.KeywordsFound, ", "))
		}
	}
	for _, s := range suggestions {
		printlnFn("  -", s)
	}
}
