// Package textio renders resumes into plain-text artifacts and delivers
// them through S3-compatible object storage using presigned URLs.
package textio

import (
	"fmt"
	"strings"

	"github.com/mockview/mockview/internal/server/models"
)

const sectionRule = "----------------------------------------"

// RenderResume lays out a resume's content as a plain-text document. Built
// resumes render their sections; analyzed resumes render the submitted text.
func RenderResume(resume *models.Resume, template string) []byte {
	var b strings.Builder

	c := resume.Content

	name := c.PersonalInfo["name"]
	if name == "" {
		name = "Resume"
	}
	fmt.Fprintf(&b, "%s\n", strings.ToUpper(name))
	fmt.Fprintf(&b, "[template: %s]\n", template)

	for _, key := range []string{"email", "phone", "location"} {
		if v := c.PersonalInfo[key]; v != "" {
			fmt.Fprintf(&b, "%s\n", v)
		}
	}
	if summary := c.PersonalInfo["summary"]; summary != "" {
		fmt.Fprintf(&b, "\n%s\n", summary)
	}

	writeSections(&b, "EXPERIENCE", c.Experience)
	writeSections(&b, "EDUCATION", c.Education)

	if len(c.Skills) > 0 {
		fmt.Fprintf(&b, "\nSKILLS\n%s\n%s\n", sectionRule, strings.Join(c.Skills, ", "))
	}
	if len(c.Certifications) > 0 {
		fmt.Fprintf(&b, "\nCERTIFICATIONS\n%s\n", sectionRule)
		for _, cert := range c.Certifications {
			fmt.Fprintf(&b, "- %s\n", cert)
		}
	}

	writeSections(&b, "PROJECTS", c.Projects)

	if c.Text != "" {
		fmt.Fprintf(&b, "\n%s\n", c.Text)
	}

	return []byte(b.String())
}

func writeSections(b *strings.Builder, heading string, sections []models.ResumeSection) {
	if len(sections) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n%s\n", heading, sectionRule)
	for _, s := range sections {
		fmt.Fprintf(b, "%s", s.Title)
		if s.Institution != "" {
			fmt.Fprintf(b, ", %s", s.Institution)
		}
		if s.Period != "" {
			fmt.Fprintf(b, " (%s)", s.Period)
		}
		fmt.Fprintln(b)
		if s.Description != "" {
			fmt.Fprintf(b, "  %s\n", s.Description)
		}
	}
}
