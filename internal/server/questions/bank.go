// Package questions holds the embedded interview question bank and the
// per-role keyword vocabularies used by answer and resume scoring.
package questions

import (
	"embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"

	"github.com/mockview/mockview/internal/common"
	"github.com/mockview/mockview/internal/server/models"
)

//go:embed questions.json keywords.json
var dataFS embed.FS

// Bank serves questions by job role and skill level. Unknown roles fall back
// to the default role, unknown levels to Beginner.
type Bank struct {
	questions map[string]map[string][]string
	keywords  map[string][]string

	mu   sync.Mutex
	rand *rand.Rand
}

// Load parses the embedded data files. It is cheap enough to call once at
// startup.
func Load() (*Bank, error) {
	b := &Bank{
		questions: map[string]map[string][]string{},
		keywords:  map[string][]string{},
		rand:      rand.New(rand.NewSource(rand.Int63())),
	}

	qdata, err := dataFS.ReadFile("questions.json")
	if err != nil {
		return nil, fmt.Errorf("reading question bank: %w", err)
	}
	if err := json.Unmarshal(qdata, &b.questions); err != nil {
		return nil, fmt.Errorf("parsing question bank: %w", err)
	}

	kdata, err := dataFS.ReadFile("keywords.json")
	if err != nil {
		return nil, fmt.Errorf("reading keywords: %w", err)
	}
	if err := json.Unmarshal(kdata, &b.keywords); err != nil {
		return nil, fmt.Errorf("parsing keywords: %w", err)
	}

	return b, nil
}

// Roles lists the job roles present in the bank.
func (b *Bank) Roles() []string {
	roles := make([]string, 0, len(b.questions))
	for role := range b.questions {
		roles = append(roles, role)
	}
	return roles
}

// Keywords returns the keyword vocabulary for jobRole, or nil when the role
// has none.
func (b *Bank) Keywords(jobRole string) []string {
	return b.keywords[jobRole]
}

// QuestionsFor samples count questions for the role and level, without
// replacement, assigning positional IDs q_1..q_n. Unknown roles resolve to
// the default role, unknown levels to Beginner. When fewer questions exist
// than requested, all of them are returned.
func (b *Bank) QuestionsFor(jobRole, skillLevel string, count int) []models.Question {
	byLevel, ok := b.questions[jobRole]
	if !ok {
		jobRole = common.DefaultJobRole
		byLevel = b.questions[jobRole]
	}

	texts, ok := byLevel[skillLevel]
	if !ok {
		skillLevel = common.SkillBeginner
		texts = byLevel[skillLevel]
	}

	if count > len(texts) {
		count = len(texts)
	}

	b.mu.Lock()
	picked := b.rand.Perm(len(texts))[:count]
	b.mu.Unlock()

	out := make([]models.Question, 0, count)
	for i, idx := range picked {
		out = append(out, models.Question{
			ID:         fmt.Sprintf("q_%d", i+1),
			Question:   texts[idx],
			JobRole:    jobRole,
			SkillLevel: skillLevel,
			Order:      i + 1,
		})
	}
	return out
}
