// Package questionbank serves the curated offline question set.
//
// A Bank is immutable after Load and safe for concurrent use. Categories keep
// the order of the source file.
package questionbank

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"sync"

	"quiz-master/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed bank.yaml
var defaultBank []byte

type bankFile struct {
	Categories []category `yaml:"categories"`
}

type category struct {
	Name      string  `yaml:"name"`
	Questions []entry `yaml:"questions"`
}

type entry struct {
	Text        string   `yaml:"text"`
	Options     []string `yaml:"options"`
	Answer      string   `yaml:"answer"`
	Explanation string   `yaml:"explanation"`
	Points      int      `yaml:"points"`
}

func (e entry) draft() domain.QuestionDraft {
	return domain.QuestionDraft{
		QuestionText:  e.Text,
		OptionA:       e.Options[0],
		OptionB:       e.Options[1],
		OptionC:       e.Options[2],
		OptionD:       e.Options[3],
		CorrectAnswer: e.Answer,
		Explanation:   e.Explanation,
		Points:        e.Points,
	}
}

// CategoryCount is one row of Bank.CategoryCounts.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Bank is the offline question source.
type Bank struct {
	categories []category

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Bank.
type Option func(*Bank)

// WithRand makes sampling deterministic. Intended for tests.
func WithRand(r *rand.Rand) Option {
	return func(b *Bank) { b.rng = r }
}

// LoadDefault loads the bank compiled into the binary.
func LoadDefault(opts ...Option) (*Bank, error) {
	return Load(bytes.NewReader(defaultBank), opts...)
}

// Load parses and validates a YAML bank.
func Load(r io.Reader, opts ...Option) (*Bank, error) {
	var f bankFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode question bank: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Categories))
	for ci, c := range f.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("category %d has no name", ci)
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate category %q", name)
		}
		seen[key] = struct{}{}

		for qi, e := range c.Questions {
			if strings.TrimSpace(e.Text) == "" {
				return nil, fmt.Errorf("%s question %d: empty text", name, qi)
			}
			if len(e.Options) != 4 {
				return nil, fmt.Errorf("%s question %d: want 4 options, got %d", name, qi, len(e.Options))
			}
			if e.Points < 0 {
				return nil, fmt.Errorf("%s question %d: negative points", name, qi)
			}
			d := e.draft()
			q := d.ToQuestion("", 0, 1)
			if err := q.Validate(); err != nil {
				return nil, fmt.Errorf("%s question %d: %w", name, qi, err)
			}
		}
	}

	b := &Bank{categories: f.Categories}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Categories lists category names in definition order.
func (b *Bank) Categories() []string {
	names := make([]string, len(b.categories))
	for i, c := range b.categories {
		names[i] = c.Name
	}
	return names
}

// Counts maps each category to its number of questions.
func (b *Bank) Counts() map[string]int {
	counts := make(map[string]int, len(b.categories))
	for _, c := range b.categories {
		counts[c.Name] = len(c.Questions)
	}
	return counts
}

// CategoryCounts is Counts in definition order.
func (b *Bank) CategoryCounts() []CategoryCount {
	out := make([]CategoryCount, len(b.categories))
	for i, c := range b.categories {
		out[i] = CategoryCount{Name: c.Name, Count: len(c.Questions)}
	}
	return out
}

// Resolve maps a requested category to a bank category. A case-insensitive
// exact match wins. Otherwise the first category, in definition order, where
// either name contains the other case-insensitively is used.
func (b *Bank) Resolve(requested string) (string, bool) {
	idx, ok := b.resolve(requested)
	if !ok {
		return "", false
	}
	return b.categories[idx].Name, true
}

func (b *Bank) resolve(requested string) (int, bool) {
	want := strings.ToLower(strings.TrimSpace(requested))
	if want == "" {
		return 0, false
	}
	for i, c := range b.categories {
		if strings.ToLower(c.Name) == want {
			return i, true
		}
	}
	for i, c := range b.categories {
		if fuzzyMatch(strings.ToLower(c.Name), want) {
			return i, true
		}
	}
	return 0, false
}

func fuzzyMatch(name, want string) bool {
	return strings.Contains(name, want) || strings.Contains(want, name)
}

// Suggest lists every category that fuzzily matches requested, in
// definition order.
func (b *Bank) Suggest(requested string) []string {
	want := strings.ToLower(strings.TrimSpace(requested))
	out := []string{}
	if want == "" {
		return out
	}
	for _, c := range b.categories {
		if fuzzyMatch(strings.ToLower(c.Name), want) {
			out = append(out, c.Name)
		}
	}
	return out
}

// Sample returns min(count, available) distinct questions from the resolved
// category in random order. It returns an empty slice when nothing matches.
func (b *Bank) Sample(requested string, count int) []domain.QuestionDraft {
	idx, ok := b.resolve(requested)
	if !ok || count <= 0 {
		return []domain.QuestionDraft{}
	}

	pool := b.categories[idx].Questions
	n := min(count, len(pool))
	perm := b.perm(len(pool))

	out := make([]domain.QuestionDraft, 0, n)
	for _, i := range perm[:n] {
		out = append(out, pool[i].draft())
	}
	return out
}

func (b *Bank) perm(n int) []int {
	if b.rng == nil {
		return rand.Perm(n)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rng.Perm(n)
}
