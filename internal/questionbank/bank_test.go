package questionbank

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scienceOnly = `
categories:
  - name: Science
    questions:
      - {text: "Q1", options: ["a1", "b1", "c1", "d1"], answer: a}
      - {text: "Q2", options: ["a2", "b2", "c2", "d2"], answer: b}
      - {text: "Q3", options: ["a3", "b3", "c3", "d3"], answer: c}
      - {text: "Q4", options: ["a4", "b4", "c4", "d4"], answer: d, points: 50}
`

func loadString(t *testing.T, doc string, opts ...Option) *Bank {
	t.Helper()
	b, err := Load(strings.NewReader(doc), opts...)
	require.NoError(t, err)
	return b
}

func TestLoadDefault(t *testing.T) {
	b, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Science", "History", "Geography", "Movies", "Technology",
		"Sports", "Music", "Food", "Animals", "General Knowledge",
	}, b.Categories())

	counts := b.Counts()
	assert.Len(t, counts, 10)
	for _, name := range b.Categories() {
		assert.Equal(t, 20, counts[name], name)
	}

	cc := b.CategoryCounts()
	require.Len(t, cc, 10)
	assert.Equal(t, CategoryCount{Name: "Science", Count: 20}, cc[0])
}

func TestSample_SubstringMatch(t *testing.T) {
	b := loadString(t, scienceOnly)

	got := b.Sample("Sci", 3)
	require.Len(t, got, 3)
	for _, q := range got {
		assert.True(t, strings.HasPrefix(q.QuestionText, "Q"))
	}
}

func TestSample_ExactMatchIsCaseInsensitive(t *testing.T) {
	b := loadString(t, scienceOnly)
	assert.Len(t, b.Sample("sCiEnCe", 2), 2)
}

func TestSample_RequestContainingCategoryName(t *testing.T) {
	b := loadString(t, scienceOnly)

	name, ok := b.Resolve("Science & Nature")
	assert.True(t, ok)
	assert.Equal(t, "Science", name)
	assert.Len(t, b.Sample("Science & Nature", 10), 4)
}

func TestSample_CapsAndNeverDuplicates(t *testing.T) {
	b, err := LoadDefault()
	require.NoError(t, err)

	for _, count := range []int{1, 5, 20, 25, 100} {
		got := b.Sample("History", count)
		assert.Len(t, got, min(count, 20))

		seen := map[string]bool{}
		for _, q := range got {
			assert.False(t, seen[q.QuestionText], "duplicate %q", q.QuestionText)
			seen[q.QuestionText] = true
		}
	}
}

func TestSample_NoMatchIsEmpty(t *testing.T) {
	b := loadString(t, scienceOnly)

	for _, req := range []string{"Cooking", "", "   "} {
		got := b.Sample(req, 5)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
	assert.Empty(t, b.Sample("Science", 0))
}

func TestResolve_FirstFuzzyMatchWins(t *testing.T) {
	b := loadString(t, `
categories:
  - name: Music
    questions: []
  - name: Musicals
    questions: []
  - name: Science Fiction
    questions: []
  - name: Science
    questions: []
`)

	name, ok := b.Resolve("mus")
	require.True(t, ok)
	assert.Equal(t, "Music", name)

	name, ok = b.Resolve("musicals")
	require.True(t, ok)
	assert.Equal(t, "Musicals", name, "exact match beats an earlier fuzzy match")

	name, ok = b.Resolve("science")
	require.True(t, ok)
	assert.Equal(t, "Science", name)

	assert.Equal(t, []string{"Music", "Musicals"}, b.Suggest("MUS"))
	assert.Equal(t, []string{"Science Fiction", "Science"}, b.Suggest("sci"))
	assert.Empty(t, b.Suggest(""))
}

func TestSample_CarriesAnswerAndPoints(t *testing.T) {
	b := loadString(t, scienceOnly, WithRand(rand.New(rand.NewPCG(1, 2))))

	for _, q := range b.Sample("Science", 4) {
		switch q.QuestionText {
		case "Q1":
			assert.Equal(t, "a", q.CorrectAnswer)
			assert.Equal(t, "a1", q.OptionA)
		case "Q4":
			assert.Equal(t, "d", q.CorrectAnswer)
			assert.Equal(t, 50, q.Points)
		}
	}
}

func TestSample_SeededRandIsDeterministic(t *testing.T) {
	b1 := loadString(t, scienceOnly, WithRand(rand.New(rand.NewPCG(7, 7))))
	b2 := loadString(t, scienceOnly, WithRand(rand.New(rand.NewPCG(7, 7))))

	assert.Equal(t, b1.Sample("Science", 4), b2.Sample("Science", 4))
}

func TestSample_ConcurrentUse(t *testing.T) {
	b := loadString(t, scienceOnly, WithRand(rand.New(rand.NewPCG(3, 4))))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, b.Sample("Science", 3), 3)
		}()
	}
	wg.Wait()
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "duplicate category",
			doc:     "categories:\n  - {name: Food, questions: []}\n  - {name: food, questions: []}\n",
			wantErr: "duplicate category",
		},
		{
			name:    "three options",
			doc:     "categories:\n  - name: Food\n    questions:\n      - {text: Q, options: [a, b, c], answer: a}\n",
			wantErr: "want 4 options",
		},
		{
			name:    "bad answer letter",
			doc:     "categories:\n  - name: Food\n    questions:\n      - {text: Q, options: [a, b, c, d], answer: e}\n",
			wantErr: "not one of a, b, c, d",
		},
		{
			name:    "unknown field",
			doc:     "categories:\n  - name: Food\n    colour: red\n    questions: []\n",
			wantErr: "failed to decode",
		},
		{
			name:    "unnamed category",
			doc:     "categories:\n  - {name: '', questions: []}\n",
			wantErr: "has no name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
