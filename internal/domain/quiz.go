package domain

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is one of easy, medium or hard.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Color is the presentation color for a difficulty badge.
func (d Difficulty) Color() string {
	switch d {
	case DifficultyEasy:
		return "green"
	case DifficultyMedium:
		return "yellow"
	case DifficultyHard:
		return "red"
	default:
		return "gray"
	}
}

func (d Difficulty) Emoji() string {
	switch d {
	case DifficultyEasy:
		return "🟢"
	case DifficultyMedium:
		return "🟡"
	case DifficultyHard:
		return "🔴"
	default:
		return "⚪"
	}
}

// TimePerQuestionFor returns the generation-time seconds per question.
func TimePerQuestionFor(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 30
	case DifficultyHard:
		return 15
	default:
		return 20
	}
}

// PointsFor returns the generation-time points per question. It overrides
// any point value carried by the question source.
func PointsFor(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 10
	case DifficultyHard:
		return 20
	default:
		return 15
	}
}

// Quiz is a playable set of questions.
type Quiz struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Difficulty      Difficulty `json:"difficulty"`
	Image           string     `json:"image,omitempty"`
	TimePerQuestion int        `json:"time_per_question"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	Questions       []Question `json:"questions,omitempty"`
}

func (q *Quiz) CategoryIcon() string    { return CategoryIcon(q.Category) }
func (q *Quiz) CategoryEmoji() string   { return CategoryEmoji(q.Category) }
func (q *Quiz) DifficultyColor() string { return q.Difficulty.Color() }
func (q *Quiz) DifficultyEmoji() string { return q.Difficulty.Emoji() }

// QuizSummary is a quiz row with its dependent counts, used by listings.
type QuizSummary struct {
	Quiz
	QuestionCount int `json:"question_count"`
	AttemptCount  int `json:"attempt_count"`
}

// Option letters in slot order.
var OptionLetters = []string{"a", "b", "c", "d"}

// IsOptionLetter reports whether s is one of a, b, c or d.
func IsOptionLetter(s string) bool {
	switch s {
	case "a", "b", "c", "d":
		return true
	}
	return false
}

// Question is a four-option multiple choice question owned by one quiz.
// Position preserves insertion order within the quiz.
type Question struct {
	ID            string `json:"id"`
	QuizID        string `json:"quiz_id"`
	Position      int    `json:"position"`
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
	Points        int    `json:"points"`
}

// Options maps each letter to its option text.
func (q *Question) Options() map[string]string {
	return map[string]string{
		"a": q.OptionA,
		"b": q.OptionB,
		"c": q.OptionC,
		"d": q.OptionD,
	}
}

// Option returns the text in the given slot, or "" for an unknown letter.
func (q *Question) Option(letter string) string {
	switch letter {
	case "a":
		return q.OptionA
	case "b":
		return q.OptionB
	case "c":
		return q.OptionC
	case "d":
		return q.OptionD
	}
	return ""
}

func (q *Question) CorrectOptionText() string {
	return q.Option(q.CorrectAnswer)
}

// Validate checks that the correct answer points at a populated slot and
// that points are positive.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.QuestionText) == "" {
		return fmt.Errorf("question text is empty")
	}
	if !IsOptionLetter(q.CorrectAnswer) {
		return fmt.Errorf("correct answer %q is not one of a, b, c, d", q.CorrectAnswer)
	}
	if q.CorrectOptionText() == "" {
		return fmt.Errorf("correct answer %q references an empty option", q.CorrectAnswer)
	}
	if q.Points <= 0 {
		return fmt.Errorf("points must be positive, got %d", q.Points)
	}
	return nil
}

// QuestionDraft is a question payload produced by a question source before
// it is attached to a quiz.
type QuestionDraft struct {
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
	Points        int    `json:"points,omitempty"`
}

// ToQuestion attaches the draft to a quiz at the given position.
func (d QuestionDraft) ToQuestion(quizID string, position, points int) Question {
	return Question{
		QuizID:        quizID,
		Position:      position,
		QuestionText:  d.QuestionText,
		OptionA:       d.OptionA,
		OptionB:       d.OptionB,
		OptionC:       d.OptionC,
		OptionD:       d.OptionD,
		CorrectAnswer: d.CorrectAnswer,
		Explanation:   d.Explanation,
		Points:        points,
	}
}

// Attempt is the immutable record of one play-through.
type Attempt struct {
	ID             string    `json:"id"`
	QuizID         string    `json:"quiz_id"`
	PlayerName     string    `json:"player_name"`
	Score          int       `json:"score"`
	TotalPoints    int       `json:"total_points"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	TimeTaken      int       `json:"time_taken"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (a *Attempt) Percentage() int {
	return Percentage(a.Score, a.TotalPoints)
}

func (a *Attempt) Grade() Grade {
	return GradeFor(a.Percentage())
}

// LeaderboardEntry is an attempt joined with the title of its quiz.
type LeaderboardEntry struct {
	Attempt
	QuizTitle string `json:"quiz_title"`
}

var categoryIcons = map[string]string{
	"science":                               "flask-conical",
	"science & nature":                      "flask-conical",
	"science: computers":                    "cpu",
	"science: mathematics":                  "calculator",
	"science: gadgets":                      "monitor",
	"history":                               "landmark",
	"geography":                             "globe",
	"sports":                                "medal",
	"movies":                                "clapperboard",
	"entertainment: film":                   "clapperboard",
	"music":                                 "music",
	"entertainment: music":                  "music",
	"technology":                            "monitor",
	"food":                                  "utensils",
	"animals":                               "paw-print",
	"general knowledge":                     "lightbulb",
	"mathematics":                           "calculator",
	"entertainment: television":             "tv",
	"television":                            "tv",
	"entertainment: video games":            "gamepad-2",
	"video games":                           "gamepad-2",
	"entertainment: board games":            "gamepad-2",
	"mythology":                             "swords",
	"art":                                   "palette",
	"celebrities":                           "star",
	"vehicles":                              "car",
	"entertainment: comics":                 "book-open",
	"comics":                                "book-open",
	"entertainment: japanese anime & manga": "sparkles",
	"anime & manga":                         "sparkles",
	"entertainment: cartoon & animations":   "smile",
	"cartoons":                              "smile",
	"entertainment: books":                  "book-open",
	"entertainment: musicals & theatres":    "music",
	"politics":                              "landmark",
}

var categoryEmojis = map[string]string{
	"science":           "🔬",
	"history":           "📜",
	"geography":         "🌍",
	"sports":            "⚽",
	"movies":            "🎬",
	"music":             "🎵",
	"technology":        "💻",
	"food":              "🍕",
	"animals":           "🐾",
	"general knowledge": "🧠",
}

// CategoryIcon maps a category label to an icon name, case-insensitively.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[strings.ToLower(strings.TrimSpace(category))]; ok {
		return icon
	}
	return "book-open"
}

func CategoryEmoji(category string) string {
	if emoji, ok := categoryEmojis[strings.ToLower(strings.TrimSpace(category))]; ok {
		return emoji
	}
	return "📚"
}
