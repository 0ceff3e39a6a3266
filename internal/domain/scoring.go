package domain

import "math"

// Grade is the presentation bucket for a percentage.
type Grade struct {
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var gradeTable = []struct {
	min   int
	grade Grade
}{
	{90, Grade{Label: "Genius!", Emoji: "🏆", Icon: "crown", Color: "yellow"}},
	{70, Grade{Label: "Great Job!", Emoji: "🌟", Icon: "thumbs-up", Color: "green"}},
	{50, Grade{Label: "Not Bad!", Emoji: "👍", Icon: "smile", Color: "blue"}},
	{30, Grade{Label: "Keep Trying!", Emoji: "💪", Icon: "trending-up", Color: "orange"}},
}

var lowestGrade = Grade{Label: "Better Luck Next Time!", Emoji: "😅", Icon: "refresh-cw", Color: "red"}

// GradeFor buckets a percentage. Thresholds are inclusive and checked from
// the highest down.
func GradeFor(percentage int) Grade {
	for _, g := range gradeTable {
		if percentage >= g.min {
			return g.grade
		}
	}
	return lowestGrade
}

// Percentage returns round(score/total*100), or 0 when total is not positive.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// QuestionResult is the review line for one question of a submission.
type QuestionResult struct {
	QuestionID    string            `json:"question_id"`
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	UserAnswer    *string           `json:"user_answer"`
	CorrectAnswer string            `json:"correct_answer"`
	CorrectText   string            `json:"correct_text"`
	IsCorrect     bool              `json:"is_correct"`
	Explanation   string            `json:"explanation,omitempty"`
	Points        int               `json:"points"`
}

// Scorecard aggregates a scored submission.
type Scorecard struct {
	Score          int              `json:"score"`
	TotalPoints    int              `json:"total_points"`
	CorrectAnswers int              `json:"correct_answers"`
	TotalQuestions int              `json:"total_questions"`
	Results        []QuestionResult `json:"results"`
}

func (s *Scorecard) Percentage() int { return Percentage(s.Score, s.TotalPoints) }
func (s *Scorecard) Grade() Grade    { return GradeFor(s.Percentage()) }

// ScoreAnswers scores answers, keyed by question ID, against the stored
// questions. A missing or nil answer is always incorrect.
func ScoreAnswers(questions []Question, answers map[string]*string) *Scorecard {
	card := &Scorecard{
		TotalQuestions: len(questions),
		Results:        make([]QuestionResult, 0, len(questions)),
	}
	for i := range questions {
		q := &questions[i]
		card.TotalPoints += q.Points

		answer := answers[q.ID]
		correct := answer != nil && *answer == q.CorrectAnswer
		if correct {
			card.Score += q.Points
			card.CorrectAnswers++
		}

		card.Results = append(card.Results, QuestionResult{
			QuestionID:    q.ID,
			Question:      q.QuestionText,
			Options:       q.Options(),
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			CorrectText:   q.CorrectOptionText(),
			IsCorrect:     correct,
			Explanation:   q.Explanation,
			Points:        q.Points,
		})
	}
	return card
}
