package seedmodels

import (
	"encoding/json"
	"fmt"
	"io"

	"quiz-master/internal/dto"
)

// SeedQuestion defines one question of a seeded quiz.
type SeedQuestion struct {
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	Points        int    `json:"points"`
}

// SeedQuiz defines the structure for a quiz item in the JSON seed file.
type SeedQuiz struct {
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Category        string         `json:"category"`
	Difficulty      string         `json:"difficulty"`
	Image           string         `json:"image"`
	TimePerQuestion int            `json:"time_per_question"`
	Questions       []SeedQuestion `json:"questions"`
}

// ToRequest converts the seed entry into an authoring request so seeding
// goes through the same validation as the API.
func (s SeedQuiz) ToRequest() *dto.CreateQuizRequest {
	req := &dto.CreateQuizRequest{
		Title:           s.Title,
		Description:     s.Description,
		Category:        s.Category,
		Difficulty:      s.Difficulty,
		Image:           s.Image,
		TimePerQuestion: s.TimePerQuestion,
		Questions:       make([]dto.QuestionInput, 0, len(s.Questions)),
	}
	for _, q := range s.Questions {
		req.Questions = append(req.Questions, dto.QuestionInput{
			QuestionText:  q.QuestionText,
			OptionA:       q.OptionA,
			OptionB:       q.OptionB,
			OptionC:       q.OptionC,
			OptionD:       q.OptionD,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Points:        q.Points,
		})
	}
	return req
}

// Load decodes a JSON array of quizzes.
func Load(r io.Reader) ([]SeedQuiz, error) {
	var quizzes []SeedQuiz
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&quizzes); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}
	return quizzes, nil
}
