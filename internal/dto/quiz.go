package dto

import (
	"time"

	"quiz-master/internal/domain"
)

// QuestionInput is one authored question.
type QuestionInput struct {
	QuestionText  string `json:"question_text" validate:"required,notblank,max=500"`
	OptionA       string `json:"option_a" validate:"required,max=255"`
	OptionB       string `json:"option_b" validate:"required,max=255"`
	OptionC       string `json:"option_c" validate:"required,max=255"`
	OptionD       string `json:"option_d" validate:"required,max=255"`
	CorrectAnswer string `json:"correct_answer" validate:"required,oneof=a b c d"`
	Explanation   string `json:"explanation" validate:"max=500"`
	Points        int    `json:"points" validate:"required,min=1,max=100"`
}

// CreateQuizRequest authors a quiz with its questions.
// @Description Request body for creating a quiz
type CreateQuizRequest struct {
	Title           string          `json:"title" validate:"required,notblank,max=255"`
	Description     string          `json:"description" validate:"required,max=1000"`
	Category        string          `json:"category" validate:"required,notblank,max=100"`
	Difficulty      string          `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Image           string          `json:"image,omitempty" validate:"omitempty,max=500"`
	TimePerQuestion int             `json:"time_per_question" validate:"required,min=10,max=120"`
	Questions       []QuestionInput `json:"questions" validate:"required,min=1,dive"`
}

// SubmitAttemptRequest carries answers keyed by question ID. A null or
// missing answer counts as unanswered, and an empty answers object is a valid
// all-unanswered submission. The answers field itself must be present.
// @Description Request body for submitting quiz answers
type SubmitAttemptRequest struct {
	PlayerName string             `json:"player_name" validate:"required,notblank,max=50"`
	Answers    map[string]*string `json:"answers" validate:"required"`
	TimeTaken  *int               `json:"time_taken" validate:"required,min=0"`
}

// GenerateQuizRequest asks for an instant quiz.
// @Description Request body for generating a quiz
type GenerateQuizRequest struct {
	Category     string `json:"category" validate:"required,notblank,max=100"`
	NumQuestions int    `json:"num_questions" validate:"required,min=3,max=50"`
	Difficulty   string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Source       string `json:"source" validate:"required,oneof=online offline"`
}

// QuizSummaryResponse is a quiz with counts and derived presentation values.
type QuizSummaryResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	CategoryIcon    string    `json:"category_icon"`
	CategoryEmoji   string    `json:"category_emoji"`
	Difficulty      string    `json:"difficulty"`
	DifficultyColor string    `json:"difficulty_color"`
	DifficultyEmoji string    `json:"difficulty_emoji"`
	Image           string    `json:"image,omitempty"`
	TimePerQuestion int       `json:"time_per_question"`
	QuestionCount   int       `json:"question_count"`
	AttemptCount    int       `json:"attempt_count"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewQuizSummaryResponse(q *domain.Quiz, questionCount, attemptCount int) QuizSummaryResponse {
	return QuizSummaryResponse{
		ID:              q.ID,
		Title:           q.Title,
		Description:     q.Description,
		Category:        q.Category,
		CategoryIcon:    q.CategoryIcon(),
		CategoryEmoji:   q.CategoryEmoji(),
		Difficulty:      string(q.Difficulty),
		DifficultyColor: q.DifficultyColor(),
		DifficultyEmoji: q.DifficultyEmoji(),
		Image:           q.Image,
		TimePerQuestion: q.TimePerQuestion,
		QuestionCount:   questionCount,
		AttemptCount:    attemptCount,
		CreatedAt:       q.CreatedAt,
	}
}

// QuizListResponse is the browse page payload.
type QuizListResponse struct {
	Quizzes    []QuizSummaryResponse `json:"quizzes"`
	Categories []string              `json:"categories"`
}

// AttemptResponse is a stored attempt with derived percentage and grade.
type AttemptResponse struct {
	ID             string       `json:"id"`
	QuizID         string       `json:"quiz_id"`
	PlayerName     string       `json:"player_name"`
	Score          int          `json:"score"`
	TotalPoints    int          `json:"total_points"`
	CorrectAnswers int          `json:"correct_answers"`
	TotalQuestions int          `json:"total_questions"`
	TimeTaken      int          `json:"time_taken"`
	Percentage     int          `json:"percentage"`
	Grade          domain.Grade `json:"grade"`
	CreatedAt      time.Time    `json:"created_at"`
}

func NewAttemptResponse(a *domain.Attempt) AttemptResponse {
	return AttemptResponse{
		ID:             a.ID,
		QuizID:         a.QuizID,
		PlayerName:     a.PlayerName,
		Score:          a.Score,
		TotalPoints:    a.TotalPoints,
		CorrectAnswers: a.CorrectAnswers,
		TotalQuestions: a.TotalQuestions,
		TimeTaken:      a.TimeTaken,
		Percentage:     a.Percentage(),
		Grade:          a.Grade(),
		CreatedAt:      a.CreatedAt,
	}
}

// QuizDetailResponse is the pre-play page: the quiz and its top scores.
type QuizDetailResponse struct {
	QuizSummaryResponse
	TopScores []AttemptResponse `json:"top_scores"`
	Message   string            `json:"message,omitempty"`
}

// OptionResponse is one answer slot shown to a player.
type OptionResponse struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// PlayQuestionResponse never carries the correct answer or explanation.
type PlayQuestionResponse struct {
	ID           string           `json:"id"`
	Position     int              `json:"position"`
	QuestionText string           `json:"question_text"`
	Options      []OptionResponse `json:"options"`
	Points       int              `json:"points"`
}

// PlayQuizResponse is everything a client needs to run the timed quiz.
type PlayQuizResponse struct {
	Quiz      QuizSummaryResponse    `json:"quiz"`
	Questions []PlayQuestionResponse `json:"questions"`
	TotalTime int                    `json:"total_time"`
}

// NewPlayQuizResponse lists populated option slots only.
func NewPlayQuizResponse(q *domain.Quiz) *PlayQuizResponse {
	questions := make([]PlayQuestionResponse, 0, len(q.Questions))
	for i := range q.Questions {
		qq := &q.Questions[i]
		options := make([]OptionResponse, 0, len(domain.OptionLetters))
		for _, letter := range domain.OptionLetters {
			if text := qq.Option(letter); text != "" {
				options = append(options, OptionResponse{Letter: letter, Text: text})
			}
		}
		questions = append(questions, PlayQuestionResponse{
			ID:           qq.ID,
			Position:     qq.Position,
			QuestionText: qq.QuestionText,
			Options:      options,
			Points:       qq.Points,
		})
	}
	return &PlayQuizResponse{
		Quiz:      NewQuizSummaryResponse(q, len(q.Questions), 0),
		Questions: questions,
		TotalTime: q.TimePerQuestion * len(q.Questions),
	}
}

// SubmitAttemptResponse is the results page payload.
type SubmitAttemptResponse struct {
	QuizID     string                  `json:"quiz_id"`
	QuizTitle  string                  `json:"quiz_title"`
	Attempt    AttemptResponse         `json:"attempt"`
	Percentage int                     `json:"percentage"`
	Grade      domain.Grade            `json:"grade"`
	Results    []domain.QuestionResult `json:"results"`
}

// LeaderboardEntryResponse is a ranked attempt.
type LeaderboardEntryResponse struct {
	Rank int `json:"rank"`
	AttemptResponse
	QuizTitle string `json:"quiz_title"`
}

// QuizOption feeds the leaderboard quiz filter.
type QuizOption struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type LeaderboardResponse struct {
	QuizID  string                     `json:"quiz_id,omitempty"`
	Entries []LeaderboardEntryResponse `json:"entries"`
	Quizzes []QuizOption               `json:"quizzes"`
}

// CategoryCountResponse is an offline category with its question count.
type CategoryCountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// GenerateOptionsResponse lists what the generator can draw from.
type GenerateOptionsResponse struct {
	OfflineCategories []CategoryCountResponse `json:"offline_categories"`
	OnlineCategories  []string                `json:"online_categories"`
	OnlineEnabled     bool                    `json:"online_enabled"`
}

// GenerateQuizResponse reports the created quiz and where its questions came from.
type GenerateQuizResponse struct {
	Quiz    QuizSummaryResponse `json:"quiz"`
	Source  string              `json:"source"`
	Message string              `json:"message"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse lists field errors.
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Errors  []domain.ValidationError `json:"errors"`
}

// HealthResponse reports dependency status.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
