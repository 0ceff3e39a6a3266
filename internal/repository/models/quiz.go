// Package models holds the row structs scanned by sqlx. Nullable text
// columns use sql.NullString because Oracle stores an empty string as NULL.
package models

import (
	"database/sql"
	"time"
)

type Quiz struct {
	ID              string         `db:"id"`
	Title           string         `db:"title"`
	Description     sql.NullString `db:"description"`
	Category        string         `db:"category"`
	Difficulty      string         `db:"difficulty"`
	Image           sql.NullString `db:"image"`
	TimePerQuestion int            `db:"time_per_question"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

// QuizWithCounts is a listing row.
type QuizWithCounts struct {
	Quiz
	QuestionCount int `db:"question_count"`
	AttemptCount  int `db:"attempt_count"`
}

type Question struct {
	ID            string         `db:"id"`
	QuizID        string         `db:"quiz_id"`
	Position      int            `db:"position"`
	QuestionText  string         `db:"question_text"`
	OptionA       sql.NullString `db:"option_a"`
	OptionB       sql.NullString `db:"option_b"`
	OptionC       sql.NullString `db:"option_c"`
	OptionD       sql.NullString `db:"option_d"`
	CorrectAnswer string         `db:"correct_answer"`
	Explanation   sql.NullString `db:"explanation"`
	Points        int            `db:"points"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type Attempt struct {
	ID             string    `db:"id"`
	QuizID         string    `db:"quiz_id"`
	PlayerName     string    `db:"player_name"`
	Score          int       `db:"score"`
	TotalPoints    int       `db:"total_points"`
	CorrectAnswers int       `db:"correct_answers"`
	TotalQuestions int       `db:"total_questions"`
	TimeTaken      int       `db:"time_taken"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// LeaderboardRow is an attempt joined with its quiz title.
type LeaderboardRow struct {
	Attempt
	QuizTitle string `db:"quiz_title"`
}
