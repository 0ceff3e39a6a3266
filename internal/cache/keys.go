package cache

import "strings"

const (
	GlobalKeyPrefix = "quizmaster"
)

// GenerateCacheKey builds prefix:service:type:id, with any paramsKey joined
// by "_" and appended as a final segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// QuizDetailKey caches a quiz together with its questions.
func QuizDetailKey(quizID string) string {
	return GenerateCacheKey("quiz", "detail", quizID)
}

// LeaderboardKey caches a ranked attempt list. An empty quizID is the
// cross-quiz board.
func LeaderboardKey(quizID string) string {
	if quizID == "" {
		quizID = "all"
	}
	return GenerateCacheKey("leaderboard", "top", quizID)
}
