// Package trivia fetches multiple choice questions from Open Trivia DB.
package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"quiz-master/internal/config"
	"quiz-master/internal/domain"
	"quiz-master/internal/logger"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://opentdb.com/api.php"
	UserAgent      = "QuizMaster/1.0"

	// MaxAmount is the remote per-request ceiling.
	MaxAmount = 50
)

type onlineCategory struct {
	Name string
	ID   int
}

var onlineCategories = []onlineCategory{
	{"General Knowledge", 9},
	{"Science & Nature", 17},
	{"Science: Computers", 18},
	{"Mathematics", 19},
	{"History", 23},
	{"Geography", 22},
	{"Movies", 11},
	{"Music", 12},
	{"Television", 14},
	{"Video Games", 15},
	{"Sports", 21},
	{"Animals", 27},
	{"Mythology", 20},
	{"Art", 25},
	{"Celebrities", 26},
	{"Vehicles", 28},
	{"Comics", 29},
	{"Anime & Manga", 31},
	{"Cartoons", 32},
}

// ShuffleFunc has the signature of rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

type apiResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []apiQuestion `json:"results"`
}

type apiQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// Client is a best-effort Open Trivia DB client. It never returns errors:
// every failure is logged and reported as an empty result.
type Client struct {
	baseURL    string
	httpClient *http.Client
	shuffle    ShuffleFunc
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithShuffle(fn ShuffleFunc) Option {
	return func(c *Client) { c.shuffle = fn }
}

// NewClient builds a client with a dial timeout of cfg.ConnectTimeout and an
// overall request timeout of cfg.Timeout.
func NewClient(cfg config.TriviaConfig, opts ...Option) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 5 * time.Second
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: connectTimeout}).DialContext
	transport.TLSHandshakeTimeout = connectTimeout

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout, Transport: transport},
		shuffle:    rand.Shuffle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Categories lists the online category names in display order.
func (c *Client) Categories() []string {
	names := make([]string, len(onlineCategories))
	for i, oc := range onlineCategories {
		names[i] = oc.Name
	}
	return names
}

// IsOnlineCategory reports whether name can be fetched online. The match is exact.
func (c *Client) IsOnlineCategory(name string) bool {
	_, ok := categoryID(name)
	return ok
}

func categoryID(name string) (int, bool) {
	for _, oc := range onlineCategories {
		if oc.Name == name {
			return oc.ID, true
		}
	}
	return 0, false
}

// FetchQuestions makes one request for up to min(count, 50) questions.
// Any failure yields an empty slice.
func (c *Client) FetchQuestions(ctx context.Context, category string, count int, difficulty domain.Difficulty) []domain.QuestionDraft {
	log := logger.Get().With(
		zap.String("category", category),
		zap.Int("count", count),
		zap.String("difficulty", string(difficulty)),
	)

	id, ok := categoryID(category)
	if !ok || count <= 0 {
		return []domain.QuestionDraft{}
	}

	payload, err := c.get(ctx, id, min(count, MaxAmount), difficulty)
	if err != nil {
		log.Warn("Online question fetch failed", zap.Error(err))
		return []domain.QuestionDraft{}
	}
	if payload.ResponseCode != 0 || len(payload.Results) == 0 {
		log.Warn("Online question fetch returned no usable results",
			zap.Int("response_code", payload.ResponseCode),
			zap.Int("results", len(payload.Results)),
		)
		return []domain.QuestionDraft{}
	}

	drafts := make([]domain.QuestionDraft, 0, len(payload.Results))
	for _, item := range payload.Results {
		drafts = append(drafts, c.normalize(item))
	}
	log.Debug("Fetched online questions", zap.Int("fetched", len(drafts)))
	return drafts
}

func (c *Client) get(ctx context.Context, categoryID, amount int, difficulty domain.Difficulty) (*apiResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	q := u.Query()
	q.Set("amount", strconv.Itoa(amount))
	q.Set("category", strconv.Itoa(categoryID))
	q.Set("difficulty", string(difficulty))
	q.Set("type", "multiple")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty body")
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode body: %w", err)
	}
	return &payload, nil
}

// normalize decodes entities, shuffles the answer pool into slots a..d and
// records which slot holds the correct answer.
func (c *Client) normalize(item apiQuestion) domain.QuestionDraft {
	correct := html.UnescapeString(item.CorrectAnswer)
	categoryName := html.UnescapeString(item.Category)

	pool := make([]string, 0, len(item.IncorrectAnswers)+1)
	for _, a := range item.IncorrectAnswers {
		pool = append(pool, html.UnescapeString(a))
	}
	pool = append(pool, correct)
	c.shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	if len(pool) != len(domain.OptionLetters) {
		logger.Get().Warn("Online question has an unexpected number of answers",
			zap.String("question", item.Question),
			zap.Int("answers", len(pool)),
		)
	}

	var slots [4]string
	copy(slots[:], pool)

	letter := ""
	for i, l := range domain.OptionLetters {
		if slots[i] == correct {
			letter = l
			break
		}
	}
	if letter == "" {
		// Guarded fallback: the correct answer did not land in slots a..d.
		logger.Get().Warn("Correct answer not found among options, defaulting to a",
			zap.String("question", item.Question),
			zap.String("correct_answer", correct),
		)
		letter = "a"
	}

	return domain.QuestionDraft{
		QuestionText:  html.UnescapeString(item.Question),
		OptionA:       slots[0],
		OptionB:       slots[1],
		OptionC:       slots[2],
		OptionD:       slots[3],
		CorrectAnswer: letter,
		Explanation:   fmt.Sprintf("The correct answer is: %s (Category: %s)", correct, categoryName),
	}
}
