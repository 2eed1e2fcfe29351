package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sky-flux/leitner"
	"github.com/sky-flux/leitner/internal/deck"
	"github.com/sky-flux/leitner/internal/http/response"
	"github.com/sky-flux/leitner/internal/platform/logger"
)

const defaultForecastDays = 7

// DeckService is the part of deck.Service the handlers use.
type DeckService interface {
	AddCard(ctx context.Context, card leitner.Flashcard) error
	Practice(ctx context.Context, day *int) (deck.Session, error)
	Answer(ctx context.Context, front, back string, difficulty leitner.AnswerDifficulty, day *int) (leitner.PracticeRecord, error)
	Hint(ctx context.Context, front, back string) (string, error)
	Progress(ctx context.Context) (leitner.ProgressStats, error)
	Report(ctx context.Context) (deck.Report, error)
	CurrentDay(ctx context.Context) (int, error)
	AdvanceDay(ctx context.Context) (int, error)
	Forecast(ctx context.Context, days int) (int, []int, error)
}

type DeckHandler struct {
	log  *logger.Logger
	deck DeckService
}

func NewDeckHandler(log *logger.Logger, svc DeckService) *DeckHandler {
	return &DeckHandler{
		log:  log.With("handler", "DeckHandler"),
		deck: svc,
	}
}

type updateRequest struct {
	CardFront  string `json:"cardFront"`
	CardBack   string `json:"cardBack"`
	Difficulty string `json:"difficulty"`
	Day        *int   `json:"day,omitempty"`
}

type addCardRequest struct {
	Front string   `json:"front"`
	Back  string   `json:"back"`
	Hint  string   `json:"hint,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

type dayResponse struct {
	Day int `json:"day"`
}

type hintResponse struct {
	Hint string `json:"hint"`
}

type forecastResponse struct {
	From int   `json:"from"`
	Due  []int `json:"due"`
}

// GET /api/practice?day=
func (h *DeckHandler) Practice(c *gin.Context) {
	day, err := optionalInt(c, "day")
	if err != nil {
		badRequest(c, err)
		return
	}
	sess, err := h.deck.Practice(c.Request.Context(), day)
	if err != nil {
		h.fail(c, err, "practice_failed")
		return
	}
	response.RespondOK(c, sess)
}

// POST /api/update
func (h *DeckHandler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	difficulty, err := leitner.ParseDifficulty(req.Difficulty)
	if err != nil {
		h.fail(c, err, "update_failed")
		return
	}
	rec, err := h.deck.Answer(c.Request.Context(), req.CardFront, req.CardBack, difficulty, req.Day)
	if err != nil {
		h.fail(c, err, "update_failed")
		return
	}
	response.RespondOK(c, rec)
}

// GET /api/hint?cardFront=&cardBack=
func (h *DeckHandler) Hint(c *gin.Context) {
	front, back := c.Query("cardFront"), c.Query("cardBack")
	if front == "" {
		badRequest(c, errors.New("cardFront is required"))
		return
	}
	hint, err := h.deck.Hint(c.Request.Context(), front, back)
	if err != nil {
		h.fail(c, err, "hint_failed")
		return
	}
	response.RespondOK(c, hintResponse{Hint: hint})
}

// GET /api/progress
func (h *DeckHandler) Progress(c *gin.Context) {
	stats, err := h.deck.Progress(c.Request.Context())
	if err != nil {
		h.fail(c, err, "progress_failed")
		return
	}
	response.RespondOK(c, stats)
}

// GET /api/report
func (h *DeckHandler) Report(c *gin.Context) {
	rep, err := h.deck.Report(c.Request.Context())
	if err != nil {
		h.fail(c, err, "report_failed")
		return
	}
	response.RespondOK(c, rep)
}

// POST /api/cards
func (h *DeckHandler) AddCard(c *gin.Context) {
	var req addCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	card := leitner.Flashcard{
		Front: req.Front,
		Back:  req.Back,
		Hint:  strings.TrimSpace(req.Hint),
		Tags:  req.Tags,
	}
	if err := h.deck.AddCard(c.Request.Context(), card); err != nil {
		h.fail(c, err, "add_card_failed")
		return
	}
	response.RespondCreated(c, card)
}

// GET /api/day
func (h *DeckHandler) CurrentDay(c *gin.Context) {
	day, err := h.deck.CurrentDay(c.Request.Context())
	if err != nil {
		h.fail(c, err, "day_failed")
		return
	}
	response.RespondOK(c, dayResponse{Day: day})
}

// POST /api/day/next
func (h *DeckHandler) AdvanceDay(c *gin.Context) {
	day, err := h.deck.AdvanceDay(c.Request.Context())
	if err != nil {
		h.fail(c, err, "advance_day_failed")
		return
	}
	response.RespondOK(c, dayResponse{Day: day})
}

// GET /api/forecast?days=
func (h *DeckHandler) Forecast(c *gin.Context) {
	days := defaultForecastDays
	if n, err := optionalInt(c, "days"); err != nil {
		badRequest(c, err)
		return
	} else if n != nil {
		days = *n
	}
	from, due, err := h.deck.Forecast(c.Request.Context(), days)
	if err != nil {
		h.fail(c, err, "forecast_failed")
		return
	}
	if due == nil {
		due = []int{}
	}
	response.RespondOK(c, forecastResponse{From: from, Due: due})
}

func optionalInt(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &n, nil
}
