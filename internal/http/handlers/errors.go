package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sky-flux/leitner"
	"github.com/sky-flux/leitner/internal/deck"
	"github.com/sky-flux/leitner/internal/http/response"
	"github.com/sky-flux/leitner/internal/platform/apierr"
)

// classify maps domain errors to their HTTP form. Unknown errors become a
// 500 with fallbackCode.
func classify(err error, fallbackCode string) *apierr.Error {
	var ae *apierr.Error
	switch {
	case errors.As(err, &ae):
		return ae
	case errors.Is(err, leitner.ErrInvalidDifficulty):
		return apierr.New(http.StatusBadRequest, "invalid_difficulty", err)
	case errors.Is(err, leitner.ErrInvalidDay):
		return apierr.New(http.StatusBadRequest, "invalid_day", err)
	case errors.Is(err, deck.ErrEmptyFront):
		return apierr.New(http.StatusBadRequest, "empty_front", err)
	case errors.Is(err, deck.ErrCardNotFound):
		return apierr.New(http.StatusNotFound, "card_not_found", err)
	case errors.Is(err, deck.ErrDuplicateCard):
		return apierr.New(http.StatusConflict, "duplicate_card", err)
	default:
		return apierr.New(http.StatusInternalServerError, fallbackCode, err)
	}
}

func (h *DeckHandler) fail(c *gin.Context, err error, fallbackCode string) {
	ae := classify(err, fallbackCode)
	if ae.Status >= http.StatusInternalServerError {
		h.log.Error("request failed", "path", c.FullPath(), "code", ae.Code, "error", err)
	}
	response.RespondError(c, ae.Status, ae.Code, ae.Err)
}

func badRequest(c *gin.Context, err error) {
	response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
}
