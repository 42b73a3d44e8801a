package server

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"veoboard/pkg/storyboard"
	"veoboard/pkg/utils"
)

const jsonIndent = "  "

// POST /api/boards/:id/generate
//
// Runs full validation and produces exactly one of two bodies: the normalized
// document as pretty JSON, or the field-path keyed error map as pretty JSON.
// Validation failure is a normal result, not a server error.
func (s *Server) handleGenerate(c echo.Context) error {
	id, err := boardID(c)
	if err != nil {
		return err
	}
	doc := s.board(id)

	normalized, errs := storyboard.Validate(doc)
	if !errs.Empty() {
		log.Warn("generate rejected", "board", id, "issues", len(errs.Issues()))
		return c.JSONPretty(http.StatusUnprocessableEntity, errs, jsonIndent)
	}

	if tokens, err := utils.CountTokens(utils.PrettyJSON(normalized)); err == nil {
		c.Response().Header().Set("X-Export-Tokens", strconv.Itoa(tokens))
		log.Info("generate ok", "board", id, "scenes", len(normalized.Scenes), "tokens", tokens)
	} else {
		log.Warn("token count unavailable", "board", id, "error", err)
		log.Info("generate ok", "board", id, "scenes", len(normalized.Scenes))
	}

	return c.JSONPretty(http.StatusOK, normalized, jsonIndent)
}
