package server

import (
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/segmentio/ksuid"

	"veoboard/pkg/storyboard"
	"veoboard/pkg/utils"
)

// POST /api/boards
func (s *Server) handleCreateBoard(c echo.Context) error {
	id := ksuid.New().String()
	doc := s.setBoard(id, storyboard.Template())

	log.Info("board created", "id", id)
	return c.JSON(http.StatusCreated, map[string]any{
		"id":    id,
		"board": doc,
	})
}

// PUT /api/boards/:id
func (s *Server) handlePutBoard(c echo.Context) error {
	id, err := boardID(c)
	if err != nil {
		return err
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable body")
	}
	doc, err := storyboard.Decode(body)
	if err != nil {
		log.Warn("invalid JSON in board update", "id", id, "error", err)
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("invalid json"))
	}

	snapshot := s.setBoard(id, doc)
	return c.JSON(http.StatusOK, map[string]any{
		"id":       id,
		"duration": snapshot.DurationStatus(),
	})
}

// POST /api/boards/:id/reset
func (s *Server) handleResetBoard(c echo.Context) error {
	id, err := boardID(c)
	if err != nil {
		return err
	}

	doc := storyboard.Template()
	s.mu.Lock()
	s.boards[id] = doc
	snapshot := doc.Clone()
	s.mu.Unlock()
	s.Drafts.Clear(id)

	log.Info("board reset", "id", id)
	return c.JSON(http.StatusOK, map[string]any{
		"id":    id,
		"board": snapshot,
	})
}
