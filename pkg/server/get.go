package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"veoboard/pkg/storyboard"
)

func (s *Server) handleGetRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "Veoboard Storyboard API",
		"status":  "ok",
	})
}

// GET /api/schema
func (s *Server) handleGetSchema(c echo.Context) error {
	return c.JSON(http.StatusOK, storyboard.Schema)
}

// GET /api/boards/:id
func (s *Server) handleGetBoard(c echo.Context) error {
	id, err := boardID(c)
	if err != nil {
		return err
	}
	doc := s.board(id)
	return c.JSON(http.StatusOK, map[string]any{
		"id":       id,
		"board":    doc,
		"duration": doc.DurationStatus(),
	})
}

// GET /api/boards/:id/duration
func (s *Server) handleGetDuration(c echo.Context) error {
	id, err := boardID(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.board(id).DurationStatus())
}
