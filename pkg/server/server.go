package server

import (
	"context"
	"net/http"
	"regexp"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"veoboard/pkg/draft"
	"veoboard/pkg/storyboard"
	"veoboard/pkg/utils"
)

type Server struct {
	Echo   *echo.Echo
	Drafts *draft.Store
	Ctx    context.Context

	mu     sync.Mutex
	boards map[string]*storyboard.Storyboard
}

func NewServer(ctx context.Context, drafts *draft.Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	s := &Server{
		Echo:   e,
		Drafts: drafts,
		Ctx:    ctx,
		boards: make(map[string]*storyboard.Storyboard),
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)

	api := s.Echo.Group("/api")
	api.GET("/schema", s.handleGetSchema) // export contract as JSON schema

	api.POST("/boards", s.handleCreateBoard)
	api.GET("/boards/:id", s.handleGetBoard)
	api.PUT("/boards/:id", s.handlePutBoard)
	api.POST("/boards/:id/reset", s.handleResetBoard)
	api.GET("/boards/:id/duration", s.handleGetDuration)

	api.POST("/boards/:id/characters", s.handleAddCharacter)
	api.POST("/boards/:id/locations", s.handleAddLocation)
	api.POST("/boards/:id/scenes", s.handleAddScene)
	api.POST("/boards/:id/scenes/:scene/shots", s.handleAddShot)
	api.POST("/boards/:id/scenes/:scene/dialog", s.handleAddDialog)

	api.DELETE("/boards/:id/characters/:cid", s.handleDeleteCharacter)
	api.DELETE("/boards/:id/locations/:lid", s.handleDeleteLocation)

	api.POST("/boards/:id/generate", s.handleGenerate)
}

func (s *Server) Start(addr string) error {
	utils.Logf("Server listening at %s", addr)
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	utils.Logf("Shutting down server...")

	s.Drafts.Flush()
	return s.Echo.Shutdown(ctx)
}

var boardIDRX = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// boardID validates the :id path param. Board IDs double as draft slot keys,
// so anything that could escape the slot directory is rejected here.
func boardID(c echo.Context) (string, error) {
	id := c.Param("id")
	if !boardIDRX.MatchString(id) {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid board id")
	}
	return id, nil
}

// board returns a detached copy of the document for id, recovering a
// persisted draft on first touch and falling back to the template when no
// usable draft exists. Read handlers serialize the copy after the lock is
// released, so they never observe a concurrent in-place mutation.
func (s *Server) board(id string) *storyboard.Storyboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.boardLocked(id).Clone()
}

func (s *Server) boardLocked(id string) *storyboard.Storyboard {
	if doc, ok := s.boards[id]; ok {
		return doc
	}
	if doc, ok := s.Drafts.Load(id); ok {
		s.boards[id] = doc
		return doc
	}
	doc := storyboard.Template()
	s.boards[id] = doc
	return doc
}

// updateBoard runs fn against the document under the session lock, then
// schedules a draft write of the result.
func (s *Server) updateBoard(id string, fn func(doc *storyboard.Storyboard)) *storyboard.Storyboard {
	s.mu.Lock()
	doc := s.boardLocked(id)
	fn(doc)
	snapshot := doc.Clone()
	s.mu.Unlock()

	s.Drafts.Save(id, snapshot)
	return snapshot
}

// setBoard replaces the in-memory document and schedules a draft write. It
// returns a detached snapshot taken before the document became shared, safe
// to serialize or persist without the lock.
func (s *Server) setBoard(id string, doc *storyboard.Storyboard) *storyboard.Storyboard {
	s.mu.Lock()
	s.boards[id] = doc
	snapshot := doc.Clone()
	s.mu.Unlock()

	s.Drafts.Save(id, snapshot)
	return snapshot
}
