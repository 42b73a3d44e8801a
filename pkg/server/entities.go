package server

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"veoboard/pkg/storyboard"
	"veoboard/pkg/utils"
)

// POST /api/boards/:id/characters
func (s *Server) handleAddCharacter(c echo.Context) error {
	id, err := boardID(c)
	if err != nil {
		return err
	}

	var added storyboard.Character
	s.updateBoard(id, func(doc *storyboard.Storyboard) {
		added = doc.AddCharacter()
	})

	log.Info("character added", "board", id, "character", added.ID)
	return c.JSON(http.StatusCreated, added)
}

// POST /api/boards/:id/locations
func (s *Server) handleAddLocation(c echo.Context) error {
	id, err := boardID(c)
	if err != nil {
		return err
	}

	var added storyboard.Location
	s.updateBoard(id, func(doc *storyboard.Storyboard) {
		added = doc.AddLocation()
	})

	log.Info("location added", "board", id, "location", added.ID)
	return c.JSON(http.StatusCreated, added)
}

// POST /api/boards/:id/scenes
func (s *Server) handleAddScene(c echo.Context) error {
	id, err := boardID(c)
	if err != nil {
		return err
	}

	var added storyboard.Scene
	s.updateBoard(id, func(doc *storyboard.Storyboard) {
		added = doc.AddScene()
	})

	log.Info("scene added", "board", id, "scene", added.ID)
	return c.JSON(http.StatusCreated, added)
}

func sceneIndex(c echo.Context) (int, error) {
	idx, err := strconv.Atoi(c.Param("scene"))
	if err != nil || idx < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid scene index")
	}
	return idx, nil
}

// POST /api/boards/:id/scenes/:scene/shots
func (s *Server) handleAddShot(c echo.Context) error {
	id, err := boardID(c)
	if err != nil {
		return err
	}
	idx, err := sceneIndex(c)
	if err != nil {
		return err
	}

	var (
		added storyboard.Shot
		ok    bool
	)
	s.updateBoard(id, func(doc *storyboard.Storyboard) {
		added, ok = doc.AddShot(idx)
	})
	if !ok {
		return c.JSON(http.StatusNotFound, utils.ErrJSON("scene not found"))
	}
	return c.JSON(http.StatusCreated, added)
}

// POST /api/boards/:id/scenes/:scene/dialog
func (s *Server) handleAddDialog(c echo.Context) error {
	id, err := boardID(c)
	if err != nil {
		return err
	}
	idx, err := sceneIndex(c)
	if err != nil {
		return err
	}

	var (
		added storyboard.Dialog
		ok    bool
	)
	s.updateBoard(id, func(doc *storyboard.Storyboard) {
		added, ok = doc.AddDialog(idx)
	})
	if !ok {
		return c.JSON(http.StatusNotFound, utils.ErrJSON("scene not found"))
	}
	return c.JSON(http.StatusCreated, added)
}

func confirmed(c echo.Context) bool {
	return c.QueryParam("confirm") == "true"
}

// DELETE /api/boards/:id/characters/:cid
//
// Removal is gated: when the character is still referenced by dialog lines
// and the caller has not confirmed, nothing changes and the impact set is
// returned instead.
func (s *Server) handleDeleteCharacter(c echo.Context) error {
	id, err := boardID(c)
	if err != nil {
		return err
	}
	cid := c.Param("cid")

	s.mu.Lock()
	doc := s.boardLocked(id)
	plan, err := storyboard.PlanCharacterRemoval(doc, cid)
	if err != nil {
		s.mu.Unlock()
		return c.JSON(http.StatusNotFound, utils.ErrJSON("character not found"))
	}
	if len(plan.Usages) > 0 && !confirmed(c) {
		s.mu.Unlock()
		log.Info("character removal needs confirmation", "board", id, "character", cid, "usages", len(plan.Usages))
		body := utils.ErrJSON("character is referenced by dialog lines")
		body["usages"] = plan.Usages
		body["hint"] = "retry with ?confirm=true to clear the references and remove the character"
		return c.JSON(http.StatusConflict, body)
	}
	next := plan.Apply(doc)
	s.boards[id] = next
	snapshot := next.Clone()
	s.mu.Unlock()
	s.Drafts.Save(id, snapshot)

	log.Info("character removed", "board", id, "character", cid, "cleared", len(plan.Usages))
	return c.JSON(http.StatusOK, map[string]any{
		"removed": cid,
		"cleared": len(plan.Usages),
	})
}

// DELETE /api/boards/:id/locations/:lid
func (s *Server) handleDeleteLocation(c echo.Context) error {
	id, err := boardID(c)
	if err != nil {
		return err
	}
	lid := c.Param("lid")

	s.mu.Lock()
	doc := s.boardLocked(id)
	plan, err := storyboard.PlanLocationRemoval(doc, lid)
	if err != nil {
		s.mu.Unlock()
		return c.JSON(http.StatusNotFound, utils.ErrJSON("location not found"))
	}
	if len(plan.Usages) > 0 && !confirmed(c) {
		s.mu.Unlock()
		log.Info("location removal needs confirmation", "board", id, "location", lid, "usages", len(plan.Usages))
		body := utils.ErrJSON("location is referenced by scenes")
		body["usages"] = plan.Usages
		body["hint"] = "retry with ?confirm=true to clear the references and remove the location"
		return c.JSON(http.StatusConflict, body)
	}
	next := plan.Apply(doc)
	s.boards[id] = next
	snapshot := next.Clone()
	s.mu.Unlock()
	s.Drafts.Save(id, snapshot)

	log.Info("location removed", "board", id, "location", lid, "cleared", len(plan.Usages))
	return c.JSON(http.StatusOK, map[string]any{
		"removed": lid,
		"cleared": len(plan.Usages),
	})
}
