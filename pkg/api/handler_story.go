package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/johnazariah/aura-sub009/pkg/models"
)

func (s *Server) createStory(c *gin.Context) {
	var req models.CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMissingField(c, "invalid request body: "+err.Error())
		return
	}

	st, err := s.stories.CreateStory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

func (s *Server) listStories(c *gin.Context) {
	filters := models.StoryFilters{
		Status:         c.Query("status"),
		RepositoryPath: c.Query("repositoryPath"),
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondMissingField(c, "limit must be an integer")
			return
		}
		filters.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondMissingField(c, "offset must be an integer")
			return
		}
		filters.Offset = n
	}

	resp, err := s.stories.ListStories(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) getStory(c *gin.Context) {
	st, err := s.stories.GetStory(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) deleteStory(c *gin.Context) {
	if err := s.stories.DeleteStory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) analyzeStory(c *gin.Context) {
	st, err := s.stories.Analyze(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StoryOperationResponse{
		Story:   st,
		Message: "analysis complete",
	})
}

func (s *Server) planStory(c *gin.Context) {
	var req models.PlanRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondMissingField(c, "invalid request body: "+err.Error())
		return
	}

	st, err := s.stories.Plan(c.Request.Context(), c.Param("id"), req.IncludeTests)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StoryOperationResponse{
		Story:   st,
		Message: "plan created",
	})
}

func (s *Server) decomposeStory(c *gin.Context) {
	st, err := s.stories.Decompose(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StoryOperationResponse{
		Story:   st,
		Message: "steps decomposed into waves",
	})
}

func (s *Server) runStory(c *gin.Context) {
	st, err := s.stories.RunStory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StoryOperationResponse{
		Story:   st,
		Message: "story queued for execution",
	})
}

func (s *Server) cancelStory(c *gin.Context) {
	st, err := s.stories.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StoryOperationResponse{
		Story:   st,
		Message: "cancellation requested",
	})
}

func (s *Server) completeStory(c *gin.Context) {
	st, err := s.stories.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StoryOperationResponse{
		Story:   st,
		Message: "story completed",
	})
}

func (s *Server) finalizeStory(c *gin.Context) {
	var req models.FinalizeRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondMissingField(c, "invalid request body: "+err.Error())
		return
	}

	result, st, err := s.stories.Finalize(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"story":   st,
		"result":  result,
		"message": "story finalized",
	})
}

func (s *Server) updateStoryStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMissingField(c, "invalid request body: "+err.Error())
		return
	}

	st, err := s.stories.ResetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StoryOperationResponse{
		Story:   st,
		Message: "status overridden",
	})
}

func (s *Server) orchestratorStatus(c *gin.Context) {
	status, err := s.stories.OrchestratorStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (s *Server) resetOrchestrator(c *gin.Context) {
	var req models.ResetOrchestratorRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondMissingField(c, "invalid request body: "+err.Error())
		return
	}

	st, err := s.stories.ResetOrchestrator(c.Request.Context(), c.Param("id"), req.ResetFailedTasks)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StoryOperationResponse{
		Story:   st,
		Message: "orchestrator state reset",
	})
}

func (s *Server) listAgents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"agents": s.registry.ListAll()})
}

// bindOptionalJSON binds a JSON body when one is present; an empty body
// leaves the target zero-valued.
func bindOptionalJSON(c *gin.Context, target any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(target); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}
