package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/johnazariah/aura-sub009/pkg/models"
	"github.com/johnazariah/aura-sub009/pkg/services"
)

func (s *Server) addStep(c *gin.Context) {
	var req models.AddStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMissingField(c, "invalid request body: "+err.Error())
		return
	}

	sp, err := s.steps.AddStep(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sp)
}

func (s *Server) listSteps(c *gin.Context) {
	steps, err := s.steps.ListSteps(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"steps": steps})
}

func (s *Server) getStep(c *gin.Context) {
	sp, err := s.steps.GetStep(c.Request.Context(), c.Param("id"), c.Param("stepId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (s *Server) removeStep(c *gin.Context) {
	if err := s.steps.RemoveStep(c.Request.Context(), c.Param("id"), c.Param("stepId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) updateStepDescription(c *gin.Context) {
	var req models.UpdateStepDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMissingField(c, "invalid request body: "+err.Error())
		return
	}

	sp, err := s.steps.UpdateDescription(c.Request.Context(), c.Param("id"), c.Param("stepId"), req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

// executeStep runs one step synchronously with the routed agent. The
// request context bounds the run; a departing caller cancels it.
func (s *Server) executeStep(c *gin.Context) {
	if s.executor == nil {
		respondError(c, services.NewInvalidStateError("execute step", "executor disabled"))
		return
	}

	var req models.ExecuteStepRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondMissingField(c, "invalid request body: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	storyID, stepID := c.Param("id"), c.Param("stepId")

	sp, err := s.steps.GetStep(ctx, storyID, stepID)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.AgentID != "" {
		if sp, err = s.steps.ReassignStep(ctx, storyID, stepID, req.AgentID); err != nil {
			respondError(c, err)
			return
		}
	}
	st, err := s.stories.GetStory(ctx, storyID, false)
	if err != nil {
		respondError(c, err)
		return
	}

	final, runErr := s.executor.Execute(ctx, st, sp)
	if runErr != nil {
		// A guard rejection means nothing ran and nothing changed.
		if errors.Is(runErr, services.ErrInvalidState) {
			respondError(c, runErr)
			return
		}
		// The step's persisted status already reflects the failure; the
		// response carries both.
		p := mapServiceError(runErr)
		c.JSON(p.Status, gin.H{"step": final, "problem": p})
		return
	}
	c.JSON(http.StatusOK, final)
}

func (s *Server) approveStep(c *gin.Context) {
	sp, err := s.steps.ApproveStep(c.Request.Context(), c.Param("id"), c.Param("stepId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (s *Server) rejectStep(c *gin.Context) {
	var req models.RejectStepRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondMissingField(c, "invalid request body: "+err.Error())
		return
	}

	sp, err := s.steps.RejectStep(c.Request.Context(), c.Param("id"), c.Param("stepId"), req.Feedback)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (s *Server) skipStep(c *gin.Context) {
	var req models.SkipStepRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondMissingField(c, "invalid request body: "+err.Error())
		return
	}

	sp, err := s.steps.SkipStep(c.Request.Context(), c.Param("id"), c.Param("stepId"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (s *Server) resetStep(c *gin.Context) {
	sp, err := s.steps.ResetStep(c.Request.Context(), c.Param("id"), c.Param("stepId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (s *Server) reassignStep(c *gin.Context) {
	var req models.ReassignStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMissingField(c, "invalid request body: "+err.Error())
		return
	}

	sp, err := s.steps.ReassignStep(c.Request.Context(), c.Param("id"), c.Param("stepId"), req.AgentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}
