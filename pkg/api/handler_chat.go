package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/johnazariah/aura-sub009/pkg/models"
)

func (s *Server) chatWithStory(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMissingField(c, "invalid request body: "+err.Error())
		return
	}

	resp, err := s.chat.Chat(c.Request.Context(), c.Param("id"), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) chatWithStep(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMissingField(c, "invalid request body: "+err.Error())
		return
	}

	resp, err := s.chat.ChatWithStep(c.Request.Context(), c.Param("id"), c.Param("stepId"), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// storyChatHistory returns the persisted story-level conversation, or a
// step's conversation when ?stepId= is given.
func (s *Server) storyChatHistory(c *gin.Context) {
	var stepID *string
	if v := c.Query("stepId"); v != "" {
		stepID = &v
	}

	messages, err := s.chat.Messages(c.Request.Context(), c.Param("id"), stepID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
