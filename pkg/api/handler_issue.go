package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/johnazariah/aura-sub009/pkg/models"
)

func (s *Server) refreshStoryFromIssue(c *gin.Context) {
	st, err := s.stories.RefreshFromIssue(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) commentOnStoryIssue(c *gin.Context) {
	var req models.IssueCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMissingField(c, "invalid request body: "+err.Error())
		return
	}

	if err := s.stories.PostUpdateToIssue(c.Request.Context(), c.Param("id"), req.Message); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment posted"})
}

func (s *Server) closeStoryIssue(c *gin.Context) {
	if err := s.stories.CloseLinkedIssue(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "issue closed"})
}
