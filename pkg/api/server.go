// Package api exposes the developer REST and SSE surface over the story
// services and the orchestrator.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/pkg/agents"
	"github.com/johnazariah/aura-sub009/pkg/config"
	"github.com/johnazariah/aura-sub009/pkg/database"
	"github.com/johnazariah/aura-sub009/pkg/events"
	"github.com/johnazariah/aura-sub009/pkg/services"
)

// StepExecutor runs one step synchronously. Satisfied by the orchestrator
// runner; the execute endpoint uses it for on-demand single-step runs.
type StepExecutor interface {
	Execute(ctx context.Context, st *ent.Story, sp *ent.Step) (*ent.Step, error)
}

// Server holds the handler dependencies and builds the gin router.
type Server struct {
	cfg      *config.Config
	db       *database.Client
	registry *agents.Registry
	bus      *events.Bus
	stories  *services.StoryService
	steps    *services.StepService
	chat     *services.ChatService
	executor StepExecutor
}

// NewServer creates the API server. executor may be nil; the execute
// endpoint then responds with invalid-state.
func NewServer(cfg *config.Config, db *database.Client, registry *agents.Registry,
	bus *events.Bus, stories *services.StoryService, steps *services.StepService,
	chat *services.ChatService, executor StepExecutor) *Server {
	return &Server{
		cfg:      cfg,
		db:       db,
		registry: registry,
		bus:      bus,
		stories:  stories,
		steps:    steps,
		chat:     chat,
		executor: executor,
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(recovery(), requestLogger(), corsHeaders(), securityHeaders())

	api := r.Group("/api")
	api.GET("/health", s.health)
	api.GET("/agents", s.listAgents)

	stories := api.Group("/developer/stories")
	stories.POST("", s.createStory)
	stories.GET("", s.listStories)
	stories.GET("/:id", s.getStory)
	stories.DELETE("/:id", s.deleteStory)

	stories.POST("/:id/analyze", s.analyzeStory)
	stories.POST("/:id/plan", s.planStory)
	stories.POST("/:id/decompose", s.decomposeStory)
	stories.POST("/:id/run", s.runStory)
	stories.POST("/:id/cancel", s.cancelStory)
	stories.POST("/:id/complete", s.completeStory)
	stories.POST("/:id/finalize", s.finalizeStory)

	stories.PATCH("/:id/status", s.updateStoryStatus)
	stories.GET("/:id/orchestrator", s.orchestratorStatus)
	stories.PATCH("/:id/orchestrator", s.resetOrchestrator)

	stories.POST("/:id/issue/refresh", s.refreshStoryFromIssue)
	stories.POST("/:id/issue/comment", s.commentOnStoryIssue)
	stories.POST("/:id/issue/close", s.closeStoryIssue)

	stories.POST("/:id/chat", s.chatWithStory)
	stories.GET("/:id/chat", s.storyChatHistory)
	stories.GET("/:id/stream", s.streamStoryEvents)

	stories.POST("/:id/steps", s.addStep)
	stories.GET("/:id/steps", s.listSteps)
	stories.GET("/:id/steps/:stepId", s.getStep)
	stories.DELETE("/:id/steps/:stepId", s.removeStep)
	stories.PUT("/:id/steps/:stepId/description", s.updateStepDescription)
	stories.POST("/:id/steps/:stepId/execute", s.executeStep)
	stories.POST("/:id/steps/:stepId/approve", s.approveStep)
	stories.POST("/:id/steps/:stepId/reject", s.rejectStep)
	stories.POST("/:id/steps/:stepId/skip", s.skipStep)
	stories.POST("/:id/steps/:stepId/reset", s.resetStep)
	stories.POST("/:id/steps/:stepId/reassign", s.reassignStep)
	stories.POST("/:id/steps/:stepId/chat", s.chatWithStep)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, Problem{
			Type:   problemNotFound,
			Title:  "Resource not found",
			Status: http.StatusNotFound,
			Detail: "no such route",
		})
	})

	return r
}
