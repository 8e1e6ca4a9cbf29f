package controllers

import (
	"net/http"
	"strings"

	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/inbound"
	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/outbound"
	"github.com/faizurrehmandel/ai-video-generator-v1/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InternalErrorMessage is the only error detail a client ever sees for
// a pipeline failure; specifics stay in the logs, keyed by request id.
const InternalErrorMessage = "An internal server error occurred. Please check the logs for details."

type VideoController interface {
	GenerateVideo(c *gin.Context)
	Index(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type videoController struct {
	logger         outbound.LoggerPort
	videoGenerator inbound.VideoGeneratorPort
}

func NewVideoController(logger outbound.LoggerPort, videoGenerator inbound.VideoGeneratorPort) VideoController {
	return &videoController{
		logger:         logger,
		videoGenerator: videoGenerator,
	}
}

func (v *videoController) GenerateVideo(c *gin.Context) {
	var generateRequest dto.GenerateVideoRequest
	if err := c.ShouldBindJSON(&generateRequest); err != nil {
		c.JSON(http.StatusBadRequest, dto.GenerateVideoResponse{
			Success: false,
			Error:   "Invalid input: request body must be JSON",
		})
		return
	}
	if err := generateRequest.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.GenerateVideoResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	requestID := uuid.NewString()
	topic := strings.TrimSpace(generateRequest.Topic)

	v.logger.InfoWithFields("received video generation request", map[string]interface{}{
		"request_id": requestID,
		"topic":      topic,
	})

	res, err := v.videoGenerator.Generate(c.Request.Context(), inbound.GenerateVideoParams{
		RequestID: requestID,
		Topic:     topic,
	})
	if err != nil {
		v.logger.ErrorWithFields(err, "video generation failed", map[string]interface{}{
			"request_id": requestID,
		})
		c.JSON(http.StatusInternalServerError, dto.GenerateVideoResponse{
			Success: false,
			Error:   InternalErrorMessage,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.GenerateVideoResponse{
		Success:  true,
		Message:  "Video generated successfully!",
		VideoURL: res.VideoURL,
	})
}

func (v *videoController) Index(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, "<h1>AI Video Generator API</h1><p>The API is up and running. Use the /api/generate endpoint to create a video.</p>")
}

func (v *videoController) RegisterRoutes(g *gin.Engine) {
	g.GET("/", v.Index)
	g.POST("/api/generate", v.GenerateVideo)
}
