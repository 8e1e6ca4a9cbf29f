package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/outbound"
	"github.com/faizurrehmandel/ai-video-generator-v1/application/services"
	"github.com/faizurrehmandel/ai-video-generator-v1/config"
	"github.com/faizurrehmandel/ai-video-generator-v1/infrastructure/adapters"
	"github.com/faizurrehmandel/ai-video-generator-v1/infrastructure/gin_interface/controllers"
	mockservices "github.com/faizurrehmandel/ai-video-generator-v1/mock"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	if serverConfig.Debug {
		gin.SetMode(gin.DebugMode)
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		gin.SetMode(gin.ReleaseMode)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	mediaConfig := config.GetMediaConfig()
	if err := os.MkdirAll(mediaConfig.VideoDir, 0755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create videos directory")
	}
	if err := os.MkdirAll(mediaConfig.TempDir, 0755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create temp directory")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(64, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	scriptGenerator := selectScriptGenerator(workerPool, zeroLogger)
	synthesizer := selectSpeechSynthesizer(contentFetcher, zeroLogger)
	footageSource := selectFootageSource(contentFetcher, zeroLogger)
	assembler := selectVideoAssembler(mediaConfig, zeroLogger)
	publisher := selectArtifactPublisher(serverConfig, zeroLogger)

	videoGenerator := services.NewVideoGenerator(zeroLogger, scriptGenerator, synthesizer,
		footageSource, assembler, publisher, mediaConfig.TempDir, mediaConfig.VideoDir)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(cors.Default())
	router.Static("/static/videos", mediaConfig.VideoDir)

	videoController := controllers.NewVideoController(zeroLogger, videoGenerator)
	videoController.RegisterRoutes(router)

	if err := router.Run(fmt.Sprintf(":%d", serverConfig.Port)); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}

// Collaborator selection mirrors the mock fallback of the original
// service: each port gets its real adapter when credentials are
// present, a stub otherwise.

func selectScriptGenerator(workerPool *ants.Pool, logger outbound.LoggerPort) outbound.ScriptGeneratorPort {
	if geminiConfig, err := config.GetGeminiConfig(); err == nil {
		logger.Info("Using Gemini script generator")
		return adapters.NewGeminiScriptGenerator(geminiConfig, workerPool, logger)
	}
	if cohereConfig, err := config.GetCohereConfig(); err == nil {
		logger.Info("Using Cohere script generator")
		return adapters.NewCohereScriptGenerator(cohereConfig, logger)
	}
	logger.Warn("No script generator credentials configured, using stub")
	return mockservices.NewStubScriptGenerator(logger)
}

func selectSpeechSynthesizer(contentFetcher adapters.ContentFetcher, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	if elevenLabsConfig, err := config.GetElevenLabsConfig(); err == nil {
		logger.Info("Using ElevenLabs speech synthesizer")
		return adapters.NewElevenLabsSynthesizer(contentFetcher, elevenLabsConfig, logger)
	}
	logger.Warn("No speech synthesizer credentials configured, using stub")
	return mockservices.NewStubSpeechSynthesizer(logger)
}

func selectFootageSource(contentFetcher adapters.ContentFetcher, logger outbound.LoggerPort) outbound.FootageSourcePort {
	if pexelsConfig, err := config.GetPexelsConfig(); err == nil {
		logger.Info("Using Pexels footage source")
		return adapters.NewPexelsFootageSource(contentFetcher, pexelsConfig, logger)
	}
	logger.Warn("No footage source credentials configured, using stub")
	return mockservices.NewStubFootageSource(logger)
}

func selectVideoAssembler(mediaConfig *config.MediaConfig, logger outbound.LoggerPort) outbound.VideoAssemblerPort {
	if _, err := exec.LookPath("ffmpeg"); err == nil {
		logger.Info("Using ffmpeg video assembler")
		return adapters.NewFFmpegVideoAssembler(mediaConfig.TempDir, logger)
	}
	logger.Warn("ffmpeg not found in PATH, using stub assembler")
	return mockservices.NewStubVideoAssembler(logger)
}

func selectArtifactPublisher(serverConfig *config.ServerConfig, logger outbound.LoggerPort) outbound.ArtifactPublisherPort {
	if s3Config, err := config.GetS3Config(); err == nil {
		logger.Info("Publishing artifacts to S3")
		return adapters.NewS3ArtifactPublisher(logger, s3Config)
	}
	logger.Info("Publishing artifacts from the local videos directory")
	return adapters.NewLocalArtifactPublisher(serverConfig.PublicBaseURL, logger)
}
