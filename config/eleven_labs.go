package config

import (
	"fmt"
	"os"
	"strconv"
)

type ElevenLabsConfig struct {
	ApiUrl          string
	ApiKey          string
	VoiceID         string
	ModelId         string
	Stability       float64
	SimilarityBoost float64
}

func GetElevenLabsConfig() (*ElevenLabsConfig, error) {
	apiKey := os.Getenv("ELEVEN_LABS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_API_KEY must be set")
	}
	apiUrl := os.Getenv("ELEVEN_LABS_API_URL")
	if apiUrl == "" {
		apiUrl = "https://api.elevenlabs.io/v1/text-to-speech"
	}
	voiceID := os.Getenv("ELEVEN_LABS_VOICE_ID")
	if voiceID == "" {
		voiceID = "21m00Tcm4TlvDq8ikWAM"
	}
	modelId := os.Getenv("ELEVEN_LABS_MODEL_ID")
	if modelId == "" {
		modelId = "eleven_monolingual_v1"
	}

	stabilityVal := 0.5
	if stability := os.Getenv("ELEVEN_LABS_STABILITY"); stability != "" {
		parsed, err := strconv.ParseFloat(stability, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ELEVEN_LABS_STABILITY")
		}
		stabilityVal = parsed
	}
	similarityBoostVal := 0.75
	if similarityBoost := os.Getenv("ELEVEN_LABS_SIMILARITY_BOOST"); similarityBoost != "" {
		parsed, err := strconv.ParseFloat(similarityBoost, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ELEVEN_LABS_SIMILARITY_BOOST")
		}
		similarityBoostVal = parsed
	}

	return &ElevenLabsConfig{
		ApiUrl:          apiUrl,
		ApiKey:          apiKey,
		VoiceID:         voiceID,
		ModelId:         modelId,
		Stability:       stabilityVal,
		SimilarityBoost: similarityBoostVal,
	}, nil
}
