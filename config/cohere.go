package config

import (
	"fmt"
	"os"
)

type CohereConfig struct {
	ApiKey string
	Model  string
}

func GetCohereConfig() (*CohereConfig, error) {
	apiKey := os.Getenv("COHERE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("COHERE_API_KEY must be set")
	}
	model := os.Getenv("COHERE_MODEL")
	if model == "" {
		model = "command-r"
	}
	return &CohereConfig{
		ApiKey: apiKey,
		Model:  model,
	}, nil
}
