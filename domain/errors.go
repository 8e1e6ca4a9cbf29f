package domain

import "errors"

var (
	ErrScriptGenerationFailed = errors.New("script generation failed")
	ErrMissingSceneKeywords   = errors.New("scene is missing keywords")
	ErrAssetAcquisitionFailed = errors.New("asset acquisition failed")
	ErrAssemblyFailed         = errors.New("video assembly failed")
)
