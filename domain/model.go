package domain

// Scene is one narrative unit of a generated script. Narration is the
// text spoken over the scene and may be empty; Keywords drive stock
// footage selection and must be present.
type Scene struct {
	Narration string `json:"narration"`
	Keywords  string `json:"keywords"`
	Index     int    `json:"-"`
}

// SceneAsset holds the media files acquired for one scene. AudioPath is
// empty when the scene had no narration.
type SceneAsset struct {
	VideoPath string
	AudioPath string
}
