package dto

type GenerateVideoResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	VideoURL string `json:"video_url,omitempty"`
	Error    string `json:"error,omitempty"`
}
