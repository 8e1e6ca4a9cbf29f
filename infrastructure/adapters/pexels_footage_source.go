package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/outbound"
	"github.com/faizurrehmandel/ai-video-generator-v1/config"
)

const maxFootageWidth = 1920

type pexelsSearchResponse struct {
	Videos []pexelsVideo `json:"videos"`
}

type pexelsVideo struct {
	ID         int               `json:"id"`
	VideoFiles []pexelsVideoFile `json:"video_files"`
}

type pexelsVideoFile struct {
	Link     string `json:"link"`
	FileType string `json:"file_type"`
	Width    int    `json:"width"`
}

type pexelsFootageSource struct {
	ContentFetcher
	logger       outbound.LoggerPort
	pexelsConfig *config.PexelsConfig
}

func NewPexelsFootageSource(contentFetcher ContentFetcher, pexelsConfig *config.PexelsConfig, logger outbound.LoggerPort) outbound.FootageSourcePort {
	return &pexelsFootageSource{
		ContentFetcher: contentFetcher,
		logger:         logger,
		pexelsConfig:   pexelsConfig,
	}
}

func (p *pexelsFootageSource) Fetch(ctx context.Context, fetchReq outbound.FetchFootageRequest) error {
	searchReq, err := p.getSearchRequest(ctx, fetchReq.Keywords)
	if err != nil {
		p.logger.Error(err, "Failed to construct the Pexels search request")
		return err
	}

	rawRes, err := p.FetchContent(searchReq)
	if err != nil {
		return err
	}

	var searchRes pexelsSearchResponse
	if err := json.Unmarshal(rawRes, &searchRes); err != nil {
		p.logger.Error(err, "Failed to unmarshal the Pexels search response")
		return err
	}

	link, err := pickVideoFile(searchRes)
	if err != nil {
		p.logger.WarnWithFields("No matching stock footage", map[string]interface{}{
			"keywords": fetchReq.Keywords,
		})
		return err
	}

	downloadReq, err := http.NewRequestWithContext(ctx, "GET", link, nil)
	if err != nil {
		p.logger.Error(err, "Failed to create the footage download request")
		return err
	}

	payload, err := p.FetchContent(downloadReq)
	if err != nil {
		return err
	}

	if err := os.WriteFile(fetchReq.DestPath, payload, 0644); err != nil {
		p.logger.ErrorWithFields(err, "Failed to write downloaded footage", map[string]interface{}{
			"path": fetchReq.DestPath,
		})
		return err
	}

	return nil
}

func (p *pexelsFootageSource) getSearchRequest(ctx context.Context, keywords string) (*http.Request, error) {
	searchURL := fmt.Sprintf("%s/search?query=%s&per_page=3&orientation=landscape",
		p.pexelsConfig.ApiUrl, url.QueryEscape(keywords))

	req, err := http.NewRequestWithContext(ctx, "GET", searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Authorization", p.pexelsConfig.ApiKey)

	return req, nil
}

// pickVideoFile selects the largest mp4 rendition that still fits the
// output resolution, falling back to the first file of the first video.
func pickVideoFile(res pexelsSearchResponse) (string, error) {
	bestLink := ""
	bestWidth := 0
	for _, video := range res.Videos {
		for _, file := range video.VideoFiles {
			if file.FileType != "video/mp4" || file.Link == "" {
				continue
			}
			if file.Width > maxFootageWidth {
				continue
			}
			if file.Width > bestWidth {
				bestWidth = file.Width
				bestLink = file.Link
			}
		}
	}
	if bestLink != "" {
		return bestLink, nil
	}

	for _, video := range res.Videos {
		for _, file := range video.VideoFiles {
			if file.Link != "" {
				return file.Link, nil
			}
		}
	}

	return "", errors.New("no matching footage found")
}
