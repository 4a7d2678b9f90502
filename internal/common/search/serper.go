// internal/common/search/serper.go
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"magnet-factory/internal/common/config"
	apperrors "magnet-factory/internal/common/errors"
	httpclient "magnet-factory/internal/common/http"
	"magnet-factory/internal/models"

	"github.com/go-resty/resty/v2"
)

// Serper is the Google Search backend at google.serper.dev.
type Serper struct {
	client  *resty.Client
	apiKey  string
	baseURL string
	gl      string
	hl      string
}

type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
	GL  string `json:"gl"`
	HL  string `json:"hl"`
}

type serperResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"organic"`
}

func NewSerper(cfg config.SearchConfig) *Serper {
	return &Serper{
		client:  httpclient.NewResty(config.GetDuration(cfg.Timeout)),
		apiKey:  cfg.Serper.APIKey,
		baseURL: strings.TrimRight(cfg.Serper.BaseURL, "/"),
		gl:      cfg.Serper.GL,
		hl:      cfg.Serper.HL,
	}
}

// Search returns SEARCH_UNAVAILABLE for a missing key, a transport error
// or a non-200 status.
func (s *Serper) Search(ctx context.Context, query string, n int) ([]models.SearchResult, error) {
	if s.apiKey == "" {
		return nil, apperrors.NewSearchUnavailableError("SERPER_API_KEY not configured", nil)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("X-API-KEY", s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(serperRequest{Q: query, Num: n, GL: s.gl, HL: s.hl}).
		Post(s.baseURL + "/search")
	if err != nil {
		return nil, apperrors.NewSearchUnavailableError("serper request failed", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, apperrors.NewSearchUnavailableError(fmt.Sprintf("serper returned status %d", resp.StatusCode()), nil)
	}

	var out serperResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, apperrors.NewSearchUnavailableError("serper response decode failed", err)
	}

	results := make([]models.SearchResult, 0, n)
	for _, item := range out.Organic {
		if len(results) >= n {
			break
		}
		results = append(results, models.SearchResult{
			Title:   item.Title,
			Snippet: item.Snippet,
			Link:    item.Link,
			Source:  models.SourceGoogleSearch,
		})
	}
	return results, nil
}
