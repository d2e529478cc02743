package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"taskhub/internal/config"
)

const notionAPIVersion = "2022-06-28"

// NotionService exports generated reports as pages in a Notion database.
type NotionService struct {
	apiKey     string
	databaseID string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewNotionService(cfg config.NotionConfig, logger *zap.Logger) *NotionService {
	return &NotionService{
		apiKey:     cfg.APIKey,
		databaseID: cfg.DatabaseID,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

type NotionPage struct {
	PageID string `json:"pageId"`
	URL    string `json:"url"`
	Title  string `json:"title"`
}

type notionText struct {
	Content string `json:"content"`
}

type notionRichText struct {
	Type string     `json:"type,omitempty"`
	Text notionText `json:"text"`
}

type notionCreatePageRequest struct {
	Parent struct {
		DatabaseID string `json:"database_id"`
	} `json:"parent"`
	Properties struct {
		Title struct {
			Title []notionRichText `json:"title"`
		} `json:"title"`
	} `json:"properties"`
	Children []notionBlock `json:"children"`
}

type notionBlock struct {
	Object    string `json:"object"`
	Type      string `json:"type"`
	Paragraph struct {
		RichText []notionRichText `json:"rich_text"`
	} `json:"paragraph"`
}

// CreatePage creates a page titled title with content as a paragraph
// block. databaseID overrides the configured default when non-empty.
func (s *NotionService) CreatePage(ctx context.Context, title, content, databaseID string) (*NotionPage, error) {
	if databaseID == "" {
		databaseID = s.databaseID
	}

	var reqBody notionCreatePageRequest
	reqBody.Parent.DatabaseID = databaseID
	reqBody.Properties.Title.Title = []notionRichText{{Text: notionText{Content: title}}}

	var block notionBlock
	block.Object = "block"
	block.Type = "paragraph"
	block.Paragraph.RichText = []notionRichText{{Type: "text", Text: notionText{Content: content}}}
	reqBody.Children = []notionBlock{block}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.notion.com/v1/pages", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", notionAPIVersion)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("notion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("Notion page creation failed", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("notion returned status %d", resp.StatusCode)
	}

	var created struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode notion response: %w", err)
	}

	return &NotionPage{PageID: created.ID, URL: created.URL, Title: title}, nil
}
