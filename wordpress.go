package draftsmith

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// CMSClient abstracts the content-management system: media storage plus draft
// post creation. Implemented by WordPressClient; tests use a fake.
type CMSClient interface {
	UploadMedia(ctx context.Context, m Media) (MediaRef, error)
	CreatePost(ctx context.Context, title, content string) (int, error)
	GetPost(ctx context.Context, id int) (PublishedPost, error)
}

// WordPressClient talks to the WordPress wp/v2 REST API using an application
// password over HTTP basic auth.
type WordPressClient struct {
	baseURL     string
	user        string
	appPassword string
	httpClient  *http.Client
}

// NewWordPressClient creates a client for the site at baseURL (no trailing
// slash).
func NewWordPressClient(baseURL, user, appPassword string) *WordPressClient {
	return &WordPressClient{
		baseURL:     baseURL,
		user:        user,
		appPassword: appPassword,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type wpMediaResponse struct {
	ID        int    `json:"id"`
	SourceURL string `json:"source_url"`
}

type wpPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

type wpPostResponse struct {
	ID   int    `json:"id"`
	Link string `json:"link"`
}

// UploadMedia streams one image to the media endpoint and returns its
// CMS-assigned public URL.
func (c *WordPressClient) UploadMedia(ctx context.Context, m Media) (MediaRef, error) {
	endpoint := c.baseURL + "/wp-json/wp/v2/media"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(m.Data))
	if err != nil {
		return MediaRef{}, err
	}
	req.SetBasicAuth(c.user, c.appPassword)
	req.Header.Set("Content-Type", m.ContentType)
	req.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", m.Filename))

	var media wpMediaResponse
	if err := c.do(req, http.StatusCreated, &media); err != nil {
		return MediaRef{}, fmt.Errorf("upload media %q: %w", m.Filename, err)
	}
	return MediaRef{ID: media.ID, URL: media.SourceURL}, nil
}

// CreatePost creates a post with the fixed "draft" status and returns its id.
func (c *WordPressClient) CreatePost(ctx context.Context, title, content string) (int, error) {
	payload, err := json.Marshal(wpPostRequest{Title: title, Content: content, Status: "draft"})
	if err != nil {
		return 0, fmt.Errorf("marshal post: %w", err)
	}
	endpoint := c.baseURL + "/wp-json/wp/v2/posts"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.SetBasicAuth(c.user, c.appPassword)
	req.Header.Set("Content-Type", "application/json")

	var post wpPostResponse
	if err := c.do(req, http.StatusCreated, &post); err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	return post.ID, nil
}

// GetPost fetches a created post back for its canonical link.
func (c *WordPressClient) GetPost(ctx context.Context, id int) (PublishedPost, error) {
	endpoint := fmt.Sprintf("%s/wp-json/wp/v2/posts/%d?context=edit", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return PublishedPost{}, err
	}
	req.SetBasicAuth(c.user, c.appPassword)

	var post wpPostResponse
	if err := c.do(req, http.StatusOK, &post); err != nil {
		return PublishedPost{}, fmt.Errorf("get post %d: %w", id, err)
	}
	return PublishedPost{ID: post.ID, URL: post.Link}, nil
}

func (c *WordPressClient) do(req *http.Request, wantStatus int, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != wantStatus {
		return fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// Publisher wraps the final title + processed HTML into a draft post.
type Publisher struct {
	cms CMSClient
}

func NewPublisher(cms CMSClient) *Publisher {
	return &Publisher{cms: cms}
}

// Publish creates the draft exactly once, then fetches it back for its
// canonical URL. Not idempotent across calls, so callers must not invoke it
// twice per cycle.
func (p *Publisher) Publish(ctx context.Context, title, content string) (PublishedPost, error) {
	id, err := p.cms.CreatePost(ctx, title, content)
	if err != nil {
		return PublishedPost{}, fmt.Errorf("%w: %v", ErrPublish, err)
	}
	post, err := p.cms.GetPost(ctx, id)
	if err != nil {
		return PublishedPost{}, fmt.Errorf("%w: %v", ErrPublish, err)
	}
	return post, nil
}

// UploadImages normalizes and uploads each submitted image in order,
// returning URLs in submission order. The first failure aborts the batch;
// earlier uploads stay on the CMS (no rollback).
func UploadImages(ctx context.Context, cms CMSClient, media []Media) ([]string, error) {
	urls := make([]string, 0, len(media))
	for _, m := range media {
		ref, err := cms.UploadMedia(ctx, m)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUpload, err)
		}
		urls = append(urls, ref.URL)
	}
	return urls, nil
}
