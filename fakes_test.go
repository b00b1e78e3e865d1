package draftsmith

import (
	"context"
	"errors"
	"fmt"
)

// fakeStore is an in-memory RecordStore. failTable makes listing that table
// (or "*" for all) fail.
type fakeStore struct {
	tables    map[string][]Fields
	failTable string
	created   map[string][]map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tables: map[string][]Fields{
			tablePreferences: {{tablePreferences: "casual tone"}, {tablePreferences: "short paragraphs"}},
			tableKeywords:    {{fieldKeyword: "soil health", fieldLink: "https://x"}},
			tableContext:     {{tableContext: "gardening blog for beginners"}},
			tablePrevious:    {{tablePrevious: "Composting 101"}, {tablePrevious: "Mulch Matters"}},
		},
		created: make(map[string][]map[string]string),
	}
}

func (s *fakeStore) ListRecords(_ context.Context, table string) ([]Fields, error) {
	if s.failTable == table || s.failTable == "*" {
		return nil, errors.New("airtable unreachable")
	}
	recs, ok := s.tables[table]
	if !ok {
		return nil, fmt.Errorf("table %s not found", table)
	}
	return recs, nil
}

func (s *fakeStore) CreateRecord(_ context.Context, table string, fields map[string]string) error {
	if s.failTable == table {
		return errors.New("airtable unreachable")
	}
	s.created[table] = append(s.created[table], fields)
	return nil
}

// stubGenerator returns a canned response and records every prompt it saw.
type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

// fakeCMS records uploads and created posts in memory.
type fakeCMS struct {
	uploads     []Media
	createCalls int
	getCalls    int
	lastTitle   string
	lastContent string
	uploadErr   error
	createErr   error
}

func (c *fakeCMS) UploadMedia(_ context.Context, m Media) (MediaRef, error) {
	if c.uploadErr != nil {
		return MediaRef{}, c.uploadErr
	}
	c.uploads = append(c.uploads, m)
	n := len(c.uploads)
	return MediaRef{ID: n, URL: fmt.Sprintf("https://cms.example/media/%d.jpg", n)}, nil
}

func (c *fakeCMS) CreatePost(_ context.Context, title, content string) (int, error) {
	if c.createErr != nil {
		return 0, c.createErr
	}
	c.createCalls++
	c.lastTitle = title
	c.lastContent = content
	return 41, nil
}

func (c *fakeCMS) GetPost(_ context.Context, id int) (PublishedPost, error) {
	c.getCalls++
	return PublishedPost{ID: id, URL: fmt.Sprintf("https://cms.example/?p=%d", id)}, nil
}
