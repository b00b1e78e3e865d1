package draftsmith

import (
	"context"
	"fmt"
)

// The four curated tables and their text columns. The schema is owned by a
// human curator in Airtable; this system only reads it, except for Previous,
// which gains one row per completed publish cycle.
const (
	tablePreferences = "Preferences"
	tableKeywords    = "Keywords"
	tableContext     = "Context"
	tablePrevious    = "Previous"

	fieldKeyword = "Keyword"
	fieldLink    = "Link"
)

// RecordStore abstracts the tabular datastore so handlers can run against a
// fake in tests.
type RecordStore interface {
	ListRecords(ctx context.Context, table string) ([]Fields, error)
	CreateRecord(ctx context.Context, table string, fields map[string]string) error
}

// Aggregator fetches and normalizes the curated record collections.
type Aggregator struct {
	store RecordStore
}

func NewAggregator(store RecordStore) *Aggregator {
	return &Aggregator{store: store}
}

// FetchContext pulls all four tables and normalizes them into a
// RecordContext, preserving datastore iteration order. Any failure wraps
// ErrDataSource; there is no recovery path.
func (a *Aggregator) FetchContext(ctx context.Context) (RecordContext, error) {
	var rc RecordContext

	var err error
	if rc.Preferences, err = a.textColumn(ctx, tablePreferences, tablePreferences); err != nil {
		return RecordContext{}, err
	}
	if rc.Keywords, err = a.keywords(ctx); err != nil {
		return RecordContext{}, err
	}
	if rc.Context, err = a.textColumn(ctx, tableContext, tableContext); err != nil {
		return RecordContext{}, err
	}
	if rc.Previous, err = a.textColumn(ctx, tablePrevious, tablePrevious); err != nil {
		return RecordContext{}, err
	}
	return rc, nil
}

// AppendPrevious records a chosen title so later batches can exclude it.
func (a *Aggregator) AppendPrevious(ctx context.Context, title string) error {
	if err := a.store.CreateRecord(ctx, tablePrevious, map[string]string{tablePrevious: title}); err != nil {
		return fmt.Errorf("%w: append %s: %v", ErrDataSource, tablePrevious, err)
	}
	return nil
}

// textColumn lists a single-column table, skipping records missing the field
// (Airtable omits empty cells from the fields object).
func (a *Aggregator) textColumn(ctx context.Context, table, field string) ([]string, error) {
	records, err := a.store.ListRecords(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	var out []string
	for _, rec := range records {
		if v, ok := rec[field]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (a *Aggregator) keywords(ctx context.Context) ([]Keyword, error) {
	records, err := a.store.ListRecords(ctx, tableKeywords)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	var out []Keyword
	for _, rec := range records {
		kw := Keyword{Text: rec[fieldKeyword], Link: rec[fieldLink]}
		if kw.Text == "" && kw.Link == "" {
			continue
		}
		out = append(out, kw)
	}
	return out, nil
}
