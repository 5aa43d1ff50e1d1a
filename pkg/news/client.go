package news

import (
	"context"
	"errors"
)

// Link is one search result. Titles are passed through exactly as the
// provider returns them.
type Link struct {
	Title string
	URL   string
}

// ErrNoResults means the provider answered successfully but found nothing.
var ErrNoResults = errors.New("no news articles found")

type SearchClient interface {
	Search(ctx context.Context, keyword string, limit int) ([]Link, error)
	Name() string
}
