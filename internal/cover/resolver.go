// Package cover upgrades placeholder cover images via the Google Books
// volumes API. Enrichment is strictly best-effort: any lookup failure
// leaves the original cover URL in place and never fails the caller.
package cover

import (
	"context"
	"log"
	"strings"
	"sync"

	"bookfinder/backend/internal/model"
)

// placeholderHost marks covers that come from the low-fidelity placeholder
// image service and are worth replacing.
const placeholderHost = "unsplash"

// Fetcher is the lookup the resolver depends on; satisfied by *Client.
type Fetcher interface {
	FetchCover(ctx context.Context, title, author string) (string, error)
}

// Resolver applies per-book cover enrichment.
type Resolver struct {
	fetcher Fetcher
}

// NewResolver creates a Resolver over the given Fetcher.
func NewResolver(fetcher Fetcher) *Resolver {
	return &Resolver{fetcher: fetcher}
}

// Resolve returns the cover URL to serve for a book. Books that already
// carry a real cover are returned unchanged without a network call. For
// placeholder covers a single bounded lookup is attempted; on any failure
// or empty result the original URL is kept.
func (r *Resolver) Resolve(ctx context.Context, book model.Book) string {
	if !strings.Contains(book.CoverURL, placeholderHost) {
		return book.CoverURL
	}

	resolved, err := r.fetcher.FetchCover(ctx, book.Title, book.Author)
	if err != nil {
		log.Printf("[WARN] Cover lookup failed for %q: %v", book.Title, err)
		return book.CoverURL
	}
	if resolved == "" {
		return book.CoverURL
	}
	return resolved
}

// EnrichAll resolves covers for a batch of books concurrently. Each book
// gets an independent lookup writing to its own output slot, so one slow
// or failing lookup neither blocks nor degrades the others. The returned
// slice preserves input order.
func (r *Resolver) EnrichAll(ctx context.Context, books []model.Book) []model.Book {
	enriched := make([]model.Book, len(books))

	var wg sync.WaitGroup
	for i, book := range books {
		wg.Add(1)
		go func(i int, book model.Book) {
			defer wg.Done()
			enriched[i] = book.WithCover(r.Resolve(ctx, book))
		}(i, book)
	}
	wg.Wait()

	return enriched
}

// Enrich resolves the cover for a single book, returning a derived copy.
func (r *Resolver) Enrich(ctx context.Context, book model.Book) model.Book {
	return book.WithCover(r.Resolve(ctx, book))
}
