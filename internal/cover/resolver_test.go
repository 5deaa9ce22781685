package cover

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"bookfinder/backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func placeholderBook() model.Book {
	return model.Book{
		ID:       1,
		Title:    "Dune",
		Author:   "Frank Herbert",
		Genre:    "science fiction",
		CoverURL: "https://source.unsplash.com/300x450/?book,scifi",
	}
}

func volumesPayload(thumbnail, smallThumbnail string) map[string]any {
	return map[string]any{
		"items": []map[string]any{
			{
				"volumeInfo": map[string]any{
					"imageLinks": map[string]any{
						"thumbnail":      thumbnail,
						"smallThumbnail": smallThumbnail,
					},
				},
			},
		},
	}
}

func TestResolvePrefersLargerImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes", r.URL.Path)
		assert.Contains(t, r.URL.Query().Get("q"), "Dune")
		json.NewEncoder(w).Encode(volumesPayload("https://books.example/large.jpg", "https://books.example/small.jpg"))
	}))
	defer srv.Close()

	r := NewResolver(NewClient(srv.URL, 100))
	got := r.Resolve(context.Background(), placeholderBook())
	assert.Equal(t, "https://books.example/large.jpg", got)
}

func TestResolveFallsBackToSmallThumbnail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(volumesPayload("", "https://books.example/small.jpg"))
	}))
	defer srv.Close()

	r := NewResolver(NewClient(srv.URL, 100))
	got := r.Resolve(context.Background(), placeholderBook())
	assert.Equal(t, "https://books.example/small.jpg", got)
}

func TestResolveSkipsNonPlaceholderCovers(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	book := placeholderBook()
	book.CoverURL = "https://images.example/real-cover.jpg"

	r := NewResolver(NewClient(srv.URL, 100))
	got := r.Resolve(context.Background(), book)
	assert.Equal(t, book.CoverURL, got)
	assert.Zero(t, calls.Load(), "no lookup for books with real covers")
}

func TestResolveKeepsOriginalOnFailure(t *testing.T) {
	book := placeholderBook()

	t.Run("upstream error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		r := NewResolver(NewClient(srv.URL, 100))
		assert.Equal(t, book.CoverURL, r.Resolve(context.Background(), book))
	})

	t.Run("malformed response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		r := NewResolver(NewClient(srv.URL, 100))
		assert.Equal(t, book.CoverURL, r.Resolve(context.Background(), book))
	})

	t.Run("empty result set", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items":[]}`))
		}))
		defer srv.Close()

		r := NewResolver(NewClient(srv.URL, 100))
		assert.Equal(t, book.CoverURL, r.Resolve(context.Background(), book))
	})

	t.Run("unreachable server", func(t *testing.T) {
		r := NewResolver(NewClient("http://127.0.0.1:1", 100))
		assert.Equal(t, book.CoverURL, r.Resolve(context.Background(), book))
	})
}

// slowFetcher blocks until its delay elapses, then fails.
type slowFetcher struct {
	delay time.Duration
}

func (f *slowFetcher) FetchCover(ctx context.Context, title, author string) (string, error) {
	select {
	case <-time.After(f.delay):
		return "", context.DeadlineExceeded
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func TestEnrichAllRunsConcurrently(t *testing.T) {
	books := make([]model.Book, 8)
	for i := range books {
		b := placeholderBook()
		b.ID = i + 1
		books[i] = b
	}

	r := NewResolver(&slowFetcher{delay: 50 * time.Millisecond})

	start := time.Now()
	enriched := r.EnrichAll(context.Background(), books)
	elapsed := time.Since(start)

	// Serial lookups would take at least 8x the per-item delay.
	assert.Less(t, elapsed, 200*time.Millisecond, "lookups must fan out concurrently")
	assert.Len(t, enriched, len(books))
	for i, b := range enriched {
		assert.Equal(t, books[i].ID, b.ID)
		assert.Equal(t, books[i].CoverURL, b.CoverURL, "failed lookups keep the original cover")
	}
}

func TestEnrichAllIsolatesFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "Dune Frank Herbert" {
			json.NewEncoder(w).Encode(volumesPayload("https://books.example/dune.jpg", ""))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	dune := placeholderBook()
	other := placeholderBook()
	other.ID = 2
	other.Title = "The Hobbit"
	other.Author = "J.R.R. Tolkien"

	r := NewResolver(NewClient(srv.URL, 100))
	enriched := r.EnrichAll(context.Background(), []model.Book{dune, other})

	assert.Equal(t, "https://books.example/dune.jpg", enriched[0].CoverURL)
	assert.Equal(t, other.CoverURL, enriched[1].CoverURL)
}
