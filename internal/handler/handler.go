// Package handler exposes the HTTP surface: catalog reads with cover
// enrichment, and the summarize operation. Handlers validate input and
// compose the underlying components; they carry no business logic.
package handler

import (
	"context"

	"bookfinder/backend/internal/catalog"
	"bookfinder/backend/internal/model"

	"github.com/gin-gonic/gin"
)

// Enricher resolves cover images for catalog records.
type Enricher interface {
	Enrich(ctx context.Context, book model.Book) model.Book
	EnrichAll(ctx context.Context, books []model.Book) []model.Book
}

// Summarizer produces a summary with provenance for a book.
type Summarizer interface {
	Generate(ctx context.Context, title, author, genre string) (model.SummaryResult, error)
}

// API bundles the components behind the HTTP routes.
type API struct {
	store     *catalog.Store
	enricher  Enricher
	generator Summarizer
}

// NewAPI creates the route handler set.
func NewAPI(store *catalog.Store, enricher Enricher, generator Summarizer) *API {
	return &API{
		store:     store,
		enricher:  enricher,
		generator: generator,
	}
}

// RegisterRoutes attaches all endpoints to the engine.
func (a *API) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", a.HandleHealth)
	r.GET("/books", a.HandleListBooks)
	r.GET("/books/search", a.HandleSearchBooks)
	r.GET("/books/:id", a.HandleGetBook)
	r.POST("/summarize", a.HandleSummarize)
}
