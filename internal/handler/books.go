package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"bookfinder/backend/internal/catalog"

	"github.com/gin-gonic/gin"
)

// HandleListBooks returns the full catalog with enriched covers.
func (a *API) HandleListBooks(c *gin.Context) {
	books := a.store.ListAll()
	enriched := a.enricher.EnrichAll(c.Request.Context(), books)
	log.Printf("[INFO] Returning %d books", len(enriched))
	c.JSON(http.StatusOK, enriched)
}

// HandleSearchBooks filters the catalog by the q query parameter. An empty
// term returns the unfiltered catalog; a term matching nothing returns an
// empty array, not an error.
func (a *API) HandleSearchBooks(c *gin.Context) {
	term := c.Query("q")
	books := a.store.Search(term)
	enriched := a.enricher.EnrichAll(c.Request.Context(), books)
	c.JSON(http.StatusOK, enriched)
}

// HandleGetBook returns a single book by id. Non-numeric and unknown ids
// both map to 404.
func (a *API) HandleGetBook(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}

	book, err := a.store.FindByID(id)
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}

	c.JSON(http.StatusOK, a.enricher.Enrich(c.Request.Context(), book))
}
