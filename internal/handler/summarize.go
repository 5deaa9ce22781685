package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"bookfinder/backend/internal/summary"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/unicode/norm"
)

// SummarizeRequest is the POST /summarize body.
type SummarizeRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

// HandleSummarize produces a summary for a book. Provider trouble never
// surfaces here: the generator degrades to a mock summary, so the only
// client-visible error is a missing title.
func (a *API) HandleSummarize(c *gin.Context) {
	start := time.Now()

	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	// Normalize to NFC so downstream matching sees canonical text.
	title := strings.TrimSpace(norm.NFC.String(req.Title))
	author := strings.TrimSpace(norm.NFC.String(req.Author))
	genre := strings.TrimSpace(norm.NFC.String(req.Genre))

	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	log.Printf("[INFO] Generating summary for %q by %s (%s)", title, orDefault(author, "unknown author"), orDefault(genre, "no genre specified"))

	result, err := a.generator.Generate(c.Request.Context(), title, author, genre)
	if err != nil {
		if errors.Is(err, summary.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate summary",
			"details": err.Error(),
		})
		return
	}

	log.Printf("[PERF] Summarize completed in %v source=%s", time.Since(start), result.Source)
	c.JSON(http.StatusOK, result)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
