package model

// Book is a single catalog record. The seed catalog is immutable for the
// lifetime of the process; enrichment works on copies, never in place.
type Book struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Genre    string `json:"genre"`
	CoverURL string `json:"coverUrl"`
}

// WithCover returns a copy of the book with a replacement cover URL.
func (b Book) WithCover(url string) Book {
	b.CoverURL = url
	return b
}

// Source tags where a summary came from.
type Source string

const (
	// SourceAPI marks a summary returned by the live generative provider.
	SourceAPI Source = "api"
	// SourceMock marks a summary produced by the offline fallback.
	SourceMock Source = "mock"
)

// SummaryResult is the outcome of a summarize operation. Summary is never
// empty: the mock path guarantees at least a generic paragraph, and Source
// is SourceAPI only when the live call actually succeeded.
type SummaryResult struct {
	Summary string `json:"summary"`
	Source  Source `json:"source"`
}
