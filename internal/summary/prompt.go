package summary

import "fmt"

// promptTemplate is the structured summary prompt. The %s slots are title,
// author, genre, and the tone instruction.
const promptTemplate = `Summarize the following book:
Title: %s
Author: %s
Genre: %s

Your summary should:
- Introduce the protagonist and the setting.
- Describe the main conflict and survival strategies employed.
- Highlight the novel's tone, emphasizing %s.
- Conclude with the overarching themes of resilience and human ingenuity.
Format the summary as a single paragraph in plain text.`

// BuildPrompt constructs the generation prompt for a book. Absent author
// and genre are substituted with neutral placeholders.
func BuildPrompt(title, author, genre string) string {
	tone := "the novel's unique style"
	if genre != "" {
		tone = fmt.Sprintf("elements common in %s novels", genre)
	}
	if author == "" {
		author = "Unknown"
	}
	displayGenre := genre
	if displayGenre == "" {
		displayGenre = "Not specified"
	}
	return fmt.Sprintf(promptTemplate, title, author, displayGenre, tone)
}
