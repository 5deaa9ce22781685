package summary

import (
	"fmt"
	"strings"
)

// curatedSummaries maps exact book titles to pre-written summaries used
// when the live provider is unavailable.
var curatedSummaries = map[string]string{
	"The Martian":         "In Andy Weir's 'The Martian,' astronaut Mark Watney finds himself stranded alone on Mars after his crew evacuates during a violent dust storm, believing him dead. Using his botanical expertise and engineering skills, Watney faces the harsh Martian environment with limited supplies while devising ingenious solutions to grow food, create water, and establish communication with NASA. The novel masterfully balances scientific accuracy with Watney's irreverent humor and determination as he solves one seemingly impossible problem after another. Through his struggle and the global effort to rescue him, the novel explores themes of human ingenuity, resilience, and the practical application of scientific knowledge, demonstrating how human creativity and problem-solving can overcome the most daunting challenges even in the most hostile environment imaginable.",
	"Dune":                "Frank Herbert's 'Dune' follows young Paul Atreides, whose family accepts stewardship of the desert planet Arrakis, the universe's only source of the valuable spice melange. When treachery leads to his father's downfall, Paul escapes into the desert and is adopted by the native Fremen. Developing heightened awareness and prescient abilities due to spice exposure, Paul becomes the messianic leader 'Muad'Dib,' using Fremen's fierce fighting skills to reclaim Arrakis. Herbert masterfully weaves ecological concerns, political intrigue, and religious prophecy into this science fiction epic, examining themes of power, religion, and human evolution while creating a richly detailed universe with complex characters who navigate treacherous waters of imperial politics and environmental extremes.",
	"Pride and Prejudice": "Jane Austen's 'Pride and Prejudice' follows the spirited Elizabeth Bennet as she navigates the rigid social hierarchies of early 19th-century England. When she meets the wealthy, reserved Mr. Darcy, their mutual prejudice prevents any romantic possibility. After Darcy's surprise proposal and subsequent rejection, Elizabeth gradually reassesses her opinions as she learns of his true character through his letter and actions at Pemberley. Meanwhile, family crises involving her sister Lydia's elopement reveal Darcy's quiet generosity. Austen's wit and precise social commentary shine through the romantic plot as both protagonists overcome their flaws—Elizabeth her prejudice and Darcy his pride—to find mutual respect and love. The novel brilliantly examines personal growth, class distinctions, and how preconceptions can cloud judgment while celebrating independent thinking and the possibility of societal change through individual transformation.",
	"1984":                "George Orwell's '1984' depicts a dystopian world where Winston Smith, a low-ranking member of the ruling Party in Oceania, secretly rebels against the totalitarian government and its figurehead, Big Brother. In a society where independent thought is 'thoughtcrime,' constant surveillance is the norm, and history is continuously rewritten to suit Party needs, Winston finds forbidden love with Julia and seeks connection with a rumored resistance movement. Orwell's chilling narrative follows Winston's doomed attempts at freedom as he's eventually captured by the Thought Police and subjected to devastating torture in Room 101 until he betrays everything he values. With its exploration of psychological manipulation, perversion of truth, and the systematic crushing of human spirit, the novel remains a definitive warning about the dangers of totalitarianism and the fragility of individual liberty in the face of overwhelming state power.",
}

// curatedOrder fixes the scan order for substring matching, so the same
// query always resolves to the same curated entry.
var curatedOrder = []string{"The Martian", "Dune", "Pride and Prejudice", "1984"}

// MockResolver produces offline summaries. It is the terminal fallback of
// the summarize path and never fails.
type MockResolver struct{}

// NewMockResolver creates a MockResolver.
func NewMockResolver() *MockResolver {
	return &MockResolver{}
}

// Resolve returns a summary for the given book. Lookup order: exact title
// match against the curated table, then case-insensitive substring match in
// either direction, then a generic templated paragraph. The result is
// always non-empty.
func (r *MockResolver) Resolve(title, author, genre string) string {
	if s, ok := curatedSummaries[title]; ok {
		return s
	}

	lowerTitle := strings.ToLower(title)
	for _, curated := range curatedOrder {
		lowerCurated := strings.ToLower(curated)
		if strings.Contains(lowerTitle, lowerCurated) || strings.Contains(lowerCurated, lowerTitle) {
			return curatedSummaries[curated]
		}
	}

	if genre == "" {
		genre = "interesting"
	}
	if author == "" {
		author = "the author"
	}
	return fmt.Sprintf(
		`This %s book by %s titled "%s" follows a compelling protagonist through various challenges. The main character must overcome significant obstacles while navigating complex relationships and situations. Through vivid storytelling and character development, the narrative explores themes of resilience, growth, and human connection. The book's unique perspective offers readers insights into the human condition while maintaining an engaging plot that keeps readers invested until the final page.`,
		genre, author, title)
}
