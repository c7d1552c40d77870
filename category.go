package subscan

import (
	"regexp"
	"strings"
	"sync"
)

// DefaultCategory is returned when no taxonomy keyword matches the corpus.
const DefaultCategory = "General Interest"

// taxonomyEntry maps a category to the keywords that indicate it.
// Declaration order matters: ties resolve to the earliest entry.
type taxonomyEntry struct {
	Category string
	Keywords []string
}

// taxonomy is static configuration owned by the package. It is never
// mutated after process startup.
var taxonomy = []taxonomyEntry{
	{"Technology & AI", []string{
		"ai", "artificial intelligence", "machine learning", "tech",
		"technology", "software", "programming", "engineering", "startup",
		"crypto", "data",
	}},
	{"Business & Finance", []string{
		"business", "finance", "investing", "economy", "economics",
		"market", "money", "stocks", "entrepreneur", "venture",
	}},
	{"Politics & Society", []string{
		"politics", "political", "policy", "government", "election",
		"democracy", "society", "justice", "law",
	}},
	{"Health & Wellness", []string{
		"health", "wellness", "fitness", "nutrition", "medicine",
		"mental", "therapy", "meditation",
	}},
	{"Culture & Arts", []string{
		"culture", "art", "music", "film", "books", "literature",
		"writing", "poetry", "design",
	}},
	{"Science & Education", []string{
		"science", "research", "education", "learning", "physics",
		"biology", "psychology", "history",
	}},
	{"Food & Lifestyle", []string{
		"food", "cooking", "recipe", "recipes", "travel", "lifestyle",
		"fashion", "wine",
	}},
	{"Sports", []string{
		"sports", "football", "soccer", "basketball", "baseball",
		"tennis", "golf",
	}},
}

// keywordPatterns holds a compiled whole-word matcher per keyword,
// built once on first use.
var keywordPatterns = sync.OnceValue(func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, entry := range taxonomy {
		for _, kw := range entry.Keywords {
			patterns[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		}
	}
	return patterns
})

// CategoryScore is one category's keyword-occurrence count for a corpus.
type CategoryScore struct {
	Category string
	Score    int
}

// Categorize assigns the best-matching topic category to a corpus of post
// titles plus the feed description. Scoring counts whole-word keyword
// occurrences in the lowercased concatenated corpus; the strictly highest
// sum wins, ties resolve to the category declared first in the taxonomy,
// and a zero-score corpus yields DefaultCategory. Deterministic and pure.
func Categorize(titles []string, description string) string {
	scores := ScoreCategories(titles, description)

	best := CategoryScore{Category: DefaultCategory}
	for _, s := range scores {
		if s.Score > best.Score {
			best = s
		}
	}
	if best.Score == 0 {
		return DefaultCategory
	}
	return best.Category
}

// ScoreCategories returns the per-category keyword scores in taxonomy
// declaration order.
func ScoreCategories(titles []string, description string) []CategoryScore {
	corpus := strings.ToLower(strings.Join(titles, " ") + " " + description)
	patterns := keywordPatterns()

	scores := make([]CategoryScore, 0, len(taxonomy))
	for _, entry := range taxonomy {
		score := 0
		for _, kw := range entry.Keywords {
			score += len(patterns[kw].FindAllStringIndex(corpus, -1))
		}
		scores = append(scores, CategoryScore{Category: entry.Category, Score: score})
	}

	return scores
}
