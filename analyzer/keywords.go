package analyzer

import (
	"sort"

	"github.com/AutoNateAI/insta-matrix-insights-flow/model"
)

// stopWords are common English function words excluded when ranking
// keywords for display. The aggregator itself counts them; filtering is the
// serving layer's job.
var stopWords = map[string]bool{
	"this": true, "that": true, "with": true, "from": true, "your": true,
	"have": true, "will": true, "what": true, "when": true, "where": true,
	"which": true, "their": true, "there": true, "about": true, "would": true,
	"could": true, "should": true, "been": true, "being": true, "were": true,
	"they": true, "them": true, "then": true, "than": true, "because": true,
	"into": true, "over": true, "under": true, "just": true, "only": true,
	"some": true, "more": true, "most": true, "other": true, "such": true,
	"here": true, "very": true, "also": true, "after": true, "before": true,
	"while": true, "these": true, "those": true, "each": true, "does": true,
	"dont": true, "doesnt": true, "cant": true, "wont": true, "youre": true,
}

// TopKeywords ranks the analysis keywords descending by count, excluding
// stop words, and returns at most limit entries. Ties break alphabetically
// so the ranking is deterministic.
func TopKeywords(content *model.ContentAnalysis, limit int) []model.KeywordCount {
	if content == nil {
		return nil
	}

	ranked := make([]model.KeywordCount, 0, len(content.Keywords))
	for word, count := range content.Keywords {
		if stopWords[word] {
			continue
		}
		ranked = append(ranked, model.KeywordCount{Word: word, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
