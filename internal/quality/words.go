package quality

// commonWords is the fixed list of words never flagged as jargon, even
// when they clear the length and syllable gates. It mixes everyday
// English with domain-generic academic vocabulary so that ordinary
// scholarly prose is not penalized. Built once at init; never mutated.
var commonWords = makeWordSet([]string{
	"about", "above", "across", "after", "again", "against", "almost",
	"already", "also", "although", "always", "among", "analysis",
	"another", "answer", "anything", "approach", "area", "argument",
	"article", "author", "available", "average", "because", "become",
	"before", "begin", "behind", "being", "below", "between", "body",
	"both", "chapter", "common", "compare", "complete", "condition",
	"consider", "continue", "could", "country", "course", "current",
	"data", "describe", "design", "develop", "development", "difference",
	"different", "difficult", "discussion", "during", "early", "effect",
	"either", "evidence", "example", "experience", "experiment",
	"explain", "factor", "feature", "field", "figure", "finding",
	"findings", "first", "follow", "following", "further", "general",
	"group", "higher", "history", "however", "idea", "important",
	"include", "increase", "indicate", "individual", "information",
	"instead", "interest", "introduction", "issue", "itself", "journal",
	"knowledge", "language", "large", "later", "level", "literature",
	"little", "lower", "major", "material", "measure", "member",
	"method", "model", "moreover", "nature", "number", "observe",
	"often", "order", "other", "overall", "paper", "particular",
	"people", "period", "point", "position", "possible", "present",
	"previous", "problem", "process", "produce", "provide", "purpose",
	"question", "rather", "reason", "recent", "record", "reference",
	"related", "report", "research", "result", "results", "review",
	"sample", "second", "section", "several", "should", "similar",
	"simple", "single", "small", "social", "source", "specific",
	"structure", "student", "study", "subject", "suggest", "support",
	"system", "table", "theory", "therefore", "these", "those",
	"through", "together", "toward", "under", "understand", "until",
	"using", "usually", "value", "various", "whether", "which",
	"while", "within", "without", "would", "writing",
})

func makeWordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
