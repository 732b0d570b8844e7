// Package textproc implements the lexical half of the scoring pipeline:
// tokenization with stopword removal, TF-IDF weighting over the two-document
// CV/job corpus, cosine similarity and shared-term extraction.
package textproc

import (
	"regexp"

	"github.com/baauozar/cvmatch/internal/language"
)

// tokenRuns matches maximal runs of lowercase Latin letters, digits and the
// Turkish letter set.
var tokenRuns = regexp.MustCompile(`[a-z0-9çğıöşü]+`)

// Tokenizer lowercases, splits and stopword-filters text. Stopword lists are
// data supplied at construction; the detected language picks which list
// applies.
type Tokenizer struct {
	stopTR map[string]struct{}
	stopEN map[string]struct{}
}

// NewTokenizer builds a tokenizer over the given stopword lists. Entries are
// expected lowercase.
func NewTokenizer(stopwordsTR, stopwordsEN []string) *Tokenizer {
	return &Tokenizer{
		stopTR: toSet(stopwordsTR),
		stopEN: toSet(stopwordsEN),
	}
}

// Tokenize returns the ordered token sequence of text: lowercased word runs
// with single-character tokens and stopwords removed. Duplicates are kept,
// order is preserved; term frequency matters downstream. The English
// stopword list applies to anything not detected as Turkish.
func (tk *Tokenizer) Tokenize(text string, lang language.Lang) []string {
	if text == "" {
		return nil
	}

	stop := tk.stopEN
	if lang == language.Turkish {
		stop = tk.stopTR
	}

	var tokens []string
	for _, t := range tokenRuns.FindAllString(language.Lower(text), -1) {
		if len([]rune(t)) <= 1 {
			continue
		}
		if _, isStop := stop[t]; isStop {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
