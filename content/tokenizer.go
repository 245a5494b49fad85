// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

package content

import (
	"strings"
	"unicode"
)

// tokenize splits a normalized text blob into word tokens. A token is a
// maximal run of letters and digits at least two runes long; everything
// else is a separator. Input is expected to be lowercased already.
func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	runes := 0

	flush := func() {
		if runes >= 2 {
			tokens = append(tokens, b.String())
		}
		b.Reset()
		runes = 0
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			runes++
			continue
		}
		flush()
	}
	flush()

	return tokens
}

// terms produces the unigram and bigram terms for a blob. Stopwords are
// removed first; bigrams are formed over the surviving token sequence, so
// "the dark knight" yields the bigram "dark knight".
func terms(text string) []string {
	tokens := tokenize(text)

	kept := tokens[:0]
	for _, tok := range tokens {
		if _, stop := stopwords[tok]; !stop {
			kept = append(kept, tok)
		}
	}

	out := make([]string, 0, 2*len(kept))
	out = append(out, kept...)
	for i := 0; i+1 < len(kept); i++ {
		out = append(out, kept[i]+" "+kept[i+1])
	}
	return out
}
