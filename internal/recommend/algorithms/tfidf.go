// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package algorithms

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// DefaultMaxFeatures bounds the content vocabulary.
const DefaultMaxFeatures = 100

// SparseVector is a term-weighted document vector. Indices are ascending.
type SparseVector struct {
	Indices []int
	Values  []float64
}

// IsZero reports whether the vector has no non-zero weights.
func (v SparseVector) IsZero() bool {
	return len(v.Indices) == 0
}

// VectorizerConfig configures TF-IDF fitting.
type VectorizerConfig struct {
	// MaxFeatures keeps only the terms with the highest document frequency.
	// Zero or negative means DefaultMaxFeatures.
	MaxFeatures int

	// StopWords are dropped after lowercasing. Nil means EnglishStopWords.
	StopWords map[string]struct{}
}

// Vectorizer is a fitted TF-IDF vocabulary.
type Vectorizer struct {
	terms []string
	index map[string]int
	idf   []float64
	stop  map[string]struct{}
}

// Tokenize lowercases text and splits it into runs of letters, digits and
// underscores. Tokens shorter than two runes and stop words are dropped.
func Tokenize(text string, stop map[string]struct{}) []string {
	var tokens []string
	var b strings.Builder
	runes := 0

	flush := func() {
		if runes >= 2 {
			tok := b.String()
			if _, skip := stop[tok]; !skip {
				tokens = append(tokens, tok)
			}
		}
		b.Reset()
		runes = 0
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
			runes++
			continue
		}
		flush()
	}
	flush()

	return tokens
}

// FitTransform learns the vocabulary from docs and returns one L2-normalized
// vector per document. Weights are raw term count times the smoothed inverse
// document frequency ln((1+N)/(1+df)) + 1.
func FitTransform(docs []string, cfg VectorizerConfig) (*Vectorizer, []SparseVector) {
	if cfg.MaxFeatures <= 0 {
		cfg.MaxFeatures = DefaultMaxFeatures
	}
	if cfg.StopWords == nil {
		cfg.StopWords = EnglishStopWords()
	}

	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokens := Tokenize(doc, cfg.StopWords)
		tokenized[i] = tokens

		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := selectVocabulary(df, cfg.MaxFeatures)

	v := &Vectorizer{
		terms: terms,
		index: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
		stop:  cfg.StopWords,
	}
	n := float64(len(docs))
	for i, term := range terms {
		v.index[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]SparseVector, len(docs))
	for i, tokens := range tokenized {
		vectors[i] = v.vectorize(tokens)
	}
	return v, vectors
}

// selectVocabulary keeps the maxFeatures terms with the highest document
// frequency (ties by ascending term) and returns them in ascending order.
func selectVocabulary(df map[string]int, maxFeatures int) []string {
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}

	if len(terms) > maxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if df[terms[i]] != df[terms[j]] {
				return df[terms[i]] > df[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:maxFeatures]
	}

	sort.Strings(terms)
	return terms
}

// Transform vectorizes a new document against the fitted vocabulary.
func (v *Vectorizer) Transform(doc string) SparseVector {
	return v.vectorize(Tokenize(doc, v.stop))
}

func (v *Vectorizer) vectorize(tokens []string) SparseVector {
	counts := make(map[int]float64)
	for _, tok := range tokens {
		if idx, ok := v.index[tok]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return SparseVector{}
	}

	vec := SparseVector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		vec.Indices = append(vec.Indices, idx)
	}
	sort.Ints(vec.Indices)

	var norm float64
	for _, idx := range vec.Indices {
		w := counts[idx] * v.idf[idx]
		vec.Values = append(vec.Values, w)
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for i := range vec.Values {
		vec.Values[i] /= norm
	}
	return vec
}

// Vocabulary returns the fitted terms in index order.
func (v *Vectorizer) Vocabulary() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Len returns the vocabulary size.
func (v *Vectorizer) Len() int {
	return len(v.terms)
}
