// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/floats"
)

// defaultMaxFeatures caps the vocabulary when the caller does not set one.
const defaultMaxFeatures = 100

// vectorizer converts titles into L2-normalized TF-IDF vectors over a
// vocabulary learned from one corpus. The vocabulary is not persisted:
// every build learns it fresh, so edges are only comparable within a
// single build.
type vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// tokenize lowercases text and splits it into terms of at least two
// letters or digits.
func tokenize(text string) []string {
	var terms []string
	var b strings.Builder
	runes := 0
	flush := func() {
		if runes >= 2 {
			terms = append(terms, b.String())
		}
		b.Reset()
		runes = 0
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			runes++
		} else {
			flush()
		}
	}
	flush()
	return terms
}

// fitVectorizer learns a vocabulary from the tokenized docs: the
// maxFeatures terms with the highest corpus-wide count, equal counts
// broken lexicographically so the vocabulary is identical across runs on
// the same corpus.
func fitVectorizer(docs [][]string, maxFeatures int) *vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = defaultMaxFeatures
	}

	counts := make(map[string]int)
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, term := range doc {
			counts[term]++
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	v := &vectorizer{
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	n := len(docs)
	for i, term := range terms {
		v.vocab[term] = i
		// Smoothed IDF: a term present in every title still carries a
		// nonzero weight.
		v.idf[i] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}
	return v
}

// transform returns the L2-normalized TF-IDF vector for one tokenized
// document. Documents with no vocabulary terms yield the zero vector.
func (v *vectorizer) transform(doc []string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, term := range doc {
		if col, ok := v.vocab[term]; ok {
			vec[col] += v.idf[col]
		}
	}
	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}
