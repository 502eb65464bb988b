package graph

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"lowercases and splits", "Bone Loss in Microgravity", []string{"bone", "loss", "in", "microgravity"}},
		{"drops single characters", "a b growth", []string{"growth"}},
		{"keeps digits", "ISS expedition 42 results", []string{"iss", "expedition", "42", "results"}},
		{"punctuation separates", "plant-growth: roots", []string{"plant", "growth", "roots"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tokenize(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFitVectorizerCapsVocabulary(t *testing.T) {
	docs := [][]string{
		{"bone", "loss", "microgravity"},
		{"bone", "density", "loss"},
		{"plant", "growth"},
	}
	v := fitVectorizer(docs, 2)
	if len(v.vocab) != 2 {
		t.Fatalf("vocab size = %d, want 2", len(v.vocab))
	}
	// "bone" and "loss" have the highest corpus counts.
	for _, term := range []string{"bone", "loss"} {
		if _, ok := v.vocab[term]; !ok {
			t.Errorf("vocab missing %q", term)
		}
	}
}

func TestFitVectorizerTieBreakIsLexicographic(t *testing.T) {
	// All terms appear exactly once; the cap must keep the
	// alphabetically first ones.
	docs := [][]string{{"zebra", "apple", "mango"}}
	v := fitVectorizer(docs, 2)
	if _, ok := v.vocab["apple"]; !ok {
		t.Error("vocab missing apple")
	}
	if _, ok := v.vocab["mango"]; !ok {
		t.Error("vocab missing mango")
	}
	if _, ok := v.vocab["zebra"]; ok {
		t.Error("vocab kept zebra over alphabetically earlier terms")
	}
}

func TestTransformIsUnitLength(t *testing.T) {
	docs := [][]string{
		{"bone", "loss", "microgravity"},
		{"plant", "growth", "microgravity"},
	}
	v := fitVectorizer(docs, 0)
	for i, doc := range docs {
		vec := v.transform(doc)
		var norm float64
		for _, x := range vec {
			norm += x * x
		}
		if math.Abs(math.Sqrt(norm)-1.0) > 1e-9 {
			t.Errorf("doc %d norm = %v, want 1.0", i, math.Sqrt(norm))
		}
	}
}

func TestTransformUnknownTermsYieldZeroVector(t *testing.T) {
	v := fitVectorizer([][]string{{"bone", "loss"}}, 0)
	vec := v.transform([]string{"unrelated", "terms"})
	for i, x := range vec {
		if x != 0 {
			t.Fatalf("vec[%d] = %v, want 0", i, x)
		}
	}
}
