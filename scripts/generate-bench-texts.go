//go:build ignore

// Package main generates synthetic text files for strfind benchmarks.
// Usage: go run scripts/generate-bench-texts.go -size 65536 -output testdata/bench
//
// It writes two files, article1.txt and article2.txt, built from a shared
// word pool. The pattern word given by -present is planted in both files;
// the word given by -absent is guaranteed never to appear.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

var (
	size      = flag.Int("size", 65536, "Approximate size of each file in bytes")
	outputDir = flag.String("output", "testdata/bench", "Output directory")
	present   = flag.String("present", "елемент", "Word planted in every file")
	absent    = flag.String("absent", "notinthetext", "Word that must never appear")
	seed      = flag.Int64("seed", 42, "Random seed for reproducibility")
)

var wordPool = []string{
	"масив", "список", "пошук", "рядок", "символ", "алгоритм", "структура",
	"дерево", "граф", "вершина", "ребро", "хеш", "таблиця", "ключ",
	"значення", "індекс", "сортування", "складність", "ітерація", "рекурсія",
	"array", "string", "search", "pattern", "index", "hash", "prefix",
	"suffix", "window", "shift", "compare", "match", "offset", "byte",
}

func main() {
	flag.Parse()

	if strings.Contains(strings.Join(wordPool, " "), *absent) {
		fmt.Fprintf(os.Stderr, "absent word %q occurs in the word pool\n", *absent)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))

	for i := 1; i <= 2; i++ {
		path := filepath.Join(*outputDir, fmt.Sprintf("article%d.txt", i))
		if err := os.WriteFile(path, []byte(generate(rng)), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
	}
}

// generate builds a text of roughly *size bytes, planting the present word
// about once per hundred words so it shows up at varying depths.
func generate(rng *rand.Rand) string {
	var b strings.Builder
	b.Grow(*size + 64)

	words := 0
	for b.Len() < *size {
		if words > 0 && words%100 == 50 {
			b.WriteString(*present)
		} else {
			b.WriteString(wordPool[rng.Intn(len(wordPool))])
		}
		words++

		switch {
		case words%13 == 0:
			b.WriteString(".\n")
		case words%7 == 0:
			b.WriteString(", ")
		default:
			b.WriteString(" ")
		}
	}
	b.WriteString(*present)
	b.WriteString(".\n")

	return b.String()
}
