// cleaner-compare times every available cleaner over the same dataset.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jmylchreest/tweetprep/internal/dataset"
	"github.com/jmylchreest/tweetprep/pkg/cleaner"
	"github.com/jmylchreest/tweetprep/pkg/fetcher"
)

var chain = flag.String("chain", "", "also time a custom chain of comma-separated cleaner names (e.g. html-text,unicode-fold,baseline)")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cleaner-compare [options] <csv-url-or-file>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	input := flag.Arg(0)
	var texts []string
	var err error

	if strings.HasPrefix(input, "http") {
		texts, err = fetchCSV(input)
	} else {
		texts, err = dataset.Load(input, dataset.WithColumns(dataset.TextColumns...), dataset.WithSkipInvalid())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	inputChars := 0
	for _, t := range texts {
		inputChars += utf8.RuneCountInString(t)
	}

	fmt.Printf("Input: %d texts, %d chars\n\n", len(texts), inputChars)
	fmt.Printf("%-36s %10s %8s %12s\n", "Cleaner", "Output", "Reduce%", "Time")
	fmt.Printf("%-36s %10s %8s %12s\n", "-------", "------", "-------", "----")

	patterns := cleaner.CompilePatterns()
	cleaners := []cleaner.Cleaner{
		cleaner.NewNoop(),
		cleaner.NewUnicodeFold(),
		cleaner.NewHTMLText(),
		cleaner.NewBaseline(),
		cleaner.NewOptimized(patterns),
		// Chains
		cleaner.NewChain(cleaner.NewUnicodeFold(), cleaner.NewOptimized(patterns)),
		cleaner.NewChain(cleaner.NewHTMLText(), cleaner.NewOptimized(patterns)),
		cleaner.NewChain(cleaner.NewHTMLText(), cleaner.NewUnicodeFold(), cleaner.NewOptimized(patterns)),
	}

	if *chain != "" {
		custom, err := buildChain(*chain, patterns)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cleaners = append(cleaners, custom)
	}

	for _, c := range cleaners {
		start := time.Now()
		outputChars, err := cleanAll(c, texts)
		duration := time.Since(start)

		if err != nil {
			fmt.Printf("%-36s %10s %8s %12v (error: %v)\n",
				c.Name(), "ERROR", "-", duration.Round(time.Microsecond), err)
			continue
		}

		reduction := 0.0
		if inputChars > 0 {
			reduction = float64(inputChars-outputChars) / float64(inputChars) * 100
		}
		fmt.Printf("%-36s %10d %7.1f%% %12v\n",
			c.Name(), outputChars, reduction, duration.Round(time.Microsecond))
	}
}

// cleanAll cleans every text and returns the total output length in runes.
func cleanAll(c cleaner.Cleaner, texts []string) (int, error) {
	total := 0
	for i, t := range texts {
		out, err := c.Clean(t)
		if err != nil {
			return 0, fmt.Errorf("text %d: %w", i, err)
		}
		total += utf8.RuneCountInString(out)
	}
	return total, nil
}

func buildChain(names string, p *cleaner.Patterns) (cleaner.Cleaner, error) {
	var stages []cleaner.Cleaner
	for _, name := range strings.Split(names, ",") {
		c, err := cleaner.New(strings.TrimSpace(name), p)
		if err != nil {
			return nil, err
		}
		stages = append(stages, c)
	}
	return cleaner.NewChain(stages...), nil
}

func fetchCSV(url string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	f := fetcher.NewStatic(fetcher.StaticConfig{UserAgent: "cleaner-compare/1.0"})
	content, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return dataset.Read(bytes.NewReader(content.Body), dataset.WithColumns(dataset.TextColumns...), dataset.WithSkipInvalid())
}
