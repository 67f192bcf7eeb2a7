package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/goliatone/go-corpus/cmd/corpus/internal/bootstrap"
	corpuscmd "github.com/goliatone/go-corpus/internal/commands/corpus"
	"github.com/goliatone/go-corpus/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runStats(os.Args[1:]); err != nil {
		log.Fatalf("corpus stats: %v", err)
	}
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("corpus-stats", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown corpus root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	directory := fs.String("directory", ".", "Directory to measure, relative to the corpus root")
	wordsPerMinute := fs.Int("words-per-minute", 0, "Reading speed used for reading-time estimates (0 keeps the default)")
	logLevel := fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", "console", "Log format (console, json, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir:     *contentDir,
		Pattern:        *pattern,
		Recursive:      true,
		WordsPerMinute: *wordsPerMinute,
		LogLevel:       *logLevel,
		LogFormat:      *logFormat,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Module.Close()

	var summary *interfaces.CorpusSummary
	handler := corpuscmd.NewSummarizeHandler(module.Corpus, module.Logger, func(s *interfaces.CorpusSummary) {
		summary = s
	})

	cmd := corpuscmd.SummarizeCommand{Directory: *directory}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute summarize command: %w", err)
	}
	if summary == nil {
		return fmt.Errorf("summarize produced no result")
	}

	printSummary(summary)
	return nil
}

func printSummary(summary *interfaces.CorpusSummary) {
	fmt.Printf("Articles: %d (%d draft)\n", summary.Articles, summary.Drafts)
	fmt.Printf("Total words: %d\n", summary.TotalWords)
	printCensus("Tags", summary.TagCounts)
	printCensus("Snippet languages", summary.SnippetLanguages)
}

func printCensus(label string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Printf("%s:\n", label)
	for _, key := range keys {
		fmt.Printf("  %s: %d\n", key, counts[key])
	}
}
