package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-corpus/cmd/corpus/internal/bootstrap"
	corpuscmd "github.com/goliatone/go-corpus/internal/commands/corpus"
	"github.com/goliatone/go-corpus/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	code, err := runLint(os.Args[1:])
	if err != nil {
		log.Fatalf("corpus lint: %v", err)
	}
	os.Exit(code)
}

func runLint(args []string) (int, error) {
	fs := flag.NewFlagSet("corpus-lint", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown corpus root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	directory := fs.String("directory", ".", "Directory to lint, relative to the corpus root")
	draftsAsWarnings := fs.Bool("drafts-as-warnings", false, "Downgrade findings on draft articles to warnings")
	logLevel := fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", "console", "Log format (console, json, pretty)")

	if err := fs.Parse(args); err != nil {
		return 1, err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Pattern:    *pattern,
		Recursive:  true,
		LogLevel:   *logLevel,
		LogFormat:  *logFormat,
	})
	if err != nil {
		return 1, fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Module.Close()

	var report *interfaces.LintReport
	handler := corpuscmd.NewLintDirectoryHandler(module.Lint, module.Logger, func(r *interfaces.LintReport) {
		report = r
	})

	cmd := corpuscmd.LintDirectoryCommand{
		Directory:        *directory,
		Pattern:          *pattern,
		DraftsAsWarnings: *draftsAsWarnings || module.Module.Config().Lint.DraftsAsWarnings,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return 1, fmt.Errorf("execute lint command: %w", err)
	}
	if report == nil {
		return 1, fmt.Errorf("lint produced no report")
	}

	printReport(report)
	if report.Failed() {
		return 1, nil
	}
	return 0, nil
}

func printReport(report *interfaces.LintReport) {
	for _, finding := range report.Findings {
		fmt.Printf("%s: %s [%s] %s\n", finding.Severity, finding.Path, finding.Rule, finding.Message)
	}
	fmt.Printf("Scanned %d file(s), %d finding(s)\n", report.Scanned, len(report.Findings))
}
