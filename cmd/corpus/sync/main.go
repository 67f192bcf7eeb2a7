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
	if err := runSync(os.Args[1:]); err != nil {
		log.Fatalf("corpus sync: %v", err)
	}
}

func runSync(args []string) error {
	fs := flag.NewFlagSet("corpus-sync", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown corpus root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	directory := fs.String("directory", ".", "Directory to sync, relative to the corpus root")
	indexPath := fs.String("index", "corpus.db", "Path to the SQLite article index")
	deleteOrphaned := fs.Bool("delete-orphaned", false, "Remove indexed articles whose markdown files are gone")
	dryRun := fs.Bool("dry-run", false, "Preview changes without writing to the index")
	includeDrafts := fs.Bool("include-drafts", false, "Index draft articles as well")
	logLevel := fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", "console", "Log format (console, json, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Pattern:    *pattern,
		Recursive:  true,
		IndexPath:  *indexPath,
		LogLevel:   *logLevel,
		LogFormat:  *logFormat,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Module.Close()

	var result *interfaces.SyncResult
	handler := corpuscmd.NewSyncDirectoryHandler(module.Corpus, module.Logger, func(r *interfaces.SyncResult) {
		result = r
	})

	cmd := corpuscmd.SyncDirectoryCommand{
		Directory:      *directory,
		Pattern:        *pattern,
		DeleteOrphaned: *deleteOrphaned,
		DryRun:         *dryRun,
		IncludeDrafts:  *includeDrafts,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		if result != nil {
			printResult(result, *dryRun)
		}
		return fmt.Errorf("execute sync command: %w", err)
	}
	if result == nil {
		return fmt.Errorf("sync produced no result")
	}

	printResult(result, *dryRun)
	return nil
}

func printResult(result *interfaces.SyncResult, dryRun bool) {
	label := "Synced"
	if dryRun {
		label = "Would sync"
	}
	fmt.Printf("%s: %d created, %d updated, %d skipped, %d deleted\n",
		label, result.Created, result.Updated, result.Skipped, result.Deleted)
	for _, syncErr := range result.Errors {
		fmt.Printf("error: %v\n", syncErr)
	}
}
