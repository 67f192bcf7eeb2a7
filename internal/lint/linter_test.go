package lint

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-corpus/internal/markdown"
	"github.com/goliatone/go-corpus/pkg/interfaces"
)

func TestLintDirectory(t *testing.T) {
	svc := newTestLinter(t)

	report, err := svc.LintDirectory(context.Background(), ".", interfaces.LintOptions{})
	if err != nil {
		t.Fatalf("lint directory: %v", err)
	}

	if report.Scanned != 9 {
		t.Fatalf("expected 9 scanned files, got %d", report.Scanned)
	}
	if !report.Failed() {
		t.Fatal("expected report to fail with error findings")
	}

	byRule := groupFindings(report)

	if len(byRule[RuleParse]) != 1 || byRule[RuleParse][0].Path != "bad-yaml.md" {
		t.Fatalf("expected one parse finding for bad-yaml.md, got %+v", byRule[RuleParse])
	}
	if len(byRule[RuleSchema]) != 1 || byRule[RuleSchema][0].Path != "missing-date.md" {
		t.Fatalf("expected one schema finding for missing-date.md, got %+v", byRule[RuleSchema])
	}
	if len(byRule[RuleSlug]) != 1 || byRule[RuleSlug][0].Path != "bad-slug.md" {
		t.Fatalf("expected one slug finding for bad-slug.md, got %+v", byRule[RuleSlug])
	}
	if len(byRule[RuleSlugUnique]) != 1 || byRule[RuleSlugUnique][0].Path != "dup-b.md" {
		t.Fatalf("expected the second slug claimant to be flagged, got %+v", byRule[RuleSlugUnique])
	}

	anchors := byRule[RuleAnchor]
	if len(anchors) != 2 {
		t.Fatalf("expected 2 anchor findings, got %+v", anchors)
	}
	anchorPaths := map[string]bool{}
	for _, finding := range anchors {
		anchorPaths[finding.Path] = true
	}
	if !anchorPaths["guides/broken-links.md"] || !anchorPaths["draft-broken.md"] {
		t.Fatalf("unexpected anchor finding paths: %v", anchorPaths)
	}

	links := byRule[RuleRelativeLink]
	if len(links) != 2 {
		t.Fatalf("expected 2 relative link findings, got %+v", links)
	}
	var sawMissing, sawEscape bool
	for _, finding := range links {
		if finding.Path != "guides/broken-links.md" {
			t.Fatalf("unexpected relative link finding path %q", finding.Path)
		}
		if strings.Contains(finding.Message, "missing-guide.md") {
			sawMissing = true
		}
		if strings.Contains(finding.Message, "escapes") {
			sawEscape = true
		}
	}
	if !sawMissing || !sawEscape {
		t.Fatalf("expected missing-target and corpus-escape findings, got %+v", links)
	}
}

func TestLintDirectoryDraftsAsWarnings(t *testing.T) {
	svc := newTestLinter(t)

	report, err := svc.LintDirectory(context.Background(), ".", interfaces.LintOptions{DraftsAsWarnings: true})
	if err != nil {
		t.Fatalf("lint directory: %v", err)
	}

	for _, finding := range report.Findings {
		if finding.Path == "draft-broken.md" && finding.Severity != interfaces.SeverityWarning {
			t.Fatalf("expected draft finding downgraded to warning, got %+v", finding)
		}
		if finding.Path == "bad-slug.md" && finding.Severity != interfaces.SeverityError {
			t.Fatalf("published findings must stay errors, got %+v", finding)
		}
	}
}

func TestLintDirectoryPatternOverride(t *testing.T) {
	svc := newTestLinter(t)

	report, err := svc.LintDirectory(context.Background(), ".", interfaces.LintOptions{Pattern: "dup-*.md"})
	if err != nil {
		t.Fatalf("lint directory: %v", err)
	}
	if report.Scanned != 2 {
		t.Fatalf("expected pattern to narrow the scan to 2 files, got %d", report.Scanned)
	}
	byRule := groupFindings(report)
	if len(byRule[RuleSlugUnique]) != 1 {
		t.Fatalf("expected the duplicate slug finding to survive, got %+v", report.Findings)
	}
}

func TestLintDocument(t *testing.T) {
	svc := newTestLinter(t)

	source := []byte(`---
title: Inline Document
date: 2024-02-02T00:00:00Z
---

# Inline Document

Jump to [details](#details) and to [nowhere](#nowhere).

## Details

Body text.
`)
	doc, err := markdown.BuildDocument("inline.md", source, time.Now())
	if err != nil {
		t.Fatalf("build document: %v", err)
	}

	findings, err := svc.LintDocument(context.Background(), doc)
	if err != nil {
		t.Fatalf("lint document: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected a single finding, got %+v", findings)
	}
	if findings[0].Rule != RuleAnchor || !strings.Contains(findings[0].Message, "#nowhere") {
		t.Fatalf("expected the unresolved anchor to be flagged, got %+v", findings[0])
	}
}

func newTestLinter(t *testing.T) *Service {
	t.Helper()

	svc, err := NewService(Config{
		BasePath:  "testdata/corpus",
		Pattern:   "*.md",
		Recursive: true,
	}, nil)
	if err != nil {
		t.Fatalf("new lint service: %v", err)
	}
	return svc
}

func groupFindings(report *interfaces.LintReport) map[string][]interfaces.LintFinding {
	byRule := map[string][]interfaces.LintFinding{}
	for _, finding := range report.Findings {
		byRule[finding.Rule] = append(byRule[finding.Rule], finding)
	}
	return byRule
}
