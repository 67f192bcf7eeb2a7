package articles

import "testing"

const statsFixture = `# Liquidity Pools

Automated market makers replace order books with pooled reserves.

## Pricing

The constant product invariant keeps the pool balanced. Use ` + "`x * y = k`" + ` as the rule.

` + "```python\nprint(\"not prose\")\n```" + `

` + "```python\nreserve = pool.reserve\n```" + `

` + "```\nplain block\n```" + `
`

func TestComputeStats(t *testing.T) {
	stats := ComputeStats([]byte(statsFixture), 200)

	if stats.Headings != 2 {
		t.Fatalf("expected 2 headings, got %d", stats.Headings)
	}
	if stats.Languages["python"] != 2 {
		t.Fatalf("expected 2 python snippets, got %d", stats.Languages["python"])
	}
	if stats.Languages["plain"] != 1 {
		t.Fatalf("expected 1 plain snippet, got %d", stats.Languages["plain"])
	}
	if stats.WordCount == 0 {
		t.Fatal("expected non-zero word count")
	}
	if stats.ReadingMins != 1 {
		t.Fatalf("expected 1 reading minute, got %d", stats.ReadingMins)
	}
}

func TestComputeStatsExcludesCode(t *testing.T) {
	prose := []byte("One two three four.")
	withCode := []byte("One two three four.\n\n```go\nfunc ignored() { notCounted() }\n```\n")

	base := ComputeStats(prose, 200)
	coded := ComputeStats(withCode, 200)

	if base.WordCount != coded.WordCount {
		t.Fatalf("code block changed word count: %d vs %d", base.WordCount, coded.WordCount)
	}
}

func TestComputeStatsReadingTime(t *testing.T) {
	body := make([]byte, 0, 4096)
	for i := 0; i < 450; i++ {
		body = append(body, []byte("word ")...)
	}

	stats := ComputeStats(body, 200)
	if stats.ReadingMins != 3 {
		t.Fatalf("expected 3 reading minutes for 450 words at 200wpm, got %d", stats.ReadingMins)
	}

	stats = ComputeStats(body, 0)
	if stats.ReadingMins != 3 {
		t.Fatalf("expected default reading speed fallback, got %d minutes", stats.ReadingMins)
	}
}
