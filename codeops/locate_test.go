package codeops

import (
	"regexp"
	"strings"
	"testing"
)

const demoSrc = `package demo

import "fmt"

const answer = 42

type alpha struct {
	name string
}

func (a alpha) Name() string {
	return a.name
}

type beta struct {
	name string
}

func (b beta) Name() string {
	return fmt.Sprintf("beta %s", b.name)
}
`

func TestFindLineInCodeReturnsTrimmedLine(t *testing.T) {
	line, ok, err := FindLineInCode(regexp.MustCompile(`func \(a alpha\) Name`), demoSrc, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a match")
	}
	if line != "func (a alpha) Name() string {" {
		t.Fatalf("unexpected line: %q", line)
	}
}

func TestFindLineInCodeNormalizesFormatting(t *testing.T) {
	// Irregular spacing in the input must not defeat the needle: the
	// scan runs over the re-rendered form, not the original text.
	src := "package demo\n\nfunc messy()string{return \"x\"}\n"
	line, ok, err := FindLineInCode(regexp.MustCompile(`func messy\(\) string`), src, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a match against the normalized rendering")
	}
	if !strings.HasPrefix(line, "func messy() string") {
		t.Fatalf("unexpected line: %q", line)
	}
}

func TestFindLineInCodeFirstLineMatchesWithoutTrigger(t *testing.T) {
	line, ok, err := FindLineInCode(regexp.MustCompile(`package demo`), demoSrc, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || line != "package demo" {
		t.Fatalf("expected first line to match, got %q ok=%v", line, ok)
	}
}

func TestFindLineInCodeTriggerStartGatesSearch(t *testing.T) {
	line, ok, err := FindLineInCode(
		regexp.MustCompile(`func `),
		demoSrc,
		regexp.MustCompile(`type beta`),
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a match after the trigger")
	}
	if line != "func (b beta) Name() string {" {
		t.Fatalf("matched the wrong block: %q", line)
	}
}

func TestFindLineInCodeTriggerStartNeverMatches(t *testing.T) {
	_, ok, err := FindLineInCode(
		regexp.MustCompile(`func `),
		demoSrc,
		regexp.MustCompile(`type gamma`),
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("gate never armed, needle must not match")
	}
}

func TestFindLineInCodeTriggerStopBoundsSearch(t *testing.T) {
	// Arm on alpha, stop at the next type declaration: beta's method is
	// out of the window even though it matches the needle.
	_, ok, err := FindLineInCode(
		regexp.MustCompile(`func \(b beta\)`),
		demoSrc,
		regexp.MustCompile(`type alpha`),
		regexp.MustCompile(`type `),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("stop trigger fired first, expected no match")
	}
}

func TestFindLineInCodeSkipsStringArtifactLines(t *testing.T) {
	src := "package demo\n\nvar _ = \"alpha\" +\n\t\"beta\"\n"
	re := regexp.MustCompile(`\s*"beta"`)
	_, ok, err := FindLineInCode(re, src, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("quote-prefixed line must be skipped")
	}
	// The raw-text variant has no such skip, proving the line exists.
	if _, ok := FindLineNumber(re, src, nil, nil); !ok {
		t.Fatalf("raw scan should see the string continuation line")
	}
}

func TestFindLineInCodePropagatesParseError(t *testing.T) {
	_, ok, err := FindLineInCode(regexp.MustCompile(`x`), "not go source", nil, nil)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if ok {
		t.Fatalf("parse failure must not report a match")
	}
	if !strings.Contains(err.Error(), "parse source") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFindLineNumberScenarioA(t *testing.T) {
	n, ok := FindLineNumber(regexp.MustCompile(`bar`), "a\nfoo\nb\nbar\n", nil, nil)
	if !ok {
		t.Fatalf("expected a match")
	}
	if n != 4 {
		t.Fatalf("line number mismatch: got %d want 4", n)
	}
}

func TestFindLineNumberScenarioB(t *testing.T) {
	// "a" on line 1 precedes the trigger and is never retested.
	n, ok := FindLineNumber(regexp.MustCompile(`a`), "a\nfoo\nb\nbar\n", regexp.MustCompile(`foo`), nil)
	if ok {
		t.Fatalf("expected no match, got line %d", n)
	}
}

func TestFindLineNumberScenarioC(t *testing.T) {
	contents := strings.Join([]string{
		"class X:",
		"    def x(self):",
		"        pass",
		"class Z:",
		"    def y(self):",
		"        pass",
	}, "\n")
	n, ok := FindLineNumber(
		regexp.MustCompile(`\s+def y`),
		contents,
		regexp.MustCompile(`class X`),
		regexp.MustCompile(`class `),
	)
	if ok {
		t.Fatalf("needle inside the second class must not match, got line %d", n)
	}
}

func TestFindLineNumberCountsSkippedBlankLines(t *testing.T) {
	n, ok := FindLineNumber(regexp.MustCompile(`bar`), "foo\n\n\nbar\n", nil, nil)
	if !ok {
		t.Fatalf("expected a match")
	}
	if n != 4 {
		t.Fatalf("blank lines must keep their numbers: got %d want 4", n)
	}
}

func TestFindLineNumberTriggerLineNotRetested(t *testing.T) {
	n, ok := FindLineNumber(regexp.MustCompile(`foo`), "foo\nbar\n", regexp.MustCompile(`foo`), nil)
	if ok {
		t.Fatalf("trigger line must be consumed, got line %d", n)
	}
}

func TestFindLineNumberStopIgnoredWhileDisarmed(t *testing.T) {
	contents := "stop here\nstart\nneedle\n"
	n, ok := FindLineNumber(
		regexp.MustCompile(`needle`),
		contents,
		regexp.MustCompile(`start`),
		regexp.MustCompile(`stop`),
	)
	if !ok {
		t.Fatalf("stop trigger before arming must be ignored")
	}
	if n != 3 {
		t.Fatalf("line number mismatch: got %d want 3", n)
	}
}

func TestFindLineNumberStopEndsArmedSearch(t *testing.T) {
	contents := "start\nfiller\nstop\nneedle\n"
	n, ok := FindLineNumber(
		regexp.MustCompile(`needle`),
		contents,
		regexp.MustCompile(`start`),
		regexp.MustCompile(`stop`),
	)
	if ok {
		t.Fatalf("armed stop trigger must end the search, got line %d", n)
	}
}

func TestFindLineNumberMatchMustStartAtColumnZero(t *testing.T) {
	// re.match semantics: a needle occurring mid-line is not a match.
	n, ok := FindLineNumber(regexp.MustCompile(`bar`), "foobar\nbar\n", nil, nil)
	if !ok {
		t.Fatalf("expected a match")
	}
	if n != 2 {
		t.Fatalf("mid-line occurrence must not match: got %d want 2", n)
	}
}
