// Package codeops provides source-code helpers: locating lines inside Go
// source via normalize-then-scan pattern matching, and a gofmt/goimports
// formatting pipeline.
package codeops

import (
	"bytes"
	"fmt"
	"go/parser"
	"go/printer"
	"go/token"
	"regexp"
	"strings"
)

// gate is the two-state control for a scan window. A disarmed scan only
// looks for the start trigger; an armed scan tests the needle and the stop
// trigger.
type gate int

const (
	gateDisarmed gate = iota
	gateArmed
)

// FindLineInCode returns the first line of the normalized form of code that
// matches needle, trimmed of surrounding whitespace. The boolean is false
// when no line matched.
//
// code must be parseable Go source; it is parsed and re-rendered before
// scanning so that every statement has one canonical textual shape
// regardless of the original formatting. Parse failures are returned to the
// caller unmasked.
//
// triggerStart and triggerStop are optional (nil disables them). When
// triggerStart is set, needle matching is disabled until a line matches it;
// the triggering line itself is never tested against needle. When
// triggerStop matches an eligible line after the search is armed, the scan
// ends with no result, bounding the search to one block.
func FindLineInCode(needle *regexp.Regexp, code string, triggerStart, triggerStop *regexp.Regexp) (string, bool, error) {
	normalized, err := normalizeSource(code)
	if err != nil {
		return "", false, err
	}
	g := gateDisarmed
	if triggerStart == nil {
		g = gateArmed
	}
	for _, line := range strings.Split(normalized, "\n") {
		// String-literal continuation artifacts of the re-render
		// (multi-line raw strings and the like) must not participate
		// in matching.
		if first := firstNonSpace(line); first == '"' || first == '`' {
			continue
		}
		if g == gateDisarmed {
			if triggerStart != nil && matchesAtStart(triggerStart, line) {
				g = gateArmed
			}
			continue
		}
		if matchesAtStart(needle, line) {
			return strings.TrimSpace(line), true, nil
		}
		if triggerStop != nil && matchesAtStart(triggerStop, line) {
			break
		}
	}
	return "", false, nil
}

// FindLineNumber returns the 1-based line number of the first line of
// contents that matches needle. The boolean is false when no line matched.
//
// Unlike FindLineInCode this scans the raw contents with no parse step, so
// it works on arbitrary text. Blank lines are skipped for matching but
// still counted, so returned numbers always agree with the raw input.
// Trigger semantics are identical to FindLineInCode.
func FindLineNumber(needle *regexp.Regexp, contents string, triggerStart, triggerStop *regexp.Regexp) (int, bool) {
	g := gateDisarmed
	if triggerStart == nil {
		g = gateArmed
	}
	for i, line := range strings.Split(contents, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if g == gateDisarmed {
			if triggerStart != nil && matchesAtStart(triggerStart, line) {
				g = gateArmed
			}
			continue
		}
		if matchesAtStart(needle, line) {
			return i + 1, true
		}
		if triggerStop != nil && matchesAtStart(triggerStop, line) {
			break
		}
	}
	return 0, false
}

// matchesAtStart reports whether re matches line beginning at its first
// byte (Python re.match semantics: anchored at the start, not required to
// consume the whole line).
func matchesAtStart(re *regexp.Regexp, line string) bool {
	loc := re.FindStringIndex(line)
	return loc != nil && loc[0] == 0
}

func firstNonSpace(line string) byte {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return 0
	}
	return trimmed[0]
}

// normalizeSource parses src as a Go file and pretty-prints it back.
// Comments are dropped by the parse, so the output is the bare canonical
// rendering of each declaration and statement.
func normalizeSource(src string) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "src.go", src, parser.SkipObjectResolution)
	if err != nil {
		return "", fmt.Errorf("parse source: %w", err)
	}
	var buf bytes.Buffer
	cfg := printer.Config{Mode: printer.UseSpaces | printer.TabIndent, Tabwidth: 8}
	if err := cfg.Fprint(&buf, fset, file); err != nil {
		return "", fmt.Errorf("render source: %w", err)
	}
	return buf.String(), nil
}
