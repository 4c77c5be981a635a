package codeops

import (
	"fmt"
	"go/format"
	"sync"

	"golang.org/x/tools/imports"

	"github.com/ThreatConnect-Inc/tcex-util/config"
)

// imports.Process keys local-group detection off a package-level variable
// rather than its Options struct, so the set-and-process pair must be
// serialized.
var importsMu sync.Mutex

// FormatCode runs src through the standard formatting pipeline: gofmt
// first, then goimports-style import grouping and sorting. set controls
// the import pass; see config.Defaults for the baseline.
//
// The two passes mirror the order a formatter-then-import-sorter toolchain
// applies them, so the import pass always sees canonically formatted input.
func FormatCode(src []byte, set config.Settings) ([]byte, error) {
	formatted, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("format source: %w", err)
	}

	importsMu.Lock()
	imports.LocalPrefix = set.Format.LocalPrefix
	out, err := imports.Process("src.go", formatted, &imports.Options{
		Comments:   true,
		TabWidth:   set.Format.TabWidth,
		TabIndent:  set.Format.TabIndent,
		FormatOnly: set.Format.FormatOnly,
	})
	importsMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("sort imports: %w", err)
	}
	return out, nil
}
