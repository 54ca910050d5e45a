package services

import (
	"context"
	"time"

	"github.com/mordilloSan/go-logger/logger"
)

// DirScanner runs a fresh Traverser, with its own deadline, for every scan.
type DirScanner struct {
	opts          TraverseOptions
	ignoreBackups bool
	patterns      []string
}

// NewDirScanner keeps opts for every scan except the filters, which are
// rebuilt from the request so hidden entries can be toggled.
func NewDirScanner(opts TraverseOptions, ignoreBackups bool, patterns []string) *DirScanner {
	return &DirScanner{
		opts:          opts,
		ignoreBackups: ignoreBackups,
		patterns:      append([]string(nil), patterns...),
	}
}

func (scanner *DirScanner) Scan(ctx context.Context, req ScanRequest) (ScanResult, error) {
	if err := ctx.Err(); err != nil {
		return ScanResult{}, err
	}
	opts := scanner.opts
	opts.Filters = BuildFilters(req.ShowHidden, scanner.ignoreBackups, scanner.patterns)

	start := time.Now()
	traverser := NewTraverser(opts)
	items, err := traverser.Collect(req.RootPath)
	result := ScanResult{
		RootPath: req.RootPath,
		Items:    items,
		Problems: traverser.Problems(),
		Duration: time.Since(start),
	}
	if err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return ScanResult{}, err
	}
	logger.DebugKV("scan finished", "path", req.RootPath, "items", len(items), "duration", result.Duration)
	return result, nil
}
