package services

import (
	"context"
	"fmt"
)

// MockScanner serves canned results keyed by root path and records requests.
type MockScanner struct {
	Results  map[string]ScanResult
	Requests []ScanRequest
}

func NewMockScanner() *MockScanner {
	return &MockScanner{Results: make(map[string]ScanResult)}
}

func (scanner *MockScanner) Scan(ctx context.Context, req ScanRequest) (ScanResult, error) {
	scanner.Requests = append(scanner.Requests, req)
	if err := ctx.Err(); err != nil {
		return ScanResult{}, err
	}
	result, ok := scanner.Results[req.RootPath]
	if !ok {
		return ScanResult{}, NewError(OpReadDir, req.RootPath, fmt.Errorf("no mock result"))
	}
	result.RootPath = req.RootPath
	return result, nil
}
