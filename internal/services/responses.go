package services

import (
	"time"

	"lss/internal/domain"
)

type ScanResult struct {
	RootPath string
	Items    []*domain.Item
	Problems []error
	Duration time.Duration
}

// Incomplete counts the directory items the walk did not finish.
func (result ScanResult) Incomplete() int {
	count := 0
	for _, item := range result.Items {
		if !item.Complete() {
			count++
		}
	}
	return count
}
