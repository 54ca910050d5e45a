package ui

import "lss/internal/services"

type scanResultMsg struct {
	scanID int
	result services.ScanResult
	err    error
	focus  string
}
