package services

// ScanRequest asks for a fresh listing of one directory.
type ScanRequest struct {
	RootPath   string
	ShowHidden bool
}
