package dto

// VideoEntry is one catalog item in a bulk ingestion request. Only the first
// image URL is ever ingested; the rest of the slice is accepted and ignored,
// matching the behavior the admin tooling already relies on.
type VideoEntry struct {
	Title     string          `json:"title"`
	Category  string          `json:"category,omitempty"`
	Downloads []DownloadEntry `json:"downloads"`
	Images    []string        `json:"images"`
}

type DownloadEntry struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

type BulkUploadRequest struct {
	Videos []VideoEntry `json:"videos"`
}

type EntryError struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Error string `json:"error"`
}

// IngestionResult is the per-batch accounting: successful+failed always equals
// the number of submitted entries, and Errors is ordered by input index.
type IngestionResult struct {
	Successful int          `json:"successful"`
	Failed     int          `json:"failed"`
	Errors     []EntryError `json:"errors"`
}

type BulkUploadResponse struct {
	Success bool            `json:"success"`
	Results IngestionResult `json:"results"`
}
