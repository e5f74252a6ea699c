package constants

const (
	StatusOK         = "ok"
	StatusFailed     = "failed"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)
