package constants

const (
	TaskStatusClosed = 0
	TaskStatusOpen   = 1
)
