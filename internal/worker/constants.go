package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Overdue Sweep
// ============================================================================

// Log messages for the overdue loan sweep
const (
	LogMsgOverdueSweepStarting = "Overdue sweep starting"
	LogMsgOverdueSweepFailed   = "Overdue sweep failed"
	LogMsgOverdueSweepComplete = "Overdue sweep complete"
	LogMsgLoanOverdue          = "Loan is overdue"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
