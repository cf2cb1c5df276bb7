package bootstrap

// File system permissions
const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// Logger configuration
const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting idle hunt service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized       = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir    = "failed to create dead-letter directory"
	LogMsgFailedCreateDeadLetterWriter = "failed to create dead-letter writer"
	LogMsgMetricsCollectorRegistered   = "Metrics collector registered"
	LogMsgEventLoggerInitialized       = "Event logger initialized"
	ErrMsgFailedRegisterMetrics        = "failed to register metrics collector"
	ErrMsgFailedSubscribeEventLogger   = "failed to subscribe event logger"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgShuttingDownScheduler = "Shutting down scheduler..."
	LogMsgShuttingDownWorkers   = "Shutting down worker pool..."
	LogMsgClosingDeadLetter     = "Closing dead-letter writer..."
	LogMsgServerStopped         = "Server stopped"
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgDeadLetterCloseFailed = "Dead-letter writer close failed"
)
