package eventlog

// JSON payload field keys
const (
	PayloadKeyUserID  = "user_id"
	PayloadKeyOwnerID = "owner_id"
)

// Log messages - service events
const (
	LogMsgEventPayloadNotMap = "Event payload could not be flattened, skipping log"
	LogMsgFailedToLogEvent   = "Failed to log event to database"
	LogMsgEventLogged        = "Event logged to database"
)

// Log field keys - structured logging fields
const (
	LogFieldType   = "type"
	LogFieldUserID = "user_id"
	LogFieldError  = "error"
)
