package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage         = 1
	DefaultCountPerPage = 10
	MaxCountPerPage     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderTraceID       = "trace_id"
	HeaderWebhookSecret = "X-Webhook-Secret"

	ContentTypeJSON = "application/json"

	// API prefixes
	QueryPrefix   = "/v1/query"
	CommandPrefix = "/v1/command"

	// Gin context keys
	ContextKeyParams         = "params"
	ContextKeyBody           = "body"
	ContextKeyAnalysisParams = "analysis_params"
	ContextKeyTraceID        = "trace_id"
	ContextKeySpanID         = "span_id"
	ContextKeySubject        = "subject"
	ContextKeyUserID         = "user_id"
	ContextKeyRole           = "role_type"
	ContextKeyAuthError      = "auth_error"

	// SystemWriterID is stamped into created_id/updated_id for rows written without a user.
	SystemWriterID int64 = -1

	// Y/N flag values as stored.
	FlagYes = "Y"
	FlagNo  = "N"

	// Common code group holding settlement ratios.
	CommonCodeGroupRate = "common_rate"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Not Found"
	ErrMsgTooManyRequests     = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."
)
