package constant

const (
	RequestParamID = "id"
)

const (
	RequestHeaderUserAgent    = "User-Agent"
	RequestHeaderContentType  = "Content-Type"
	RequestHeaderRateLimit    = "X-RateLimit-Limit"
	RequestHeaderRateLimitRem = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWin = "X-RateLimit-Window"
	RequestHeaderRequestID    = "X-Request-ID"
	RequestHeaderForwardedFor = "X-Forwarded-For"
	RequestHeaderRealIP       = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	FormFile        = "file"
)

const (
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	PqErrorCodeUniqueViolation  = "23505"
	PqErrorCodeFkViolation      = "23503"
	PqErrorCodeNotNullViolation = "23502"
)

const (
	DateFormat = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelS3ScopeName         = "s3"

	OtelQueryAttributeKey = "query"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
