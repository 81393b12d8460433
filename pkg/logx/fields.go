package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldBeerID          = "beer-id"
	FieldBeerName        = "beer-name"
	FieldBeerVersion     = "beer-version"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldStorageDriver   = "storage-driver"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
