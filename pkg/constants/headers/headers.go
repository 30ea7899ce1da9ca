package headers

// These constants define the keys for headers used in API requests.
const (
	AuthorizationHeader = "Authorization" // Carries the bearer access token
	RequestIDHeader     = "X-Request-Id"  // Echoes the id assigned to the request
	ContentTypeHeader   = "Content-Type"
)

const (
	BearerPrefix    = "Bearer "
	JSONContentType = "application/json"
)
