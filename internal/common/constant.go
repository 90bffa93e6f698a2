package common

// AuthorizationHeader is the HTTP header carrying the bearer token on
// authenticated requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix is the expected scheme prefix of the Authorization header.
const BearerPrefix = "Bearer"
