// Package common contains shared constants, random helpers, and sentinel
// errors used across RMS client and server components.
package common

// AuthHeaderName is the HTTP header used to carry the access token on
// outbound requests.
const AuthHeaderName = "Authorization"

// BearerScheme is the authorization scheme prefix expected by the server.
const BearerScheme = "Bearer"
