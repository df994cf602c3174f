// Package common contains shared constants and sentinel errors used across
// miniter components.
package common

// AccessTokenHeaderName is the HTTP header that carries the access token on
// protected requests. A "Bearer " prefix is accepted but not required.
const AccessTokenHeaderName = "Authorization"

// MaxPostLength is the maximum post length in runes. Longer texts are
// rejected as a client error.
const MaxPostLength = 300
