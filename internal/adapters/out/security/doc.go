// Package security implements the credential ports: argon2 password hashing and
// HS256 JWT bearer tokens.
package security
