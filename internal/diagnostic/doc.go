// Package diagnostic provides structured errors and warnings collected while
// validating a mapper configuration.
//
// Each diagnostic carries a stable code, the configuration path it refers to,
// and optional suggestions (for example the valid provider names).
package diagnostic
