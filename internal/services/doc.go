// Package services holds helpers shared by the external service clients.
//
// Context helpers stamp a correlation id and an operation name on a request
// context. The whisper client sends the id as X-Request-ID and the logging
// package copies both onto diagnostic records, so a server-side log line can
// be matched to the whisperctl action that caused it.
package services
