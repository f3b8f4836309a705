// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// users API handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgSomethingWentWrong replaces the message of unexpected failures in
	// production responses.
	MsgSomethingWentWrong = "Something went very wrong!"

	// MsgInvalidRequestBody is returned when the request body is not valid
	// JSON or cannot be decoded into the expected shape.
	MsgInvalidRequestBody = "Invalid request body"

	// MsgRequestBodyTooLarge is returned when the body exceeds the configured
	// size limit.
	MsgRequestBodyTooLarge = "Request body is too large"

	// MsgInvalidGzipData is returned when a request declares gzip encoding
	// but its body cannot be inflated.
	MsgInvalidGzipData = "Invalid gzip data"

	// MsgInvalidID is the prefix of the error returned for a non-numeric
	// user id in the path.
	MsgInvalidID = "Invalid id: "

	// MsgRouteNotFoundFormat formats the message for unknown routes; the
	// verb receives the request URI.
	MsgRouteNotFoundFormat = "Can't find %s on this server!"

	// MsgRequestTimedOut is the body written when a request exceeds the
	// server's request timeout.
	MsgRequestTimedOut = `{"status":"error","message":"Request timed out"}`
)
