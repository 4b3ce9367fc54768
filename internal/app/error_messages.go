// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-portfolio server handlers, middleware and the admin client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. The client matches on the same constants to turn a
// response back into a typed error, so the wording lives in one place.
package app

// Root and build info.
const (
	// MsgGreeting is the body message of GET /.
	MsgGreeting = "Hello World with CORS & Nodemon!"

	// MsgNotFound is returned for unknown routes and for a known route
	// requested with an unsupported method.
	MsgNotFound = "Not found."
)

// Authentication and registration.
const (
	// MsgProvideEmailAndPassword is returned when a login body lacks the
	// email or the password.
	MsgProvideEmailAndPassword = "Please provide email and password"

	// MsgInvalidCredentials is returned for an unknown email and a wrong
	// password alike.
	MsgInvalidCredentials = "Invalid Credentials"

	// MsgAccessDenied is returned when valid credentials belong to a
	// non-admin account, and when a write is attempted with a non-admin
	// token.
	MsgAccessDenied = "Access denied. You are not an administrator."

	// MsgAdminLoginSuccessful is the message of a successful admin login.
	MsgAdminLoginSuccessful = "Admin login successful"

	// MsgServerError is the generic login failure message.
	MsgServerError = "Server error"

	// MsgEmailAndPasswordRequired is returned when a register body lacks
	// the email or the password.
	MsgEmailAndPasswordRequired = "Email and password are required."

	// MsgUserCreated is the message of a successful registration.
	MsgUserCreated = "User created successfully."

	// MsgEmailAlreadyRegistered is returned when the email is taken.
	MsgEmailAlreadyRegistered = "This email is already registered."

	// MsgCouldNotSaveUser is returned when registration fails for any
	// other reason.
	MsgCouldNotSaveUser = "Server error: Could not save the user."

	// MsgAdminRegistrationDisabled is returned when the server refuses to
	// create admin accounts.
	MsgAdminRegistrationDisabled = "Admin registration is disabled."

	// MsgEmailRequired is returned by the role lookup without an email.
	MsgEmailRequired = "Email is required."

	// MsgUserNotFound is returned by the role lookup for an unknown email.
	MsgUserNotFound = "User not found."

	// MsgUserIsAdmin and MsgUserIsNotAdmin are the role lookup outcomes.
	MsgUserIsAdmin    = "User is an admin."
	MsgUserIsNotAdmin = "User is not an admin."

	// MsgServerErrorDot is the generic role lookup failure message.
	MsgServerErrorDot = "Server error."

	// MsgTokenRequired is returned when a write arrives without a bearer
	// token.
	MsgTokenRequired = "Authorization token is required."

	// MsgTokenIsExpiredOrInvalid is returned when the bearer token cannot
	// be verified or has expired.
	MsgTokenIsExpiredOrInvalid = "Token is expired or invalid."

	// MsgTooManyRequests is returned by the login rate limiter.
	MsgTooManyRequests = "Too many requests. Please try again later."
)

// Content sections.
const (
	// MsgSectionNotFound is returned for a section name outside the known set.
	MsgSectionNotFound = "Section not found."

	// MsgSectionSaved is the message of a successful section write.
	MsgSectionSaved = "Section saved successfully."

	// MsgSectionVersionConflict is returned when If-Match names a version
	// that is no longer current.
	MsgSectionVersionConflict = "Section was modified by another save. Reload and try again."

	// MsgInvalidSectionBody is returned when a section body is not a JSON
	// object.
	MsgInvalidSectionBody = "Section data must be a JSON object."

	// MsgInvalidIfMatch is returned when If-Match is not a version stamp.
	MsgInvalidIfMatch = "If-Match must carry a section version."

	// MsgSectionSaveFailed is returned when a section write fails
	// unexpectedly.
	MsgSectionSaveFailed = "Server error while saving the section."

	// MsgSectionLoadFailed is returned when a section read fails
	// unexpectedly.
	MsgSectionLoadFailed = "Server error while loading the section."
)

// Projects.
const (
	// MsgProjectCreated is the message of a successful project creation.
	MsgProjectCreated = "Project created successfully."

	// MsgProjectNotFound is returned when the project id does not exist.
	MsgProjectNotFound = "Project not found."

	// MsgProjectUpdated is the message of a successful project update.
	MsgProjectUpdated = "Project updated successfully."

	// MsgProjectUpdateFailed is returned when an update fails unexpectedly.
	MsgProjectUpdateFailed = "Server error during project update."

	// MsgProjectDeleted is the message of a successful project deletion.
	MsgProjectDeleted = "Project deleted successfully."

	// MsgProjectDeleteFailed is returned when a deletion fails unexpectedly.
	MsgProjectDeleteFailed = "Server error during project deletion."

	// MsgProjectCreateFailed is returned when a creation fails unexpectedly.
	MsgProjectCreateFailed = "Server error during project creation."

	// MsgProjectListFailed is returned when listing fails unexpectedly.
	MsgProjectListFailed = "Server error while fetching projects."

	// MsgInvalidJSON is returned when a body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON body."
)
