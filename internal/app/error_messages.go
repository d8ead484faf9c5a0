// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the web
// handlers.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgAuthFailure is the body of the login failure page.
	MsgAuthFailure = "Something went wrong"

	// MsgRegistrationRequired is logged when a new identity is sent to the
	// registration form.
	MsgRegistrationRequired = "registration required"

	// MsgUserLoggedIn is logged after a successful login.
	MsgUserLoggedIn = "user logged in"

	// MsgUserRegistered is logged after a successful registration.
	MsgUserRegistered = "user registered"
)
