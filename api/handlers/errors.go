// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"feedreader-api/core/errors"
)

// AnonymousUser is the identity used when no X-User-ID header is sent
const AnonymousUser = "anonymous"

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsNotFound(err):
		return huma.Error404NotFound(err.Error())
	case errors.IsValidation(err):
		return huma.Error400BadRequest(err.Error())
	case errors.IsFetch(err):
		// the source never produced a payload
		return huma.Error502BadGateway("failed to fetch feed", err)
	}

	return huma.Error500InternalServerError("Internal server error")
}

// toAddFeedError is toHumaError with the user-facing wording for subscriptions
func toAddFeedError(err error) error {
	if errors.IsFetch(err) {
		return huma.Error502BadGateway("failed to add feed", err)
	}
	return toHumaError(err)
}

func userOrAnonymous(userID string) string {
	if userID == "" {
		return AnonymousUser
	}
	return userID
}
