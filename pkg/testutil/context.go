package testutil

import (
	"net/http"

	id "lscmis/pkg/domain"
	"lscmis/pkg/requestcontext"
)

// WithUserID adds a user ID to the request context.
// This simulates what the auth middleware would do for authenticated requests.
// If the userID is not a valid UUID, it will not be added to the context.
func WithUserID(req *http.Request, userID string) *http.Request {
	if parsedUserID, err := id.ParseUserID(userID); err == nil {
		return req.WithContext(requestcontext.WithUserID(req.Context(), parsedUserID))
	}
	return req
}

// WithCenterScope adds a center operator session (role LSC) to the request context.
// Invalid IDs are silently ignored.
func WithCenterScope(req *http.Request, userID, centerID string) *http.Request {
	req = WithUserID(req, userID)
	ctx := requestcontext.WithRole(req.Context(), "LSC")
	if parsedCenterID, err := id.ParseCenterID(centerID); err == nil {
		ctx = requestcontext.WithCenterID(ctx, parsedCenterID)
	}
	return req.WithContext(ctx)
}

// WithRole adds a session role to the request context.
func WithRole(req *http.Request, role string) *http.Request {
	return req.WithContext(requestcontext.WithRole(req.Context(), role))
}
