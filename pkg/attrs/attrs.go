// Package attrs reads the alternating key/value pairs passed to audit log calls,
// so one argument list feeds both the log line and the published event.
package attrs

import (
	"fmt"

	id "lscmis/pkg/domain"
)

// Keys shared by the audit emitters and their readers.
const (
	KeyUserID   = "user_id"
	KeyCenterID = "center_id"
	KeySubject  = "subject"
	KeyEmail    = "email"
	KeyDecision = "decision"
	KeyReason   = "reason"
)

// String returns the value stored under key in kv ([k1, v1, k2, v2, ...]). Typed ids
// and other fmt.Stringer values are rendered. Missing keys and other value types
// yield "".
func String(kv []any, key string) string {
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); !ok || k != key {
			continue
		}
		switch v := kv[i+1].(type) {
		case string:
			return v
		case fmt.Stringer:
			return v.String()
		}
		return ""
	}
	return ""
}

// UserID parses the user_id pair. Absent or malformed values give the nil id.
func UserID(kv []any) id.UserID {
	userID, err := id.ParseUserID(String(kv, KeyUserID))
	if err != nil {
		return id.UserID{}
	}
	return userID
}

// Subject names what an event acted on: an explicit subject, else the center, else
// the user.
func Subject(kv []any) string {
	for _, key := range []string{KeySubject, KeyCenterID, KeyUserID} {
		if v := String(kv, key); v != "" {
			return v
		}
	}
	return ""
}
