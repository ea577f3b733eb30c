package gateway

import "strings"

// normalization lists the rewrites applied to an operation's inputs before
// they reach the backend. The inbound values are never changed.
type normalization struct {
	// userID rewrites the user identifier.
	userID func(string) string
	// grant is the fixed flag sent with role updates.
	grant bool
}

var normalizations = map[Operation]normalization{
	OpUpdateUserRole: {userID: strings.ToUpper, grant: true},
}

// normalizedUserID returns userID as the backend expects it for op.
func normalizedUserID(op Operation, userID string) string {
	if n, ok := normalizations[op]; ok && n.userID != nil {
		return n.userID(userID)
	}
	return userID
}

// grantFor returns the fixed grant flag of op.
func grantFor(op Operation) bool {
	return normalizations[op].grant
}
