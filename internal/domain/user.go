package domain

// User is the open record describing the logged-in identity. The
// application only inspects a couple of well-known keys loosely, so the
// record stays schema-agnostic.
type User map[string]any

const (
	UserKeyName      = "name"
	UserKeyCreatedAt = "created_at"
)

func (u User) IsZero() bool {
	return len(u) == 0
}

func (u User) Clone() User {
	if u == nil {
		return nil
	}

	clone := make(User, len(u))
	for key, value := range u {
		clone[key] = value
	}
	return clone
}

// Name returns the display name when the record carries one.
func (u User) Name() string {
	if name, ok := u[UserKeyName].(string); ok {
		return name
	}
	return ""
}
