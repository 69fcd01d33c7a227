package token

const (
	True  = "true"
	False = "false"
	Null  = "null"
)

// IsKeyword reports whether s reads back as a bool or null when bare.
func IsKeyword(s string) bool {
	switch s {
	case True, False, Null:
		return true
	default:
		return false
	}
}
