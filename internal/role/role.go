package role

import "net/url"

// Role identifies which of the three surfaces a client instance is acting as.
type Role string

const (
	// Chooser is the landing surface where a device picks its role.
	Chooser Role = "chooser"
	// Staff composes celebration messages.
	Staff Role = "staff"
	// Display renders the current celebration full-screen.
	Display Role = "display"
)

// QueryParam is the single query parameter that carries the role in a
// shareable URL.
const QueryParam = "mode"

// Parse derives the role from URL query values. Absence of the parameter or
// any unrecognised value selects the chooser.
func Parse(values url.Values) Role {
	switch values.Get(QueryParam) {
	case string(Staff):
		return Staff
	case string(Display):
		return Display
	default:
		return Chooser
	}
}

// Encode writes the role back into a copy of the query values so that copying
// the current address reproduces the same role on another device. The chooser
// is represented by absence, matching what Parse derives from a bare URL.
func Encode(r Role, values url.Values) url.Values {
	encoded := url.Values{}
	for key, vals := range values {
		encoded[key] = append([]string(nil), vals...)
	}
	switch r {
	case Staff, Display:
		encoded.Set(QueryParam, string(r))
	default:
		encoded.Del(QueryParam)
	}
	return encoded
}
