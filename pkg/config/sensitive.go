package config

// SensitiveString holds a secret value that must never leak through logs or
// serialized output. The raw value is only reachable through Value().
type SensitiveString string

const redactedPlaceholder = "[REDACTED]"

// String implements fmt.Stringer and always redacts.
func (s SensitiveString) String() string {
	return redactedPlaceholder
}

// GoString redacts in %#v output as well.
func (s SensitiveString) GoString() string {
	return redactedPlaceholder
}

// MarshalJSON redacts the value in any JSON serialization.
func (s SensitiveString) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redactedPlaceholder + `"`), nil
}

// UnmarshalJSON accepts a plain JSON string.
func (s *SensitiveString) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	*s = SensitiveString(raw)
	return nil
}

// Value returns the underlying secret.
func (s SensitiveString) Value() string {
	return string(s)
}

// IsEmpty reports whether no secret was configured.
func (s SensitiveString) IsEmpty() bool {
	return len(s) == 0
}
