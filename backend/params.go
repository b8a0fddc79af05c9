package backend

// String returns the string value stored under key, or fallback when the
// key is absent or holds a non-string value.
func (p Params) String(key, fallback string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return fallback
}

// Bool returns the bool value stored under key, or fallback when the key
// is absent or holds a non-bool value.
func (p Params) Bool(key string, fallback bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return fallback
}

// Clone returns a shallow copy of p. Cloning nil returns an empty Params.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
