package commons

// FieldErrors is the error payload shape for 400/404/422 responses:
// a mapping from field name to an ordered list of messages.
type FieldErrors map[string][]string

func NewFieldErrors(field, message string) FieldErrors {
	return FieldErrors{field: {message}}
}

func (f FieldErrors) Add(field, message string) FieldErrors {
	f[field] = append(f[field], message)
	return f
}
