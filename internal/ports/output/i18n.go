package output

// Translator renders user-facing text (messages, enum labels, errors).
type Translator interface {
	// T renders key for locale. data fills template placeholders and may be nil.
	// Unknown keys come back unchanged.
	T(locale, key string, data map[string]any) string
}
