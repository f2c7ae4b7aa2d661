package convert

// String is the identity converter.
type String struct{}

// Parse implements Converter. It never fails.
func (String) Parse(text string, _ *string) (string, error) {
	return text, nil
}

// Text implements Converter.
func (String) Text(value string) string {
	return value
}
