package chrome

// String returns a pointer to the given string
func String(str string) *string {
	return &str
}

// StringValue returns the value of the string pointer passed in or "" if the pointer is nil
func StringValue(str *string) string {
	if str != nil {
		return *str
	}
	return ""
}

// Int returns a pointer to the given integer
func Int(number int) *int {
	return &number
}

// IntValue returns the value of the integer pointer or 0 if the pointer is nil
func IntValue(number *int) int {
	if number != nil {
		return *number
	}
	return 0
}
