package formaterror

import "strings"

// FormatError maps raw database error strings to user-facing messages.
func FormatError(errString string) map[string]string {
	errorMessages := make(map[string]string)

	if strings.Contains(errString, "username") {
		errorMessages["Taken_username"] = "Username is already taken"
	}
	if strings.Contains(errString, "email") {
		errorMessages["Taken_email"] = "Email is already taken"
	}
	if strings.Contains(errString, "title") {
		errorMessages["Taken_title"] = "Title is already taken"
	}
	if strings.Contains(errString, "slug") {
		errorMessages["Taken_slug"] = "Slug is already taken"
	}
	if strings.Contains(errString, "hashedPassword") {
		errorMessages["Incorrect_password"] = "Incorrect Password"
	}
	if len(errorMessages) > 0 {
		return errorMessages
	}
	return map[string]string{"Incorrect_details": "Incorrect Details"}
}
