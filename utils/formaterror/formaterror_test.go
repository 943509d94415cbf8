package formaterror

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorKnownConstraints(t *testing.T) {
	cases := []struct {
		errString string
		key       string
		message   string
	}{
		{"UNIQUE constraint failed: users.username", "Taken_username", "Username is already taken"},
		{"UNIQUE constraint failed: users.email", "Taken_email", "Email is already taken"},
		{"UNIQUE constraint failed: groups.title", "Taken_title", "Title is already taken"},
		{"UNIQUE constraint failed: groups.slug", "Taken_slug", "Slug is already taken"},
		{"hashedPassword mismatch", "Incorrect_password", "Incorrect Password"},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			got := FormatError(tc.errString)
			assert.Equal(t, map[string]string{tc.key: tc.message}, got)
		})
	}
}

func TestFormatErrorUnrelatedError(t *testing.T) {
	got := FormatError("connection reset by peer")
	assert.Equal(t, map[string]string{"Incorrect_details": "Incorrect Details"}, got)
}

// An earlier match must not bleed into later, unrelated calls.
func TestFormatErrorCallsAreIndependent(t *testing.T) {
	first := FormatError("UNIQUE constraint failed: users.username")
	assert.Contains(t, first, "Taken_username")

	second := FormatError("connection reset by peer")
	assert.Equal(t, map[string]string{"Incorrect_details": "Incorrect Details"}, second)
	assert.NotContains(t, second, "Taken_username")
}

func TestFormatErrorConcurrentCalls(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if n%2 == 0 {
					got := FormatError("UNIQUE constraint failed: users.email")
					assert.Equal(t, map[string]string{"Taken_email": "Email is already taken"}, got)
				} else {
					got := FormatError("connection reset by peer")
					assert.Equal(t, map[string]string{"Incorrect_details": "Incorrect Details"}, got)
				}
			}
		}(i)
	}
	wg.Wait()
}
