package validators

import (
	"net/mail"
	"strings"
)

// IsEmailValid is a syntactic check only; deliverability is not this
// service's problem.
func IsEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".") || email[at+1:] == "localhost"
}
