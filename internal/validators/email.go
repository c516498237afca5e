package validators

import (
	"net/mail"
	"strings"
)

// IsEmail only checks syntax; the admin address is never resolved over DNS.
func IsEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	at := strings.LastIndex(addr.Address, "@")
	return addr.Address == email && at > 0 && at < len(email)-1
}
