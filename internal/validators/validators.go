package validators

import (
	"net"
	"regexp"
	"strings"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// IsDate valida o formato YYYY-MM-DD exigido em toda a API.
func IsDate(s string) bool {
	return dateRe.MatchString(s)
}

// IsTime valida o formato HH:MM (24h) exigido em toda a API.
func IsTime(s string) bool {
	return timeRe.MatchString(s)
}

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
