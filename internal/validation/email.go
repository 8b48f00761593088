package validation

import (
	"regexp"
	"strings"
)

// emailPattern accepts local@domain.tld with a letters-only TLD of two or
// more characters. The local part may not start with a dot or contain "..",
// which RE2 cannot express, so isEmail checks those separately.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9_'+\-.]*[A-Za-z0-9_+\-]@([A-Za-z0-9][A-Za-z0-9\-]*\.)+[A-Za-z]{2,}$`)

func isEmail(s string) bool {
	if strings.HasPrefix(s, ".") || strings.Contains(s, "..") {
		return false
	}
	return emailPattern.MatchString(s)
}
