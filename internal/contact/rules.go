package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field names as posted by the contact form.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldSubject   = "subject"
	FieldMessage   = "message"
)

// Rule is one (field, predicate, message) entry. Rules are evaluated independently.
type Rule struct {
	Field      string
	Check      func(string) bool
	MessageKey string
	Message    string
}

// Rules lists the contact form constraints in form order.
var Rules = []Rule{
	{Field: FieldFirstName, Check: minLen(3), MessageKey: "contact.error.firstName", Message: "Please enter a valid first name"},
	{Field: FieldLastName, Check: minLen(3), MessageKey: "contact.error.lastName", Message: "Please enter a valid last name"},
	{Field: FieldEmail, Check: IsEmail, MessageKey: "contact.error.email", Message: "Please enter a valid email"},
	{Field: FieldSubject, Check: minLen(5), MessageKey: "contact.error.subject", Message: "Please enter a valid subject"},
	{Field: FieldMessage, Check: minLen(20), MessageKey: "contact.error.message", Message: "Please enter a valid message"},
}

// Fields returns the form field names in rule order.
func Fields() []string {
	out := make([]string, 0, len(Rules))
	for _, r := range Rules {
		out = append(out, r.Field)
	}
	return out
}

// RuleFor returns the rule guarding field.
func RuleFor(field string) (Rule, bool) {
	for _, r := range Rules {
		if r.Field == field {
			return r, true
		}
	}
	return Rule{}, false
}

func minLen(n int) func(string) bool {
	return func(s string) bool {
		return utf8.RuneCountInString(s) >= n
	}
}

// The local part may not start with a dot and may not contain "..": checked outside the regexp
// because RE2 has no lookahead.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9_'+\-.]*[A-Za-z0-9_+\-]@(?:[A-Za-z0-9][A-Za-z0-9\-]*\.)+[A-Za-z]{2,}$`)

// IsEmail reports whether s is an email address in the accepted format.
func IsEmail(s string) bool {
	if strings.HasPrefix(s, ".") || strings.Contains(s, "..") {
		return false
	}
	return emailPattern.MatchString(s)
}
