package strutil

import "regexp"

// A PDB identifier is four alphanumerics, optionally followed by a separator
// and a chain identifier. The chain id can be blank (space). Examples:
// 3TT1, 3tt1A, 3tt1:A, 3tt1_A, 3tt1-A, 3tt1 A.
var pdbPattern = regexp.MustCompile(`^[A-Za-z0-9]{4}[ \-_:]?[A-Za-z0-9 ]?$`)

// URL validation pattern, after django's URLValidator.
var urlPattern = regexp.MustCompile(`(?i)^(?:http|ftp)s?://` +
	`(?:(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+(?:[A-Z]{2,6}\.?|[A-Z0-9-]{2,}\.?)|` + // domain
	`localhost|` +
	`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` + // or ip
	`(?::\d+)?` + // optional port
	`(?:/?|[/?]\S+)$`)

// IsPDB reports whether s looks like a PDB identifier with an optional chain.
func IsPDB(s string) bool {
	return pdbPattern.MatchString(s)
}

// IsURL reports whether s looks like an http, https, ftp or ftps URL.
func IsURL(s string) bool {
	return urlPattern.MatchString(s)
}
