package route

import "regexp"

// stages are successively longer prefixes of Pattern. The first one that does
// not match names the part of the line that is wrong.
var stages = []struct {
	pattern *regexp.Regexp
	reason  string
}{
	{regexp.MustCompile(`^[A-Z]{3}`), "expected a 3-letter carrier code"},
	{regexp.MustCompile(`^[A-Z]{3}[0-9]{3,4}/`), "expected a 3-4 digit outbound flight number followed by '/'"},
	{regexp.MustCompile(`^[A-Z]{3}[0-9]{3,4}/[0-9]{3,4} `), "expected a 3-4 digit return flight number followed by a space"},
	{regexp.MustCompile(`^[A-Z]{3}[0-9]{3,4}/[0-9]{3,4} [A-Z]{4} `), "expected a 4-letter departure airport code followed by a space"},
	{routePattern, `expected "to " followed by a 4-letter arrival airport code`},
}

// Explain returns why line does not match the route pattern, or "" if it does.
func Explain(line string) string {
	for _, s := range stages {
		if !s.pattern.MatchString(line) {
			return s.reason
		}
	}
	return ""
}
