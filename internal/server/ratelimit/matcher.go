package ratelimit

import "strings"

// MatchRule finds the rule for a request. Exact paths win over prefixes.
// It returns nil when the default rate applies.
func MatchRule(method, path string, rules []Rule) *Rule {
	for i := range rules {
		if rules[i].Method == method && rules[i].Path == path {
			return &rules[i]
		}
	}
	for i := range rules {
		r := &rules[i]
		if r.Method == method && strings.HasSuffix(r.Path, "/") && strings.HasPrefix(path, r.Path) {
			return r
		}
	}
	return nil
}
