// Package directory builds the merged staff directory and answers filter and
// aggregate queries over it. Everything here is in-memory and side-effect free.
package directory

import "strings"

// DecodeEnum turns Postgres array text such as "{GCU,SVU}" into its tokens.
// Tokens are kept as stored: no trimming, no de-duplication. nil and "{}" yield an
// empty, non-nil slice; text without braces is split as-is.
func DecodeEnum(raw *string) []string {
	if raw == nil {
		return []string{}
	}
	s := strings.TrimPrefix(*raw, "{")
	s = strings.TrimSuffix(s, "}")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
