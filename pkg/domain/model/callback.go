package model

import "strings"

const shaPlaceholder = "{sha}"

// BuildCallbackURL resolves the statuses url template for the commit. The `{sha}`
// placeholder is removed and the sha is appended. It returns false when either
// input is empty.
func BuildCallbackURL(statusesURL, sha string) (string, bool) {
	if statusesURL == "" || sha == "" {
		return "", false
	}
	return strings.Replace(statusesURL, shaPlaceholder, "", 1) + sha, true
}
