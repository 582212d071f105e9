package utils

import "regexp"

// Slugs are lowercase alphanumeric with dashes, matching what the public
// blog URLs accept.
var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

func ValidSlug(slug string) bool {
	return slug != "" && slugPattern.MatchString(slug)
}
