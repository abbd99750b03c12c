package collection

import (
	"regexp"

	"github.com/stashq/stashq-go/apierror"
)

// Collection names address service paths directly, so the charset is locked
// down to lowercase letters, digits, underscore and slash.
var namePattern = regexp.MustCompile(`^[a-z_/0-9]+$`)

// validateName checks the lexical form of a collection name.
func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return apierror.InvalidName(name)
	}
	return nil
}
