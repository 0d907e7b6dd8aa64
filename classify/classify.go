// Package classify derives platform and packaging labels from release
// asset file names.
package classify

import (
	"strings"

	"github.com/codingconcepts/relstats/models"
)

// Result is the classification of a single asset name.
type Result struct {
	ChecksumLike bool
	Platform     models.Platform
	Packaging    models.Packaging
}

// Classify maps an asset file name to its platform and packaging, and
// reports whether it is a checksum or signature file. It accepts any
// string.
func Classify(name string) Result {
	lower := strings.ToLower(name)

	return Result{
		ChecksumLike: IsChecksumLike(name),
		Platform: models.Platform{
			OS:   FirstMatch(OSRules, lower, models.OSOther),
			Arch: FirstMatch(ArchRules, lower, models.ArchUnknown),
		},
		Packaging: FirstMatch(PackagingRules, lower, models.PackagingFile),
	}
}

// IsChecksumLike reports whether name ends in a checksum or signature
// extension, ignoring case.
func IsChecksumLike(name string) bool {
	return hasAnySuffix(checksumSuffixes...)(strings.ToLower(name))
}
