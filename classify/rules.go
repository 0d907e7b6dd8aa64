package classify

import (
	"strings"

	"github.com/codingconcepts/relstats/models"
)

// Rule maps names accepted by Match to Label. Rules are evaluated in
// order and the first match wins.
type Rule[L ~string] struct {
	Label L
	Match func(lower string) bool
}

// OSRules is evaluated against the lower-cased asset name.
var OSRules = []Rule[models.OS]{
	{Label: models.OSWindows, Match: containsAny("windows", "win32", "win64", "msvc", ".exe", ".msi")},
	{Label: models.OSMacOS, Match: containsAny("darwin", "macos", "osx", "apple")},
	{Label: models.OSLinux, Match: containsAny("linux")},
	{Label: models.OSBSD, Match: containsAny("freebsd", "openbsd", "netbsd")},
}

// ArchRules is evaluated against the lower-cased asset name. x86_64 is
// checked before x86 because the latter is a substring of the former.
var ArchRules = []Rule[models.Arch]{
	{Label: models.ArchARM64, Match: containsAny("aarch64", "arm64")},
	{Label: models.ArchX86_64, Match: containsAny("x86_64", "amd64", "x64")},
	{Label: models.ArchARMv7, Match: containsAny("armv7", "armhf")},
	{Label: models.ArchX86, Match: containsAny("i386", "x86", "386")},
}

// PackagingRules is evaluated against the lower-cased asset name.
var PackagingRules = []Rule[models.Packaging]{
	{Label: models.PackagingZip, Match: hasAnySuffix(".zip")},
	{Label: models.PackagingTarGz, Match: hasAnySuffix(".tar.gz", ".tgz")},
	{Label: models.PackagingTarXz, Match: hasAnySuffix(".tar.xz")},
	{Label: models.PackagingExe, Match: hasAnySuffix(".exe")},
	{Label: models.PackagingMsi, Match: hasAnySuffix(".msi")},
	{Label: models.PackagingDmg, Match: hasAnySuffix(".dmg")},
}

// checksumSuffixes mark signature and checksum files.
var checksumSuffixes = []string{".sha256", ".sha512", ".sha1", ".md5", ".sig", ".asc"}

// FirstMatch returns the label of the first rule matching lower, or
// fallback when none do.
func FirstMatch[L ~string](rules []Rule[L], lower string, fallback L) L {
	for _, r := range rules {
		if r.Match(lower) {
			return r.Label
		}
	}
	return fallback
}

func containsAny(markers ...string) func(string) bool {
	return func(s string) bool {
		for _, m := range markers {
			if strings.Contains(s, m) {
				return true
			}
		}
		return false
	}
}

func hasAnySuffix(suffixes ...string) func(string) bool {
	return func(s string) bool {
		for _, suf := range suffixes {
			if strings.HasSuffix(s, suf) {
				return true
			}
		}
		return false
	}
}
