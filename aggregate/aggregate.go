// Package aggregate groups a release's assets into per platform and
// packaging rows.
package aggregate

import (
	"strings"

	"github.com/codingconcepts/relstats/classify"
	"github.com/codingconcepts/relstats/models"
)

const (
	ellipsis      = "…"
	maxNameLength = 50
)

// Summary is the aggregated view of one release.
type Summary struct {
	// Rows holds one entry per (platform, packaging) pair, in the order
	// each pair was first seen. Renderers apply their own ordering.
	Rows []models.Row

	// Total is the download count of every asset, including checksum and
	// signature files that don't appear in Rows.
	Total int64
}

type bucketKey struct {
	platform  models.Platform
	packaging models.Packaging
}

// Release aggregates assets. Checksum-like assets count toward the total
// only. Within a bucket, downloads are summed, the largest size is kept
// and the short name is that of the last asset added.
func Release(assets []models.GitAsset) Summary {
	var s Summary
	index := map[bucketKey]int{}

	for _, a := range assets {
		s.Total += a.DownloadCount

		c := classify.Classify(a.Name)
		if c.ChecksumLike {
			continue
		}

		key := bucketKey{platform: c.Platform, packaging: c.Packaging}
		i, ok := index[key]
		if !ok {
			i = len(s.Rows)
			index[key] = i
			s.Rows = append(s.Rows, models.Row{
				Platform:  c.Platform,
				Packaging: c.Packaging,
			})
		}

		row := &s.Rows[i]
		row.Downloads += a.DownloadCount
		if a.Size > row.SizeBytes {
			row.SizeBytes = a.Size
		}
		row.ShortName = ShortenName(a.Name)
	}

	return s
}

// ShortenName drops the leading project prefix (everything up to and
// including the first hyphen) and caps the result at 50 characters.
//
//	"dotstate-x86_64-unknown-linux-gnu.tar.gz" -> "…x86_64-unknown-linux-gnu.tar.gz"
func ShortenName(name string) string {
	if i := strings.IndexByte(name, '-'); i > 0 {
		name = ellipsis + name[i+1:]
	}

	runes := []rune(name)
	if len(runes) > maxNameLength {
		return string(runes[:maxNameLength-3]) + ellipsis
	}
	return name
}
