package models

import (
	"strings"
)

// Repo identifies a repository on the hosting platform.
type Repo struct {
	Owner string
	Name  string
}

// ParseRepo parses an "owner/repo" identifier.
func ParseRepo(s string) (Repo, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repo{}, NewUsageError("invalid repository %q, expected owner/repo", s)
	}

	return Repo{Owner: parts[0], Name: parts[1]}, nil
}

func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}
