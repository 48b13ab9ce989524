//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strconv"
	"strings"
	"time"

	"github.com/ardnew/commander/parse"
)

// Version is the semantic version embedded at build time from VERSION.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier. It appears in help
	// text, default table names, and config paths.
	Name = "commander"
	// Description is a short summary used in help output.
	Description = "Table-driven command-line option parser"
	// FirstYear is the first year of the copyright notice.
	FirstYear = 2025
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

func (a AuthorInfo) String() string {
	if a.Email == "" {
		return a.Name
	}

	return a.Name + " <" + a.Email + ">"
}

// Author lists the primary author(s) of the project.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}

// Copyright returns the copyright notice for the given year.
func Copyright(year int) string {
	span := strconv.Itoa(FirstYear)
	if year > FirstYear {
		span += "-" + strconv.Itoa(year)
	}

	names := make([]string, len(Author))
	for i, a := range Author {
		names[i] = a.Name
	}

	return "Copyright (c) " + span + " " + strings.Join(names, ", ")
}

// App returns the descriptor of this program for help renderers.
func App() parse.App {
	authors := make([]string, len(Author))
	for i, a := range Author {
		authors[i] = a.String()
	}

	return parse.App{
		Name:      Name,
		About:     Description,
		Version:   strings.TrimSpace(Version),
		Author:    strings.Join(authors, ", "),
		Copyright: Copyright(time.Now().Year()),
	}
}
