// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperdeck/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style
// Language) format. The field names and structure follow the
// CSL-JSON/CSL-YAML schema so that output is consumable by Pandoc and
// reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	Abstract       string    `yaml:"abstract,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// WriteCSL writes papers as a CSL-YAML list to w.
func WriteCSL(papers []types.Paper, w io.Writer) error {
	items := make([]CSLItem, len(papers))
	for i, p := range papers {
		items[i] = toCSLItem(p, i)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts a Paper to a CSLItem. The citation ID is the DOI
// when present, else a slug of the title, else a positional fallback.
func toCSLItem(p types.Paper, index int) CSLItem {
	item := CSLItem{
		ID:             cslID(p, index),
		Type:           "article-journal",
		Title:          p.Title,
		Abstract:       p.Abstract,
		ContainerTitle: p.Journal,
		DOI:            p.DOI,
		URL:            p.BestURL(),
	}

	for _, name := range p.Authors {
		item.Author = append(item.Author, parseAuthorName(name))
	}

	if year, ok := p.Year(); ok {
		item.Issued = &CSLDate{DateParts: [][]int{{year}}}
	}

	return item
}

func cslID(p types.Paper, index int) string {
	if p.DOI != "" {
		return p.DOI
	}
	if slug := titleSlug(p.Title); slug != "" {
		return slug
	}
	return "paper-" + strconv.Itoa(index+1)
}

// titleSlug keeps the first five lowercased alphanumeric words of the
// title, hyphen-joined.
func titleSlug(title string) string {
	var words []string
	for _, f := range strings.Fields(strings.ToLower(title)) {
		var b strings.Builder
		for _, r := range f {
			if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			words = append(words, b.String())
		}
		if len(words) == 5 {
			break
		}
	}
	return strings.Join(words, "-")
}

// parseAuthorName splits a full name string into CSL family/given
// parts. It splits on the last space: everything before is given, the
// last token is family. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
