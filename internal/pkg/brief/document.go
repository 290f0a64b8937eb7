// Package brief renders fixtures and match facets into the compact text
// document handed to the chat model.
package brief

import "strings"

// Section names, in render order for a match document.
const (
	SectionHeader     = "header"
	SectionScore      = "score"
	SectionPrediction = "prediction"
	SectionOdds       = "odds"
	SectionStatistics = "statistics"
	SectionInjuries   = "injuries"
	SectionLineups    = "lineups"
	SectionFixtures   = "fixtures"
)

// Section is one named block of lines. Title is printed above the lines when set.
type Section struct {
	Name  string
	Title string
	Lines []string
}

// Document is either an ordered list of sections or a single sentinel text.
type Document struct {
	Sections []Section
	Sentinel string
}

// Has reports whether a section with the given name is present.
func (d Document) Has(name string) bool {
	for _, s := range d.Sections {
		if s.Name == name {
			return true
		}
	}
	return false
}

// Empty reports whether the document has nothing to say.
func (d Document) Empty() bool {
	return d.Sentinel == "" && len(d.Sections) == 0
}

func (d Document) String() string {
	if d.Sentinel != "" {
		return d.Sentinel
	}
	blocks := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		var b strings.Builder
		if s.Title != "" {
			b.WriteString(s.Title)
			if len(s.Lines) > 0 {
				b.WriteByte('\n')
			}
		}
		b.WriteString(strings.Join(s.Lines, "\n"))
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

func (d *Document) add(s Section) {
	if len(s.Lines) == 0 {
		return
	}
	d.Sections = append(d.Sections, s)
}
