package dmidecode

import (
	"fmt"
	"strings"
)

// NotFoundMessage - the text exporters return for a type id with no records
func NotFoundMessage(typeID int) string {
	return fmt.Sprintf("Type %d not found.\n", typeID)
}

// PlainText renders the record as
//
//	Type <id> - <name>:
//	  <key>: <value>
//	    - <item>
//
// followed by a blank line.
func (r *Record) PlainText() string {
	var sb strings.Builder
	r.writePlainText(&sb)
	return sb.String()
}

func (r *Record) writePlainText(sb *strings.Builder) {
	fmt.Fprintf(sb, "Type %d - %s:\n", r.TypeID, r.TypeName)
	for _, p := range r.Properties {
		fmt.Fprintf(sb, "  %s: %s\n", p.Key, p.Value)
		for _, item := range p.List {
			fmt.Fprintf(sb, "    - %s\n", item)
		}
	}
	sb.WriteString("\n")
}

// Markdown renders the record as a heading followed by a key/value table.
// A list property keeps its value and items in one cell, separated by <br>.
func (r *Record) Markdown() string {
	var sb strings.Builder
	r.writeMarkdown(&sb)
	return sb.String()
}

func (r *Record) writeMarkdown(sb *strings.Builder) {
	fmt.Fprintf(sb, "### Type %d - %s\n\n", r.TypeID, r.TypeName)
	sb.WriteString("| Key | Value |\n")
	sb.WriteString("|-----|-------|\n")
	for _, p := range r.Properties {
		fmt.Fprintf(sb, "| %s | %s |\n", escapeCell(p.Key), markdownValue(p))
	}
	sb.WriteString("\n")
}

func markdownValue(p Property) string {
	if len(p.List) == 0 {
		return escapeCell(p.Value)
	}

	items := make([]string, 0, len(p.List)+1)
	if p.Value != "" {
		items = append(items, escapeCell(p.Value))
	}
	for _, item := range p.List {
		items = append(items, "- "+escapeCell(item))
	}

	return strings.Join(items, "<br>")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// ExportAll renders every record as plain text, ascending by type id
func (s *Store) ExportAll() string {
	var sb strings.Builder
	s.ascend(func(g *group) bool {
		for _, rec := range g.records {
			rec.writePlainText(&sb)
		}
		return true
	})

	return sb.String()
}

// ExportType renders the records of one type as plain text.
// An absent type yields NotFoundMessage.
func (s *Store) ExportType(typeID int) string {
	g := s.findGroup(typeID)
	if g == nil {
		return NotFoundMessage(typeID)
	}

	var sb strings.Builder
	for _, rec := range g.records {
		rec.writePlainText(&sb)
	}

	return sb.String()
}

// ExportTypeMarkdown renders the records of one type as markdown tables.
// An absent type yields NotFoundMessage.
func (s *Store) ExportTypeMarkdown(typeID int) string {
	g := s.findGroup(typeID)
	if g == nil {
		return NotFoundMessage(typeID)
	}

	var sb strings.Builder
	for _, rec := range g.records {
		rec.writeMarkdown(&sb)
	}

	return sb.String()
}

func (s *Store) ExportAllMarkdown() string {
	var sb strings.Builder
	s.ascend(func(g *group) bool {
		for _, rec := range g.records {
			rec.writeMarkdown(&sb)
		}
		return true
	})

	return sb.String()
}
