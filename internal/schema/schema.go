// Package schema owns the dataset's table definitions and the order in
// which tables can be created, filled and destroyed without violating
// foreign keys.
package schema

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed schema.sql
var ddl string

// Tables lists every table in foreign-key dependency order: each table
// only references tables that appear before it. Generation inserts in
// this order; wiping walks it backward.
var Tables = []string{
	"organizations",
	"teams",
	"users",
	"team_memberships",
	"projects",
	"sections",
	"tasks",
	"subtasks",
	"comments",
	"tags",
	"task_tag_associations",
	"custom_field_definitions",
	"custom_field_values",
}

// WipeOrder returns the tables in reverse dependency order, safe for
// dropping one by one.
func WipeOrder() []string {
	out := make([]string, len(Tables))
	for i, name := range Tables {
		out[len(Tables)-1-i] = name
	}
	return out
}

// Statements returns the embedded DDL split into executable statements.
func Statements() []string {
	return SplitStatements(ddl)
}

var (
	commentRegex = regexp.MustCompile(`(?m)^\s*--.*$`)
	stringRegex  = regexp.MustCompile(`'(?:[^']|'')*'|"(?:[^"]|"")*"|` + "`(?:[^`]|``)*`")
)

// SplitStatements splits an SQL script on semicolons, ignoring line
// comments and semicolons inside quoted strings.
func SplitStatements(sql string) []string {
	sql = commentRegex.ReplaceAllString(sql, "")

	inString := make(map[int]bool)
	for _, match := range stringRegex.FindAllStringIndex(sql, -1) {
		for i := match[0]; i < match[1]; i++ {
			inString[i] = true
		}
	}

	var statements []string
	var current strings.Builder
	flush := func() {
		stmt := strings.TrimSpace(current.String())
		if stmt != "" {
			statements = append(statements, stmt)
		}
		current.Reset()
	}

	for i, char := range sql {
		if char == ';' && !inString[i] {
			flush()
		} else {
			current.WriteRune(char)
		}
	}
	flush()

	return statements
}
