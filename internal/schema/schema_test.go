package schema

import (
	"regexp"
	"strings"
	"testing"
)

func TestStatementsMatchTableList(t *testing.T) {
	stmts := Statements()
	if len(stmts) != len(Tables) {
		t.Fatalf("got %d statements for %d tables", len(stmts), len(Tables))
	}

	nameRegex := regexp.MustCompile(`(?i)^CREATE TABLE (\w+)`)
	for i, stmt := range stmts {
		match := nameRegex.FindStringSubmatch(stmt)
		if match == nil {
			t.Fatalf("statement %d is not a CREATE TABLE: %.60s", i, stmt)
		}
		if match[1] != Tables[i] {
			t.Errorf("statement %d creates %q, expected %q", i, match[1], Tables[i])
		}
	}
}

func TestDependencyOrder(t *testing.T) {
	position := make(map[string]int, len(Tables))
	for i, name := range Tables {
		position[name] = i
	}

	refRegex := regexp.MustCompile(`(?i)REFERENCES (\w+)`)
	for i, stmt := range Statements() {
		for _, match := range refRegex.FindAllStringSubmatch(stmt, -1) {
			ref := match[1]
			refPos, ok := position[ref]
			if !ok {
				t.Fatalf("%s references unknown table %s", Tables[i], ref)
			}
			if refPos >= i {
				t.Errorf("%s references %s, which is created later", Tables[i], ref)
			}
		}
	}
}

func TestWipeOrderIsReversed(t *testing.T) {
	wipe := WipeOrder()
	if len(wipe) != len(Tables) {
		t.Fatalf("wipe order has %d tables, want %d", len(wipe), len(Tables))
	}
	for i, name := range wipe {
		if want := Tables[len(Tables)-1-i]; name != want {
			t.Errorf("wipe[%d] = %s, want %s", i, name, want)
		}
	}
	if wipe[0] != "custom_field_values" || wipe[len(wipe)-1] != "organizations" {
		t.Errorf("unexpected wipe boundaries: %s .. %s", wipe[0], wipe[len(wipe)-1])
	}
}

func TestSplitStatements(t *testing.T) {
	sql := `
-- leading comment
CREATE TABLE a (x TEXT);
INSERT INTO a VALUES ('semi;colon');
-- trailing comment
DROP TABLE a
`
	stmts := SplitStatements(sql)
	if len(stmts) != 3 {
		t.Fatalf("got %d statements, want 3: %q", len(stmts), stmts)
	}
	if !strings.Contains(stmts[1], "semi;colon") {
		t.Errorf("semicolon inside string literal was split: %q", stmts[1])
	}
	if stmts[2] != "DROP TABLE a" {
		t.Errorf("unterminated final statement missing: %q", stmts[2])
	}
}
