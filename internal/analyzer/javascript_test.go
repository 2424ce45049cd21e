// Package analyzer provides unit tests for the JavaScript tree analyzer.
package analyzer

import (
	"strings"
	"testing"

	"github.com/code-mentor/analysis/internal/domain"
)

func TestJavaScript_VarDeclaration(t *testing.T) {
	issues := NewJavaScript().Analyze("var x = 1")

	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %+v", len(issues), issues)
	}

	issue := issues[0]
	if issue.Severity != domain.SeverityWarning {
		t.Errorf("severity = %s, want warning", issue.Severity)
	}
	if issue.Category != domain.CategoryBestPractice {
		t.Errorf("category = %s, want best-practice", issue.Category)
	}
	if issue.Line != 1 {
		t.Errorf("line = %d, want 1", issue.Line)
	}
	if issue.CodeSnippet.Suggested != "let x = 1" {
		t.Errorf("suggested snippet = %q, want %q", issue.CodeSnippet.Suggested, "let x = 1")
	}
	if err := issue.Validate(); err != nil {
		t.Errorf("issue fails validation: %v", err)
	}
}

func TestJavaScript_LetAndConstNotFlagged(t *testing.T) {
	issues := NewJavaScript().Analyze("let x = 1;\nconst y = 2;")
	if len(issues) != 0 {
		t.Errorf("got %d issues for let/const, want 0: %+v", len(issues), issues)
	}
}

func TestJavaScript_VarPerDeclaration(t *testing.T) {
	src := "var a = 1\nvar b = 2\nvar c = 3"
	issues := NewJavaScript().Analyze(src)

	if len(issues) != 3 {
		t.Fatalf("got %d issues, want 3", len(issues))
	}
	for i, issue := range issues {
		if issue.Line != i+1 {
			t.Errorf("issue %d on line %d, want %d", i, issue.Line, i+1)
		}
	}
}

func TestJavaScript_ConsoleLog(t *testing.T) {
	issues := NewJavaScript().Analyze(`console.log("hello");`)

	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %+v", len(issues), issues)
	}
	if issues[0].Severity != domain.SeveritySuggestion || issues[0].Category != domain.CategoryBestPractice {
		t.Errorf("got %s/%s, want suggestion/best-practice", issues[0].Severity, issues[0].Category)
	}
}

func TestJavaScript_OtherCallsNotFlagged(t *testing.T) {
	issues := NewJavaScript().Analyze("logger.log(1);\nconsole.error(2);\nfoo(3);")
	if len(issues) != 0 {
		t.Errorf("got %d issues, want 0: %+v", len(issues), issues)
	}
}

func TestJavaScript_MissingSemicolon(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{name: "missing", src: "foo()", want: 1},
		{name: "present", src: "foo();", want: 0},
		{name: "block close", src: "if (a) { foo(); }", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := NewJavaScript().Analyze(tt.src)

			count := 0
			for _, issue := range issues {
				if issue.Title == "Missing semicolon" {
					count++
					if issue.Severity != domain.SeverityInfo || issue.Category != domain.CategoryStyle {
						t.Errorf("got %s/%s, want info/style", issue.Severity, issue.Category)
					}
				}
			}
			if count != tt.want {
				t.Errorf("got %d missing-semicolon issues, want %d", count, tt.want)
			}
		})
	}
}

func TestJavaScript_NestedTraversal(t *testing.T) {
	src := "function outer(ready) {\n  if (ready) {\n    var temp = 1\n    console.log(temp)\n  }\n}"
	issues := NewJavaScript().Analyze(src)

	if len(issues) != 2 {
		t.Fatalf("got %d issues, want 2: %+v", len(issues), issues)
	}

	if issues[0].Title != "Avoid 'var' declarations" || issues[0].Line != 3 {
		t.Errorf("issue 0 = %q at line %d, want var issue at line 3", issues[0].Title, issues[0].Line)
	}
	if issues[1].Title != "Remove console.log" || issues[1].Line != 4 {
		t.Errorf("issue 1 = %q at line %d, want console.log issue at line 4", issues[1].Title, issues[1].Line)
	}
}

func TestJavaScript_LooseEquality(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{name: "loose equality", src: "if (x == 1) { y = 2; }", want: 1},
		{name: "strict equality", src: "if (x === 1) { y = 2; }", want: 0},
		{name: "loose inequality", src: "if (x != 1) { y = 2; }", want: 0},
		{name: "comparison", src: "if (x > 1) { y = 2; }", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := NewJavaScript().Analyze(tt.src)

			count := 0
			for _, issue := range issues {
				if issue.Title == "Use '===' instead of '=='" {
					count++
					if issue.Severity != domain.SeverityWarning || issue.Category != domain.CategoryBestPractice {
						t.Errorf("got %s/%s, want warning/best-practice", issue.Severity, issue.Category)
					}
				}
			}
			if count != tt.want {
				t.Errorf("got %d loose-equality issues, want %d: %+v", count, tt.want, issues)
			}
		})
	}
}

func TestJavaScript_LooseEqualityRewrite(t *testing.T) {
	issues := NewJavaScript().Analyze("x == 1;")

	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %+v", len(issues), issues)
	}
	if issues[0].CodeSnippet.Suggested != "x === 1;" {
		t.Errorf("suggested snippet = %q, want %q", issues[0].CodeSnippet.Suggested, "x === 1;")
	}

	// No rewrite when a strict operator on the same line could be mangled
	issues = NewJavaScript().Analyze("a === b && c == d;")
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %+v", len(issues), issues)
	}
	if issues[0].CodeSnippet.Suggested != "" {
		t.Errorf("suggested snippet = %q, want empty", issues[0].CodeSnippet.Suggested)
	}
}

func TestJavaScript_VarInitializerVisitedOnce(t *testing.T) {
	issues := NewJavaScript().Analyze("var a = b == c;")

	var varCount, eqCount int
	for _, issue := range issues {
		switch issue.Title {
		case "Avoid 'var' declarations":
			varCount++
		case "Use '===' instead of '=='":
			eqCount++
		}
	}
	if varCount != 1 {
		t.Errorf("got %d var issues, want 1: %+v", varCount, issues)
	}
	if eqCount != 1 {
		t.Errorf("got %d loose-equality issues, want 1: %+v", eqCount, issues)
	}
}

func TestJavaScript_ComplexFunction(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("function big(x) {\n")
	for i := 0; i < 11; i++ {
		sb.WriteString("  if (x > 0) { x--; }\n")
	}
	sb.WriteString("}\n")

	issues := NewJavaScript().Analyze(sb.String())

	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %+v", len(issues), issues)
	}

	issue := issues[0]
	if issue.Severity != domain.SeverityWarning || issue.Category != domain.CategoryMaintainability {
		t.Errorf("got %s/%s, want warning/maintainability", issue.Severity, issue.Category)
	}
	if !strings.Contains(issue.Description, "big") {
		t.Errorf("description %q does not name the function", issue.Description)
	}
	if !strings.Contains(issue.Description, "12") {
		t.Errorf("description %q does not carry the measured complexity", issue.Description)
	}
}

func TestJavaScript_SimpleFunctionNotFlagged(t *testing.T) {
	src := "function add(a, b) {\n  return a + b;\n}\n"
	if issues := NewJavaScript().Analyze(src); len(issues) != 0 {
		t.Errorf("got %d issues, want 0: %+v", len(issues), issues)
	}
}

func TestJavaScript_ParseFailure(t *testing.T) {
	issues := NewJavaScript().Analyze("function broken() {")

	if len(issues) != 1 {
		t.Fatalf("got %d issues, want exactly 1: %+v", len(issues), issues)
	}

	issue := issues[0]
	if issue.Severity != domain.SeverityError {
		t.Errorf("severity = %s, want error", issue.Severity)
	}
	if issue.Category != domain.CategorySyntax {
		t.Errorf("category = %s, want syntax", issue.Category)
	}
	if issue.Line != 1 || issue.Column != 1 {
		t.Errorf("position = %d:%d, want 1:1", issue.Line, issue.Column)
	}
	if !strings.Contains(issue.Description, domain.ErrParseFailure.Error()) {
		t.Errorf("description %q does not carry the parse-failure error", issue.Description)
	}
}

func TestJavaScript_EmptySource(t *testing.T) {
	if issues := NewJavaScript().Analyze(""); len(issues) != 0 {
		t.Errorf("got %d issues for empty source, want 0", len(issues))
	}
}
