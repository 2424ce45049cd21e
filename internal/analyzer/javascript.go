package analyzer

import (
	"fmt"
	"strings"

	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/file"
	"github.com/dop251/goja/parser"
	"github.com/dop251/goja/token"

	"github.com/code-mentor/analysis/internal/domain"
	"github.com/code-mentor/analysis/pkg/source"
)

// maxFunctionComplexity is the cyclomatic complexity a single function may
// reach before it is flagged.
const maxFunctionComplexity = 10

// JavaScript analyzes source by parsing it into a syntax tree and walking
// the tree. Unlike the line scanners it can position issues on the exact
// declaration and compute real per-function decision-point counts.
//
// A parse failure produces exactly one syntax issue; no partial issue list
// is returned for input that did not parse.
type JavaScript struct{}

// NewJavaScript creates the JavaScript analyzer.
func NewJavaScript() *JavaScript {
	return &JavaScript{}
}

// Name implements Analyzer.
func (j *JavaScript) Name() string { return "javascript" }

// Analyze implements Analyzer.
func (j *JavaScript) Analyze(src string) []domain.Issue {
	prg, err := parser.ParseFile(nil, "submission.js", src, 0)
	if err != nil {
		return []domain.Issue{parseFailureIssue(fmt.Errorf("%w: %v", domain.ErrParseFailure, err))}
	}

	v := &jsVisitor{
		lines: source.Lines(src),
		index: newLineIndex(src),
	}

	walk(v, prg)
	v.checkSemicolons(prg)

	return v.issues
}

// parseFailureIssue converts a parse error into the single synthetic issue
// the contract requires. Parser errors do not reliably expose a position, so
// the issue defaults to 1:1.
func parseFailureIssue(err error) domain.Issue {
	return domain.Issue{
		Line:         1,
		Column:       1,
		Severity:     domain.SeverityError,
		Category:     domain.CategorySyntax,
		Title:        "Syntax error",
		Description:  fmt.Sprintf("Analysis stopped: %v", err),
		SuggestedFix: "Fix the syntax error before further analysis",
		Impact:       domain.ImpactCritical,
	}
}

// jsVisitor collects issues while walking the syntax tree.
type jsVisitor struct {
	lines  []string
	index  *lineIndex
	issues []domain.Issue
}

// enter implements nodeVisitor.
func (v *jsVisitor) enter(n ast.Node) {
	switch node := n.(type) {
	case *ast.VariableStatement:
		v.flagVar(node)
	case *ast.FunctionDeclaration:
		v.flagComplexFunction(node)
	case *ast.CallExpression:
		v.flagConsoleLog(node)
	case *ast.BinaryExpression:
		v.flagLooseEquality(node)
	}
}

// flagVar emits one issue per `var` declaration statement. let/const parse
// into a different node type and are never flagged.
func (v *jsVisitor) flagVar(node *ast.VariableStatement) {
	line, col := v.index.position(node.Idx0())
	text := v.lineText(line)

	v.issues = append(v.issues, domain.Issue{
		Line:         line,
		Column:       col,
		Severity:     domain.SeverityWarning,
		Category:     domain.CategoryBestPractice,
		Title:        "Avoid 'var' declarations",
		Description:  "'var' is function-scoped and hoisted, which makes the declaration visible before and outside the block it appears in",
		SuggestedFix: "Use 'let' for variables that change and 'const' for ones that do not",
		CodeSnippet: domain.CodeSnippet{
			Original:  text,
			Suggested: strings.Replace(text, "var", "let", 1),
		},
		Impact: domain.ImpactMedium,
	})
}

// flagComplexFunction walks a named function declaration counting decision
// points and flags it when the count exceeds maxFunctionComplexity.
func (v *jsVisitor) flagComplexFunction(node *ast.FunctionDeclaration) {
	name := "(anonymous)"
	if node.Function != nil && node.Function.Name != nil {
		name = string(node.Function.Name.Name)
	}

	counter := &decisionCounter{complexity: 1}
	walk(counter, node.Function)

	if counter.complexity <= maxFunctionComplexity {
		return
	}

	line, col := v.index.position(node.Idx0())
	v.issues = append(v.issues, domain.Issue{
		Line:         line,
		Column:       col,
		Severity:     domain.SeverityWarning,
		Category:     domain.CategoryMaintainability,
		Title:        "Function is too complex",
		Description:  fmt.Sprintf("Function '%s' has a cyclomatic complexity of %d (limit %d)", name, counter.complexity, maxFunctionComplexity),
		SuggestedFix: "Split the function into smaller ones with a single responsibility each",
		CodeSnippet:  domain.CodeSnippet{Original: v.lineText(line)},
		Impact:       domain.ImpactHigh,
	})
}

// flagConsoleLog emits one issue per console.log(...) call.
func (v *jsVisitor) flagConsoleLog(node *ast.CallExpression) {
	dot, ok := node.Callee.(*ast.DotExpression)
	if !ok || dot.Identifier.Name != "log" {
		return
	}

	obj, ok := dot.Left.(*ast.Identifier)
	if !ok || obj.Name != "console" {
		return
	}

	line, col := v.index.position(node.Idx0())
	v.issues = append(v.issues, domain.Issue{
		Line:         line,
		Column:       col,
		Severity:     domain.SeveritySuggestion,
		Category:     domain.CategoryBestPractice,
		Title:        "Remove console.log",
		Description:  "Debug logging left in production code can leak data and clutter the console",
		SuggestedFix: "Remove the call or switch to a structured logging library",
		CodeSnippet:  domain.CodeSnippet{Original: v.lineText(line)},
		Impact:       domain.ImpactLow,
	})
}

// flagLooseEquality emits one issue per loose == comparison. != is a
// separate operator and is not flagged.
func (v *jsVisitor) flagLooseEquality(node *ast.BinaryExpression) {
	if node.Operator != token.EQUAL {
		return
	}

	line, col := v.index.position(node.Idx0())
	text := v.lineText(line)

	// A naive replace would mangle a strict operator elsewhere on the line.
	suggested := ""
	if !strings.Contains(text, "===") && !strings.Contains(text, "!==") {
		suggested = strings.Replace(text, "==", "===", 1)
	}

	v.issues = append(v.issues, domain.Issue{
		Line:         line,
		Column:       col,
		Severity:     domain.SeverityWarning,
		Category:     domain.CategoryBestPractice,
		Title:        "Use '===' instead of '=='",
		Description:  "'==' coerces both operands before comparing, which can match values of different types; '===' compares without coercion",
		SuggestedFix: "Use the strict equality operator '==='",
		CodeSnippet: domain.CodeSnippet{
			Original:  text,
			Suggested: suggested,
		},
		Impact: domain.ImpactMedium,
	})
}

// checkSemicolons applies the missing-semicolon heuristic to top-level
// expression statements. It is a textual check against the statement's
// starting line, not an AST-position-accurate one; that coarseness is part
// of the contract.
func (v *jsVisitor) checkSemicolons(prg *ast.Program) {
	for _, stmt := range prg.Body {
		expr, ok := stmt.(*ast.ExpressionStatement)
		if !ok {
			continue
		}

		line, _ := v.index.position(expr.Idx0())
		text := strings.TrimRight(v.lineText(line), " \t")
		if text == "" || strings.HasSuffix(text, ";") || strings.HasSuffix(text, "}") {
			continue
		}

		v.issues = append(v.issues, domain.Issue{
			Line:         line,
			Column:       len(text) + 1,
			Severity:     domain.SeverityInfo,
			Category:     domain.CategoryStyle,
			Title:        "Missing semicolon",
			Description:  "Statement relies on automatic semicolon insertion",
			SuggestedFix: "End the statement with a semicolon",
			CodeSnippet: domain.CodeSnippet{
				Original:  text,
				Suggested: text + ";",
			},
			Impact: domain.ImpactLow,
		})
	}
}

// lineText returns the 1-based line, or "" when out of range.
func (v *jsVisitor) lineText(line int) string {
	if line < 1 || line > len(v.lines) {
		return ""
	}
	return v.lines[line-1]
}

// decisionCounter counts cyclomatic decision points in a subtree: branches,
// loops, switch cases, catch clauses, ternaries and short-circuit operators.
type decisionCounter struct {
	complexity int
}

// enter implements nodeVisitor.
func (c *decisionCounter) enter(n ast.Node) {
	switch node := n.(type) {
	case *ast.IfStatement,
		*ast.ConditionalExpression,
		*ast.ForStatement,
		*ast.ForInStatement,
		*ast.ForOfStatement,
		*ast.WhileStatement,
		*ast.DoWhileStatement,
		*ast.CaseStatement,
		*ast.CatchStatement:
		c.complexity++
	case *ast.BinaryExpression:
		if node.Operator == token.LOGICAL_AND || node.Operator == token.LOGICAL_OR {
			c.complexity++
		}
	}
}

// lineIndex converts parser offsets to 1-based line/column positions.
type lineIndex struct {
	starts []int
	size   int
}

func newLineIndex(src string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts, size: len(src)}
}

// position maps a 1-based parser index to (line, column), both 1-based.
// Out-of-range indices clamp to the nearest valid position.
func (li *lineIndex) position(idx file.Idx) (int, int) {
	offset := int(idx) - 1
	if offset < 0 {
		offset = 0
	}
	if offset > li.size {
		offset = li.size
	}

	line := 0
	for i := len(li.starts) - 1; i >= 0; i-- {
		if li.starts[i] <= offset {
			line = i
			break
		}
	}

	return line + 1, offset - li.starts[line] + 1
}
