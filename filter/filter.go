// Package filter provides client-side alert filtering using expr
// expressions. Server-side query parameters only match exact field values;
// expressions cover everything else (substring matches, date math,
// severity ranking) without another round trip.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/rajasatyajit/supplychain-go/supplychain"
)

// Filter represents a compiled filter expression.
type Filter struct {
	program    *vm.Program
	expression string
}

// Compile compiles a filter expression. The expression must evaluate to a
// boolean; alert fields are available as top-level variables (Severity,
// Region, Country, Source, Disruption, Title, ...) next to the helper
// functions.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{
		program:    program,
		expression: expression,
	}, nil
}

// Expression returns the source expression the filter was compiled from.
func (f *Filter) Expression() string {
	return f.expression
}

// Matches evaluates the filter against a single alert.
func (f *Filter) Matches(alert supplychain.Alert) (bool, error) {
	env := helperFunctions()

	env["Alert"] = alert
	env["ID"] = alert.ID
	env["Source"] = alert.Source
	env["Title"] = alert.Title
	env["Summary"] = alert.Summary
	env["Region"] = alert.Region
	env["Country"] = alert.Country
	env["Location"] = alert.Location
	env["Disruption"] = alert.Disruption
	env["Severity"] = alert.Severity
	env["SeverityRank"] = alert.SeverityRank()
	env["Sentiment"] = alert.Sentiment
	env["Confidence"] = alert.Confidence
	env["DetectedAt"] = alert.DetectedAt
	env["PublishedAt"] = alert.PublishedAt

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression did not evaluate to a boolean")
	}

	return matched, nil
}

// Apply returns the alerts that match the filter. Evaluation errors abort
// the whole pass so a bad expression never silently drops alerts.
func (f *Filter) Apply(alerts []supplychain.Alert) ([]supplychain.Alert, error) {
	var matched []supplychain.Alert
	for _, alert := range alerts {
		ok, err := f.Matches(alert)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, alert)
		}
	}
	return matched, nil
}

// helperFunctions builds the environment of helpers available inside
// expressions.
func helperFunctions() map[string]any {
	return map[string]any{
		// Date helpers
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},
		"now": time.Now,
		// String helpers, all case-insensitive
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}
