// Package hooks patches an app's hooks.py with website routing rules.
//
// The website_route_rules declaration is matched with a greedy, single-level
// bracket pattern. A rule record that itself contains a ']' on the same line
// would corrupt the match; bench apps do not produce such records, and the
// limitation is accepted.
package hooks

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/google/renameio/v2"
)

// VariableName is the list-valued assignment patched inside hooks.py.
const VariableName = "website_route_rules"

// ruleListPattern captures the contents of an existing declaration. The
// capture is greedy and not bracket-depth aware.
var ruleListPattern = regexp.MustCompile(VariableName + `\s?=\s?\[(.+)\]`)

// recordPattern extracts from_route/to_route pairs out of a rule list.
var recordPattern = regexp.MustCompile(`\{'from_route': '([^']*)', 'to_route': '([^']*)'\}`)

// RoutingRule maps an incoming URL path pattern to a frontend target.
// Equality is by value of both fields.
type RoutingRule struct {
	FromRoute string
	ToRoute   string
}

// NewSPARule returns the rule registered for a generated SPA: all paths
// under /<name>/ are routed to the SPA's HTML entry point.
func NewSPARule(spaName string) RoutingRule {
	return RoutingRule{
		FromRoute: fmt.Sprintf("/%s/<path:app_path>", spaName),
		ToRoute:   spaName,
	}
}

// Literal renders the rule as the Python dict record stored in hooks.py.
func (r RoutingRule) Literal() string {
	return fmt.Sprintf("{'from_route': '%s', 'to_route': '%s'}", r.FromRoute, r.ToRoute)
}

// InjectRoutingRule returns new file content with the rule inserted as the
// first element of the website_route_rules list. If no declaration exists,
// a fresh single-element declaration is appended on a new line. Existing
// records are preserved byte-for-byte and never deduplicated; injecting the
// same rule twice yields two records.
func InjectRoutingRule(content string, rule RoutingRule) string {
	loc := ruleListPattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return strings.TrimRight(content, "\n") +
			"\n" + VariableName + " = [" + rule.Literal() + ",]"
	}

	inner := content[loc[2]:loc[3]]
	return content[:loc[0]] +
		VariableName + " = [" + rule.Literal() + ", " + inner + "]" +
		content[loc[1]:]
}

// ParseRoutingRules recovers the rule records present in file content, in
// declaration order. Content without a declaration yields nil.
func ParseRoutingRules(content string) []RoutingRule {
	m := ruleListPattern.FindStringSubmatch(content)
	if m == nil {
		return nil
	}

	var rules []RoutingRule
	for _, rec := range recordPattern.FindAllStringSubmatch(m[1], -1) {
		rules = append(rules, RoutingRule{FromRoute: rec[1], ToRoute: rec[2]})
	}
	return rules
}

// UpdateFile reads hooks.py, injects the rule, and atomically rewrites the
// file. The original file survives intact if the write fails partway.
func UpdateFile(path string, rule RoutingRule) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	updated := InjectRoutingRule(string(data), rule)

	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("creating pending hooks file: %w", err)
	}
	defer pending.Cleanup()

	if _, err := pending.WriteString(updated); err != nil {
		return fmt.Errorf("writing hooks content: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
