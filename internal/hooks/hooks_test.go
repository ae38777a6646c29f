package hooks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectIntoFileWithoutDeclaration(t *testing.T) {
	rule := RoutingRule{FromRoute: "/billing/<path:app_path>", ToRoute: "billing"}

	got := InjectRoutingRule("x = 1\n", rule)

	want := "x = 1\nwebsite_route_rules = [{'from_route': '/billing/<path:app_path>', 'to_route': 'billing'},]"
	assert.Equal(t, want, got)

	// Exactly one declaration, one record.
	assert.Equal(t, 1, strings.Count(got, VariableName))
	require.Len(t, ParseRoutingRules(got), 1)
	assert.Equal(t, rule, ParseRoutingRules(got)[0])
}

func TestInjectPrependsBeforeExistingRules(t *testing.T) {
	content := "website_route_rules = [{'from_route': '/a', 'to_route': 'a'}]\n"

	got := InjectRoutingRule(content, RoutingRule{FromRoute: "/b", ToRoute: "b"})

	assert.Contains(t, got,
		"website_route_rules = [{'from_route': '/b', 'to_route': 'b'}, {'from_route': '/a', 'to_route': 'a'}]")

	// The pre-existing record's text survives byte-for-byte.
	assert.Contains(t, got, "{'from_route': '/a', 'to_route': 'a'}")

	rules := ParseRoutingRules(got)
	require.Len(t, rules, 2)
	assert.Equal(t, RoutingRule{FromRoute: "/b", ToRoute: "b"}, rules[0])
	assert.Equal(t, RoutingRule{FromRoute: "/a", ToRoute: "a"}, rules[1])
}

func TestInjectDoesNotDeduplicate(t *testing.T) {
	rule := RoutingRule{FromRoute: "/dash/<path:app_path>", ToRoute: "dash"}

	once := InjectRoutingRule("app_name = 'demo'\n", rule)
	twice := InjectRoutingRule(once, rule)

	assert.Equal(t, 2, strings.Count(twice, rule.Literal()))
	assert.Equal(t, 1, strings.Count(twice, VariableName+" = ["))

	rules := ParseRoutingRules(twice)
	require.Len(t, rules, 2)
	assert.Equal(t, rules[0], rules[1])
}

func TestInjectPreservesSurroundingContent(t *testing.T) {
	content := "app_name = 'demo'\nwebsite_route_rules = [{'from_route': '/a', 'to_route': 'a'}]\napp_title = 'Demo'\n"

	got := InjectRoutingRule(content, RoutingRule{FromRoute: "/b", ToRoute: "b"})

	assert.True(t, strings.HasPrefix(got, "app_name = 'demo'\n"))
	assert.True(t, strings.HasSuffix(got, "\napp_title = 'Demo'\n"))
	assert.Equal(t, 1, strings.Count(got, VariableName))
}

func TestRoundTrip(t *testing.T) {
	rules := []RoutingRule{
		{FromRoute: "/billing/<path:app_path>", ToRoute: "billing"},
		{FromRoute: "/crm/<path:app_path>", ToRoute: "crm"},
		{FromRoute: "/x", ToRoute: "x"},
	}

	content := "x = 1\n"
	for _, r := range rules {
		content = InjectRoutingRule(content, r)
	}

	parsed := ParseRoutingRules(content)
	require.Len(t, parsed, len(rules))
	// Each injection prepends, so parsed order is reverse insertion order.
	for i, r := range rules {
		assert.Equal(t, r, parsed[len(rules)-1-i])
	}
}

func TestNewSPARule(t *testing.T) {
	rule := NewSPARule("dashboard")
	assert.Equal(t, "/dashboard/<path:app_path>", rule.FromRoute)
	assert.Equal(t, "dashboard", rule.ToRoute)
	assert.Equal(t,
		"{'from_route': '/dashboard/<path:app_path>', 'to_route': 'dashboard'}",
		rule.Literal())
}

func TestParseRoutingRulesWithoutDeclaration(t *testing.T) {
	assert.Nil(t, ParseRoutingRules("app_name = 'demo'\n"))
}

func TestUpdateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hooks.py")
	require.NoError(t, os.WriteFile(path, []byte("app_name = 'demo'\n"), 0644))

	rule := NewSPARule("portal")
	require.NoError(t, UpdateFile(path, rule))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	rules := ParseRoutingRules(string(data))
	require.Len(t, rules, 1)
	assert.Equal(t, rule, rules[0])

	// Second update prepends before the first.
	other := NewSPARule("admin")
	require.NoError(t, UpdateFile(path, other))

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	rules = ParseRoutingRules(string(data))
	require.Len(t, rules, 2)
	assert.Equal(t, other, rules[0])
	assert.Equal(t, rule, rules[1])
}

func TestUpdateFileMissing(t *testing.T) {
	err := UpdateFile(filepath.Join(t.TempDir(), "hooks.py"), NewSPARule("x"))
	require.Error(t, err)
}
