package cli

import "testing"

func TestValidateName(t *testing.T) {
	valid := []string{"dashboard", "customer-portal", "app2", "x"}
	for _, name := range valid {
		if err := validateName(name); err != nil {
			t.Errorf("validateName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "-dash", "Dash", "my app", "café", "a_b"}
	for _, name := range invalid {
		if err := validateName(name); err == nil {
			t.Errorf("validateName(%q) = nil, want error", name)
		}
	}
}
