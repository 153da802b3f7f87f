package rubric

import "testing"

func TestSuggestRoleCertificationsAlias(t *testing.T) {
	certs := SuggestRoleCertifications("Software Developer", 6)
	if len(certs) == 0 {
		t.Fatal("alias should resolve to the software engineer catalog")
	}

	canonical := SuggestRoleCertifications("software engineer", 6)
	if len(certs) != len(canonical) {
		t.Errorf("alias returned %d certs, canonical returned %d", len(certs), len(canonical))
	}
	for i := range certs {
		if certs[i] != canonical[i] {
			t.Errorf("cert %d differs: %q vs %q", i, certs[i], canonical[i])
		}
	}
}

func TestSuggestRoleCertificationsNormalization(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{"  DevOps Engineer  ", true},
		{"SRE", true},
		{"HR", true},
		{"iOS Developer", true},
		{"astronaut", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			got := SuggestRoleCertifications(tt.role, 6)
			if (len(got) > 0) != tt.want {
				t.Errorf("role %q: expected certs=%v, got %d entries", tt.role, tt.want, len(got))
			}
		})
	}
}

func TestSuggestRoleCertificationsLimit(t *testing.T) {
	if got := SuggestRoleCertifications("marketing", 2); len(got) != 2 {
		t.Errorf("expected 2 certs, got %d", len(got))
	}
	if got := SuggestRoleCertifications("marketing", 0); got != nil {
		t.Errorf("expected nil for zero limit, got %v", got)
	}
	if got := SuggestRoleCertifications("marketing", 100); len(got) != 6 {
		t.Errorf("expected the full catalog of 6, got %d", len(got))
	}
}

func TestRoleCatalogShape(t *testing.T) {
	for role, certs := range roleCerts {
		if len(certs) != 6 {
			t.Errorf("role %q should list 6 certifications, has %d", role, len(certs))
		}
		seen := map[string]bool{}
		for _, c := range certs {
			if seen[c] {
				t.Errorf("role %q lists duplicate cert %q", role, c)
			}
			seen[c] = true
		}
	}
}
