package version

import (
	"testing"
)

func TestParse(t *testing.T) {
	table := []struct {
		s                   string
		major, minor, patch int
		valid               bool
	}{
		{"1.0.3", 1, 0, 3, true},
		{"0.2.1", 0, 2, 1, true},
		{"10.20.30", 10, 20, 30, true},
		{"1.0", 0, 0, 0, false},
		{"1.0.3.7", 0, 0, 0, false},
		{"1.0.meow", 0, 0, 0, false},
		{"1.0.-3", 0, 0, 0, false},
		{"", 0, 0, 0, false},
	}

	for i, line := range table {
		major, minor, patch, err := Parse(line.s)
		if line.valid && err != nil {
			t.Errorf("%d) Parse(%q) failed: %v", i+1, line.s, err)
		} else if !line.valid && err == nil {
			t.Errorf("%d) Parse(%q) accepted an invalid version", i+1, line.s)
		}
		if !line.valid || err != nil {
			continue
		}
		if major != line.major || minor != line.minor || patch != line.patch {
			t.Errorf("%d) Parse(%q) = (%d, %d, %d), want (%d, %d, %d)",
				i+1, line.s, major, minor, patch,
				line.major, line.minor, line.patch)
		}
	}
}

func TestLater(t *testing.T) {
	table := []struct {
		s1, s2 string
		later  bool
	}{
		{"1.0.0", "0.9.9", true},
		{"0.9.9", "1.0.0", false},
		{"0.2.1", "0.2.0", true},
		{"0.2.0", "0.2.1", false},
		{"0.2.1", "0.2.1", false},
		{"1.2.0", "1.1.9", true},
	}

	for i, line := range table {
		later, err := Later(line.s1, line.s2)
		if err != nil {
			t.Errorf("%d) Later(%q, %q) failed: %v", i+1, line.s1, line.s2, err)
			continue
		}
		if later != line.later {
			t.Errorf("%d) Later(%q, %q) = %v, want %v",
				i+1, line.s1, line.s2, later, line.later)
		}
	}

	if _, err := Later("meow", "1.0.0"); err == nil {
		t.Errorf("Later accepted an invalid version string")
	}
}

func TestSourceVersionParses(t *testing.T) {
	if _, _, _, err := Parse(SourceVersion); err != nil {
		t.Errorf("SourceVersion %q does not parse: %v", SourceVersion, err)
	}
}
