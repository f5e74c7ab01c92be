package build

import "testing"

func TestSemver(t *testing.T) {
	var tests = []struct {
		in   string
		want string
	}{
		{"v1.2.3", "v1.2.3"},
		{"1.2", "1.2"},
		{"release-v0.4.1-rc1", "v0.4.1"},
		{"v2.0.0-20250101120000-abcdef123456", "v2.0.0"},
		{"(devel)", "(devel)"},
	}
	for _, tt := range tests {
		if got := semver(tt.in); got != tt.want {
			t.Errorf("%q: Wanted %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestVersion(t *testing.T) {
	if Version() == "" {
		t.Error("Wanted non-empty version")
	}
}

func TestUTCOffset(t *testing.T) {
	var tests = []struct {
		in   string
		want string
	}{
		{"2025-03-01T12:30:00Z", "2025-03-01T12:30:00+00:00"},
		{"2025-03-01T12:30:00+02:00", "2025-03-01T12:30:00+02:00"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := utcOffset(tt.in); got != tt.want {
			t.Errorf("%q: Wanted %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestBuildTime(t *testing.T) {
	bt := BuildTime()
	if bt != "" && bt[len(bt)-1] == 'Z' {
		t.Errorf("Wanted numeric UTC offset, got %q", bt)
	}
	if again := BuildTime(); again != bt {
		t.Errorf("Wanted %q on second call, got %q", bt, again)
	}
}
