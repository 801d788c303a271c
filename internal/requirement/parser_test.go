package requirement

import (
	"errors"
	"testing"
)

func TestParseLine_Basic(t *testing.T) {
	tests := []struct {
		line      string
		name      string
		specifier string
	}{
		{"requests", "requests", ""},
		{"requests>=2.28", "requests", ">=2.28"},
		{"requests >= 2.28, < 3", "requests", ">=2.28,<3"},
		{"urllib3==1.26.5", "urllib3", "==1.26.5"},
		{"Flask_SQLAlchemy~=3.0", "Flask_SQLAlchemy", "~=3.0"},
		{"certifi (>=2023.7.22)", "certifi", ">=2023.7.22"},
		{"pip>=21.0  # pinned for resolver", "pip", ">=21.0"},
		// Pre-release segments in clause versions are valid PEP 440.
		{"tensorflow>=2.0rc1", "tensorflow", ">=2.0rc1"},
		{"packaging==24.0b1", "packaging", "==24.0b1"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			req, err := ParseLine(tt.line)
			if err != nil {
				t.Fatalf("ParseLine(%q) error: %v", tt.line, err)
			}
			if req.Name != tt.name {
				t.Errorf("Name = %q, want %q", req.Name, tt.name)
			}
			if req.Specifier != tt.specifier {
				t.Errorf("Specifier = %q, want %q", req.Specifier, tt.specifier)
			}
		})
	}
}

func TestParseLine_Extras(t *testing.T) {
	req, err := ParseLine("requests[socks,security]>=2.28")
	if err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}
	if len(req.Extras) != 2 || req.Extras[0] != "socks" || req.Extras[1] != "security" {
		t.Errorf("Extras = %v, want [socks security]", req.Extras)
	}
	if req.Specifier != ">=2.28" {
		t.Errorf("Specifier = %q, want %q", req.Specifier, ">=2.28")
	}
	if got := req.String(); got != "requests[socks,security]>=2.28" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseLine_Marker(t *testing.T) {
	req, err := ParseLine(`pywin32>=300; sys_platform == "win32"`)
	if err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}
	if req.Name != "pywin32" {
		t.Errorf("Name = %q, want %q", req.Name, "pywin32")
	}
	if req.Marker != `sys_platform == "win32"` {
		t.Errorf("Marker = %q", req.Marker)
	}
}

func TestParseLine_DirectReference(t *testing.T) {
	req, err := ParseLine("mypkg @ https://example.com/mypkg-1.0.tar.gz")
	if err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}
	if req.Name != "mypkg" {
		t.Errorf("Name = %q, want %q", req.Name, "mypkg")
	}
	if req.URL != "https://example.com/mypkg-1.0.tar.gz" {
		t.Errorf("URL = %q", req.URL)
	}
	if req.HasSpecifier() {
		t.Error("direct reference should have no specifier")
	}
}

func TestParseLine_Invalid(t *testing.T) {
	tests := []string{
		"",
		"   # just a comment",
		">=2.0",
		"requests[socks",
		"requests^2.0",
	}

	for _, line := range tests {
		t.Run(line, func(t *testing.T) {
			_, err := ParseLine(line)
			if err == nil {
				t.Fatalf("ParseLine(%q) expected error, got nil", line)
			}
			if !errors.Is(err, ErrInvalidRequirement) {
				t.Errorf("error = %v, want ErrInvalidRequirement", err)
			}
		})
	}
}

func TestStripComment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"requests>=2.28 # comment", "requests>=2.28 "},
		{"# full comment", ""},
		{"no-comment==1.0", "no-comment==1.0"},
		// A "#" not preceded by whitespace is not a comment.
		{"weird#name==1.0", "weird#name==1.0"},
	}

	for _, tt := range tests {
		if got := stripComment(tt.in); got != tt.want {
			t.Errorf("stripComment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
