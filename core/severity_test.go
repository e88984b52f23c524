package core

import "testing"

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{VerboseLevel, "VERBOSE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarningLevel, "WARNING"},
		{ErrorLevel, "ERROR"},
		{Severity(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input   string
		want    Severity
		wantErr bool
	}{
		{"VERBOSE", VerboseLevel, false},
		{"debug", DebugLevel, false},
		{"Info", InfoLevel, false},
		{"WARNING", WarningLevel, false},
		{"warn", WarningLevel, false},
		{"ERROR", ErrorLevel, false},
		{"trace", InfoLevel, true},
		{"", InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseSeverity(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSeverity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSeverities_Ascending(t *testing.T) {
	all := Severities()
	if len(all) != 5 {
		t.Fatalf("Expected 5 severities, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i] <= all[i-1] {
			t.Errorf("Severities not ascending at index %d: %v", i, all)
		}
	}
}
