package errors

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "seeds.tif", false},
		{"valid nested", "data/in/seeds.asc", false},
		{"valid absolute", "/tmp/out.tif", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "foo\x00.tif", true},
		{"control char", "foo\x01.tif", true},
		{"newline", "foo\n.tif", true},
		{"directory", "out/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath("input", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateDistinctPaths(t *testing.T) {
	if err := ValidateDistinctPaths("in.tif", "out.tif"); err != nil {
		t.Errorf("distinct paths rejected: %v", err)
	}
	if err := ValidateDistinctPaths("in.tif", "./in.tif"); err == nil {
		t.Error("same relative path accepted")
	}
	abs, _ := filepath.Abs("in.tif")
	if err := ValidateDistinctPaths("in.tif", abs); err == nil {
		t.Error("same absolute path accepted")
	}
}
