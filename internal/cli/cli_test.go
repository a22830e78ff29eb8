package cli

import (
	"errors"
	"testing"

	"github.com/fulgidus/gauss/internal/config"
	"github.com/fulgidus/gauss/pkg/gauss"
)

// TestParseInt32 tests command-line integer parsing.
func TestParseInt32(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int32
		wantErr bool
	}{
		{
			name:  "small positive",
			input: "5",
			want:  5,
		},
		{
			name:  "zero",
			input: "0",
			want:  0,
		},
		{
			name:  "negative",
			input: "-42",
			want:  -42,
		},
		{
			name:  "max int32",
			input: "2147483647",
			want:  2147483647,
		},
		{
			name:    "overflows int32",
			input:   "2147483648",
			wantErr: true,
		},
		{
			name:    "not a number",
			input:   "ten",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInt32(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseInt32(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseInt32(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// TestCompute tests mode dispatch, including the differing overflow behavior
// of the three modes at the 32-bit boundary.
func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		n       int32
		want    int64
		wantErr error
	}{
		{
			name: "wrap small",
			mode: config.ModeWrap,
			n:    10,
			want: 55,
		},
		{
			name: "wide small",
			mode: config.ModeWide,
			n:    10,
			want: 55,
		},
		{
			name: "checked small",
			mode: config.ModeChecked,
			n:    10,
			want: 55,
		},
		{
			name: "wrap past boundary wraps",
			mode: config.ModeWrap,
			n:    65536,
			want: 32768,
		},
		{
			name: "wide past boundary is exact",
			mode: config.ModeWide,
			n:    65536,
			want: 2147516416,
		},
		{
			name:    "checked past boundary errors",
			mode:    config.ModeChecked,
			n:       65536,
			wantErr: gauss.ErrOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := compute(tt.mode, tt.n)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("compute(%q, %d) error = %v, want %v", tt.mode, tt.n, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("compute(%q, %d) unexpected error: %v", tt.mode, tt.n, err)
			}
			if got != tt.want {
				t.Errorf("compute(%q, %d) = %d, want %d", tt.mode, tt.n, got, tt.want)
			}
		})
	}
}

// TestCompute_UnknownMode rejects modes the config validator would also
// reject, in case the flag bypasses config validation.
func TestCompute_UnknownMode(t *testing.T) {
	if _, err := compute("saturate", 10); err == nil {
		t.Error("expected error for unknown mode")
	}
}

// TestReference checks the recursion-limit gate in front of the recursive
// routine, and the routine's documented returns-n behavior.
func TestReference(t *testing.T) {
	got, err := reference(5, 1000)
	if err != nil {
		t.Fatalf("reference(5, 1000) unexpected error: %v", err)
	}
	if got != 5 {
		t.Errorf("reference(5, 1000) = %d, want 5 (the routine returns n itself)", got)
	}

	if _, err := reference(1001, 1000); err == nil {
		t.Error("expected error when n exceeds the configured recursion limit")
	}

	if _, err := reference(0, 1000); !errors.Is(err, gauss.ErrNonPositive) {
		t.Errorf("reference(0, 1000) error = %v, want ErrNonPositive", err)
	}
}
