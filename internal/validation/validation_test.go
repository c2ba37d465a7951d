package validation

import (
	"strings"
	"testing"
)

type sample struct {
	Name  string `validate:"required"`
	Email string `validate:"omitempty,email"`
	Level int    `validate:"min=1,max=10"`
	Kind  string `validate:"required,oneof=body mind"`
	Date  string `validate:"omitempty,datetime=2006-01-02"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		value   sample
		wantErr string
	}{
		{
			name:  "valid",
			value: sample{Name: "ok", Level: 5, Kind: "body", Date: "2026-09-01"},
		},
		{
			name:    "missing required",
			value:   sample{Level: 5, Kind: "mind"},
			wantErr: "name is required",
		},
		{
			name:    "below min",
			value:   sample{Name: "ok", Level: 0, Kind: "body"},
			wantErr: "at least",
		},
		{
			name:    "above max",
			value:   sample{Name: "ok", Level: 11, Kind: "body"},
			wantErr: "at most",
		},
		{
			name:    "bad oneof",
			value:   sample{Name: "ok", Level: 5, Kind: "spirit"},
			wantErr: "must be one of",
		},
		{
			name:    "bad email",
			value:   sample{Name: "ok", Level: 5, Kind: "body", Email: "not-an-email"},
			wantErr: "valid email",
		},
		{
			name:    "bad date",
			value:   sample{Name: "ok", Level: 5, Kind: "body", Date: "01/09/2026"},
			wantErr: "format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.value)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Struct() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Struct() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
