package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain name", input: "John Doe", want: "John Doe"},
		{name: "trims whitespace", input: "  Jane Smith  ", want: "Jane Smith"},
		{name: "two characters is enough", input: "Jo", want: "Jo"},
		{name: "single character rejected", input: "J", wantErr: true},
		{name: "whitespace only rejected", input: "   ", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var invalid *InvalidInputError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, "name", invalid.Field)
				assert.NotEmpty(t, invalid.Hint)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "bare digits", input: "9876543210", want: "9876543210"},
		{name: "formatted number keeps separators", input: "(987) 654-3210", want: "(987) 654-3210"},
		{name: "international prefix", input: "+91 9876543210", want: "+91 9876543210"},
		{name: "letters stripped before counting", input: "call me at 9876543210", want: "   9876543210"},
		{name: "too few digits", input: "12345", wantErr: true},
		{name: "no digits", input: "my number", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePhone(tt.input)
			if tt.wantErr {
				var invalid *InvalidInputError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, "phone", invalid.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple address", input: "john@example.com"},
		{name: "dots and plus in local part", input: "john.doe+tag@mail.example.org"},
		{name: "trims whitespace", input: "  a@b.co  "},
		{name: "missing at", input: "john.example.com", wantErr: true},
		{name: "missing tld", input: "john@example", wantErr: true},
		{name: "embedded spaces", input: "jo hn@example.com", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateEmail(tt.input)
			if tt.wantErr {
				var invalid *InvalidInputError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, "email", invalid.Field)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateReason(t *testing.T) {
	got, err := ValidateReason("  chest pain  ")
	require.NoError(t, err)
	assert.Equal(t, "chest pain", got)

	_, err = ValidateReason("ok")
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "reason", invalid.Field)
}
