package shorten

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContract(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Contract
		wantErr bool
	}{
		{name: "id contract", input: "id", want: ContractID},
		{name: "full contract", input: "full", want: ContractFull},
		{name: "case and spaces are ignored", input: " FULL ", want: ContractFull},
		{name: "unknown contract", input: "hash", wantErr: true},
		{name: "empty contract", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseContract(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownContract)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContractFields(t *testing.T) {
	assert.Equal(t, "originalURL", ContractID.DefaultRequestField())
	assert.Equal(t, "id", ContractID.ResponseField())
	assert.Equal(t, "longUrl", ContractFull.DefaultRequestField())
	assert.Equal(t, "shortUrl", ContractFull.ResponseField())
}

func TestNormalizeShortURL(t *testing.T) {
	tests := []struct {
		name     string
		contract Contract
		base     string
		body     map[string]any
		want     string
		wantErr  bool
	}{
		{
			name:     "identifier joined to base",
			contract: ContractID,
			base:     "https://urlshort.example.com",
			body:     map[string]any{"id": "abc123"},
			want:     "https://urlshort.example.com/abc123",
		},
		{
			name:     "trailing and leading slashes collapse",
			contract: ContractID,
			base:     "http://localhost:3000/",
			body:     map[string]any{"id": "/abc123"},
			want:     "http://localhost:3000/abc123",
		},
		{
			name:     "numeric identifier",
			contract: ContractID,
			base:     "http://localhost:3000",
			body:     map[string]any{"id": float64(42)},
			want:     "http://localhost:3000/42",
		},
		{
			name:     "absolute identifier returned verbatim",
			contract: ContractID,
			base:     "http://localhost:3000",
			body:     map[string]any{"id": "https://short.ly/xyz"},
			want:     "https://short.ly/xyz",
		},
		{
			name:     "full short url returned verbatim",
			contract: ContractFull,
			base:     "http://localhost:3000",
			body:     map[string]any{"shortUrl": "https://short.ly/abc123"},
			want:     "https://short.ly/abc123",
		},
		{
			name:     "full contract with relative value",
			contract: ContractFull,
			base:     "https://short.ly",
			body:     map[string]any{"shortUrl": "abc123"},
			want:     "https://short.ly/abc123",
		},
		{
			name:     "field of the other contract is ignored",
			contract: ContractFull,
			base:     "https://short.ly",
			body:     map[string]any{"id": "abc123"},
			wantErr:  true,
		},
		{
			name:     "empty identifier",
			contract: ContractID,
			base:     "https://short.ly",
			body:     map[string]any{"id": "  "},
			wantErr:  true,
		},
		{
			name:     "fractional identifier",
			contract: ContractID,
			base:     "https://short.ly",
			body:     map[string]any{"id": 1.5},
			wantErr:  true,
		},
		{
			name:     "object identifier",
			contract: ContractID,
			base:     "https://short.ly",
			body:     map[string]any{"id": map[string]any{"value": "x"}},
			wantErr:  true,
		},
		{
			name:     "relative identifier without base",
			contract: ContractID,
			body:     map[string]any{"id": "abc"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeShortURL(tt.contract, tt.base, tt.body)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMissingShortURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
