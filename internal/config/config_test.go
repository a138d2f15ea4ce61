package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/outreach-dashboard-api/internal/domain"
)

func TestParseWorkspaces(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		expected    []domain.Workspace
		expectError bool
	}{
		{
			name:     "lista vazia",
			raw:      "",
			expected: []domain.Workspace{},
		},
		{
			name: "mantém a ordem declarada",
			raw:  "Zeta=tok-z; Alpha=tok-a ;",
			expected: []domain.Workspace{
				{Name: "Zeta", Token: "tok-z"},
				{Name: "Alpha", Token: "tok-a"},
			},
		},
		{
			name: "token pode conter sinal de igual",
			raw:  "Acme=abc==",
			expected: []domain.Workspace{
				{Name: "Acme", Token: "abc=="},
			},
		},
		{
			name:        "entrada sem token",
			raw:         "Acme",
			expectError: true,
		},
		{
			name:        "nome duplicado",
			raw:         "Acme=a;Acme=b",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workspaces, err := ParseWorkspaces(tt.raw)

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, workspaces)
		})
	}
}
