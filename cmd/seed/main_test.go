package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delito/admin-api/pkg/auth"
	"github.com/delito/admin-api/pkg/config"
)

func TestDataDryRunPrintsCounts(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"data", "--dry-run", "--vendors", "3", "--delivery-persons", "2", "--customers", "5", "--orders", "12", "--complaints", "4"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "generated 3 vendors, 2 delivery persons, 5 customers, 12 orders")
	assert.Contains(t, out.String(), "4 complaints")
}

func TestTokenMintsParsableAdminToken(t *testing.T) {
	t.Setenv(config.EnvJWTSecret, "seed-secret")
	t.Setenv(config.EnvJWTIssuer, "delito-admin")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"token", "--admin-id", "ops-1", "--role", auth.RoleSuperAdmin})
	require.NoError(t, root.Execute())

	claims, err := auth.ParseAdminToken(config.JWTConfig{Secret: "seed-secret", Issuer: "delito-admin"}, strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "ops-1", claims.AdminID())
	assert.True(t, claims.IsAdmin())
}

func TestTokenRequiresSecret(t *testing.T) {
	t.Setenv(config.EnvJWTSecret, "")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"token"})
	assert.Error(t, root.Execute())
}
