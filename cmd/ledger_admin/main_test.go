package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/SscSPs/rental_ledger/internal/platform/config"
	"github.com/SscSPs/rental_ledger/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticConfig() (*config.Config, error) {
	return &config.Config{JWTSecret: "cli-secret"}, nil
}

func TestRun_GenerateKey(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"generate-key"}, &out, staticConfig))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	key := strings.TrimSpace(strings.TrimPrefix(lines[0], "admin key:"))
	hash := strings.TrimSpace(strings.TrimPrefix(lines[1], "ADMIN_API_KEY_HASH:"))
	assert.True(t, utils.CheckAdminKey(key, hash))
}

func TestRun_HashKey(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"hash-key", "letmein"}, &out, staticConfig))
	assert.True(t, utils.CheckAdminKey("letmein", strings.TrimSpace(out.String())))

	assert.Error(t, run([]string{"hash-key"}, &out, staticConfig))
}

func TestRun_IssueToken(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"issue-token", "-subject", "rental-backend", "-ttl", "1h"}, &out, staticConfig))

	claims, err := utils.ParseServiceToken(strings.TrimSpace(out.String()), "cli-secret")
	require.NoError(t, err)
	assert.Equal(t, "rental-backend", claims.Subject)

	assert.Error(t, run([]string{"issue-token"}, &out, staticConfig))
	assert.Error(t, run([]string{"issue-token", "-bogus"}, &out, staticConfig))
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorContains(t, run(nil, &out, staticConfig), "usage")
	assert.ErrorContains(t, run([]string{"rotate"}, &out, staticConfig), "unknown command")
}
