package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"talentx/internal/domain/user"
	"talentx/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "talentx")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("JWT_ISSUER", "talentx")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "missing.env")))
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenCommand_IssuesVerifiableToken(t *testing.T) {
	setRequiredEnv(t)
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440002")

	out, err := execute(t, "token", "--user", id.String(), "--role", "talent")
	require.NoError(t, err)

	svc := jwt.NewHMACService("cli-secret", "talentx", time.Hour)
	identity, err := svc.Verify(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, user.Identity{ID: id, Role: user.RoleTalent}, identity)
}

func TestTokenCommand_RejectsBadInput(t *testing.T) {
	setRequiredEnv(t)

	_, err := execute(t, "token", "--user", "not-a-uuid", "--role", "TALENT")
	assert.ErrorContains(t, err, "invalid --user")

	_, err = execute(t, "token", "--user", uuid.NewString(), "--role", "ADMIN")
	assert.ErrorContains(t, err, "invalid --role")
}

func TestLoadFixtures_Default(t *testing.T) {
	f, err := loadFixtures("")
	require.NoError(t, err)
	assert.Len(t, f.Users, 4)
}
