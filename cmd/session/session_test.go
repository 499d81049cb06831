package session

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinepods/pinectl/internal/cliutil/clitest"
)

func TestCleanExpired(t *testing.T) {
	env := clitest.NewEnv(t, http.StatusOK, `{"status": "cleaned", "count": 3}`)

	require.NoError(t, runCleanExpired(context.Background(), env.CLI))

	req := env.Server.LastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/clean_expired_sessions/", req.Path)
	assert.Equal(t, `{"status":"cleaned","count":3}`+"\n", env.Out.String())
}

func TestCleanExpired_Error(t *testing.T) {
	env := clitest.NewEnv(t, http.StatusForbidden, `{"detail":"forbidden"}`)

	require.NoError(t, runCleanExpired(context.Background(), env.CLI))

	assert.Equal(t, "Error calling clean_expired_sessions: 403\n", env.Out.String())
}

func TestCheckSaved(t *testing.T) {
	env := clitest.NewEnv(t, http.StatusOK, `5`)

	require.NoError(t, runCheckSaved(context.Background(), env.CLI))

	req := env.Server.LastRequest(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/check_saved_session/", req.Path)
	assert.Equal(t, "User ID: 5\n", env.Out.String())
}

func TestCheckSaved_NotFound(t *testing.T) {
	env := clitest.NewEnv(t, http.StatusNotFound, ``)

	require.NoError(t, runCheckSaved(context.Background(), env.CLI))

	assert.Equal(t, "No saved session found\n", env.Out.String())
}

func TestCreate(t *testing.T) {
	env := clitest.NewEnv(t, http.StatusOK, `{"status":"ok"}`)

	require.NoError(t, runCreate(context.Background(), env.CLI, &createOptions{userID: "9"}))

	req := env.Server.LastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/create_session/9", req.Path)
	assert.Equal(t, "Session created successfully\n", env.Out.String())
}

func TestCreate_Error(t *testing.T) {
	env := clitest.NewEnv(t, http.StatusInternalServerError, `oops`)

	require.NoError(t, runCreate(context.Background(), env.CLI, &createOptions{userID: "9"}))

	assert.Equal(t, "Error creating session: 500\n", env.Out.String())
}

func TestCommand_Execute(t *testing.T) {
	env := clitest.NewEnv(t, http.StatusOK, `null`)

	cmd := NewCommand(env.CLI)
	cmd.SetArgs([]string{"create", "11"})
	cmd.SetOut(env.Err)
	cmd.SetErr(env.Err)

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Equal(t, "/create_session/11", env.Server.LastRequest(t).Path)
	assert.Equal(t, "Session created successfully\n", env.Out.String())
}

func TestCommand_TransportErrorPropagates(t *testing.T) {
	env := clitest.NewEnv(t, http.StatusOK, `null`)
	env.Server.Close()

	err := runCreate(context.Background(), env.CLI, &createOptions{userID: "9"})
	assert.Error(t, err)
	assert.Empty(t, env.Out.String())
}
