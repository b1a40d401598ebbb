package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgent(t *testing.T) {
	cmd := Agent()

	require.NotNil(t, cmd)
	assert.Equal(t, "agent [subscription-id]", cmd.Use)
	assert.Equal(t, "Build and deploy the containerized build agent", cmd.Short)
}

func TestAgent_ConfigFlag(t *testing.T) {
	cmd := Agent()

	flag := cmd.Flags().Lookup("config")
	require.NotNil(t, flag, "config flag should exist")
	assert.Equal(t, "c", flag.Shorthand)
}

func TestAgent_RedactFlag(t *testing.T) {
	cmd := Agent()

	flag := cmd.Flags().Lookup("redact")
	require.NotNil(t, flag, "redact flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}

func TestAgent_AcceptsOptionalSubscriptionArg(t *testing.T) {
	cmd := Agent()

	require.NotNil(t, cmd.Args)
	assert.NoError(t, cmd.Args(cmd, []string{}))
	assert.NoError(t, cmd.Args(cmd, []string{"00000000-0000-0000-0000-000000000000"}))
	assert.Error(t, cmd.Args(cmd, []string{"one", "two"}))
}

func TestAgent_RunE(t *testing.T) {
	cmd := Agent()
	assert.NotNil(t, cmd.RunE, "Agent command should have RunE function")
}
