package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikey/coldflow-core/internal/core"
)

func TestDecodeReplyPlainJSON(t *testing.T) {
	cmd, err := DecodeReply(`{"action":"find","parameters":{"count":200},"intent":"search","confidence":0.9}`)
	require.NoError(t, err)
	assert.Equal(t, "find", cmd.Action)
	assert.Equal(t, core.IntentSearch, cmd.Intent)
	assert.Equal(t, 0.9, cmd.Confidence)
	assert.Equal(t, float64(200), cmd.Parameters["count"])
}

func TestDecodeReplyExtractsEmbeddedObject(t *testing.T) {
	reply := "Sure! Here is the parsed command:\n```json\n" +
		`{"action":"verify","parameters":{"target":"current_leads"}}` +
		"\n```\nLet me know if you need anything else."
	cmd, err := DecodeReply(reply)
	require.NoError(t, err)
	assert.Equal(t, "verify", cmd.Action)
	assert.Equal(t, "current_leads", cmd.Parameters["target"])
}

func TestDecodeReplyNoJSON(t *testing.T) {
	_, err := DecodeReply("I could not parse that command.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no JSON object")
}

func TestDecodeReplyMalformedJSON(t *testing.T) {
	_, err := DecodeReply(`{"action": "find", "parameters": {`)
	require.Error(t, err)
}

func TestDecodeReplyMissingAction(t *testing.T) {
	_, err := DecodeReply(`{"parameters":{"count":10}}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no action")
}

func TestDecodeReplyEnsuresParameters(t *testing.T) {
	cmd, err := DecodeReply(`{"action":"help"}`)
	require.NoError(t, err)
	assert.NotNil(t, cmd.Parameters)
}

func TestUserPromptQuotesInput(t *testing.T) {
	assert.Equal(t, `Parse this command: "find 50 leads"`, UserPrompt("find 50 leads"))
}
