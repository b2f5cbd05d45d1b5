package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptTopics(t *testing.T) {
	script := DefaultScript()

	topics := script.Topics()
	require.Len(t, topics, 5)
	assert.Equal(t, AgentTopicID, topics[4].ID)
	assert.NotEmpty(t, script.Greeting())
}

func TestConversationTopicReplies(t *testing.T) {
	conv := NewConversation(DefaultScript())

	for id := 1; id <= 4; id++ {
		reply, ok := conv.SelectTopic(id)
		require.True(t, ok, "topic %d", id)
		assert.NotEmpty(t, reply)
		assert.False(t, conv.WaitingForAgent())
	}

	_, ok := conv.SelectTopic(42)
	assert.False(t, ok)
}

func TestConversationAgentEscalation(t *testing.T) {
	conv := NewConversation(DefaultScript())

	idle := conv.UserMessage("hello?")

	reply, ok := conv.SelectTopic(AgentTopicID)
	require.True(t, ok)
	assert.NotEmpty(t, reply)
	assert.True(t, conv.WaitingForAgent())

	waiting := conv.UserMessage("are you there?")
	assert.NotEqual(t, idle, waiting, "fallback changes once an agent is requested")
}
