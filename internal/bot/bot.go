// Package bot implements the scripted support-chat assistant. The dialogue
// is a fixed tree: a topic menu, one canned reply per topic, and a fallback
// that depends on whether the visitor has asked for a human agent.
package bot

// Topic is one entry in the support menu.
type Topic struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// AgentTopicID is the menu entry that escalates to a human agent.
const AgentTopicID = 5

// Script holds the bot's canned dialogue.
type Script struct {
	greeting     string
	topics       []Topic
	replies      map[int]string
	agentReply   string
	fallbackIdle string
	fallbackWait string
}

// DefaultScript returns the built-in support dialogue.
func DefaultScript() *Script {
	return &Script{
		greeting: "Hello! I'm the support bot. Please choose a topic:",
		topics: []Topic{
			{ID: 1, Title: "Payment problem", Icon: "CreditCard"},
			{ID: 2, Title: "Item not received", Icon: "AlertCircle"},
			{ID: 3, Title: "Technical issue", Icon: "Settings"},
			{ID: 4, Title: "Question about ranks", Icon: "Crown"},
			{ID: AgentTopicID, Title: "Talk to an agent", Icon: "Users"},
		},
		replies: map[int]string{
			1: "For payment questions, check the transaction status in your profile. If the payment went through but the item never arrived, choose \"Talk to an agent\".",
			2: "Purchases are normally delivered instantly. Try refreshing the page; if that does not help, talk to an agent.",
			3: "Describe the problem in more detail, or talk to an agent for hands-on help.",
			4: "Rank overview:\n- Owner: full control\n- Administrator: manages store items\n- Support: handles the chat",
		},
		agentReply:   "Please wait, a support agent will join the chat shortly. Average wait time: 2-5 minutes.",
		fallbackIdle: "If you need an agent's help, choose \"Talk to an agent\" from the topic menu.",
		fallbackWait: "The agent has received your message and will reply soon.",
	}
}

// Greeting is the bot's opening message.
func (s *Script) Greeting() string {
	return s.greeting
}

// Topics returns the support menu in display order.
func (s *Script) Topics() []Topic {
	topics := make([]Topic, len(s.topics))
	copy(topics, s.topics)
	return topics
}

// Conversation tracks one visitor's dialogue state. It is confined to a
// single chat connection and is not safe for concurrent use.
type Conversation struct {
	script          *Script
	waitingForAgent bool
}

// NewConversation starts a conversation over the given script.
func NewConversation(script *Script) *Conversation {
	return &Conversation{script: script}
}

// WaitingForAgent reports whether the visitor has escalated to a human.
func (c *Conversation) WaitingForAgent() bool {
	return c.waitingForAgent
}

// SelectTopic handles a topic menu selection and returns the bot's reply.
// Choosing the agent topic flips the conversation into waiting state.
func (c *Conversation) SelectTopic(id int) (string, bool) {
	if id == AgentTopicID {
		c.waitingForAgent = true
		return c.script.agentReply, true
	}
	reply, ok := c.script.replies[id]
	return reply, ok
}

// UserMessage handles free-form visitor text and returns the bot's reply.
func (c *Conversation) UserMessage(text string) string {
	if c.waitingForAgent {
		return c.script.fallbackWait
	}
	return c.script.fallbackIdle
}
