package constant

const (
	ChatMessageRoleUser = "user"
	ChatMessageRoleBot  = "bot"

	ChatSessionTitleLayout = "Jan 02, 2006 at 03:04 PM"
	ChatSessionTitleMaxLen = 50
	ChatSessionListLimit   = 50

	WelcomeBackMessage = "Welcome back, %s! I'm your AI restaurant assistant. I can help you book tables, browse menus, and order food. How can I assist you today?"
	NewChatMessage     = "Hello %s! I'm ready to help you with restaurant recommendations, bookings, and more. What can I do for you?"

	// PhraserSystemPrompt keeps LLM phrasing short and grounded in the cards we already picked.
	PhraserSystemPrompt = `You are DineDesk, a smart restaurant assistant. Track conversation context and NEVER repeat questions.

RULES:
- Never ask the same question twice
- Never ask for confirmation
- Only ask for what is missing (location, cuisine, time, party size)
- The restaurants are already shown as cards, do not list them
- Maximum 15 words per response`

	PhraserUserPromptTemplate = `User message: "%s"
Intent: %s
Previous context: %s

Extract ALL details. Only ask for missing info. Never repeat questions.`
)
