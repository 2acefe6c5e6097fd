package config

// GreetingMessage is the synthesized assistant turn a fresh or reset
// conversation starts with.
const GreetingMessage = "Hi! I'm your property assistant. Ask me about projects, units, prices or neighborhoods and I'll find the best matches for you."

// FallbackMessage is appended in place of an assistant turn when the chat
// gateway call fails.
const FallbackMessage = "Sorry, something went wrong on my side. Please try sending your question again."

// LeadSource tags leads captured through the chat widget so the backend can
// tell them apart from other intake channels.
const LeadSource = "chat_widget"

// Storage slot prefixes. Each visitor gets one slot per concern.
const (
	SlotSession = "chat_session:"
	SlotLead    = "chat_lead:"
	SlotLog     = "chat_log:"
)

// Result target constants, echoed by the remote gateway.
const (
	TargetProjects = "projects"
	TargetUnits    = "units"
	TargetChat     = "chat"
)
