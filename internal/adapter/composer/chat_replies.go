package composer

import (
	"regexp"
	"strings"
)

type chatReply struct {
	pattern *regexp.Regexp
	reply   string
}

// Evaluated in order; the first match wins.
var chatReplies = []chatReply{
	{
		pattern: regexp.MustCompile(`^(hi|hello|hey|good (morning|afternoon|evening))`),
		reply:   "Hello! I'm your legal assistant for Bangladeshi law on cyber crime and women's and children's rights. How can I help you with legal questions today?",
	},
	{
		pattern: regexp.MustCompile(`what'?s your name|who are you|what are you`),
		reply:   "I'm a legal assistant designed to help answer questions about Bangladeshi cyber security law and the laws protecting women and children. What legal topic would you like to explore?",
	},
	{
		pattern: regexp.MustCompile(`how are you|how do you do`),
		reply:   "I'm functioning well and ready to help with your legal questions! I have access to legal documents on cyber security and rights protection law. What would you like to know?",
	},
	{
		pattern: regexp.MustCompile(`what can you do|what do you know`),
		reply: "I can help you understand Bangladeshi law by:\n\n" +
			"• Explaining legal definitions and concepts\n" +
			"• Finding relevant penalties and punishments\n" +
			"• Describing legal procedures and processes\n" +
			"• Answering questions about digital rights and protections\n\n" +
			"Try asking about cyber crimes, data protection, domestic violence or child protection laws!",
	},
	{
		pattern: regexp.MustCompile(`are you (a )?robot|are you (an )?ai|are you human`),
		reply:   "Yes, I'm an AI legal assistant. I search through legal documents and provide relevant information to help answer your legal questions.",
	},
	{
		pattern: regexp.MustCompile(`thank you|thanks`),
		reply:   "You're welcome! Feel free to ask me anything about Bangladeshi law anytime.",
	},
	{
		pattern: regexp.MustCompile(`bye|goodbye|see you`),
		reply:   "Goodbye! Come back anytime you have legal questions.",
	},
}

const refusalReply = "I'm a legal assistant focused on Bangladeshi law. I'm not equipped to answer general questions, " +
	"but I'd be happy to help with legal topics like cyber crimes, data protection, domestic violence, " +
	"child rights, or related legal matters. What legal question can I help you with?"

// ChatReply returns the canned reply for a small-talk query.
func ChatReply(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, r := range chatReplies {
		if r.pattern.MatchString(q) {
			return r.reply
		}
	}
	return refusalReply
}
