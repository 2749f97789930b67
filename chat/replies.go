package chat

import (
	"fmt"
	"strings"

	"agent-marketplace/marketplace"
)

// replyPools holds the canned agent replies, keyed by agent category.
// Unrecognized categories fall back to the UTILITY pool.
var replyPools = map[string][]string{
	marketplace.CategoryWeb3: {
		"I can help you analyze your DeFi portfolio and suggest optimizations.",
		"Let me check the latest blockchain data for you.",
		"I'm scanning multiple protocols to find the best yield opportunities.",
		"Based on current gas prices, I'd recommend waiting for a better time to execute this transaction.",
	},
	marketplace.CategoryShopping: {
		"I found some great deals on that item across multiple stores!",
		"Let me compare prices and find the best value for your budget.",
		"I can help you track price changes and notify you when it drops.",
		"Based on your preferences, here are some sustainable alternatives.",
	},
	marketplace.CategoryUtility: {
		"I can process that document and extract the key information for you.",
		"Let me organize your calendar and find the optimal meeting time.",
		"I'll review your code and suggest improvements for better performance.",
		"I can help automate this task to save you time.",
	},
	marketplace.CategoryFinance: {
		"I've analyzed your spending patterns and found potential savings opportunities.",
		"Let me assess your investment portfolio and suggest rebalancing strategies.",
		"Based on current market conditions, here's my recommendation.",
		"I can help optimize your tax strategy for maximum savings.",
	},
	marketplace.CategoryHealth: {
		"I can help analyze your symptoms, but please consult a healthcare professional for diagnosis.",
		"Let me create a personalized workout plan based on your fitness goals.",
		"I'll track your mood patterns and suggest wellness strategies.",
		"Here are some stress management techniques that might help.",
	},
	marketplace.CategoryEducation: {
		"I can help you practice conversation in any language you're learning.",
		"Let me generate some quiz questions to test your understanding.",
		"I'll summarize this research paper and highlight the key findings.",
		"Here's a study schedule optimized for your learning style.",
	},
	marketplace.CategoryEntertainment: {
		"Based on your viewing history, I recommend these movies and shows.",
		"I found some new music that matches your taste perfectly!",
		"Let me analyze your gameplay and suggest strategy improvements.",
		"Here's a curated playlist for your current mood.",
	},
	marketplace.CategoryBusiness: {
		"I've completed the market research analysis you requested.",
		"Here are some qualified leads that match your target criteria.",
		"I can help create engaging content optimized for your audience.",
		"Let me analyze your competitors and identify market opportunities.",
	},
}

// pool returns the reply pool for a category.
func pool(category string) []string {
	if p, ok := replyPools[category]; ok {
		return p
	}
	return replyPools[marketplace.CategoryUtility]
}

// greeting builds the opening agent message from its name and category.
func greeting(agent marketplace.Agent) string {
	return fmt.Sprintf("Hello! I'm %s. I specialize in %s tasks. How can I help you today?",
		agent.Name, strings.ToLower(agent.Category))
}
