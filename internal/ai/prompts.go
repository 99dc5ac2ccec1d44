package ai

const (
	// AI Model configuration
	geminiModel   = "gemini-2.5-flash"
	aiTemperature = 0.4
	maxTokens     = 1024
)

// RecommendationPrompt wraps a plain-text statistics summary of one roster.
const RecommendationPrompt = `You are an analyst for a competitive Rainbow Six Siege team.
Below is a statistics summary for the selected roster: team totals, best and worst maps,
side performance, and the strongest operators of each player.

Write short, practical recommendations for the next practice week:
- which maps to keep in the pool and which to practice or ban
- whether the team should lean on attack or defense
- one operator suggestion per player, based only on the numbers given
Use plain text with short bullet lines starting with "- ". No markdown headers, no emoji.
Do not invent numbers that are not in the summary.

SUMMARY:
%s`
