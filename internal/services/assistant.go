package services

import "strings"

// assistantReplies maps message keywords to canned guidance. Entries are
// checked in order and the first hit wins.
var assistantReplies = []struct {
	keywords []string
	response string
}{
	{
		keywords: []string{"occupancy", "vacancy"},
		response: "Occupancy rate is calculated as (occupied units / total units) × 100. A healthy occupancy rate for rental properties is typically 90-95%. Would you like me to show you tutorials on improving occupancy rates?",
	},
	{
		keywords: []string{"revenue", "income"},
		response: "Property revenue includes rental income, fees, and other income sources. Key metrics to track are gross rental yield, net rental yield, and cash flow. I can help you understand these calculations better.",
	},
	{
		keywords: []string{"maintenance", "repair"},
		response: "Effective maintenance management involves preventive scheduling, vendor relationships, and quick response times. The average response time for maintenance requests should be 24-48 hours for non-emergency items.",
	},
	{
		keywords: []string{"market", "analysis"},
		response: "Market analysis involves studying comparable properties, rental rates, vacancy rates, and local economic factors. I can guide you through creating comprehensive market reports.",
	},
	{
		keywords: []string{"roi", "return"},
		response: "ROI (Return on Investment) for real estate is calculated as (Annual Rental Income - Annual Expenses) / Total Investment × 100. A good ROI for rental properties is typically 8-12%.",
	},
}

const assistantFallback = "I'm here to help with your real estate questions!"

// AssistantResponse picks the canned reply for a chat message by keyword.
// Matching is case-insensitive and unrecognized messages get a generic
// greeting.
func AssistantResponse(message string) string {
	lower := strings.ToLower(message)
	for _, entry := range assistantReplies {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.response
			}
		}
	}
	return assistantFallback
}
