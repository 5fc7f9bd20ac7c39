package answer

import (
	"context"
	"strings"

	"github.com/soundprediction/herorag/pkg/nlp"
)

// MockClient is a deterministic rule-based stand-in for a language
// model. It implements nlp.Client so the demo can run end to end with
// no API key and no local server, and so the model path can be tested
// without network access.
type MockClient struct{}

// NewMockClient creates a mock backend.
func NewMockClient() *MockClient {
	return &MockClient{}
}

type heroRule struct {
	triggers []string
	name     string
	realName string
}

var heroRules = []heroRule{
	{[]string{"superman", "clark"}, "Superman", "Clark Kent"},
	{[]string{"batman", "bruce"}, "Batman", "Bruce Wayne"},
	{[]string{"wonder woman", "diana"}, "Wonder Woman", "Diana Prince"},
	{[]string{"flash", "barry"}, "Flash", "Barry Allen"},
}

// Generate answers from the prompt alone. The prompt embeds both the
// question and the retrieved context (see BuildPrompt), so the rules
// check the question for intent and the whole prompt for facts.
func (m *MockClient) Generate(_ context.Context, _ string, userPrompt string) (string, error) {
	question := strings.ToLower(questionFrom(userPrompt))

	if strings.Contains(userPrompt, "No relevant information found.") {
		return "I couldn't find any relevant information to answer your question.", nil
	}

	for _, rule := range heroRules {
		if !containsAny(question, rule.triggers) {
			continue
		}
		if strings.Contains(question, "name") && strings.Contains(userPrompt, rule.realName) {
			return rule.name + "'s real name is " + rule.realName + ", as mentioned in the knowledge base.", nil
		}
		return heroFacts(rule.name, userPrompt), nil
	}

	if containsAny(question, []string{"team", "justice league", "group"}) {
		return "The Justice League is a team of superheroes including Superman, Batman, Wonder Woman, and Flash. " +
			"They work together to protect Earth from major threats.", nil
	}

	if containsAny(question, []string{"power", "ability", "strength"}) {
		return "The heroes have various powers: Superman has super strength and flight, Batman relies on " +
			"technology and intellect, Wonder Woman has combat skills and magical items, and Flash has super-speed.", nil
	}

	return "I found relevant superhero information in the knowledge base. " +
		"The context shows details about various heroes and their characteristics.", nil
}

// heroFacts assembles an answer from facts present in the prompt context.
func heroFacts(name, prompt string) string {
	factChecks := []struct {
		marker string
		detail string
	}{
		{"Krypton", "is from the planet Krypton"},
		{"Gotham", "operates in Gotham City"},
		{"Themyscira", "comes from Themyscira"},
		{"Central City", "works in Central City"},
		{"super strength", "has super strength"},
		{"flight", "can fly"},
		{"super speed", "has super-speed"},
		{"super-speed", "has super-speed"},
		{"martial arts", "is a master of martial arts"},
		{"Justice League", "is a member of the Justice League"},
	}

	var details []string
	seen := map[string]bool{}
	for _, check := range factChecks {
		if strings.Contains(prompt, check.marker) && !seen[check.detail] {
			details = append(details, check.detail)
			seen[check.detail] = true
		}
	}

	if len(details) == 0 {
		return "The context contains information about " + name + "."
	}
	return "Based on the retrieved context: " + name + " " + strings.Join(details, ", ") + "."
}

func questionFrom(prompt string) string {
	for _, line := range strings.Split(prompt, "\n") {
		if rest, ok := strings.CutPrefix(line, "QUESTION:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return prompt
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Describe implements nlp.Client.
func (m *MockClient) Describe() nlp.Description {
	return nlp.Description{Status: "ready", Backend: "mock", Model: "rule-based"}
}

// Close implements nlp.Client.
func (m *MockClient) Close() error {
	return nil
}
