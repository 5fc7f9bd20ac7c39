package answer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundprediction/herorag/pkg/types"
)

func mockAnswer(t *testing.T, retrieved []types.ContextItem, query string) string {
	t.Helper()
	prompt := BuildPrompt(BuildContext(retrieved), query)
	text, err := NewMockClient().Generate(context.Background(), SystemPrompt, prompt)
	require.NoError(t, err)
	return text
}

func TestMockClientRealNameQuestions(t *testing.T) {
	tests := []struct {
		query     string
		retrieved []types.ContextItem
		want      string
	}{
		{
			query:     "What is Superman's real name?",
			retrieved: []types.ContextItem{supermanDoc()},
			want:      "Superman's real name is Clark Kent",
		},
		{
			query: "What is batman's real name?",
			retrieved: []types.ContextItem{
				types.HeroSummary{Name: "Batman", RealName: "Bruce Wayne", Origin: "Gotham City"},
			},
			want: "Batman's real name is Bruce Wayne",
		},
		{
			query: "What is the flash's real name?",
			retrieved: []types.ContextItem{
				types.TeammatePair{Teammate: "Flash", RealName: "Barry Allen"},
			},
			want: "Flash's real name is Barry Allen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Contains(t, mockAnswer(t, tt.retrieved, tt.query), tt.want)
		})
	}
}

func TestMockClientHeroFactAssembly(t *testing.T) {
	retrieved := []types.ContextItem{
		types.HeroSummary{
			Name:     "Superman",
			RealName: "Clark Kent",
			Powers:   []string{"super strength", "flight"},
			Origin:   "Krypton",
			Team:     "Justice League",
		},
	}

	text := mockAnswer(t, retrieved, "Tell me about superman's powers")
	assert.Contains(t, text, "Superman")
	assert.Contains(t, text, "Krypton")
	assert.Contains(t, text, "super strength")
}

func TestMockClientTeamQuestion(t *testing.T) {
	retrieved := []types.ContextItem{
		types.TeamMembership{Hero: "Superman", Powers: []string{"flight"}},
	}

	text := mockAnswer(t, retrieved, "Who is in the justice league team?")
	assert.Contains(t, text, "Justice League")
	assert.Contains(t, text, "Superman")
}

func TestMockClientNoContext(t *testing.T) {
	text := mockAnswer(t, nil, "Who is Aquaman?")
	assert.Equal(t, "I couldn't find any relevant information to answer your question.", text)
}

func TestMockClientThroughGenerator(t *testing.T) {
	gen := NewGenerator(NewMockClient(), nil)

	answer := gen.Generate(context.Background(), []types.ContextItem{supermanDoc()}, "What is Superman's real name?", types.ModeTraditional)
	assert.Equal(t, "traditional_llm", answer.Method)
	assert.Contains(t, answer.Text, "Clark Kent")
}
