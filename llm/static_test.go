package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticComplete(t *testing.T) {
	var s Static

	first, err := s.Complete(context.Background(), "how do I save more?")
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	// Same prompt, same answer.
	second, err := s.Complete(context.Background(), "how do I save more?")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStaticCompleteAlwaysAnswers(t *testing.T) {
	var s Static
	for _, prompt := range []string{"", "a", "budget?", "very long prompt about savings goals"} {
		reply, err := s.Complete(context.Background(), prompt)
		require.NoError(t, err)
		assert.NotEmpty(t, reply)
	}
}
