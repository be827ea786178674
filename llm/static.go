package llm

import (
	"context"
	"hash/fnv"
)

var cannedReplies = []string{
	"Review your largest spending category this month and see if one recurring expense can be trimmed.",
	"Try moving a fixed amount into savings right after each payday, before discretionary spending starts.",
	"Keep essential spending under half of your income where you can, and revisit category limits monthly.",
	"Small recurring subscriptions add up quickly. Cancel the ones you have not used in the last month.",
	"If a budget category keeps running hot, raise its limit consciously instead of overshooting it silently.",
}

// Static is the offline advisor used when no completion API key is
// configured. It answers from a fixed set of tips, picked deterministically
// from the prompt so repeated questions get consistent answers.
type Static struct{}

func (Static) Complete(_ context.Context, prompt string) (string, error) {
	h := fnv.New32a()
	h.Write([]byte(prompt))
	return cannedReplies[int(h.Sum32())%len(cannedReplies)], nil
}
