package analyzer

import (
	"fmt"
	"strings"
)

const defaultContext = "No additional context provided"

const analysisPromptTemplate = `You are an expert at reading tone, subtext and intent in text messages.

Analyze the following message:

"%s"

Context: %s

Structure your analysis with exactly these sections:

1. **Overall Tone**: The emotional register of the message in one or two sentences.
2. **Likely Intent**: What the sender most plausibly wants.
3. **Potential Concerns**: Anything ambiguous, manipulative or easy to misread.
4. **Confidence Level**: High, Medium or Low - how certain you are of this reading.
5. **Red Flags**: Warning signs, or "None" if there are none.
6. **Positive Indicators**: Healthy or reassuring signals, or "None".
7. **Bottom Line**: A one-sentence plain-language takeaway.

Be direct and specific. Ground every observation in the actual wording of the message.`

const comparisonPromptTemplate = `You are an expert at reading tone, subtext and intent across a sequence of text messages.

Compare the following messages, in the order they were sent:

%s

Context: %s

Structure your analysis with exactly these sections:

1. **Pattern Analysis**: Recurring tones, shifts or escalation across the messages.
2. **Relationship Dynamic**: What the exchange suggests about the relationship.
3. **Consistency Check**: Whether the messages agree with each other or contradict.
4. **Overall Assessment**: Your read of the conversation as a whole.
5. **Key Insights**: The two or three observations that matter most.
6. **Bottom Line**: A one-sentence plain-language takeaway.

Be direct and specific. Ground every observation in the actual wording of the messages.`

func buildAnalysisPrompt(message, context string) string {
	if context == "" {
		context = defaultContext
	}
	return fmt.Sprintf(analysisPromptTemplate, message, context)
}

func buildComparisonPrompt(messages []string, context string) string {
	if context == "" {
		context = defaultContext
	}
	numbered := make([]string, len(messages))
	for i, m := range messages {
		numbered[i] = fmt.Sprintf("Message %d: %s", i+1, m)
	}
	return fmt.Sprintf(comparisonPromptTemplate, strings.Join(numbered, "\n"), context)
}
