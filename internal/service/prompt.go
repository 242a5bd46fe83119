package service

import (
	"fmt"

	"ai-healthassist-be/internal/constant"
)

// PromptCompiler turns a user's health context into the opening system turn
// and produces the canned conversation openers.
type PromptCompiler struct{}

func NewPromptCompiler() *PromptCompiler {
	return &PromptCompiler{}
}

func (p *PromptCompiler) SystemPrompt(userContext string) string {
	return fmt.Sprintf(constant.ChatSystemPromptTemplate, userContext)
}

func (p *PromptCompiler) WelcomeMessage(firstName string) string {
	if firstName == "" {
		firstName = "there"
	}
	return fmt.Sprintf("Hey %s! How are you feeling today?", firstName)
}
