package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const adviceSystemPrompt = `You are a career advisor. Given a job's automation
risk assessment, write practical upskilling guidance for someone currently in
that role. Be specific about which skills to build and why, grounded in the
risk and protective factors provided. Keep it under 300 words. Do not restate
the risk numbers.`

type LLMUsage struct {
	InputTokens  int64
	OutputTokens int64
}

func (u LLMUsage) TotalTokens() int64 {
	return u.InputTokens + u.OutputTokens
}

// AdviceClient generates upskilling guidance for an assembled job record.
// It is read-only with respect to risk data: advice never feeds back into
// the classifier or the stored record.
type AdviceClient struct {
	apiKey string
	model  string
}

func NewAdviceClient(apiKey, model string) *AdviceClient {
	return &AdviceClient{apiKey: apiKey, model: model}
}

// buildAdvicePrompt flattens the record's qualitative fields into the user
// prompt. Numeric risk values are deliberately omitted.
func buildAdvicePrompt(rec *JobRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Job title: %s\n", rec.JobTitle)
	fmt.Fprintf(&b, "Category: %s\n", rec.JobCategory)
	fmt.Fprintf(&b, "Risk level: %s\n", rec.Risk.RiskCategory)
	fmt.Fprintf(&b, "Outlook: %s\n", rec.Risk.GrowthAnalysis)
	if len(rec.Risk.RiskFactors) > 0 {
		fmt.Fprintf(&b, "Risk factors:\n- %s\n", strings.Join(rec.Risk.RiskFactors, "\n- "))
	}
	if len(rec.Risk.ProtectiveFactors) > 0 {
		fmt.Fprintf(&b, "Protective factors:\n- %s\n", strings.Join(rec.Risk.ProtectiveFactors, "\n- "))
	}
	if len(rec.Risk.EvolvingSkills) > 0 {
		fmt.Fprintf(&b, "Skills in demand:\n- %s\n", strings.Join(rec.Risk.EvolvingSkills, "\n- "))
	}
	return b.String()
}

// Advise returns upskilling guidance for a job record.
func (c *AdviceClient) Advise(ctx context.Context, rec *JobRecord) (string, LLMUsage, error) {
	client := anthropic.NewClient(option.WithAPIKey(c.apiKey))

	message, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: adviceSystemPrompt, CacheControl: anthropic.NewCacheControlEphemeralParam()},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildAdvicePrompt(rec))),
		},
	})
	if err != nil {
		log.Printf("advice anthropic error: %v", err)
		return "", LLMUsage{}, fmt.Errorf("Anthropic API error: %w", err)
	}
	usage := LLMUsage{
		InputTokens:  message.Usage.InputTokens,
		OutputTokens: message.Usage.OutputTokens,
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			log.Printf("advice response title=%q size=%d tokens_in=%d tokens_out=%d", rec.JobTitle, len(block.Text), usage.InputTokens, usage.OutputTokens)
			return block.Text, usage, nil
		}
	}
	return "", usage, fmt.Errorf("no text content in Anthropic response")
}
