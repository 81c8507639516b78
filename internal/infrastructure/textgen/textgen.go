// Package textgen writes job descriptions. A Generator asks an LLM provider for
// prose and falls back to a fixed template whenever the provider is missing,
// slow, failing or silent, so callers always get a description.
package textgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

const DefaultTimeout = 30 * time.Second

type Request struct {
	Title       string
	CompanyName string
	TechStack   []string
}

// Provider is one LLM backend.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

type Generator struct {
	provider Provider
	timeout  time.Duration
	logger   *zap.Logger
}

// NewGenerator accepts a nil provider; such a generator only renders the template.
func NewGenerator(provider Provider, timeout time.Duration, logger *zap.Logger) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{provider: provider, timeout: timeout, logger: logger.Named("textgen")}
}

func (g *Generator) Describe(ctx context.Context, req Request) string {
	if g == nil || g.provider == nil {
		return Template(req)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	out, err := g.provider.Complete(ctx, Prompt(req))
	if err != nil {
		g.logger.Warn("description generation failed, using template",
			zap.String("provider", g.provider.Name()),
			zap.String("title", req.Title),
			zap.Error(err),
		)
		return Template(req)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		g.logger.Warn("provider returned empty description, using template",
			zap.String("provider", g.provider.Name()),
			zap.String("title", req.Title),
		)
		return Template(req)
	}
	return out
}

func Prompt(req Request) string {
	return fmt.Sprintf(`Generate a professional job description for the following position:

Title: %s
Company: %s
Tech Stack: %s

Requirements:
- Write in a professional, engaging tone
- Include responsibilities, requirements, and benefits
- Keep it between 150-300 words
- Focus on the specific technologies mentioned
- Make it appealing to talented developers

Do not include salary information, application instructions, or company-specific details beyond the company name provided.`,
		req.Title, req.CompanyName, strings.Join(req.TechStack, ", "))
}

// Template renders the built-in description. The requirements section names at
// most the first three technologies.
func Template(req Request) string {
	lead := req.TechStack
	if len(lead) > 3 {
		lead = lead[:3]
	}
	return fmt.Sprintf(`Join our team at %s as a %s! We're looking for a talented developer to work with our modern tech stack including %s.

Key Responsibilities:
• Develop and maintain high-quality software applications
• Collaborate with cross-functional teams to deliver innovative solutions
• Write clean, maintainable, and efficient code
• Participate in code reviews and technical discussions
• Stay up-to-date with the latest technologies and best practices

Requirements:
• Strong experience with %s
• Excellent problem-solving and communication skills
• Experience with modern development practices and tools
• Ability to work in a fast-paced, collaborative environment

What We Offer:
• Competitive compensation package
• Flexible working arrangements
• Professional development opportunities
• Modern tech stack and tools
• Collaborative and inclusive work environment

Ready to take your career to the next level? We'd love to hear from you!`,
		req.CompanyName, req.Title, strings.Join(req.TechStack, ", "), strings.Join(lead, ", "))
}
