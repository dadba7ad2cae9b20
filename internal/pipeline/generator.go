package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/seojin-dev/quill/internal/itemtypes"
	"github.com/seojin-dev/quill/internal/prompts"
	"github.com/seojin-dev/quill/internal/retrieval"
	"github.com/seojin-dev/quill/pkg/completion"
	"github.com/seojin-dev/quill/pkg/formatting"
)

const generatorPreamble = `You are an early-literacy assessment item writer. Generate every requested measure in one reply as a single JSON object keyed by measure code. Include only the requested measures; never emit keys for measures that were not requested. Always respond with valid JSON and no markdown fencing.`

// generate issues one structured completion covering every requested type
// and parses the reply into a validated bundle. Contract violations and
// unparseable replies are hard errors; requested types the model omitted
// are returned for the caller to log.
func (s *system) generate(
	ctx context.Context,
	req Request,
	contexts map[itemtypes.ItemType]*retrieval.Context,
) (*itemtypes.Bundle, []itemtypes.ItemType, error) {
	if len(req.ItemTypes) == 0 {
		return nil, nil, ErrNoItemTypes
	}

	systemPrompt, err := s.composeGenerationPrompt(ctx, req.ItemTypes)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	userPrompt := s.composeGenerationInput(req, contexts)

	temperature := s.cfg.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	reply, err := s.completion.Complete(ctx, completion.Request{
		System:      systemPrompt,
		User:        userPrompt,
		JSONMode:    true,
		Temperature: &temperature,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	bundle, err := formatting.Parse[itemtypes.Bundle](reply)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	omitted, err := bundle.Validate(req.ItemTypes)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	return &bundle, omitted, nil
}

// composeGenerationPrompt assembles the system prompt: the shared preamble
// followed by each requested type's effective instructions and output spec.
func (s *system) composeGenerationPrompt(
	ctx context.Context,
	types []itemtypes.ItemType,
) (string, error) {
	var sb strings.Builder
	sb.WriteString(generatorPreamble)

	for _, t := range types {
		stage := prompts.StageFor(t)

		instructions, err := s.prompts.Instructions(ctx, stage)
		if err != nil {
			return "", fmt.Errorf("load instructions for %s: %w", stage, err)
		}

		spec, err := s.prompts.Spec(ctx, stage)
		if err != nil {
			return "", fmt.Errorf("load spec for %s: %w", stage, err)
		}

		sb.WriteString("\n\n## ")
		sb.WriteString(string(t))
		sb.WriteString("\n\n")
		sb.WriteString(instructions)
		sb.WriteString("\n\n")
		sb.WriteString(spec)
	}

	return sb.String(), nil
}

// composeGenerationInput assembles the user prompt: the target grade,
// the curriculum vocabulary reference, any retrieved passages per type,
// and the caller's reference material and custom instructions verbatim.
func (s *system) composeGenerationInput(
	req Request,
	contexts map[itemtypes.ItemType]*retrieval.Context,
) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Target grade level: %d\n", req.Grade)
	fmt.Fprintf(&sb, "Requested measures: %s\n", joinTypes(req.ItemTypes))

	if words := s.vocabulary.Words(req.Grade); len(words) > 0 {
		sb.WriteString("\nCurriculum vocabulary (prefer these words):\n")
		sb.WriteString(strings.Join(words, ", "))
		sb.WriteString("\n")
	}

	if expressions := s.vocabulary.Expressions(req.Grade); len(expressions) > 0 {
		sb.WriteString("\nCore expressions for passage writing:\n")
		sb.WriteString(strings.Join(expressions, "\n"))
		sb.WriteString("\n")
	}

	for _, t := range req.ItemTypes {
		c, ok := contexts[t]
		if !ok || c.Empty() {
			continue
		}
		fmt.Fprintf(&sb, "\nCurriculum passages for %s:\n%s\n", t, c.Text)
	}

	if req.ReferenceText != "" {
		sb.WriteString("\nReference material:\n")
		sb.WriteString(req.ReferenceText)
		sb.WriteString("\n")
	}

	if req.CustomInstructions != "" {
		sb.WriteString("\nAdditional instructions:\n")
		sb.WriteString(req.CustomInstructions)
		sb.WriteString("\n")
	}

	return sb.String()
}

func joinTypes(types []itemtypes.ItemType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
