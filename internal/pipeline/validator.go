package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/seojin-dev/quill/internal/itemtypes"
	"github.com/seojin-dev/quill/internal/prompts"
	"github.com/seojin-dev/quill/pkg/completion"
	"github.com/seojin-dev/quill/pkg/formatting"
)

// validateAll runs one quality validator per generated type with bounded
// concurrency. Each validator operates under its own timeout. Validation
// never fails the pipeline: any validator error produces the neutral
// default score for its type.
func (s *system) validateAll(
	ctx context.Context,
	grade itemtypes.Grade,
	bundle *itemtypes.Bundle,
	types []itemtypes.ItemType,
) map[itemtypes.ItemType]QualityScore {
	results := make([]QualityScore, len(types))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(len(types)))

	for i, t := range types {
		g.Go(func() error {
			if gctx.Err() != nil {
				results[i] = DefaultScore(t, "validation cancelled")
				return nil
			}
			results[i] = s.validateOne(gctx, grade, t, bundle)
			return nil
		})
	}

	g.Wait()

	components := make(map[itemtypes.ItemType]QualityScore, len(types))
	for i, t := range types {
		components[t] = results[i]
	}
	return components
}

// validateOne scores a single measure. Completion failures, timeouts,
// unparseable replies, and out-of-range scores all fail open to the
// neutral default.
func (s *system) validateOne(
	ctx context.Context,
	grade itemtypes.Grade,
	t itemtypes.ItemType,
	bundle *itemtypes.Bundle,
) QualityScore {
	vctx := ctx
	if s.cfg.ValidatorTimeout > 0 {
		var cancel context.CancelFunc
		vctx, cancel = context.WithTimeout(ctx, s.cfg.ValidatorTimeout)
		defer cancel()
	}

	systemPrompt, err := s.composeValidationPrompt(vctx)
	if err != nil {
		s.logger.WarnContext(ctx, "validator prompt failed", "item_type", t, "error", err)
		return DefaultScore(t, err.Error())
	}

	userPrompt, err := composeValidationInput(grade, t, bundle)
	if err != nil {
		s.logger.WarnContext(ctx, "validator input failed", "item_type", t, "error", err)
		return DefaultScore(t, err.Error())
	}

	reply, err := s.completion.Complete(vctx, completion.Request{
		System:   systemPrompt,
		User:     userPrompt,
		JSONMode: true,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "validator completion failed", "item_type", t, "error", err)
		return DefaultScore(t, err.Error())
	}

	score, err := formatting.Parse[QualityScore](reply)
	if err != nil {
		s.logger.WarnContext(ctx, "validator reply unparseable", "item_type", t, "error", err)
		return DefaultScore(t, "unparseable validator reply")
	}

	if !score.valid() {
		s.logger.WarnContext(ctx, "validator score out of range", "item_type", t)
		return DefaultScore(t, "score out of range")
	}

	if score.Issues == nil {
		score.Issues = []string{}
	}
	if score.Suggestions == nil {
		score.Suggestions = []string{}
	}

	return score
}

func (s *system) composeValidationPrompt(ctx context.Context) (string, error) {
	instructions, err := s.prompts.Instructions(ctx, prompts.StageValidate)
	if err != nil {
		return "", fmt.Errorf("load validate instructions: %w", err)
	}

	spec, err := s.prompts.Spec(ctx, prompts.StageValidate)
	if err != nil {
		return "", fmt.Errorf("load validate spec: %w", err)
	}

	return instructions + "\n\n" + spec, nil
}

func composeValidationInput(grade itemtypes.Grade, t itemtypes.ItemType, bundle *itemtypes.Bundle) (string, error) {
	payload, err := json.MarshalIndent(bundle.Payload(t), "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize %s payload: %w", t, err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Measure type: %s\n", t)
	fmt.Fprintf(&sb, "Target grade level: %d\n\n", grade)
	sb.WriteString("Generated material:\n")
	sb.Write(payload)

	return sb.String(), nil
}

func workerCount(n int) int {
	return max(min(runtime.NumCPU(), n), 1)
}
