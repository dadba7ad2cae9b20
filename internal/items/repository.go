package items

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/seojin-dev/quill/internal/pipeline"
	"github.com/seojin-dev/quill/pkg/pagination"
	"github.com/seojin-dev/quill/pkg/query"
	"github.com/seojin-dev/quill/pkg/repository"
)

const itemColumns = `id, grade_level, item_types, payload, quality_score,
	score_overall, was_defaulted, context_references, status, notes,
	reviewed_by, reviewed_at, approved_at, created_at, updated_at`

type repo struct {
	db         *sql.DB
	pipeline   pipeline.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an item repository implementing the System interface.
func New(
	db *sql.DB,
	pipelineSystem pipeline.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		pipeline:   pipelineSystem,
		logger:     logger.With("system", "items"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Item], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort)
	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	results, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanItem)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}

	result := pagination.NewPageResult(results, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Item, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	item, err := repository.QueryOne(ctx, r.db, q, args, scanItem)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &item, nil
}

func (r *repo) Generate(ctx context.Context, cmd GenerateCommand) ([]Item, error) {
	if len(cmd.Grades) == 0 {
		return nil, ErrNoGrades
	}
	if len(cmd.ItemTypes) == 0 {
		return nil, pipeline.ErrNoItemTypes
	}

	grades := slices.Clone(cmd.Grades)
	slices.Sort(grades)
	grades = slices.Compact(grades)

	outcomes := make([]*pipeline.Outcome, 0, len(grades))
	for _, grade := range grades {
		outcome, err := r.pipeline.Execute(ctx, pipeline.Request{
			Grade:              grade,
			ItemTypes:          cmd.ItemTypes,
			DocumentIDs:        cmd.DocumentIDs,
			ReferenceText:      cmd.ReferenceText,
			CustomInstructions: cmd.CustomInstructions,
			Temperature:        cmd.Temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("generate grade %d: %w", grade, err)
		}
		outcomes = append(outcomes, outcome)
	}

	results, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) ([]Item, error) {
		inserted := make([]Item, 0, len(outcomes))
		for _, outcome := range outcomes {
			item, err := insertOutcome(ctx, tx, outcome)
			if err != nil {
				return nil, err
			}
			inserted = append(inserted, item)
		}
		return inserted, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	for _, item := range results {
		r.logger.Info("item generated",
			"id", item.ID,
			"grade", item.GradeLevel,
			"types", len(item.ItemTypes),
			"overall", item.ScoreOverall,
			"defaulted", item.WasDefaulted,
		)
	}

	return results, nil
}

func insertOutcome(ctx context.Context, tx *sql.Tx, outcome *pipeline.Outcome) (Item, error) {
	typesJSON, err := json.Marshal(outcome.Types)
	if err != nil {
		return Item{}, fmt.Errorf("marshal item types: %w", err)
	}

	bundleJSON, err := json.Marshal(outcome.Bundle)
	if err != nil {
		return Item{}, fmt.Errorf("marshal payload: %w", err)
	}

	scoreJSON, err := json.Marshal(outcome.Score)
	if err != nil {
		return Item{}, fmt.Errorf("marshal quality score: %w", err)
	}

	refsJSON, err := json.Marshal(outcome.ContextReferences)
	if err != nil {
		return Item{}, fmt.Errorf("marshal context references: %w", err)
	}

	q := fmt.Sprintf(`
		INSERT INTO items(grade_level, item_types, payload, quality_score,
			score_overall, was_defaulted, context_references)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, itemColumns)

	args := []any{
		int(outcome.Grade),
		typesJSON,
		bundleJSON,
		scoreJSON,
		outcome.Score.Overall,
		outcome.Score.WasDefaulted,
		refsJSON,
	}

	return repository.QueryOne(ctx, tx, q, args, scanItem)
}

// Apply executes a workflow action against an item. The current row is
// locked, the transition checked against the action's legal sources, and
// the status change plus its audit entry commit in one transaction.
// Approve additionally stamps the approval timestamp. Illegal transitions
// leave no trace.
func (r *repo) Apply(ctx context.Context, id uuid.UUID, action Action, cmd ActionCommand) (*Item, error) {
	if err := ValidateAction(action, cmd); err != nil {
		return nil, err
	}

	item, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Item, error) {
		lockQ := fmt.Sprintf("SELECT %s FROM items WHERE id = $1 FOR UPDATE", itemColumns)
		current, err := repository.QueryOne(ctx, tx, lockQ, []any{id}, scanItem)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return Item{}, ErrNotFound
			}
			return Item{}, fmt.Errorf("lock item: %w", err)
		}

		planned, entry, err := PlanAction(&current, action, cmd)
		if err != nil {
			return Item{}, err
		}

		approvalStamp := ""
		if action == ActionApprove {
			approvalStamp = ", approved_at = NOW()"
		}

		updateQ := fmt.Sprintf(`
			UPDATE items
			SET status = $1, notes = $2, reviewed_by = $3, reviewed_at = NOW(), updated_at = NOW()%s
			WHERE id = $4 AND status = $5
			RETURNING %s`, approvalStamp, itemColumns)

		updated, err := repository.QueryOne(
			ctx, tx, updateQ,
			[]any{planned, cmd.Notes, cmd.Actor, id, current.Status},
			scanItem,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return Item{}, ErrInvalidStatus
			}
			return Item{}, fmt.Errorf("update item status: %w", err)
		}

		snapshotJSON, err := json.Marshal(entry.QualityScoreSnapshot)
		if err != nil {
			return Item{}, fmt.Errorf("marshal score snapshot: %w", err)
		}

		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO item_workflow_history(item_id, action, from_status, to_status, actor, notes, quality_score)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			id, string(entry.Action), entry.FromStatus, entry.ToStatus, entry.Actor, entry.Notes, snapshotJSON,
		); err != nil {
			return Item{}, fmt.Errorf("insert history entry: %w", err)
		}

		return updated, nil
	})

	if err != nil {
		return nil, err
	}

	r.logger.Info("workflow action applied",
		"id", item.ID,
		"action", action,
		"status", item.Status,
		"actor", cmd.Actor,
	)
	return &item, nil
}

func (r *repo) History(ctx context.Context, id uuid.UUID) ([]HistoryEntry, error) {
	if _, err := r.Find(ctx, id); err != nil {
		return nil, err
	}

	q, args := query.
		NewBuilder(historyProjection, historySort).
		WhereEquals("ItemID", id).
		Build()

	entries, err := repository.QueryMany(ctx, r.db, q, args, scanHistory)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	return entries, nil
}
