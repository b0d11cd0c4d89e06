package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotations-service/internal/domain"
	"github.com/jsamuelsen/quotations-service/internal/platform/logging"
	"github.com/jsamuelsen/quotations-service/internal/platform/metrics"
	"github.com/jsamuelsen/quotations-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quotations-service/internal/ports"
)

// ReviewService enforces the submission and review state machine.
//
// Writes go through Execute. Once a transition has committed, the search index, catalog
// cache, denormalized counters and event stream are updated best effort: failures are
// logged and counted but never returned.
type ReviewService struct {
	quotations ports.QuotationRepository
	authors    ports.AuthorRepository
	sources    ports.SourceRepository
	index      ports.QuotationIndex
	cache      ports.Cache
	events     ports.EventPublisher
	duplicates domain.DuplicateStrategy
	metrics    *metrics.Recorder
	now        func() time.Time
	newID      func() string
}

// ReviewServiceConfig wires a ReviewService. The three repositories are required; Index,
// Cache and Events may be nil.
type ReviewServiceConfig struct {
	Quotations ports.QuotationRepository
	Authors    ports.AuthorRepository
	Sources    ports.SourceRepository
	Index      ports.QuotationIndex
	Cache      ports.Cache
	Events     ports.EventPublisher

	// Duplicates defaults to domain.PositionalStrategy.
	Duplicates domain.DuplicateStrategy
	Metrics    *metrics.Recorder
	Now        func() time.Time
	NewID      func() string
}

// NewReviewService panics when a repository is missing.
func NewReviewService(cfg ReviewServiceConfig) *ReviewService {
	if cfg.Quotations == nil || cfg.Authors == nil || cfg.Sources == nil {
		panic("app: review service requires quotation, author and source repositories")
	}

	s := &ReviewService{
		quotations: cfg.Quotations,
		authors:    cfg.Authors,
		sources:    cfg.Sources,
		index:      cfg.Index,
		cache:      cfg.Cache,
		events:     cfg.Events,
		duplicates: cfg.Duplicates,
		metrics:    cfg.Metrics,
		now:        cfg.Now,
		newID:      cfg.NewID,
	}

	if s.duplicates == nil {
		s.duplicates = domain.PositionalStrategy{}
	}
	if s.metrics == nil {
		s.metrics = metrics.Noop()
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}

	return s
}

type resolved[T any] struct {
	value   T
	created bool
}

type submitState struct {
	author    resolved[*domain.Author]
	source    resolved[*domain.Source]
	quotation *domain.Quotation
}

// Submit records a new pending quotation, creating its author and source on first use.
func (s *ReviewService) Submit(ctx context.Context, sub domain.Submission) (q *domain.Quotation, err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "ReviewService.Submit")
	defer func() { endSpan(span, err) }()

	op := Operation[*domain.Submission, *submitState, *domain.Quotation]{
		Name: "submit quotation",
		Validate: func(_ context.Context, in *domain.Submission) error {
			in.Normalize()
			return in.Validate()
		},
		Load: func(ctx context.Context, in *domain.Submission) (*submitState, error) {
			author, source, err := Parallel2(ctx,
				func(ctx context.Context) (resolved[*domain.Author], error) { return s.resolveAuthor(ctx, in) },
				func(ctx context.Context) (resolved[*domain.Source], error) { return s.resolveSource(ctx, in) },
			)
			if err != nil {
				return nil, err
			}

			return &submitState{author: author, source: source}, nil
		},
		Apply: func(_ context.Context, in *domain.Submission, st *submitState) error {
			st.quotation = domain.NewQuotation(s.newID(), in.Text,
				st.author.value.Ref(), st.source.value.Ref(), in.Tags, in.Submitter(), s.now())
			return nil
		},
		Persist: func(ctx context.Context, _ *domain.Submission, st *submitState) error {
			if err := s.quotations.Create(ctx, st.quotation); err != nil {
				return fmt.Errorf("creating quotation: %w", err)
			}
			return nil
		},
		Respond: func(ctx context.Context, _ *domain.Submission, st *submitState) (*domain.Quotation, error) {
			s.metrics.Submitted()

			if st.author.created {
				s.invalidate(ctx, cacheKeyAuthors)
			}
			s.publish(ctx, newQuotationEvent(EventQuotationSubmitted, st.quotation, s.now()))

			logging.FromContext(ctx).InfoContext(ctx, "quotation submitted",
				slog.String("quotation_id", st.quotation.ID),
				slog.String("author_id", st.author.value.ID),
				slog.String("source_id", st.source.value.ID),
			)

			return st.quotation, nil
		},
	}

	span.SetAttributes(attribute.Bool("anonymous", sub.SubmitterID == ""))

	return Execute(ctx, op, &sub)
}

func (s *ReviewService) resolveAuthor(ctx context.Context, in *domain.Submission) (resolved[*domain.Author], error) {
	existing, err := s.authors.FindByName(ctx, in.AuthorName)
	if err == nil {
		return resolved[*domain.Author]{value: existing}, nil
	}
	if !domain.IsNotFound(err) {
		return resolved[*domain.Author]{}, fmt.Errorf("finding author: %w", err)
	}

	now := s.now()
	author := &domain.Author{
		ID:         s.newID(),
		Name:       in.AuthorName,
		Lifespan:   in.AuthorLifespan,
		Occupation: in.AuthorOccupation,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	switch err := s.authors.Create(ctx, author); {
	case err == nil:
		return resolved[*domain.Author]{value: author, created: true}, nil
	case domain.IsConflict(err):
		// Another submission created the same author in the meantime.
		existing, err := s.authors.FindByName(ctx, in.AuthorName)
		if err != nil {
			return resolved[*domain.Author]{}, fmt.Errorf("re-reading author: %w", err)
		}
		return resolved[*domain.Author]{value: existing}, nil
	default:
		return resolved[*domain.Author]{}, fmt.Errorf("creating author: %w", err)
	}
}

func (s *ReviewService) resolveSource(ctx context.Context, in *domain.Submission) (resolved[*domain.Source], error) {
	typ, err := domain.ParseSourceType(in.SourceType)
	if err != nil {
		return resolved[*domain.Source]{}, err
	}

	existing, err := s.sources.FindByTitleAndType(ctx, in.SourceTitle, typ)
	if err == nil {
		return resolved[*domain.Source]{value: existing}, nil
	}
	if !domain.IsNotFound(err) {
		return resolved[*domain.Source]{}, fmt.Errorf("finding source: %w", err)
	}

	now := s.now()
	source := &domain.Source{
		ID:             s.newID(),
		Title:          in.SourceTitle,
		Type:           typ,
		Year:           in.SourceYear,
		AdditionalInfo: in.SourceAdditionalInfo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	switch err := s.sources.Create(ctx, source); {
	case err == nil:
		return resolved[*domain.Source]{value: source, created: true}, nil
	case domain.IsConflict(err):
		existing, err := s.sources.FindByTitleAndType(ctx, in.SourceTitle, typ)
		if err != nil {
			return resolved[*domain.Source]{}, fmt.Errorf("re-reading source: %w", err)
		}
		return resolved[*domain.Source]{value: existing}, nil
	default:
		return resolved[*domain.Source]{}, fmt.Errorf("creating source: %w", err)
	}
}

type reviewInput struct {
	id       string
	decision domain.Status
	reviewer domain.UserRef
	reason   string
	notes    string
}

// Approve moves a pending quotation to approved. A quotation that is no longer pending,
// including one approved a moment ago by someone else, yields InvalidStateError.
func (s *ReviewService) Approve(ctx context.Context, id string, reviewer domain.UserRef, notes string) (q *domain.Quotation, err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "ReviewService.Approve",
		trace.WithAttributes(attribute.String("quotation.id", id)))
	defer func() { endSpan(span, err) }()

	return Execute(ctx, s.reviewOperation("approve quotation"), reviewInput{
		id:       id,
		decision: domain.StatusApproved,
		reviewer: reviewer,
		notes:    notes,
	})
}

// Reject moves a pending quotation to rejected with a reason of 10 to 1000 characters.
func (s *ReviewService) Reject(ctx context.Context, id string, reviewer domain.UserRef, reason, notes string) (q *domain.Quotation, err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "ReviewService.Reject",
		trace.WithAttributes(attribute.String("quotation.id", id)))
	defer func() { endSpan(span, err) }()

	return Execute(ctx, s.reviewOperation("reject quotation"), reviewInput{
		id:       id,
		decision: domain.StatusRejected,
		reviewer: reviewer,
		reason:   reason,
		notes:    notes,
	})
}

func (s *ReviewService) reviewOperation(name string) Operation[reviewInput, *domain.Quotation, *domain.Quotation] {
	return Operation[reviewInput, *domain.Quotation, *domain.Quotation]{
		Name: name,
		Validate: func(_ context.Context, in reviewInput) error {
			if in.id == "" {
				return domain.NewValidationError("id", "is required")
			}
			if strings.TrimSpace(in.reviewer.ID) == "" {
				return domain.NewValidationError("reviewerId", "is required")
			}
			if utf8.RuneCountInString(in.notes) > domain.MaxReviewerNotesLength {
				return domain.NewValidationError("reviewerNotes", "must be at most 1000 characters")
			}
			if in.decision == domain.StatusRejected {
				return domain.ValidateRejectionReason(in.reason)
			}
			return nil
		},
		Load: func(ctx context.Context, in reviewInput) (*domain.Quotation, error) {
			return s.quotations.Get(ctx, in.id)
		},
		Apply: func(_ context.Context, in reviewInput, q *domain.Quotation) error {
			if in.decision == domain.StatusApproved {
				return q.Approve(in.reviewer, in.notes, s.now())
			}
			return q.Reject(in.reviewer, in.reason, in.notes, s.now())
		},
		Persist: func(ctx context.Context, _ reviewInput, q *domain.Quotation) error {
			err := s.quotations.CompareAndSetReview(ctx, q, domain.StatusPending)
			if domain.IsInvalidState(err) {
				s.metrics.Reviewed(metrics.OutcomeConflict)
			}
			return err
		},
		Respond: func(ctx context.Context, in reviewInput, q *domain.Quotation) (*domain.Quotation, error) {
			if in.decision == domain.StatusApproved {
				s.afterApprove(ctx, q)
				s.metrics.Reviewed(metrics.OutcomeApproved)
			} else {
				s.afterReject(ctx, q)
				s.metrics.Reviewed(metrics.OutcomeRejected)
			}

			logging.FromContext(ctx).InfoContext(ctx, "quotation reviewed",
				slog.String("quotation_id", q.ID),
				slog.String("status", q.Status.String()),
				slog.String("reviewer_id", q.ReviewedBy.ID),
			)

			return q, nil
		},
	}
}

func (s *ReviewService) afterApprove(ctx context.Context, q *domain.Quotation) {
	ctx = context.WithoutCancel(ctx)

	s.sideEffect(ctx, metrics.SideEffectCounter, func(ctx context.Context) error {
		return s.authors.IncrementQuotationCount(ctx, q.Author.ID, 1)
	})
	s.sideEffect(ctx, metrics.SideEffectCounter, func(ctx context.Context) error {
		return s.sources.IncrementQuotationCount(ctx, q.Source.ID, 1)
	})

	if s.index != nil {
		s.sideEffect(ctx, metrics.SideEffectIndex, func(ctx context.Context) error {
			return s.index.Index(ctx, q)
		})
	}

	s.invalidate(ctx, cacheKeyTags, cacheKeyAuthors)
	s.publish(ctx, newQuotationEvent(EventQuotationApproved, q, s.now()))
}

func (s *ReviewService) afterReject(ctx context.Context, q *domain.Quotation) {
	ctx = context.WithoutCancel(ctx)

	if s.index != nil {
		s.sideEffect(ctx, metrics.SideEffectIndex, func(ctx context.Context) error {
			return s.index.Remove(ctx, q.ID)
		})
	}

	s.publish(ctx, newQuotationEvent(EventQuotationRejected, q, s.now()))
}

// FindPotentialDuplicates returns approved or pending quotations by the same author and
// source whose text the configured strategy considers a duplicate of the target's.
func (s *ReviewService) FindPotentialDuplicates(ctx context.Context, id string) (dups []*domain.Quotation, err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "ReviewService.FindPotentialDuplicates",
		trace.WithAttributes(attribute.String("quotation.id", id)))
	defer func() { endSpan(span, err) }()

	logger := logging.FromContext(ctx).With(
		slog.String("method", "FindPotentialDuplicates"),
		slog.String("quotation_id", id),
	)

	target, err := s.quotations.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting quotation: %w", err)
	}

	candidates, err := s.quotations.FindDuplicateCandidates(ctx,
		target.Author.ID, target.Source.ID,
		[]domain.Status{domain.StatusApproved, domain.StatusPending},
		target.ID, domain.DuplicateCandidateLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("finding duplicate candidates: %w", err)
	}

	dups = make([]*domain.Quotation, 0)
	for _, c := range candidates {
		if c.ID == target.ID {
			continue
		}
		if s.duplicates.IsDuplicate(target.Text, c.Text) {
			dups = append(dups, c)
		}
	}

	s.metrics.DuplicateCheck(len(dups) > 0)
	logger.DebugContext(ctx, "duplicate check completed",
		slog.String("strategy", s.duplicates.Name()),
		slog.Int("candidates", len(candidates)),
		slog.Int("duplicates", len(dups)),
	)

	return dups, nil
}

func (s *ReviewService) sideEffect(ctx context.Context, kind string, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		s.metrics.SideEffectFailed(kind)
		logging.FromContext(ctx).WarnContext(ctx, "side effect failed",
			slog.String("kind", kind),
			slog.Any("error", err),
		)
	}
}

func (s *ReviewService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}

	for _, key := range keys {
		s.sideEffect(ctx, metrics.SideEffectCache, func(ctx context.Context) error {
			return s.cache.Delete(ctx, key)
		})
	}
}

func (s *ReviewService) publish(ctx context.Context, event ports.Event) {
	if s.events == nil {
		return
	}

	s.sideEffect(context.WithoutCancel(ctx), metrics.SideEffectEvent, func(ctx context.Context) error {
		return s.events.Publish(ctx, event)
	})
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
