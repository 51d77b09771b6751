package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/logger"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/model"
)

// ErrArchiveDisabled is returned by ArchiveReport when no object storage is configured.
var ErrArchiveDisabled = errors.New("report archive is disabled")

const (
	reportKeyLayout = "20060102T150405.000Z"
	// maxArchiveAttempts bounds the suffixes tried when a report key is taken.
	maxArchiveAttempts = 100
)

var errArchiveKeysExhausted = errors.New("no free report key")

// PersonRepository runs the person form workflow against a document collection.
type PersonRepository struct {
	collection  model.Collection
	archive     model.Storage
	concurrency int
	logger      *logger.Logger
	now         func() time.Time
}

// NewPersonRepository creates a PersonRepository. archive may be nil, in which
// case reports cannot be archived. concurrency bounds the number of per-record
// mutations in flight and is raised to 1 when lower.
func NewPersonRepository(
	collection model.Collection,
	archive model.Storage,
	concurrency int,
	logger *logger.Logger,
) *PersonRepository {
	if concurrency < 1 {
		concurrency = 1
	}
	return &PersonRepository{
		collection:  collection,
		archive:     archive,
		concurrency: concurrency,
		logger:      logger,
		now:         time.Now,
	}
}

// Create validates person and inserts it as a new document.
func (s *PersonRepository) Create(ctx context.Context, person model.Person) (string, error) {
	person = normalize(person)
	if err := ValidatePerson(person); err != nil {
		return "", err
	}

	id, err := s.collection.Insert(ctx, person)
	if err != nil {
		s.logger.Error("PersonRepository: failed to create person", "error", err)
		return "", model.NewRemoteError("create", err)
	}

	s.logger.Info("PersonRepository: person created", "id", id)
	return id, nil
}

// FindExact returns every document whose three fields equal criteria.
func (s *PersonRepository) FindExact(ctx context.Context, criteria model.Person) ([]model.Document, error) {
	criteria = normalize(criteria)
	if err := ValidatePerson(criteria); err != nil {
		return nil, err
	}
	return s.find(ctx, criteria)
}

// UpdateMatched merges partial into every document matching criteria.
func (s *PersonRepository) UpdateMatched(ctx context.Context, criteria model.Person, partial model.Fields) (model.MutationResult, error) {
	criteria = normalize(criteria)
	if err := ValidatePerson(criteria); err != nil {
		return model.MutationResult{}, err
	}
	partial = normalizeFields(partial)
	if err := ValidateFields(partial); err != nil {
		return model.MutationResult{}, err
	}

	docs, err := s.find(ctx, criteria)
	if err != nil {
		return model.MutationResult{}, err
	}

	return s.mutate(ctx, "update", docs, func(ctx context.Context, id string) error {
		return s.collection.Merge(ctx, id, partial)
	}), nil
}

// DeleteMatched deletes every document matching criteria.
func (s *PersonRepository) DeleteMatched(ctx context.Context, criteria model.Person) (model.MutationResult, error) {
	criteria = normalize(criteria)
	if err := ValidatePerson(criteria); err != nil {
		return model.MutationResult{}, err
	}

	docs, err := s.find(ctx, criteria)
	if err != nil {
		return model.MutationResult{}, err
	}

	return s.mutate(ctx, "delete", docs, s.collection.Delete), nil
}

// ListAll scans the whole collection into a report.
func (s *PersonRepository) ListAll(ctx context.Context) (model.Report, error) {
	docs, err := s.collection.All(ctx)
	if err != nil {
		s.logger.Error("PersonRepository: failed to list persons", "error", err)
		return model.Report{}, model.NewRemoteError("list", err)
	}

	people := make([]model.Person, 0, len(docs))
	for _, d := range docs {
		people = append(people, d.Person)
	}

	s.logger.Debug("PersonRepository: persons listed", "count", len(people))
	return model.Report{People: people}, nil
}

// ArchiveReport uploads the rendered report and returns its object key.
func (s *PersonRepository) ArchiveReport(ctx context.Context, report model.Report) (string, error) {
	if s.archive == nil {
		return "", ErrArchiveDisabled
	}

	key, err := s.freeReportKey(ctx)
	if err != nil {
		s.logger.Error("PersonRepository: failed to pick report key", "error", err)
		return "", model.NewRemoteError("archive", err)
	}

	text := report.String()
	if err := s.archive.Upload(ctx, key, strings.NewReader(text), int64(len(text))); err != nil {
		s.logger.Error("PersonRepository: failed to archive report", "key", key, "error", err)
		return "", model.NewRemoteError("archive", err)
	}

	s.logger.Info("PersonRepository: report archived", "key", key, "count", report.Len())
	return key, nil
}

// freeReportKey returns a timestamped key that no stored report uses yet.
// Taken keys get a numeric suffix: persons-<ts>-2.txt, persons-<ts>-3.txt.
func (s *PersonRepository) freeReportKey(ctx context.Context) (string, error) {
	base := "reports/persons-" + s.now().UTC().Format(reportKeyLayout)
	key := base + ".txt"
	for attempt := 1; attempt <= maxArchiveAttempts; attempt++ {
		if attempt > 1 {
			key = fmt.Sprintf("%s-%d.txt", base, attempt)
		}
		exists, err := s.archive.Exists(ctx, key)
		if err != nil {
			return "", fmt.Errorf("failed to check report key %s: %w", key, err)
		}
		if !exists {
			return key, nil
		}
		s.logger.Warn("PersonRepository: report key taken", "key", key)
	}
	return "", fmt.Errorf("%w for %s", errArchiveKeysExhausted, base)
}

func (s *PersonRepository) find(ctx context.Context, criteria model.Person) ([]model.Document, error) {
	docs, err := s.collection.FindEqual(ctx, criteria)
	if err != nil {
		s.logger.Error("PersonRepository: failed to query persons", "error", err)
		return nil, model.NewRemoteError("query", err)
	}
	return docs, nil
}

// mutate applies fn to every document. A failing record never stops the others.
func (s *PersonRepository) mutate(
	ctx context.Context,
	op string,
	docs []model.Document,
	fn func(ctx context.Context, id string) error,
) model.MutationResult {
	result := model.MutationResult{Matched: len(docs)}
	if len(docs) == 0 {
		s.logger.Info("PersonRepository: no documents matched", "op", op)
		return result
	}
	if len(docs) > 1 {
		s.logger.Warn("PersonRepository: criteria matched several documents, all will be affected",
			"op", op, "matched", len(docs))
	}

	errs := make([]error, len(docs))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, doc := range docs {
		g.Go(func() error {
			errs[i] = fn(ctx, doc.ID)
			return nil
		})
	}
	_ = g.Wait()

	for i, doc := range docs {
		if errs[i] != nil {
			failure := model.NewRemoteError(op+" "+doc.ID, errs[i])
			s.logger.Error("PersonRepository: record mutation failed", "op", op, "id", doc.ID, "error", errs[i])
			result.Failures = append(result.Failures, model.RecordFailure{
				DocumentID: doc.ID,
				Message:    failure.Error(),
			})
			continue
		}
		result.Succeeded = append(result.Succeeded, doc.ID)
	}

	s.logger.Info("PersonRepository: mutation finished",
		"op", op, "matched", result.Matched, "succeeded", len(result.Succeeded), "failed", len(result.Failures))
	return result
}

func normalize(p model.Person) model.Person {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	return p
}

// normalizeFields trims the set names without touching the caller's values.
func normalizeFields(f model.Fields) model.Fields {
	if f.FirstName != nil {
		v := strings.TrimSpace(*f.FirstName)
		f.FirstName = &v
	}
	if f.LastName != nil {
		v := strings.TrimSpace(*f.LastName)
		f.LastName = &v
	}
	return f
}
