package handler

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/api/grpc/personpb"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/logger"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/model"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/service"
)

// Messages shown on the form after a successful trigger.
const (
	SavedMessage   = "Successfully saved"
	UpdatedMessage = "Data updated"
	DeletedMessage = "Data deleted"
)

// PersonService defines the person form operations.
type PersonService interface {
	Create(ctx context.Context, person model.Person) (string, error)
	FindExact(ctx context.Context, criteria model.Person) ([]model.Document, error)
	UpdateMatched(ctx context.Context, criteria model.Person, partial model.Fields) (model.MutationResult, error)
	DeleteMatched(ctx context.Context, criteria model.Person) (model.MutationResult, error)
	ListAll(ctx context.Context) (model.Report, error)
	ArchiveReport(ctx context.Context, report model.Report) (string, error)
}

// Person handles gRPC endpoints of the person form.
type Person struct {
	personpb.UnimplementedPersonFormServer
	personService PersonService
	logger        *logger.Logger
}

// NewPerson creates a new Person handler.
func NewPerson(personService PersonService, logger *logger.Logger) *Person {
	return &Person{
		personService: personService,
		logger:        logger,
	}
}

// Create inserts the person entered on the form.
func (h *Person) Create(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	person, err := parseCriteria(req)
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Debug("Person handler: processing create request", "person", person.String())

	id, err := h.personService.Create(ctx, person)
	if err != nil {
		h.logger.Error("Person handler: create failed", "error", err.Error())
		return nil, handleError(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		personpb.FieldID:            structpb.NewStringValue(id),
		personpb.FieldNotifications: personpb.List([]string{SavedMessage}),
	}}, nil
}

// ListAll returns the report of every stored person. With archive set the
// report is also uploaded and its key returned.
func (h *Person) ListAll(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	archive := personpb.Bool(req, personpb.FieldArchive)
	h.logger.Debug("Person handler: processing list request", "archive", archive)

	report, err := h.personService.ListAll(ctx)
	if err != nil {
		h.logger.Error("Person handler: list failed", "error", err.Error())
		return nil, handleError(err)
	}

	resp := reportResponse(report)
	if archive {
		key, err := h.personService.ArchiveReport(ctx, report)
		if err != nil {
			h.logger.Error("Person handler: archive failed", "error", err.Error())
			return nil, handleError(err)
		}
		resp.Fields[personpb.FieldArchiveKey] = structpb.NewStringValue(key)
	}

	return resp, nil
}

// Find returns the report of persons exactly matching the form fields.
func (h *Person) Find(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	criteria, err := parseCriteria(req)
	if err != nil {
		return nil, handleError(err)
	}

	docs, err := h.personService.FindExact(ctx, criteria)
	if err != nil {
		h.logger.Error("Person handler: find failed", "error", err.Error())
		return nil, handleError(err)
	}

	people := make([]model.Person, 0, len(docs))
	for _, d := range docs {
		people = append(people, d.Person)
	}
	return reportResponse(model.Report{People: people}), nil
}

// Update merges the new-* form fields into every matching person.
func (h *Person) Update(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	criteria, err := parseCriteria(req)
	if err != nil {
		return nil, handleError(err)
	}
	partial, err := service.ParseFields(
		personpb.String(req, personpb.FieldNewFirstName),
		personpb.String(req, personpb.FieldNewLastName),
		personpb.String(req, personpb.FieldNewAge),
	)
	if err != nil {
		return nil, handleError(err)
	}

	res, err := h.personService.UpdateMatched(ctx, criteria, partial)
	if err != nil {
		h.logger.Error("Person handler: update failed", "error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Person handler: update completed", "matched", res.Matched, "failed", len(res.Failures))
	return mutationResponse(res, UpdatedMessage), nil
}

// Delete removes every matching person.
func (h *Person) Delete(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	criteria, err := parseCriteria(req)
	if err != nil {
		return nil, handleError(err)
	}

	res, err := h.personService.DeleteMatched(ctx, criteria)
	if err != nil {
		h.logger.Error("Person handler: delete failed", "error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Person handler: delete completed", "matched", res.Matched, "failed", len(res.Failures))
	return mutationResponse(res, DeletedMessage), nil
}

func parseCriteria(req *structpb.Struct) (model.Person, error) {
	return service.ParsePerson(
		personpb.String(req, personpb.FieldFirstName),
		personpb.String(req, personpb.FieldLastName),
		personpb.String(req, personpb.FieldAge),
	)
}

func reportResponse(report model.Report) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		personpb.FieldReport: structpb.NewStringValue(report.String()),
		personpb.FieldCount:  structpb.NewNumberValue(float64(report.Len())),
	}}
}

func mutationResponse(res model.MutationResult, success string) *structpb.Struct {
	notifications := res.Notifications()
	if len(res.Succeeded) > 0 {
		notifications = append([]string{success}, notifications...)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		personpb.FieldMatched:       structpb.NewNumberValue(float64(res.Matched)),
		personpb.FieldNotifications: personpb.List(notifications),
	}}
}
