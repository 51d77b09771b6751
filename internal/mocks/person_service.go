package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/model"
)

// PersonService is a mock type for the handler.PersonService type.
type PersonService struct {
	mock.Mock
}

func (_m *PersonService) Create(ctx context.Context, person model.Person) (string, error) {
	ret := _m.Called(ctx, person)
	return ret.String(0), ret.Error(1)
}

func (_m *PersonService) FindExact(ctx context.Context, criteria model.Person) ([]model.Document, error) {
	ret := _m.Called(ctx, criteria)

	var r0 []model.Document
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Document)
	}
	return r0, ret.Error(1)
}

func (_m *PersonService) UpdateMatched(ctx context.Context, criteria model.Person, partial model.Fields) (model.MutationResult, error) {
	ret := _m.Called(ctx, criteria, partial)
	return ret.Get(0).(model.MutationResult), ret.Error(1)
}

func (_m *PersonService) DeleteMatched(ctx context.Context, criteria model.Person) (model.MutationResult, error) {
	ret := _m.Called(ctx, criteria)
	return ret.Get(0).(model.MutationResult), ret.Error(1)
}

func (_m *PersonService) ListAll(ctx context.Context) (model.Report, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(model.Report), ret.Error(1)
}

func (_m *PersonService) ArchiveReport(ctx context.Context, report model.Report) (string, error) {
	ret := _m.Called(ctx, report)
	return ret.String(0), ret.Error(1)
}

// NewPersonService creates a new instance of PersonService. It also registers
// a cleanup function to assert the mocks expectations.
func NewPersonService(t interface {
	mock.TestingT
	Cleanup(func())
}) *PersonService {
	m := &PersonService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
