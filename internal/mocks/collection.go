package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/model"
)

// Collection is a mock type for the model.Collection type.
type Collection struct {
	mock.Mock
}

func (_m *Collection) Insert(ctx context.Context, person model.Person) (string, error) {
	ret := _m.Called(ctx, person)

	if rf, ok := ret.Get(0).(func(context.Context, model.Person) (string, error)); ok {
		return rf(ctx, person)
	}
	return ret.String(0), ret.Error(1)
}

func (_m *Collection) FindEqual(ctx context.Context, person model.Person) ([]model.Document, error) {
	ret := _m.Called(ctx, person)

	if rf, ok := ret.Get(0).(func(context.Context, model.Person) ([]model.Document, error)); ok {
		return rf(ctx, person)
	}
	var r0 []model.Document
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Document)
	}
	return r0, ret.Error(1)
}

func (_m *Collection) Merge(ctx context.Context, id string, fields model.Fields) error {
	ret := _m.Called(ctx, id, fields)

	if rf, ok := ret.Get(0).(func(context.Context, string, model.Fields) error); ok {
		return rf(ctx, id, fields)
	}
	return ret.Error(0)
}

func (_m *Collection) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		return rf(ctx, id)
	}
	return ret.Error(0)
}

func (_m *Collection) All(ctx context.Context) ([]model.Document, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) ([]model.Document, error)); ok {
		return rf(ctx)
	}
	var r0 []model.Document
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Document)
	}
	return r0, ret.Error(1)
}

// NewCollection creates a new instance of Collection. It also registers a
// cleanup function to assert the mocks expectations.
func NewCollection(t interface {
	mock.TestingT
	Cleanup(func())
}) *Collection {
	m := &Collection{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
