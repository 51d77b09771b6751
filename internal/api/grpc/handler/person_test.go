package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/api/grpc/personpb"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/mocks"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/model"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/service"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/testutil"
)

var jane = model.Person{FirstName: "Jane", LastName: "Doe", Age: 30}

func janeForm(extra map[string]string) *structpb.Struct {
	fields := map[string]string{
		personpb.FieldFirstName: "Jane",
		personpb.FieldLastName:  "Doe",
		personpb.FieldAge:       "30",
	}
	for k, v := range extra {
		fields[k] = v
	}
	return personpb.Form(fields)
}

func TestPerson_Create(t *testing.T) {
	t.Parallel()

	svc := mocks.NewPersonService(t)
	svc.On("Create", mock.Anything, jane).Return("doc-1", nil).Once()

	h := NewPerson(svc, testutil.MakeNoopLogger())
	resp, err := h.Create(context.Background(), janeForm(nil))
	require.NoError(t, err)
	assert.Equal(t, "doc-1", personpb.String(resp, personpb.FieldID))
	assert.Equal(t, []string{SavedMessage}, personpb.Strings(resp, personpb.FieldNotifications))
}

func TestPerson_Create_NumericAge(t *testing.T) {
	t.Parallel()

	svc := mocks.NewPersonService(t)
	svc.On("Create", mock.Anything, jane).Return("doc-1", nil).Once()

	req, err := structpb.NewStruct(map[string]any{"firstName": "Jane", "lastName": "Doe", "age": 30})
	require.NoError(t, err)

	h := NewPerson(svc, testutil.MakeNoopLogger())
	_, err = h.Create(context.Background(), req)
	require.NoError(t, err)
}

func TestPerson_Create_InvalidForm(t *testing.T) {
	t.Parallel()

	svc := mocks.NewPersonService(t)
	h := NewPerson(svc, testutil.MakeNoopLogger())

	_, err := h.Create(context.Background(), janeForm(map[string]string{personpb.FieldAge: "old"}))
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "age: must be an integer", st.Message())
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPerson_Create_RemoteFailure(t *testing.T) {
	t.Parallel()

	svc := mocks.NewPersonService(t)
	svc.On("Create", mock.Anything, jane).Return("", model.NewRemoteError("create", errors.New("quota exceeded"))).Once()

	h := NewPerson(svc, testutil.MakeNoopLogger())
	_, err := h.Create(context.Background(), janeForm(nil))
	st, _ := status.FromError(err)
	assert.Equal(t, codes.Unavailable, st.Code())
	assert.Equal(t, "create failed: quota exceeded", st.Message())
}

func TestPerson_ListAll(t *testing.T) {
	t.Parallel()

	report := model.Report{People: []model.Person{jane}}
	svc := mocks.NewPersonService(t)
	svc.On("ListAll", mock.Anything).Return(report, nil).Once()

	h := NewPerson(svc, testutil.MakeNoopLogger())
	resp, err := h.ListAll(context.Background(), &structpb.Struct{})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe 30\n", personpb.String(resp, personpb.FieldReport))
	assert.Equal(t, 1, personpb.Int(resp, personpb.FieldCount))
	_, hasKey := resp.Fields[personpb.FieldArchiveKey]
	assert.False(t, hasKey)
}

func TestPerson_ListAll_Archive(t *testing.T) {
	t.Parallel()

	report := model.Report{People: []model.Person{jane}}
	svc := mocks.NewPersonService(t)
	svc.On("ListAll", mock.Anything).Return(report, nil).Once()
	svc.On("ArchiveReport", mock.Anything, report).Return("reports/persons-x.txt", nil).Once()

	h := NewPerson(svc, testutil.MakeNoopLogger())
	resp, err := h.ListAll(context.Background(), personpb.Form(map[string]string{personpb.FieldArchive: "true"}))
	require.NoError(t, err)
	assert.Equal(t, "reports/persons-x.txt", personpb.String(resp, personpb.FieldArchiveKey))
}

func TestPerson_ListAll_ArchiveDisabled(t *testing.T) {
	t.Parallel()

	svc := mocks.NewPersonService(t)
	svc.On("ListAll", mock.Anything).Return(model.Report{}, nil).Once()
	svc.On("ArchiveReport", mock.Anything, model.Report{}).Return("", service.ErrArchiveDisabled).Once()

	h := NewPerson(svc, testutil.MakeNoopLogger())
	req := &structpb.Struct{Fields: map[string]*structpb.Value{personpb.FieldArchive: structpb.NewBoolValue(true)}}
	_, err := h.ListAll(context.Background(), req)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.FailedPrecondition, st.Code())
}

func TestPerson_Find(t *testing.T) {
	t.Parallel()

	svc := mocks.NewPersonService(t)
	svc.On("FindExact", mock.Anything, jane).Return([]model.Document{{ID: "a", Person: jane}, {ID: "b", Person: jane}}, nil).Once()

	h := NewPerson(svc, testutil.MakeNoopLogger())
	resp, err := h.Find(context.Background(), janeForm(nil))
	require.NoError(t, err)
	assert.Equal(t, 2, personpb.Int(resp, personpb.FieldCount))
	assert.Equal(t, "Jane Doe 30\nJane Doe 30\n", personpb.String(resp, personpb.FieldReport))
}

func TestPerson_Update(t *testing.T) {
	t.Parallel()

	age := 31
	svc := mocks.NewPersonService(t)
	svc.On("UpdateMatched", mock.Anything, jane, model.Fields{Age: &age}).Return(model.MutationResult{
		Matched:   2,
		Succeeded: []string{"a"},
		Failures:  []model.RecordFailure{{DocumentID: "b", Message: "update b failed: offline"}},
	}, nil).Once()

	h := NewPerson(svc, testutil.MakeNoopLogger())
	resp, err := h.Update(context.Background(), janeForm(map[string]string{personpb.FieldNewAge: "31"}))
	require.NoError(t, err)
	assert.Equal(t, 2, personpb.Int(resp, personpb.FieldMatched))
	assert.Equal(t, []string{UpdatedMessage, "update b failed: offline"}, personpb.Strings(resp, personpb.FieldNotifications))
}

func TestPerson_Update_NothingToUpdate(t *testing.T) {
	t.Parallel()

	svc := mocks.NewPersonService(t)
	h := NewPerson(svc, testutil.MakeNoopLogger())

	_, err := h.Update(context.Background(), janeForm(nil))
	st, _ := status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "nothing to update", st.Message())
}

func TestPerson_Delete_NoData(t *testing.T) {
	t.Parallel()

	svc := mocks.NewPersonService(t)
	svc.On("DeleteMatched", mock.Anything, jane).Return(model.MutationResult{}, nil).Once()

	h := NewPerson(svc, testutil.MakeNoopLogger())
	resp, err := h.Delete(context.Background(), janeForm(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, personpb.Int(resp, personpb.FieldMatched))
	assert.Equal(t, []string{model.NoDataMessage}, personpb.Strings(resp, personpb.FieldNotifications))
}

func TestPerson_Delete(t *testing.T) {
	t.Parallel()

	svc := mocks.NewPersonService(t)
	svc.On("DeleteMatched", mock.Anything, jane).Return(model.MutationResult{Matched: 1, Succeeded: []string{"a"}}, nil).Once()

	h := NewPerson(svc, testutil.MakeNoopLogger())
	resp, err := h.Delete(context.Background(), janeForm(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{DeletedMessage}, personpb.Strings(resp, personpb.FieldNotifications))
}
