package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/model"
)

func TestCollection_InsertAndFindEqual(t *testing.T) {
	ctx := context.Background()
	c := NewCollection()

	jane := model.Person{FirstName: "Jane", LastName: "Doe", Age: 30}
	id1, err := c.Insert(ctx, jane)
	require.NoError(t, err)
	id2, err := c.Insert(ctx, jane)
	require.NoError(t, err)
	_, err = c.Insert(ctx, model.Person{FirstName: "Jane", LastName: "Doe", Age: 31})
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)

	docs, err := c.FindEqual(ctx, jane)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, id1, docs[0].ID)
	assert.Equal(t, id2, docs[1].ID)

	none, err := c.FindEqual(ctx, model.Person{FirstName: "Nobody", LastName: "Doe", Age: 30})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCollection_MergeLeavesOtherFields(t *testing.T) {
	ctx := context.Background()
	c := NewCollection()

	id, err := c.Insert(ctx, model.Person{FirstName: "Jane", LastName: "Doe", Age: 30})
	require.NoError(t, err)

	age := 31
	require.NoError(t, c.Merge(ctx, id, model.Fields{Age: &age}))

	all, err := c.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, model.Person{FirstName: "Jane", LastName: "Doe", Age: 31}, all[0].Person)

	assert.ErrorIs(t, c.Merge(ctx, "missing", model.Fields{Age: &age}), model.ErrNotFound)
}

func TestCollection_Delete(t *testing.T) {
	ctx := context.Background()
	c := NewCollection()

	id1, _ := c.Insert(ctx, model.Person{FirstName: "A", LastName: "B", Age: 1})
	id2, _ := c.Insert(ctx, model.Person{FirstName: "C", LastName: "D", Age: 2})

	require.NoError(t, c.Delete(ctx, id1))
	assert.ErrorIs(t, c.Delete(ctx, id1), model.ErrNotFound)

	all, err := c.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, id2, all[0].ID)
}

func TestCollection_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewCollection()
	_, err := c.Insert(ctx, model.Person{FirstName: "A", LastName: "B", Age: 1})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = c.All(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
