//go:build integration

package mongo_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/model"
	repo "github.com/SamandarAsiydinov/FirestoreFull/internal/repository/mongo"
)

var uri string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		panic(err)
	}
	uri = fmt.Sprintf("mongodb://%s:%s", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestCollection_CRUD(t *testing.T) {
	ctx := context.Background()
	client, err := repo.Connect(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	c := repo.NewCollection(client, "personform_test", "persons_crud")

	jane := model.Person{FirstName: "Jane", LastName: "Doe", Age: 30}
	id1, err := c.Insert(ctx, jane)
	require.NoError(t, err)
	id2, err := c.Insert(ctx, jane)
	require.NoError(t, err)
	require.NotEqual(t, id1, id2)

	docs, err := c.FindEqual(ctx, jane)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	age := 31
	require.NoError(t, c.Merge(ctx, id1, model.Fields{Age: &age}))

	docs, err = c.FindEqual(ctx, model.Person{FirstName: "Jane", LastName: "Doe", Age: 31})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, id1, docs[0].ID)

	require.NoError(t, c.Delete(ctx, id1))
	require.ErrorIs(t, c.Delete(ctx, id1), model.ErrNotFound)

	all, err := c.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, id2, all[0].ID)
}
