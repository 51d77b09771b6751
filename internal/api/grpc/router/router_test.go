package router

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/api/grpc/personpb"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/mocks"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/repository/memory"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/service"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/testutil"
)

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	r := New(mocks.NewPersonService(t), testutil.MakeNoopLogger())
	s := r.Register()
	require.NotNil(t, s)

	info := s.GetServiceInfo()
	assert.Contains(t, info, personpb.ServiceName)
	assert.Contains(t, info, "grpc.health.v1.Health")
}

func dialBufconn(t *testing.T, r *Router) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := r.Register()
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestPersonForm_EndToEnd(t *testing.T) {
	ctx := context.Background()
	svc := service.NewPersonRepository(memory.NewCollection(), nil, 2, testutil.MakeNoopLogger())
	client := personpb.NewPersonFormClient(dialBufconn(t, New(svc, testutil.MakeNoopLogger())))

	jane := map[string]string{"firstName": "Jane", "lastName": "Doe", "age": "30"}

	resp, err := client.Create(ctx, personpb.Form(jane))
	require.NoError(t, err)
	assert.NotEmpty(t, personpb.String(resp, personpb.FieldID))

	resp, err = client.ListAll(ctx, &structpb.Struct{})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe 30\n", personpb.String(resp, personpb.FieldReport))

	update := map[string]string{"firstName": "Jane", "lastName": "Doe", "age": "30", "newAge": "31"}
	resp, err = client.Update(ctx, personpb.Form(update))
	require.NoError(t, err)
	assert.Equal(t, 1, personpb.Int(resp, personpb.FieldMatched))

	resp, err = client.Find(ctx, personpb.Form(jane))
	require.NoError(t, err)
	assert.Equal(t, 0, personpb.Int(resp, personpb.FieldCount))

	older := map[string]string{"firstName": "Jane", "lastName": "Doe", "age": "31"}
	resp, err = client.Delete(ctx, personpb.Form(older))
	require.NoError(t, err)
	assert.Equal(t, 1, personpb.Int(resp, personpb.FieldMatched))

	resp, err = client.Delete(ctx, personpb.Form(older))
	require.NoError(t, err)
	assert.Equal(t, []string{"No Data"}, personpb.Strings(resp, personpb.FieldNotifications))

	resp, err = client.ListAll(ctx, &structpb.Struct{})
	require.NoError(t, err)
	assert.Equal(t, "", personpb.String(resp, personpb.FieldReport))

	_, err = client.ListAll(ctx, personpb.Form(map[string]string{"archive": "true"}))
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = client.Create(ctx, personpb.Form(map[string]string{"firstName": "Jane"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestHealth_ServingUntilShutdown(t *testing.T) {
	r := New(mocks.NewPersonService(t), testutil.MakeNoopLogger())
	hc := healthpb.NewHealthClient(dialBufconn(t, r))

	resp, err := hc.Check(context.Background(), &healthpb.HealthCheckRequest{Service: personpb.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	r.Shutdown()
	resp, err = hc.Check(context.Background(), &healthpb.HealthCheckRequest{Service: personpb.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}
