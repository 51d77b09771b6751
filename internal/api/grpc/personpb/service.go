// Package personpb describes the persons.v1.PersonForm gRPC service.
//
// Requests and responses are google.protobuf.Struct values carrying the form
// fields, so the service needs no generated message types.
package personpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "persons.v1.PersonForm"

const (
	PersonForm_Create_FullMethodName  = "/persons.v1.PersonForm/Create"
	PersonForm_ListAll_FullMethodName = "/persons.v1.PersonForm/ListAll"
	PersonForm_Find_FullMethodName    = "/persons.v1.PersonForm/Find"
	PersonForm_Update_FullMethodName  = "/persons.v1.PersonForm/Update"
	PersonForm_Delete_FullMethodName  = "/persons.v1.PersonForm/Delete"
)

// PersonFormServer is the server API for the PersonForm service.
type PersonFormServer interface {
	Create(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListAll(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Find(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Update(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Delete(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedPersonFormServer must be embedded to have forward compatible implementations.
type UnimplementedPersonFormServer struct{}

func (UnimplementedPersonFormServer) Create(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Create not implemented")
}
func (UnimplementedPersonFormServer) ListAll(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAll not implemented")
}
func (UnimplementedPersonFormServer) Find(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Find not implemented")
}
func (UnimplementedPersonFormServer) Update(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Update not implemented")
}
func (UnimplementedPersonFormServer) Delete(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Delete not implemented")
}

// RegisterPersonFormServer registers srv on s.
func RegisterPersonFormServer(s grpc.ServiceRegistrar, srv PersonFormServer) {
	s.RegisterService(&PersonForm_ServiceDesc, srv)
}

type unaryMethod func(PersonFormServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PersonFormServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(PersonFormServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// PersonForm_ServiceDesc is the grpc.ServiceDesc for the PersonForm service.
var PersonForm_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PersonFormServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Create", Handler: unaryHandler(PersonForm_Create_FullMethodName, PersonFormServer.Create)},
		{MethodName: "ListAll", Handler: unaryHandler(PersonForm_ListAll_FullMethodName, PersonFormServer.ListAll)},
		{MethodName: "Find", Handler: unaryHandler(PersonForm_Find_FullMethodName, PersonFormServer.Find)},
		{MethodName: "Update", Handler: unaryHandler(PersonForm_Update_FullMethodName, PersonFormServer.Update)},
		{MethodName: "Delete", Handler: unaryHandler(PersonForm_Delete_FullMethodName, PersonFormServer.Delete)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "persons/v1/person_form.proto",
}

// PersonFormClient is the client API for the PersonForm service.
type PersonFormClient interface {
	Create(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListAll(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Find(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Update(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Delete(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type personFormClient struct {
	cc grpc.ClientConnInterface
}

func NewPersonFormClient(cc grpc.ClientConnInterface) PersonFormClient {
	return &personFormClient{cc}
}

func (c *personFormClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *personFormClient) Create(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PersonForm_Create_FullMethodName, in, opts...)
}

func (c *personFormClient) ListAll(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PersonForm_ListAll_FullMethodName, in, opts...)
}

func (c *personFormClient) Find(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PersonForm_Find_FullMethodName, in, opts...)
}

func (c *personFormClient) Update(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PersonForm_Update_FullMethodName, in, opts...)
}

func (c *personFormClient) Delete(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PersonForm_Delete_FullMethodName, in, opts...)
}
