// Package board declares the gRPC surface of the board.
// Bodies travel as google.protobuf.Struct and carry the same JSON documents
// the contract package accepts and produces.
package board

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName = "trashtalk.v1.Board"

	InstantiateFullMethodName = "/" + ServiceName + "/Instantiate"
	ExecuteFullMethodName     = "/" + ServiceName + "/Execute"
	QueryFullMethodName       = "/" + ServiceName + "/Query"
)

// ServiceServer is implemented by the board server.
type ServiceServer interface {
	Instantiate(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Execute(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Query(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Instantiate", Handler: unaryHandler(InstantiateFullMethodName, ServiceServer.Instantiate)},
		{MethodName: "Execute", Handler: unaryHandler(ExecuteFullMethodName, ServiceServer.Execute)},
		{MethodName: "Query", Handler: unaryHandler(QueryFullMethodName, ServiceServer.Query)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "trashtalk/v1/board",
}

func RegisterServiceServer(s grpc.ServiceRegistrar, srv ServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type method func(ServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call method) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceClient is the raw client stub of the board service.
type ServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewServiceClient(cc grpc.ClientConnInterface) *ServiceClient {
	return &ServiceClient{cc: cc}
}

func (c *ServiceClient) Instantiate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, InstantiateFullMethodName, in, opts...)
}

func (c *ServiceClient) Execute(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ExecuteFullMethodName, in, opts...)
}

func (c *ServiceClient) Query(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, QueryFullMethodName, in, opts...)
}

func (c *ServiceClient) invoke(ctx context.Context, fullMethod string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ToStruct converts a JSON object into a Struct body.
func ToStruct(raw []byte) (*structpb.Struct, error) {
	s := new(structpb.Struct)
	if err := protojson.Unmarshal(raw, s); err != nil {
		return nil, err
	}
	return s, nil
}

// FromStruct converts a Struct body back into a JSON object.
func FromStruct(s *structpb.Struct) ([]byte, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return protojson.Marshal(s)
}
