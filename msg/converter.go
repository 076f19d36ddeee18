// Package msg holds the u2ip4.Converter gRPC contract.
//
// The service speaks protobuf well-known types only, so there is no .proto
// file to generate from: requests and responses are wrappers, struct and
// empty messages from github.com/golang/protobuf/ptypes.
package msg

import (
	"context"

	"github.com/golang/protobuf/ptypes/empty"
	structpb "github.com/golang/protobuf/ptypes/struct"
	"github.com/golang/protobuf/ptypes/wrappers"
	"google.golang.org/grpc"
)

// Full method names.
const (
	ConvertMethod = "/u2ip4.Converter/Convert"
	LookupMethod  = "/u2ip4.Converter/Lookup"
	PingMethod    = "/u2ip4.Converter/Ping"
)

// ConverterClient is the client API for the Converter service.
type ConverterClient interface {
	// Convert parses a textual IPv4 address into its uint32 form.
	Convert(ctx context.Context, in *wrappers.StringValue, opts ...grpc.CallOption) (*wrappers.UInt32Value, error)
	// Lookup returns the configured networks containing the address.
	Lookup(ctx context.Context, in *wrappers.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Ping(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*wrappers.StringValue, error)
}

type converterClient struct {
	cc *grpc.ClientConn
}

// NewConverterClient returns a client bound to cc.
func NewConverterClient(cc *grpc.ClientConn) ConverterClient {
	return &converterClient{cc}
}

func (c *converterClient) Convert(ctx context.Context, in *wrappers.StringValue, opts ...grpc.CallOption) (*wrappers.UInt32Value, error) {
	out := new(wrappers.UInt32Value)
	if err := c.cc.Invoke(ctx, ConvertMethod, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *converterClient) Lookup(ctx context.Context, in *wrappers.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, LookupMethod, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *converterClient) Ping(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*wrappers.StringValue, error) {
	out := new(wrappers.StringValue)
	if err := c.cc.Invoke(ctx, PingMethod, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// ConverterServer is the server API for the Converter service.
type ConverterServer interface {
	Convert(context.Context, *wrappers.StringValue) (*wrappers.UInt32Value, error)
	Lookup(context.Context, *wrappers.StringValue) (*structpb.ListValue, error)
	Ping(context.Context, *empty.Empty) (*wrappers.StringValue, error)
}

// RegisterConverterServer attaches srv to s.
func RegisterConverterServer(s *grpc.Server, srv ConverterServer) {
	s.RegisterService(&converterServiceDesc, srv)
}

func convertHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrappers.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(ConverterServer).Convert(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ConvertMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConverterServer).Convert(ctx, req.(*wrappers.StringValue))
	}

	return interceptor(ctx, in, info, handler)
}

func lookupHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrappers.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(ConverterServer).Lookup(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LookupMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConverterServer).Lookup(ctx, req.(*wrappers.StringValue))
	}

	return interceptor(ctx, in, info, handler)
}

func pingHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(empty.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(ConverterServer).Ping(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PingMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConverterServer).Ping(ctx, req.(*empty.Empty))
	}

	return interceptor(ctx, in, info, handler)
}

var converterServiceDesc = grpc.ServiceDesc{
	ServiceName: "u2ip4.Converter",
	HandlerType: (*ConverterServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Convert", Handler: convertHandler},
		{MethodName: "Lookup", Handler: lookupHandler},
		{MethodName: "Ping", Handler: pingHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "u2ip4/converter",
}
