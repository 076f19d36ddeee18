package main

import (
	"context"
	"errors"

	"github.com/golang/protobuf/ptypes/empty"
	structpb "github.com/golang/protobuf/ptypes/struct"
	"github.com/golang/protobuf/ptypes/wrappers"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/usher-2/u2ip4/internal/logger"
	pb "github.com/usher-2/u2ip4/msg"
)

// Service messages.
const (
	SrvDataNotReady = "Networks are not loaded"
	SrvPongMessage  = "Pong"
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrInvalidChar, pb.KindInvalidCharacter},
	{ErrOutOfRange, pb.KindOctetOutOfRange},
	{ErrSpaceBetween, pb.KindSpaceBetweenDigits},
	{ErrMalformed, pb.KindMalformedAddress},
}

// server - our grpc server.
type server struct {
	nets *NetworkSet
}

func newServer(nets *NetworkSet) *server {
	return &server{nets: nets}
}

// parseError - parse failure to InvalidArgument status with the kind attached.
func parseError(err error) error {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return pb.InvalidAddress(err.Error(), k.kind)
		}
	}

	return pb.InvalidAddress(err.Error(), "")
}

// Convert - textual IPv4 to uint32.
func (s *server) Convert(ctx context.Context, in *wrappers.StringValue) (*wrappers.UInt32Value, error) {
	query := in.GetValue()

	logger.Debug.Printf("Received address: %q\n", query)

	ip, err := IPv4StrToInt(query)
	if err != nil {
		logger.Debug.Printf("Can't convert: %s\n", err)

		return nil, parseError(err)
	}

	return &wrappers.UInt32Value{Value: ip}, nil
}

// Lookup - networks containing the address.
func (s *server) Lookup(ctx context.Context, in *wrappers.StringValue) (*structpb.ListValue, error) {
	query := in.GetValue()

	logger.Debug.Printf("Received lookup: %q\n", query)

	ip, err := IPv4StrToInt(query)
	if err != nil {
		return nil, parseError(err)
	}

	if s.nets == nil {
		return nil, status.Error(codes.Unavailable, SrvDataNotReady)
	}

	subnets, err := s.nets.Containing(ip)
	if err != nil {
		logger.Error.Printf("Can't get containing networks: %s: %s\n", IntToStr(ip), err)

		return nil, status.Error(codes.Internal, err.Error())
	}

	resp := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(subnets))}
	for _, subnet := range subnets {
		resp.Values = append(resp.Values, &structpb.Value{Kind: &structpb.Value_StringValue{StringValue: subnet}})
	}

	return resp, nil
}

// Ping - just ping.
func (s *server) Ping(ctx context.Context, in *empty.Empty) (*wrappers.StringValue, error) {
	logger.Debug.Printf("Received Ping\n")

	return &wrappers.StringValue{Value: SrvPongMessage}, nil
}

var _ pb.ConverterServer = (*server)(nil)
