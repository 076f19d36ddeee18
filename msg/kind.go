package msg

import (
	"github.com/golang/protobuf/ptypes/wrappers"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Parse error kinds, sent as a StringValue detail of an InvalidArgument status.
const (
	KindInvalidCharacter   = "InvalidCharacter"
	KindOctetOutOfRange    = "OctetOutOfRange"
	KindSpaceBetweenDigits = "SpaceBetweenDigits"
	KindMalformedAddress   = "MalformedAddress"
)

// InvalidAddress - InvalidArgument status error carrying the parse error kind.
func InvalidAddress(message, kind string) error {
	st := status.New(codes.InvalidArgument, message)

	if kind == "" {
		return st.Err()
	}

	withKind, err := st.WithDetails(&wrappers.StringValue{Value: kind})
	if err != nil {
		return st.Err()
	}

	return withKind.Err()
}

// KindFromStatus - the parse error kind behind a Convert or Lookup failure, "" if none.
func KindFromStatus(err error) string {
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.InvalidArgument {
		return ""
	}

	for _, detail := range st.Details() {
		if v, ok := detail.(*wrappers.StringValue); ok {
			return v.GetValue()
		}
	}

	return ""
}
