package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/model"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/service"
)

func handleError(err error) error {
	var (
		ve *model.ValidationError
		re *model.RemoteError
	)
	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Error())
	case errors.Is(err, service.ErrArchiveDisabled):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.As(err, &re):
		return status.Error(codes.Unavailable, re.Error())
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
