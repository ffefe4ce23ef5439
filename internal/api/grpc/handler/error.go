package handler

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/mermory-server/internal/model"
)

func handleError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return validationError(verrs)
	}

	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return status.Error(codes.NotFound, "study session not found")
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "deck or card not found")
	case errors.Is(err, model.ErrEmptyDeck):
		return status.Error(codes.FailedPrecondition, "deck has no cards")
	case errors.Is(err, model.ErrSessionComplete):
		return status.Error(codes.FailedPrecondition, "study session is complete")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

func validationError(verrs validator.ValidationErrors) error {
	st := status.New(codes.InvalidArgument, "invalid request")

	br := &errdetails.BadRequest{}
	for _, fe := range verrs {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       fe.Field(),
			Description: violationText(fe),
		})
	}

	withDetails, err := st.WithDetails(br)
	if err != nil {
		return st.Err()
	}
	return withDetails.Err()
}

func violationText(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "uuid":
		return "must be a UUID"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
