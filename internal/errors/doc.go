// Package errors provides the structured error type used across fabula-api.
//
// Errors carry a Code, a message safe to show to players, an optional cause
// and metadata:
//
//	err := errors.NotFoundf("player %s not found", id).WithMeta("player_id", id)
//
// Wrap keeps the code of a wrapped *Error, so repository errors surface with
// their original meaning through the orchestrator:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to save player")
//	}
//
// Handlers convert to transport errors at the boundary with ToGRPCError or
// Code.HTTPStatus. Metadata is sent as a google.rpc.ErrorInfo detail.
//
// Validation failures are collected with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", input.Level, 1, 50, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
package errors
