package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fabula-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderCollectsFields() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "  ", vb)
	errors.ValidateRange("level", 60, 1, 50, vb)
	errors.ValidateEnum("tab", "inventory", []string{"sheet", "stats"}, vb)
	errors.ValidateMaxLength("description", "abcdef", 3, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "name: is required")
	s.Assert().Contains(err.Error(), "level: must be between 1 and 50")
	s.Assert().Contains(err.Error(), "tab: must be one of: sheet, stats")
	s.Assert().Contains(err.Error(), "description: must be no more than 3 characters")
	s.Assert().NotNil(errors.GetMeta(err)["validation_errors"])
}

func (s *ValidationTestSuite) TestBuilderEmpty() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "Lia", vb)
	errors.ValidateRange("level", 5, 1, 50, vb)
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestErrorIsSorted() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("b").RequiredField("a")
	s.Assert().Equal("INVALID_ARGUMENT: validation failed: a: is required; b: is required", vb.Build().Error())
}
