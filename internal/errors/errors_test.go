package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/heroforge/hero-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "identity key must be 64 hex characters",
			expected: "INVALID_ARGUMENT: identity key must be 64 hex characters",
		},
		{
			name:     "corrupt data error",
			code:     errors.CodeCorruptData,
			message:  "race has no class weight table",
			expected: "CORRUPT_DATA: race has no class weight table",
		},
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "character not found",
			expected: "NOT_FOUND: character not found",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("character not found").
		WithMeta("pubkey", "abc123").
		WithMeta("save_id", "save_1")

	s.Assert().Equal("abc123", err.Meta["pubkey"])
	s.Assert().Equal("save_1", err.Meta["save_id"])
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.CorruptData("item missing from catalog")
	wrapped := errors.Wrap(base, "failed to resolve equipment")

	s.Assert().Equal(errors.CodeCorruptData, wrapped.Code)
	s.Assert().True(errors.IsCorruptData(wrapped))
	s.Assert().ErrorIs(wrapped, base)
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	base := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(base, "failed to save character")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Contains(wrapped.Error(), "connection refused")
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "no-op"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := fmt.Errorf("sql: no rows in result set")
	wrapped := errors.WrapWithCode(base, errors.CodeNotFound, "catalog item not found")

	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestTypeCheckers() {
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgument("bad key")))
	s.Assert().True(errors.IsUnresolvedChoice(errors.UnresolvedChoice("choice-1 has no selection")))
	s.Assert().True(errors.IsCorruptData(errors.CorruptDataf("race %q missing", "Elf")))
	s.Assert().False(errors.IsNotFound(errors.Internal("boom")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	s.Assert().Equal(http.StatusBadRequest, errors.CodeInvalidArgument.HTTPStatus())
	s.Assert().Equal(http.StatusNotFound, errors.CodeNotFound.HTTPStatus())
	s.Assert().Equal(http.StatusPreconditionFailed, errors.CodeFailedPrecondition.HTTPStatus())
	s.Assert().Equal(http.StatusInternalServerError, errors.CodeCorruptData.HTTPStatus())
	s.Assert().Equal(http.StatusInternalServerError, errors.Code("UNKNOWN").HTTPStatus())
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("identity_key", "", vb)
	errors.ValidateExactLength("identity_key", "abcd", 64, vb)
	err := vb.Build()

	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "identity_key")

	empty := errors.NewValidationBuilder()
	s.Assert().NoError(empty.Build())
}
