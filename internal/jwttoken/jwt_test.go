package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dErrors "suraksha/pkg/domain-errors"
)

type JWTSuite struct {
	suite.Suite
	svc *Service
}

func (s *JWTSuite) SetupTest() {
	s.svc = NewService("test-signing-key", "suraksha")
}

func TestJWTSuite(t *testing.T) {
	suite.Run(t, new(JWTSuite))
}

func (s *JWTSuite) TestAccessTokenRoundTrip() {
	token, err := s.svc.GenerateAccessToken("t001", "tourist", time.Hour)
	s.Require().NoError(err)
	s.NotEmpty(token)

	claims, err := s.svc.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal("t001", claims.UserID)
	s.Equal("tourist", claims.Role)
	s.Equal("suraksha", claims.Issuer)
	s.NotEmpty(claims.ID)
}

func (s *JWTSuite) TestRefreshTokenRole() {
	token, err := s.svc.GenerateRefreshToken("t001", 7*24*time.Hour)
	s.Require().NoError(err)

	claims, err := s.svc.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal("t001", claims.UserID)
	s.Equal("refresh", claims.Role)
}

func (s *JWTSuite) TestValidateRejects() {
	s.Run("garbage input", func() {
		_, err := s.svc.ValidateToken("not-a-token")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("wrong signing key", func() {
		other := NewService("some-other-key", "suraksha")
		token, err := other.GenerateAccessToken("t001", "tourist", time.Hour)
		s.Require().NoError(err)

		_, err = s.svc.ValidateToken(token)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("expired token", func() {
		token, err := s.svc.GenerateAccessToken("t001", "tourist", -time.Minute)
		s.Require().NoError(err)

		_, err = s.svc.ValidateToken(token)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("tokens are unique per issuance", func() {
		a, err := s.svc.GenerateAccessToken("t001", "tourist", time.Hour)
		s.Require().NoError(err)
		b, err := s.svc.GenerateAccessToken("t001", "tourist", time.Hour)
		s.Require().NoError(err)
		s.NotEqual(a, b)
	})
}
