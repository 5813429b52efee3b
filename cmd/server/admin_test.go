package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/fabula-api/internal/redis"
	playerrepo "github.com/KirkDiggler/fabula-api/internal/repositories/player"
	"github.com/KirkDiggler/fabula-api/internal/schema"
	"github.com/KirkDiggler/fabula-api/internal/testutils"
)

type AdminTestSuite struct {
	suite.Suite
	client    redisclient.Client
	mr        *miniredis.Miniredis
	repo      playerrepo.Repository
	validator *schema.Validator
	ctx       context.Context
}

func (s *AdminTestSuite) SetupTest() {
	s.client, s.mr = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()

	var err error
	s.repo, err = playerrepo.NewRedis(&playerrepo.RedisConfig{Client: s.client, Clock: clock.New()})
	s.Require().NoError(err)
	s.validator, err = schema.New()
	s.Require().NoError(err)
}

func (s *AdminTestSuite) TestVerifyPlayers() {
	good := testutils.CreateTestPlayer()
	_, err := s.repo.Save(s.ctx, playerrepo.SaveInput{Player: good})
	s.Require().NoError(err)

	bad := testutils.CreateTestPlayer()
	bad.ID = "player_bad"
	bad.Attributes[entities.AttributeMight] = 7
	data, err := json.Marshal(bad)
	s.Require().NoError(err)
	s.Require().NoError(s.mr.Set("player:player_bad", string(data)))
	s.Require().NoError(s.mr.Set("player:broken", "{not json"))

	report, err := verifyPlayers(s.ctx, s.client, s.validator)
	s.Require().NoError(err)

	s.Equal(3, report.Checked)
	s.Len(report.Invalid, 2)
	s.Contains(report.Invalid["player:player_bad"], "/attributes/might")
	s.Contains(report.Invalid, "player:broken")
}

func (s *AdminTestSuite) TestImportPlayer() {
	s.Run("stores a valid document", func() {
		p := testutils.CreateTestPlayer()
		data, err := json.Marshal(p)
		s.Require().NoError(err)

		id, err := importPlayer(s.ctx, s.repo, s.validator, data)
		s.Require().NoError(err)
		s.Equal(p.ID, id)

		got, err := s.repo.Get(s.ctx, playerrepo.GetInput{ID: p.ID})
		s.Require().NoError(err)
		s.Equal(p.Name, got.Player.Name)
	})

	s.Run("rejects an invalid document", func() {
		p := testutils.CreateTestPlayer()
		p.ID = "player_invalid"
		p.Classes[0].Lvl = 11
		data, err := json.Marshal(p)
		s.Require().NoError(err)

		_, err = importPlayer(s.ctx, s.repo, s.validator, data)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(describeValidation(err), "/classes/0/lvl")
		s.False(s.mr.Exists("player:player_invalid"))
	})
}

func TestAdminTestSuite(t *testing.T) {
	suite.Run(t, new(AdminTestSuite))
}
