package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/schema"
	"github.com/KirkDiggler/fabula-api/internal/testutils"
)

type ValidatorTestSuite struct {
	suite.Suite
	validator *schema.Validator
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	v, err := schema.New()
	s.Require().NoError(err)
	s.validator = v
}

func (s *ValidatorTestSuite) TestDecodeWeaponRoundTrip() {
	data, err := json.Marshal(testutils.CreateTestWeapon())
	s.Require().NoError(err)

	weapon, err := s.validator.DecodeWeapon(data)
	s.Require().NoError(err)
	s.Assert().Equal(testutils.CreateTestWeapon(), *weapon)
}

func (s *ValidatorTestSuite) TestDecodeWeaponInvalid() {
	testCases := []struct {
		name     string
		input    string
		location string
	}{
		{
			name:     "not json",
			input:    `{"name":`,
			location: "",
		},
		{
			name:     "missing name",
			input:    `{"att1":"dexterity","att2":"might","prec":0,"damage":6,"type":"physical","hands":1}`,
			location: "/",
		},
		{
			name:     "unknown attribute",
			input:    `{"name":"Bow","att1":"luck","att2":"might","prec":0,"damage":6,"type":"physical","hands":2}`,
			location: "/att1",
		},
		{
			name:     "three hands",
			input:    `{"name":"Bow","att1":"dexterity","att2":"might","prec":0,"damage":6,"type":"physical","hands":3}`,
			location: "/hands",
		},
		{
			name:     "fractional cost",
			input:    `{"name":"Bow","cost":10.5,"att1":"dexterity","att2":"might","prec":0,"damage":6,"type":"physical","hands":2}`,
			location: "/cost",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.validator.DecodeWeapon([]byte(tc.input))
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))

			if tc.location != "" {
				fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
				s.Require().True(ok)
				s.Assert().Contains(fields, tc.location)
			}
		})
	}
}

func (s *ValidatorTestSuite) TestDecodePlayer() {
	data, err := json.Marshal(testutils.CreateTestPlayer())
	s.Require().NoError(err)

	p, err := s.validator.DecodePlayer(data)
	s.Require().NoError(err)
	s.Assert().Equal(testutils.TestPlayerID, p.ID)
	s.Assert().Equal(8, p.Attributes[entities.AttributeMight])
}

func (s *ValidatorTestSuite) TestValidatePlayerRejectsBadDocuments() {
	s.Run("bad die size", func() {
		p := testutils.CreateTestPlayer()
		p.Attributes[entities.AttributeMight] = 7
		data, err := json.Marshal(p)
		s.Require().NoError(err)

		err = s.validator.ValidatePlayer(data)
		s.Require().True(errors.IsInvalidArgument(err))
		fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
		s.Assert().Contains(fields, "/attributes/might")
	})

	s.Run("class level above ten", func() {
		p := testutils.CreateTestPlayer()
		p.Classes[0].Lvl = 11
		data, err := json.Marshal(p)
		s.Require().NoError(err)

		err = s.validator.ValidatePlayer(data)
		s.Require().True(errors.IsInvalidArgument(err))
		fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
		s.Assert().Contains(fields, "/classes/0/lvl")
	})

	s.Run("nested weapon", func() {
		p := testutils.CreateTestPlayer()
		p.Equipment.Weapons[0].Type = "laser"
		data, err := json.Marshal(p)
		s.Require().NoError(err)

		err = s.validator.ValidatePlayer(data)
		s.Require().True(errors.IsInvalidArgument(err))
		fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
		s.Assert().Contains(fields, "/equipment/weapons/0/type")
	})
}
