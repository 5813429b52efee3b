package rpgtoolkit

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fabula-api/internal/engine"
	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
)

// scriptedRoller returns queued results in order
type scriptedRoller struct {
	results []int
	sizes   []int
	err     error
}

func (s *scriptedRoller) Roll(size int) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.sizes = append(s.sizes, size)
	r := s.results[0]
	s.results = s.results[1:]
	return r, nil
}

func (s *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		r, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

type AdapterTestSuite struct {
	suite.Suite
	roller  *scriptedRoller
	adapter *Adapter
	ctx     context.Context
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = &scriptedRoller{}
	adapter, err := NewAdapter(&AdapterConfig{DiceRoller: s.roller})
	s.Require().NoError(err)
	s.adapter = adapter
}

func TestNewAdapter(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		adapter, err := NewAdapter(nil)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "config is required")
	})

	t.Run("missing dice roller", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{})
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "dice roller is required")
	})
}

func (s *AdapterTestSuite) TestRecalculateStats() {
	testCases := []struct {
		name     string
		player   *entities.Player
		expected entities.Stats
		bonuses  engine.StatBonuses
	}{
		{
			name: "no classes or modifiers",
			player: &entities.Player{
				Lvl:        5,
				Attributes: map[entities.Attribute]int{entities.AttributeMight: 2, entities.AttributeWillpower: 1},
			},
			expected: entities.Stats{
				HP: entities.Pool{Max: 15},
				MP: entities.Pool{Max: 10},
				IP: entities.Pool{Max: 6},
			},
		},
		{
			name: "class benefits and modifiers",
			player: &entities.Player{
				Lvl:        5,
				Attributes: map[entities.Attribute]int{entities.AttributeMight: 8, entities.AttributeWillpower: 10},
				Classes: []entities.PlayerClass{
					{Name: "Guardian", Lvl: 3, Benefits: entities.ClassBenefits{HPPlus: 5}},
					{Name: "Tinkerer", Lvl: 2, Benefits: entities.ClassBenefits{IPPlus: 2, MPPlus: 5}},
				},
				Modifiers: entities.Modifiers{HP: 3, MP: -2, IP: 1},
			},
			expected: entities.Stats{
				HP: entities.Pool{Max: 5 + 40 + 5 + 3},
				MP: entities.Pool{Max: 5 + 50 + 5 - 2},
				IP: entities.Pool{Max: 6 + 2 + 1},
			},
			bonuses: engine.StatBonuses{HP: 8, MP: 3, IP: 3},
		},
		{
			name: "current values are clamped but never raised",
			player: &entities.Player{
				Lvl:        5,
				Attributes: map[entities.Attribute]int{entities.AttributeMight: 8, entities.AttributeWillpower: 8},
				Stats: entities.Stats{
					HP: entities.Pool{Current: 99, Max: 99},
					MP: entities.Pool{Current: 12, Max: 45},
					IP: entities.Pool{Current: 6, Max: 6},
				},
			},
			expected: entities.Stats{
				HP: entities.Pool{Current: 45, Max: 45},
				MP: entities.Pool{Current: 12, Max: 45},
				IP: entities.Pool{Current: 6, Max: 6},
			},
		},
		{
			name:   "missing attributes count as zero",
			player: &entities.Player{Lvl: 1},
			expected: entities.Stats{
				HP: entities.Pool{Max: 1},
				MP: entities.Pool{Max: 1},
				IP: entities.Pool{Max: 6},
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.adapter.RecalculateStats(s.ctx, &engine.RecalculateStatsInput{Player: tc.player})
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, output.Stats)
			s.Assert().Equal(tc.bonuses, output.Bonuses)
		})
	}
}

func (s *AdapterTestSuite) TestRecalculateStatsIsIdempotentAndBounded() {
	for lvl := 1; lvl <= 50; lvl += 7 {
		for _, might := range entities.ValidDieSizes {
			for hpMod := -5; hpMod <= 5; hpMod += 5 {
				player := &entities.Player{
					Lvl:        lvl,
					Attributes: map[entities.Attribute]int{entities.AttributeMight: might},
					Modifiers:  entities.Modifiers{HP: hpMod},
					Stats:      entities.Stats{HP: entities.Pool{Current: 1000}},
				}
				output, err := s.adapter.RecalculateStats(s.ctx, &engine.RecalculateStatsInput{Player: player})
				s.Require().NoError(err)
				s.Assert().Equal(lvl+might*5+hpMod, output.Stats.HP.Max)
				s.Assert().LessOrEqual(output.Stats.HP.Current, output.Stats.HP.Max)

				player.Stats = output.Stats
				again, err := s.adapter.RecalculateStats(s.ctx, &engine.RecalculateStatsInput{Player: player})
				s.Require().NoError(err)
				s.Assert().Equal(output.Stats, again.Stats)
			}
		}
	}
}

func (s *AdapterTestSuite) TestRecalculateStatsRequiresPlayer() {
	_, err := s.adapter.RecalculateStats(s.ctx, &engine.RecalculateStatsInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func classes(levels ...int) []entities.PlayerClass {
	out := make([]entities.PlayerClass, len(levels))
	for i, lvl := range levels {
		out[i] = entities.PlayerClass{Name: fmt.Sprintf("Class%d", i), Lvl: lvl}
	}
	return out
}

func (s *AdapterTestSuite) TestCheckClassRoster() {
	testCases := []struct {
		name     string
		player   *entities.Player
		expected []engine.RosterWarning
	}{
		{
			name:   "empty roster",
			player: &entities.Player{Lvl: 5},
			expected: []engine.RosterWarning{
				engine.RosterWarningMinClasses,
				engine.RosterWarningLevelSum,
			},
		},
		{
			name:     "single class matching level",
			player:   &entities.Player{Lvl: 3, Classes: classes(3)},
			expected: []engine.RosterWarning{engine.RosterWarningMinClasses},
		},
		{
			name:     "valid roster",
			player:   &entities.Player{Lvl: 5, Classes: classes(3, 2)},
			expected: nil,
		},
		{
			name:   "too many unmastered classes",
			player: &entities.Player{Lvl: 4, Classes: classes(1, 1, 1, 1)},
			expected: []engine.RosterWarning{
				engine.RosterWarningClassLimit,
			},
		},
		{
			name:     "mastered classes do not count against the limit",
			player:   &entities.Player{Lvl: 13, Classes: classes(10, 1, 1, 1)},
			expected: nil,
		},
		{
			name:     "level sum mismatch",
			player:   &entities.Player{Lvl: 6, Classes: classes(3, 2)},
			expected: []engine.RosterWarning{engine.RosterWarningLevelSum},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.adapter.CheckClassRoster(s.ctx, &engine.CheckClassRosterInput{Player: tc.player})
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, output.Warnings)
		})
	}
}

func (s *AdapterTestSuite) TestRollCheck() {
	testCases := []struct {
		name     string
		results  []int
		bonus    int
		expected engine.RollCheckOutput
	}{
		{
			name:     "plain roll",
			results:  []int{3, 7},
			bonus:    1,
			expected: engine.RollCheckOutput{Result1: 3, Result2: 7, Bonus: 1, Total: 11, HighRoll: 7},
		},
		{
			name:     "critical",
			results:  []int{6, 6},
			expected: engine.RollCheckOutput{Result1: 6, Result2: 6, Total: 12, HighRoll: 6, Critical: true},
		},
		{
			name:     "low pair is not critical",
			results:  []int{5, 5},
			expected: engine.RollCheckOutput{Result1: 5, Result2: 5, Total: 10, HighRoll: 5},
		},
		{
			name:     "fumble",
			results:  []int{1, 1},
			bonus:    2,
			expected: engine.RollCheckOutput{Result1: 1, Result2: 1, Bonus: 2, Total: 4, HighRoll: 1, Fumble: true},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.roller.results = tc.results
			s.roller.sizes = nil

			output, err := s.adapter.RollCheck(s.ctx, &engine.RollCheckInput{Die1: 8, Die2: 10, Bonus: tc.bonus})
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, *output)
			s.Assert().Equal([]int{8, 10}, s.roller.sizes)
		})
	}
}

func (s *AdapterTestSuite) TestRollCheckRejectsBadDice() {
	_, err := s.adapter.RollCheck(s.ctx, &engine.RollCheckInput{Die1: 7, Die2: 8})
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "die1")
}

func (s *AdapterTestSuite) TestRollCheckRollerError() {
	s.roller.err = fmt.Errorf("entropy exhausted")
	_, err := s.adapter.RollCheck(s.ctx, &engine.RollCheckInput{Die1: 6, Die2: 6})
	s.Assert().True(errors.IsInternal(err))
}
