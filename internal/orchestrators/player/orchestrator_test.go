package player_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/fabula-api/internal/catalog"
	"github.com/KirkDiggler/fabula-api/internal/engine"
	enginemock "github.com/KirkDiggler/fabula-api/internal/engine/mock"
	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/i18n"
	playerorch "github.com/KirkDiggler/fabula-api/internal/orchestrators/player"
	idgenmock "github.com/KirkDiggler/fabula-api/internal/pkg/idgen/mock"
	editsessionrepo "github.com/KirkDiggler/fabula-api/internal/repositories/edit_session"
	editsessionmock "github.com/KirkDiggler/fabula-api/internal/repositories/edit_session/mock"
	playerrepo "github.com/KirkDiggler/fabula-api/internal/repositories/player"
	playerrepomock "github.com/KirkDiggler/fabula-api/internal/repositories/player/mock"
	revisionrepo "github.com/KirkDiggler/fabula-api/internal/repositories/revision"
	revisionmock "github.com/KirkDiggler/fabula-api/internal/repositories/revision/mock"
	"github.com/KirkDiggler/fabula-api/internal/schema"
	"github.com/KirkDiggler/fabula-api/internal/services/player"
	"github.com/KirkDiggler/fabula-api/internal/testutils"
)

const testSessionTTL = 30 * time.Minute

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockPlayerRepo   *playerrepomock.MockRepository
	mockSessionRepo  *editsessionmock.MockRepository
	mockRevisionRepo *revisionmock.MockRepository
	mockEngine       *enginemock.MockEngine
	mockPlayerIDGen  *idgenmock.MockGenerator
	mockSessionIDGen *idgenmock.MockGenerator
	catalog          catalog.Catalog
	translator       *i18n.Translator
	schema           *schema.Validator
	orchestrator     *playerorch.Orchestrator
	ctx              context.Context
}

func (s *OrchestratorTestSuite) SetupSuite() {
	var err error
	s.catalog, err = catalog.New()
	s.Require().NoError(err)
	s.translator, err = i18n.New("en")
	s.Require().NoError(err)
	s.schema, err = schema.New()
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPlayerRepo = playerrepomock.NewMockRepository(s.ctrl)
	s.mockSessionRepo = editsessionmock.NewMockRepository(s.ctrl)
	s.mockRevisionRepo = revisionmock.NewMockRepository(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockPlayerIDGen = idgenmock.NewMockGenerator(s.ctrl)
	s.mockSessionIDGen = idgenmock.NewMockGenerator(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := playerorch.New(&playerorch.Config{
		PlayerRepo:   s.mockPlayerRepo,
		SessionRepo:  s.mockSessionRepo,
		RevisionRepo: s.mockRevisionRepo,
		Engine:       s.mockEngine,
		Catalog:      s.catalog,
		Translator:   s.translator,
		Schema:       s.schema,
		PlayerIDGen:  s.mockPlayerIDGen,
		SessionIDGen: s.mockSessionIDGen,
		SessionTTL:   testSessionTTL,
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// newSession returns a clean owner session over the test player
func (s *OrchestratorTestSuite) newSession() *entities.EditSession {
	return &entities.EditSession{
		ID:        testutils.TestSessionID,
		PlayerID:  testutils.TestPlayerID,
		UserID:    testutils.TestOwnerID,
		Language:  "en",
		IsOwner:   true,
		Scratch:   testutils.CreateTestPlayer(),
		ActiveTab: entities.TabSheet,
		CreatedAt: testutils.TestTime,
		UpdatedAt: testutils.TestTime,
		ExpiresAt: testutils.TestTime.Add(testSessionTTL),
	}
}

// visitorSession returns a session opened by someone other than the owner
func (s *OrchestratorTestSuite) visitorSession() *entities.EditSession {
	session := s.newSession()
	session.UserID = testutils.TestVisitorID
	session.IsOwner = false
	return session
}

func (s *OrchestratorTestSuite) expectGetSession(session *entities.EditSession) {
	s.mockSessionRepo.EXPECT().
		Get(gomock.Any(), editsessionrepo.GetInput{ID: session.ID}).
		Return(&editsessionrepo.GetOutput{Session: session}, nil)
}

// expectUpdate captures the stored session
func (s *OrchestratorTestSuite) expectUpdate(stored **entities.EditSession) {
	s.mockSessionRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input editsessionrepo.UpdateInput) (*editsessionrepo.UpdateOutput, error) {
			if stored != nil {
				*stored = input.Session
			}
			return &editsessionrepo.UpdateOutput{Session: input.Session}, nil
		})
}

func (s *OrchestratorTestSuite) expectRoster(warnings ...engine.RosterWarning) {
	s.mockEngine.EXPECT().
		CheckClassRoster(gomock.Any(), gomock.Any()).
		Return(&engine.CheckClassRosterOutput{Warnings: warnings}, nil)
}

// expectRecalc fakes a recalculation that sets every max to the given value
func (s *OrchestratorTestSuite) expectRecalc(maxValue int) {
	s.mockEngine.EXPECT().
		RecalculateStats(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.RecalculateStatsInput) (*engine.RecalculateStatsOutput, error) {
			stats := input.Player.Stats
			stats.HP.Max = maxValue
			stats.MP.Max = maxValue
			stats.IP.Max = maxValue
			return &engine.RecalculateStatsOutput{Stats: stats}, nil
		})
}

func (s *OrchestratorTestSuite) TestNew() {
	s.Run("nil config", func() {
		_, err := playerorch.New(nil)
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("missing dependencies", func() {
		_, err := playerorch.New(&playerorch.Config{PlayerRepo: s.mockPlayerRepo})
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidArgument(err))
		s.Assert().Contains(err.Error(), "SessionRepo")
	})
}

func (s *OrchestratorTestSuite) TestCreatePlayer() {
	s.Run("fills stats to their maximum", func() {
		s.mockPlayerIDGen.EXPECT().Generate().Return("player_new")
		s.expectRecalc(45)
		s.mockPlayerRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input playerrepo.CreateInput) (*playerrepo.CreateOutput, error) {
				return &playerrepo.CreateOutput{Player: input.Player}, nil
			})

		out, err := s.orchestrator.CreatePlayer(s.ctx, &player.CreatePlayerInput{
			UserID: testutils.TestOwnerID,
			Name:   "  Lia  ",
		})
		s.Require().NoError(err)

		p := out.Player
		s.Assert().Equal("player_new", p.ID)
		s.Assert().Equal(testutils.TestOwnerID, p.UID)
		s.Assert().Equal("Lia", p.Name)
		s.Assert().Equal(5, p.Lvl)
		for _, attr := range entities.AllAttributes {
			s.Assert().Equal(8, p.Attributes[attr], attr)
		}
		s.Assert().Empty(p.Classes)
		s.Assert().NotNil(p.Classes)
		s.Assert().Equal(entities.Pool{Current: 45, Max: 45}, p.Stats.HP)
		s.Assert().Equal(entities.Pool{Current: 45, Max: 45}, p.Stats.MP)
		s.Assert().Equal(entities.Pool{Current: 45, Max: 45}, p.Stats.IP)
	})

	s.Run("requires a user", func() {
		_, err := s.orchestrator.CreatePlayer(s.ctx, &player.CreatePlayerInput{Name: "Lia"})
		s.Assert().Equal(errors.CodeUnauthenticated, errors.GetCode(err))
	})

	s.Run("requires a name", func() {
		_, err := s.orchestrator.CreatePlayer(s.ctx, &player.CreatePlayerInput{
			UserID: testutils.TestOwnerID,
			Name:   "   ",
		})
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestDeletePlayer() {
	s.Run("owner deletes", func() {
		s.mockPlayerRepo.EXPECT().
			Get(gomock.Any(), playerrepo.GetInput{ID: testutils.TestPlayerID}).
			Return(&playerrepo.GetOutput{Player: testutils.CreateTestPlayer()}, nil)
		s.mockPlayerRepo.EXPECT().
			Delete(gomock.Any(), playerrepo.DeleteInput{ID: testutils.TestPlayerID}).
			Return(&playerrepo.DeleteOutput{}, nil)

		_, err := s.orchestrator.DeletePlayer(s.ctx, &player.DeletePlayerInput{
			PlayerID: testutils.TestPlayerID,
			UserID:   testutils.TestOwnerID,
		})
		s.Assert().NoError(err)
	})

	s.Run("visitor is denied", func() {
		s.mockPlayerRepo.EXPECT().
			Get(gomock.Any(), playerrepo.GetInput{ID: testutils.TestPlayerID}).
			Return(&playerrepo.GetOutput{Player: testutils.CreateTestPlayer()}, nil)

		_, err := s.orchestrator.DeletePlayer(s.ctx, &player.DeletePlayerInput{
			PlayerID: testutils.TestPlayerID,
			UserID:   testutils.TestVisitorID,
		})
		s.Assert().True(errors.IsPermissionDenied(err))
	})
}

func (s *OrchestratorTestSuite) TestListRevisions() {
	s.mockPlayerRepo.EXPECT().
		Get(gomock.Any(), playerrepo.GetInput{ID: testutils.TestPlayerID}).
		Return(&playerrepo.GetOutput{Player: testutils.CreateTestPlayer()}, nil)
	s.mockRevisionRepo.EXPECT().
		List(gomock.Any(), revisionrepo.ListInput{PlayerID: testutils.TestPlayerID, Limit: 5}).
		Return(&revisionrepo.ListOutput{Revisions: []*entities.Revision{
			{PlayerID: testutils.TestPlayerID, Revision: 2},
			{PlayerID: testutils.TestPlayerID, Revision: 1},
		}}, nil)

	out, err := s.orchestrator.ListRevisions(s.ctx, &player.ListRevisionsInput{
		PlayerID: testutils.TestPlayerID,
		UserID:   testutils.TestOwnerID,
		Limit:    5,
	})
	s.Require().NoError(err)
	s.Assert().Len(out.Revisions, 2)
	s.Assert().Equal(2, out.Revisions[0].Revision)
}

func (s *OrchestratorTestSuite) TestListClasses() {
	s.Run("filters by book", func() {
		out, err := s.orchestrator.ListClasses(s.ctx, &player.ListClassesInput{Book: "high"})
		s.Require().NoError(err)
		s.Assert().Len(out.Classes, 4)
		for _, def := range out.Classes {
			s.Assert().Equal("high", def.Book)
		}
		s.Assert().Contains(out.Books, "core")
	})

	s.Run("unknown book", func() {
		_, err := s.orchestrator.ListClasses(s.ctx, &player.ListClassesInput{Book: "missing"})
		s.Assert().True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestWatchPlayer() {
	events := make(chan *playerrepo.WatchEvent, 2)
	updated := testutils.CreateTestPlayer()
	updated.Name = "Lia the Bold"
	events <- &playerrepo.WatchEvent{PlayerID: testutils.TestPlayerID, Player: testutils.CreateTestPlayer()}
	events <- &playerrepo.WatchEvent{PlayerID: testutils.TestPlayerID, Player: updated}
	close(events)

	s.mockPlayerRepo.EXPECT().
		Watch(gomock.Any(), playerrepo.WatchInput{ID: testutils.TestPlayerID}).
		Return((<-chan *playerrepo.WatchEvent)(events), nil)

	out, err := s.orchestrator.WatchPlayer(s.ctx, &player.WatchPlayerInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)

	var names []string
	for event := range out {
		s.Assert().Equal(testutils.TestPlayerID, event.PlayerID)
		names = append(names, event.Player.Name)
	}
	s.Assert().Equal([]string{"Lia", "Lia the Bold"}, names)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
