package player_test

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/fabula-api/internal/engine"
	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	editsessionrepo "github.com/KirkDiggler/fabula-api/internal/repositories/edit_session"
	playerrepo "github.com/KirkDiggler/fabula-api/internal/repositories/player"
	revisionrepo "github.com/KirkDiggler/fabula-api/internal/repositories/revision"
	"github.com/KirkDiggler/fabula-api/internal/services/player"
	"github.com/KirkDiggler/fabula-api/internal/testutils"
)

func (s *OrchestratorTestSuite) expectOpen(userID string) {
	s.mockPlayerRepo.EXPECT().
		Get(gomock.Any(), playerrepo.GetInput{ID: testutils.TestPlayerID}).
		Return(&playerrepo.GetOutput{Player: testutils.CreateTestPlayer()}, nil)
	s.mockSessionIDGen.EXPECT().Generate().Return("session_new")
	s.mockSessionRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input editsessionrepo.CreateInput) (*editsessionrepo.CreateOutput, error) {
			s.Assert().Equal(testSessionTTL, input.TTL)
			s.Assert().Equal(userID, input.Session.UserID)
			return &editsessionrepo.CreateOutput{Session: input.Session}, nil
		})
	s.expectRoster()
}

func (s *OrchestratorTestSuite) TestOpenSession() {
	s.Run("owner opens a clean session", func() {
		s.expectOpen(testutils.TestOwnerID)

		out, err := s.orchestrator.OpenSession(s.ctx, &player.OpenSessionInput{
			PlayerID: testutils.TestPlayerID,
			UserID:   testutils.TestOwnerID,
		})
		s.Require().NoError(err)

		s.Assert().Equal("session_new", out.Session.ID)
		s.Assert().True(out.Session.IsOwner)
		s.Assert().False(out.Session.Dirty)
		s.Assert().Equal(entities.SessionStateViewing, out.State)
		s.Assert().Equal(entities.TabSheet, out.Session.ActiveTab)
		s.Assert().Equal("en", out.Session.Language)
		s.Assert().Equal(testutils.CreateTestPlayer(), out.Session.Scratch)
		s.Assert().Empty(out.Warnings)
		s.Assert().NotNil(out.Notices)
	})

	s.Run("visitor is not the owner", func() {
		s.expectOpen(testutils.TestVisitorID)

		out, err := s.orchestrator.OpenSession(s.ctx, &player.OpenSessionInput{
			PlayerID: testutils.TestPlayerID,
			UserID:   testutils.TestVisitorID,
		})
		s.Require().NoError(err)
		s.Assert().False(out.Session.IsOwner)
	})

	s.Run("anonymous caller is rejected", func() {
		// no repository expectations: nothing is read or stored
		_, err := s.orchestrator.OpenSession(s.ctx, &player.OpenSessionInput{
			PlayerID: testutils.TestPlayerID,
		})
		s.Assert().Equal(errors.CodeUnauthenticated, errors.GetCode(err))
	})

	s.Run("resolves the language preference", func() {
		s.expectOpen(testutils.TestOwnerID)

		out, err := s.orchestrator.OpenSession(s.ctx, &player.OpenSessionInput{
			PlayerID: testutils.TestPlayerID,
			UserID:   testutils.TestOwnerID,
			Language: "it-IT,it;q=0.9,en;q=0.5",
		})
		s.Require().NoError(err)
		s.Assert().Equal("it", out.Session.Language)
	})

	s.Run("missing player", func() {
		s.mockPlayerRepo.EXPECT().
			Get(gomock.Any(), playerrepo.GetInput{ID: "player_missing"}).
			Return(nil, errors.NotFound("player not found"))

		_, err := s.orchestrator.OpenSession(s.ctx, &player.OpenSessionInput{PlayerID: "player_missing"})
		s.Assert().True(errors.IsNotFound(err))
	})

	s.Run("requires a player ID", func() {
		_, err := s.orchestrator.OpenSession(s.ctx, &player.OpenSessionInput{})
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestGetSession() {
	s.Run("anonymous caller is rejected", func() {
		_, err := s.orchestrator.GetSession(s.ctx, &player.GetSessionInput{
			SessionID: testutils.TestSessionID,
		})
		s.Assert().Equal(errors.CodeUnauthenticated, errors.GetCode(err))
	})

	s.Run("localizes warnings in the session language", func() {
		session := s.newSession()
		session.Language = "it"
		s.expectGetSession(session)
		s.expectRoster(engine.RosterWarningMinClasses, engine.RosterWarningLevelSum)

		out, err := s.orchestrator.GetSession(s.ctx, &player.GetSessionInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
		})
		s.Require().NoError(err)
		s.Require().Len(out.Warnings, 2)
		s.Assert().Equal(engine.RosterWarningMinClasses, out.Warnings[0].Code)
		s.Assert().Equal("Il giocatore deve avere almeno 2 classi.", out.Warnings[0].Message)
		s.Assert().Equal(engine.RosterWarningLevelSum, out.Warnings[1].Code)
		s.Assert().Equal("La somma dei livelli delle classi non è uguale al livello del giocatore.", out.Warnings[1].Message)
	})

	s.Run("another user's session", func() {
		s.expectGetSession(s.newSession())

		_, err := s.orchestrator.GetSession(s.ctx, &player.GetSessionInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestVisitorID,
		})
		s.Assert().True(errors.IsPermissionDenied(err))
	})

	s.Run("expired session", func() {
		s.mockSessionRepo.EXPECT().
			Get(gomock.Any(), editsessionrepo.GetInput{ID: "session_gone"}).
			Return(nil, errors.NotFound("edit session not found"))

		_, err := s.orchestrator.GetSession(s.ctx, &player.GetSessionInput{
			SessionID: "session_gone",
			UserID:    testutils.TestOwnerID,
		})
		s.Assert().True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestCloseSession() {
	s.Run("dirty session needs confirmation", func() {
		session := s.newSession()
		session.Dirty = true
		s.expectGetSession(session)

		_, err := s.orchestrator.CloseSession(s.ctx, &player.CloseSessionInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
		})
		s.Require().Error(err)
		s.Assert().True(errors.IsFailedPrecondition(err))
		s.Assert().Equal("You have unsaved changes. Are you sure you want to leave?", errors.GetMessage(err))
		s.Assert().Equal("unsaved_changes", errors.GetMeta(err)["reason"])
	})

	s.Run("force discards unsaved changes", func() {
		session := s.newSession()
		session.Dirty = true
		s.expectGetSession(session)
		s.mockSessionRepo.EXPECT().
			Delete(gomock.Any(), editsessionrepo.DeleteInput{ID: testutils.TestSessionID}).
			Return(&editsessionrepo.DeleteOutput{}, nil)

		_, err := s.orchestrator.CloseSession(s.ctx, &player.CloseSessionInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			Force:     true,
		})
		s.Assert().NoError(err)
	})

	s.Run("clean session closes", func() {
		s.expectGetSession(s.newSession())
		s.mockSessionRepo.EXPECT().
			Delete(gomock.Any(), editsessionrepo.DeleteInput{ID: testutils.TestSessionID}).
			Return(&editsessionrepo.DeleteOutput{}, nil)

		_, err := s.orchestrator.CloseSession(s.ctx, &player.CloseSessionInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
		})
		s.Assert().NoError(err)
	})
}

func (s *OrchestratorTestSuite) TestSelectTab() {
	s.Run("visitor may switch tabs without editing", func() {
		var stored *entities.EditSession
		s.expectGetSession(s.visitorSession())
		s.expectUpdate(&stored)
		s.expectRoster()

		out, err := s.orchestrator.SelectTab(s.ctx, &player.SelectTabInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestVisitorID,
			Tab:       entities.TabSpells,
		})
		s.Require().NoError(err)
		s.Assert().Equal(entities.TabSpells, stored.ActiveTab)
		s.Assert().Equal(entities.SessionStateViewing, out.State)
	})

	s.Run("unknown tab", func() {
		_, err := s.orchestrator.SelectTab(s.ctx, &player.SelectTabInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			Tab:       "inventory",
		})
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestSaveSession() {
	s.Run("owner saves and records a revision", func() {
		session := s.newSession()
		session.Dirty = true
		session.Scratch.Name = "Lia the Bold"
		s.expectGetSession(session)

		s.mockPlayerRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input playerrepo.SaveInput) (*playerrepo.SaveOutput, error) {
				s.Assert().Equal("Lia the Bold", input.Player.Name)
				saved := input.Player.Clone()
				saved.UpdatedAt = testutils.TestTime.Add(10*time.Minute)
				return &playerrepo.SaveOutput{Player: saved}, nil
			})
		s.mockRevisionRepo.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input revisionrepo.RecordInput) (*revisionrepo.RecordOutput, error) {
				s.Assert().Equal(testutils.TestOwnerID, input.SavedBy)
				return &revisionrepo.RecordOutput{Revision: &entities.Revision{
					PlayerID: input.Player.ID,
					Revision: 3,
					SavedBy:  input.SavedBy,
				}}, nil
			})

		var stored *entities.EditSession
		s.expectUpdate(&stored)
		s.expectRoster()

		out, err := s.orchestrator.SaveSession(s.ctx, &player.SaveSessionInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
		})
		s.Require().NoError(err)
		s.Assert().False(stored.Dirty)
		s.Assert().Equal(entities.SessionStateViewing, out.State)
		s.Assert().Equal(3, out.Revision.Revision)
		s.Assert().Equal(testutils.TestTime.Add(10*time.Minute), stored.Scratch.UpdatedAt)
	})

	s.Run("visitor cannot save", func() {
		s.expectGetSession(s.visitorSession())

		_, err := s.orchestrator.SaveSession(s.ctx, &player.SaveSessionInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestVisitorID,
		})
		s.Assert().True(errors.IsPermissionDenied(err))
	})

	s.Run("revision failure is reported", func() {
		s.expectGetSession(s.newSession())
		s.mockPlayerRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input playerrepo.SaveInput) (*playerrepo.SaveOutput, error) {
				return &playerrepo.SaveOutput{Player: input.Player}, nil
			})
		s.mockRevisionRepo.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			Return(nil, errors.Internal("disk full"))

		_, err := s.orchestrator.SaveSession(s.ctx, &player.SaveSessionInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
		})
		s.Assert().True(errors.IsInternal(err))
	})
}

func (s *OrchestratorTestSuite) TestDiscardChanges() {
	session := s.newSession()
	session.Dirty = true
	session.Scratch.Name = "Unsaved"
	session.Selection = entities.SpellSelection{ClassName: "Elementalist"}
	s.expectGetSession(session)
	s.mockPlayerRepo.EXPECT().
		Get(gomock.Any(), playerrepo.GetInput{ID: testutils.TestPlayerID}).
		Return(&playerrepo.GetOutput{Player: testutils.CreateTestPlayer()}, nil)

	var stored *entities.EditSession
	s.expectUpdate(&stored)
	s.expectRoster()

	out, err := s.orchestrator.DiscardChanges(s.ctx, &player.DiscardChangesInput{
		SessionID: testutils.TestSessionID,
		UserID:    testutils.TestOwnerID,
	})
	s.Require().NoError(err)
	s.Assert().Equal("Lia", stored.Scratch.Name)
	s.Assert().False(stored.Dirty)
	s.Assert().Empty(stored.Selection.ClassName)
	s.Assert().Equal(entities.SessionStateViewing, out.State)
}

func (s *OrchestratorTestSuite) TestResetFromUpstream() {
	s.Run("replaces every open session", func() {
		owner := s.newSession()
		owner.Dirty = true
		owner.Scratch.Name = "Unsaved"
		owner.Selection = entities.SpellSelection{ClassName: "Guardian"}
		visitor := s.visitorSession()
		visitor.ID = "session_visitor"

		s.mockSessionRepo.EXPECT().
			ListByPlayerID(gomock.Any(), editsessionrepo.ListByPlayerIDInput{PlayerID: testutils.TestPlayerID}).
			Return(&editsessionrepo.ListByPlayerIDOutput{Sessions: []*entities.EditSession{owner, visitor}}, nil)

		var stored []*entities.EditSession
		s.mockSessionRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input editsessionrepo.UpdateInput) (*editsessionrepo.UpdateOutput, error) {
				stored = append(stored, input.Session)
				return &editsessionrepo.UpdateOutput{Session: input.Session}, nil
			}).
			Times(2)

		upstream := testutils.CreateTestPlayer()
		upstream.Name = "Lia from elsewhere"

		out, err := s.orchestrator.ResetFromUpstream(s.ctx, &player.ResetFromUpstreamInput{
			PlayerID: testutils.TestPlayerID,
			Player:   upstream,
		})
		s.Require().NoError(err)
		s.Assert().Equal(2, out.SessionsReset)
		s.Assert().Zero(out.SessionsClosed)

		s.Require().Len(stored, 2)
		for _, session := range stored {
			s.Assert().Equal("Lia from elsewhere", session.Scratch.Name)
			s.Assert().False(session.Dirty)
			s.Assert().Empty(session.Selection)
		}
		s.Assert().True(stored[0].IsOwner)
		s.Assert().False(stored[1].IsOwner)

		// sessions hold their own copy
		upstream.Name = "changed"
		s.Assert().Equal("Lia from elsewhere", stored[0].Scratch.Name)
	})

	s.Run("ownership follows the new document", func() {
		session := s.newSession()
		s.mockSessionRepo.EXPECT().
			ListByPlayerID(gomock.Any(), gomock.Any()).
			Return(&editsessionrepo.ListByPlayerIDOutput{Sessions: []*entities.EditSession{session}}, nil)

		var stored *entities.EditSession
		s.expectUpdate(&stored)

		upstream := testutils.CreateTestPlayer()
		upstream.UID = "uid_new_owner"

		_, err := s.orchestrator.ResetFromUpstream(s.ctx, &player.ResetFromUpstreamInput{
			PlayerID: testutils.TestPlayerID,
			Player:   upstream,
		})
		s.Require().NoError(err)
		s.Assert().False(stored.IsOwner)
	})

	s.Run("deleted player closes sessions", func() {
		s.mockSessionRepo.EXPECT().
			ListByPlayerID(gomock.Any(), gomock.Any()).
			Return(&editsessionrepo.ListByPlayerIDOutput{Sessions: []*entities.EditSession{s.newSession()}}, nil)
		s.mockSessionRepo.EXPECT().
			Delete(gomock.Any(), editsessionrepo.DeleteInput{ID: testutils.TestSessionID}).
			Return(&editsessionrepo.DeleteOutput{}, nil)

		out, err := s.orchestrator.ResetFromUpstream(s.ctx, &player.ResetFromUpstreamInput{
			PlayerID: testutils.TestPlayerID,
		})
		s.Require().NoError(err)
		s.Assert().Equal(1, out.SessionsClosed)
		s.Assert().Zero(out.SessionsReset)
	})

	s.Run("session expired mid-reset is skipped", func() {
		s.mockSessionRepo.EXPECT().
			ListByPlayerID(gomock.Any(), gomock.Any()).
			Return(&editsessionrepo.ListByPlayerIDOutput{Sessions: []*entities.EditSession{s.newSession()}}, nil)
		s.mockSessionRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil, errors.NotFound("edit session not found"))

		out, err := s.orchestrator.ResetFromUpstream(s.ctx, &player.ResetFromUpstreamInput{
			PlayerID: testutils.TestPlayerID,
			Player:   testutils.CreateTestPlayer(),
		})
		s.Require().NoError(err)
		s.Assert().Zero(out.SessionsReset)
	})
}
