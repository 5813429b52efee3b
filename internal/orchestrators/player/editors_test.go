package player_test

import (
	"context"
	"encoding/json"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/fabula-api/internal/catalog"
	catalogmock "github.com/KirkDiggler/fabula-api/internal/catalog/mock"
	"github.com/KirkDiggler/fabula-api/internal/engine"
	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/export"
	playerorch "github.com/KirkDiggler/fabula-api/internal/orchestrators/player"
	"github.com/KirkDiggler/fabula-api/internal/services/player"
	"github.com/KirkDiggler/fabula-api/internal/testutils"
	"github.com/KirkDiggler/fabula-api/internal/testutils/builders"
)

func (s *OrchestratorTestSuite) TestMutatorsRequireOwner() {
	// no Update expectation: a stored change would fail the mock
	s.expectGetSession(s.visitorSession())

	_, err := s.orchestrator.UpdateBasics(s.ctx, &player.UpdateBasicsInput{
		SessionID: testutils.TestSessionID,
		UserID:    testutils.TestVisitorID,
		Name:      "Not Lia",
		Lvl:       5,
	})
	s.Assert().True(errors.IsPermissionDenied(err))
}

func (s *OrchestratorTestSuite) TestUpdateBasics() {
	s.Run("level change recalculates", func() {
		var stored *entities.EditSession
		s.expectGetSession(s.newSession())
		s.expectRecalc(60)
		s.expectUpdate(&stored)
		s.expectRoster(engine.RosterWarningLevelSum)

		out, err := s.orchestrator.UpdateBasics(s.ctx, &player.UpdateBasicsInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			Name:      "Lia",
			Lvl:       6,
			Info:      entities.Info{Description: "Wandering knight"},
		})
		s.Require().NoError(err)
		s.Assert().True(stored.Dirty)
		s.Assert().Equal(entities.SessionStateEditing, out.State)
		s.Assert().Equal(6, stored.Scratch.Lvl)
		s.Assert().Equal("Wandering knight", stored.Scratch.Info.Description)
		s.Assert().Equal(60, stored.Scratch.Stats.HP.Max)
		s.Assert().Len(out.Warnings, 1)
	})

	s.Run("same level skips recalculation", func() {
		var stored *entities.EditSession
		s.expectGetSession(s.newSession())
		s.expectUpdate(&stored)
		s.expectRoster()

		_, err := s.orchestrator.UpdateBasics(s.ctx, &player.UpdateBasicsInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			Name:      "Lia Renamed",
			Lvl:       5,
		})
		s.Require().NoError(err)
		s.Assert().Equal("Lia Renamed", stored.Scratch.Name)
		s.Assert().Equal(50, stored.Scratch.Stats.HP.Max)
	})

	s.Run("level out of range", func() {
		_, err := s.orchestrator.UpdateBasics(s.ctx, &player.UpdateBasicsInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			Name:      "Lia",
			Lvl:       0,
		})
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestUpdateAttributes() {
	s.Run("replaces dice", func() {
		var stored *entities.EditSession
		s.expectGetSession(s.newSession())
		s.expectRecalc(40)
		s.expectUpdate(&stored)
		s.expectRoster()

		_, err := s.orchestrator.UpdateAttributes(s.ctx, &player.UpdateAttributesInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			Attributes: map[entities.Attribute]int{
				entities.AttributeDexterity: 10,
				entities.AttributeInsight:   6,
				entities.AttributeMight:     12,
				entities.AttributeWillpower: 8,
			},
		})
		s.Require().NoError(err)
		s.Assert().Equal(12, stored.Scratch.Attributes[entities.AttributeMight])
		s.Assert().Equal(6, stored.Scratch.Attributes[entities.AttributeInsight])
	})

	s.Run("rejects invalid dice", func() {
		_, err := s.orchestrator.UpdateAttributes(s.ctx, &player.UpdateAttributesInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			Attributes: map[entities.Attribute]int{
				entities.AttributeDexterity: 7,
				entities.AttributeInsight:   8,
				entities.AttributeMight:     8,
				entities.AttributeWillpower: 8,
			},
		})
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidArgument(err))
		fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
		s.Require().True(ok)
		s.Assert().Contains(fields, "dexterity")
	})

	s.Run("requires every attribute", func() {
		_, err := s.orchestrator.UpdateAttributes(s.ctx, &player.UpdateAttributesInput{
			SessionID:  testutils.TestSessionID,
			UserID:     testutils.TestOwnerID,
			Attributes: map[entities.Attribute]int{entities.AttributeMight: 8},
		})
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestUpdateCurrentStats() {
	var stored *entities.EditSession
	s.expectGetSession(s.newSession())
	s.expectUpdate(&stored)
	s.expectRoster()

	_, err := s.orchestrator.UpdateCurrentStats(s.ctx, &player.UpdateCurrentStatsInput{
		SessionID: testutils.TestSessionID,
		UserID:    testutils.TestOwnerID,
		HP:        999,
		MP:        -5,
		IP:        3,
	})
	s.Require().NoError(err)
	s.Assert().Equal(entities.Pool{Current: 50, Max: 50}, stored.Scratch.Stats.HP)
	s.Assert().Equal(entities.Pool{Current: 0, Max: 50}, stored.Scratch.Stats.MP)
	s.Assert().Equal(entities.Pool{Current: 3, Max: 6}, stored.Scratch.Stats.IP)
	s.Assert().True(stored.Dirty)
}

func (s *OrchestratorTestSuite) TestUpdateCurrentStatsNegativeMax() {
	session := s.newSession()
	session.Scratch.Stats.HP = entities.Pool{Current: 0, Max: -10}

	var stored *entities.EditSession
	s.expectGetSession(session)
	s.expectUpdate(&stored)
	s.expectRoster()

	_, err := s.orchestrator.UpdateCurrentStats(s.ctx, &player.UpdateCurrentStatsInput{
		SessionID: testutils.TestSessionID,
		UserID:    testutils.TestOwnerID,
		HP:        5,
		MP:        10,
		IP:        3,
	})
	s.Require().NoError(err)
	s.Assert().Equal(entities.Pool{Current: -10, Max: -10}, stored.Scratch.Stats.HP)
	s.Assert().LessOrEqual(stored.Scratch.Stats.HP.Current, stored.Scratch.Stats.HP.Max)
}

func (s *OrchestratorTestSuite) TestUpdateDetails() {
	var stored *entities.EditSession
	s.expectGetSession(s.newSession())
	s.expectUpdate(&stored)
	s.expectRoster()

	bonds := []entities.Bond{{Name: "Ardent", Admiration: true}}
	_, err := s.orchestrator.UpdateDetails(s.ctx, &player.UpdateDetailsInput{
		SessionID: testutils.TestSessionID,
		UserID:    testutils.TestOwnerID,
		Traits:    entities.Traits{Theme: "Justice"},
		Bonds:     bonds,
	})
	s.Require().NoError(err)
	s.Assert().Equal("Justice", stored.Scratch.Traits.Theme)
	s.Assert().Equal(bonds, stored.Scratch.Bonds)
	s.Assert().NotNil(stored.Scratch.Notes)

	bonds[0].Name = "changed"
	s.Assert().Equal("Ardent", stored.Scratch.Bonds[0].Name)
}

func (s *OrchestratorTestSuite) TestAddClass() {
	s.Run("adds a catalog class at level 1", func() {
		var stored *entities.EditSession
		s.expectGetSession(s.newSession())
		s.expectRecalc(55)
		s.expectUpdate(&stored)
		s.expectRoster(engine.RosterWarningLevelSum)

		out, err := s.orchestrator.AddClass(s.ctx, &player.AddClassInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			ClassName: "darkblade",
		})
		s.Require().NoError(err)
		s.Require().Len(stored.Scratch.Classes, 3)

		added := stored.Scratch.Classes[2]
		s.Assert().Equal("Darkblade", added.Name)
		s.Assert().Equal(1, added.Lvl)
		s.Assert().Equal(5, added.Benefits.HPPlus)
		s.Assert().NotNil(added.Skills)
		s.Assert().NotNil(added.Spells)
		s.Assert().True(stored.Dirty)
		s.Assert().Empty(out.Notices)
	})

	s.Run("existing class changes nothing", func() {
		session := s.newSession()
		session.Language = "it"
		s.expectGetSession(session)
		s.expectRoster()

		out, err := s.orchestrator.AddClass(s.ctx, &player.AddClassInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			ClassName: "Guardian",
		})
		s.Require().NoError(err)
		s.Assert().Len(out.Session.Scratch.Classes, 2)
		s.Assert().False(out.Session.Dirty)
		s.Assert().Equal([]string{"Questa classe esiste già per il giocatore"}, out.Notices)
	})

	s.Run("existing class outside the catalog changes nothing", func() {
		session := s.newSession()
		session.Scratch = builders.NewPlayerBuilder().
			WithClass("Fighter", 3).
			Build()
		s.expectGetSession(session)
		s.expectRoster(engine.RosterWarningMinClasses)

		out, err := s.orchestrator.AddClass(s.ctx, &player.AddClassInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			ClassName: "Fighter",
		})
		s.Require().NoError(err)
		s.Require().Len(out.Session.Scratch.Classes, 1)
		s.Assert().Equal(3, out.Session.Scratch.Classes[0].Lvl)
		s.Assert().Equal([]string{"This class type already exists for the player"}, out.Notices)
	})

	s.Run("unknown class", func() {
		s.expectGetSession(s.newSession())

		_, err := s.orchestrator.AddClass(s.ctx, &player.AddClassInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			ClassName: "Necromancer",
		})
		s.Assert().True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestAddClassFromCatalog() {
	mockCatalog := catalogmock.NewMockCatalog(s.ctrl)
	orchestrator, err := playerorch.New(&playerorch.Config{
		PlayerRepo:   s.mockPlayerRepo,
		SessionRepo:  s.mockSessionRepo,
		RevisionRepo: s.mockRevisionRepo,
		Engine:       s.mockEngine,
		Catalog:      mockCatalog,
		Translator:   s.translator,
		Schema:       s.schema,
		PlayerIDGen:  s.mockPlayerIDGen,
		SessionIDGen: s.mockSessionIDGen,
		SessionTTL:   testSessionTTL,
	})
	s.Require().NoError(err)

	s.Run("copies the published benefits", func() {
		def := &catalog.ClassDefinition{
			Name: "Chronomancer",
			Book: "homebrew",
			Benefits: entities.ClassBenefits{
				MPPlus:       5,
				SpellClasses: []entities.SpellType{entities.SpellTypeDefault},
				Rituals:      []string{"chronomancy"},
			},
		}
		mockCatalog.EXPECT().GetClass("chronomancer").Return(def, nil)

		var stored *entities.EditSession
		s.expectGetSession(s.newSession())
		s.expectRecalc(50)
		s.expectUpdate(&stored)
		s.expectRoster()

		_, err := orchestrator.AddClass(s.ctx, &player.AddClassInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			ClassName: "chronomancer",
		})
		s.Require().NoError(err)

		def.Benefits.Rituals[0] = "changed"
		added := stored.Scratch.Classes[len(stored.Scratch.Classes)-1]
		s.Assert().Equal("Chronomancer", added.Name)
		s.Assert().Equal(5, added.Benefits.MPPlus)
		s.Assert().Equal([]string{"chronomancy"}, added.Benefits.Rituals)
	})

	s.Run("catalog failure keeps its code", func() {
		mockCatalog.EXPECT().GetClass("Broken").Return(nil, errors.Internal("catalog unavailable"))
		s.expectGetSession(s.newSession())

		_, err := orchestrator.AddClass(s.ctx, &player.AddClassInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			ClassName: "Broken",
		})
		s.Assert().True(errors.IsInternal(err))
	})
}

func (s *OrchestratorTestSuite) TestRemoveClass() {
	s.Run("keeps the order of the rest", func() {
		session := s.newSession()
		session.Scratch = builders.NewPlayerBuilder().
			WithClass("Darkblade", 2).
			WithClass("Guardian", 2).
			WithClass("Wayfarer", 1).
			Build()
		session.Selection = entities.SpellSelection{ClassName: "Darkblade"}

		var stored *entities.EditSession
		s.expectGetSession(session)
		s.expectRecalc(40)
		s.expectUpdate(&stored)
		s.expectRoster()

		_, err := s.orchestrator.RemoveClass(s.ctx, &player.RemoveClassInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			Index:     0,
		})
		s.Require().NoError(err)
		s.Require().Len(stored.Scratch.Classes, 2)
		s.Assert().Equal("Guardian", stored.Scratch.Classes[0].Name)
		s.Assert().Equal("Wayfarer", stored.Scratch.Classes[1].Name)
		s.Assert().Empty(stored.Selection.ClassName)
	})

	s.Run("index out of range", func() {
		s.expectGetSession(s.newSession())

		_, err := s.orchestrator.RemoveClass(s.ctx, &player.RemoveClassInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			Index:     2,
		})
		s.Assert().True(errors.IsOutOfRange(err))
	})
}

func (s *OrchestratorTestSuite) TestSetClassLevel() {
	s.Run("sets the level", func() {
		var stored *entities.EditSession
		s.expectGetSession(s.newSession())
		s.expectRecalc(50)
		s.expectUpdate(&stored)
		s.expectRoster(engine.RosterWarningLevelSum)

		_, err := s.orchestrator.SetClassLevel(s.ctx, &player.SetClassLevelInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			Index:     1,
			Lvl:       10,
		})
		s.Require().NoError(err)
		s.Assert().Equal(10, stored.Scratch.Classes[1].Lvl)
	})

	s.Run("level above mastery", func() {
		_, err := s.orchestrator.SetClassLevel(s.ctx, &player.SetClassLevelInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			Lvl:       11,
		})
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestAddSkill() {
	s.Run("starts at level 1", func() {
		var stored *entities.EditSession
		s.expectGetSession(s.newSession())
		s.expectUpdate(&stored)
		s.expectRoster()

		_, err := s.orchestrator.AddSkill(s.ctx, &player.AddSkillInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			ClassName: "Guardian",
			SkillName: "Protect",
			MaxLvl:    1,
		})
		s.Require().NoError(err)
		s.Require().Len(stored.Scratch.Classes[0].Skills, 1)
		s.Assert().Equal(entities.Skill{SkillName: "Protect", CurrentLvl: 1, MaxLvl: 1}, stored.Scratch.Classes[0].Skills[0])
	})

	s.Run("class not on the sheet", func() {
		s.expectGetSession(s.newSession())

		_, err := s.orchestrator.AddSkill(s.ctx, &player.AddSkillInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			ClassName: "Darkblade",
			SkillName: "Agony",
			MaxLvl:    3,
		})
		s.Assert().True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestSelectSpellClass() {
	var stored *entities.EditSession
	s.expectGetSession(s.visitorSession())
	s.expectUpdate(&stored)
	s.expectRoster()

	out, err := s.orchestrator.SelectSpellClass(s.ctx, &player.SelectSpellClassInput{
		SessionID: testutils.TestSessionID,
		UserID:    testutils.TestVisitorID,
		ClassName: "Elementalist",
	})
	s.Require().NoError(err)
	s.Assert().Equal([]entities.SpellType{entities.SpellTypeDefault}, out.SpellTypes)
	s.Assert().Equal("Elementalist", stored.Selection.ClassName)
	s.Assert().False(stored.Dirty)
}

func (s *OrchestratorTestSuite) TestAddSpell() {
	s.Run("adds a default spell", func() {
		session := s.newSession()
		session.Selection = entities.SpellSelection{ClassName: "Elementalist"}

		var stored *entities.EditSession
		s.expectGetSession(session)
		s.expectUpdate(&stored)
		s.expectRoster()

		_, err := s.orchestrator.AddSpell(s.ctx, &player.AddSpellInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			ClassName: "Elementalist",
			SpellType: entities.SpellTypeDefault,
		})
		s.Require().NoError(err)
		s.Assert().Equal([]entities.Spell{entities.NewDefaultSpell()}, stored.Scratch.Classes[1].Spells)
		s.Assert().Equal(entities.SpellSelection{}, stored.Selection)
		s.Assert().True(stored.Dirty)
	})

	s.Run("other unlocked types are not implemented", func() {
		session := s.newSession()
		session.Scratch = builders.NewPlayerBuilder().
			WithClasses(entities.PlayerClass{
				Name:     "Arcanist",
				Lvl:      1,
				Benefits: entities.ClassBenefits{SpellClasses: []entities.SpellType{entities.SpellTypeArcanist}},
			}).
			Build()
		s.expectGetSession(session)

		_, err := s.orchestrator.AddSpell(s.ctx, &player.AddSpellInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			ClassName: "Arcanist",
			SpellType: entities.SpellTypeArcanist,
		})
		s.Require().Error(err)
		s.Assert().True(errors.IsUnimplemented(err))
		s.Assert().Equal("ARCANIST spell not implemented yet", errors.GetMessage(err))
		s.Assert().Empty(session.Scratch.Classes[0].Spells)
	})

	s.Run("type the class does not unlock", func() {
		s.expectGetSession(s.newSession())

		_, err := s.orchestrator.AddSpell(s.ctx, &player.AddSpellInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			ClassName: "Guardian",
			SpellType: entities.SpellTypeDefault,
		})
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) spellSession(names ...string) *entities.EditSession {
	spells := make([]entities.Spell, 0, len(names))
	for _, name := range names {
		spell := entities.NewDefaultSpell()
		spell.Name = name
		spells = append(spells, spell)
	}

	session := s.newSession()
	session.Scratch.Classes[1].Spells = spells
	return session
}

func (s *OrchestratorTestSuite) TestEditSpell() {
	var stored *entities.EditSession
	s.expectGetSession(s.spellSession("Fulgur", "Glacies"))
	s.expectUpdate(&stored)
	s.expectRoster()

	_, err := s.orchestrator.EditSpell(s.ctx, &player.EditSpellInput{
		SessionID: testutils.TestSessionID,
		UserID:    testutils.TestOwnerID,
		ClassName: "Elementalist",
		Index:     1,
		Spell: entities.Spell{
			Name:        "Glacies",
			MP:          10,
			MaxTargets:  3,
			IsOffensive: true,
			Attr1:       entities.AttributeInsight,
			Attr2:       entities.AttributeWillpower,
		},
	})
	s.Require().NoError(err)

	edited := stored.Scratch.Classes[1].Spells[1]
	s.Assert().Equal(10, edited.MP)
	s.Assert().Equal(3, edited.MaxTargets)
	s.Assert().Equal(entities.SpellTypeDefault, edited.SpellType)
	s.Assert().Equal("Fulgur", stored.Scratch.Classes[1].Spells[0].Name)
}

func (s *OrchestratorTestSuite) TestDeleteSpell() {
	s.Run("later spells move up", func() {
		var stored *entities.EditSession
		s.expectGetSession(s.spellSession("Fulgur", "Glacies", "Ignis"))
		s.expectUpdate(&stored)
		s.expectRoster()

		_, err := s.orchestrator.DeleteSpell(s.ctx, &player.DeleteSpellInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			ClassName: "Elementalist",
			Index:     1,
		})
		s.Require().NoError(err)

		spells := stored.Scratch.Classes[1].Spells
		s.Require().Len(spells, 2)
		s.Assert().Equal("Fulgur", spells[0].Name)
		s.Assert().Equal("Ignis", spells[1].Name)
	})

	s.Run("index out of range", func() {
		s.expectGetSession(s.spellSession("Fulgur"))

		_, err := s.orchestrator.DeleteSpell(s.ctx, &player.DeleteSpellInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			ClassName: "Elementalist",
			Index:     1,
		})
		s.Assert().True(errors.IsOutOfRange(err))
	})
}

func (s *OrchestratorTestSuite) TestImportWeapon() {
	s.Run("appends a valid weapon", func() {
		weapon := testutils.CreateTestWeapon()
		weapon.Name = "Bronze Spear"
		data, err := json.Marshal(weapon)
		s.Require().NoError(err)

		var stored *entities.EditSession
		s.expectGetSession(s.newSession())
		s.expectUpdate(&stored)
		s.expectRoster()

		_, err = s.orchestrator.ImportWeapon(s.ctx, &player.ImportWeaponInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			Data:      data,
		})
		s.Require().NoError(err)
		s.Require().Len(stored.Scratch.Equipment.Weapons, 2)
		s.Assert().Equal(weapon, stored.Scratch.Equipment.Weapons[1])
	})

	s.Run("rejects a malformed weapon before loading the session", func() {
		_, err := s.orchestrator.ImportWeapon(s.ctx, &player.ImportWeaponInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			Data:      []byte(`{"name": "Stick", "hands": 3}`),
		})
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestAddWeapon() {
	var stored *entities.EditSession
	s.expectGetSession(s.newSession())
	s.expectUpdate(&stored)
	s.expectRoster()

	weapon := testutils.CreateTestWeapon()
	weapon.Name = "Shortbow"
	weapon.Hands = 2
	weapon.Melee = false

	_, err := s.orchestrator.AddWeapon(s.ctx, &player.AddWeaponInput{
		SessionID: testutils.TestSessionID,
		UserID:    testutils.TestOwnerID,
		Weapon:    weapon,
	})
	s.Require().NoError(err)
	s.Assert().Equal("Shortbow", stored.Scratch.Equipment.Weapons[1].Name)
}

func (s *OrchestratorTestSuite) TestRemoveWeapon() {
	var stored *entities.EditSession
	s.expectGetSession(s.newSession())
	s.expectUpdate(&stored)
	s.expectRoster()

	_, err := s.orchestrator.RemoveWeapon(s.ctx, &player.RemoveWeaponInput{
		SessionID: testutils.TestSessionID,
		UserID:    testutils.TestOwnerID,
		Index:     0,
	})
	s.Require().NoError(err)
	s.Assert().Empty(stored.Scratch.Equipment.Weapons)
}

func (s *OrchestratorTestSuite) TestExportWeapon() {
	s.Run("visitor downloads JSON", func() {
		s.expectGetSession(s.visitorSession())

		out, err := s.orchestrator.ExportWeapon(s.ctx, &player.ExportWeaponInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestVisitorID,
		})
		s.Require().NoError(err)
		s.Assert().Equal("iron_sword.json", out.File.FileName)
		s.Assert().Equal(export.ContentTypeJSON, out.File.ContentType)

		var weapon entities.Weapon
		s.Require().NoError(json.Unmarshal(out.File.Data, &weapon))
		s.Assert().Equal(testutils.CreateTestWeapon(), weapon)
	})

	s.Run("renders a PNG card", func() {
		s.expectGetSession(s.newSession())

		out, err := s.orchestrator.RenderWeaponCard(s.ctx, &player.ExportWeaponInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
		})
		s.Require().NoError(err)
		s.Assert().Equal("iron_sword.png", out.File.FileName)
		s.Assert().Equal(export.ContentTypePNG, out.File.ContentType)
		s.Assert().Equal([]byte("\x89PNG"), out.File.Data[:4])
	})

	s.Run("index out of range", func() {
		s.expectGetSession(s.newSession())

		_, err := s.orchestrator.ExportWeapon(s.ctx, &player.ExportWeaponInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			Index:     4,
		})
		s.Assert().True(errors.IsOutOfRange(err))
	})
}

func (s *OrchestratorTestSuite) TestRollCheck() {
	s.Run("visitor rolls with the sheet dice", func() {
		session := s.visitorSession()
		session.Scratch.Attributes[entities.AttributeMight] = 12
		s.expectGetSession(session)
		s.mockEngine.EXPECT().
			RollCheck(gomock.Any(), &engine.RollCheckInput{Die1: 8, Die2: 12, Bonus: 2}).
			DoAndReturn(func(_ context.Context, input *engine.RollCheckInput) (*engine.RollCheckOutput, error) {
				return &engine.RollCheckOutput{Result1: 5, Result2: 9, Bonus: 2, Total: 16, HighRoll: 9}, nil
			})

		out, err := s.orchestrator.RollCheck(s.ctx, &player.RollCheckInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestVisitorID,
			Attr1:     entities.AttributeDexterity,
			Attr2:     entities.AttributeMight,
			Bonus:     2,
		})
		s.Require().NoError(err)
		s.Assert().Equal(entities.AttributeDexterity, out.Attr1)
		s.Assert().Equal(16, out.Result.Total)
	})

	s.Run("unknown attribute", func() {
		_, err := s.orchestrator.RollCheck(s.ctx, &player.RollCheckInput{
			SessionID: testutils.TestSessionID,
			UserID:    testutils.TestOwnerID,
			Attr1:     "charisma",
			Attr2:     entities.AttributeMight,
		})
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}
