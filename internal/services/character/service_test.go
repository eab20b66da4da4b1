package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	mockdice "github.com/lecrapal/Cairn-FoundryVTT/internal/dice/mock"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/repositories/actors"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/services/character"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/testutils"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/uuid"
)

type CharacterServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	roller *mockdice.ManualMockRoller
	repo   *actors.InMemoryRepository
	svc    character.Service
}

func (s *CharacterServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = mockdice.NewManualMockRoller()
	s.repo = actors.NewInMemoryRepository(&actors.InMemoryConfig{
		UUIDGenerator: uuid.NewSequenceGenerator("item"),
	})
	s.svc = character.NewService(&character.ServiceConfig{
		Repository: s.repo,
		Roller:     s.roller,
	})

	s.Require().NoError(s.repo.Create(s.ctx, &entities.Actor{
		ID:      "pc",
		OwnerID: "player-1",
		Name:    "Agatha Dunmore",
		Type:    entities.ActorTypeCharacter,
		HP:      entities.Score{Value: 1, Max: 4},
		Abilities: entities.Abilities{
			STR: entities.Score{Value: 7, Max: 12},
			DEX: entities.Score{Value: 6, Max: 6},
			WIL: entities.Score{Value: 10, Max: 18},
		},
	}))
	_, err := s.repo.AttachPossessions(s.ctx, "pc", []*entities.Item{
		testutils.CreateTestItem("rations", "Rations", 1, 3),
		testutils.CreateTestArmor("plate", "Plate", 2, 3),
	})
	s.Require().NoError(err)
}

func TestCharacterServiceSuite(t *testing.T) {
	suite.Run(t, new(CharacterServiceTestSuite))
}

func (s *CharacterServiceTestSuite) TestRest_RestoresHP() {
	actor, err := s.svc.Rest(s.ctx, "pc")
	s.Require().NoError(err)
	s.Equal(4, actor.HP.Value)

	stored, err := s.svc.Get(s.ctx, "pc")
	s.Require().NoError(err)
	s.Equal(4, stored.HP.Value)
}

func (s *CharacterServiceTestSuite) TestRest_BlockedWhenDeprived() {
	_, err := s.svc.SetDeprived(s.ctx, "pc", true)
	s.Require().NoError(err)

	_, err = s.svc.Rest(s.ctx, "pc")
	s.True(cairnerr.IsValidation(err))

	_, err = s.svc.RestoreAbilities(s.ctx, "pc")
	s.True(cairnerr.IsValidation(err))

	stored, err := s.svc.Get(s.ctx, "pc")
	s.Require().NoError(err)
	s.Equal(1, stored.HP.Value)
	s.Equal(7, stored.Abilities.STR.Value)
}

func (s *CharacterServiceTestSuite) TestRestoreAbilities() {
	actor, err := s.svc.RestoreAbilities(s.ctx, "pc")
	s.Require().NoError(err)
	s.Equal(12, actor.Abilities.STR.Value)
	s.Equal(6, actor.Abilities.DEX.Value)
	s.Equal(18, actor.Abilities.WIL.Value)
	s.Equal(1, actor.HP.Value)
}

func (s *CharacterServiceTestSuite) TestAddItem_RecomputesSlots() {
	actor, err := s.svc.AddItem(s.ctx, "pc", &entities.Item{Name: "Chalk", Slots: 0.1, Quantity: 10})
	s.Require().NoError(err)
	s.Equal(6.0, actor.SlotsUsed)
	s.Len(actor.Items, 3)
	s.NotEmpty(actor.Items[2].ID)
}

func (s *CharacterServiceTestSuite) TestAddItem_EncumbranceDropsHP() {
	_, err := s.svc.Rest(s.ctx, "pc")
	s.Require().NoError(err)

	actor, err := s.svc.AddItem(s.ctx, "pc", &entities.Item{Name: "Anvil", Slots: 5})
	s.Require().NoError(err)
	s.Equal(10.0, actor.SlotsUsed)
	s.True(actor.Encumbered)
	s.Equal(0, actor.HP.Value)

	// Resting while encumbered cannot lift HP
	actor, err = s.svc.Rest(s.ctx, "pc")
	s.Require().NoError(err)
	s.Equal(0, actor.HP.Value)
}

func (s *CharacterServiceTestSuite) TestAddItem_RejectsBadSlots() {
	_, err := s.svc.AddItem(s.ctx, "pc", &entities.Item{Name: "Dust", Slots: 0.0001})
	s.True(cairnerr.IsInvalidArgument(err))

	_, err = s.svc.AddItem(s.ctx, "pc", &entities.Item{Name: "Hole", Slots: -1})
	s.True(cairnerr.IsInvalidArgument(err))

	_, err = s.svc.AddItem(s.ctx, "pc", &entities.Item{Slots: 1})
	s.True(cairnerr.IsInvalidArgument(err))
}

func (s *CharacterServiceTestSuite) TestRemoveItem_DecrementsThenDeletes() {
	actor, err := s.svc.RemoveItem(s.ctx, "pc", "rations")
	s.Require().NoError(err)
	rations, ok := actor.FindItem("rations")
	s.Require().True(ok)
	s.Equal(2, rations.Quantity)
	s.Equal(4.0, actor.SlotsUsed)

	_, err = s.svc.RemoveItem(s.ctx, "pc", "rations")
	s.Require().NoError(err)
	actor, err = s.svc.RemoveItem(s.ctx, "pc", "rations")
	s.Require().NoError(err)
	_, ok = actor.FindItem("rations")
	s.False(ok)
	s.Equal(2.0, actor.SlotsUsed)

	_, err = s.svc.RemoveItem(s.ctx, "pc", "rations")
	s.True(cairnerr.IsNotFound(err))
}

func (s *CharacterServiceTestSuite) TestSetEquipped_UpdatesArmor() {
	stored, err := s.svc.Get(s.ctx, "pc")
	s.Require().NoError(err)
	s.Equal(3, stored.Armor)

	actor, err := s.svc.SetEquipped(s.ctx, "pc", "plate", false)
	s.Require().NoError(err)
	s.Equal(0, actor.Armor)

	_, err = s.svc.SetEquipped(s.ctx, "pc", "missing", true)
	s.True(cairnerr.IsNotFound(err))
}

func (s *CharacterServiceTestSuite) TestRollSave_RollUnder() {
	s.roller.SetRolls([]int{7, 8})

	save, err := s.svc.RollSave(s.ctx, "pc", entities.AbilityStrength)
	s.Require().NoError(err)
	s.True(save.Success)
	s.Equal(7, save.Target)

	save, err = s.svc.RollSave(s.ctx, "pc", entities.AbilityStrength)
	s.Require().NoError(err)
	s.False(save.Success)
	s.Equal(8, save.Roll)
}

func (s *CharacterServiceTestSuite) TestRollSave_UnknownAbility() {
	_, err := s.svc.RollSave(s.ctx, "pc", entities.Ability("CHA"))
	s.True(cairnerr.IsInvalidArgument(err))
}

func (s *CharacterServiceTestSuite) TestDieOfFate() {
	s.roller.SetNextRoll(6)
	roll, err := s.svc.DieOfFate(s.ctx)
	s.Require().NoError(err)
	s.Equal(6, roll)
}

func (s *CharacterServiceTestSuite) TestListByOwner() {
	list, err := s.svc.ListByOwner(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Len(list, 1)

	_, err = s.svc.ListByOwner(s.ctx, "")
	s.True(cairnerr.IsInvalidArgument(err))
}

func (s *CharacterServiceTestSuite) TestGet_Missing() {
	_, err := s.svc.Get(s.ctx, "nobody")
	s.True(cairnerr.IsNotFound(err))
}
