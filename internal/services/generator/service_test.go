package generator_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/content"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/dice"
	mockdice "github.com/lecrapal/Cairn-FoundryVTT/internal/dice/mock"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/notify"
	mocknotify "github.com/lecrapal/Cairn-FoundryVTT/internal/notify/mock"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/repositories/actors"
	mockactors "github.com/lecrapal/Cairn-FoundryVTT/internal/repositories/actors/mock"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/services/generator"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/services/materializer"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/services/tables"
	mocktables "github.com/lecrapal/Cairn-FoundryVTT/internal/services/tables/mock"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/uuid"
)

// scriptedRun rolls Agatha Dunmore, a carpenter with a sword, a helmet and a mule
var scriptedRun = []int{
	3, 4, 5, // STR 12
	1, 2, 3, // DEX 6
	6, 6, 6, // WIL 18
	4,       // HP
	1, 1, 1, // gold
	5, 5, // age 20
	2,                            // female names
	1,                            // Agatha
	4,                            // Dunmore
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // traits
	5,    // Carpenter
	2,    // Armor: no armor
	6, 1, // Weapons: medium, Sword
	14,    // Helmet
	20,    // Mule
	1,     // Bellows
	2,     // Card Deck
	1, 13, // Bonus: tools, Lockpicks
}

type GeneratorTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	store    *content.Store
	roller   *mockdice.ManualMockRoller
	repo     *actors.InMemoryRepository
	notifier *mocknotify.MockNotifier
}

func (s *GeneratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())

	store, err := content.Default()
	s.Require().NoError(err)
	s.store = store

	s.roller = mockdice.NewManualMockRoller()
	s.repo = actors.NewInMemoryRepository(&actors.InMemoryConfig{
		UUIDGenerator: uuid.NewSequenceGenerator("actor"),
	})
	s.notifier = mocknotify.NewMockNotifier(s.ctrl)
}

func (s *GeneratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *GeneratorTestSuite) newService(opts *generator.Options) generator.Service {
	return generator.NewService(&generator.ServiceConfig{
		Tables:       tables.NewService(&tables.ServiceConfig{Repository: s.store, Roller: s.roller}),
		Materializer: materializer.NewService(&materializer.ServiceConfig{Repository: s.store}),
		Repository:   s.repo,
		Roller:       s.roller,
		Notifier:     s.notifier,
		Options:      opts,
	})
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) TestGenerate_ScriptedCharacter() {
	s.roller.SetRolls(scriptedRun)

	var announced *notify.Message
	s.notifier.EXPECT().Post(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg *notify.Message) error {
			announced = msg
			return nil
		})

	result, err := s.newService(nil).Generate(s.ctx, &generator.GenerateInput{OwnerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(0, s.roller.Remaining())

	character := result.Character
	s.Equal("Agatha Dunmore", character.Name)
	s.Equal("player-1", character.OwnerID)
	s.Equal(entities.ActorTypeCharacter, character.Type)
	s.Equal(entities.NewScore(12), character.Abilities.STR)
	s.Equal(entities.NewScore(6), character.Abilities.DEX)
	s.Equal(entities.NewScore(18), character.Abilities.WIL)
	s.Equal(entities.NewScore(4), character.HP)
	s.Equal(3, character.Gold)
	s.Equal(20, character.Age)
	s.Equal("Carpenter", character.Background)

	s.Contains(character.Biography, "Agatha Dunmore is 20 years old")
	s.Contains(character.Biography, "bony face")
	s.Contains(character.Biography, "were once abandoned")
	s.NotContains(character.Biography, "{")

	names := make([]string, 0, len(character.Items))
	for _, item := range character.Items {
		names = append(names, item.Name)
		s.NotEmpty(item.ID)
	}
	s.Equal([]string{"Rations", "Torch", "Sword", "Helmet", "Bellows", "Card Deck", "Lockpicks"}, names)
	s.Equal(3, character.Items[0].Quantity)

	s.Equal(9.0, character.SlotsUsed)
	s.False(character.Encumbered)
	s.Equal(1, character.Armor)

	s.Require().Len(result.Companions, 1)
	mule := result.Companions[0]
	s.Equal("Agatha Dunmore's Mule", mule.Name)
	s.Equal("player-1", mule.OwnerID)
	s.Equal(entities.ActorTypeContainer, mule.Type)
	s.Equal(1.0, mule.SlotsUsed)

	stored, err := s.repo.ListByOwner(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Len(stored, 2)

	s.Require().NotNil(announced)
	s.Equal("Agatha Dunmore", announced.Title)
	s.Contains(announced.Lines, "Companions: Agatha Dunmore's Mule")
}

func (s *GeneratorTestSuite) TestGenerate_MaleCoinUsesMaleNames() {
	rolls := append([]int(nil), scriptedRun...)
	rolls[15] = 1 // coin
	s.roller.SetRolls(rolls)
	s.notifier.EXPECT().Post(gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.newService(nil).Generate(s.ctx, &generator.GenerateInput{OwnerID: "player-1"})
	s.Require().NoError(err)
	s.Equal("Barnabus Dunmore", result.Character.Name)
	s.Equal("Barnabus Dunmore's Mule", result.Companions[0].Name)
}

func (s *GeneratorTestSuite) TestGenerate_MissingStartingGearIsFatal() {
	s.roller.SetRolls(scriptedRun)

	var failure *notify.Message
	s.notifier.EXPECT().Post(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg *notify.Message) error {
			failure = msg
			return nil
		})

	svc := s.newService(&generator.Options{
		StartingGear: []generator.StartingItem{{Name: "Rations"}, {Name: "Torhc"}},
	})
	result, err := svc.Generate(s.ctx, &generator.GenerateInput{OwnerID: "player-1"})

	s.Require().Error(err)
	s.Nil(result)
	s.True(cairnerr.IsNotFound(err))
	s.Equal(string(generator.StateRollStartingGear), cairnerr.GetMeta(err)["state"])

	stored, listErr := s.repo.ListByOwner(s.ctx, "player-1")
	s.Require().NoError(listErr)
	s.Empty(stored)

	s.Require().NotNil(failure)
	s.True(failure.Error)
}

func (s *GeneratorTestSuite) TestGenerate_MissingInventoryTableIsSkipped() {
	// Same run without the bonus roll
	s.roller.SetRolls(scriptedRun[:len(scriptedRun)-2])
	s.notifier.EXPECT().Post(gomock.Any(), gomock.Any()).Return(nil)

	specs := generator.DefaultInventorySpecs()
	specs[len(specs)-1].Table.Name = "Lost Table"

	result, err := s.newService(&generator.Options{InventorySpecs: specs}).
		Generate(s.ctx, &generator.GenerateInput{OwnerID: "player-1"})
	s.Require().NoError(err)
	s.Len(result.Character.Items, 6)
	s.Equal(8.0, result.Character.SlotsUsed)
}

const blankRowDeck = `
deck: test.oddities
tables:
  - name: Pockets
    formula: 1d2
    entries:
      - {range: [1, 1], text: ""}
      - {range: [2, 2], kind: entity, text: "Lint"}
`

func (s *GeneratorTestSuite) TestGenerate_BlankInventoryRowIsSkipped() {
	deck, err := content.ParseDeck([]byte(blankRowDeck))
	s.Require().NoError(err)
	s.Require().NoError(s.store.AddDeck(deck))

	rolls := append([]int{}, scriptedRun[:29]...)
	rolls = append(rolls, 1)     // Pockets: blank row
	rolls = append(rolls, 1, 13) // Bonus: tools, Lockpicks
	s.roller.SetRolls(rolls)
	s.notifier.EXPECT().Post(gomock.Any(), gomock.Any()).Return(nil)

	defaults := generator.DefaultInventorySpecs()
	specs := []entities.InventoryRollSpec{
		{
			Label: "Pockets",
			Table: entities.TableRef{Deck: "test.oddities", Name: "Pockets"},
			Decks: []string{"test.oddities"},
		},
		defaults[len(defaults)-1],
	}

	result, err := s.newService(&generator.Options{InventorySpecs: specs}).
		Generate(s.ctx, &generator.GenerateInput{OwnerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(0, s.roller.Remaining())

	names := make([]string, 0, len(result.Character.Items))
	for _, item := range result.Character.Items {
		names = append(names, item.Name)
	}
	s.Equal([]string{"Rations", "Torch", "Lockpicks"}, names)
}

func (s *GeneratorTestSuite) TestGenerate_AnnounceFailureDoesNotFail() {
	s.roller.SetRolls(scriptedRun)
	s.notifier.EXPECT().Post(gomock.Any(), gomock.Any()).Return(errors.New("discord unavailable"))

	result, err := s.newService(nil).Generate(s.ctx, &generator.GenerateInput{OwnerID: "player-1"})
	s.Require().NoError(err)
	s.NotEmpty(result.Character.ID)
}

func (s *GeneratorTestSuite) TestGenerate_RollerExhaustedAbortsBeforePersist() {
	s.roller.SetRolls([]int{3, 4, 5})
	s.notifier.EXPECT().Post(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.newService(nil).Generate(s.ctx, &generator.GenerateInput{OwnerID: "player-1"})
	s.Require().Error(err)
	s.Equal(string(generator.StateRollAbilities), cairnerr.GetMeta(err)["state"])
}

func TestGenerate_MalformedChainAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store, err := content.Default()
	require.NoError(t, err)

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls(scriptedRun[:29])

	realTables := tables.NewService(&tables.ServiceConfig{Repository: store, Roller: roller})
	tablesSvc := mocktables.NewMockService(ctrl)
	tablesSvc.EXPECT().Draw(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(realTables.Draw).AnyTimes()
	tablesSvc.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(nil, cairnerr.MalformedChainf("sub-table 'Knives' not found"))

	repo := mockactors.NewMockRepository(ctrl)
	notifier := mocknotify.NewMockNotifier(ctrl)
	notifier.EXPECT().Post(gomock.Any(), gomock.Any()).Return(nil)

	svc := generator.NewService(&generator.ServiceConfig{
		Tables:       tablesSvc,
		Materializer: materializer.NewService(&materializer.ServiceConfig{Repository: store}),
		Repository:   repo,
		Roller:       roller,
		Notifier:     notifier,
	})

	_, err = svc.Generate(context.Background(), &generator.GenerateInput{OwnerID: "player-1"})
	require.Error(t, err)
	assert.True(t, cairnerr.IsMalformedChain(err))
	assert.Equal(t, string(generator.StateRollInventoryTable), cairnerr.GetMeta(err)["state"])
}

func TestGenerate_PersistFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store, err := content.Default()
	require.NoError(t, err)

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls(scriptedRun)

	repo := mockactors.NewMockRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, actor *entities.Actor) error {
				assert.Equal(t, "Agatha Dunmore's Mule", actor.Name)
				actor.ID = "mule-1"
				return nil
			}),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, actor *entities.Actor) error {
				assert.Empty(t, actor.Items)
				return cairnerr.AlreadyExistsf("actor already exists")
			}),
	)
	notifier := mocknotify.NewMockNotifier(ctrl)
	notifier.EXPECT().Post(gomock.Any(), gomock.Any()).Return(nil)

	svc := generator.NewService(&generator.ServiceConfig{
		Tables:       tables.NewService(&tables.ServiceConfig{Repository: store, Roller: roller}),
		Materializer: materializer.NewService(&materializer.ServiceConfig{Repository: store}),
		Repository:   repo,
		Roller:       roller,
		Notifier:     notifier,
	})

	_, err = svc.Generate(context.Background(), &generator.GenerateInput{OwnerID: "player-1"})
	require.Error(t, err)
	assert.True(t, cairnerr.IsAlreadyExists(err))
	assert.Equal(t, string(generator.StatePersist), cairnerr.GetMeta(err)["state"])
}

func newSeededService(t *testing.T, store *content.Store, repo actors.Repository, seed int64) generator.Service {
	t.Helper()
	roller := dice.NewSeededRoller(seed)
	return generator.NewService(&generator.ServiceConfig{
		Tables:       tables.NewService(&tables.ServiceConfig{Repository: store, Roller: roller}),
		Materializer: materializer.NewService(&materializer.ServiceConfig{Repository: store}),
		Repository:   repo,
		Roller:       roller,
	})
}

func TestGenerate_SameSeedSameCharacter(t *testing.T) {
	store, err := content.Default()
	require.NoError(t, err)
	repo := actors.NewInMemoryRepository(nil)

	first, err := newSeededService(t, store, repo, 42).Generate(context.Background(), &generator.GenerateInput{OwnerID: "a"})
	require.NoError(t, err)
	second, err := newSeededService(t, store, repo, 42).Generate(context.Background(), &generator.GenerateInput{OwnerID: "b"})
	require.NoError(t, err)

	assert.Equal(t, first.Draft, second.Draft)
	assert.NotEqual(t, first.Character.ID, second.Character.ID)
}

func TestGenerate_ConcurrentRunsAreIndependent(t *testing.T) {
	store, err := content.Default()
	require.NoError(t, err)
	repo := actors.NewInMemoryRepository(nil)

	const runs = 8
	results := make([]*generator.Result, runs)
	var wg sync.WaitGroup
	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := newSeededService(t, store, repo, int64(i+1)).
				Generate(context.Background(), &generator.GenerateInput{OwnerID: "table"})
			assert.NoError(t, err)
			results[i] = res
		}(i)
	}
	wg.Wait()

	expected := 0
	for _, res := range results {
		require.NotNil(t, res)
		expected += 1 + len(res.Companions)
	}

	stored, err := repo.ListByOwner(context.Background(), "table")
	require.NoError(t, err)
	assert.Len(t, stored, expected)

	// A replay of any seed matches its concurrent run
	replay, err := newSeededService(t, store, actors.NewInMemoryRepository(nil), 3).
		Generate(context.Background(), &generator.GenerateInput{OwnerID: "table"})
	require.NoError(t, err)
	assert.Equal(t, results[2].Draft, replay.Draft)
}
