package generator

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/notify"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/rules/encumbrance"
)

// State names a step of a generation run
type State string

const (
	StateRollAbilities      State = "roll_abilities"
	StateRollSecondaryStats State = "roll_secondary_stats"
	StateRollIdentity       State = "roll_identity"
	StateRollBiography      State = "roll_biography"
	StateRollStartingGear   State = "roll_starting_gear"
	StateRollInventoryTable State = "roll_inventory_table"
	StateAssembleCharacter  State = "assemble_character"
	StatePersist            State = "persist"
	StateAnnounce           State = "announce"
)

type step struct {
	state State
	fn    func(ctx context.Context) error
}

// run is the state of one Generate call; nothing in it is shared between runs
type run struct {
	svc     *service
	ownerID string
	logger  *slog.Logger

	draft      *entities.CharacterDraft
	character  *entities.Actor
	companions []*entities.Actor
}

func (r *run) steps() []step {
	return []step{
		{StateRollAbilities, r.rollAbilities},
		{StateRollSecondaryStats, r.rollSecondaryStats},
		{StateRollIdentity, r.rollIdentity},
		{StateRollBiography, r.rollBiography},
		{StateRollStartingGear, r.rollStartingGear},
		{StateRollInventoryTable, r.rollInventoryTable},
		{StateAssembleCharacter, r.assembleCharacter},
		{StatePersist, r.persist},
	}
}

func (r *run) roll(count, sides, bonus int) (int, error) {
	result, err := r.svc.roller.Roll(count, sides, bonus)
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}

// rollAbilities rolls 3d6 for STR, DEX and WIL in that order
func (r *run) rollAbilities(_ context.Context) error {
	for _, ability := range entities.AllAbilities {
		total, err := r.roll(3, 6, 0)
		if err != nil {
			return cairnerr.Wrapf(err, "rolling %s", ability)
		}
		*r.draft.Abilities.Get(ability) = entities.NewScore(total)
	}
	return nil
}

func (r *run) rollSecondaryStats(_ context.Context) error {
	var err error
	if r.draft.HP, err = r.roll(1, 6, 0); err != nil {
		return cairnerr.Wrap(err, "rolling HP")
	}
	if r.draft.Gold, err = r.roll(3, 6, 0); err != nil {
		return cairnerr.Wrap(err, "rolling gold")
	}
	if r.draft.Age, err = r.roll(2, 10, 10); err != nil {
		return cairnerr.Wrap(err, "rolling age")
	}
	return nil
}

func (r *run) rollIdentity(ctx context.Context) error {
	opts := r.svc.options

	coin, err := r.roll(1, 2, 0)
	if err != nil {
		return cairnerr.Wrap(err, "flipping for name table")
	}
	namesTable := opts.MaleNames
	if coin == 2 {
		namesTable = opts.FemaleNames
	}

	first, err := r.drawOne(ctx, opts.TraitsDeck, namesTable)
	if err != nil {
		return err
	}
	surname, err := r.drawOne(ctx, opts.TraitsDeck, opts.Surnames)
	if err != nil {
		return err
	}

	r.draft.Name = first + " " + surname
	return nil
}

func (r *run) rollBiography(ctx context.Context) error {
	opts := r.svc.options

	for _, trait := range opts.Traits {
		label, err := r.drawOne(ctx, opts.TraitsDeck, trait.Table)
		if err != nil {
			return err
		}
		r.draft.Traits[trait.Placeholder] = label
	}

	background, err := r.drawOne(ctx, opts.TraitsDeck, opts.BackgroundTable)
	if err != nil {
		return err
	}
	r.draft.Background = background
	r.draft.Biography = r.fillBiography()
	return nil
}

func (r *run) fillBiography() string {
	pairs := []string{
		"{name}", r.draft.Name,
		"{age}", strconv.Itoa(r.draft.Age),
	}
	for placeholder, label := range r.draft.Traits {
		pairs = append(pairs, "{"+placeholder+"}", label)
	}
	return strings.NewReplacer(pairs...).Replace(r.svc.options.Biography)
}

// rollStartingGear looks up the guaranteed items; any miss aborts the run
func (r *run) rollStartingGear(ctx context.Context) error {
	opts := r.svc.options

	for _, gear := range opts.StartingGear {
		tmpl, err := r.svc.materializer.Materialize(ctx, []string{opts.StartingGearDeck}, gear.Name)
		if err != nil {
			return err
		}
		if tmpl == nil {
			return cairnerr.NotFoundf("starting gear '%s' not found in deck '%s'", gear.Name, opts.StartingGearDeck).
				WithMeta("deck", opts.StartingGearDeck).
				WithMeta("entity", gear.Name)
		}

		imported := r.svc.materializer.AdaptForImport(tmpl, r.draft.Name)
		if imported.Kind != entities.KindItem {
			return cairnerr.Validationf("starting gear '%s' is not an item", gear.Name).
				WithMeta("entity", gear.Name)
		}
		if gear.Quantity > 0 {
			imported.Item.Quantity = gear.Quantity
		}
		r.draft.Items = append(r.draft.Items, imported.Item)
	}
	return nil
}

// rollInventoryTable resolves every inventory spec. Missing tables and
// entities only cost the character an item; a broken chain aborts.
func (r *run) rollInventoryTable(ctx context.Context) error {
	for _, spec := range r.svc.options.InventorySpecs {
		results, err := r.svc.tables.Resolve(ctx, spec.Table)
		if err != nil {
			if cairnerr.IsNotFound(err) {
				r.logger.DebugContext(ctx, "inventory table missing, skipping",
					"spec", spec.Label,
					"deck", spec.Table.Deck,
					"table", spec.Table.Name)
				continue
			}
			return cairnerr.Wrapf(err, "rolling %s", spec.Label)
		}

		for _, result := range results {
			if err := r.acquire(ctx, spec, result); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *run) acquire(ctx context.Context, spec entities.InventoryRollSpec, result *entities.TableResult) error {
	label := result.Label()
	if label == "" {
		r.logger.DebugContext(ctx, "inventory result is blank, skipping",
			"spec", spec.Label,
			"table", result.Table,
			"roll", result.Roll)
		return nil
	}

	tmpl, err := r.svc.materializer.Materialize(ctx, spec.Decks, label)
	if err != nil {
		return cairnerr.Wrapf(err, "materializing %s", label)
	}
	if tmpl == nil {
		r.logger.DebugContext(ctx, "inventory result has no entity, skipping",
			"spec", spec.Label,
			"label", label)
		return nil
	}

	imported := r.svc.materializer.AdaptForImport(tmpl, r.draft.Name)
	switch imported.Kind {
	case entities.KindItem:
		r.draft.Items = append(r.draft.Items, imported.Item)
	case entities.KindActor:
		r.draft.Actors = append(r.draft.Actors, imported.Actor)
	default:
		r.logger.DebugContext(ctx, "inventory result is neither item nor actor, dropping",
			"spec", spec.Label,
			"label", label)
	}
	return nil
}

func (r *run) assembleCharacter(_ context.Context) error {
	character := r.draft.ToActor()
	character.OwnerID = r.ownerID
	encumbrance.Prepare(character)
	r.character = character
	return nil
}

// persist creates companions, then the character, then attaches its items
func (r *run) persist(ctx context.Context) error {
	repo := r.svc.repository

	for _, actor := range r.draft.Actors {
		companion := actor.Clone()
		companion.OwnerID = r.ownerID
		encumbrance.Prepare(companion)
		if err := repo.Create(ctx, companion); err != nil {
			return cairnerr.Wrapf(err, "creating companion %s", companion.Name)
		}
		r.companions = append(r.companions, companion)
	}

	shell := r.character.Clone()
	shell.Items = nil
	if err := repo.Create(ctx, shell); err != nil {
		return cairnerr.Wrapf(err, "creating character %s", shell.Name)
	}

	saved, err := repo.AttachPossessions(ctx, shell.ID, r.character.Items)
	if err != nil {
		return cairnerr.Wrapf(err, "attaching possessions to %s", shell.Name)
	}
	r.character = saved

	r.logger.InfoContext(ctx, "character generated",
		"character_id", saved.ID,
		"name", saved.Name,
		"items", len(saved.Items),
		"companions", len(r.companions),
		"slots", saved.SlotsUsed)
	return nil
}

// announce posts the summary; a posting failure is logged, never returned
func (r *run) announce(ctx context.Context) {
	r.logger.DebugContext(ctx, "generation state", "state", StateAnnounce)
	msg := notify.CharacterAnnouncement(r.character, r.companions)
	if err := r.svc.notifier.Post(ctx, msg); err != nil {
		r.logger.WarnContext(ctx, "failed to announce character",
			"character_id", r.character.ID,
			"error", err)
	}
}

func (r *run) fail(ctx context.Context, err error) {
	r.logger.ErrorContext(ctx, "character generation failed",
		"error", err,
		"code", cairnerr.GetCode(err))
	if postErr := r.svc.notifier.Post(ctx, notify.GenerationFailed(err)); postErr != nil {
		r.logger.WarnContext(ctx, "failed to post generation failure", "error", postErr)
	}
}

// drawOne draws a single-result table and returns the result's display text
func (r *run) drawOne(ctx context.Context, deck, table string) (string, error) {
	results, err := r.svc.tables.Draw(ctx, deck, table)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", cairnerr.Internalf("table '%s' produced no result", table).
			WithMeta("deck", deck)
	}
	return results[0].Entry.Text, nil
}
