package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/notify"
)

func printMessage(w io.Writer, msg *notify.Message) {
	if msg.Title != "" {
		fmt.Fprintln(w, msg.Title)
		fmt.Fprintln(w, strings.Repeat("-", len(msg.Title)))
	}
	if len(msg.Fields) > 0 {
		parts := make([]string, 0, len(msg.Fields))
		for _, f := range msg.Fields {
			parts = append(parts, f.Name+": "+f.Value)
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
	for _, line := range msg.Lines {
		fmt.Fprintln(w, line)
	}
}

func printActor(w io.Writer, actor *entities.Actor) {
	fmt.Fprintf(w, "%s (%s, id %s)\n", actor.Name, actor.Type, actor.ID)
	fmt.Fprintf(w, "  HP %d/%d  STR %d/%d  DEX %d/%d  WIL %d/%d  Armor %d\n",
		actor.HP.Value, actor.HP.Max,
		actor.Abilities.STR.Value, actor.Abilities.STR.Max,
		actor.Abilities.DEX.Value, actor.Abilities.DEX.Max,
		actor.Abilities.WIL.Value, actor.Abilities.WIL.Max,
		actor.Armor)
	if actor.Type != entities.ActorTypeNPC {
		fmt.Fprintf(w, "  Slots %s", notify.FormatSlots(actor.SlotsUsed))
		if actor.Encumbered {
			fmt.Fprint(w, "  (encumbered)")
		}
		fmt.Fprintln(w)
	}
	if actor.Deprived {
		fmt.Fprintln(w, "  Deprived")
	}
	for _, item := range actor.Items {
		equipped := ""
		if item.Equipped {
			equipped = " [equipped]"
		}
		fmt.Fprintf(w, "  - %s x%d (%s)%s  %s\n", item.Name, item.Count(), item.ID, equipped, item.Type)
	}
}
