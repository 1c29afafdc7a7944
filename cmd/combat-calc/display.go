package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ramonehamilton/combat-calc/internal/mtga/deck"
	"github.com/ramonehamilton/combat-calc/internal/mtga/equipment"
	"github.com/ramonehamilton/combat-calc/internal/mtga/stormsplitter"
)

func displayLedger(out io.Writer, l stormsplitter.Ledger, bonus stormsplitter.Stats) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Step\tCopies\tMarkers\tP/T\tTotal P/T\n")
	fmt.Fprintf(w, "----\t------\t-------\t---\t---------\n")
	for _, s := range l.Steps {
		fmt.Fprintf(w, "%s\t%d\t%d x +%d/+%d\t%d/%d\t%d/%d\n",
			stepLabel(s), s.Copies, s.MarkerPerCopy, bonus.Power, bonus.Toughness,
			s.Power, s.Toughness, s.TotalPower(), s.TotalToughness())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Creatures:       %d\n", l.TotalCreatures)
	fmt.Fprintf(out, "Total power:     %d\n", l.TotalPower)
	fmt.Fprintf(out, "Total toughness: %d\n", l.TotalToughness)
	return nil
}

func displayTriggers(out io.Writer, l stormsplitter.Ledger) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Step\tCopies\tTriggers per copy\n")
	fmt.Fprintf(w, "----\t------\t-----------------\n")
	for _, s := range l.Steps {
		fmt.Fprintf(w, "%s\t%d\t%d\n", stepLabel(s), s.Copies, s.MarkerPerCopy)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Creatures: %d\n", l.TotalCreatures)
	return nil
}

func stepLabel(s stormsplitter.Step) string {
	if s.IsOriginal {
		return "Original"
	}
	return fmt.Sprintf("Spell %d", s.Spell)
}

func displayBruenor(out io.Writer, res equipment.Result, sel equipment.Selection) error {
	name := res.Creature
	if name == "" {
		name = "(no creature)"
	}
	fmt.Fprintf(out, "%s  %d/%d\n", name, res.BasePower, res.BaseToughness)

	if names := sel.Equipment(); len(names) > 0 {
		fmt.Fprintf(out, "Equipment:  %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(out, "Equipment bonus: %+d/%+d\n", res.Bonus.PowerBonus, res.Bonus.ToughnessBonus)
	if res.Bonus.FlatBonus != 0 {
		fmt.Fprintf(out, "Bruenor bonus:   %+d/+0\n", res.Bonus.FlatBonus)
	}
	if len(res.Bonus.GrantedAbilities) > 0 {
		fmt.Fprintf(out, "Gains: %s\n", strings.Join(res.Bonus.GrantedAbilities, ", "))
	}
	if len(res.Bonus.LostAbilities) > 0 {
		fmt.Fprintf(out, "Loses: %s\n", strings.Join(res.Bonus.LostAbilities, ", "))
	}
	fmt.Fprintf(out, "Total: %d/%d\n", res.TotalPower, res.TotalToughness)
	return nil
}

func displayBonus(out io.Writer, b equipment.Bonus) error {
	fmt.Fprintf(out, "Bonus: %+d/%+d\n", b.PowerBonus, b.ToughnessBonus)
	fmt.Fprintf(out, "Gains: %s\n", joinOrNone(b.GrantedAbilities))
	fmt.Fprintf(out, "Loses: %s\n", joinOrNone(b.LostAbilities))
	return nil
}

func displayDeck(out io.Writer, d *deck.Deck) error {
	fmt.Fprintf(out, "%s (%d)\n\n", d.Name, d.ID)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Creature\tP/T\n")
	for _, c := range d.Creatures() {
		fmt.Fprintf(w, "%s\t%s/%s\n", c.Name, stat(c.Power), stat(c.Toughness))
	}
	fmt.Fprintf(w, "\t\n")
	fmt.Fprintf(w, "Equipment\tBonus\n")
	for _, c := range d.Equipment() {
		b := equipment.ParseText(c.RulesText())
		fmt.Fprintf(w, "%s\t%+d/%+d\n", c.Name, b.PowerBonus, b.ToughnessBonus)
	}
	return w.Flush()
}

func stat(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
