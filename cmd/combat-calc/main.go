// Package main is a command-line front end for the combat calculators.
//
// Usage:
//
//	combat-calc stormsplitter -spells 3 -power 1 -toughness 1
//	combat-calc triggers -spells 3 -per-spell 2
//	combat-calc bruenor -deck 1234567 -creature "Bruenor Battlehammer" -equip "Bonesplitter,Swiftfoot Boots" -effect
//	combat-calc parse "Equipped creature gets +2/+2 and has flying."
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ramonehamilton/combat-calc/internal/config"
	"github.com/ramonehamilton/combat-calc/internal/mtga/cards/archidekt"
	"github.com/ramonehamilton/combat-calc/internal/mtga/equipment"
	"github.com/ramonehamilton/combat-calc/internal/mtga/stormsplitter"
)

const fetchTimeout = 30 * time.Second

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return errUsage
	}

	switch args[0] {
	case "stormsplitter":
		return runStormsplitter(args[1:], out)
	case "triggers":
		return runTriggers(args[1:], out)
	case "bruenor":
		return runBruenor(args[1:], out)
	case "parse":
		return runParse(args[1:], out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: combat-calc <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  stormsplitter  Token copies and stats after a chain of spells")
	fmt.Fprintln(w, "  triggers       Trigger counts per copy after a chain of spells")
	fmt.Fprintln(w, "  bruenor        Equip a creature from an Archidekt deck")
	fmt.Fprintln(w, "  parse          Parse equipment rules text")
}

func runStormsplitter(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("stormsplitter", flag.ContinueOnError)
	spells := fs.Int("spells", 0, fmt.Sprintf("Instants and sorceries cast (0-%d)", stormsplitter.MaxSpells))
	power := fs.Int("power", 0, "Power bonus per spell")
	toughness := fs.Int("toughness", 0, "Toughness bonus per spell")
	asJSON := fs.Bool("json", false, "Print JSON")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if err := checkRange("spells", *spells, stormsplitter.MaxSpells); err != nil {
		return err
	}
	if err := checkRange("power", *power, stormsplitter.MaxBonusPerSpell); err != nil {
		return err
	}
	if err := checkRange("toughness", *toughness, stormsplitter.MaxBonusPerSpell); err != nil {
		return err
	}

	in := stormsplitter.DefaultInput()
	in.Spells = *spells
	in.Bonus = stormsplitter.Stats{Power: *power, Toughness: *toughness}
	ledger := stormsplitter.Calculate(in)

	if *asJSON {
		return writeJSON(out, ledger)
	}
	return displayLedger(out, ledger, in.Bonus)
}

func runTriggers(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("triggers", flag.ContinueOnError)
	spells := fs.Int("spells", 0, fmt.Sprintf("Instants and sorceries cast (0-%d)", stormsplitter.MaxSpells))
	perSpell := fs.Int("per-spell", 1, "Triggers per spell")
	asJSON := fs.Bool("json", false, "Print JSON")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if err := checkRange("spells", *spells, stormsplitter.MaxSpells); err != nil {
		return err
	}
	if err := checkRange("per-spell", *perSpell, stormsplitter.MaxBonusPerSpell); err != nil {
		return err
	}

	ledger := stormsplitter.CountTriggers(*spells, *perSpell)
	if *asJSON {
		return writeJSON(out, ledger)
	}
	return displayTriggers(out, ledger)
}

func runBruenor(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("bruenor", flag.ContinueOnError)
	configPath := fs.String("config", "", "Config file path")
	deckID := fs.String("deck", "", "Archidekt deck ID (default: config or DECK_ID)")
	creature := fs.String("creature", "", "Creature to equip")
	equip := fs.String("equip", "", "Comma-separated equipment names")
	effect := fs.Bool("effect", false, "Apply Bruenor's +2/+0 per equipment")
	list := fs.Bool("list", false, "List the deck's creatures and equipment")
	asJSON := fs.Bool("json", false, "Print JSON")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	id := *deckID
	if id == "" {
		id = cfg.Deck.DefaultID
	}
	if id == "" {
		return errors.New("no deck: pass -deck or set DECK_ID")
	}

	client := archidekt.NewClient(
		archidekt.WithBaseURL(cfg.Deck.BaseURL),
		archidekt.WithUserAgent(cfg.Deck.UserAgent),
	)

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	d, err := client.FetchDeck(ctx, id)
	if err != nil {
		return fmt.Errorf("could not load deck: %w", err)
	}

	if *list {
		return displayDeck(out, d)
	}

	sel := equipment.NewSelection(*creature, splitNames(*equip)...).WithBruenorEffect(*effect)
	res := equipment.Calculate(d.Cards, sel)

	if *asJSON {
		return writeJSON(out, res)
	}
	return displayBruenor(out, res, sel)
}

func runParse(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "Print JSON")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	text := strings.Join(fs.Args(), " ")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	bonus := equipment.ParseText(text)
	if *asJSON {
		return writeJSON(out, bonus)
	}
	return displayBonus(out, bonus)
}

func splitNames(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

func checkRange(name string, v, limit int) error {
	if v < 0 || v > limit {
		return fmt.Errorf("-%s must be between 0 and %d", name, limit)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
