package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lumen/pkg/types"
)

// emit writes v as indented JSON in --json mode, otherwise calls text.
func (a *app) emit(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if a.jsonMode {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	text(tw)
	return tw.Flush()
}

func writeCharacters(w io.Writer, characters []types.Character) {
	if len(characters) == 0 {
		fmt.Fprintln(w, "no characters")
		return
	}
	for _, c := range characters {
		stats := make([]string, 0, len(c.Stats))
		for _, s := range c.Stats {
			stats = append(stats, s.Name+"="+s.Value.String())
		}
		fmt.Fprintf(w, "%s\t%s\n", c.Name, strings.Join(stats, " "))
	}
}

func writeStats(w io.Writer, stats []types.Stat) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "no stats")
		return
	}
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Type)
	}
}

func writeParts(w io.Writer, parts []types.Part) {
	if len(parts) == 0 {
		fmt.Fprintln(w, "no parts")
		return
	}
	fmt.Fprintln(w, "#\tNAME\tSLOT\tRARITY\tCOMPANY\tDETAILS")
	for i, p := range parts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", i, p.Name, p.Type, p.Rarity, p.Company, p.Details)
	}
}

func writeWeapon(w io.Writer, weapon *types.Weapon) {
	if weapon == nil {
		fmt.Fprintln(w, "no weapon")
		return
	}
	fmt.Fprintf(w, "name:\t%s\n", weapon.Name)
	fmt.Fprintf(w, "id:\t%s\n", weapon.ID)
	fmt.Fprintf(w, "level:\t%d\n", weapon.Level)
	fmt.Fprintf(w, "type:\t%s\n", weapon.Type)
	fmt.Fprintf(w, "rarity:\t%s\n", weapon.Rarity)
	fmt.Fprintf(w, "company:\t%s\n", weapon.Company.DisplayName())
	fmt.Fprintf(w, "range:\t%s\n", weapon.Range)
	fmt.Fprintf(w, "damage:\t%s\n", weapon.Damage)
	fmt.Fprintf(w, "parts:\t%s / %s / %s / %s\n", weapon.Barrel.Name, weapon.Body.Name, weapon.Magazine.Name, weapon.Stock.Name)
	for _, d := range weapon.Details {
		fmt.Fprintf(w, "\t%s\n", d)
	}
}

func writeState(w io.Writer, st types.State) {
	fmt.Fprintln(w, "== stats")
	writeStats(w, st.Stats)
	fmt.Fprintln(w, "== characters")
	writeCharacters(w, st.Characters)
	fmt.Fprintln(w, "== parts")
	writeParts(w, st.Parts)
}
