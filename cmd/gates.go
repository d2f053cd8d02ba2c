package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/jobfit/internal/engine"
	"github.com/spigell/jobfit/internal/gates"
)

var gatesCmd = &cobra.Command{
	Use:   "gates",
	Short: "Print the ordered gate table",
	RunE: func(_ *cobra.Command, _ []string) error {
		statuses := gates.Describe(engine.New(nil).Gates())

		if viper.GetBool("json") {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(statuses)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ORDER\tNAME\tSTAGE\tEFFECT\tCEILING")
		for _, s := range statuses {
			ceiling := s.Ceiling
			if ceiling == "" {
				ceiling = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", s.Order, s.Name, s.Stage, s.Effect, ceiling)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(gatesCmd)
}
