package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/foretab/internal/field"
)

var fieldCmd = &cobra.Command{
	Use:   "field <kind> <text>",
	Short: "Validate one schedule field and print the values it selects",
	Long: `Validate one schedule field and print the values it selects.

Kinds: m (minute), h (hour), dom (day-of-month), mon (month),
dow (day-of-week, 0 = Monday).`,
	Example: `  foretab field dom 1-5,10
  foretab field dow '*'`,
	Args: cobra.ExactArgs(2),
	RunE: runField,
}

func runField(cmd *cobra.Command, args []string) error {
	kind, err := field.ParseKind(args[0])
	if err != nil {
		return err
	}
	set, err := field.Parse(kind, args[1])
	if err != nil {
		return err
	}
	logger.Debug().Stringer("kind", kind).Int("values", len(set)).Msg("parsed field")

	values := make([]string, len(set))
	for i, v := range set {
		values[i] = strconv.Itoa(v)
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s: %s\n", kind, set)
	fmt.Fprintln(w, strings.Join(values, " "))
	return nil
}
