package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/foretab/internal/crontab"
	"github.com/Tiliavir/foretab/internal/dates"
	"github.com/Tiliavir/foretab/internal/model"
)

var (
	datesFile              string
	datesFrom              string
	datesTo                string
	datesFormat            string
	datesLegacyMinuteAlias bool
	datesStrictRange       bool
)

var datesCmd = &cobra.Command{
	Use:   "dates [<schedule> | <minute> <hour> <dom> <month> <dow>]",
	Short: "List every timestamp a schedule selects within a date range",
	Example: `  foretab dates "0 9 * * 0-4" --from 2024-01-01 --to 2024-01-31
  foretab dates 0 0 1 '*' 1 --format csv
  foretab dates --file /etc/crontab --format json`,
	Args: datesArgs,
	RunE: runDates,
}

func init() {
	datesCmd.Flags().StringVar(&datesFile, "file", "", "Read schedules from a crontab file")
	datesCmd.Flags().StringVar(&datesFrom, "from", "", "First day of the range, YYYY-MM-DD (inclusive)")
	datesCmd.Flags().StringVar(&datesTo, "to", "", "Last day of the range, YYYY-MM-DD (inclusive)")
	datesCmd.Flags().StringVar(&datesFormat, "format", "", "Output format: md, plain, csv, json, yaml")
	datesCmd.Flags().BoolVar(&datesLegacyMinuteAlias, "legacy-minute-alias", false, "Take the minute values from the hour field")
	datesCmd.Flags().BoolVar(&datesStrictRange, "strict-range", false, "Fail when --to is before --from")
}

func datesArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		if datesFile == "" {
			return errors.New("missing schedule: pass it as arguments or use --file")
		}
	case 1, 5:
		if datesFile != "" {
			return errors.New("use either schedule arguments or --file, not both")
		}
	default:
		return fmt.Errorf("expected 1 quoted schedule or 5 fields, got %d arguments", len(args))
	}
	return nil
}

// scheduleEntries reads the entries from --file or from the arguments.
func scheduleEntries(args []string) ([]model.Entry, error) {
	switch len(args) {
	case 0:
		return crontab.Load(datesFile)
	case 1:
		e, err := crontab.ParseLine(args[0])
		if err != nil {
			return nil, err
		}
		return []model.Entry{e}, nil
	default:
		return []model.Entry{model.NewEntry(args[0], args[1], args[2], args[3], args[4])}, nil
	}
}

func runDates(cmd *cobra.Command, args []string) error {
	from, to, format := appConfig.Range.Start, appConfig.Range.End, appConfig.Format
	if cmd.Flags().Changed("from") {
		from = datesFrom
	}
	if cmd.Flags().Changed("to") {
		to = datesTo
	}
	if cmd.Flags().Changed("format") {
		format = datesFormat
	}
	render, err := rendererFor(format)
	if err != nil {
		return err
	}

	entries, err := scheduleEntries(args)
	if err != nil {
		return err
	}

	enum := dates.New(dates.Config{
		LegacyMinuteAlias:   appConfig.LegacyMinuteAlias || datesLegacyMinuteAlias,
		RejectReversedRange: appConfig.RejectReversedRange || datesStrictRange,
	}, logger)

	occurrences, err := enum.Occurrences(entries, from, to)
	if err != nil {
		return err
	}
	logger.Info().
		Int("entries", len(entries)).
		Int("timestamps", len(occurrences)).
		Str("from", from).
		Str("to", to).
		Msg("enumerated schedules")

	return render(cmd.OutOrStdout(), occurrences)
}
