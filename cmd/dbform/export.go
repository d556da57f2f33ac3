package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-dbform/pkg/export"
	"github.com/goliatone/go-dbform/pkg/submission"
)

// allForms is the interactive choice for an unfiltered export.
const allForms = "(all forms)"

// boundLayouts are accepted by --since and --until, most specific first. A
// bare date means midnight, matching the admin filter form.
var boundLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"}

type exportFlags struct {
	name        string
	since       string
	until       string
	out         string
	interactive bool
}

func newExportCmd(a *app) *cobra.Command {
	var flags exportFlags
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write stored submissions as XML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd.Context(), func(store submission.Store) error {
				if flags.interactive {
					if err := a.promptExport(cmd.Context(), store, &flags); err != nil {
						return err
					}
				}
				filter, err := flags.filter(time.Local)
				if err != nil {
					return err
				}
				return a.writeExport(cmd.Context(), cmd.OutOrStdout(), store, filter, flags.out)
			})
		},
	}
	cmd.Flags().StringVar(&flags.name, "name", "", "only export submissions of this form")
	cmd.Flags().StringVar(&flags.since, "since", "", "earliest creation time (YYYY-MM-DD [HH:MM] or RFC 3339)")
	cmd.Flags().StringVar(&flags.until, "until", "", "latest creation time (YYYY-MM-DD [HH:MM] or RFC 3339)")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "choose the form and time window with prompts")
	return cmd
}

func (f exportFlags) filter(loc *time.Location) (submission.Filter, error) {
	start, err := parseBound(f.since, loc)
	if err != nil {
		return submission.Filter{}, fmt.Errorf("--since: %w", err)
	}
	end, err := parseBound(f.until, loc)
	if err != nil {
		return submission.Filter{}, fmt.Errorf("--until: %w", err)
	}
	return submission.Filter{Name: strings.TrimSpace(f.name), Start: start, End: end}, nil
}

func parseBound(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range boundLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", export.ErrInvalidDatetime, value)
}

// promptExport fills flags from prompts, offering the stored form names and
// the admin lookback window as defaults.
func (a *app) promptExport(ctx context.Context, store submission.Store, flags *exportFlags) error {
	names, err := store.FormNames(ctx)
	if err != nil {
		return err
	}
	prompter := a.newPrompter()

	options := append([]string{allForms}, names...)
	choice, err := prompter.Select(ctx, SelectConfig{
		Message:      "Form",
		Options:      options,
		DefaultIndex: max(indexOf(options, flags.name), 0),
		PageSize:     10,
	})
	if err != nil {
		return err
	}
	flags.name = ""
	if choice > 0 {
		flags.name = options[choice]
	}

	window := submission.DefaultFilter(time.Now(), a.cfg.Admin.Lookback)
	validate := func(s string) error {
		_, err := parseBound(s, time.Local)
		return err
	}
	if flags.since, err = prompter.Input(ctx, InputConfig{
		Message:   "Since",
		Default:   orDefault(flags.since, window.Start.Format(boundLayouts[1])),
		Help:      "YYYY-MM-DD [HH:MM]; empty for no lower bound",
		Validator: validate,
	}); err != nil {
		return err
	}
	if flags.until, err = prompter.Input(ctx, InputConfig{
		Message:   "Until",
		Default:   orDefault(flags.until, window.End.Format(boundLayouts[1])),
		Help:      "YYYY-MM-DD [HH:MM]; empty for no upper bound",
		Validator: validate,
	}); err != nil {
		return err
	}
	return nil
}

func (a *app) writeExport(ctx context.Context, stdout io.Writer, store submission.Store, filter submission.Filter, out string) error {
	records, err := store.Find(ctx, filter)
	if err != nil {
		return err
	}

	if out == "" {
		return export.WriteXML(stdout, records, export.WithLocation(time.Local))
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := export.WriteXML(file, records, export.WithLocation(time.Local)); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	a.logger.Info("export written", "file", out, "records", len(records))
	return nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}
