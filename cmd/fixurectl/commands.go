package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fixure/fixure-backend/internal/app"
	"github.com/fixure/fixure-backend/internal/domain"
	"github.com/fixure/fixure-backend/internal/service/admin"
	"github.com/fixure/fixure-backend/internal/service/feedback"
)

var errNotConfirmed = errors.New("not confirmed")

func (c *cli) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print headline counts and rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				st := a.Admin.Stats(cmd.Context())
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "Total feedback\t%d\n", st.TotalFeedback)
				fmt.Fprintf(w, "Pulse checks\t%d\n", st.TotalPulse)
				fmt.Fprintf(w, "Avg satisfaction\t%.1f\n", st.AvgSatisfaction)
				fmt.Fprintf(w, "Resolution rate\t%.0f%%\n", st.ResolutionRate)
				return w.Flush()
			})
		},
	}
}

func (c *cli) patternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "Print detected feedback patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				patterns := a.Feedback.Patterns(cmd.Context())
				out := cmd.OutOrStdout()
				if len(patterns) == 0 {
					fmt.Fprintln(out, "No patterns detected.")
					return nil
				}
				for _, p := range patterns {
					fmt.Fprintf(out, "[%s] %s: %s\n", p.Type, p.Category, p.Details)
				}
				return nil
			})
		},
	}
}

func (c *cli) feedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Work with feedback records",
	}

	var in feedback.ListInput
	list := &cobra.Command{
		Use:   "list",
		Short: "List feedback, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				res, err := a.Feedback.List(cmd.Context(), in)
				if err != nil {
					return err
				}
				return printFeedback(cmd.OutOrStdout(), res)
			})
		},
	}
	list.Flags().StringVar(&in.Category, "category", "", "only this category")
	list.Flags().StringVar(&in.Status, "status", "", "only this status (pending, in-progress, resolved)")
	list.Flags().StringVar(&in.Scope, "scope", "", "dashboard scope (all, team_lead, hr)")

	cmd.AddCommand(list)
	return cmd
}

func printFeedback(out io.Writer, res feedback.ListResult) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tROLE\tPRIORITY\tSTATUS\tSUBMITTED\tFEEDBACK")
	for _, r := range res.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Category, r.Role, r.Priority, r.Status,
			r.Timestamp.UTC().Format("2006-01-02 15:04"), oneLine(r.Feedback, 60))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\n%d pending, %d in progress, %d resolved\n",
		res.Counts.Pending, res.Counts.InProgress, res.Counts.Resolved)
	return err
}

// oneLine collapses whitespace and truncates s to at most n runes.
func oneLine(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > n {
		return string(r[:n-1]) + "…"
	}
	return s
}

func (c *cli) exportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON snapshot of all data",
		Long:  "Write a JSON snapshot of all data. Without -o the file is named fixure-data-<date>.json in the current directory; -o - writes to stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				snap := a.Admin.Export(cmd.Context())
				data, err := admin.EncodeSnapshot(snap)
				if err != nil {
					return err
				}

				if output == "-" {
					_, err = cmd.OutOrStdout().Write(append(data, '\n'))
					return err
				}
				path := output
				if path == "" {
					path = admin.SnapshotFilename(snap.ExportDate)
				}
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d feedback and %d pulse records to %s\n",
					len(snap.Feedback), len(snap.Pulse), path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout")
	return cmd
}

func (c *cli) seedCmd() *cobra.Command {
	var appendMode bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample data set",
		Long:  "Load the sample data set. By default it replaces all stored data; --append adds it to what is there.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := admin.SeedReplace
			if appendMode {
				mode = admin.SeedAppend
			}
			return c.withApp(cmd, func(a *app.App) error {
				data, err := a.Admin.SeedSampleData(cmd.Context(), mode)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d feedback and %d pulse records (%s).\n",
					len(data.Feedback), len(data.Pulse), mode)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&appendMode, "append", false, "append instead of replacing existing data")
	return cmd
}

func (c *cli) clearCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all feedback and pulse data",
		Long:  "Delete all feedback and pulse data. Asks for confirmation on a terminal; otherwise --force is required.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				if !c.tty(cmd.InOrStdin()) {
					return fmt.Errorf("clear: stdin is not a terminal, pass --force to confirm: %w", domain.ErrConfirmationRequired)
				}
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
					"This permanently deletes all feedback and pulse data. Continue? [y/N] ")
				if err != nil {
					return err
				}
				if !ok {
					return errNotConfirmed
				}
			}
			return c.withApp(cmd, func(a *app.App) error {
				if err := a.Admin.ClearAll(cmd.Context(), true); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All data cleared.")
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}

// confirm prints prompt and reports whether the answer is yes.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
