package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/nguyentantai21042004/meeting-flow/internal/session"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs of the session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.close()

		runs, err := a.store.Runs(cmd.Context(), a.session, historyLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No runs found.")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderHistory(runs))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to show")
}

func renderHistory(runs []session.Run) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	header := cell.Bold(true).Foreground(lipgloss.Color("99"))
	failed := cell.Foreground(lipgloss.Color("204"))

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))).
		Headers("STARTED", "AUDIO", "STEPS", "STATUS", "DURATION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col == 3 && row >= 0 && row < len(runs) && runs[row].Status == session.StatusFailed {
				return failed
			}
			return cell
		})

	for _, r := range runs {
		steps := strings.Join(r.Steps, ",")
		if steps == "" {
			steps = "-"
		}
		t.Row(
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			shorten(r.Audio, 40),
			steps,
			r.Status,
			r.FinishedAt.Sub(r.StartedAt).Round(time.Second).String(),
		)
	}
	return t.String()
}

func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return "..." + string(r[len(r)-n+3:])
}
