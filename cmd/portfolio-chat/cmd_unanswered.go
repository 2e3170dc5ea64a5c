package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"portfolio-chat/internal/app"

	"github.com/spf13/cobra"
)

var unansweredLimit int

var unansweredCmd = &cobra.Command{
	Use:   "unanswered",
	Short: "Work with recorded knowledge gaps",
}

var unansweredListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent unanswered questions (postgres and sqlite stores)",
	Args:  cobra.NoArgs,
	RunE:  runUnansweredList,
}

func init() {
	unansweredListCmd.Flags().IntVarP(&unansweredLimit, "limit", "n", 50, "Maximum number of questions to show")
	unansweredCmd.AddCommand(unansweredListCmd)
}

func runUnansweredList(cmd *cobra.Command, args []string) error {
	cfg, appLogger, err := setup()
	if err != nil {
		return err
	}

	a, err := app.Build(cmd.Context(), cfg, appLogger)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.Lister == nil {
		return errors.New("LOG_STORE must be postgres or sqlite to list questions")
	}

	questions, err := a.Lister.Recent(cmd.Context(), unansweredLimit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tQUESTION")
	for _, q := range questions {
		fmt.Fprintf(w, "%s\t%s\n", q.CreatedAt.Local().Format(time.DateTime), q.Question)
	}
	return w.Flush()
}
