package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"portfolio-chat/internal/app"
	"portfolio-chat/internal/models"
	"portfolio-chat/internal/service"

	"github.com/spf13/cobra"
)

var askHistoryFile string

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Send one message through the gateway and print the reply",
	Long: `Runs the same pipeline as POST /api/chat without starting a server.
Knowledge gaps are recorded in the configured store exactly as they are for HTTP requests.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askHistoryFile, "history", "", `JSON file with prior turns: [{"role":"user","content":"..."}]`)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, appLogger, err := setup()
	if err != nil {
		return err
	}

	var history []models.ConversationTurn
	if askHistoryFile != "" {
		raw, err := os.ReadFile(askHistoryFile)
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}
		if err := json.Unmarshal(raw, &history); err != nil {
			return fmt.Errorf("failed to decode history: %w", err)
		}
	}

	a, err := app.Build(cmd.Context(), cfg, appLogger)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.Chat.Handle(cmd.Context(), service.ChatInput{
		Message: strings.Join(args, " "),
		History: history,
	})
	switch {
	case errors.Is(err, service.ErrQuotaExceeded):
		return errors.New("model provider quota exceeded, try again later")
	case err != nil:
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Response)
	if result.Flagged {
		fmt.Fprintln(cmd.ErrOrStderr(), "(question recorded as unanswered)")
	}
	return nil
}
