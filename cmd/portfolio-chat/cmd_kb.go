package main

import (
	"encoding/json"
	"fmt"

	"portfolio-chat/internal/app"
	"portfolio-chat/internal/service"

	"github.com/spf13/cobra"
)

var kbDumpJSON bool

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Inspect the compiled knowledge base",
}

var kbDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the knowledge base exactly as the model receives it",
	Args:  cobra.NoArgs,
	RunE:  runKBDump,
}

var kbCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report project links that point at unknown slugs",
	Args:  cobra.NoArgs,
	RunE:  runKBCheck,
}

func init() {
	kbDumpCmd.Flags().BoolVar(&kbDumpJSON, "json", false, "Print entries as JSON instead of the flattened text")

	kbCmd.AddCommand(kbDumpCmd)
	kbCmd.AddCommand(kbCheckCmd)
}

func runKBDump(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	knowledge, err := app.LoadKnowledge(&cfg.Portfolio)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if kbDumpJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(knowledge.Base.Entries())
	}
	_, err = fmt.Fprintln(out, knowledge.Base.FullText())
	return err
}

func runKBCheck(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	knowledge, err := app.LoadKnowledge(&cfg.Portfolio)
	if err != nil {
		return err
	}

	dangling := service.CheckReferences(knowledge.Base, knowledge.Persona, knowledge.Portfolio.Projects)
	out := cmd.OutOrStdout()
	for _, d := range dangling {
		fmt.Fprintf(out, "%s: /project/%s does not match any project\n", d.Source, d.Slug)
	}
	if len(dangling) > 0 {
		return fmt.Errorf("%d dangling project link(s)", len(dangling))
	}

	fmt.Fprintf(out, "OK: %d entries, %d projects, all links resolve\n",
		knowledge.Base.Len(), len(knowledge.Portfolio.Projects))
	return nil
}
