package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/frauddesk/frauddesk/internal/core/gateway"
	"github.com/frauddesk/frauddesk/internal/core/query"
	"github.com/frauddesk/frauddesk/internal/display"
	"github.com/frauddesk/frauddesk/internal/editor"
	"github.com/frauddesk/frauddesk/internal/types"
	"github.com/spf13/cobra"
)

var ruleFile string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List and manage fraud detection rules",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rules",
	RunE:  runRulesList,
}

var rulesParamsCmd = &cobra.Command{
	Use:   "params <rule-id>",
	Short: "Show a rule's parameters",
	Args:  cobra.ExactArgs(1),
	RunE:  runRulesParams,
}

var rulesSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create or update a rule from a JSON file",
	Long: `Reads a rule definition from a JSON file and submits it to the gateway.
The file carries the rule fields and its parameters in the stored union
shape; an "id" field makes the save an update, otherwise a new rule is
created. A save replaces the rule's entire parameter sequence.`,
	RunE: runRulesSave,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesParamsCmd)
	rulesCmd.AddCommand(rulesSaveCmd)
	rulesSaveCmd.Flags().StringVarP(&ruleFile, "file", "f", "", "rule definition JSON file")
	_ = rulesSaveCmd.MarkFlagRequired("file")
}

func runRulesList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)
	collector, stop := newCollector(logger)
	defer stop()
	client := query.NewClient(cfg.GraphQLURL, cfg.RequestTimeout, logger)

	start := time.Now()
	rules, err := client.Rules(context.Background())
	collector.ObserveQuery(time.Since(start), err)
	if err != nil {
		return fmt.Errorf("error loading rules: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tACTIVE\tMATCH\tANALYST\tUPDATED")
	for _, r := range rules {
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%s\t%s\n",
			r.ID, r.Name, r.IsActive,
			display.MatchTypeLabel(r.MatchType),
			r.AnalystID,
			r.UpdateTime.Format(time.RFC3339))
	}
	return w.Flush()
}

func runRulesParams(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)
	client := query.NewClient(cfg.GraphQLURL, cfg.RequestTimeout, logger)

	rules, err := client.Rules(context.Background())
	if err != nil {
		return fmt.Errorf("error loading rules: %w", err)
	}

	for _, r := range rules {
		if r.ID != args[0] {
			continue
		}
		details := display.RenderAll(r.Parameters)
		if len(details) == 0 {
			fmt.Println("No parameters found.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, d := range details {
			fmt.Fprintf(w, "%s\t%s\n", d.Label, d.Value)
		}
		return w.Flush()
	}
	return fmt.Errorf("rule %s not found", args[0])
}

// ruleDefinition mirrors types.Rule but keeps the save-side lowercase
// "parameters" key for hand-written definition files.
type ruleDefinition struct {
	ID          string            `json:"id,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	IsActive    bool              `json:"isActive"`
	MatchType   types.MatchType   `json:"matchType"`
	Parameters  []types.Parameter `json:"parameters"`
}

func runRulesSave(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.AnalystID == "" {
		return fmt.Errorf("--analyst-id required (or set FD_ANALYST_ID)")
	}
	if _, err := types.ParseAnalystID(cfg.AnalystID); err != nil {
		return fmt.Errorf("invalid analyst ID %q: %w", cfg.AnalystID, err)
	}

	raw, err := os.ReadFile(ruleFile)
	if err != nil {
		return fmt.Errorf("failed to read rule file: %w", err)
	}
	var def ruleDefinition
	if err := json.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("failed to parse rule file: %w", err)
	}
	if def.MatchType == "" {
		def.MatchType = types.MatchTypeAll
	}

	logger := setupLogger(cfg)
	collector, stop := newCollector(logger)
	defer stop()
	client := gateway.NewClient(cfg.GatewayURL, cfg.RequestTimeout, logger)

	// Round the definition through the editor so file input gets the same
	// defaulting and validation an interactive edit would.
	session := editor.NewSession(def.Parameters)
	flow := editor.NewSaveFlow(client, nil)

	draft := editor.Draft{
		RuleID:      def.ID,
		Name:        def.Name,
		Description: def.Description,
		IsActive:    def.IsActive,
		MatchType:   def.MatchType,
		AnalystID:   cfg.AnalystID,
	}

	err = flow.Save(context.Background(), draft, session)
	collector.RecordRuleSave(err)
	if err != nil {
		return fmt.Errorf("save failed: %s", flow.Err())
	}

	if def.ID != "" {
		fmt.Printf("Rule %s updated (%d parameters)\n", def.ID, session.Len())
	} else {
		fmt.Printf("Rule created (%d parameters)\n", session.Len())
	}
	return nil
}
