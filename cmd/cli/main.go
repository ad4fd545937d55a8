// quipu-cli runs the closing engine offline against a JSON snapshot,
// without a database or a running server. Useful for dry-running a
// period close and for inspecting chart analysis and classification.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/quipuapp/quipu/internal/adapter/http/dto"
	"github.com/quipuapp/quipu/internal/chart"
	"github.com/quipuapp/quipu/internal/classify"
	"github.com/quipuapp/quipu/internal/closing"
	"github.com/quipuapp/quipu/internal/domain"
)

var (
	snapshotPath string
	rulesPath    string
	entityKind   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quipu-cli",
		Short: "Quipu closing engine CLI",
		Long:  `Runs chart analysis, account classification and period closing against local JSON snapshots.`,
	}

	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "Path to a TOML rule set (empty uses the embedded rules)")

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Chart of accounts operations",
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Infer the structural profile of a code snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze()
		},
	}
	analyzeCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Path to the snapshot JSON file")
	analyzeCmd.MarkFlagRequired("snapshot")

	classifyCmd := &cobra.Command{
		Use:   "classify [code] [name]",
		Short: "Classify one account against a snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(args[0], args[1])
		},
	}
	classifyCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Path to the snapshot JSON file")
	classifyCmd.MarkFlagRequired("snapshot")

	chartCmd.AddCommand(analyzeCmd, classifyCmd)

	closeCmd := &cobra.Command{
		Use:   "close",
		Short: "Generate the adjustment and closing set for a snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClose(false)
		},
	}
	closeCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Path to the snapshot JSON file")
	closeCmd.Flags().StringVar(&entityKind, "entity-kind", "", "Legal form override (SA, SRL, ...)")
	closeCmd.MarkFlagRequired("snapshot")

	adjustCmd := &cobra.Command{
		Use:   "adjustments",
		Short: "Generate only the monetary adjustment proposals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClose(true)
		},
	}
	adjustCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Path to the snapshot JSON file")
	adjustCmd.Flags().StringVar(&entityKind, "entity-kind", "", "Legal form override (SA, SRL, ...)")
	adjustCmd.MarkFlagRequired("snapshot")

	rootCmd.AddCommand(chartCmd, closeCmd, adjustCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// snapshotFile mirrors closing.Input in a file-friendly shape.
type snapshotFile struct {
	Accounts []snapshotAccount          `json:"accounts"`
	Balances map[string]snapshotBalance `json:"balances"`
	Period   snapshotPeriod             `json:"period"`
	Keys     snapshotKeys               `json:"key_accounts"`
	Options  snapshotOptions            `json:"options"`
}

type snapshotAccount struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type snapshotBalance struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

type snapshotPeriod struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	InitialRate decimal.Decimal `json:"initial_rate"`
	FinalRate   decimal.Decimal `json:"final_rate"`
}

type snapshotKeys struct {
	IncomeSummary           string `json:"income_summary"`
	RetainedEarnings        string `json:"retained_earnings"`
	TaxPayable              string `json:"tax_payable"`
	LegalReserve            string `json:"legal_reserve"`
	InflationAdjustment     string `json:"inflation_adjustment"`
	DepreciationExpense     string `json:"depreciation_expense"`
	AccumulatedDepreciation string `json:"accumulated_depreciation"`
}

type snapshotOptions struct {
	EntityKind      string `json:"entity_kind"`
	ReserveOverride *bool  `json:"reserve_override,omitempty"`
}

func readSnapshot(path string) (*snapshotFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap snapshotFile
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snap, nil
}

func loadRules() (classify.RuleSet, error) {
	if rulesPath == "" {
		return classify.Default(), nil
	}
	return classify.Load(rulesPath)
}

func (s *snapshotFile) toInput(rules classify.RuleSet) closing.Input {
	accounts := make([]*domain.Account, 0, len(s.Accounts))
	for _, a := range s.Accounts {
		accounts = append(accounts, &domain.Account{
			Code: a.Code,
			Name: a.Name,
			Type: domain.AccountType(a.Type),
		})
	}

	balances := make(map[string]*domain.AccountBalance, len(s.Balances))
	for code, b := range s.Balances {
		balances[code] = &domain.AccountBalance{
			AccountCode: code,
			TotalDebit:  b.Debit,
			TotalCredit: b.Credit,
		}
	}

	kind := s.Options.EntityKind
	if entityKind != "" {
		kind = entityKind
	}

	return closing.Input{
		Accounts: accounts,
		Balances: balances,
		Period: &domain.FiscalPeriod{
			ID:          s.Period.ID,
			Name:        s.Period.Name,
			StartDate:   s.Period.StartDate,
			EndDate:     s.Period.EndDate,
			InitialRate: s.Period.InitialRate,
			FinalRate:   s.Period.FinalRate,
		},
		Rules: rules,
		Keys: closing.KeyAccounts{
			IncomeSummary:           s.Keys.IncomeSummary,
			RetainedEarnings:        s.Keys.RetainedEarnings,
			TaxPayable:              s.Keys.TaxPayable,
			LegalReserve:            s.Keys.LegalReserve,
			InflationAdjustment:     s.Keys.InflationAdjustment,
			DepreciationExpense:     s.Keys.DepreciationExpense,
			AccumulatedDepreciation: s.Keys.AccumulatedDepreciation,
		},
		Options: closing.Options{
			EntityKind:      kind,
			ReserveOverride: s.Options.ReserveOverride,
		},
	}
}

func runAnalyze() error {
	snap, err := readSnapshot(snapshotPath)
	if err != nil {
		return err
	}

	codes := make([]string, 0, len(snap.Accounts))
	for _, a := range snap.Accounts {
		codes = append(codes, a.Code)
	}

	profile := chart.Analyze(codes)
	return printJSON(dto.ProfileFromChart(profile))
}

func runClassify(code, name string) error {
	snap, err := readSnapshot(snapshotPath)
	if err != nil {
		return err
	}
	rules, err := loadRules()
	if err != nil {
		return err
	}

	byCode := make(map[string]*domain.Account, len(snap.Accounts))
	codes := make([]string, 0, len(snap.Accounts))
	for _, a := range snap.Accounts {
		byCode[a.Code] = &domain.Account{Code: a.Code, Name: a.Name, Type: domain.AccountType(a.Type)}
		codes = append(codes, a.Code)
	}

	profile := chart.Analyze(codes)
	result := classify.Classify(code, name, rules, profile, byCode)
	return printJSON(dto.ClassificationFromResult(result))
}

func runClose(adjustmentsOnly bool) error {
	snap, err := readSnapshot(snapshotPath)
	if err != nil {
		return err
	}
	rules, err := loadRules()
	if err != nil {
		return err
	}

	in := snap.toInput(rules)

	var result *closing.Result
	if adjustmentsOnly {
		result, err = closing.Adjustments(in)
	} else {
		result, err = closing.Close(in)
	}
	if err != nil {
		return err
	}

	return printJSON(dto.ClosingResultFromDomain(result))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
