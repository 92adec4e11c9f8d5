// Package main provides the CLI entrypoint for olitef.
package main

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/olitef/internal/chart"
	"github.com/verte-zerg/olitef/internal/config"
	"github.com/verte-zerg/olitef/internal/content"
	"github.com/verte-zerg/olitef/internal/deck"
	"github.com/verte-zerg/olitef/internal/interest"
	"github.com/verte-zerg/olitef/internal/model"
	"github.com/verte-zerg/olitef/internal/tui"
)

const (
	defaultCapital = 1000.0
	defaultRate    = 1.0
	defaultPeriods = 12.0
	maxTableSteps  = 1200
)

var (
	studyTab     string
	studyContent string
	studyShuffle bool
	studySeed    int64

	calcCapital float64
	calcRate    float64
	calcPeriods float64
	calcTable   int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "olitef",
		Short:         "Guia de estudo de educação financeira para a OLITEF",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runStudyCmd,
	}

	rootCmd.Flags().StringVar(&studyTab, "tab", "", "start tab ("+strings.Join(tui.TabNames(), ", ")+")")
	rootCmd.Flags().StringVar(&studyContent, "content", "", "path to a content pack (TOML)")
	rootCmd.Flags().BoolVar(&studyShuffle, "shuffle", false, "shuffle flashcards and questions inside each category")
	rootCmd.Flags().Int64Var(&studySeed, "seed", 0, "shuffle seed (0 picks one from the clock)")
	addCalculatorFlags(rootCmd)

	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newContentCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addCalculatorFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&calcCapital, "capital", defaultCapital, "initial capital in R$")
	cmd.Flags().Float64Var(&calcRate, "rate", defaultRate, "interest rate in percent per period")
	cmd.Flags().Float64Var(&calcPeriods, "periods", defaultPeriods, "number of periods (months)")
}

func runStudyCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "tab", &studyTab, fileCfg.Study.Tab)
	applyStringConfig(cmd, "content", &studyContent, fileCfg.Study.Content)
	applyBoolConfig(cmd, "shuffle", &studyShuffle, fileCfg.Study.Shuffle)
	applyInt64Config(cmd, "seed", &studySeed, fileCfg.Study.Seed)
	applyCalculatorConfig(cmd, fileCfg.Calculator)

	cfg := model.Config{
		Tab:         studyTab,
		ContentPath: resolveContentPath(studyContent),
		Shuffle:     studyShuffle,
		Seed:        studySeed,
		Calculator: model.CalculatorDefaults{
			Capital: calcCapital,
			Rate:    calcRate,
			Periods: calcPeriods,
		},
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	pack, err := content.Load(cfg.ContentPath)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}
	cards, quiz, err := buildDecks(pack, cfg)
	if err != nil {
		return err
	}

	m := tui.NewModel(cfg, pack, cards, quiz)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// buildDecks turns the pack into decks, shuffling them when configured.
func buildDecks(pack content.Pack, cfg model.Config) (*deck.Deck[content.Flashcard], *deck.Deck[content.Question], error) {
	cards, err := pack.FlashcardDeck()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build flashcards: %w", err)
	}
	quiz, err := pack.QuizDeck()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build quiz: %w", err)
	}
	if !cfg.Shuffle {
		return cards, quiz, nil
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	return deck.Shuffle(cards, rnd), deck.Shuffle(quiz, rnd), nil
}

// resolveContentPath picks the explicit path, then the user pack in the
// config directory, then the embedded pack (empty path).
func resolveContentPath(explicit string) string {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit
	}
	path := config.DefaultContentPath()
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compare simple and compound interest",
		Args:  cobra.NoArgs,
		RunE:  runCalcCmd,
	}
	addCalculatorFlags(cmd)
	cmd.Flags().IntVar(&calcTable, "table", 0, "print a projection table with N steps")
	return cmd
}

func runCalcCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyCalculatorConfig(cmd, fileCfg.Calculator)
	if calcTable < 0 || calcTable > maxTableSteps {
		return fmt.Errorf("--table must be between 0 and %d", maxTableSteps)
	}

	in := interest.Input{Principal: calcCapital, RatePercent: calcRate, Periods: calcPeriods}
	res, err := interest.Calculate(in)
	if err != nil {
		return fmt.Errorf("failed to calculate: %w", err)
	}
	var proj *interest.Projection
	if calcTable > 0 {
		p, err := interest.Project(in, calcTable)
		if err != nil {
			return fmt.Errorf("failed to project: %w", err)
		}
		proj = &p
	}
	if err := writeCalcReport(cmd.OutOrStdout(), res, proj, chart.TerminalWidth()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func writeCalcReport(w io.Writer, res interest.Result, proj *interest.Projection, width int) error {
	summary := chart.Table(nil, [][]string{
		{"Capital inicial:", interest.FormatBRL(res.Input.Principal)},
		{"Taxa de juros:", interest.FormatPercent(res.Input.RatePercent) + " ao período"},
		{"Períodos:", formatPeriod(res.Input.Periods)},
		{"Montante (juros simples):", interest.FormatBRL(res.SimpleAmount), "juros " + interest.FormatBRL(res.SimpleInterest())},
		{"Montante (juros compostos):", interest.FormatBRL(res.CompoundAmount), "juros " + interest.FormatBRL(res.CompoundInterest())},
	}, map[int]bool{1: true})
	lines := append(summary, "")

	labels := []string{"Capital Inicial", "Montante Simples", "Montante Composto"}
	series := res.Series()
	bars := make([]chart.Bar, len(labels))
	for i, label := range labels {
		bars[i] = chart.Bar{Label: label, Value: series[i], Text: interest.FormatBRL(series[i])}
	}
	lines = append(lines, chart.Bars(bars, max(10, min(50, width-40)))...)

	if proj != nil {
		rows := make([][]string, 0, len(proj.Points))
		for _, p := range proj.Points {
			rows = append(rows, []string{formatPeriod(p.Period), interest.FormatBRL(p.Simple), interest.FormatBRL(p.Compound)})
		}
		lines = append(lines, "")
		lines = append(lines, chart.Table([]string{"Período", "Juros Simples", "Juros Compostos"}, rows, map[int]bool{0: true, 1: true, 2: true})...)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// formatPeriod prints whole periods without decimals and others with two.
func formatPeriod(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return interest.FormatAmount(v)
}

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Export or check content packs",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "export",
		Short: "Write the built-in content pack to stdout",
		Args:  cobra.NoArgs,
		RunE:  runContentExportCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "check <file>",
		Short: "Validate a content pack",
		Args:  cobra.ExactArgs(1),
		RunE:  runContentCheckCmd,
	})
	return cmd
}

func runContentExportCmd(cmd *cobra.Command, _ []string) error {
	if _, err := cmd.OutOrStdout().Write(content.DefaultTOML()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runContentCheckCmd(cmd *cobra.Command, args []string) error {
	pack, err := content.Load(args[0])
	if err != nil {
		return err
	}
	if err := writeContentSummary(cmd.OutOrStdout(), pack); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func writeContentSummary(w io.Writer, pack content.Pack) error {
	rows := [][]string{
		{"Título", pack.Title},
		{"Tópicos", strconv.Itoa(len(pack.Topics))},
	}
	cardTotal := 0
	for _, c := range pack.Flashcards {
		cardTotal += len(c.Cards)
	}
	rows = append(rows, []string{"Flash cards", fmt.Sprintf("%d em %d categorias", cardTotal, len(pack.Flashcards))})
	for _, c := range pack.Flashcards {
		rows = append(rows, []string{"  " + c.Category, strconv.Itoa(len(c.Cards))})
	}
	questionTotal := 0
	for _, tier := range pack.Quiz {
		questionTotal += len(tier.Questions)
	}
	rows = append(rows, []string{"Questionário", fmt.Sprintf("%d em %d níveis", questionTotal, len(pack.Quiz))})
	for _, tier := range pack.Quiz {
		rows = append(rows, []string{"  " + tier.Difficulty, strconv.Itoa(len(tier.Questions))})
	}
	for _, line := range chart.Table(nil, rows, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		logErrf("Created %s\n", path)
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyCalculatorConfig(cmd *cobra.Command, cfg config.CalculatorConfig) {
	applyFloatConfig(cmd, "capital", &calcCapital, cfg.Capital)
	applyFloatConfig(cmd, "rate", &calcRate, cfg.Rate)
	applyFloatConfig(cmd, "periods", &calcPeriods, cfg.Periods)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# olitef configuration
# Uncomment a value to enable it. CLI flags override config values.

[study]
# tab = "guia"            # Start tab (%s)
# content = ""            # Content pack path (default: %s if present, else built-in)
# shuffle = false         # Shuffle flashcards and questions inside each category
# seed = 0                # Shuffle seed (0 picks one from the clock)

[calculator]
# capital = %g          # Initial capital in R$
# rate = %g                # Interest rate in percent per period
# periods = %g            # Number of periods (months)
`,
		strings.Join(tui.TabNames(), ", "),
		config.DefaultContentPath(),
		defaultCapital,
		defaultRate,
		defaultPeriods,
	)
}

// validateConfig rejects settings the TUI cannot start with. Zero calculator
// defaults are allowed and leave the field empty.
func validateConfig(cfg model.Config) error {
	if _, err := tui.ParseTab(cfg.Tab); err != nil {
		return fmt.Errorf("--tab: %w", err)
	}
	if cfg.Calculator.Capital < 0 || cfg.Calculator.Rate < 0 || cfg.Calculator.Periods < 0 {
		return fmt.Errorf("--capital, --rate and --periods must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
