package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-solitaire/internal/games/klondike"
	"github.com/vovakirdan/tui-solitaire/internal/platform/tui"
	"github.com/vovakirdan/tui-solitaire/internal/registry"
	"github.com/vovakirdan/tui-solitaire/internal/storage"
)

var (
	flagPlain        bool
	flagHistoryLimit int
	flagHistoryGame  string
	flagClear        bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent deals",
	Long: `Display the log of finished deals: when they were played, the seed,
how many moves were made and how many cards reached the foundations.

Replay any deal with 'solitaire play --seed <seed>'.

Examples:
  solitaire history
  solitaire history --plain --limit 5
  solitaire history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of deals to print with --plain")
	historyCmd.Flags().StringVar(&flagHistoryGame, "game", klondike.GameID, "Game variant")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history of the variant")
}

func runHistory(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagHistoryGame) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", flagHistoryGame)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening deal history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearDeals(flagHistoryGame); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared the %s deal history.\n", flagHistoryGame)

	case flagPlain:
		if err := printHistory(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

	default:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}

// printHistory writes the recent deals as an aligned text table.
func printHistory(store *storage.Store) error {
	deals, err := store.RecentDeals(flagHistoryGame, flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Recent deals - %s\n\n", flagHistoryGame)
	if len(deals) == 0 {
		fmt.Println("No deals recorded yet.")
		fmt.Println()
		fmt.Println("Play 'solitaire play' to start the log!")
		return nil
	}

	rows := [][]string{tui.HistoryColumns}
	for _, d := range deals {
		rows = append(rows, tui.DealRow(d))
	}

	widths := make([]int, len(tui.HistoryColumns))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Println("  " + strings.TrimRight(strings.Join(cells, "  "), " "))
	}

	stats, err := store.GetDealStats(flagHistoryGame)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("%d deals, %.1f moves on average, best %d/52 home, %s played\n",
		stats.Deals, stats.AvgMoves, stats.BestFoundation, tui.FormatDuration(int(stats.TotalDuration)))
	return nil
}
