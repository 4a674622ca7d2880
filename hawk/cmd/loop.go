package cmd

import (
	"context"
	"fmt"
	"log"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/steelhawks/HawkLib-Reformed/datarecording"
)

var loopCmd = &cobra.Command{
	Use:   "loop",
	Short: "Inspect recorded loop-time sessions.",
	Long: "`loop stats --db [file]` summarizes per-subsystem timing, " +
		"`loop overruns --db [file]` lists budget overruns, and " +
		"`loop session --db [file]` prints the session metadata.",
}

var loopStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize per-subsystem timing of a recorded session.",
	Run: func(cmd *cobra.Command, args []string) {
		dbFile, _ := cmd.Flags().GetString("db")
		subsystem, _ := cmd.Flags().GetString("subsystem")

		reader := openRecording(dbFile)
		defer reader.Close()

		params := datarecording.QueryParams{}
		if subsystem != "" {
			params.Where = "Subsystem = ?"
			params.Args = []any{subsystem}
		}

		entries, _, err := reader.Query(
			context.Background(), datarecording.LoopTimesTable, params)
		if err != nil {
			log.Fatalf("Error reading loop times: %v", err)
		}

		printLoopStats(cmd, entries)
	},
}

var loopOverrunsCmd = &cobra.Command{
	Use:   "overruns",
	Short: "List subsystem updates that exceeded the cycle budget.",
	Run: func(cmd *cobra.Command, args []string) {
		dbFile, _ := cmd.Flags().GetString("db")

		reader := openRecording(dbFile)
		defer reader.Close()

		entries, total, err := reader.Query(
			context.Background(), datarecording.LoopTimesTable,
			datarecording.QueryParams{
				Where:   "Overrun = ?",
				Args:    []any{true},
				OrderBy: "DurationMs DESC",
			})
		if err != nil {
			log.Fatalf("Error reading loop times: %v", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "CYCLE\tSUBSYSTEM\tDURATION (MS)")
		for _, e := range entries {
			entry := e.(*datarecording.LoopEntry)
			fmt.Fprintf(w, "%d\t%s\t%.3f\n",
				entry.Cycle, entry.Subsystem, entry.DurationMs)
		}
		w.Flush()

		fmt.Fprintf(cmd.OutOrStdout(), "%d overruns in total\n", total)
	},
}

var loopSessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Print the metadata of a recorded session.",
	Run: func(cmd *cobra.Command, args []string) {
		dbFile, _ := cmd.Flags().GetString("db")

		reader := openRecording(dbFile)
		defer reader.Close()

		entries, _, err := reader.Query(
			context.Background(), datarecording.SessionInfoTable,
			datarecording.QueryParams{})
		if err != nil {
			log.Fatalf("Error reading session info: %v", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		for _, e := range entries {
			entry := e.(*datarecording.SessionEntry)
			fmt.Fprintf(w, "%s\t%s\n", entry.Property, entry.Value)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(loopCmd)
	loopCmd.AddCommand(loopStatsCmd)
	loopCmd.AddCommand(loopOverrunsCmd)
	loopCmd.AddCommand(loopSessionCmd)

	loopCmd.PersistentFlags().String("db", "", "Recording file to inspect")
	loopStatsCmd.Flags().String(
		"subsystem", "", "Restrict the summary to one subsystem")
}

func openRecording(dbFile string) datarecording.DataReader {
	if dbFile == "" {
		log.Fatalf("Error: --db is required.")
	}

	reader, err := datarecording.NewDataReader(dbFile)
	if err != nil {
		log.Fatalf("Error opening recording: %v", err)
	}

	reader.MapTable(datarecording.LoopTimesTable, datarecording.LoopEntry{})
	reader.MapTable(
		datarecording.SessionInfoTable, datarecording.SessionEntry{})

	return reader
}

type loopStats struct {
	name     string
	count    int
	overruns int
	totalMs  float64
	maxMs    float64
}

func printLoopStats(cmd *cobra.Command, entries []any) {
	order := []string{}
	stats := map[string]*loopStats{}

	for _, e := range entries {
		entry := e.(*datarecording.LoopEntry)

		s, ok := stats[entry.Subsystem]
		if !ok {
			s = &loopStats{name: entry.Subsystem}
			stats[entry.Subsystem] = s
			order = append(order, entry.Subsystem)
		}

		s.count++
		s.totalMs += entry.DurationMs
		if entry.DurationMs > s.maxMs {
			s.maxMs = entry.DurationMs
		}
		if entry.Overrun {
			s.overruns++
		}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "SUBSYSTEM\tCYCLES\tMEAN (MS)\tMAX (MS)\tOVERRUNS")
	for _, name := range order {
		s := stats[name]
		fmt.Fprintf(w, "%s\t%d\t%.3f\t%.3f\t%d\n",
			s.name, s.count, s.totalMs/float64(s.count), s.maxMs, s.overruns)
	}
	w.Flush()
}
