package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hallplan/hallplan/internal/config"
	"github.com/hallplan/hallplan/internal/csvio"
	"github.com/hallplan/hallplan/internal/scheduler"
)

var (
	configPath   string
	sessionsPath string
	outPath      string
	delimiter    string
)

var rootCmd = &cobra.Command{
	Use:   "hallplan",
	Short: "Assign lecture sessions to rooms across the building",
	Long: `hallplan loads a session roster from CSV, assigns a room to every
session that lacks one, prints the per-group itineraries and the
validation report, and exports the resulting timetable.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&sessionsPath, "sessions", "sessions.csv", "session roster CSV")
	rootCmd.Flags().StringVar(&outPath, "out", "timetable.csv", "timetable output CSV")
	rootCmd.Flags().StringVar(&delimiter, "delimiter", ",", "roster CSV delimiter")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	st := cfg.BuildStore()

	delim := ','
	if delimiter != "" {
		delim = rune(delimiter[0])
	}
	added, loadErrs := csvio.LoadSessions(sessionsPath, delim, st)
	for _, e := range loadErrs {
		log.Warn().Err(e).Msg("roster row rejected")
	}
	log.Info().Int("sessions", added).Str("file", sessionsPath).Msg("roster loaded")

	res, err := scheduler.Allocate(st)
	if err != nil {
		return err
	}

	for _, c := range res.Conflicts {
		fmt.Printf("skipped: %s (%s) - %s: %v\n", c.Session.Subject, c.Session.Group, c.Session.Slot, c.Err)
	}
	for _, it := range res.Itineraries {
		fmt.Printf("%s:\n", it.Group)
		for _, e := range it.Entries {
			fmt.Printf("  %d. %s - %s (%s)\n", e.Sequence, string(e.Session.Slot), e.Room, e.Session.Subject)
		}
	}

	valid, report := scheduler.Validate(st)
	fmt.Print(report)

	if err := csvio.ExportTimetable(st, outPath); err != nil {
		return err
	}
	log.Info().Str("file", outPath).Msg("timetable exported")

	if !valid {
		return fmt.Errorf("schedule is not fully valid")
	}
	return nil
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
