package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hh-screener/internal/scoring"
	"github.com/spigell/hh-screener/internal/screening"
)

const (
	PromptShowResults         = "Show results"
	PromptShowShortlisted     = "Show shortlisted only"
	PromptReportByStatus      = "Report by status"
	PromptResultsToFile       = "Dump results to file"
	PromptAppendToExcludeFile = "Append all ranked resumes to exclude file"
	PromptExit                = "Exit"
)

var errExit = errors.New("exit requested")

var rankCmd = &cobra.Command{
	Use:   "rank [resume files or directories...]",
	Short: "Rank resumes against the job description",
	Run: func(cmd *cobra.Command, args []string) {
		rank(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringP("job-description", "r", "", "job description file (.pdf, .txt, .md)")
	rankCmd.Flags().StringP("exclude-file", "e", "", "file with already screened resumes to exclude. Default is unset.")
	rankCmd.Flags().IntP("workers", "w", 0, "parallel document extraction workers")
	rankCmd.Flags().Bool("allow-duplicates", false, "rank resumes with repeated file names instead of keeping the first")
	rankCmd.Flags().StringSlice("disable-filter", nil, "skip a filter step by name (duplicates, exclude_file)")
	rankCmd.Flags().BoolP("auto-approve", "y", false, "print the results and exit without the interactive menu")

	viper.BindPFlag("job-description", rankCmd.Flags().Lookup("job-description"))
	viper.BindPFlag("exclude-file", rankCmd.Flags().Lookup("exclude-file"))
	viper.BindPFlag("allow-duplicates", rankCmd.Flags().Lookup("allow-duplicates"))
	viper.BindPFlag("disable-filters", rankCmd.Flags().Lookup("disable-filter"))
}

// rank is the main command for the cli.
func rank(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil {
		logger.Fatal("config is required")
	}

	logger.Info("starting the hh-screener", zap.String("version", resolveVersion()))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config.JobDescription == "" {
		logger.Fatal("job description is required",
			zap.String("hint", "pass --job-description or set job-description in the configuration file"),
		)
	}

	resumes := args
	if len(resumes) == 0 {
		resumes = config.Resumes
	}

	workers := config.workers()
	if flag := cmd.Flag("workers"); flag != nil && flag.Changed {
		workers, _ = cmd.Flags().GetInt("workers")
	}

	screener := screening.New(screening.Config{
		Threshold:       config.Threshold,
		Workers:         workers,
		ExcludeFile:     config.ExcludeFile,
		AllowDuplicates: config.AllowDuplicates,
		DisabledFilters: config.DisableFilters,
	}, nil, logger)

	result, err := screener.Run(ctx, screening.Request{
		ReferencePath:  config.JobDescription,
		CandidatePaths: resumes,
	})
	if err != nil {
		logger.Fatal("screening failed", zap.Error(err))
	}

	logBestMatch(logger, result.Ranking)

	if cmd.Flag("auto-approve").Value.String() == "true" {
		logResults(logger, result.Ranking.Entries)
		return
	}

	prompt := promptui.Select{
		Label: "What next?",
		Items: menuItems(config.ExcludeFile),
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, config, result); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func (c *Config) workers() int {
	if c.Extract == nil {
		return 0
	}
	return c.Extract.Workers
}

func menuItems(excludeFile string) []string {
	items := []string{PromptShowResults, PromptShowShortlisted, PromptReportByStatus, PromptResultsToFile}
	if excludeFile != "" {
		items = append(items, PromptAppendToExcludeFile)
	}
	return append(items, PromptExit)
}

func handleAction(action string, logger *zap.Logger, config *Config, result *screening.Result) error {
	switch action {
	case PromptShowResults:
		logResults(logger, result.Ranking.Entries)
		return nil
	case PromptShowShortlisted:
		shortlisted := result.Ranking.Shortlisted()
		if len(shortlisted) == 0 {
			logger.Info("no resumes reached the threshold", zap.Float64("threshold", result.Ranking.Threshold))
			return nil
		}
		logResults(logger, shortlisted)
		return nil
	case PromptReportByStatus:
		report, err := result.ReportByStatus()
		if err != nil {
			return fmt.Errorf("building report: %w", err)
		}
		pretty, _ := json.MarshalIndent(report, "", "  ")
		logger.Info(string(pretty), zap.Int("resumes count", result.Ranking.Len()))
		return nil
	case PromptResultsToFile:
		filename, err := result.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		if err := result.AppendToExcludeFile(config.ExcludeFile); err != nil {
			return fmt.Errorf("append to exclude file: %w", err)
		}
		logger.Info("appended to exclude file",
			zap.String("filename", config.ExcludeFile),
			zap.Int("count", result.Ranking.Len()),
		)
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func logBestMatch(logger *zap.Logger, ranking *scoring.Ranking) {
	logger.Info("best match",
		zap.String("resume", ranking.Best.Name),
		zap.Float64("match_percent", ranking.Best.Percent),
		zap.String("status", ranking.Best.Label),
	)
}

func logResults(logger *zap.Logger, entries []scoring.ScoreEntry) {
	for _, entry := range entries {
		logger.Info("screening result",
			zap.Int("rank", entry.Rank),
			zap.String("resume", entry.Name),
			zap.Float64("match_percent", entry.Percent),
			zap.String("status", entry.Label),
		)
	}
}
