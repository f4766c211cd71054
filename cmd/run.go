package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/leadscout/leadscout/internal/export"
	"github.com/leadscout/leadscout/internal/hubspot"
	"github.com/leadscout/leadscout/internal/leadgen"
	"github.com/leadscout/leadscout/internal/logger"
	"github.com/leadscout/leadscout/internal/profile"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptExportCSV       = "Export to CSV"
	PromptSyncHubSpot     = "Sync to HubSpot"
	PromptReportByCompany = "Report by company"
	PromptProfilesToFile  = "Dump profiles to file"
	PromptExit            = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptExportCSV, PromptSyncHubSpot, PromptReportByCompany, PromptProfilesToFile, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run [query]",
	Short: "Run one search from the terminal and act on the found profiles",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("csv", false, "write a CSV without asking and exit")
}

// run is the one-shot search command for the cli.
func run(cmd *cobra.Command, rawQuery string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting leadscout", zap.String("version", version))

	if config == nil {
		logger.Fatal("config is required")
	}

	pipeline, crm, err := newPipeline(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the pipeline", zap.Error(err))
	}

	logger.Info("starting the search", zap.String("query", rawQuery))

	result, err := pipeline.Run(ctx, rawQuery)
	if err != nil {
		logger.Fatal(leadgen.DescribeSearchError(err), zap.Error(err))
	}

	profiles := &profile.Profiles{Items: result.Profiles}
	if profiles.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no matching profiles found"))
		return
	}

	logger.Info("found matching profiles", zap.Int("count", profiles.Len()))
	for _, item := range profiles.Items {
		fmt.Println(item.Label())
	}

	if csvOnly, _ := cmd.Flags().GetBool("csv"); csvOnly {
		if err := exportCSV(logger, profiles); err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, action, crm, logger, profiles); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(ctx context.Context, action string, crm *hubspot.Client, logger *zap.Logger, profiles *profile.Profiles) error {
	switch action {
	case PromptExportCSV:
		return exportCSV(logger, profiles)
	case PromptSyncHubSpot:
		return syncHubSpot(ctx, crm, logger, profiles)
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(profiles.ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("profiles count", profiles.Len()))
		return nil
	case PromptProfilesToFile:
		filename, err := profiles.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump profiles to file: %w", err)
		}
		logger.Info("dumping profiles to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func exportCSV(logger *zap.Logger, profiles *profile.Profiles) error {
	filename, err := export.WriteFile(profiles.Items, time.Now())
	if err != nil {
		return fmt.Errorf("export csv: %w", err)
	}

	logger.Info("exported profiles to csv",
		zap.String("filename", filename),
		zap.Int("count", profiles.Len()),
	)
	return nil
}

func syncHubSpot(ctx context.Context, crm *hubspot.Client, logger *zap.Logger, profiles *profile.Profiles) error {
	if crm == nil {
		return fmt.Errorf("hubspot is not configured")
	}

	for _, item := range profiles.Items {
		contact, created, err := crm.UpsertProfile(ctx, item)
		if err != nil {
			logger.Warn("hubspot upsert failed",
				zap.String("linkedin_url", item.LinkedInURL),
				zap.Error(err),
			)
			continue
		}

		item.InHubSpot = true
		item.HubSpotContactID = contact.ID

		status := "updated"
		if created {
			status = "created"
		}
		logger.Info("synced profile to hubspot",
			zap.String("status", status),
			zap.String("contact_id", contact.ID),
			zap.String("name", item.Name),
		)
	}

	logger.Info("hubspot sync finished", zap.Int("count", profiles.Len()))
	return nil
}
