// Command uplink assembles .dtl files and folders into one deduplicated
// batch, ships it to the Syker processing service, and saves the returned
// workbook archive.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"syker-uplink/internal/entry"
	"syker-uplink/internal/logging"
	"syker-uplink/internal/uplink"
	"syker-uplink/internal/workflow"
	"syker-uplink/pkg/models"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "uplink PATH [PATH...]",
	Short: "Upload Syker .dtl exports for conversion and download the result",
	Long: `uplink gathers the given files and folders into one deduplicated batch,
uploads it to the Syker processing service, and saves the ZIP of converted
Excel workbooks it returns.`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringP("base-url", "u", "http://localhost:8080", "processing service base URL")
	rootCmd.Flags().StringP("output", "o", ".", "directory for the downloaded archive")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	viper.SetEnvPrefix("SYKER")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("base_url", rootCmd.Flags().Lookup("base-url"))
	_ = viper.BindPFlag("download_dir", rootCmd.Flags().Lookup("output"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log := logging.NewConsole()

	client := uplink.NewClient(viper.GetString("base_url"), logging.ForComponent(log, "uplink"))
	controller := workflow.NewController(client, logging.ForComponent(log, "workflow"))

	if err := controller.Drop(cmd.Context(), batchFromArgs(args)); err != nil {
		return err
	}
	if controller.Selection().Len() == 0 {
		return errors.New("no readable files in the given paths")
	}
	log.Info().Int("files", controller.Selection().Len()).Msg("batch assembled")

	outcome, err := controller.Submit(cmd.Context())
	if err != nil {
		return errors.New(controller.LastError())
	}

	saved, err := uplink.SaveArtifact(outcome, viper.GetString("download_dir"))
	if err != nil {
		return err
	}
	log.Info().Str("path", saved).Msg("saved processed archive")
	return nil
}

// batchFromArgs mirrors a drop event: each path becomes an entry when it
// resolves, and the plain files double as the flat fallback list used when
// folder traversal fails.
func batchFromArgs(args []string) workflow.DropBatch {
	var batch workflow.DropBatch
	for _, arg := range args {
		ent := entry.NewLocalEntry(arg)
		if ent == nil {
			continue
		}
		batch.Entries = append(batch.Entries, ent)
		if ent.IsDirectory() {
			continue
		}
		if data, err := os.ReadFile(arg); err == nil {
			batch.Flat = append(batch.Flat, models.Item{Name: ent.Name(), Data: data})
		}
	}
	return batch
}
