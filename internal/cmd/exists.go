package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"filebridge"
)

var existsCmd = &cobra.Command{
	Use:   "exists <path-or-url>",
	Short: "Check whether a file or URL exists",
	Long: `Exists probes the argument (a local path or a URL) and prints true or
false. Failures of any kind count as false.`,
	Args: cobra.ExactArgs(1),
	RunE: runExists,
}

func init() {
	rootCmd.AddCommand(existsCmd)
}

func runExists(cmd *cobra.Command, args []string) error {
	settings, err := filebridge.LoadSettings()
	if err != nil {
		return err
	}
	client := filebridge.New(filebridge.WithSettings(*settings))

	fmt.Println(client.Exists(cmd.Context(), args[0]))
	return nil
}
