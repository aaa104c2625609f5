package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"filebridge"
)

var (
	writeEncoding string
	writeDetails  bool
	writeAsJSON   bool
)

var writeCmd = &cobra.Command{
	Use:   "write <filename> [data]",
	Short: "Write data to a file",
	Long: `Write persists the given data under the filename, creating parent
directories as needed. When data is omitted it is read from stdin.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWrite,
}

func init() {
	writeCmd.Flags().StringVar(&writeEncoding, "encoding", "", "character encoding for text data")
	writeCmd.Flags().BoolVar(&writeDetails, "details", false, "print the full result envelope as YAML")
	writeCmd.Flags().BoolVar(&writeAsJSON, "json", false, "re-serialize the data as indented JSON before writing")
	rootCmd.AddCommand(writeCmd)
}

func runWrite(cmd *cobra.Command, args []string) error {
	settings, err := filebridge.LoadSettings()
	if err != nil {
		return err
	}
	client := filebridge.New(filebridge.WithSettings(*settings))

	var data []byte
	if len(args) == 2 {
		data = []byte(args[1])
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read data from stdin: %w", err)
		}
	}

	if writeAsJSON {
		var value any
		if err := yaml.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("failed to parse data: %w", err)
		}
		return client.WriteJSON(cmd.Context(), args[0], value)
	}

	opts := &filebridge.Options{
		Encoding:   writeEncoding,
		UseDetails: writeDetails,
	}
	envelope, err := client.WriteFile(cmd.Context(), args[0], data, opts)
	if err != nil {
		return err
	}

	if writeDetails && envelope != nil {
		out, err := yaml.Marshal(envelope)
		if err != nil {
			return fmt.Errorf("failed to render envelope: %w", err)
		}
		fmt.Print(string(out))
	}
	return nil
}
