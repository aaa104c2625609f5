package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"filebridge"
	"filebridge/internal/domain"
)

var (
	readFormat   string
	readEncoding string
	readDetails  bool
)

var readCmd = &cobra.Command{
	Use:   "read <path-or-url>",
	Short: "Read a file or URL and print its contents",
	Long: `Read resolves the argument as a URL first and falls back to a local path,
decodes the contents into the requested format, and prints the result.`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	readCmd.Flags().StringVar(&readFormat, "format", "text", "decode format: text, json, binary, arrayBuffer, blob")
	readCmd.Flags().StringVar(&readEncoding, "encoding", "", "character encoding for text decoding")
	readCmd.Flags().BoolVar(&readDetails, "details", false, "print the full result envelope as YAML")
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	settings, err := filebridge.LoadSettings()
	if err != nil {
		return err
	}
	client := filebridge.New(filebridge.WithSettings(*settings))

	opts := &filebridge.Options{
		Format:     filebridge.Format(readFormat),
		Encoding:   readEncoding,
		UseDetails: readDetails,
	}

	value, err := client.ReadFile(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}

	if readDetails {
		out, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to render envelope: %w", err)
		}
		fmt.Print(string(out))
		return nil
	}

	return printValue(value)
}

func printValue(value any) error {
	switch v := value.(type) {
	case string:
		fmt.Print(v)
	case []byte:
		return printBinary(v)
	case *bytes.Buffer:
		return printBinary(v.Bytes())
	case domain.BlobLike:
		return printBinary(v.Bytes())
	default:
		fmt.Printf("%v\n", v)
	}
	return nil
}

func printBinary(data []byte) error {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("refusing to write binary data to a terminal; redirect output or use --format text")
	}
	_, err := os.Stdout.Write(data)
	return err
}
