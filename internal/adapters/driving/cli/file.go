package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Inspect local files before uploading",
}

var fileInfoCmd = &cobra.Command{
	Use:   "info [path]",
	Short: "Show a local file's name, type and size",
	Args:  cobra.ExactArgs(1),
	RunE:  runFileInfo,
}

var fileReadCmd = &cobra.Command{
	Use:   "read [path]",
	Short: "Print a local text file's content",
	Args:  cobra.ExactArgs(1),
	RunE:  runFileRead,
}

func init() {
	fileCmd.AddCommand(fileInfoCmd)
	fileCmd.AddCommand(fileReadCmd)
	rootCmd.AddCommand(fileCmd)
}

func runFileInfo(cmd *cobra.Command, args []string) error {
	if fileReader == nil {
		return errors.New("file reader not configured")
	}

	info, err := fileReader.Info(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file info: %w", err)
	}

	cmd.Printf("Name: %s\n", info.Name)
	if info.Type != "" {
		cmd.Printf("Type: %s\n", info.Type)
	}
	cmd.Printf("Size: %d bytes\n", info.Size)
	return nil
}

func runFileRead(cmd *cobra.Command, args []string) error {
	if fileReader == nil {
		return errors.New("file reader not configured")
	}

	content, err := fileReader.ReadContent(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	cmd.Println(content)
	return nil
}
