package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage uploaded documents",
	Long:  `Upload, list, inspect, or delete knowledge-base documents.`,
}

var (
	uploadContent string
	uploadType    string
)

var documentUploadCmd = &cobra.Command{
	Use:   "upload [name]",
	Short: "Upload a document from a flag or stdin",
	Long: `Stores a document under the given name, chunks it and indexes
the chunks for retrieval. Content comes from --content, or from stdin
when the flag is omitted.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocumentUpload,
}

var documentUploadFileCmd = &cobra.Command{
	Use:   "upload-file [path]",
	Short: "Upload a local text file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentUploadFile,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Show document info",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a document and its index entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

func init() {
	documentUploadCmd.Flags().StringVar(&uploadContent, "content", "", "document text content")
	documentUploadCmd.Flags().StringVarP(&uploadType, "type", "t", "", "type tag, e.g. txt or md")

	documentCmd.AddCommand(documentUploadCmd)
	documentCmd.AddCommand(documentUploadFileCmd)
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentUpload(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	name := args[0]
	content := uploadContent
	if content == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		content = string(data)
	}

	result, err := ingestService.Upload(context.Background(), name, content, uploadType)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	printUploadResult(cmd, result.DocumentID, result.ChunkCount, result.FailedPositions)
	return nil
}

func runDocumentUploadFile(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	result, err := ingestService.UploadFromPath(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	printUploadResult(cmd, result.DocumentID, result.ChunkCount, result.FailedPositions)
	return nil
}

func printUploadResult(cmd *cobra.Command, docID string, chunks int, failed []int) {
	cmd.Printf("Uploaded document %s (%d chunks indexed).\n", docID, chunks)
	if len(failed) > 0 {
		positions := make([]string, len(failed))
		for i, p := range failed {
			positions[i] = fmt.Sprintf("%d", p)
		}
		cmd.Printf("Warning: embedding failed for chunk(s) %s; they will not be searchable.\n",
			strings.Join(positions, ", "))
	}
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents uploaded.")
		return nil
	}

	cmd.Println("Documents:")
	cmd.Println()
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Name: %s\n", docs[i].Name)
		if docs[i].FileType != "" {
			cmd.Printf("    Type: %s\n", docs[i].FileType)
		}
		cmd.Printf("    Size: %d bytes\n", docs[i].FileSize)
		cmd.Printf("    Uploaded: %s\n", docs[i].CreatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s\n\n", doc.ID)
	cmd.Printf("  Name:     %s\n", doc.Name)
	if doc.FileType != "" {
		cmd.Printf("  Type:     %s\n", doc.FileType)
	}
	cmd.Printf("  Size:     %d bytes\n", doc.FileSize)
	cmd.Printf("  Created:  %s\n", doc.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	if err := documentService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Document %s deleted.\n", args[0])
	return nil
}
