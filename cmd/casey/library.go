// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aniruddhdoki/casey/internal/library"
	"github.com/aniruddhdoki/casey/pkg/types"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the case library (ingest, search, export)",
	Long: `Library manages a local SQLite case library built from parsed case
records. Use subcommands to load records, query them, or export.`,
}

// --- ingest subcommand ---

var libraryIngestCmd = &cobra.Command{
	Use:   "ingest [records]",
	Short: "Load parsed case records into the case library",
	Long: `Ingest reads the parse stage's JSON output and upserts every record
into a SQLite database with FTS5 indexing. Re-ingesting a file updates
cases in place; case_id is the stable key.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLibraryIngest,
}

func runLibraryIngest(cmd *cobra.Command, args []string) error {
	recordsPath, _ := cmd.Flags().GetString("records")
	if len(args) > 0 {
		recordsPath = args[0]
	}

	store, err := library.NewStore(libraryConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), recordsPath, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d record(s) failed loading", summary.Failed)
	}
	return nil
}

// --- search subcommand ---

var librarySearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Query the case library with full-text search and filters",
	Long: `Search queries the case library using FTS5 full-text search over
titles, prompts, and interviewer notes, structured filters (industry,
case style, concept), or a combination of both.

Use --id with a case_id to print the full record for one case.`,
	RunE: runLibrarySearch,
}

func runLibrarySearch(cmd *cobra.Command, args []string) error {
	caseID, _ := cmd.Flags().GetString("id")

	store, err := library.NewStore(libraryConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	// ID mode: print the full record for one case.
	if caseID != "" {
		item, err := store.Get(context.Background(), caseID)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(item)
	}

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --industry, --case-style, or --concept")
	}

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []types.CaseItem, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-40s  %-20s  %-15s  %-5s  %s\n",
		"Rank", "Title", "Industry", "Style", "Q/S", "Case ID")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for i, r := range results {
		title := r.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		industry := r.Industry
		if len(industry) > 20 {
			industry = industry[:17] + "..."
		}
		style := r.CaseStyle
		if len(style) > 15 {
			style = style[:12] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-40s  %-20s  %-15s  %d/%-3d  %s\n",
			i+1, title, industry, style,
			r.Difficulty.Quant, r.Difficulty.Structure, r.CaseID)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var libraryExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the case library to YAML or JSON",
	Long: `Export writes the full case library (or a filtered subset) to
library/index/export.yaml or export.json. Supports the same filter
flags as search for partial exports.`,
	RunE: runLibraryExport,
}

func runLibraryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := library.NewStore(libraryConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	libraryDir, _ := cmd.Flags().GetString("library-dir")

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/index/export.yaml\n", libraryDir)
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/index/export.json\n", libraryDir)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func libraryConfig(cmd *cobra.Command) types.LibraryConfig {
	libraryDir, _ := cmd.Flags().GetString("library-dir")
	if libraryDir == "" {
		libraryDir = "library"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.LibraryConfig{
		LibraryDir: libraryDir,
		MaxResults: maxResults,
	}
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) library.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	industry, _ := cmd.Flags().GetString("industry")
	caseStyle, _ := cmd.Flags().GetString("case-style")
	concept, _ := cmd.Flags().GetString("concept")
	limit, _ := cmd.Flags().GetInt("limit")

	return library.QueryOptions{
		Query:      queryText,
		Industry:   industry,
		CaseStyle:  caseStyle,
		Concept:    concept,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	libraryCmd.PersistentFlags().String("library-dir", "library", "base directory for the case library (contains index/)")
	libraryCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")

	// Ingest flags.
	libraryIngestCmd.Flags().String("records", "cases.json", "parsed case records JSON file")

	// Search flags.
	librarySearchCmd.Flags().String("query", "", "full-text search query")
	librarySearchCmd.Flags().String("industry", "", "filter by industry")
	librarySearchCmd.Flags().String("case-style", "", "filter by case style: Candidate-led or Interviewer-led")
	librarySearchCmd.Flags().String("concept", "", "filter by tested concept")
	librarySearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	librarySearchCmd.Flags().String("id", "", "print the full record for a case_id")
	librarySearchCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	libraryExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	libraryExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	libraryExportCmd.Flags().String("industry", "", "filter by industry for partial export")
	libraryExportCmd.Flags().String("case-style", "", "filter by case style for partial export")
	libraryExportCmd.Flags().String("concept", "", "filter by tested concept for partial export")
	libraryExportCmd.Flags().Int("limit", 0, "maximum cases to export (0 = all)")

	// Wire subcommands.
	libraryCmd.AddCommand(libraryIngestCmd)
	libraryCmd.AddCommand(librarySearchCmd)
	libraryCmd.AddCommand(libraryExportCmd)

	rootCmd.AddCommand(libraryCmd)
}
