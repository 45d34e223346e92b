package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hirelogic/hirelogic-api/internal/fetch"
	"github.com/hirelogic/hirelogic-api/internal/jobs"
	"github.com/hirelogic/hirelogic-api/internal/observability"
)

var (
	importJobStore   bool
	importJobBrowser bool
	importJobJSON    bool
)

var importJobCmd = &cobra.Command{
	Use:   "import-job <posting.html | url>",
	Short: "Extract a job listing from a posting page",
	Long: `Parse a job posting page, extract the title, company, location, and
description, and print the listing. The argument is either a saved HTML file
or an http(s) URL to fetch. With --store and DATABASE_URL set, the listing is
also written to the job board database.`,
	Args: cobra.ExactArgs(1),
	RunE: runImportJob,
}

func init() {
	importJobCmd.Flags().BoolVar(&importJobStore, "store", false, "Also store the listing in the database (requires DATABASE_URL)")
	importJobCmd.Flags().BoolVar(&importJobBrowser, "browser", false, "Render the page in a headless browser before extracting")
	importJobCmd.Flags().BoolVar(&importJobJSON, "json", false, "Print the listing as JSON instead of a summary")
	rootCmd.AddCommand(importJobCmd)
}

func loadPostingHTML(ctx context.Context, source string) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if importJobBrowser {
			return fetch.BrowserSimple(ctx, source, false)
		}
		result, err := fetch.URL(ctx, source, nil)
		if err != nil {
			return "", err
		}
		return result.HTML, nil
	}
	raw, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", source, err)
	}
	return string(raw), nil
}

func runImportJob(_ *cobra.Command, args []string) error {
	html, err := loadPostingHTML(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to load posting: %w", err)
	}

	listing, err := jobs.ExtractListing(html)
	if err != nil {
		return fmt.Errorf("failed to extract listing: %w", err)
	}

	if importJobStore {
		databaseURL := os.Getenv("DATABASE_URL")
		if databaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required with --store")
		}
		ctx := context.Background()
		store, err := jobs.NewPostgresStore(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer store.Close()
		if err := store.Create(ctx, listing); err != nil {
			return fmt.Errorf("failed to store listing: %w", err)
		}
	}

	if importJobJSON {
		out, err := json.MarshalIndent(listing, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode listing: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintListing(listing)
	return nil
}
