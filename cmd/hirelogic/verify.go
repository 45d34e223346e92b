package main

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hirelogic/hirelogic-api/internal/kvstore"
	"github.com/hirelogic/hirelogic-api/internal/observability"
	"github.com/hirelogic/hirelogic-api/internal/verification"
)

var (
	verifyFiles     []string
	verifyStateFile string
	verifySeed      int64
	verifyEndpoint  string
	verifyVerbose   bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run document verification from the command line",
	Long: `Attach document files to their slots, verify everything that is ready, and
print the outcome per document plus the overall status.

Slots: tenth, twelfth, degree (mandatory); mtech, ms (optional).`,
	Example: `  hirelogic verify --file tenth=10th.pdf --file twelfth=12th.pdf --file degree=degree.pdf`,
	RunE:    runVerify,
}

func init() {
	verifyCmd.Flags().StringArrayVar(&verifyFiles, "file", nil, "Document to attach, as slot=path (repeatable)")
	verifyCmd.Flags().StringVar(&verifyStateFile, "state", "", "Path to the state file (default: in-memory, nothing persisted)")
	verifyCmd.Flags().Int64Var(&verifySeed, "seed", 0, "Deterministic seed for the mock verifier")
	verifyCmd.Flags().StringVar(&verifyEndpoint, "endpoint", "", "Remote verification endpoint (default: mock verifier)")
	verifyCmd.Flags().BoolVar(&verifyVerbose, "verbose", false, "Print the activity log")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(_ *cobra.Command, _ []string) error {
	if len(verifyFiles) == 0 {
		return fmt.Errorf("at least one --file slot=path is required")
	}

	ctx := context.Background()

	var store kvstore.Store = kvstore.NewMemoryStore()
	if verifyStateFile != "" {
		store = kvstore.NewFileStore(verifyStateFile)
	}

	var strategy verification.Strategy
	switch {
	case verifyEndpoint != "":
		strategy = verification.NewRemoteStrategy(verifyEndpoint, nil)
	case verifySeed != 0:
		strategy = verification.NewSeededMockStrategy(verifySeed, 0)
	default:
		strategy = verification.NewSeededMockStrategy(1, 0)
	}

	session := verification.NewSession(ctx, verification.Config{
		Store:    store,
		Strategy: strategy,
	})

	for _, arg := range verifyFiles {
		slotID, path, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("invalid --file %q, expected slot=path", arg)
		}
		if err := attachFile(ctx, session, slotID, path); err != nil {
			return err
		}
	}

	verified := session.VerifyAll(ctx)
	fmt.Printf("Verified %d document(s)\n\n", verified)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSlots(session.Snapshot())
	printer.PrintOverall(session.Overall(), session.Progress())

	if verifyVerbose {
		printer.PrintActivity(session.Activity())
	}
	return nil
}

// attachFile uploads one local file into a slot.
func attachFile(ctx context.Context, session *verification.Session, slotID, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	upload := verification.Upload{
		Name:        filepath.Base(path),
		Size:        info.Size(),
		ContentType: contentType,
		Content:     f,
	}
	if err := session.Attach(ctx, slotID, upload); err != nil {
		return fmt.Errorf("failed to attach %s: %w", path, err)
	}
	return nil
}
