package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/fabula-api/internal/config"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/fabula-api/internal/redis"
	playerrepo "github.com/KirkDiggler/fabula-api/internal/repositories/player"
	revisionrepo "github.com/KirkDiggler/fabula-api/internal/repositories/revision"
	"github.com/KirkDiggler/fabula-api/internal/schema"
)

const (
	playerKeyPattern = "player:*"
	ownerIndexPrefix = "player:owner:"
)

var (
	deleteInvalid bool
	assumeYes     bool
	historyLimit  int
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Maintenance commands against the configured stores",
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check every stored player document against the player schema",
	RunE:  runVerify,
}

var importCmd = &cobra.Command{
	Use:   "import [files...]",
	Short: "Validate player JSON files and store them",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runImport,
}

var historyCmd = &cobra.Command{
	Use:   "history [player-id]",
	Short: "List saved revisions of a player",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	verifyCmd.Flags().BoolVar(&deleteInvalid, "delete", false, "Delete documents that fail validation")
	verifyCmd.Flags().BoolVar(&assumeYes, "yes", false, "Do not ask for confirmation before deleting")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of revisions to show")

	adminCmd.AddCommand(verifyCmd)
	adminCmd.AddCommand(importCmd)
	adminCmd.AddCommand(historyCmd)
}

func connectRedis(cfg *config.Config) (redisclient.Client, error) {
	client, err := redisclient.NewClient(cfg.RedisURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to redis")
	}
	return client, nil
}

// verifyReport lists the keys that failed validation with their reason
type verifyReport struct {
	Checked int
	Invalid map[string]string
}

func verifyPlayers(ctx context.Context, client redisclient.Client, validator *schema.Validator) (*verifyReport, error) {
	report := &verifyReport{Invalid: map[string]string{}}

	iter := client.Scan(ctx, 0, playerKeyPattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, ownerIndexPrefix) {
			continue
		}
		report.Checked++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			report.Invalid[key] = err.Error()
			continue
		}

		if err := validator.ValidatePlayer(data); err != nil {
			report.Invalid[key] = describeValidation(err)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan player keys")
	}

	return report, nil
}

func describeValidation(err error) string {
	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	if !ok || len(fields) == 0 {
		return errors.GetMessage(err)
	}

	parts := make([]string, 0, len(fields))
	for field, msgs := range fields {
		parts = append(parts, field+": "+strings.Join(msgs, "; "))
	}
	return strings.Join(parts, ", ")
}

func runVerify(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := connectRedis(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	validator, err := schema.New()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	report, err := verifyPlayers(ctx, client, validator)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Checked %d players, found %d invalid\n", report.Checked, len(report.Invalid))
	if len(report.Invalid) == 0 {
		return nil
	}
	for key, reason := range report.Invalid {
		fmt.Fprintf(out, "  ✗ %s: %s\n", key, reason)
	}

	if !deleteInvalid {
		return nil
	}
	if !assumeYes && !confirm(cmd.InOrStdin(), out, "Delete these documents?") {
		fmt.Fprintln(out, "Aborted - no changes made")
		return nil
	}

	for key := range report.Invalid {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Fprintf(out, "Failed to delete %s: %v\n", key, err)
			continue
		}
		fmt.Fprintf(out, "Deleted %s\n", key)
	}
	return nil
}

func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s (yes/no): ", question)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimSpace(answer) == "yes"
}

func importPlayer(ctx context.Context, repo playerrepo.Repository, validator *schema.Validator, data []byte) (string, error) {
	p, err := validator.DecodePlayer(data)
	if err != nil {
		return "", err
	}
	if p.ID == "" {
		return "", errors.InvalidArgument("player document has no id")
	}

	if _, err := repo.Save(ctx, playerrepo.SaveInput{Player: p}); err != nil {
		return "", err
	}
	return p.ID, nil
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := connectRedis(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	validator, err := schema.New()
	if err != nil {
		return err
	}
	repo, err := playerrepo.NewRedis(&playerrepo.RedisConfig{Client: client, Clock: clock.New()})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		data, err := os.ReadFile(path) // nolint:gosec // operator supplied path
		if err != nil {
			fmt.Fprintf(out, "✗ %s: %v\n", path, err)
			failed++
			continue
		}

		id, err := importPlayer(cmd.Context(), repo, validator, data)
		if err != nil {
			fmt.Fprintf(out, "✗ %s: %s\n", path, describeValidation(err))
			failed++
			continue
		}
		fmt.Fprintf(out, "✓ %s imported as %s\n", path, id)
	}

	if failed > 0 {
		return errors.InvalidArgumentf("%d of %d files failed to import", failed, len(args))
	}
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	repo, err := revisionrepo.NewSQLite(&revisionrepo.Config{Path: cfg.RevisionsDB, Clock: clock.New()})
	if err != nil {
		return err
	}
	defer func() { _ = repo.Close() }()

	listOutput, err := repo.List(cmd.Context(), revisionrepo.ListInput{PlayerID: args[0], Limit: historyLimit})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "REVISION\tSAVED BY\tSAVED AT")
	for _, rev := range listOutput.Revisions {
		fmt.Fprintf(w, "%d\t%s\t%s\n", rev.Revision, rev.SavedBy, rev.SavedAt.Format(time.RFC3339))
	}
	return w.Flush()
}
