// Package client provides commands that exercise a running fabula-api server
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	fabulav1alpha1 "github.com/KirkDiggler/fabula-api/api/fabula/v1alpha1"
	"github.com/KirkDiggler/fabula-api/internal/errors"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	userID     string
	language   string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the fabula-api server",
	Long: `Client commands make real gRPC requests against a running server as the given user.

PlayerService messages are JSON over the "json" content subtype and the service has no
protobuf descriptor. Server reflection lists fabula.v1alpha1.PlayerService but cannot
describe it, so generic tools such as grpcurl cannot call it; use these commands instead.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&userID, "user", "", "Caller user ID")
	ClientCmd.PersistentFlags().StringVar(&language, "language", "", "Preferred language, e.g. it or en-US")

	// Player commands
	ClientCmd.AddCommand(createPlayerCmd)
	ClientCmd.AddCommand(getPlayerCmd)
	ClientCmd.AddCommand(listPlayersCmd)
	ClientCmd.AddCommand(deletePlayerCmd)
	ClientCmd.AddCommand(watchPlayerCmd)
	ClientCmd.AddCommand(historyCmd)
	ClientCmd.AddCommand(listClassesCmd)

	// Session commands
	ClientCmd.AddCommand(openSessionCmd)
	ClientCmd.AddCommand(getSessionCmd)
	ClientCmd.AddCommand(saveSessionCmd)
	ClientCmd.AddCommand(closeSessionCmd)
	ClientCmd.AddCommand(addClassCmd)
	ClientCmd.AddCommand(exportWeaponCmd)
	ClientCmd.AddCommand(rollCheckCmd)
}

// createClient connects to the server
func createClient() (fabulav1alpha1.PlayerServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return fabulav1alpha1.NewPlayerServiceClient(conn), cleanup, nil
}

// requestContext carries the caller identity and the timeout
func requestContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	if userID != "" {
		ctx = fabulav1alpha1.WithUser(ctx, userID)
	}
	if language != "" {
		ctx = fabulav1alpha1.WithLanguage(ctx, language)
	}
	return ctx, cancel
}

// describe turns a server error into a readable one, keeping its details
func describe(action string, err error) error {
	err = errors.FromGRPCError(err)
	msg := fmt.Sprintf("failed to %s: [%s] %s", action, errors.GetCode(err), errors.GetMessage(err))
	if meta := errors.GetMeta(err); len(meta) > 0 {
		msg += fmt.Sprintf(" %v", meta)
	}
	return fmt.Errorf("%s", msg)
}

func printJSON(raw json.RawMessage) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(buf.String())
}

func printSession(session *fabulav1alpha1.Session) {
	fmt.Printf("📋 Session %s\n", session.ID)
	fmt.Printf("   Player: %s (owner: %t)\n", session.PlayerID, session.IsOwner)
	fmt.Printf("   Language: %s  Tab: %s  Dirty: %t\n", session.Language, session.ActiveTab, session.Dirty)
	fmt.Printf("   Expires: %s\n", session.ExpiresAt.Format(time.RFC3339))
	for _, notice := range session.Notices {
		fmt.Printf("   ℹ️  %s\n", notice)
	}
	for _, warning := range session.Warnings {
		fmt.Printf("   ⚠️  %s\n", warning.Message)
	}
}
