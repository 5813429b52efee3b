package client

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	fabulav1alpha1 "github.com/KirkDiggler/fabula-api/api/fabula/v1alpha1"
)

var (
	playerName   string
	playerID     string
	book         string
	historyLimit int
)

var createPlayerCmd = &cobra.Command{
	Use:   "create-player",
	Short: "Create a player owned by --user",
	RunE:  runCreatePlayer,
}

var getPlayerCmd = &cobra.Command{
	Use:   "get-player",
	Short: "Print a player document",
	RunE:  runGetPlayer,
}

var listPlayersCmd = &cobra.Command{
	Use:   "list-players",
	Short: "List the players owned by --user",
	RunE:  runListPlayers,
}

var deletePlayerCmd = &cobra.Command{
	Use:   "delete-player",
	Short: "Delete a player owned by --user",
	RunE:  runDeletePlayer,
}

var watchPlayerCmd = &cobra.Command{
	Use:   "watch-player",
	Short: "Stream updates of a player until interrupted",
	RunE:  runWatchPlayer,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved revisions of a player",
	RunE:  runHistory,
}

var listClassesCmd = &cobra.Command{
	Use:   "list-classes",
	Short: "List catalog classes, optionally of one book",
	RunE:  runListClasses,
}

func init() {
	createPlayerCmd.Flags().StringVar(&playerName, "name", "", "Player name (required)")
	_ = createPlayerCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init

	for _, cmd := range []*cobra.Command{getPlayerCmd, deletePlayerCmd, watchPlayerCmd, historyCmd} {
		cmd.Flags().StringVar(&playerID, "player-id", "", "Player ID (required)")
		_ = cmd.MarkFlagRequired("player-id") // nolint:errcheck // safe to ignore in init
	}

	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of revisions")
	listClassesCmd.Flags().StringVar(&book, "book", "", "Only list classes of this book")
}

func runCreatePlayer(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.CreatePlayer(ctx, &fabulav1alpha1.CreatePlayerRequest{Name: playerName})
	if err != nil {
		return describe("create player", err)
	}

	fmt.Println("✅ Player created")
	printJSON(resp.Player)
	return nil
}

func runGetPlayer(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.GetPlayer(ctx, &fabulav1alpha1.GetPlayerRequest{PlayerID: playerID})
	if err != nil {
		return describe("get player", err)
	}

	printJSON(resp.Player)
	return nil
}

func runListPlayers(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ListPlayers(ctx, &fabulav1alpha1.ListPlayersRequest{})
	if err != nil {
		return describe("list players", err)
	}

	fmt.Printf("Found %d players:\n\n", len(resp.Players))
	for _, p := range resp.Players {
		printJSON(p)
	}
	return nil
}

func runDeletePlayer(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	if _, err := client.DeletePlayer(ctx, &fabulav1alpha1.DeletePlayerRequest{PlayerID: playerID}); err != nil {
		return describe("delete player", err)
	}

	fmt.Printf("🗑️  Deleted %s\n", playerID)
	return nil
}

func runWatchPlayer(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	// Watching has no timeout; only the caller identity is carried over.
	ctx := cmd.Context()
	if userID != "" {
		ctx = fabulav1alpha1.WithUser(ctx, userID)
	}

	stream, err := client.WatchPlayer(ctx, &fabulav1alpha1.WatchPlayerRequest{PlayerID: playerID})
	if err != nil {
		return describe("watch player", err)
	}

	for {
		event, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return describe("watch player", err)
		}

		if event.Deleted {
			fmt.Printf("🗑️  %s does not exist\n", event.PlayerID)
			continue
		}
		fmt.Printf("🔄 %s updated\n", event.PlayerID)
		printJSON(event.Player)
	}
}

func runHistory(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ListRevisions(ctx, &fabulav1alpha1.ListRevisionsRequest{PlayerID: playerID, Limit: historyLimit})
	if err != nil {
		return describe("list revisions", err)
	}

	for _, rev := range resp.Revisions {
		fmt.Printf("#%d saved by %s at %s\n", rev.Revision, rev.SavedBy, rev.SavedAt)
	}
	return nil
}

func runListClasses(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ListClasses(ctx, &fabulav1alpha1.ListClassesRequest{Book: book})
	if err != nil {
		return describe("list classes", err)
	}

	fmt.Printf("Found %d classes:\n\n", len(resp.Classes))
	for _, class := range resp.Classes {
		fmt.Printf("⚔️  %s (%s)\n", class.Name, class.Book)
	}
	return nil
}
