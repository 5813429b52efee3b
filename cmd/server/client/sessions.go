package client

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	fabulav1alpha1 "github.com/KirkDiggler/fabula-api/api/fabula/v1alpha1"
)

var (
	sessionID   string
	forceClose  bool
	className   string
	weaponIndex int
	exportFmt   string
	outDir      string
	attr1       string
	attr2       string
	checkBonus  int
)

var openSessionCmd = &cobra.Command{
	Use:   "open-session",
	Short: "Open an edit session on a player",
	RunE:  runOpenSession,
}

var getSessionCmd = &cobra.Command{
	Use:   "get-session",
	Short: "Show an edit session",
	RunE:  runGetSession,
}

var saveSessionCmd = &cobra.Command{
	Use:   "save-session",
	Short: "Persist the working copy of a session",
	RunE:  runSaveSession,
}

var closeSessionCmd = &cobra.Command{
	Use:   "close-session",
	Short: "Close a session",
	RunE:  runCloseSession,
}

var addClassCmd = &cobra.Command{
	Use:   "add-class",
	Short: "Add a catalog class to the session's player",
	RunE:  runAddClass,
}

var exportWeaponCmd = &cobra.Command{
	Use:   "export-weapon",
	Short: "Download a weapon as JSON or a PNG card",
	RunE:  runExportWeapon,
}

var rollCheckCmd = &cobra.Command{
	Use:   "roll-check",
	Short: "Roll an attribute check for the session's player",
	RunE:  runRollCheck,
}

func init() {
	openSessionCmd.Flags().StringVar(&playerID, "player-id", "", "Player ID (required)")
	_ = openSessionCmd.MarkFlagRequired("player-id") // nolint:errcheck // safe to ignore in init

	for _, cmd := range []*cobra.Command{getSessionCmd, saveSessionCmd, closeSessionCmd, addClassCmd, exportWeaponCmd, rollCheckCmd} {
		cmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
		_ = cmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init
	}

	closeSessionCmd.Flags().BoolVar(&forceClose, "force", false, "Drop unsaved changes")

	addClassCmd.Flags().StringVar(&className, "class", "", "Class name (required)")
	_ = addClassCmd.MarkFlagRequired("class") // nolint:errcheck // safe to ignore in init

	exportWeaponCmd.Flags().IntVar(&weaponIndex, "index", 0, "Weapon index")
	exportWeaponCmd.Flags().StringVar(&exportFmt, "format", fabulav1alpha1.ExportFormatJSON, "json or png")
	exportWeaponCmd.Flags().StringVar(&outDir, "out", ".", "Directory to write the file to")

	rollCheckCmd.Flags().StringVar(&attr1, "attr1", "dexterity", "First attribute")
	rollCheckCmd.Flags().StringVar(&attr2, "attr2", "insight", "Second attribute")
	rollCheckCmd.Flags().IntVar(&checkBonus, "bonus", 0, "Flat bonus")
}

func runOpenSession(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.OpenSession(ctx, &fabulav1alpha1.OpenSessionRequest{PlayerID: playerID})
	if err != nil {
		return describe("open session", err)
	}

	printSession(resp.Session)
	return nil
}

func runGetSession(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.GetSession(ctx, &fabulav1alpha1.SessionRequest{SessionID: sessionID})
	if err != nil {
		return describe("get session", err)
	}

	printSession(resp.Session)
	printJSON(resp.Session.Player)
	return nil
}

func runSaveSession(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.SaveSession(ctx, &fabulav1alpha1.SessionRequest{SessionID: sessionID})
	if err != nil {
		return describe("save session", err)
	}

	fmt.Printf("💾 Saved revision %d\n", resp.Revision)
	return nil
}

func runCloseSession(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	_, err = client.CloseSession(ctx, &fabulav1alpha1.CloseSessionRequest{SessionID: sessionID, Force: forceClose})
	if err != nil {
		return describe("close session", err)
	}

	fmt.Printf("👋 Closed %s\n", sessionID)
	return nil
}

func runAddClass(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.AddClass(ctx, &fabulav1alpha1.ClassRequest{SessionID: sessionID, ClassName: className})
	if err != nil {
		return describe("add class", err)
	}

	printSession(resp.Session)
	return nil
}

func runExportWeapon(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ExportWeapon(ctx, &fabulav1alpha1.ExportWeaponRequest{
		SessionID: sessionID,
		Index:     weaponIndex,
		Format:    exportFmt,
	})
	if err != nil {
		return describe("export weapon", err)
	}

	path := filepath.Join(outDir, filepath.Base(resp.FileName))
	if err := os.WriteFile(path, resp.Data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("📦 Wrote %s (%s, %d bytes)\n", path, resp.ContentType, len(resp.Data))
	return nil
}

func runRollCheck(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.RollCheck(ctx, &fabulav1alpha1.RollCheckRequest{
		SessionID: sessionID,
		Attr1:     attr1,
		Attr2:     attr2,
		Bonus:     checkBonus,
	})
	if err != nil {
		return describe("roll check", err)
	}

	fmt.Printf("🎲 %s %d + %s %d + %d = %d\n", resp.Attr1, resp.Result1, resp.Attr2, resp.Result2, resp.Bonus, resp.Total)
	switch {
	case resp.Critical:
		fmt.Println("   Critical success!")
	case resp.Fumble:
		fmt.Println("   Fumble!")
	}
	return nil
}
