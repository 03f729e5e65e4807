package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/splitneat/internal/ledger"
	"github.com/mmynk/splitneat/internal/view"
	"github.com/mmynk/splitneat/pkg/logging"
)

// friendsCmd prints the seeded friend list
var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "Print the friend list and overall balance",
	RunE:  runFriends,
}

func runFriends(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logging.Setup(os.Stderr, cfg.LogLevel)

	l, _, store, err := openLedger(cmd.Context(), cfg, nil)
	if err != nil {
		return err
	}
	defer store.Close()

	snap, err := l.Snapshot(cmd.Context())
	if err != nil {
		return err
	}
	printFriends(cmd.OutOrStdout(), snap)
	return nil
}

func printFriends(w io.Writer, snap ledger.Snapshot) {
	for _, row := range view.FriendList(snap) {
		fmt.Fprintf(w, "%5d  %-20s %s\n", row.ID, row.Name, row.Message)
	}
	fmt.Fprintln(w, view.SummaryOf(snap).Message)
}
