package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// chatCmd prints the newest chat page without entering the TUI.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Show the latest global chat messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, local, err := openLocal(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		client := selectBackend(local)
		msgs, err := client.FetchMessages(context.Background(), nil)
		if err != nil {
			return fmt.Errorf("fetch messages: %w", err)
		}
		if len(msgs) == 0 {
			fmt.Println("Aucun message.")
			return nil
		}

		// Pages arrive newest first; print oldest first for reading.
		for i := len(msgs) - 1; i >= 0; i-- {
			m := msgs[i]
			name := m.DisplayName
			if name == "" {
				name = m.SenderName
			}
			fmt.Printf("[%s] %s: %s\n", m.CreatedAt.Local().Format("15:04"), name, m.Content)
		}
		return nil
	},
}
