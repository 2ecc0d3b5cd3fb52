package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cumulative score and badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, local, err := openLocal(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		client := selectBackend(local)

		if sp, ok := client.(backend.ScoreProvider); ok {
			score, err := sp.TotalScore(ctx)
			if err != nil {
				return fmt.Errorf("total score: %w", err)
			}
			fmt.Printf("Score cumulé : %d points\n", score)
		}

		badges, err := client.CheckAndUnlockBadges(ctx)
		if err != nil {
			return fmt.Errorf("badges: %w", err)
		}
		fmt.Printf("Badges débloqués : %d\n", badges.TotalUnlocked)
		for _, b := range badges.NewlyUnlocked {
			fmt.Printf("  %s %s — %s\n", b.Emoji, b.Name, b.Description)
		}
		return nil
	},
}
