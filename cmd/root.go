package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Tnecniv1/Calcul-Pixel/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pixel",
	Short: "Arcade arithmetic training",
	Long:  "Pixel — terminal arithmetic trainer: timed drill sessions, mistake correction, badges, and a pixel creature lit by your score.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// Optional .env for PIXEL_API_BASE / PIXEL_API_TOKEN / PIXEL_WS_URL /
	// PIXEL_DB; absence is not an error.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PIXEL_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PIXEL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
