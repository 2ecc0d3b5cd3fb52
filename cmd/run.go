package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tnecniv1/Calcul-Pixel/internal/app"
	"github.com/Tnecniv1/Calcul-Pixel/internal/backend"
	"github.com/Tnecniv1/Calcul-Pixel/internal/store"
)

// runApp opens the store, picks the backend, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, local, err := openLocal(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Backend:    selectBackend(local),
		TrialStore: local,
	})
}

// openLocal opens the local database. The local store always exists: it
// persists the trial state and serves as the offline backend.
func openLocal(cmd *cobra.Command) (*store.Store, *store.Local, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return st, store.NewLocal(st), nil
}

// selectBackend returns the remote client when PIXEL_API_BASE is set,
// otherwise the local store backend.
func selectBackend(local *store.Local) backend.Client {
	base := os.Getenv("PIXEL_API_BASE")
	if base == "" {
		return local
	}
	return backend.NewRemote(backend.RemoteConfig{
		BaseURL: base,
		WSURL:   os.Getenv("PIXEL_WS_URL"),
		Token:   os.Getenv("PIXEL_API_TOKEN"),
	})
}
