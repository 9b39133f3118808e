package cli

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/TomasUhiaOtero/Kairos/internal/server"
)

// newServeCommand creates the serve command, which runs the bundled
// in-memory backend. It speaks the same REST dialect as the hosted
// backend, so a client pointed at it exercises the full wire path.
func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Arrancar un backend local en memoria",
		Long: `Arranca un backend local en memoria con la misma API REST que el
servidor real. Útil para probar sin conexión; los datos se pierden al
parar el proceso.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New().Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			log.Info().Str("addr", addr).Msg("backend local escuchando")
			_, _ = cmd.OutOrStdout().Write([]byte("Escuchando en " + addr + "\n"))
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8787", "Dirección de escucha")
	return cmd
}
