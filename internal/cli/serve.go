package cli

import (
	"planesteg/internal/server"
	"planesteg/pkg/config"

	"github.com/spf13/cobra"
)

func ServeAppCommand(a *app) *cobra.Command {
	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to embed, reveal and filter images over the web",
		Example: "planesteg serve --port 8888",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.StartServer(cmd.Context(), a.serverConfig())
		},
	}

	command.Flags().String(portKey, config.DefaultPort, "Port on which to start the server")

	return command
}
