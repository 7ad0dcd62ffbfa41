package cli

import (
	"github.com/spf13/cobra"

	"github.com/tabatui/tabata/internal/config"
	"github.com/tabatui/tabata/internal/web"
)

var (
	serveListen string
	serveDir    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pre-built browser front end",
	Long: `Serve delivers the compiled web front end from a static directory
over plain HTTP: the root path serves index.html, any other path is resolved
beneath the directory, and missing files return 404.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		listen := serveListen
		if listen == "" {
			listen = cfg.WebListen
		}
		dir := serveDir
		if dir == "" {
			dir = cfg.WebDir
		}

		srv := &web.Server{Addr: listen, Dir: dir}
		return srv.ListenAndServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveDir, "dir", "", "static asset directory (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
