package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tkarpov/warroom/internal/config"
)

var cfgFile string
var cfg config.C

func loadConfig() error {
	if cfgFile == "" {
		cfgFile = os.Getenv("WARROOM_CONFIG")
	}

	// A config file is optional; everything can come from the environment.
	var err error
	cfg, err = config.LoadConfig(cfgFile)
	return err
}

func banner() {
	banner := `
 _      ______ _____  _________  ____  ____
| | /| / / __ '/ ___/ / ___/ __ \/ __ \/ __ \__ ___
| |/ |/ / /_/ / /    / /  / /_/ / /_/ / / / / / / /
|__/|__/\__,_/_/    /_/   \____/\____/_/ /_/_/ /_/
`
	color.Green(banner)
}

func main() {
	// Optionally load environment variables from a .env file.
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use:   "warroom",
		Short: "Game-stats bot with paginated embeds and a live dashboard",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file; may also be specified in WARROOM_CONFIG")

	rootCmd.AddCommand(cmdServe())
	rootCmd.AddCommand(cmdRender())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
