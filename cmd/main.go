package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	var cfgFile string
	root := &cobra.Command{
		Use:           "arcadeflow",
		Short:         "ArcadeFlow HTML5 game portal backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default ./config/config.yaml)")

	root.AddCommand(newServeCmd(&cfgFile))
	root.AddCommand(newMigrateCmd(&cfgFile))
	root.AddCommand(newSeedCmd(&cfgFile))
	root.AddCommand(newSweepCmd(&cfgFile))
	root.AddCommand(newAdTextCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
