package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ytget/circlerefresh/internal/config"
)

var initConfigPath string

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a config file with the default header options",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Write(initConfigPath, config.DefaultOptions()); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		log.Printf("frames: wrote default config to %s", initConfigPath)
		return nil
	},
}

func init() {
	initConfigCmd.Flags().StringVarP(&initConfigPath, "path", "p", "circlerefresh.yaml", "destination file")
}
