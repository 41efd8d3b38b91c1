package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/stamptrail/stampbook/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a setting and persist it to ~/.stampbook/config.yaml.

Keys:
  server-url    Passport backend base URL
  nav-delay-ms  Login navigation delay in milliseconds

Examples:
  stampbook config set server-url https://passport.example.com
  stampbook config set nav-delay-ms 200`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("server-url:    %s\n", cfg.ServerURL)
	fmt.Printf("nav-delay-ms:  %d\n", cfg.NavDelay)
	fmt.Printf("log-level:     %s\n", cfg.LogLevel)
	fmt.Printf("log-file:      %s\n", cfg.LogFile)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "server-url":
		cfg.ServerURL = value
	case "nav-delay-ms":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("nav-delay-ms must be a non-negative integer")
		}
		cfg.NavDelay = n
	default:
		return fmt.Errorf("unknown key %q", key)
	}

	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}
