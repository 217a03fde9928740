package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Diogo1912/jobbi/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update configuration settings",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(titleStyle.Render("Configuration"))
		fmt.Printf("%s %s\n", labelStyle.Render("Config File:"), config.GetConfigPath())
		fmt.Printf("%s %s\n", labelStyle.Render("AI Provider:"), config.AppConfig.AIProvider)
		fmt.Printf("%s %s\n", labelStyle.Render("Default Model:"), config.AppConfig.DefaultModel)
		fmt.Printf("%s %s\n", labelStyle.Render("Ollama URL:"), config.AppConfig.OllamaURL)

		// Show whether keys are configured, never the keys themselves.
		if config.AppConfig.GeminiKey != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Gemini Key:"), "✓ Configured")
		} else {
			fmt.Printf("%s %s\n", labelStyle.Render("Gemini Key:"), "✗ Not configured")
		}
		if config.AppConfig.OpenAIKey != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("OpenAI Key:"), "✓ Configured")
		} else {
			fmt.Printf("%s %s\n", labelStyle.Render("OpenAI Key:"), "✗ Not configured")
		}

		fmt.Printf("%s %ds\n", labelStyle.Render("Fetch Timeout:"), config.AppConfig.FetchTimeoutSeconds)
		fmt.Printf("%s %ds\n", labelStyle.Render("Scrape Delay:"), config.AppConfig.ScrapeDelaySeconds)
		fmt.Printf("%s %dh\n", labelStyle.Render("Watch Interval:"), config.AppConfig.WatchIntervalHours)
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a configuration value",
	Example: `  jobbi config set --key gemini_key --value AIza...
  jobbi config set --key ai_provider --value ollama
  jobbi config set --key default_model --value gemini-1.5-flash`,
	Run: func(cmd *cobra.Command, args []string) {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		if key == "" || value == "" {
			fmt.Println("Both --key and --value are required")
			return
		}

		validKeys := []string{"ai_provider", "gemini_key", "openai_key", "ollama_url",
			"default_model", "fetch_timeout_seconds", "scrape_delay_seconds", "watch_interval_hours"}
		valid := false
		for _, k := range validKeys {
			if k == key {
				valid = true
				break
			}
		}
		if !valid {
			fmt.Printf("Invalid key. Must be one of: %v\n", validKeys)
			return
		}

		if err := config.Set(key, value); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating config: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✓ Configuration updated: %s\n", key)

		if err := config.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not reload config: %v\n", err)
		}
	},
}

var getConfigCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.Get(args[0]))
	},
}

var pathConfigCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.GetConfigPath())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)
	configCmd.AddCommand(getConfigCmd)
	configCmd.AddCommand(pathConfigCmd)

	setConfigCmd.Flags().String("key", "", "Configuration key")
	setConfigCmd.Flags().String("value", "", "Configuration value")
}
