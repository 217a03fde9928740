package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Diogo1912/jobbi/internal/database"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage your preference profile",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current profile",
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := database.GetSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		p := settings.Profile
		fmt.Println(titleStyle.Render("Preference Profile"))
		printPref("Desired Roles", p.DesiredRoles)
		printPref("Preferred Locations", p.PreferredLocations)
		printPref("Remote Preference", p.RemotePreference)
		printPref("Salary Expectation", p.SalaryExpectation)
		printPref("Skills", p.Skills)
		printPref("Experience", p.Experience)
		printPref("Education", p.Education)
		printPref("Industries", p.Industries)
		printPref("Company Size", p.CompanySize)
		printPref("Deal Breakers", p.DealBreakers)
		printPref("Additional Notes", p.AdditionalNotes)

		if len(settings.ScrapeURLs) > 0 {
			fmt.Printf("\n%s\n", labelStyle.Render("Scrape URLs"))
			for _, u := range settings.ScrapeURLs {
				fmt.Printf("  %s\n", valueStyle.Render(u))
			}
		}
	},
}

func printPref(label, value string) {
	if value == "" {
		value = "(not set)"
	}
	fmt.Printf("%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Example: `  jobbi prefs set --roles "Backend Engineer, SRE" --skills "Go, Kubernetes"
  jobbi prefs set --locations "Berlin, Remote" --remote "remote only"
  jobbi prefs set --deal-breakers "crypto, gambling"`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := database.GetSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		p := &settings.Profile
		set := func(flag string, field *string) {
			if cmd.Flags().Changed(flag) {
				*field, _ = cmd.Flags().GetString(flag)
			}
		}
		set("roles", &p.DesiredRoles)
		set("locations", &p.PreferredLocations)
		set("remote", &p.RemotePreference)
		set("salary", &p.SalaryExpectation)
		set("skills", &p.Skills)
		set("experience", &p.Experience)
		set("education", &p.Education)
		set("industries", &p.Industries)
		set("company-size", &p.CompanySize)
		set("deal-breakers", &p.DealBreakers)
		set("notes", &p.AdditionalNotes)

		if err := database.SaveSettings(settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✓ Profile updated")
	},
}

var prefsURLsCmd = &cobra.Command{
	Use:   "urls",
	Short: "Manage career page URLs for scraping",
	Example: `  jobbi prefs urls
  jobbi prefs urls --add https://acme.com/careers
  jobbi prefs urls --remove https://acme.com/careers`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := database.GetSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		add, _ := cmd.Flags().GetString("add")
		remove, _ := cmd.Flags().GetString("remove")

		changed := false
		if add != "" {
			dup := false
			for _, u := range settings.ScrapeURLs {
				if u == add {
					dup = true
					break
				}
			}
			if dup {
				fmt.Println("Already in the list.")
			} else {
				settings.ScrapeURLs = append(settings.ScrapeURLs, add)
				changed = true
			}
		}
		if remove != "" {
			kept := settings.ScrapeURLs[:0]
			for _, u := range settings.ScrapeURLs {
				if u != remove {
					kept = append(kept, u)
				} else {
					changed = true
				}
			}
			settings.ScrapeURLs = kept
		}

		if changed {
			if err := database.SaveSettings(settings); err != nil {
				fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("✓ URL list updated")
		}

		if len(settings.ScrapeURLs) == 0 {
			fmt.Println("No scrape URLs configured.")
			return
		}
		fmt.Println(labelStyle.Render("Scrape URLs"))
		for _, u := range settings.ScrapeURLs {
			fmt.Printf("  %s\n", valueStyle.Render(u))
		}
	},
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsURLsCmd)

	prefsSetCmd.Flags().String("roles", "", "Desired roles")
	prefsSetCmd.Flags().String("locations", "", "Preferred locations")
	prefsSetCmd.Flags().String("remote", "", "Remote preference")
	prefsSetCmd.Flags().String("salary", "", "Salary expectation")
	prefsSetCmd.Flags().String("skills", "", "Skills")
	prefsSetCmd.Flags().String("experience", "", "Experience level")
	prefsSetCmd.Flags().String("education", "", "Education")
	prefsSetCmd.Flags().String("industries", "", "Industries of interest")
	prefsSetCmd.Flags().String("company-size", "", "Company size preference")
	prefsSetCmd.Flags().String("deal-breakers", "", "Deal breakers")
	prefsSetCmd.Flags().String("notes", "", "Additional notes")

	prefsURLsCmd.Flags().String("add", "", "Add a career page URL")
	prefsURLsCmd.Flags().String("remove", "", "Remove a career page URL")
}
