// internal/cli/listing.go
package glossgen

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"glossgen/internal/glossary"
	"glossgen/internal/render"
)

var (
	listNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	listDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the supported audience expertise levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, level := range glossary.Levels() {
			profile, err := glossary.ProfileFor(level)
			if err != nil {
				return err
			}
			fmt.Printf("%s  %s\n",
				listNameStyle.Width(8).Render(string(level)),
				listDescStyle.Render(profile.Audience))
		}
		return nil
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported output formats",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, format := range render.Formats() {
			fmt.Println(listNameStyle.Render(string(format)))
		}
	},
}

func init() {
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(formatsCmd)
}
