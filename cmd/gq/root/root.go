package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"goalquest/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "gq",
	Short:         "GoalQuest — habit and goal tracker with RPG progression",
	Long:          "GoalQuest is a local-first CLI/TUI habit and goal tracker. Completing habits and goals earns XP, gold and achievements; the shop spends the gold.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newHabitCmd(),
		newGoalCmd(),
		newNoteCmd(),
		newDocCmd(),
		newStatusCmd(),
		newShopCmd(),
		newAchievementsCmd(),
		newMotdCmd(),
		newProfileCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
