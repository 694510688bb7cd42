package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Vladislav15-maker/FamilyCourse/internal/auth"
	"github.com/Vladislav15-maker/FamilyCourse/internal/catalog"
	"github.com/Vladislav15-maker/FamilyCourse/internal/progress"
	"github.com/Vladislav15-maker/FamilyCourse/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-student unit scores and grades",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		roster, err := auth.LoadRoster(afero.NewOsFs(), "")
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}

		cat := catalog.Default()
		prog := progress.NewStore(context.Background(), cat, s.Documents())

		for _, u := range roster.Users() {
			if u.Role != auth.RoleStudent {
				continue
			}

			fmt.Printf("%s (%s)\n", u.Name, u.ID)
			fmt.Println(strings.Repeat("─", 56))
			fmt.Printf("%-28s  %8s  %8s  %5s\n", "Unit", "Attempts", "Overall", "Grade")

			for _, unit := range cat.Units() {
				attempts := prog.AttemptsFor(u.ID, unit.ID)
				overall := prog.OverallUnitScore(u.ID, unit.ID)

				gradeStr := "-"
				if g, ok := prog.GradeFor(u.ID, unit.ID); ok {
					gradeStr = fmt.Sprintf("%d", g.Grade)
				}

				fmt.Printf("%-28s  %8d  %7d%%  %5s\n",
					truncate(unit.Name, 28), len(attempts), overall, gradeStr)
			}
			fmt.Println()
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
