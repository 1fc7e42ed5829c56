package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"flagquiz/internal/repository"
)

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Validate the country catalog and summarize it",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := repository.NewCountryRepository(catalogPath)
			if err != nil {
				return fmt.Errorf("catalog %s: %w", catalogPath, err)
			}

			countries, err := repo.GetAll(cmd.Context())
			if err != nil {
				return err
			}

			perContinent := make(map[string]int)
			for _, c := range countries {
				perContinent[c.Continent]++
			}

			labels := make([]string, 0, len(perContinent))
			for label := range perContinent {
				labels = append(labels, label)
			}
			sort.Strings(labels)

			fmt.Printf("Catalog OK: %d countries, %d continents\n", len(countries), len(labels))
			for _, label := range labels {
				fmt.Printf("  %-15s %d\n", label, perContinent[label])
			}
			return nil
		},
	}
}
