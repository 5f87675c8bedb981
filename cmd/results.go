package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aureus/cardiosim/internal/bank"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Inspect saved session results",
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent session results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		asCSV, _ := cmd.Flags().GetBool("csv")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		results, err := s.ResultRepo().ListResults(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		if asCSV {
			w := csv.NewWriter(os.Stdout)
			_ = w.Write([]string{"timestamp", "session", "name", "document_id", "sex", "country",
				"academic_level", "university", "experience", "formal_training", "clinical_frequency",
				"modality", "correct", "total", "percent"})
			for _, r := range results {
				_ = w.Write([]string{
					r.RecordedAt.Format("2006-01-02 15:04:05"), r.SessionID, r.Name, r.DocumentID,
					r.Sex, r.Country, r.AcademicLevel, r.University, r.Experience, r.FormalTraining,
					r.ClinicalFrequency, r.Modality,
					strconv.Itoa(r.Correct), strconv.Itoa(r.Total), strconv.Itoa(r.Percent),
				})
			}
			w.Flush()
			return w.Error()
		}

		if len(results) == 0 {
			fmt.Println("No results found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-24s  %-20s  %-7s  %s\n",
			"ID", "Timestamp", "Name", "Modality", "Score", "%")
		fmt.Println(strings.Repeat("─", 90))
		for _, r := range results {
			fmt.Printf("%-5d  %-19s  %-24s  %-20s  %-7s  %d\n",
				r.ID,
				r.RecordedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(r.Name, 24),
				bank.Modality(r.Modality).DisplayName(),
				fmt.Sprintf("%d/%d", r.Correct, r.Total),
				r.Percent,
			)
		}
		return nil
	},
}

func init() {
	resultsListCmd.Flags().Int("limit", 20, "Maximum number of results (0 for all)")
	resultsListCmd.Flags().Bool("csv", false, "Write CSV instead of a table")
	resultsCmd.AddCommand(resultsListCmd)
}
