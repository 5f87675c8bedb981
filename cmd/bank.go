package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aureus/cardiosim/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the question bank",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a question bank and summarize its contents",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("bank")
		if len(args) == 1 {
			path = args[0]
		}

		b, err := bank.Load(path)
		if err != nil {
			return err
		}

		fmt.Printf("Bank: %s\n", b.Source)
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%-22s  %5s  %s\n", "Modality", "Count", "Topics")
		fmt.Println(strings.Repeat("─", 60))
		for _, m := range bank.Modalities {
			fmt.Printf("%-22s  %5d  %s\n",
				m.DisplayName(), len(b.List(m)), strings.Join(b.Topics(m), ", "))
		}
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%-22s  %5d\n", "TOTAL", b.Count())

		missing := missingImages(b)
		if len(missing) > 0 {
			fmt.Println()
			fmt.Println("Unreadable images:")
			for _, m := range missing {
				fmt.Println("  " + m)
			}
			return fmt.Errorf("%d image(s) could not be read", len(missing))
		}
		return nil
	},
}

// missingImages lists the image references that cannot be read. The
// embedded bank has no image directory and is skipped.
func missingImages(b *bank.Bank) []string {
	if b.Source == bank.SampleSource {
		return nil
	}
	var out []string
	for _, m := range bank.Modalities {
		for _, q := range b.List(m) {
			for _, name := range []string{q.Image, q.CorrectedImage} {
				if name == "" {
					continue
				}
				if _, _, err := b.ReadImage(name); err != nil && !errors.Is(err, bank.ErrNoImage) {
					out = append(out, fmt.Sprintf("%s: %s", q.ID, name))
				}
			}
		}
	}
	return out
}

func init() {
	bankCmd.AddCommand(bankValidateCmd)
}
