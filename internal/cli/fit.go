package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/infosieve/sieve"
	"github.com/katalvlaran/infosieve/store"
)

// newFitCommand builds the `sieve fit` subcommand: fit a model on CSV data
// and persist it.
func (c *CLI) newFitCommand() *cobra.Command {
	var (
		input  string
		output string
	)
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a sieve on CSV data and save the model",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(c.config)
			if err != nil {
				return err
			}
			x, err := readMatrixFile(input)
			if err != nil {
				return err
			}

			s := sieve.New(cfg.Options())
			if err := s.Fit(x); err != nil {
				return fmt.Errorf("cli: fit failed: %w", err)
			}
			log.Info().
				Int("layers", s.Len()).
				Str("status", s.Status().String()).
				Float64("tc", s.TC()).
				Float64("lb", s.LB()).
				Float64("ub", s.UB()).
				Msg("sieve fitted")
			for k, tc := range s.TCs() {
				layer := s.Layers()[k]
				log.Info().
					Int("layer", k).
					Float64("tc", tc).
					Float64("lb", layer.LB()).
					Float64("ub", layer.UB()).
					Msg("layer bounds")
			}

			id, err := store.Save(output, s)
			if err != nil {
				return err
			}
			log.Info().Str("model_id", id).Str("path", output).Msg("model saved")
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "input CSV file (rows = samples, columns = variables)")
	cmd.Flags().StringVarP(&output, "output", "o", "sieve-model.json", "output model file")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
