package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/infosieve/store"
)

// newPredictCommand builds the `sieve predict` subcommand: reconstruct every
// variable from a label matrix alone.
func (c *CLI) newPredictCommand() *cobra.Command {
	var (
		model  string
		labels string
		output string
	)
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Reconstruct variables from labels through a saved model",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, env, err := store.Load(model)
			if err != nil {
				return err
			}
			y, err := readMatrixFile(labels)
			if err != nil {
				return err
			}

			preds, err := s.Predict(y)
			if err != nil {
				return err
			}
			if err := writeMatrixFile(output, preds); err != nil {
				return err
			}
			log.Info().
				Str("model_id", env.ModelID).
				Int("samples", y.Rows()).
				Msg("variables predicted")
			return nil
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", "sieve-model.json", "model file written by fit")
	cmd.Flags().StringVarP(&labels, "labels", "l", "", "label CSV file (one column per layer)")
	cmd.Flags().StringVarP(&output, "output", "o", "predictions.csv", "output CSV for the reconstructions")
	_ = cmd.MarkFlagRequired("labels")
	return cmd
}
