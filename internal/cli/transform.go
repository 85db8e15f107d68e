package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/infosieve/store"
)

// newTransformCommand builds the `sieve transform` subcommand: push CSV data
// through a saved model, writing residuals and labels.
func (c *CLI) newTransformCommand() *cobra.Command {
	var (
		model    string
		input    string
		residual string
		labels   string
	)
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Transform CSV data through a saved model",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, env, err := store.Load(model)
			if err != nil {
				return err
			}
			x, err := readMatrixFile(input)
			if err != nil {
				return err
			}

			res, labs, err := s.Transform(x)
			if err != nil {
				return err
			}
			if err := writeMatrixFile(residual, res); err != nil {
				return err
			}
			if err := writeMatrixFile(labels, labs); err != nil {
				return err
			}
			log.Info().
				Str("model_id", env.ModelID).
				Int("samples", x.Rows()).
				Int("layers", s.Len()).
				Msg("data transformed")
			return nil
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", "sieve-model.json", "model file written by fit")
	cmd.Flags().StringVarP(&input, "input", "i", "", "input CSV file")
	cmd.Flags().StringVar(&residual, "residual", "residual.csv", "output CSV for the deepest-layer residuals")
	cmd.Flags().StringVar(&labels, "labels", "labels.csv", "output CSV for the per-layer labels")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
