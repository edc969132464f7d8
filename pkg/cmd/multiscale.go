package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/bbta/pkg/cmd/cmdutil"
)

func init() {
	MultiscaleCmd.Flags().String("x", "", "bar file of the first series")
	MultiscaleCmd.Flags().String("y", "", "bar file of the second series")
	MultiscaleCmd.Flags().Int("timescale", 0, "number of coarse-graining scales, overrides the config")
	MultiscaleCmd.Flags().Bool("json", false, "print the result as json")
	RootCmd.AddCommand(MultiscaleCmd)
}

var MultiscaleCmd = &cobra.Command{
	Use:   "multiscale --x=[a.csv] --y=[b.csv]",
	Short: "correlate the closes of two bar files with horizontal visibility graphs",
	RunE:  multiscale,
}

func multiscale(cmd *cobra.Command, args []string) error {
	xFile, err := cmd.Flags().GetString("x")
	if err != nil {
		return err
	}

	yFile, err := cmd.Flags().GetString("y")
	if err != nil {
		return err
	}

	timescale, err := cmd.Flags().GetInt("timescale")
	if err != nil {
		return err
	}

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	cfg, err := cmdutil.LoadConfig(viper.GetString("config"))
	if err != nil {
		return err
	}

	if timescale > 0 {
		cfg.Multiscale.Timescale = timescale
	}

	format, interval := viper.GetString("csv-format"), viper.GetDuration("interval")
	xBars, err := cmdutil.LoadBars(xFile, format, interval)
	if err != nil {
		return err
	}

	yBars, err := cmdutil.LoadBars(yFile, format, interval)
	if err != nil {
		return err
	}

	result, err := cfg.Multiscale.Run(xBars.Close(), yBars.Close())
	if err != nil {
		return err
	}

	if asJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
	}

	result.Render(cmd.OutOrStdout())
	return nil
}
