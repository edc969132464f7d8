package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/bbta/pkg/chart"
	"github.com/c9s/bbta/pkg/cmd/cmdutil"
)

func init() {
	ChartCommand.Flags().String("file", "", "bar file or directory of bar files")
	ChartCommand.Flags().String("indicator", "boll", "indicator name, see the indicators command")
	ChartCommand.Flags().String("output", "chart.png", "output png file")
	ChartCommand.Flags().Bool("with-close", true, "plot the close price along with the indicator")
	RootCmd.AddCommand(ChartCommand)
}

var ChartCommand = &cobra.Command{
	Use:   "chart --file=[bars.csv] --indicator=[name] [--output=chart.png]",
	Short: "plot an indicator over a bar file",
	RunE:  drawChart,
}

func drawChart(cmd *cobra.Command, args []string) error {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}

	name, err := cmd.Flags().GetString("indicator")
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	withClose, err := cmd.Flags().GetBool("with-close")
	if err != nil {
		return err
	}

	cfg, err := cmdutil.LoadConfig(viper.GetString("config"))
	if err != nil {
		return err
	}

	interval := viper.GetDuration("interval")
	bars, err := cmdutil.LoadBars(file, viper.GetString("csv-format"), interval)
	if err != nil {
		return err
	}

	outputs, err := Compute(name, cfg, bars)
	if err != nil {
		return err
	}

	canvas := chart.NewCanvas(name, interval)
	times := bars.Times()
	if withClose {
		canvas.Plot("close", times, bars.Close())
	}
	for _, o := range outputs {
		canvas.Plot(o.Name, times, o.Values)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("cannot create on path %s: %w", output, err)
	}
	defer f.Close()

	if err := canvas.RenderPNG(f); err != nil {
		return fmt.Errorf("cannot render %s chart: %w", name, err)
	}

	log.Infof("%s chart written to %s", name, output)
	return nil
}
