package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/bbta/pkg/cmd/cmdutil"
	"github.com/c9s/bbta/pkg/datasource/csvsource"
	"github.com/c9s/bbta/pkg/style"
)

func init() {
	CalcCmd.Flags().String("file", "", "bar file or directory of bar files")
	CalcCmd.Flags().String("indicator", "rsi", "indicator name, see the indicators command")
	CalcCmd.Flags().Int("tail", 20, "number of trailing rows to print, 0 prints every row")
	CalcCmd.Flags().Bool("json", false, "print the full output as json")
	CalcCmd.Flags().Bool("color", false, "render the table with colors")
	RootCmd.AddCommand(CalcCmd)
	RootCmd.AddCommand(IndicatorsCmd)
}

var CalcCmd = &cobra.Command{
	Use:   "calc --file=[bars.csv] --indicator=[name]",
	Short: "calculate an indicator over a bar file",
	RunE:  calc,
}

var IndicatorsCmd = &cobra.Command{
	Use:   "indicators",
	Short: "list the indicators accepted by calc and chart",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(Indicators(), "\n"))
	},
}

func calc(cmd *cobra.Command, args []string) error {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}

	name, err := cmd.Flags().GetString("indicator")
	if err != nil {
		return err
	}

	tail, err := cmd.Flags().GetInt("tail")
	if err != nil {
		return err
	}

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	colored, err := cmd.Flags().GetBool("color")
	if err != nil {
		return err
	}

	cfg, err := cmdutil.LoadConfig(viper.GetString("config"))
	if err != nil {
		return err
	}

	bars, err := cmdutil.LoadBars(file, viper.GetString("csv-format"), viper.GetDuration("interval"))
	if err != nil {
		return err
	}

	out, err := Compute(name, cfg, bars)
	if err != nil {
		return err
	}

	if asJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	RenderOutputs(cmd.OutOrStdout(), bars, out, tail, colored)
	return nil
}

// RenderOutputs prints the bar time, the close and every output series as a table, limited
// to the last tail rows when tail is positive.
func RenderOutputs(w io.Writer, bars csvsource.Bars, outputs []Output, tail int, colored bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*style.TableStyle(colored))

	header := table.Row{"time", "close"}
	for _, o := range outputs {
		header = append(header, o.Name)
	}
	t.AppendHeader(header)

	start := 0
	if tail > 0 && tail < len(bars) {
		start = len(bars) - tail
	}

	for i := start; i < len(bars); i++ {
		row := table.Row{bars[i].StartTime.Format("2006-01-02 15:04"), fmt.Sprintf("%.2f", bars[i].Close)}
		for _, o := range outputs {
			row = append(row, fmt.Sprintf("%.2f", o.Values[i]))
		}
		t.AppendRow(row)
	}
	t.Render()
}
