package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/sysdash/internal/model"
	"github.com/Dicklesworthstone/sysdash/internal/sampler"
	"github.com/Dicklesworthstone/sysdash/internal/ui"
)

var cpuCmd = &cobra.Command{
	Use:   "cpu",
	Short: "Print processor facts",
	Long:  `Print the CPU name, core count, average frequency and package temperature.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		src := sampler.NewSource(sampler.NewProbe())
		writeCPU(cmd.OutOrStdout(), src.RefreshCPU())
	},
}

func init() {
	rootCmd.AddCommand(cpuCmd)
}

func writeCPU(w io.Writer, c model.CPUSnapshot) {
	name := c.Name
	if name == "" {
		name = model.NotAvailable
	}
	fmt.Fprintf(w, "Name:        %s\n", name)
	fmt.Fprintf(w, "Cores:       %d\n", c.CoreCount)
	fmt.Fprintf(w, "Frequency:   %d MHz\n", c.Frequency)
	fmt.Fprintf(w, "Temperature: %s\n", ui.FormatTemperature(c.Temperature))
}
