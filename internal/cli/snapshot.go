package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/sysdash/internal/errors"
	"github.com/Dicklesworthstone/sysdash/internal/model"
	"github.com/Dicklesworthstone/sysdash/internal/sampler"
)

var snapshotJSON bool

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one overview sample",
	Long: `Take a single overview sample (CPU, system, memory, disks, network) and
print it as YAML, or JSON with --json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src := sampler.NewSource(sampler.NewProbe())
		return writeSnapshot(cmd.OutOrStdout(), src.RefreshOverview(), snapshotJSON)
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().BoolVar(&snapshotJSON, "json", false, "Print JSON instead of YAML")
}

func writeSnapshot(w io.Writer, snap model.OverviewSnapshot, asJSON bool) error {
	encode := model.EncodeYAML
	if asJSON {
		encode = model.Encode
	}
	out, err := encode(snap)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrSampler,
			"Could not encode the snapshot", "")
	}
	if asJSON {
		out = append(out, '\n')
	}
	_, err = w.Write(out)
	return err
}
