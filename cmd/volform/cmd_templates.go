package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jingkaihe/volform/pkg/selector"
	"github.com/jingkaihe/volform/pkg/size"
	"github.com/jingkaihe/volform/pkg/sizing"
	"github.com/jingkaihe/volform/pkg/volume"
)

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Aliases: []string{"ls"},
	Short:   "List the volumes that can be edited",
	Args:    cobra.NoArgs,
	RunE:    runTemplates,
}

func init() {
	templatesCmd.Flags().String("search", "", "Only show volumes whose mount point or file system matches")

	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	term, _ := cmd.Flags().GetString("search")

	f, err := loadForm(viper.GetString("templates"))
	if err != nil {
		return err
	}

	vols := selector.Filter(f.Volumes(), term, volume.Descriptor.SearchKeys)
	return writeVolumeTable(cmd.OutOrStdout(), vols)
}

func writeVolumeTable(out io.Writer, vols []volume.Descriptor) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MOUNT POINT\tFS TYPE\tPOLICY\tMIN\tMAX")
	for _, v := range vols {
		fsType := v.FSType
		if fsType == "" {
			fsType = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", v.MountPoint, fsType, sizing.Infer(v).Label(), humanSize(v.MinSize), humanSize(v.MaxSize))
	}
	return w.Flush()
}

func humanSize(s *size.Size) string {
	if s == nil {
		return "-"
	}
	return s.Human()
}
