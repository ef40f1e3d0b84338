package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jingkaihe/volform/pkg/form"
	"github.com/jingkaihe/volform/pkg/sizing"
	"github.com/jingkaihe/volform/pkg/volume"
)

var editCmd = &cobra.Command{
	Use:   "edit [flags]",
	Short: "Apply size settings to a volume and print the result",
	Long: `Apply size settings to a volume and print the resulting descriptor.

Only the flags given are changed; every other field keeps the value derived
from the volume. An empty unit means GiB, and an empty maximum unit falls
back to the minimum unit. Leaving --max-size empty with --method range makes
the maximum unlimited.

When validation fails the errors are printed to stderr and the command exits
with status 2.`,
	Example: `  volform edit -f templates.yaml --mount-point /home --method range --min-size 5 --max-size 20
  volform edit -f volume.yaml --method manual --size 512 --size-unit MiB -o yaml
  volform edit -f templates.yaml --mount-point / --method auto`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

// editFieldFlags maps edit flags to the form fields they set.
var editFieldFlags = []struct {
	flag  string
	field sizing.Field
	usage string
}{
	{"method", sizing.FieldSizeMethod, "Sizing policy: auto, manual or range"},
	{"size", sizing.FieldSize, "Exact size for --method manual"},
	{"size-unit", sizing.FieldSizeUnit, "Unit of --size"},
	{"min-size", sizing.FieldMinSize, "Minimum size for --method range"},
	{"min-size-unit", sizing.FieldMinSizeUnit, "Unit of --min-size"},
	{"max-size", sizing.FieldMaxSize, "Maximum size for --method range (empty for unlimited)"},
	{"max-size-unit", sizing.FieldMaxSizeUnit, "Unit of --max-size"},
}

func init() {
	editCmd.Flags().String("mount-point", "", "Template to start from (default: the first one)")
	for _, f := range editFieldFlags {
		editCmd.Flags().String(f.flag, "", f.usage)
	}
	editCmd.Flags().Duration("timeout", 0, "Abandon the edit after this long (0 means no limit)")

	viper.BindPFlag("edit.timeout", editCmd.Flags().Lookup("timeout"))

	rootCmd.AddCommand(editCmd)
}

type editRequest struct {
	MountPoint string
	Patch      sizing.Fields
	Format     volume.Format
}

func runEdit(cmd *cobra.Command, args []string) error {
	mountPoint, _ := cmd.Flags().GetString("mount-point")
	timeout := viper.GetDuration("edit.timeout")

	patch := sizing.Fields{}
	for _, f := range editFieldFlags {
		if cmd.Flags().Changed(f.flag) {
			v, _ := cmd.Flags().GetString(f.flag)
			patch[f.field] = v
		}
	}

	format, err := outputFormat()
	if err != nil {
		return err
	}

	emitter, err := openEmitter(viper.GetString("events.log"), "edit")
	if err != nil {
		return err
	}
	defer emitter.Close()

	f, err := loadForm(viper.GetString("templates"), form.WithEmitter(emitter))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := submitContext(ctx, timeout)
	defer cancel()

	errs, err := editVolume(ctx, f, editRequest{MountPoint: mountPoint, Patch: patch, Format: format}, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		writeErrors(cmd.ErrOrStderr(), errs)
		return &exitCodeError{code: 2}
	}
	return nil
}

// editVolume selects, patches and submits f, writing the accepted
// descriptor to out. Validation errors are returned as data.
func editVolume(ctx context.Context, f *form.Form, req editRequest, out io.Writer) (sizing.Errors, error) {
	if req.MountPoint != "" {
		if err := f.SelectVolume(req.MountPoint); err != nil {
			return nil, err
		}
	}
	if len(req.Patch) > 0 {
		if err := f.UpdateFields(req.Patch); err != nil {
			return nil, err
		}
	}

	res, err := f.Submit(ctx, func(d volume.Descriptor) error {
		return volume.Encode(out, req.Format, d)
	})
	if err != nil {
		return nil, err
	}
	return res.Errors, nil
}

func writeErrors(w io.Writer, errs sizing.Errors) {
	for _, field := range slices.Sorted(maps.Keys(errs)) {
		fmt.Fprintf(w, "%s: %s\n", field, errs[field])
	}
}
