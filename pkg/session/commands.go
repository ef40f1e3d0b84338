package session

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/jingkaihe/volform/pkg/sizing"
	"github.com/jingkaihe/volform/pkg/volume"
)

func cmdSelect(_ context.Context, in *Interpreter, args []string) (outcome, error) {
	if len(args) != 1 {
		return outcomeOK, usage("select")
	}
	if err := in.form.SelectVolume(args[0]); err != nil {
		return outcomeOK, err
	}
	fmt.Fprintf(in.out, "selected %s (%s)\n", args[0], in.form.State().Fields[sizing.FieldSizeMethod])
	return outcomeOK, nil
}

func cmdSet(_ context.Context, in *Interpreter, args []string) (outcome, error) {
	if len(args) == 0 {
		return outcomeOK, usage("set")
	}

	patch := sizing.Fields{}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return outcomeOK, usage("set")
		}
		field, err := sizing.ParseField(name)
		if err != nil {
			return outcomeOK, err
		}
		patch[field] = value
	}
	return outcomeOK, in.form.UpdateFields(patch)
}

func cmdMethod(_ context.Context, in *Interpreter, args []string) (outcome, error) {
	if len(args) != 1 {
		return outcomeOK, usage("method")
	}
	p, err := sizing.ParsePolicy(args[0])
	if err != nil {
		return outcomeOK, err
	}
	if err := in.form.UpdateFields(sizing.Fields{sizing.FieldSizeMethod: string(p)}); err != nil {
		return outcomeOK, err
	}
	if p == sizing.Auto {
		fmt.Fprintln(in.out, in.form.State().Volume.AutoSizeExplanation())
	}
	return outcomeOK, nil
}

func cmdErrors(_ context.Context, in *Interpreter, args []string) (outcome, error) {
	if len(args) != 0 {
		return outcomeOK, usage("errors")
	}
	in.printErrors(in.form.State().Errors)
	return outcomeOK, nil
}

func cmdShow(_ context.Context, in *Interpreter, args []string) (outcome, error) {
	if len(args) != 0 {
		return outcomeOK, usage("show")
	}

	st := in.form.State()
	labels := make([]string, 0, 3)
	for _, p := range sizing.Available(st.Volume) {
		labels = append(labels, p.Label())
	}
	fmt.Fprintf(in.out, "volume %s", st.Volume.MountPoint)
	if st.Volume.FSType != "" {
		fmt.Fprintf(in.out, " (%s)", st.Volume.FSType)
	}
	if in.form.Editing() {
		fmt.Fprint(in.out, " [editing]")
	}
	fmt.Fprintf(in.out, "\npolicies: %s\n", strings.Join(labels, ", "))

	for _, f := range sizing.AllFields {
		fmt.Fprintf(in.out, "%s=%s\n", f, shellquote.Join(st.Fields[f]))
	}
	if p, err := st.Policy(); err == nil && p == sizing.Auto {
		fmt.Fprintln(in.out, st.Volume.AutoSizeExplanation())
	}
	in.printErrors(st.Errors)
	return outcomeOK, nil
}

func cmdSearch(_ context.Context, in *Interpreter, args []string) (outcome, error) {
	// Each line is a settled input, so the pending search runs right away.
	in.selector.Search(strings.Join(args, " "))
	in.selector.Flush()

	results := in.selector.Results()
	if len(results) == 0 {
		fmt.Fprintln(in.out, "no matching mount points")
		return outcomeOK, nil
	}
	for _, d := range results {
		fmt.Fprintf(in.out, "%s\t%s\t%s\n", d.MountPoint, orDash(d.FSType), sizing.Infer(d))
	}
	return outcomeOK, nil
}

func cmdSubmit(ctx context.Context, in *Interpreter, args []string) (outcome, error) {
	if len(args) != 0 {
		return outcomeOK, usage("submit")
	}

	res, err := in.form.Submit(ctx, func(d volume.Descriptor) error {
		return volume.Encode(in.out, in.format, d)
	})
	if err != nil {
		return outcomeOK, err
	}
	if !res.Accepted() {
		fmt.Fprintln(in.out, "rejected")
		in.printErrors(res.Errors)
		return outcomeRejected, nil
	}
	in.accepted = append(in.accepted, *res.Volume)
	return outcomeAccepted, nil
}

func cmdHelp(_ context.Context, in *Interpreter, _ []string) (outcome, error) {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		c := commands[name]
		fmt.Fprintf(in.out, "  %-28s %s\n", c.usage, c.help)
	}
	fmt.Fprintf(in.out, "fields: %s\n", joinFields(sizing.AllFields))
	return outcomeOK, nil
}

func cmdQuit(context.Context, *Interpreter, []string) (outcome, error) {
	return outcomeQuit, nil
}

func (in *Interpreter) printErrors(errs sizing.Errors) {
	if len(errs) == 0 {
		fmt.Fprintln(in.out, "no errors")
		return
	}
	for _, f := range slices.Sorted(maps.Keys(errs)) {
		fmt.Fprintf(in.out, "%s: %s\n", f, errs[f])
	}
}

func joinFields(fields []sizing.Field) string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = string(f)
	}
	return strings.Join(out, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
