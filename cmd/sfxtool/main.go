// sfxtool is a CLI utility for inspecting and recolouring Battalion Wars
// particle effect files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Faultbox/sfx-editor/internal/editor"
	"github.com/Faultbox/sfx-editor/pkg/sfx"
)

// errUsage marks a bad invocation; the usage line has already been printed.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	command := args[0]
	args = args[1:]

	var err error
	switch command {
	case "show", "info":
		err = cmdShow(args, stdout, stderr)
	case "list", "ls":
		err = cmdList(args, stdout, stderr)
	case "set":
		err = cmdSet(args, stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return 1
	}

	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `sfxtool - Battalion Wars particle colour utility

Usage:
  sfxtool <command> [options]

Commands:
  show <file.txt>                    Show colour values and Start preview
  list <file.txt>                    List every colour field occurrence
  set [options] <file.txt>           Write channel values to every keyframe

Set options:
  -r, -g, -b, -a <0-1>               Channel values (default: file Start values)
  -hex <#RRGGBB>                     Red, green and blue from a hex colour
  -preset <name>                     Red, green and blue from a preset
  -n                                 Dry run, print the result instead of writing

Examples:
  sfxtool show flame.txt
  sfxtool list flame.txt
  sfxtool set -hex "#B24C7F" -a 0.8 flame.txt
  sfxtool set -preset Blue -n flame.txt`)
}

func cmdShow(args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		fmt.Fprintln(stderr, "Usage: sfxtool show <file.txt>")
		return errUsage
	}

	doc, err := sfx.LoadFile(args[0])
	if err != nil {
		return err
	}
	values := sfx.Extract(doc)

	fmt.Fprintf(stdout, "File:    %s\n", args[0])
	fmt.Fprintf(stdout, "Fields:  %d of %d\n", len(values), sfx.NumChannels*sfx.NumKeyframes)
	fmt.Fprintln(stdout)

	fmt.Fprintf(stdout, "%-8s", "")
	for _, kf := range sfx.Keyframes {
		fmt.Fprintf(stdout, " %-10s", kf)
	}
	fmt.Fprintln(stdout)
	for _, ch := range sfx.Channels {
		fmt.Fprintf(stdout, "%-8s", ch)
		for _, kf := range sfx.Keyframes {
			fmt.Fprintf(stdout, " %-10s", values.FormatLookup(kf, ch))
		}
		fmt.Fprintln(stdout)
	}

	fmt.Fprintln(stdout)
	start := values.StartColor(editor.DefaultColor)
	fmt.Fprintf(stdout, "Preview: %s (alpha %s)\n", editor.Hex(start), sfx.FormatDisplay(start[sfx.Alpha]))
	return nil
}

func cmdList(args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		fmt.Fprintln(stderr, "Usage: sfxtool list <file.txt>")
		return errUsage
	}

	doc, err := sfx.LoadFile(args[0])
	if err != nil {
		return err
	}

	occs := sfx.Find(doc)
	for _, o := range occs {
		fmt.Fprintf(stdout, "%d:%d\t%-16s %s\n", o.Line, o.Start, o.Key, doc[o.Start:o.End])
	}
	fmt.Fprintf(stdout, "\n%d occurrences\n", len(occs))
	return nil
}

func cmdSet(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	fs.SetOutput(stderr)
	red := fs.Float64("r", 0, "Red value (0-1)")
	green := fs.Float64("g", 0, "Green value (0-1)")
	blue := fs.Float64("b", 0, "Blue value (0-1)")
	alpha := fs.Float64("a", 0, "Alpha value (0-1)")
	hex := fs.String("hex", "", "RGB as #RRGGBB")
	preset := fs.String("preset", "", "Preset name")
	dryRun := fs.Bool("n", false, "Print the result instead of writing")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "Usage: sfxtool set [options] <file.txt>")
		return errUsage
	}
	path := fs.Arg(0)

	doc, err := sfx.LoadFile(path)
	if err != nil {
		return err
	}
	if doc == "" {
		return editor.ErrEmptyDocument
	}

	channels := editor.NewChannels(sfx.Extract(doc).StartColor(editor.DefaultColor))

	// Presets and hex apply first so explicit channel flags win.
	if *preset != "" {
		p, ok := editor.FindPreset(editor.DefaultPresets, *preset)
		if !ok {
			return fmt.Errorf("unknown preset %q (have %s)", *preset, presetNames())
		}
		p.ApplyTo(channels)
	}
	if *hex != "" {
		r, g, b, err := editor.ParseHex(*hex)
		if err != nil {
			return err
		}
		channels.SetRGB(r, g, b)
	}

	explicit := map[string]sfx.Channel{"r": sfx.Red, "g": sfx.Green, "b": sfx.Blue, "a": sfx.Alpha}
	values := map[string]*float64{"r": red, "g": green, "b": blue, "a": alpha}
	fs.Visit(func(f *flag.Flag) {
		if ch, ok := explicit[f.Name]; ok {
			channels.Set(ch, *values[f.Name])
		}
	})

	updated := sfx.Write(doc, channels.Color())

	if *dryRun {
		_, err := io.WriteString(stdout, updated)
		return err
	}

	if err := sfx.SaveFile(path, updated); err != nil {
		return err
	}

	col := channels.Color()
	fmt.Fprintf(stdout, "Wrote %s: %s alpha %s (%d occurrences)\n",
		path, editor.Hex(col), sfx.FormatDisplay(col[sfx.Alpha]), len(sfx.Find(updated)))
	return nil
}

func presetNames() string {
	names := make([]string, 0, len(editor.DefaultPresets))
	for _, p := range editor.DefaultPresets {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
