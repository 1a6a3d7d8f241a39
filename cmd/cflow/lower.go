package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cflow/internal/arch"
	"cflow/internal/config"
	"cflow/internal/diag"
	"cflow/internal/exprlower"
	"cflow/internal/fixture"
	"cflow/internal/ir"
	"cflow/internal/irprint"
	"cflow/internal/lower"
	"cflow/internal/project"
)

var (
	lowerArch     string
	lowerOut      string
	lowerEmitMIR  bool
	lowerMaxDiags int
)

func init() {
	lowerCmd.Flags().StringVar(&lowerArch, "arch", "x86_64-sysv", "target triple (see internal/arch.Resolve)")
	lowerCmd.Flags().StringVar(&lowerOut, "out", "", "write the lowered module to this path as msgpack instead of printing a dump")
	lowerCmd.Flags().BoolVar(&lowerEmitMIR, "emit-mir", false, "print the IR dump even when --out is set")
	lowerCmd.Flags().IntVar(&lowerMaxDiags, "max-diagnostics", 100, "maximum number of diagnostics to collect; later ones are dropped")
}

var lowerCmd = &cobra.Command{
	Use:   "lower <fixture.msgpack>",
	Short: "Run the lowering core against a serialized AST fixture",
	Args:  cobra.ExactArgs(1),
	RunE:  runLower,
}

func runLower(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening fixture: %w", err)
	}
	defer in.Close()

	fx, err := fixture.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding fixture: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	manifest, _, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading %s: %w", project.ManifestName, err)
	}

	triple := lowerArch
	if manifest != nil && !cmd.Flags().Changed("arch") {
		triple = manifest.Config.Target.Triple
	}
	out := lowerOut
	if manifest != nil && !cmd.Flags().Changed("out") {
		out = config.ResolveOutputPath(manifest)
	}

	descriptor, err := arch.Resolve(triple, fx.Types)
	if err != nil {
		return err
	}

	diags := diag.NewBag(lowerMaxDiags)
	values := exprlower.New(descriptor)

	m, err := lower.LowerModule(fx.Entry, fx.AST, fx.Symbols, descriptor, values, diags)
	printDiagnostics(cmd, diags)
	if err != nil {
		return err
	}

	if out != "" {
		if err := writeModule(out, m); err != nil {
			return err
		}
	}
	if out == "" || lowerEmitMIR {
		irprint.Dump(cmd.OutOrStdout(), m, irprint.Options{Color: colorEnabled(cmd)})
	}
	return nil
}

func writeModule(path string, m *ir.Module) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()
	return fixture.EncodeModule(out, m)
}

func printDiagnostics(cmd *cobra.Command, diags *diag.Bag) {
	errColor := color.New(color.FgRed, color.Bold)
	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !colorEnabled(cmd)

	for _, d := range diags.Items() {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", errColor.Sprint(d.Severity.String()), d.Message)
	}
}

func colorEnabled(cmd *cobra.Command) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
