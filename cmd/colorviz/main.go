// Command colorviz exposes the color library on the command line:
// converting values between color spaces, and rendering chromaticity
// diagrams, slider-track gradient strips and hue rings to PNG files.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	colorviz "github.com/JalalJaberi/negarity-color-visualizer"
	"github.com/JalalJaberi/negarity-color-visualizer/internal/render"
)

var (
	flagVerbose bool

	rootCmd = &cobra.Command{
		Use:           "colorviz",
		Short:         "Color space conversion and visualization",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if flagVerbose {
				colorviz.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
)

func main() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(convertCmd(), diagramCmd(), stripCmd(), wheelCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func convertCmd() *cobra.Command {
	var space string

	cmd := &cobra.Command{
		Use:   "convert CHANNELS...",
		Short: "Convert channel values into every supported space",
		Long: `Convert takes the channel values of one color space and prints the
same color in every supported representation, e.g.:

    colorviz convert --space HSL 0 100 50`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			sp, ok := colorviz.SpaceByName(space)
			if !ok {
				return fmt.Errorf("unknown color space %q", space)
			}
			vals, err := parseChannels(sp, args)
			if err != nil {
				return err
			}
			r, g, b, err := toRGB(sp.ID, vals)
			if err != nil {
				return err
			}
			printAll(r, g, b)
			return nil
		},
	}
	cmd.Flags().StringVarP(&space, "space", "s", "RGB", "input color space name")
	return cmd
}

func diagramCmd() *cobra.Command {
	var (
		out       string
		size      int
		luminance float64
		gamut     string
	)

	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Render the CIE 1931 chromaticity diagram to a PNG",
		RunE: func(*cobra.Command, []string) error {
			opts := render.DiagramOptions{
				Width:     size,
				Height:    size,
				Luminance: luminance,
			}
			switch gamut {
			case "rgb":
				opts.Gamut = colorviz.RGBGamutVertices()
			case "cmyk":
				opts.Gamut = colorviz.CMYKGamutVertices()
			case "none":
			default:
				return fmt.Errorf("unknown gamut %q (want rgb, cmyk or none)", gamut)
			}
			return savePNG(out, render.RenderDiagram(opts))
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "diagram.png", "output file")
	cmd.Flags().IntVar(&size, "size", 512, "image size in pixels")
	cmd.Flags().Float64Var(&luminance, "luminance", 100, "CIE Y luminance, 0-100")
	cmd.Flags().StringVar(&gamut, "gamut", "rgb", "gamut outline: rgb, cmyk or none")
	return cmd
}

func stripCmd() *cobra.Command {
	var (
		out     string
		space   string
		channel string
		width   int
		height  int
		current []string
	)

	cmd := &cobra.Command{
		Use:   "strip",
		Short: "Render a dependent channel's slider gradient to a PNG",
		Long: `Strip renders the gradient a slider track shows for one channel,
derived from the current values of the other channels, e.g.:

    colorviz strip --space HSL --channel s --set h=120`,
		RunE: func(*cobra.Command, []string) error {
			sp, ok := colorviz.SpaceByName(space)
			if !ok {
				return fmt.Errorf("unknown color space %q", space)
			}
			vals, err := parseSets(current)
			if err != nil {
				return err
			}
			g := colorviz.DeriveGradient(sp.ID, channel, vals)
			if g == nil {
				return fmt.Errorf("no dependent gradient rule for %s channel %q", space, channel)
			}
			return savePNG(out, render.RenderStrip(g, width, height))
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "strip.png", "output file")
	cmd.Flags().StringVarP(&space, "space", "s", "HSL", "color space name")
	cmd.Flags().StringVarP(&channel, "channel", "c", "s", "channel key")
	cmd.Flags().IntVar(&width, "width", 256, "strip width in pixels")
	cmd.Flags().IntVar(&height, "height", 24, "strip height in pixels")
	cmd.Flags().StringArrayVar(&current, "set", nil, "current channel value, key=value (repeatable)")
	return cmd
}

func wheelCmd() *cobra.Command {
	var (
		out     string
		size    int
		inner   float64
		current []string
	)

	cmd := &cobra.Command{
		Use:   "wheel",
		Short: "Render the LCh hue ring to a PNG",
		RunE: func(*cobra.Command, []string) error {
			vals, err := parseSets(current)
			if err != nil {
				return err
			}
			g := colorviz.DeriveGradient(colorviz.SpaceLCh, "h", vals)
			return savePNG(out, render.RenderWheel(g, size, inner))
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "wheel.png", "output file")
	cmd.Flags().IntVar(&size, "size", 256, "image size in pixels")
	cmd.Flags().Float64Var(&inner, "inner", 0.6, "inner radius as a fraction of the outer")
	cmd.Flags().StringArrayVar(&current, "set", nil, "current channel value, key=value (repeatable)")
	return cmd
}

// parseChannels maps positional arguments onto the space's channels in
// declaration order.
func parseChannels(sp colorviz.Space, args []string) (map[string]float64, error) {
	if len(args) != len(sp.Channels) {
		return nil, fmt.Errorf("%s needs %d values, got %d", sp.Name, len(sp.Channels), len(args))
	}
	vals := make(map[string]float64, len(args))
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s value %q: %w", sp.Channels[i].Key, arg, err)
		}
		vals[sp.Channels[i].Key] = f
	}
	return vals, nil
}

// parseSets parses repeated key=value flags into a value map.
func parseSets(sets []string) (map[string]float64, error) {
	vals := make(map[string]float64, len(sets))
	for _, s := range sets {
		key, val, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("malformed --set %q, want key=value", s)
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("parse --set %q: %w", s, err)
		}
		vals[key] = f
	}
	return vals, nil
}

// toRGB folds any space's channel values down to sRGB.
func toRGB(id colorviz.SpaceID, v map[string]float64) (r, g, b float64, err error) {
	switch id {
	case colorviz.SpaceRGB:
		return v["r"], v["g"], v["b"], nil
	case colorviz.SpaceHSL:
		r, g, b = colorviz.HSLToRGB(v["h"], v["s"], v["l"])
	case colorviz.SpaceHSV:
		r, g, b = colorviz.HSVToRGB(v["h"], v["s"], v["v"])
	case colorviz.SpaceCMYK:
		r, g, b = colorviz.CMYKToRGB(v["c"], v["m"], v["y"], v["k"])
	case colorviz.SpaceLab:
		r, g, b = colorviz.LabToRGB(v["l"], v["a"], v["b"])
	case colorviz.SpaceLCh:
		r, g, b = colorviz.LChToRGB(v["l"], v["c"], v["h"])
	case colorviz.SpaceXYZ:
		r, g, b = colorviz.XYZToRGB(v["x"], v["y"], v["z"])
	case colorviz.SpaceYCbCr:
		r, g, b = colorviz.YCbCrToRGB(v["y"], v["cb"], v["cr"])
	default:
		return 0, 0, 0, fmt.Errorf("unsupported color space id %d", id)
	}
	return r, g, b, nil
}

// printAll prints the color in every supported representation.
func printAll(r, g, b float64) {
	c := colorviz.NewRGB(r, g, b)
	fmt.Printf("hex    %s\n", c.Hex())
	fmt.Printf("RGB    %.0f %.0f %.0f\n", c.R, c.G, c.B)

	h, s, l := colorviz.RGBToHSL(r, g, b)
	fmt.Printf("HSL    %.1f %.1f %.1f\n", h, s, l)

	h, s, v := colorviz.RGBToHSV(r, g, b)
	fmt.Printf("HSV    %.1f %.1f %.1f\n", h, s, v)

	cc, m, y, k := colorviz.RGBToCMYK(r, g, b)
	fmt.Printf("CMYK   %.1f %.1f %.1f %.1f\n", cc, m, y, k)

	x, yy, z := colorviz.RGBToXYZ(r, g, b)
	fmt.Printf("XYZ    %.3f %.3f %.3f\n", x, yy, z)

	cx, cy := colorviz.XYZToXY(x, yy, z)
	fmt.Printf("xy     %.4f %.4f\n", cx, cy)

	ll, a, bb := colorviz.RGBToLab(r, g, b)
	fmt.Printf("Lab    %.2f %.2f %.2f\n", ll, a, bb)

	ll, ch, hh := colorviz.RGBToLCh(r, g, b)
	fmt.Printf("LCh    %.2f %.2f %.2f\n", ll, ch, hh)

	yl, cbb, crr := colorviz.RGBToYCbCr(r, g, b)
	fmt.Printf("YCbCr  %.1f %.1f %.1f\n", yl, cbb, crr)
}

// savePNG writes img to path.
func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
