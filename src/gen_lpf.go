package tactile

/*------------------------------------------------------------------
 *
 * Name:	gen_lpf
 *
 * Purpose:	Regenerate the compiled in interpolation filter table.
 *
 * Description:	Designs the low pass with DesignLowpass and writes it
 *		out as Go source, so the table and the run time
 *		designer can never disagree about the method.
 *
 *			go generate ./src
 *
 *		or by hand for a different plan:
 *
 *			gen_lpf -r 256 -f 200 -a 16000 -L 8 -o lpf_table.go
 *
 *------------------------------------------------------------------*/

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

type LpfTableParams struct {
	Package    string
	Radius     int
	CutoffHz   float64
	AudioRate  float64
	RateFactor int
	Window     WindowType
}

func GenLpfMain() {
	var outputFile = pflag.StringP("output-file", "o", "", "Write Go source here.  Default is stdout.")
	var radius = pflag.IntP("radius", "r", weaverLpfRadius, "Taps each side of center.")
	var cutoff = pflag.Float64P("cutoff", "f", weaverLpfCutoffHz, "Cutoff frequency, Hz.  Half the channel bandwidth.")
	var audioRate = pflag.Float64P("audio-rate", "a", weaverLpfAudioRate, "Audio sample rate, Hz.")
	var rateFactor = pflag.IntP("rate-factor", "L", weaverLpfRateFactor, "Audio samples per tactile frame.")
	var windowName = pflag.StringP("window", "w", "hamming", "Window: truncated, cosine, hamming, blackman, flattop.")
	var packageName = pflag.StringP("package", "p", "tactile", "Package clause of the output.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Generate interpolation filter table.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		pflag.PrintDefaults()
	}

	// !!! PARSE !!!
	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(1)
	}

	var windowType, windowErr = ParseWindowType(*windowName)
	if windowErr != nil {
		logger.Error("Unknown window", "err", windowErr)
		os.Exit(1)
	}

	var params = LpfTableParams{
		Package:    *packageName,
		Radius:     *radius,
		CutoffHz:   *cutoff,
		AudioRate:  *audioRate,
		RateFactor: *rateFactor,
		Window:     windowType,
	}

	var w io.Writer = os.Stdout
	if *outputFile != "" {
		var f, createErr = os.Create(*outputFile)
		if createErr != nil {
			logger.Error("Can't create output", "err", createErr)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	var writeErr = WriteLpfTable(w, params)
	if writeErr != nil {
		logger.Error("Can't generate table", "err", writeErr)
		os.Exit(1)
	}
}

// WriteLpfTable writes the filter described by params as Go source.
func WriteLpfTable(w io.Writer, params LpfTableParams) error {
	if params.RateFactor <= 0 {
		return fmt.Errorf("rate factor %d: %w", params.RateFactor, ErrRateFactor)
	}
	if !(params.AudioRate > 0) {
		return fmt.Errorf("audio rate %g: %w", params.AudioRate, ErrRateFactor)
	}

	var gain = 2 * params.RateFactor
	var filter, designErr = DesignLowpass(params.Window, params.Radius, params.CutoffHz/params.AudioRate, float64(gain))
	if designErr != nil {
		return designErr
	}

	var bw = bufio.NewWriter(w)

	fmt.Fprintf(bw, "// Code generated by gen_lpf; DO NOT EDIT.\n")
	fmt.Fprintf(bw, "\n")
	fmt.Fprintf(bw, "package %s\n", params.Package)
	fmt.Fprintf(bw, "\n")
	fmt.Fprintf(bw, "// Design parameters of weaverLpfTaps.\n")
	fmt.Fprintf(bw, "const (\n")
	fmt.Fprintf(bw, "\tweaverLpfRadius     = %d\n", params.Radius)
	fmt.Fprintf(bw, "\tweaverLpfNumTaps    = 2*weaverLpfRadius + 1\n")
	fmt.Fprintf(bw, "\tweaverLpfCutoffHz   = %g\n", params.CutoffHz)
	fmt.Fprintf(bw, "\tweaverLpfAudioRate  = %g\n", params.AudioRate)
	fmt.Fprintf(bw, "\tweaverLpfRateFactor = %d\n", params.RateFactor)
	fmt.Fprintf(bw, "\tweaverLpfGain       = %d\n", gain)
	fmt.Fprintf(bw, ")\n")
	fmt.Fprintf(bw, "\n")

	var windowName = params.Window.String()
	fmt.Fprintf(bw, "// %s%s-windowed sinc, unity DC gain scaled by weaverLpfGain.\n",
		string(windowName[0]-'a'+'A'), windowName[1:])
	fmt.Fprintf(bw, "var weaverLpfTaps = [weaverLpfNumTaps]float64{\n")

	var taps = filter.Taps()
	for k := 0; k < len(taps); k += 4 {
		fmt.Fprintf(bw, "\t")
		for j := k; j < min(k+4, len(taps)); j++ {
			if j > k {
				fmt.Fprintf(bw, " ")
			}
			fmt.Fprintf(bw, "%+.10e,", taps[j])
		}
		fmt.Fprintf(bw, "\n")
	}

	fmt.Fprintf(bw, "}\n")

	return bw.Flush()
}
