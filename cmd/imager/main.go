// Command imager converts between the interchange forms of a canonical
// 4-axis pixel array: long/wide CSV tables, Arrow IPC streams, PNG
// rasters, and a compressed binary pack format.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/pjpan/imager/pixel"
	"github.com/pjpan/imager/raster"
	"github.com/pjpan/imager/table"
)

var showHelp bool
var verbose bool

const helpMessage = `
imager converts pixel arrays between tabular, raster, and packed forms.

Usage: imager [options] <command> ...

      -verbose    (flag)    Run in verbose mode, printing advisories.
  -h, -help       (flag)    Show help message

Commands:

  help
  about
  info   <in.csv>                  Print dimensions and value range.
  raster <in.csv> <out.png>        Colour-map the first depth frame.
  export <in.csv> <out.arrow>      Write the long table as Arrow IPC.
  pack   <in.csv> <out.px>         Serialize with compression+checksum.
  unpack <in.px>  <out.csv>        Expand a pack back to a long table.

Settings (any command, "key=value" format):

  config=<file.toml>   TOML config (logging, conversion defaults)
  value=<name>         Value column name (default "value")
  rescale=false        Disable global min-max rescale before colours
  compression=<name>   Pack compression: none, snappy, gzip
  x=, y=, z=, c=       Explicit axis sizes for decoding
`

func init() {
	flag.BoolVar(&showHelp, "help", false, "")
	flag.BoolVar(&showHelp, "h", false, "")
	flag.BoolVar(&verbose, "verbose", false, "")
}

func main() {
	flag.Usage = func() {
		fmt.Print(helpMessage)
	}
	flag.Parse()

	if verbose {
		pixel.SetLogMode(pixel.DebugMode)
	}

	cmd := Command(flag.Args())
	if showHelp || cmd.Name() == "" || cmd.Name() == "help" {
		fmt.Print(helpMessage)
		return
	}

	configFile, _ := cmd.Parameter(KeyConfigFile)
	tc, err := loadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	tc.Logging.SetLogger()
	applySettings(cmd, &tc)

	if err := run(cmd, tc); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// applySettings lets command-line "key=value" settings override config
// file defaults.
func applySettings(cmd Command, tc *tomlConfig) {
	if v, found := cmd.Parameter(KeyValueColumn); found {
		tc.Convert.ValueColumn = v
	}
	if v, found := cmd.Parameter(KeyRescale); found {
		if rescale, err := strconv.ParseBool(v); err == nil {
			tc.Convert.NoRescale = !rescale
		}
	}
	if v, found := cmd.Parameter(KeyCompression); found {
		tc.Convert.Compression = v
	}
}

func run(cmd Command, tc tomlConfig) error {
	switch cmd.Name() {
	case "about":
		fmt.Println("imager: pixel array conversion tool")
		return nil
	case "info":
		return runInfo(cmd, tc)
	case "raster":
		return runRaster(cmd, tc)
	case "export":
		return runExport(cmd, tc)
	case "pack":
		return runPack(cmd, tc)
	case "unpack":
		return runUnpack(cmd, tc)
	default:
		return fmt.Errorf("unknown command %q; use 'imager help'", cmd.Name())
	}
}

// decodeCSVFile reads a long-form CSV table and decodes it into a pixel
// array, using any explicit axis sizes from the command line.
func decodeCSVFile(cmd Command, tc tomlConfig, filename string) (*pixel.PixelArray, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tbl, err := table.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v", filename, err)
	}
	spec, err := cmd.AxisSpec()
	if err != nil {
		return nil, err
	}
	var dims *pixel.Dims
	if spec.Any() {
		d := spec.Dims()
		dims = &d
	}
	img, advisories, err := table.Decode(tbl, tc.Convert.ValueColumn, dims)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %v", filename, err)
	}
	for _, a := range advisories {
		pixel.Infof("%s: %s\n", filename, a)
	}
	return img, nil
}

func runInfo(cmd Command, tc tomlConfig) error {
	var in string
	cmd.FileArgs(&in)
	if in == "" {
		return fmt.Errorf("info requires an input file")
	}
	img, err := decodeCSVFile(cmd, tc, in)
	if err != nil {
		return err
	}
	min, max := img.MinMax()
	fmt.Printf("%s: dims %s, %d voxels, values [%g, %g]\n",
		in, img.Dims(), img.Dims().NumVoxels(), min, max)
	return nil
}

func runRaster(cmd Command, tc tomlConfig) error {
	var in, out string
	cmd.FileArgs(&in, &out)
	if in == "" || out == "" {
		return fmt.Errorf("raster requires input and output files")
	}
	img, err := decodeCSVFile(cmd, tc, in)
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := raster.EncodePNG(f, img, raster.Options{NoRescale: tc.Convert.NoRescale}); err != nil {
		return fmt.Errorf("rasterizing %s: %v", in, err)
	}
	pixel.Infof("Wrote PNG %s from %s (%s)\n", out, in, img.Dims())
	return nil
}

func runExport(cmd Command, tc tomlConfig) error {
	var in, out string
	cmd.FileArgs(&in, &out)
	if in == "" || out == "" {
		return fmt.Errorf("export requires input and output files")
	}
	img, err := decodeCSVFile(cmd, tc, in)
	if err != nil {
		return err
	}
	tbl, err := table.Encode(img, table.Long)
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := tbl.WriteIPC(f); err != nil {
		return fmt.Errorf("writing Arrow stream %s: %v", out, err)
	}
	pixel.Infof("Exported %d rows to Arrow stream %s\n", tbl.NumRows(), out)
	return nil
}

func runPack(cmd Command, tc tomlConfig) error {
	var in, out string
	cmd.FileArgs(&in, &out)
	if in == "" || out == "" {
		return fmt.Errorf("pack requires input and output files")
	}
	img, err := decodeCSVFile(cmd, tc, in)
	if err != nil {
		return err
	}
	compress, err := tc.compression()
	if err != nil {
		return err
	}
	b, err := img.Serialize(compress, pixel.CRC32)
	if err != nil {
		return fmt.Errorf("serializing %s: %v", in, err)
	}
	if err := os.WriteFile(out, b, 0644); err != nil {
		return err
	}
	raw := uint64(img.Dims().NumVoxels() * 8)
	pixel.Infof("Packed %s (%s raw) into %s (%s, %s)\n",
		in, humanize.Bytes(raw), out, humanize.Bytes(uint64(len(b))), compress)
	return nil
}

func runUnpack(cmd Command, tc tomlConfig) error {
	var in, out string
	cmd.FileArgs(&in, &out)
	if in == "" || out == "" {
		return fmt.Errorf("unpack requires input and output files")
	}
	b, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	var img pixel.PixelArray
	if err := img.Deserialize(b); err != nil {
		return fmt.Errorf("deserializing %s: %v", in, err)
	}
	tbl, err := table.Encode(&img, table.Long)
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := tbl.WriteCSV(f); err != nil {
		return fmt.Errorf("writing %s: %v", out, err)
	}
	pixel.Infof("Unpacked %s (%s) to %d CSV rows in %s\n",
		in, humanize.Bytes(uint64(len(b))), tbl.NumRows(), out)
	return nil
}
