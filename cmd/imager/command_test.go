package main

import (
	"testing"

	"github.com/pjpan/imager/pixel"
)

func TestCommandParsing(t *testing.T) {
	cmd := Command{"raster", "in.csv", "value=intensity", "out.png", "rescale=false"}
	if cmd.Name() != "raster" {
		t.Errorf("Name() = %q", cmd.Name())
	}
	v, found := cmd.Parameter(KeyValueColumn)
	if !found || v != "intensity" {
		t.Errorf("Parameter(value) = (%q, %v)", v, found)
	}
	var in, out string
	overflow := cmd.FileArgs(&in, &out)
	if in != "in.csv" || out != "out.png" {
		t.Errorf("FileArgs = (%q, %q)", in, out)
	}
	if len(overflow) != 0 {
		t.Errorf("unexpected overflow %v", overflow)
	}
}

func TestCommandAxisSpec(t *testing.T) {
	cmd := Command{"info", "in.csv", "x=10", "c=3"}
	spec, err := cmd.AxisSpec()
	if err != nil {
		t.Fatalf("AxisSpec error: %v", err)
	}
	if !spec.X.Set || spec.X.Value != 10 || !spec.C.Set || spec.C.Value != 3 {
		t.Errorf("AxisSpec = %+v", spec)
	}
	if spec.Y.Set || spec.Z.Set {
		t.Errorf("unset axes should stay unset: %+v", spec)
	}
	if spec.Dims() != (pixel.Dims{10, 1, 1, 3}) {
		t.Errorf("Dims() = %s", spec.Dims())
	}

	bad := Command{"info", "in.csv", "x=ten"}
	if _, err := bad.AxisSpec(); err == nil {
		t.Errorf("expected parse error for x=ten")
	}
}

func TestApplySettings(t *testing.T) {
	tc := defaultConfig()
	cmd := Command{"pack", "in.csv", "out.px", "compression=gzip", "rescale=false"}
	applySettings(cmd, &tc)
	if tc.Convert.Compression != "gzip" {
		t.Errorf("compression = %q", tc.Convert.Compression)
	}
	if !tc.Convert.NoRescale {
		t.Errorf("rescale=false should set NoRescale")
	}
	if _, err := tc.compression(); err != nil {
		t.Errorf("compression() error: %v", err)
	}
	tc.Convert.Compression = "lzma"
	if _, err := tc.compression(); err == nil {
		t.Errorf("expected error for unknown compression")
	}
}
