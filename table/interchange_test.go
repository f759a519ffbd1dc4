package table

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/pjpan/imager/pixel"
)

func sampleTable(t *testing.T) *Table {
	t.Helper()
	img := randomArray(t, pixel.Dims{3, 2, 2, 1}, 31)
	tbl, err := Encode(img, Long)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	return tbl
}

func TestArrowRoundTrip(t *testing.T) {
	tbl := sampleTable(t)
	var buf bytes.Buffer
	if err := tbl.WriteIPC(&buf); err != nil {
		t.Fatalf("WriteIPC error: %v", err)
	}
	got, err := ReadIPC(&buf)
	if err != nil {
		t.Fatalf("ReadIPC error: %v", err)
	}
	if !reflect.DeepEqual(tbl, got) {
		t.Errorf("arrow round trip altered table:\nwrote %s\nread  %s", tbl, got)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	tbl := sampleTable(t)
	var buf bytes.Buffer
	if err := tbl.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV error: %v", err)
	}
	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV error: %v", err)
	}
	if !reflect.DeepEqual(tbl, got) {
		t.Errorf("CSV round trip altered table")
	}
}

func TestCSVRejectsJunk(t *testing.T) {
	if _, err := ReadCSV(bytes.NewBufferString("x,value\n1,notanumber\n")); err == nil {
		t.Errorf("expected parse error for non-numeric field")
	}
}
