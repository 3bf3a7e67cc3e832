package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/litescript/ls-planisphere/internal/version"
)

// execute runs the root command with args in an empty home directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfgFile = ""

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if want := "ls-planisphere " + version.Version + "\n"; out != want {
		t.Errorf("version output = %q, want %q", out, want)
	}
}

func TestSummaryCmd_JSON(t *testing.T) {
	out, err := execute(t, "summary", "--json", "--name", "Lausanne",
		"--at", "2020-04-04T12:00:00Z", "--stars", "3")
	if err != nil {
		t.Fatal(err)
	}

	var got struct {
		Observer struct {
			Name string  `json:"name"`
			Lat  float64 `json:"lat"`
		} `json:"observer"`
		Sun struct {
			Name      string `json:"name"`
			Direction string `json:"direction"`
		} `json:"sun"`
		Stars []json.RawMessage `json:"stars"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.Observer.Name != "Lausanne" || got.Observer.Lat != 46.52 {
		t.Errorf("observer = %+v", got.Observer)
	}
	if got.Sun.Name != "Sun" || got.Sun.Direction != "S" {
		t.Errorf("sun = %+v", got.Sun)
	}
	if len(got.Stars) > 3 {
		t.Errorf("got %d stars, want at most 3", len(got.Stars))
	}
}

func TestSummaryCmd_Text(t *testing.T) {
	out, err := execute(t, "summary", "--lat", "-33.87", "--lon", "151.21",
		"--timezone", "Australia/Sydney", "--at", "2020-04-04T12:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Moon:") || !strings.Contains(out, "Sun") {
		t.Errorf("text summary missing bodies:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("text summary to a buffer contains escape codes")
	}
}

func TestSummaryCmd_RejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"latitude", []string{"summary", "--lat", "91"}},
		{"time zone", []string{"summary", "--timezone", "Mars/Olympus"}},
		{"instant", []string{"summary", "--at", "yesterday"}},
		{"schedule", []string{"summary", "--schedule", "every day"}},
		{"schedule with instant", []string{"summary", "--schedule", "*/5 * * * *", "--at", "2020-04-04T12:00:00Z"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestClosestCmd(t *testing.T) {
	// Radius 2 around the centre covers the whole upper hemisphere.
	out, err := execute(t, "closest", "--alt", "90", "--az", "0",
		"--at", "2020-04-04T12:00:00Z", "--max", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, " at (") || !strings.Contains(out, "mag") {
		t.Errorf("closest output = %q", out)
	}

	out, err = execute(t, "closest", "--x", "50", "--y", "50", "--max", "0.001",
		"--at", "2020-04-04T12:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "No object within") {
		t.Errorf("closest far from everything = %q", out)
	}

	if _, err := execute(t, "closest", "--max", "-1"); err == nil {
		t.Error("negative --max accepted")
	}
}
