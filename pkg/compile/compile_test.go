package compile

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/captainFoxtrot/unami-csv/pkg/config"
	"github.com/captainFoxtrot/unami-csv/pkg/lines"
)

const (
	codeshareLine = "UAN069/070 ABCD Not a real airport to WXYZ Also not a real airport with Air Seattle codeshare"
	plainLine     = "UAN000/001 KDEN Denver to KBOI Boise"
)

func lfConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.LineEnding = config.LineEndingLF
	return cfg
}

func runString(t *testing.T, cfg *config.Config, text string) *Result {
	t.Helper()
	res, err := New(cfg).Run(context.Background(), lines.FromString(text))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return res
}

func csvString(t *testing.T, cfg *config.Config, res *Result) string {
	t.Helper()
	out, err := res.CSV(cfg.UseCRLF())
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}
	return string(out)
}

func TestRun_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		noHeader     bool
		noTrailComma bool
		want         string
		wantFailures []string
	}{
		{
			name:  "codeshare comment",
			input: codeshareLine + "\n",
			want:  "csgn,csgn_out,csgn_ret,dep,arr,comment\nUAN,069,070,ABCD,WXYZ,Air Seattle codeshare\n",
		},
		{
			name:  "trailing comma",
			input: plainLine + "\n",
			want:  "csgn,csgn_out,csgn_ret,dep,arr,comment\nUAN,000,001,KDEN,KBOI,\n",
		},
		{
			name:         "no trailing comma",
			input:        plainLine + "\n",
			noTrailComma: true,
			want:         "csgn,csgn_out,csgn_ret,dep,arr,comment\nUAN,000,001,KDEN,KBOI\n",
		},
		{
			name:         "garbage skipped",
			input:        "garbage text\n" + plainLine + "\n",
			want:         "csgn,csgn_out,csgn_ret,dep,arr,comment\nUAN,000,001,KDEN,KBOI,\n",
			wantFailures: []string{"garbage text"},
		},
		{
			name:     "no header",
			input:    plainLine + "\n",
			noHeader: true,
			want:     "UAN,000,001,KDEN,KBOI,\n",
		},
		{
			name:  "mixed line endings",
			input: codeshareLine + "\r\n" + plainLine + "\n" + plainLine + "\r\n",
			want: "csgn,csgn_out,csgn_ret,dep,arr,comment\n" +
				"UAN,069,070,ABCD,WXYZ,Air Seattle codeshare\n" +
				"UAN,000,001,KDEN,KBOI,\n" +
				"UAN,000,001,KDEN,KBOI,\n",
		},
		{
			name:     "empty input",
			input:    "",
			noHeader: true,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := lfConfig()
			cfg.SuppressHeader = tt.noHeader
			cfg.SuppressTrailingComma = tt.noTrailComma

			res := runString(t, cfg, tt.input)
			if got := csvString(t, cfg, res); got != tt.want {
				t.Errorf("CSV() = %q, want %q", got, tt.want)
			}

			failed := res.FailedLines()
			if strings.Join(failed, "|") != strings.Join(tt.wantFailures, "|") {
				t.Errorf("FailedLines() = %q, want %q", failed, tt.wantFailures)
			}
			if res.HasFailures() != (len(tt.wantFailures) > 0) {
				t.Errorf("HasFailures() = %v", res.HasFailures())
			}
		})
	}
}

func TestRun_PreservesOrder(t *testing.T) {
	input := strings.Join([]string{
		"BBB200/201 KAAA x to KBBB",
		"bad one",
		"AAA100/101 KCCC x to KDDD",
		"bad two",
		"CCC300/301 KEEE x to KFFF",
	}, "\n")

	cfg := lfConfig()
	cfg.SuppressHeader = true
	res := runString(t, cfg, input)

	want := "BBB,200,201,KAAA,KBBB,\nAAA,100,101,KCCC,KDDD,\nCCC,300,301,KEEE,KFFF,\n"
	if got := csvString(t, cfg, res); got != want {
		t.Errorf("CSV() = %q, want %q", got, want)
	}

	if len(res.Failures) != 2 {
		t.Fatalf("Failures = %d, want 2", len(res.Failures))
	}
	if res.Failures[0].LineNum != 2 || res.Failures[1].LineNum != 4 {
		t.Errorf("failure line numbers = %d, %d, want 2, 4", res.Failures[0].LineNum, res.Failures[1].LineNum)
	}
	if res.LinesRead != 5 {
		t.Errorf("LinesRead = %d, want 5", res.LinesRead)
	}
}

func TestRun_DuplicatesKept(t *testing.T) {
	cfg := lfConfig()
	cfg.SuppressHeader = true
	res := runString(t, cfg, plainLine+"\n"+plainLine+"\n")

	if len(res.Rows) != 2 {
		t.Errorf("Rows = %d, want 2 (no deduplication)", len(res.Rows))
	}
}

func TestRun_BlankLines(t *testing.T) {
	input := plainLine + "\n\n   \n" + plainLine + "\n"

	cfg := lfConfig()
	res := runString(t, cfg, input)
	if len(res.Failures) != 2 {
		t.Errorf("Failures = %d, want 2 blank lines reported", len(res.Failures))
	}

	cfg.SkipBlankLines = true
	res = runString(t, cfg, input)
	if len(res.Failures) != 0 {
		t.Errorf("Failures = %d, want 0 with skip_blank_lines", len(res.Failures))
	}
	if res.LinesSkipped != 2 {
		t.Errorf("LinesSkipped = %d, want 2", res.LinesSkipped)
	}
	if len(res.Rows) != 2 {
		t.Errorf("Rows = %d, want 2", len(res.Rows))
	}
}

func TestRun_CustomHeaderAndSeparator(t *testing.T) {
	cfg := lfConfig()
	cfg.Header = []string{"a", "b", "c", "d", "e", "f"}
	cfg.CommentSeparator = " via "

	res := runString(t, cfg, "UAN100/200 KDEN Denver to KBOI Boise via SkyWest\n")
	want := "a,b,c,d,e,f\nUAN,100,200,KDEN,KBOI,SkyWest\n"
	if got := csvString(t, cfg, res); got != want {
		t.Errorf("CSV() = %q, want %q", got, want)
	}
}

func TestRun_CRLFOutput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LineEnding = config.LineEndingCRLF

	res := runString(t, cfg, plainLine)
	want := "csgn,csgn_out,csgn_ret,dep,arr,comment\r\nUAN,000,001,KDEN,KBOI,\r\n"
	if got := csvString(t, cfg, res); got != want {
		t.Errorf("CSV() = %q, want %q", got, want)
	}
}

func TestRun_Idempotent(t *testing.T) {
	input := codeshareLine + "\r\ngarbage\n" + plainLine + "\n"
	cfg := lfConfig()
	c := New(cfg)

	var outputs []string
	for i := 0; i < 2; i++ {
		res, err := c.Run(context.Background(), lines.FromString(input))
		if err != nil {
			t.Fatal(err)
		}
		outputs = append(outputs, csvString(t, cfg, res))
	}

	if outputs[0] != outputs[1] {
		t.Errorf("outputs differ:\n%q\n%q", outputs[0], outputs[1])
	}
}

func TestRun_CommentIsWrittenUnquoted(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "comma",
			line: "UAN100/200 KDEN Denver to KBOI Boise with Air Seattle, Inc. codeshare",
			want: "UAN,100,200,KDEN,KBOI,Air Seattle, Inc. codeshare\n",
		},
		{
			name: "quotes",
			line: `UAN100/200 KDEN Denver to KBOI Boise with "Horizon" codeshare`,
			want: "UAN,100,200,KDEN,KBOI,\"Horizon\" codeshare\n",
		},
		{
			name: "leading space",
			line: "UAN100/200 KDEN Denver to KBOI Boise with  Horizon",
			want: "UAN,100,200,KDEN,KBOI, Horizon\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := lfConfig()
			cfg.SuppressHeader = true

			res := runString(t, cfg, tt.line+"\n")
			got := csvString(t, cfg, res)
			if got != tt.want {
				t.Errorf("CSV() = %q, want %q", got, tt.want)
			}
			if len(res.Rows) != 1 || res.Rows[0].String()+"\n" != got {
				t.Errorf("file row %q does not match Row.String() %v", got, res.Rows)
			}
		})
	}
}

func TestRun_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.txt")
	if err := os.WriteFile(path, []byte(plainLine+"\r\n"+codeshareLine+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	src := lines.NewFileSource(path)
	defer src.Close()

	res, err := New(lfConfig()).Run(context.Background(), src)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(res.Rows) != 2 {
		t.Errorf("Rows = %d, want 2", len(res.Rows))
	}
}

func TestRun_ReadError(t *testing.T) {
	src := lines.NewFileSource(filepath.Join(t.TempDir(), "missing.txt"))

	_, err := New(lfConfig()).Run(context.Background(), src)
	if !errors.Is(err, lines.ErrInputNotFound) {
		t.Errorf("Run() error = %v, want ErrInputNotFound", err)
	}
}

func TestRun_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := New(lfConfig(), WithLogger(logger)).Run(context.Background(), lines.FromString("garbage\n"))
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"line could not be compiled", "line=1", "compilation finished", "failures=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
