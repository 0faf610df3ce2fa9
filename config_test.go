package main

import (
	"path/filepath"
	"reflect"
	"testing"
)

func Test_loadConfig(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "full.yaml"), "quiet: true\nno_pause: true\n")
	writeTestFile(t, filepath.Join(dir, "partial.yaml"), "quiet: true\n")
	writeTestFile(t, filepath.Join(dir, "empty.yaml"), "")
	writeTestFile(t, filepath.Join(dir, "logfile.yaml"), "log_file: activity.log\n")
	writeTestFile(t, filepath.Join(dir, "broken.yaml"), "quiet: [\n")

	type args struct {
		path string
	}
	tests := []struct {
		name    string
		args    args
		want    *Config
		wantErr bool
	}{
		{
			name: "no config file",
			args: args{path: ""},
			want: &Config{},
		},
		{
			name: "load config file",
			args: args{path: filepath.Join(dir, "full.yaml")},
			want: &Config{Quiet: true, NoPause: true},
		},
		{
			name: "partial config",
			args: args{path: filepath.Join(dir, "partial.yaml")},
			want: &Config{Quiet: true},
		},
		{
			name: "empty config",
			args: args{path: filepath.Join(dir, "empty.yaml")},
			want: &Config{},
		},
		{
			name:    "log file is not configurable",
			args:    args{path: filepath.Join(dir, "logfile.yaml")},
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			args:    args{path: filepath.Join(dir, "broken.yaml")},
			wantErr: true,
		},
		{
			name:    "missing file",
			args:    args{path: filepath.Join(dir, "missing.yaml")},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loadConfig(tt.args.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("loadConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("loadConfig() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_configFromFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeTestFile(t, path, "quiet: true\nno_pause: true\n")

	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--config", path, "--quiet=false"}); err != nil {
		t.Fatal(err)
	}

	got, err := configFromFlags(cmd)
	if err != nil {
		t.Fatalf("configFromFlags() error = %v", err)
	}
	want := &Config{Quiet: false, NoPause: true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("configFromFlags() got = %v, want %v", got, want)
	}
}

func Test_newWorkspaceAt(t *testing.T) {
	base := t.TempDir()

	ws := newWorkspaceAt(base, &Config{Quiet: true})
	l, ok := ws.activity.(*fileActivityLog)
	if !ok {
		t.Fatalf("activity = %T, want *fileActivityLog", ws.activity)
	}
	if want := filepath.Join(base, "logfile.txt"); l.path != want {
		t.Errorf("log path = %v, want %v", l.path, want)
	}
	if !ws.quiet {
		t.Error("quiet = false, want true")
	}
}
