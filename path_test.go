package main

import (
	"errors"
	"path/filepath"
	"testing"
)

func Test_isSafePathComponent(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want bool
	}{
		{name: "plain", arg: "report.txt", want: true},
		{name: "no extension", arg: "README", want: true},
		{name: "dot relative", arg: "./report.txt", want: true},
		{name: "single dot inside", arg: "a.b.c", want: true},
		{name: "parent", arg: "../secret", want: false},
		{name: "parent in middle", arg: "a/../b", want: false},
		{name: "dots at end", arg: "name..", want: false},
		{name: "dots without separator", arg: "a..b", want: false},
		{name: "absolute unix", arg: "/etc/passwd", want: false},
		{name: "absolute backslash", arg: `\windows`, want: false},
		{name: "drive backslash", arg: `C:\Windows`, want: false},
		{name: "drive slash lower", arg: "c:/temp", want: false},
		{name: "drive without separator", arg: "C:file", want: true},
		{name: "digit drive", arg: `1:\x`, want: true},
		{name: "too short for drive", arg: "C:", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSafePathComponent(tt.arg); got != tt.want {
				t.Errorf("isSafePathComponent(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func Test_resolvePathInBase(t *testing.T) {
	base := t.TempDir()

	type args struct {
		base string
		name string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			name: "plain",
			args: args{base: base, name: "report.txt"},
			want: filepath.Join(base, "report.txt"),
		},
		{
			name: "dot relative",
			args: args{base: base, name: "./report.txt"},
			want: filepath.Join(base, "report.txt"),
		},
		{
			name:    "traversal",
			args:    args{base: base, name: "../secret"},
			wantErr: true,
		},
		{
			name:    "subdirectory",
			args:    args{base: base, name: "sub/dir/file"},
			wantErr: true,
		},
		{
			name:    "trailing slash",
			args:    args{base: base, name: "report.txt/"},
			wantErr: true,
		},
		{
			name:    "trailing backslash",
			args:    args{base: base, name: `report.txt\`},
			wantErr: true,
		},
		{
			name:    "double slash",
			args:    args{base: base, name: "a//b"},
			wantErr: true,
		},
		{
			name:    "trailing dot segment",
			args:    args{base: base, name: "report.txt/."},
			wantErr: true,
		},
		{
			name:    "empty",
			args:    args{base: base, name: ""},
			wantErr: true,
		},
		{
			name:    "current dir",
			args:    args{base: base, name: "."},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolvePathInBase(tt.args.base, tt.args.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolvePathInBase() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errInvalidInput) {
					t.Errorf("resolvePathInBase() error = %v, want errInvalidInput", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("resolvePathInBase() = %v, want %v", got, tt.want)
			}
		})
	}
}
