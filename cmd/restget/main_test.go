package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfigCommand_PrintsEffectiveConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RESTGET_LOG_LEVEL", "debug")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--url", "https://httpbin.org/get", "--timeout", "4"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"log_level: debug",
		"initial_url: https://httpbin.org/get",
		"request_timeout_seconds: 4",
		"user_agent: restget/" + version,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	rootCmd.SetArgs([]string{"unexpected"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err == nil {
		t.Error("Execute() expected error for positional argument")
	}
}
