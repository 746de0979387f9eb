package main

import "testing"

func TestConfigFlagDefault(t *testing.T) {
	t.Setenv("DOCPRESS_CONFIG", "")
	if got := configFlag().Value; got != "docpress.yaml" {
		t.Errorf("config flag default = %q, want docpress.yaml", got)
	}
}

func TestConfigFlagHonorsEnvironment(t *testing.T) {
	t.Setenv("DOCPRESS_CONFIG", "site/docpress.yaml")
	if got := configFlag().Value; got != "site/docpress.yaml" {
		t.Errorf("config flag default = %q, want site/docpress.yaml", got)
	}
}
