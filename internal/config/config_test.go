package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "8000")
	}
	if cfg.MongoDB.Database != "tripondo" {
		t.Errorf("MongoDB.Database = %q, want %q", cfg.MongoDB.Database, "tripondo")
	}
	if cfg.MongoDB.ConnectTimeout != 10 {
		t.Errorf("MongoDB.ConnectTimeout = %d, want 10", cfg.MongoDB.ConnectTimeout)
	}
	if cfg.Uploads.Dir != "uploads" {
		t.Errorf("Uploads.Dir = %q, want %q", cfg.Uploads.Dir, "uploads")
	}
}
