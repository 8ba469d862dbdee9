package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// Create a temp config file
	content := `
version: v1
output_dir: /tmp/reports
log_level: debug

accounts:
  - name: prod
    profile: prod-readonly
    role_arn: arn:aws:iam::123456789012:role/inventory-readonly
    regions: [us-east-1, eu-west-1]
  - name: staging
`
	tmpfile, err := os.CreateTemp("", "cloudtally-config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Load the config
	cfg, err := LoadConfig(tmpfile.Name())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	// Verify config
	if cfg.Version != "v1" {
		t.Errorf("Version = %v, want v1", cfg.Version)
	}
	if cfg.OutputDir != "/tmp/reports" {
		t.Errorf("OutputDir = %v, want /tmp/reports", cfg.OutputDir)
	}
	if len(cfg.Accounts) != 2 {
		t.Fatalf("Accounts count = %v, want 2", len(cfg.Accounts))
	}
	if cfg.Accounts[0].ProfileName() != "prod-readonly" {
		t.Errorf("ProfileName = %v, want prod-readonly", cfg.Accounts[0].ProfileName())
	}
	if cfg.Accounts[1].ProfileName() != "staging" {
		t.Errorf("ProfileName = %v, want staging (fallback to account name)", cfg.Accounts[1].ProfileName())
	}
	if cfg.Accounts[0].RoleARN != "arn:aws:iam::123456789012:role/inventory-readonly" {
		t.Errorf("RoleARN = %v", cfg.Accounts[0].RoleARN)
	}
	if len(cfg.Accounts[0].Regions) != 2 {
		t.Errorf("Regions count = %v, want 2", len(cfg.Accounts[0].Regions))
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Version:  "v1",
				Accounts: []Account{{Name: "prod"}},
			},
			wantErr: false,
		},
		{
			name: "missing version",
			config: Config{
				Accounts: []Account{{Name: "prod"}},
			},
			wantErr: true,
		},
		{
			name: "no accounts",
			config: Config{
				Version: "v1",
			},
			wantErr: true,
		},
		{
			name: "account without name",
			config: Config{
				Version:  "v1",
				Accounts: []Account{{Profile: "prod-readonly"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
