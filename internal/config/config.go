package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const DefaultProgressEvery = 5000

type Config struct {
	RootFolder    string `yaml:"root_folder"`
	ExcelPath     string `yaml:"excel_path"`
	SheetName     string `yaml:"sheet_name"`
	ProgressEvery int    `yaml:"progress_every"`
	ApiUrl        string `yaml:"api_url"`
	Timeout       int    `yaml:"timeout"`
}

func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		RootFolder:    "Data_Human",
		ExcelPath:     filepath.Join(homeDir, "master.xlsx"),
		SheetName:     "Sheet1",
		ProgressEvery: DefaultProgressEvery,
		Timeout:       10,
	}
}

// ReadConfig loads the YAML file on top of the defaults. A missing file
// yields the defaults.
func ReadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	err = yaml.Unmarshal(file, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyEnv loads envPath (if it exists) into the environment and lets
// DICOM_MASTER_* variables override the file values.
func ApplyEnv(config *Config, envPath string) error {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	if v := os.Getenv("DICOM_MASTER_ROOT"); v != "" {
		config.RootFolder = v
	}
	if v := os.Getenv("DICOM_MASTER_EXCEL"); v != "" {
		config.ExcelPath = v
	}
	if v := os.Getenv("DICOM_MASTER_API_URL"); v != "" {
		config.ApiUrl = v
	}
	return nil
}

func (c *Config) Validate() error {
	if c.RootFolder == "" {
		return errors.New("root_folder is empty")
	}
	if c.ExcelPath == "" {
		return errors.New("excel_path is empty")
	}
	if c.SheetName == "" {
		c.SheetName = "Sheet1"
	}
	if c.ProgressEvery <= 0 {
		c.ProgressEvery = DefaultProgressEvery
	}
	if c.Timeout <= 0 {
		c.Timeout = 10
	}
	return nil
}
