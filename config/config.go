package config

import (
	"log"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

type yamlConfig struct {
	IsDebug                     bool     `yaml:"debug"`
	LogFilePath                 string   `yaml:"log_file_path"`
	DBPath                      string   `yaml:"db_path"`
	BlobDataPath                string   `yaml:"blob_data_path"`
	LocalStatePath              string   `yaml:"local_state_path"`
	UserID                      string   `yaml:"user_id"`
	BatchSize                   int64    `yaml:"batch_size"`
	MaxConcurrentFileOperations int64    `yaml:"max_concurrent_file_operations"`
	FileNamesToIgnore           []string `yaml:"file_names_to_ignore"`
	FolderNamesToIgnore         []string `yaml:"folder_names_to_ignore"`
	CheckoutURL                 string   `yaml:"checkout_url"`
	BillingPortalURL            string   `yaml:"billing_portal_url"`
}

type Config struct {
	IsDebug                     bool
	LogFilePath                 string
	DBPath                      string
	BlobDataPath                string
	LocalStatePath              string
	UserID                      string
	BatchSize                   int64
	MaxConcurrentFileOperations int64
	FileNamesToIgnore           []string
	FolderNamesToIgnore         []string
	CheckoutURL                 string
	BillingPortalURL            string
}

func Load(defaultConfigData []byte) (*Config, error) {
	configFile := "config.yaml"
	_, err := os.Stat(configFile)

	if err != nil {
		log.Print("No config file found. Creating a new config file...")
		err := os.WriteFile(configFile, defaultConfigData, 0600)

		if err != nil {
			return nil, err
		}
	}

	return parseConfigFile(configFile)
}

func parseConfigFile(configFilePath string) (*Config, error) {
	yamlFile, err := os.ReadFile(path.Clean(configFilePath))

	if err != nil {
		return nil, err
	}

	config := &yamlConfig{}

	err = yaml.Unmarshal(yamlFile, config)

	if err != nil {
		return nil, err
	}

	return &Config{
		IsDebug:                     config.IsDebug,
		LogFilePath:                 config.LogFilePath,
		DBPath:                      config.DBPath,
		BlobDataPath:                config.BlobDataPath,
		LocalStatePath:              config.LocalStatePath,
		UserID:                      config.UserID,
		BatchSize:                   config.BatchSize,
		MaxConcurrentFileOperations: config.MaxConcurrentFileOperations,
		FileNamesToIgnore:           config.FileNamesToIgnore,
		FolderNamesToIgnore:         config.FolderNamesToIgnore,
		CheckoutURL:                 config.CheckoutURL,
		BillingPortalURL:            config.BillingPortalURL,
	}, nil
}
